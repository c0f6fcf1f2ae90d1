package mailer

import "time"

// ReminderJob is the JSON payload put on the RabbitMQ queue when an alert
// with a due date is created. The email worker renders and sends it.
type ReminderJob struct {
	To         string     `json:"to"`
	UserName   string     `json:"user_name"`
	AlertTitle string     `json:"alert_title"`
	AlertType  string     `json:"alert_type"`
	ClientName string     `json:"client_name,omitempty"`
	DueDate    *time.Time `json:"due_date,omitempty"`
}
