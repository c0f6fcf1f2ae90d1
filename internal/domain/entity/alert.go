package entity

import "time"

const (
	AlertTypeInfo    = "info"
	AlertTypeWarning = "warning"
	AlertTypeUrgent  = "urgent"
)

// Alert is a dated reminder owned by a single user, optionally attached to
// one of that user's clients.
type Alert struct {
	ID          string     `json:"id"`
	UserID      string     `json:"userId"`
	Title       string     `json:"title"`
	Description *string    `json:"description"`
	Type        string     `json:"type"`
	DueDate     *time.Time `json:"dueDate"`
	IsCompleted bool       `json:"isCompleted"`
	ClientID    *string    `json:"clientId"`
	CreatedAt   time.Time  `json:"createdAt"`
	UpdatedAt   time.Time  `json:"updatedAt"`
}

// AlertClientRef is the shallow client projection embedded in alert rows.
type AlertClientRef struct {
	ID           string `json:"id"`
	Name         string `json:"name"`
	BusinessName string `json:"businessName"`
}

// AlertWithClient is an alert list row joined with its client, when set.
type AlertWithClient struct {
	Alert
	Client *AlertClientRef `json:"client"`
}
