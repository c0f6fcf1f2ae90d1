package templates

import (
	"bytes"
	"fmt"
	"html/template"

	"crm-lead-tracker/pkg/mailer"
)

var reminderTmpl = template.Must(template.New("reminder").Parse(`<!DOCTYPE html>
<html>
<body style="font-family: sans-serif; color: #222;">
  <p>Hi {{.UserName}},</p>
  <p>You set a {{.AlertType}} alert: <strong>{{.AlertTitle}}</strong>{{if .ClientName}} for client <strong>{{.ClientName}}</strong>{{end}}.</p>
  {{if .DueText}}<p>Due: {{.DueText}}</p>{{end}}
  <p>— CRM Lead Tracker</p>
</body>
</html>`))

type reminderData struct {
	UserName   string
	AlertTitle string
	AlertType  string
	ClientName string
	DueText    string
}

// RenderReminder produces subject, text and HTML bodies for a reminder job.
func RenderReminder(job mailer.ReminderJob) (subject, text, html string, err error) {
	data := reminderData{
		UserName:   job.UserName,
		AlertTitle: job.AlertTitle,
		AlertType:  job.AlertType,
		ClientName: job.ClientName,
	}
	if job.DueDate != nil {
		data.DueText = job.DueDate.UTC().Format("02 January 2006, 15:04 MST")
	}

	subject = fmt.Sprintf("Alert reminder: %s", job.AlertTitle)
	text = fmt.Sprintf("You set a %s alert: %s", job.AlertType, job.AlertTitle)
	if data.DueText != "" {
		text += " (due " + data.DueText + ")"
	}

	var buf bytes.Buffer
	if err = reminderTmpl.Execute(&buf, data); err != nil {
		return "", "", "", err
	}
	return subject, text, buf.String(), nil
}
