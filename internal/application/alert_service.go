package application

import (
	"context"

	"github.com/sirupsen/logrus"

	"crm-lead-tracker/internal/domain/entity"
	"crm-lead-tracker/internal/domain/repository"
	"crm-lead-tracker/pkg/helpers"
	"crm-lead-tracker/pkg/mailer"
)

// AlertService owns alert CRUD and the reminder email pipeline.
type AlertService struct {
	Repo        repository.AlertRepository
	Clients     repository.ClientRepository
	Pub         *helpers.RabbitPublisher
	Logger      *logrus.Logger
	MailEnabled bool
}

func NewAlertService(repo repository.AlertRepository, clients repository.ClientRepository, pub *helpers.RabbitPublisher, logger *logrus.Logger, mailEnabled bool) *AlertService {
	return &AlertService{Repo: repo, Clients: clients, Pub: pub, Logger: logger, MailEnabled: mailEnabled}
}

// Create stores an alert for the principal. A referenced client must belong
// to the same user; a foreign client id reads as not found. Alerts with a
// due date enqueue a reminder email when sending is enabled.
func (s *AlertService) Create(ctx context.Context, principal *entity.Principal, a *entity.Alert) error {
	if a.ClientID != nil {
		ok, err := s.Clients.Exists(ctx, principal.ID, *a.ClientID)
		if err != nil {
			return err
		}
		if !ok {
			return ErrClientNotFound
		}
	}
	a.UserID = principal.ID
	if err := s.Repo.Create(ctx, a); err != nil {
		return err
	}
	s.enqueueReminder(ctx, principal, a)
	return nil
}

func (s *AlertService) List(ctx context.Context, userID string) ([]entity.AlertWithClient, error) {
	return s.Repo.ListByOwner(ctx, userID)
}

func (s *AlertService) Update(ctx context.Context, userID, id string, in repository.AlertUpdate) (*entity.Alert, error) {
	if in.ClientID != nil {
		ok, err := s.Clients.Exists(ctx, userID, *in.ClientID)
		if err != nil {
			return nil, err
		}
		if !ok {
			return nil, ErrClientNotFound
		}
	}
	return s.Repo.Update(ctx, userID, id, in)
}

func (s *AlertService) Delete(ctx context.Context, userID, id string) error {
	return s.Repo.Delete(ctx, userID, id)
}

func (s *AlertService) enqueueReminder(ctx context.Context, principal *entity.Principal, a *entity.Alert) {
	if s.Pub == nil || !s.MailEnabled || a.DueDate == nil {
		return
	}
	job := mailer.ReminderJob{
		To:         principal.Email,
		UserName:   principal.Name,
		AlertTitle: a.Title,
		AlertType:  a.Type,
		DueDate:    a.DueDate,
	}
	if err := s.Pub.PublishJSON(ctx, job); err != nil && s.Logger != nil {
		s.Logger.WithError(err).WithField("alert_id", a.ID).Warn("reminder enqueue failed")
	}
}
