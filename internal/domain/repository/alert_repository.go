package repository

import (
	"context"
	"time"

	"crm-lead-tracker/internal/domain/entity"
)

// AlertUpdate is a partial update; nil fields are left unchanged. ClearDue
// removes the due date, which a nil DueDate alone cannot express.
type AlertUpdate struct {
	Title       *string
	Description *string
	Type        *string
	DueDate     *time.Time
	ClearDue    bool
	IsCompleted *bool
	ClientID    *string
}

// AlertRepository persists alerts, owner-scoped.
type AlertRepository interface {
	Create(ctx context.Context, a *entity.Alert) error
	ListByOwner(ctx context.Context, userID string) ([]entity.AlertWithClient, error)
	Update(ctx context.Context, userID, id string, in AlertUpdate) (*entity.Alert, error)
	Delete(ctx context.Context, userID, id string) error
}
