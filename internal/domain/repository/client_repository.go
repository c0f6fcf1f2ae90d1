package repository

import (
	"context"

	"crm-lead-tracker/internal/domain/entity"
)

// ClientUpdate is a partial update; nil fields are left unchanged.
type ClientUpdate struct {
	Name         *string
	BusinessName *string
	BusinessType *string
	Email        *string
	Phone        *string
	Address      *string
	Notes        *string
	Status       *string
	AskingPrice  *float64
}

// ClientRepository persists clients. Every method that locates a row by id
// also takes the owner id and composes it into the same query, so a
// cross-tenant id behaves exactly like a nonexistent one.
type ClientRepository interface {
	Create(ctx context.Context, c *entity.Client) error
	ListByOwner(ctx context.Context, userID string) ([]entity.ClientSummary, error)
	GetByID(ctx context.Context, userID, id string) (*entity.ClientDetail, error)
	Exists(ctx context.Context, userID, id string) (bool, error)
	Update(ctx context.Context, userID, id string, in ClientUpdate) (*entity.Client, error)
	Delete(ctx context.Context, userID, id string) error
	LinkBuyer(ctx context.Context, userID, clientID, buyerID string) error
	UnlinkBuyer(ctx context.Context, userID, clientID, buyerID string) error
}
