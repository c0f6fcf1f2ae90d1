package repository

import (
	"context"

	"crm-lead-tracker/internal/domain/entity"
)

// BuyerUpdate is a partial update; nil fields are left unchanged.
type BuyerUpdate struct {
	Name         *string
	Email        *string
	Phone        *string
	Company      *string
	Budget       *float64
	Requirements *string
	Status       *string
	Notes        *string
}

// BuyerRepository persists buyers, owner-scoped like ClientRepository.
type BuyerRepository interface {
	Create(ctx context.Context, b *entity.Buyer) error
	ListByOwner(ctx context.Context, userID string) ([]entity.BuyerSummary, error)
	GetByID(ctx context.Context, userID, id string) (*entity.BuyerDetail, error)
	Exists(ctx context.Context, userID, id string) (bool, error)
	Update(ctx context.Context, userID, id string, in BuyerUpdate) (*entity.Buyer, error)
	Delete(ctx context.Context, userID, id string) error
}
