package application

import (
	"context"

	"crm-lead-tracker/internal/domain/entity"
	"crm-lead-tracker/internal/domain/repository"
)

// BuyerService is a thin layer over the repository; buyers have no side
// channels (no search index, no reminders).
type BuyerService struct {
	Repo repository.BuyerRepository
}

func NewBuyerService(repo repository.BuyerRepository) *BuyerService {
	return &BuyerService{Repo: repo}
}

func (s *BuyerService) Create(ctx context.Context, b *entity.Buyer) error {
	return s.Repo.Create(ctx, b)
}

func (s *BuyerService) List(ctx context.Context, userID string) ([]entity.BuyerSummary, error) {
	return s.Repo.ListByOwner(ctx, userID)
}

func (s *BuyerService) Get(ctx context.Context, userID, id string) (*entity.BuyerDetail, error) {
	return s.Repo.GetByID(ctx, userID, id)
}

func (s *BuyerService) Update(ctx context.Context, userID, id string, in repository.BuyerUpdate) (*entity.Buyer, error) {
	return s.Repo.Update(ctx, userID, id, in)
}

func (s *BuyerService) Delete(ctx context.Context, userID, id string) error {
	return s.Repo.Delete(ctx, userID, id)
}
