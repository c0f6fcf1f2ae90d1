package repository

import (
	"context"

	"crm-lead-tracker/internal/domain/entity"
)

// FileRepository persists file metadata; the bytes live in object storage.
type FileRepository interface {
	Create(ctx context.Context, f *entity.File) error
	ListByOwner(ctx context.Context, userID string) ([]entity.File, error)
	// Delete removes the row and returns it so the caller can drop the
	// stored object as well.
	Delete(ctx context.Context, userID, id string) (*entity.File, error)
}

// ImageRepository persists image metadata. Images hang off clients, so all
// queries join through the clients table for owner scoping.
type ImageRepository interface {
	Create(ctx context.Context, img *entity.Image) error
	ListByOwner(ctx context.Context, userID string) ([]entity.Image, error)
}

// StatsRepository aggregates per-user dashboard counters.
type StatsRepository interface {
	Stats(ctx context.Context, userID string) (*entity.DashboardStats, error)
}
