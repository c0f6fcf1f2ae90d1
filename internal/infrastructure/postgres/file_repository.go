package postgres

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"crm-lead-tracker/internal/domain/entity"
	"crm-lead-tracker/internal/domain/repository"
)

type FileRepository struct {
	pool *pgxpool.Pool
}

func NewFileRepository(pool *pgxpool.Pool) *FileRepository {
	return &FileRepository{pool: pool}
}

func (r *FileRepository) Create(ctx context.Context, f *entity.File) error {
	row := r.pool.QueryRow(ctx, `
		INSERT INTO files (user_id, filename, url, size, mime_type, client_id, buyer_id)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING id, created_at
	`, f.UserID, f.Filename, f.URL, f.Size, f.MimeType, f.ClientID, f.BuyerID)

	if err := row.Scan(&f.ID, &f.CreatedAt); err != nil {
		return mapError(err)
	}
	return nil
}

func (r *FileRepository) ListByOwner(ctx context.Context, userID string) ([]entity.File, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT id, user_id, filename, url, size, mime_type, client_id, buyer_id, created_at
		FROM files
		WHERE user_id = $1
		ORDER BY created_at DESC
	`, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]entity.File, 0)
	for rows.Next() {
		var f entity.File
		if err := rows.Scan(&f.ID, &f.UserID, &f.Filename, &f.URL, &f.Size, &f.MimeType, &f.ClientID, &f.BuyerID, &f.CreatedAt); err != nil {
			return nil, err
		}
		out = append(out, f)
	}
	return out, rows.Err()
}

func (r *FileRepository) Delete(ctx context.Context, userID, id string) (*entity.File, error) {
	f := &entity.File{}
	row := r.pool.QueryRow(ctx, `
		DELETE FROM files
		WHERE id = $1 AND user_id = $2
		RETURNING id, user_id, filename, url, size, mime_type, client_id, buyer_id, created_at
	`, id, userID)
	if err := row.Scan(&f.ID, &f.UserID, &f.Filename, &f.URL, &f.Size, &f.MimeType, &f.ClientID, &f.BuyerID, &f.CreatedAt); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, repository.ErrNotFound
		}
		return nil, err
	}
	return f, nil
}

type ImageRepository struct {
	pool *pgxpool.Pool
}

func NewImageRepository(pool *pgxpool.Pool) *ImageRepository {
	return &ImageRepository{pool: pool}
}

func (r *ImageRepository) Create(ctx context.Context, img *entity.Image) error {
	row := r.pool.QueryRow(ctx, `
		INSERT INTO images (client_id, filename, url, size, mime_type)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id, created_at
	`, img.ClientID, img.Filename, img.URL, img.Size, img.MimeType)

	if err := row.Scan(&img.ID, &img.CreatedAt); err != nil {
		return mapError(err)
	}
	return nil
}

// ListByOwner joins through clients: images are owned transitively.
func (r *ImageRepository) ListByOwner(ctx context.Context, userID string) ([]entity.Image, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT i.id, i.client_id, i.filename, i.url, i.size, i.mime_type, i.created_at
		FROM images i
		JOIN clients c ON c.id = i.client_id
		WHERE c.user_id = $1
		ORDER BY i.created_at DESC
	`, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]entity.Image, 0)
	for rows.Next() {
		var img entity.Image
		if err := rows.Scan(&img.ID, &img.ClientID, &img.Filename, &img.URL, &img.Size, &img.MimeType, &img.CreatedAt); err != nil {
			return nil, err
		}
		out = append(out, img)
	}
	return out, rows.Err()
}

type StatsRepository struct {
	pool *pgxpool.Pool
}

func NewStatsRepository(pool *pgxpool.Pool) *StatsRepository {
	return &StatsRepository{pool: pool}
}

// Stats aggregates the dashboard counters in a single round trip.
func (r *StatsRepository) Stats(ctx context.Context, userID string) (*entity.DashboardStats, error) {
	s := &entity.DashboardStats{}
	cutoff := time.Now().Add(-7 * 24 * time.Hour)
	err := r.pool.QueryRow(ctx, `
		SELECT
			(SELECT count(*) FROM clients WHERE user_id = $1),
			(SELECT count(*) FROM buyers WHERE user_id = $1),
			(SELECT count(*) FROM alerts WHERE user_id = $1 AND is_completed = false),
			(SELECT count(*) FROM files WHERE user_id = $1 AND created_at >= $2)
	`, userID, cutoff).Scan(&s.TotalClients, &s.TotalBuyers, &s.ActiveAlerts, &s.RecentFiles)
	if err != nil {
		return nil, err
	}
	return s, nil
}

var (
	_ repository.FileRepository  = (*FileRepository)(nil)
	_ repository.ImageRepository = (*ImageRepository)(nil)
	_ repository.StatsRepository = (*StatsRepository)(nil)
)
