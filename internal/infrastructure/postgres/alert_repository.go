package postgres

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"crm-lead-tracker/internal/domain/entity"
	"crm-lead-tracker/internal/domain/repository"
)

type AlertRepository struct {
	pool *pgxpool.Pool
}

func NewAlertRepository(pool *pgxpool.Pool) *AlertRepository {
	return &AlertRepository{pool: pool}
}

const alertColumns = `id, user_id, title, description, type, due_date, is_completed, client_id, created_at, updated_at`

func scanAlert(row pgx.Row, a *entity.Alert) error {
	return row.Scan(&a.ID, &a.UserID, &a.Title, &a.Description, &a.Type,
		&a.DueDate, &a.IsCompleted, &a.ClientID, &a.CreatedAt, &a.UpdatedAt)
}

func (r *AlertRepository) Create(ctx context.Context, a *entity.Alert) error {
	row := r.pool.QueryRow(ctx, `
		INSERT INTO alerts (user_id, title, description, type, due_date, client_id)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id, is_completed, created_at, updated_at
	`, a.UserID, a.Title, a.Description, a.Type, a.DueDate, a.ClientID)

	if err := row.Scan(&a.ID, &a.IsCompleted, &a.CreatedAt, &a.UpdatedAt); err != nil {
		return mapError(err)
	}
	return nil
}

// ListByOwner returns the user's alerts: incomplete first, nearest due date
// first, then newest. Each row carries a shallow client reference when set.
func (r *AlertRepository) ListByOwner(ctx context.Context, userID string) ([]entity.AlertWithClient, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT a.id, a.user_id, a.title, a.description, a.type, a.due_date, a.is_completed, a.client_id, a.created_at, a.updated_at,
			c.id, c.name, c.business_name
		FROM alerts a
		LEFT JOIN clients c ON c.id = a.client_id
		WHERE a.user_id = $1
		ORDER BY a.is_completed ASC, a.due_date ASC NULLS LAST, a.created_at DESC
	`, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]entity.AlertWithClient, 0)
	for rows.Next() {
		var a entity.AlertWithClient
		var cid, cname, cbiz *string
		if err := rows.Scan(&a.ID, &a.UserID, &a.Title, &a.Description, &a.Type,
			&a.DueDate, &a.IsCompleted, &a.ClientID, &a.CreatedAt, &a.UpdatedAt,
			&cid, &cname, &cbiz); err != nil {
			return nil, err
		}
		if cid != nil {
			a.Client = &entity.AlertClientRef{ID: *cid, Name: *cname, BusinessName: *cbiz}
		}
		out = append(out, a)
	}
	return out, rows.Err()
}

func (r *AlertRepository) Update(ctx context.Context, userID, id string, in repository.AlertUpdate) (*entity.Alert, error) {
	a := &entity.Alert{}
	row := r.pool.QueryRow(ctx, `
		UPDATE alerts SET
			title        = COALESCE($3, title),
			description  = COALESCE($4, description),
			type         = COALESCE($5, type),
			due_date     = CASE WHEN $6 THEN NULL ELSE COALESCE($7, due_date) END,
			is_completed = COALESCE($8, is_completed),
			client_id    = COALESCE($9, client_id),
			updated_at   = now()
		WHERE id = $1 AND user_id = $2
		RETURNING `+alertColumns+`
	`, id, userID, in.Title, in.Description, in.Type, in.ClearDue, in.DueDate, in.IsCompleted, in.ClientID)

	if err := scanAlert(row, a); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, repository.ErrNotFound
		}
		return nil, err
	}
	return a, nil
}

func (r *AlertRepository) Delete(ctx context.Context, userID, id string) error {
	res, err := r.pool.Exec(ctx, `
		DELETE FROM alerts WHERE id = $1 AND user_id = $2
	`, id, userID)
	if err != nil {
		return err
	}
	if res.RowsAffected() == 0 {
		return repository.ErrNotFound
	}
	return nil
}

var _ repository.AlertRepository = (*AlertRepository)(nil)
