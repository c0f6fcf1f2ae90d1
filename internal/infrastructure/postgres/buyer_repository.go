package postgres

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"crm-lead-tracker/internal/domain/entity"
	"crm-lead-tracker/internal/domain/repository"
)

type BuyerRepository struct {
	pool *pgxpool.Pool
}

func NewBuyerRepository(pool *pgxpool.Pool) *BuyerRepository {
	return &BuyerRepository{pool: pool}
}

const buyerColumns = `id, user_id, name, email, phone, company, budget, requirements, status, notes, created_at, updated_at`

func scanBuyer(row pgx.Row, b *entity.Buyer) error {
	return row.Scan(&b.ID, &b.UserID, &b.Name, &b.Email, &b.Phone, &b.Company,
		&b.Budget, &b.Requirements, &b.Status, &b.Notes, &b.CreatedAt, &b.UpdatedAt)
}

func (r *BuyerRepository) Create(ctx context.Context, b *entity.Buyer) error {
	row := r.pool.QueryRow(ctx, `
		INSERT INTO buyers (user_id, name, email, phone, company, budget, requirements, status, notes)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		RETURNING id, created_at, updated_at
	`, b.UserID, b.Name, b.Email, b.Phone, b.Company, b.Budget, b.Requirements, b.Status, b.Notes)

	if err := row.Scan(&b.ID, &b.CreatedAt, &b.UpdatedAt); err != nil {
		return mapError(err)
	}
	return nil
}

func (r *BuyerRepository) ListByOwner(ctx context.Context, userID string) ([]entity.BuyerSummary, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT `+buyerColumns+`,
			(SELECT count(*) FROM client_buyers cb WHERE cb.buyer_id = buyers.id),
			(SELECT count(*) FROM files f WHERE f.buyer_id = buyers.id)
		FROM buyers
		WHERE user_id = $1
		ORDER BY created_at DESC
	`, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]entity.BuyerSummary, 0)
	for rows.Next() {
		var s entity.BuyerSummary
		if err := rows.Scan(&s.ID, &s.UserID, &s.Name, &s.Email, &s.Phone, &s.Company,
			&s.Budget, &s.Requirements, &s.Status, &s.Notes, &s.CreatedAt, &s.UpdatedAt,
			&s.Counts.Clients, &s.Counts.Files); err != nil {
			return nil, err
		}
		out = append(out, s)
	}
	return out, rows.Err()
}

func (r *BuyerRepository) GetByID(ctx context.Context, userID, id string) (*entity.BuyerDetail, error) {
	d := &entity.BuyerDetail{}
	row := r.pool.QueryRow(ctx, `
		SELECT `+buyerColumns+`
		FROM buyers
		WHERE id = $1 AND user_id = $2
	`, id, userID)
	if err := scanBuyer(row, &d.Buyer); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, repository.ErrNotFound
		}
		return nil, err
	}

	var err error
	if d.Clients, err = r.linkedClients(ctx, id); err != nil {
		return nil, err
	}
	if d.Files, err = r.buyerFiles(ctx, id); err != nil {
		return nil, err
	}
	return d, nil
}

func (r *BuyerRepository) Exists(ctx context.Context, userID, id string) (bool, error) {
	var exists bool
	err := r.pool.QueryRow(ctx, `
		SELECT EXISTS (SELECT 1 FROM buyers WHERE id = $1 AND user_id = $2)
	`, id, userID).Scan(&exists)
	return exists, err
}

func (r *BuyerRepository) Update(ctx context.Context, userID, id string, in repository.BuyerUpdate) (*entity.Buyer, error) {
	b := &entity.Buyer{}
	row := r.pool.QueryRow(ctx, `
		UPDATE buyers SET
			name         = COALESCE($3, name),
			email        = COALESCE($4, email),
			phone        = COALESCE($5, phone),
			company      = COALESCE($6, company),
			budget       = COALESCE($7, budget),
			requirements = COALESCE($8, requirements),
			status       = COALESCE($9, status),
			notes        = COALESCE($10, notes),
			updated_at   = now()
		WHERE id = $1 AND user_id = $2
		RETURNING `+buyerColumns+`
	`, id, userID, in.Name, in.Email, in.Phone, in.Company, in.Budget, in.Requirements, in.Status, in.Notes)

	if err := scanBuyer(row, b); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, repository.ErrNotFound
		}
		return nil, err
	}
	return b, nil
}

func (r *BuyerRepository) Delete(ctx context.Context, userID, id string) error {
	res, err := r.pool.Exec(ctx, `
		DELETE FROM buyers WHERE id = $1 AND user_id = $2
	`, id, userID)
	if err != nil {
		return err
	}
	if res.RowsAffected() == 0 {
		return repository.ErrNotFound
	}
	return nil
}

func (r *BuyerRepository) linkedClients(ctx context.Context, buyerID string) ([]entity.Client, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT c.id, c.user_id, c.name, c.business_name, c.business_type, c.email, c.phone, c.address, c.notes, c.status, c.asking_price, c.created_at, c.updated_at
		FROM clients c
		JOIN client_buyers cb ON cb.client_id = c.id
		WHERE cb.buyer_id = $1
		ORDER BY c.created_at DESC
	`, buyerID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]entity.Client, 0)
	for rows.Next() {
		var c entity.Client
		if err := scanClient(rows, &c); err != nil {
			return nil, err
		}
		out = append(out, c)
	}
	return out, rows.Err()
}

func (r *BuyerRepository) buyerFiles(ctx context.Context, buyerID string) ([]entity.File, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT id, user_id, filename, url, size, mime_type, client_id, buyer_id, created_at
		FROM files
		WHERE buyer_id = $1
		ORDER BY created_at DESC
	`, buyerID)
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

var _ repository.BuyerRepository = (*BuyerRepository)(nil)
