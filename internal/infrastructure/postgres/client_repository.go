package postgres

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"crm-lead-tracker/internal/domain/entity"
	"crm-lead-tracker/internal/domain/repository"
)

type ClientRepository struct {
	pool *pgxpool.Pool
}

func NewClientRepository(pool *pgxpool.Pool) *ClientRepository {
	return &ClientRepository{pool: pool}
}

const clientColumns = `id, user_id, name, business_name, business_type, email, phone, address, notes, status, asking_price, created_at, updated_at`

func scanClient(row pgx.Row, c *entity.Client) error {
	return row.Scan(&c.ID, &c.UserID, &c.Name, &c.BusinessName, &c.BusinessType,
		&c.Email, &c.Phone, &c.Address, &c.Notes, &c.Status, &c.AskingPrice,
		&c.CreatedAt, &c.UpdatedAt)
}

func (r *ClientRepository) Create(ctx context.Context, c *entity.Client) error {
	row := r.pool.QueryRow(ctx, `
		INSERT INTO clients (user_id, name, business_name, business_type, email, phone, address, notes, status, asking_price)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
		RETURNING id, created_at, updated_at
	`, c.UserID, c.Name, c.BusinessName, c.BusinessType, c.Email, c.Phone, c.Address, c.Notes, c.Status, c.AskingPrice)

	if err := row.Scan(&c.ID, &c.CreatedAt, &c.UpdatedAt); err != nil {
		return mapError(err)
	}
	return nil
}

func (r *ClientRepository) ListByOwner(ctx context.Context, userID string) ([]entity.ClientSummary, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT `+clientColumns+`,
			(SELECT count(*) FROM alerts a WHERE a.client_id = clients.id),
			(SELECT count(*) FROM images i WHERE i.client_id = clients.id),
			(SELECT count(*) FROM files f WHERE f.client_id = clients.id)
		FROM clients
		WHERE user_id = $1
		ORDER BY created_at DESC
	`, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]entity.ClientSummary, 0)
	for rows.Next() {
		var s entity.ClientSummary
		if err := rows.Scan(&s.ID, &s.UserID, &s.Name, &s.BusinessName, &s.BusinessType,
			&s.Email, &s.Phone, &s.Address, &s.Notes, &s.Status, &s.AskingPrice,
			&s.CreatedAt, &s.UpdatedAt,
			&s.Counts.Alerts, &s.Counts.Images, &s.Counts.Files); err != nil {
			return nil, err
		}
		out = append(out, s)
	}
	return out, rows.Err()
}

// GetByID loads a client with its related rows. The owner predicate sits in
// the locating query itself, so another user's id reads as no rows.
func (r *ClientRepository) GetByID(ctx context.Context, userID, id string) (*entity.ClientDetail, error) {
	d := &entity.ClientDetail{}
	row := r.pool.QueryRow(ctx, `
		SELECT `+clientColumns+`
		FROM clients
		WHERE id = $1 AND user_id = $2
	`, id, userID)
	if err := scanClient(row, &d.Client); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, repository.ErrNotFound
		}
		return nil, err
	}

	var err error
	if d.Alerts, err = r.clientAlerts(ctx, id); err != nil {
		return nil, err
	}
	if d.Images, err = r.clientImages(ctx, id); err != nil {
		return nil, err
	}
	if d.Files, err = r.clientFiles(ctx, id); err != nil {
		return nil, err
	}
	if d.Buyers, err = r.linkedBuyers(ctx, id); err != nil {
		return nil, err
	}
	return d, nil
}

func (r *ClientRepository) Exists(ctx context.Context, userID, id string) (bool, error) {
	var ok bool
	err := r.pool.QueryRow(ctx, `
		SELECT EXISTS (SELECT 1 FROM clients WHERE id = $1 AND user_id = $2)
	`, id, userID).Scan(&ok)
	return ok, err
}

func (r *ClientRepository) Update(ctx context.Context, userID, id string, in repository.ClientUpdate) (*entity.Client, error) {
	c := &entity.Client{}
	row := r.pool.QueryRow(ctx, `
		UPDATE clients SET
			name          = COALESCE($3, name),
			business_name = COALESCE($4, business_name),
			business_type = COALESCE($5, business_type),
			email         = COALESCE($6, email),
			phone         = COALESCE($7, phone),
			address       = COALESCE($8, address),
			notes         = COALESCE($9, notes),
			status        = COALESCE($10, status),
			asking_price  = COALESCE($11, asking_price),
			updated_at    = now()
		WHERE id = $1 AND user_id = $2
		RETURNING `+clientColumns+`
	`, id, userID, in.Name, in.BusinessName, in.BusinessType, in.Email, in.Phone, in.Address, in.Notes, in.Status, in.AskingPrice)

	if err := scanClient(row, c); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, repository.ErrNotFound
		}
		return nil, err
	}
	return c, nil
}

func (r *ClientRepository) Delete(ctx context.Context, userID, id string) error {
	res, err := r.pool.Exec(ctx, `
		DELETE FROM clients WHERE id = $1 AND user_id = $2
	`, id, userID)
	if err != nil {
		return err
	}
	if res.RowsAffected() == 0 {
		return repository.ErrNotFound
	}
	return nil
}

// LinkBuyer inserts a join row only when both sides belong to the owner; a
// missing or foreign client or buyer yields zero rows, never an insert.
func (r *ClientRepository) LinkBuyer(ctx context.Context, userID, clientID, buyerID string) error {
	res, err := r.pool.Exec(ctx, `
		INSERT INTO client_buyers (client_id, buyer_id)
		SELECT c.id, b.id
		FROM clients c, buyers b
		WHERE c.id = $1 AND c.user_id = $3
		  AND b.id = $2 AND b.user_id = $3
	`, clientID, buyerID, userID)
	if err != nil {
		return mapError(err)
	}
	if res.RowsAffected() == 0 {
		return repository.ErrNotFound
	}
	return nil
}

func (r *ClientRepository) UnlinkBuyer(ctx context.Context, userID, clientID, buyerID string) error {
	res, err := r.pool.Exec(ctx, `
		DELETE FROM client_buyers cb
		USING clients c
		WHERE cb.client_id = c.id
		  AND c.id = $1 AND c.user_id = $3
		  AND cb.buyer_id = $2
	`, clientID, buyerID, userID)
	if err != nil {
		return err
	}
	if res.RowsAffected() == 0 {
		return repository.ErrNotFound
	}
	return nil
}

func (r *ClientRepository) clientAlerts(ctx context.Context, clientID string) ([]entity.Alert, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT id, user_id, title, description, type, due_date, is_completed, client_id, created_at, updated_at
		FROM alerts
		WHERE client_id = $1 AND is_completed = false
		ORDER BY due_date ASC NULLS LAST
	`, clientID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]entity.Alert, 0)
	for rows.Next() {
		var a entity.Alert
		if err := rows.Scan(&a.ID, &a.UserID, &a.Title, &a.Description, &a.Type,
			&a.DueDate, &a.IsCompleted, &a.ClientID, &a.CreatedAt, &a.UpdatedAt); err != nil {
			return nil, err
		}
		out = append(out, a)
	}
	return out, rows.Err()
}

func (r *ClientRepository) clientImages(ctx context.Context, clientID string) ([]entity.Image, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT id, client_id, filename, url, size, mime_type, created_at
		FROM images
		WHERE client_id = $1
		ORDER BY created_at DESC
	`, clientID)
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

func (r *ClientRepository) clientFiles(ctx context.Context, clientID string) ([]entity.File, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT id, user_id, filename, url, size, mime_type, client_id, buyer_id, created_at
		FROM files
		WHERE client_id = $1
		ORDER BY created_at DESC
	`, clientID)
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

func (r *ClientRepository) linkedBuyers(ctx context.Context, clientID string) ([]entity.Buyer, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT b.id, b.user_id, b.name, b.email, b.phone, b.company, b.budget, b.requirements, b.status, b.notes, b.created_at, b.updated_at
		FROM buyers b
		JOIN client_buyers cb ON cb.buyer_id = b.id
		WHERE cb.client_id = $1
		ORDER BY b.created_at DESC
	`, clientID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]entity.Buyer, 0)
	for rows.Next() {
		var b entity.Buyer
		if err := rows.Scan(&b.ID, &b.UserID, &b.Name, &b.Email, &b.Phone, &b.Company,
			&b.Budget, &b.Requirements, &b.Status, &b.Notes, &b.CreatedAt, &b.UpdatedAt); err != nil {
			return nil, err
		}
		out = append(out, b)
	}
	return out, rows.Err()
}

var _ repository.ClientRepository = (*ClientRepository)(nil)
