package repository

import (
	"context"
	"errors"

	"crm-lead-tracker/internal/domain/entity"
)

// ErrNotFound is returned when a row does not exist or is owned by another
// user. Callers must not be able to tell the two cases apart.
var ErrNotFound = errors.New("not found")

// ErrDuplicate is returned when a unique constraint is violated.
var ErrDuplicate = errors.New("already exists")

// UserRepository is the credential store. It is consulted on every session
// resolution, so deleting a user revokes their outstanding tokens.
type UserRepository interface {
	Create(ctx context.Context, u *entity.User) error
	GetByID(ctx context.Context, id string) (*entity.User, error)
	GetByEmail(ctx context.Context, email string) (*entity.User, error)
}
