package postgres

import (
	"errors"
	"fmt"
	"testing"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"

	"crm-lead-tracker/internal/domain/repository"
)

func TestMapError(t *testing.T) {
	t.Parallel()

	dup := &pgconn.PgError{Code: uniqueViolation, ConstraintName: "users_email_key"}
	assert.ErrorIs(t, mapError(dup), repository.ErrDuplicate)
	assert.ErrorIs(t, mapError(fmt.Errorf("wrap: %w", dup)), repository.ErrDuplicate)

	other := &pgconn.PgError{Code: "23503"}
	assert.NotErrorIs(t, mapError(other), repository.ErrDuplicate)

	plain := errors.New("connection reset")
	assert.Equal(t, plain, mapError(plain))
	assert.NoError(t, mapError(nil))
}
