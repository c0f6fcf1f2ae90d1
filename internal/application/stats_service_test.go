package application

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"crm-lead-tracker/internal/domain/entity"
)

type stubStatsRepo struct {
	calls int
	stats entity.DashboardStats
}

func (s *stubStatsRepo) Stats(ctx context.Context, userID string) (*entity.DashboardStats, error) {
	s.calls++
	cp := s.stats
	return &cp, nil
}

// Without Redis the service must still answer straight from Postgres.
func TestStatsService_NoCache(t *testing.T) {
	repo := &stubStatsRepo{stats: entity.DashboardStats{TotalClients: 3, ActiveAlerts: 1}}
	svc := NewStatsService(repo, nil, quietLogger())

	got, err := svc.Dashboard(context.Background(), "u1")
	require.NoError(t, err)
	assert.Equal(t, 3, got.TotalClients)
	assert.Equal(t, 1, got.ActiveAlerts)

	_, err = svc.Dashboard(context.Background(), "u1")
	require.NoError(t, err)
	assert.Equal(t, 2, repo.calls)
}
