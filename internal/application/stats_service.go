package application

import (
	"context"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"

	"crm-lead-tracker/internal/domain/entity"
	"crm-lead-tracker/internal/domain/repository"
	"crm-lead-tracker/pkg/helpers"
)

const statsCacheTTL = 30 * time.Second

// StatsService serves dashboard counters through a short per-user Redis
// cache. A cold or failing cache falls through to Postgres.
type StatsService struct {
	Repo   repository.StatsRepository
	Redis  *redis.Client
	Logger *logrus.Logger
}

func NewStatsService(repo repository.StatsRepository, rdb *redis.Client, logger *logrus.Logger) *StatsService {
	return &StatsService{Repo: repo, Redis: rdb, Logger: logger}
}

func statsKey(userID string) string {
	return "dashboard:stats:" + userID
}

func (s *StatsService) Dashboard(ctx context.Context, userID string) (*entity.DashboardStats, error) {
	if s.Redis != nil {
		var cached entity.DashboardStats
		if ok, err := helpers.RedisGetJSON(ctx, s.Redis, statsKey(userID), &cached); err == nil && ok {
			return &cached, nil
		}
	}

	stats, err := s.Repo.Stats(ctx, userID)
	if err != nil {
		return nil, err
	}

	if s.Redis != nil {
		if err := helpers.RedisSetJSON(ctx, s.Redis, statsKey(userID), stats, statsCacheTTL); err != nil && s.Logger != nil {
			s.Logger.WithError(err).WithField("user_id", userID).Warn("stats cache write failed")
		}
	}
	return stats, nil
}
