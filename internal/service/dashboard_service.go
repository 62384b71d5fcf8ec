package service

import (
	"context"
	"encoding/json"
	"time"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"github.com/spec-kit/gym-service/internal/repository"
)

const (
	dashboardCacheKey = "dashboard:stats"
	dashboardCacheTTL = time.Minute
)

// DashboardService serves the aggregate dashboard numbers. Results are
// cached in Redis for a short interval because every admin page load asks
// for them.
type DashboardService struct {
	dashboard repository.DashboardRepository
	cache     *redis.Client
	logger    *zap.Logger
}

// NewDashboardService builds the service. The cache client may be nil, in
// which case every call hits the database.
func NewDashboardService(dashboard repository.DashboardRepository, cache *redis.Client, logger *zap.Logger) *DashboardService {
	return &DashboardService{dashboard: dashboard, cache: cache, logger: logger}
}

// Stats returns the dashboard aggregates, preferring the cache.
func (s *DashboardService) Stats(ctx context.Context) (*repository.DashboardStats, error) {
	if s.cache != nil {
		raw, err := s.cache.Get(ctx, dashboardCacheKey).Bytes()
		if err == nil {
			var cached repository.DashboardStats
			if jsonErr := json.Unmarshal(raw, &cached); jsonErr == nil {
				return &cached, nil
			}
		} else if err != redis.Nil {
			s.logger.Warn("dashboard cache read failed", zap.Error(err))
		}
	}

	stats, err := s.dashboard.Stats(ctx)
	if err != nil {
		return nil, err
	}

	if s.cache != nil {
		if raw, err := json.Marshal(stats); err == nil {
			if err := s.cache.Set(ctx, dashboardCacheKey, raw, dashboardCacheTTL).Err(); err != nil {
				s.logger.Warn("dashboard cache write failed", zap.Error(err))
			}
		}
	}
	return stats, nil
}
