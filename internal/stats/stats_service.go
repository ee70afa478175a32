package stats

import (
	"context"
	"encoding/json"
	"time"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

const (
	cacheKey = "stats:admin"
	cacheTTL = 30 * time.Second
)

type AdminStats struct {
	Users     int64   `json:"users"`
	MenuItems int64   `json:"menuItems"`
	Orders    int64   `json:"orders"`
	Revenue   float64 `json:"revenue"`
}

type Service struct {
	repo   Repository
	cache  *redis.Client
	logger *zap.Logger
}

func NewService(repo Repository, cache *redis.Client, logger ...*zap.Logger) *Service {
	l := zap.L().Named("stats.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("stats.service")
	}
	return &Service{repo: repo, cache: cache, logger: l}
}

// AdminStats assembles the dashboard numbers. A short Redis TTL keeps
// repeated dashboard refreshes off the store; staleness up to 30s is
// acceptable for approximate counts anyway.
func (s *Service) AdminStats(ctx context.Context) (AdminStats, error) {
	if s.cache != nil {
		if raw, err := s.cache.Get(ctx, cacheKey).Result(); err == nil {
			var cached AdminStats
			if err := json.Unmarshal([]byte(raw), &cached); err == nil {
				return cached, nil
			}
		}
	}

	users, err := s.repo.CountUsers(ctx)
	if err != nil {
		return AdminStats{}, err
	}
	menuItems, err := s.repo.CountMenuItems(ctx)
	if err != nil {
		return AdminStats{}, err
	}
	orders, err := s.repo.CountPayments(ctx)
	if err != nil {
		return AdminStats{}, err
	}
	revenue, err := s.repo.TotalRevenue(ctx)
	if err != nil {
		return AdminStats{}, err
	}

	result := AdminStats{
		Users:     users,
		MenuItems: menuItems,
		Orders:    orders,
		Revenue:   revenue,
	}

	if s.cache != nil {
		if data, err := json.Marshal(result); err == nil {
			if err := s.cache.Set(ctx, cacheKey, data, cacheTTL).Err(); err != nil {
				s.logger.Warn("stats cache set failed", zap.Error(err))
			}
		}
	}
	return result, nil
}
