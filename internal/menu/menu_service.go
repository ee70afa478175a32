package menu

import (
	"context"
	"encoding/json"
	"time"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

const (
	listCacheKey = "menu:all"
	listCacheTTL = 60 * time.Second
)

type Service struct {
	repo   Repository
	cache  *redis.Client
	logger *zap.Logger
}

// NewService wires the repository and an optional Redis client; a nil
// cache degrades to hitting the store on every read.
func NewService(repo Repository, cache *redis.Client, logger ...*zap.Logger) *Service {
	l := zap.L().Named("menu.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("menu.service")
	}
	return &Service{repo: repo, cache: cache, logger: l}
}

// List serves the full menu, cache-first. Cache failures are logged and
// ignored; the store is the source of truth.
func (s *Service) List(ctx context.Context) ([]Item, error) {
	if s.cache != nil {
		if raw, err := s.cache.Get(ctx, listCacheKey).Result(); err == nil {
			var items []Item
			if err := json.Unmarshal([]byte(raw), &items); err == nil {
				return items, nil
			}
		}
	}

	items, err := s.repo.FindAll(ctx)
	if err != nil {
		return nil, err
	}

	if s.cache != nil {
		if data, err := json.Marshal(items); err == nil {
			if err := s.cache.Set(ctx, listCacheKey, data, listCacheTTL).Err(); err != nil {
				s.logger.Warn("menu cache set failed", zap.Error(err))
			}
		}
	}
	return items, nil
}

func (s *Service) Get(ctx context.Context, id string) (*Item, error) {
	return s.repo.FindByID(ctx, id)
}

func (s *Service) Create(ctx context.Context, item Item) (string, error) {
	id, err := s.repo.Insert(ctx, item)
	if err != nil {
		return "", err
	}
	s.invalidate(ctx)
	return id, nil
}

func (s *Service) Update(ctx context.Context, id string, item Item) (int64, int64, error) {
	matched, modified, err := s.repo.Update(ctx, id, item)
	if err != nil {
		return 0, 0, err
	}
	s.invalidate(ctx)
	return matched, modified, nil
}

func (s *Service) Delete(ctx context.Context, id string) (int64, error) {
	deleted, err := s.repo.Delete(ctx, id)
	if err != nil {
		return 0, err
	}
	s.invalidate(ctx)
	return deleted, nil
}

func (s *Service) invalidate(ctx context.Context) {
	if s.cache == nil {
		return
	}
	if err := s.cache.Del(ctx, listCacheKey).Err(); err != nil {
		s.logger.Warn("menu cache invalidation failed", zap.Error(err))
	}
}
