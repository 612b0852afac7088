package service

//go:generate mockgen -source=interfaces.go -destination=mocks/mocks.go -package=mocks

import (
	"context"
	"time"

	"newshub/internal/domain"
)

// Source issues category or keyword queries to the upstream news provider.
type Source interface {
	TopHeadlines(ctx context.Context, category string) ([]domain.Article, error)
	Everything(ctx context.Context, keyword string) ([]domain.Article, error)
}

// Cache is the TTL article cache shared between the request path and the
// refresh scheduler.
type Cache interface {
	Get(key string) ([]domain.Article, bool)
	Set(key string, articles []domain.Article, ttl time.Duration)
}
