package service

import (
	"context"
	"fmt"
	"log/slog"
	"sort"
	"strings"
	"time"

	"newshub/internal/domain"
	"newshub/internal/preference"
)

// NewsService owns the personalization flow: resolve the caller's category,
// serve from cache, fall back to an upstream fetch and write the result
// back. The scheduler uses the same service to pre-warm categories, so both
// paths share one TTL and the staleness bound stays uniform.
type NewsService struct {
	source Source
	cache  Cache
	ttl    time.Duration
	logger *slog.Logger
}

func NewNewsService(source Source, cache Cache, ttl time.Duration, logger *slog.Logger) *NewsService {
	return &NewsService{
		source: source,
		cache:  cache,
		ttl:    ttl,
		logger: logger,
	}
}

// CacheKey derives the cache key for a category set: drop empties, sort,
// join. Two requests with the same effective set always compute the same
// key. An empty set keys the default category.
func CacheKey(categories ...string) string {
	clean := make([]string, 0, len(categories))
	for _, category := range categories {
		if category != "" {
			clean = append(clean, category)
		}
	}
	if len(clean) == 0 {
		return "news_" + preference.DefaultCategory
	}
	sort.Strings(clean)
	return "news_" + strings.Join(clean, ",")
}

// Personalized returns headlines for the caller's effective category,
// from cache when a live entry exists, otherwise fetched upstream and
// cached for the next caller.
func (s *NewsService) Personalized(ctx context.Context, pref domain.Preference) ([]domain.Article, error) {
	category := preference.Resolve(pref)
	key := CacheKey(category)

	if articles, ok := s.cache.Get(key); ok {
		s.logger.Debug("serving from cache", "category", category)
		return articles, nil
	}

	articles, err := s.source.TopHeadlines(ctx, category)
	if err != nil {
		return nil, fmt.Errorf("fetch %s headlines: %w", category, err)
	}

	s.cache.Set(key, articles, s.ttl)
	return articles, nil
}

// Search runs a keyword query straight against the provider. Results are
// not cached: keyword space is unbounded and hit rates would be negligible.
func (s *NewsService) Search(ctx context.Context, keyword string) ([]domain.Article, error) {
	articles, err := s.source.Everything(ctx, keyword)
	if err != nil {
		return nil, fmt.Errorf("search %q: %w", keyword, err)
	}
	return articles, nil
}

// RefreshCategory fetches one category and overwrites its cache entry. It
// is the scheduler's unit of work; the article count feeds tick stats.
func (s *NewsService) RefreshCategory(ctx context.Context, category string) (int, error) {
	articles, err := s.source.TopHeadlines(ctx, category)
	if err != nil {
		return 0, fmt.Errorf("refresh %s: %w", category, err)
	}

	s.cache.Set(CacheKey(category), articles, s.ttl)
	return len(articles), nil
}
