// Package newsapi is the client for the upstream news provider.
package newsapi

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"net/url"
	"time"

	"newshub/internal/domain"
)

// UpstreamError reports a failed provider call: non-success HTTP status,
// network failure/timeout (StatusCode 0), or a malformed payload.
type UpstreamError struct {
	StatusCode int
	Message    string
}

func (e *UpstreamError) Error() string {
	if e.StatusCode == 0 {
		return fmt.Sprintf("upstream: %s", e.Message)
	}
	return fmt.Sprintf("upstream status %d: %s", e.StatusCode, e.Message)
}

// Config holds provider client configuration.
type Config struct {
	APIKey  string
	BaseURL string
	Timeout time.Duration
}

// Client queries the provider's top-headlines and everything endpoints.
type Client struct {
	httpClient *http.Client
	apiKey     string
	baseURL    string
	logger     *slog.Logger
}

func New(cfg Config, logger *slog.Logger) *Client {
	return &Client{
		httpClient: &http.Client{
			Timeout: cfg.Timeout,
		},
		apiKey:  cfg.APIKey,
		baseURL: cfg.BaseURL,
		logger:  logger.With("source", "newsapi"),
	}
}

// TopHeadlines fetches current headlines for one category.
func (c *Client) TopHeadlines(ctx context.Context, category string) ([]domain.Article, error) {
	params := url.Values{}
	params.Set("category", category)
	params.Set("language", "en")
	return c.fetch(ctx, "/top-headlines", params)
}

// Everything searches articles by keyword.
func (c *Client) Everything(ctx context.Context, keyword string) ([]domain.Article, error) {
	params := url.Values{}
	params.Set("q", keyword)
	return c.fetch(ctx, "/everything", params)
}

func (c *Client) fetch(ctx context.Context, path string, params url.Values) ([]domain.Article, error) {
	params.Set("apiKey", c.apiKey)
	requestURL := c.baseURL + path + "?" + params.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, requestURL, nil)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", "NewsHub/1.0")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, &UpstreamError{Message: err.Error()}
	}
	defer resp.Body.Close()

	var apiResp apiResponse
	if err := json.NewDecoder(resp.Body).Decode(&apiResp); err != nil {
		if resp.StatusCode != http.StatusOK {
			return nil, &UpstreamError{StatusCode: resp.StatusCode, Message: resp.Status}
		}
		return nil, &UpstreamError{StatusCode: resp.StatusCode, Message: "decode response: " + err.Error()}
	}

	if resp.StatusCode != http.StatusOK {
		message := apiResp.Message
		if message == "" {
			message = resp.Status
		}
		return nil, &UpstreamError{StatusCode: resp.StatusCode, Message: message}
	}

	return c.transform(apiResp.Articles), nil
}

// transform maps wire articles to domain articles. A missing/null article
// list normalizes to an empty slice, never nil.
func (c *Client) transform(articles []apiArticle) []domain.Article {
	result := make([]domain.Article, 0, len(articles))

	for _, a := range articles {
		publishedAt, err := time.Parse(time.RFC3339, a.PublishedAt)
		if err != nil && a.PublishedAt != "" {
			c.logger.Warn("failed to parse publishedAt",
				"url", a.URL,
				"publishedAt", a.PublishedAt,
			)
		}

		result = append(result, domain.Article{
			ID:          a.URL,
			Source:      a.Source.Name,
			Author:      a.Author,
			Title:       a.Title,
			Description: a.Description,
			URL:         a.URL,
			ImageURL:    a.URLToImage,
			PublishedAt: publishedAt,
		})
	}

	return result
}
