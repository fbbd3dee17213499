// Package scraper fetches raw article records from the research feed service.
package scraper

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"news_pipeline/internal/domain"
)

const (
	SourceID   = "research-feed"
	SourceName = "Research Feed"
)

// Config holds scraper source configuration.
type Config struct {
	BaseURL        string
	PageSize       int
	Timeout        time.Duration
	MaxAttempts    int
	InitialBackoff time.Duration
	MaxBackoff     time.Duration
}

// Source implements service.Source for the research feed API.
type Source struct {
	httpClient     *http.Client
	baseURL        string
	pageSize       int
	maxAttempts    int
	initialBackoff time.Duration
	maxBackoff     time.Duration
	logger         *slog.Logger
}

// New creates a new research feed source.
func New(cfg Config, logger *slog.Logger) *Source {
	return &Source{
		httpClient: &http.Client{
			Timeout: cfg.Timeout,
		},
		baseURL:        cfg.BaseURL,
		pageSize:       cfg.PageSize,
		maxAttempts:    cfg.MaxAttempts,
		initialBackoff: cfg.InitialBackoff,
		maxBackoff:     cfg.MaxBackoff,
		logger:         logger.With("source", SourceID),
	}
}

// ID returns the source identifier.
func (s *Source) ID() string {
	return SourceID
}

// Name returns human-readable name.
func (s *Source) Name() string {
	return SourceName
}

// FetchArticles fetches articles from the research feed API.
func (s *Source) FetchArticles(ctx context.Context, maxPages int) ([]domain.Article, error) {
	var allArticles []feedArticle

	for page := 0; page < maxPages; page++ {
		resp, err := s.fetchPage(ctx, page)
		if err != nil {
			return s.transform(allArticles), fmt.Errorf("fetch page %d: %w", page, err)
		}

		allArticles = append(allArticles, resp.Articles...)

		s.logger.Debug("fetched page",
			"page", page,
			"articles", len(resp.Articles),
			"total", len(allArticles),
		)

		if page >= resp.PageInfo.NumPages-1 {
			break
		}
	}

	return s.transform(allArticles), nil
}

func (s *Source) fetchPage(ctx context.Context, page int) (*feedResponse, error) {
	url := fmt.Sprintf("%s?pageSize=%d&page=%d", s.baseURL, s.pageSize, page)

	var resp *feedResponse
	var err error

	for attempt := 1; attempt <= s.maxAttempts; attempt++ {
		resp, err = s.doRequest(ctx, url)
		if err == nil {
			return resp, nil
		}

		if attempt == s.maxAttempts {
			break
		}

		backoff := s.calculateBackoff(attempt)
		s.logger.Warn("request failed, retrying",
			"attempt", attempt,
			"backoff", backoff,
			"error", err,
		)

		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		case <-time.After(backoff):
		}
	}

	return nil, fmt.Errorf("after %d attempts: %w", s.maxAttempts, err)
}

func (s *Source) doRequest(ctx context.Context, url string) (*feedResponse, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}

	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", "NewsPipeline/1.0")

	resp, err := s.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("execute request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("unexpected status: %d", resp.StatusCode)
	}

	var feedResp feedResponse
	if err := json.NewDecoder(resp.Body).Decode(&feedResp); err != nil {
		return nil, fmt.Errorf("decode response: %w", err)
	}

	return &feedResp, nil
}

func (s *Source) calculateBackoff(attempt int) time.Duration {
	backoff := s.initialBackoff
	for i := 1; i < attempt; i++ {
		backoff *= 2
	}
	if backoff > s.maxBackoff {
		backoff = s.maxBackoff
	}
	return backoff
}

func (s *Source) transform(raw []feedArticle) []domain.Article {
	articles := make([]domain.Article, 0, len(raw))
	now := time.Now()

	for _, a := range raw {
		if a.Link == "" {
			s.logger.Warn("skipping article without link", "headline", a.Headline)
			continue
		}

		article := domain.Article{
			Headline:  a.Headline,
			Summary:   a.Summary,
			Link:      a.Link,
			Source:    a.Source,
			DateFound: now,
			Content:   a.Content,
			Images:    a.Images,
			Body:      a.Body,
		}
		if article.Source == "" {
			article.Source = SourceID
		}

		if a.DatePosted != "" {
			posted, err := time.Parse(time.RFC3339, a.DatePosted)
			if err != nil {
				s.logger.Warn("failed to parse date",
					"link", a.Link,
					"date", a.DatePosted,
				)
			} else {
				article.DatePosted = &posted
			}
		}

		articles = append(articles, article)
	}

	return articles
}
