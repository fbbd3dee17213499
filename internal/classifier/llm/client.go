// Package llm adapts the pipeline's classification and generation steps onto
// an HTTP LLM generate endpoint. Every prompt asks the model for a single
// JSON object, which the client extracts from the reply and decodes.
package llm

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"news_pipeline/internal/domain"
)

// Config holds LLM client configuration.
type Config struct {
	BaseURL        string
	Model          string
	Timeout        time.Duration
	MaxAttempts    int
	InitialBackoff time.Duration
	MaxBackoff     time.Duration
}

type Client struct {
	httpClient     *http.Client
	baseURL        string
	model          string
	maxAttempts    int
	initialBackoff time.Duration
	maxBackoff     time.Duration
	logger         *slog.Logger
}

func New(cfg Config, logger *slog.Logger) *Client {
	return &Client{
		httpClient: &http.Client{
			Timeout: cfg.Timeout,
		},
		baseURL:        cfg.BaseURL,
		model:          cfg.Model,
		maxAttempts:    cfg.MaxAttempts,
		initialBackoff: cfg.InitialBackoff,
		maxBackoff:     cfg.MaxBackoff,
		logger:         logger.With("component", "llm"),
	}
}

// ClassifyRelevance judges whether an article fits the publication's coverage.
func (c *Client) ClassifyRelevance(ctx context.Context, headline, summary string) (*domain.RelevanceResult, error) {
	var payload relevancePayload
	if err := c.generateJSON(ctx, buildRelevancePrompt(headline, summary), &payload); err != nil {
		return nil, fmt.Errorf("relevance classification: %w", err)
	}

	return &domain.RelevanceResult{
		IsRelevant: payload.IsRelevant,
		Confidence: payload.Confidence,
		Reason:     payload.Reason,
	}, nil
}

// ClassifySimilarity judges whether an article duplicates coverage already in
// the published corpus. An empty corpus short-circuits without a model call.
func (c *Client) ClassifySimilarity(ctx context.Context, article domain.Article, corpus []domain.Story) (*domain.SimilarityResult, error) {
	if len(corpus) == 0 {
		return &domain.SimilarityResult{Reason: "no published stories to compare against"}, nil
	}

	var payload similarityPayload
	if err := c.generateJSON(ctx, buildSimilarityPrompt(article, corpus), &payload); err != nil {
		return nil, fmt.Errorf("similarity classification: %w", err)
	}

	return &domain.SimilarityResult{
		IsSimilar:      payload.IsSimilar,
		Confidence:     payload.Confidence,
		SimilarToIndex: payload.SimilarToIndex,
		Reason:         payload.Reason,
	}, nil
}

// Enhance rewrites a story into a publishable piece.
func (c *Client) Enhance(ctx context.Context, story *domain.Story) (*domain.Enhancement, error) {
	var payload enhancementPayload
	if err := c.generateJSON(ctx, buildEnhancementPrompt(story), &payload); err != nil {
		return nil, fmt.Errorf("enhancement: %w", err)
	}
	if payload.Body == "" {
		return nil, fmt.Errorf("enhancement returned empty body")
	}

	return &domain.Enhancement{
		Headline: payload.Headline,
		Summary:  payload.Summary,
		Body:     payload.Body,
		Tags:     payload.Tags,
		Reason:   payload.Reason,
	}, nil
}

// WriteTranscript compiles published stories into an episode script.
func (c *Client) WriteTranscript(ctx context.Context, stories []domain.Story) (*domain.PodcastTranscript, error) {
	var payload transcriptPayload
	if err := c.generateJSON(ctx, buildTranscriptPrompt(stories), &payload); err != nil {
		return nil, fmt.Errorf("transcript generation: %w", err)
	}
	if len(payload.Segments) == 0 {
		return nil, fmt.Errorf("transcript has no segments")
	}

	transcript := &domain.PodcastTranscript{
		Intro: payload.Intro,
		Outro: payload.Outro,
	}
	for _, seg := range payload.Segments {
		transcript.Segments = append(transcript.Segments, domain.PodcastSegment{
			Headline:   seg.Headline,
			Content:    seg.Content,
			Transition: seg.Transition,
		})
	}
	return transcript, nil
}

// generateJSON runs the prompt and decodes the JSON object embedded in the
// model's reply, retrying the whole round trip with exponential backoff.
// Malformed replies count as failed attempts since a retry usually fixes them.
func (c *Client) generateJSON(ctx context.Context, prompt string, out interface{}) error {
	var lastErr error

	for attempt := 1; attempt <= c.maxAttempts; attempt++ {
		reply, err := c.generate(ctx, prompt)
		if err == nil {
			err = decodeReply(reply, out)
			if err == nil {
				return nil
			}
		}
		lastErr = err

		if attempt == c.maxAttempts {
			break
		}

		backoff := c.calculateBackoff(attempt)
		c.logger.Warn("llm call failed, retrying",
			"attempt", attempt,
			"backoff", backoff,
			"error", err,
		)

		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(backoff):
		}
	}

	return fmt.Errorf("after %d attempts: %w", c.maxAttempts, lastErr)
}

func (c *Client) generate(ctx context.Context, prompt string) (string, error) {
	body, err := json.Marshal(generateRequest{
		Model:  c.model,
		Prompt: prompt,
	})
	if err != nil {
		return "", fmt.Errorf("marshal request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/api/generate", bytes.NewReader(body))
	if err != nil {
		return "", fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("execute request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("unexpected status: %d", resp.StatusCode)
	}

	var genResp generateResponse
	if err := json.NewDecoder(resp.Body).Decode(&genResp); err != nil {
		return "", fmt.Errorf("decode response: %w", err)
	}

	return genResp.Response, nil
}

func (c *Client) calculateBackoff(attempt int) time.Duration {
	backoff := c.initialBackoff
	for i := 1; i < attempt; i++ {
		backoff *= 2
	}
	if backoff > c.maxBackoff {
		backoff = c.maxBackoff
	}
	return backoff
}

// decodeReply extracts the outermost JSON object from a reply that may carry
// extra prose around it.
func decodeReply(reply string, out interface{}) error {
	start := strings.Index(reply, "{")
	end := strings.LastIndex(reply, "}")
	if start < 0 || end <= start {
		return fmt.Errorf("no JSON object in reply")
	}
	if err := json.Unmarshal([]byte(reply[start:end+1]), out); err != nil {
		return fmt.Errorf("decode reply: %w", err)
	}
	return nil
}
