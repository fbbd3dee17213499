// Package voice adapts transcript voicing onto an HTTP text-to-speech service
// that synthesizes audio, uploads it, and returns the hosted URL.
package voice

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"time"
)

// Config holds TTS client configuration.
type Config struct {
	BaseURL string
	Voice   string
	Timeout time.Duration
}

type Client struct {
	httpClient *http.Client
	baseURL    string
	voice      string
	logger     *slog.Logger
}

func New(cfg Config, logger *slog.Logger) *Client {
	return &Client{
		httpClient: &http.Client{
			Timeout: cfg.Timeout,
		},
		baseURL: cfg.BaseURL,
		voice:   cfg.Voice,
		logger:  logger.With("component", "voice"),
	}
}

type synthesizeRequest struct {
	Text  string `json:"text"`
	Voice string `json:"voice"`
}

type synthesizeResponse struct {
	AudioURL string `json:"audio_url"`
}

// Synthesize voices the text and returns the hosted audio URL.
func (c *Client) Synthesize(ctx context.Context, text string) (string, error) {
	body, err := json.Marshal(synthesizeRequest{
		Text:  text,
		Voice: c.voice,
	})
	if err != nil {
		return "", fmt.Errorf("marshal request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/synthesize", bytes.NewReader(body))
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

	var synthResp synthesizeResponse
	if err := json.NewDecoder(resp.Body).Decode(&synthResp); err != nil {
		return "", fmt.Errorf("decode response: %w", err)
	}
	if synthResp.AudioURL == "" {
		return "", fmt.Errorf("synthesis returned no audio url")
	}

	c.logger.Debug("synthesized audio", "chars", len(text), "audio_url", synthResp.AudioURL)
	return synthResp.AudioURL, nil
}
