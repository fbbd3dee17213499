package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"time"

	"news_pipeline/internal/config"
	"news_pipeline/internal/domain"
)

// PodcastService compiles published stories into a dated transcript and hands
// it to voice synthesis. Transcripts are keyed by creation date, not by the
// date range of the stories they cover.
type PodcastService struct {
	stories  StoryStore
	podcasts PodcastStore
	writer   TranscriptWriter
	voicer   Voicer
	logger   *slog.Logger
	config   config.PodcastConfig
}

func NewPodcastService(
	stories StoryStore,
	podcasts PodcastStore,
	writer TranscriptWriter,
	voicer Voicer,
	logger *slog.Logger,
	cfg config.PodcastConfig,
) *PodcastService {
	return &PodcastService{
		stories:  stories,
		podcasts: podcasts,
		writer:   writer,
		voicer:   voicer,
		logger:   logger.With("service", "podcast"),
		config:   cfg,
	}
}

// GenerateTranscript builds and persists the transcript for date. When a
// transcript already exists for that date and override is false, the existing
// transcript is returned unchanged. When no published stories fall inside the
// configured window it returns (nil, nil): nothing to do is not an error.
func (s *PodcastService) GenerateTranscript(ctx context.Context, date time.Time, override bool) (*domain.PodcastTranscript, error) {
	existing, err := s.podcasts.ByDate(ctx, date)
	if err == nil && !override {
		s.logger.Info("transcript already exists", "date", date.Format("2006-01-02"))
		return existing, nil
	}
	if err != nil && !errors.Is(err, domain.ErrNotFound) {
		return nil, fmt.Errorf("check existing transcript: %w", err)
	}

	windowStart := date.AddDate(0, 0, -(s.config.WindowDays - 1))
	stories, err := s.stories.QueryByDateRange(ctx, windowStart, date, domain.StoryQuery{PublishedOnly: true})
	if err != nil {
		return nil, fmt.Errorf("load published stories: %w", err)
	}
	if len(stories) == 0 {
		s.logger.Info("no published stories in window, skipping transcript",
			"date", date.Format("2006-01-02"),
			"window_days", s.config.WindowDays,
		)
		return nil, nil
	}

	transcript, err := s.writer.WriteTranscript(ctx, stories)
	if err != nil {
		return nil, fmt.Errorf("write transcript: %w", err)
	}

	transcript.DateCreated = date
	transcript.Stories = storyRefs(stories)

	if err := s.podcasts.Save(ctx, transcript); err != nil {
		return nil, fmt.Errorf("save transcript: %w", err)
	}

	s.logger.Info("transcript generated",
		"date", date.Format("2006-01-02"),
		"stories", len(stories),
		"override", override,
	)
	return transcript, nil
}

// VoiceTranscript synthesizes audio for the transcript created on date and
// attaches the hosted URL. If audio is already attached, the existing URL is
// returned without re-synthesizing.
func (s *PodcastService) VoiceTranscript(ctx context.Context, date time.Time) (string, error) {
	transcript, err := s.podcasts.ByDate(ctx, date)
	if err != nil {
		return "", fmt.Errorf("load transcript: %w", err)
	}
	if transcript.AudioURL != "" {
		return transcript.AudioURL, nil
	}

	url, err := s.voicer.Synthesize(ctx, transcript.PlainText())
	if err != nil {
		return "", fmt.Errorf("synthesize audio: %w", err)
	}

	if err := s.podcasts.AttachAudio(ctx, date, url); err != nil {
		return "", fmt.Errorf("attach audio: %w", err)
	}

	s.logger.Info("transcript voiced", "date", date.Format("2006-01-02"), "audio_url", url)
	return url, nil
}

func storyRefs(stories []domain.Story) []domain.StoryRef {
	refs := make([]domain.StoryRef, len(stories))
	for i, story := range stories {
		refs[i] = domain.StoryRef{
			Headline:      story.Headline,
			Summary:       story.Summary,
			Link:          story.Link,
			DatePublished: story.DatePublished,
		}
	}
	return refs
}
