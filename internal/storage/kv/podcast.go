package kv

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	"news_pipeline/internal/domain"
)

const podcastNamespace = "podcasts"

// PodcastStore keeps one transcript per calendar date of creation. Transcripts
// are kept indefinitely.
type PodcastStore struct {
	backend Backend
	logger  *slog.Logger
}

func NewPodcastStore(backend Backend, logger *slog.Logger) *PodcastStore {
	return &PodcastStore{
		backend: backend,
		logger:  logger.With("store", "podcasts"),
	}
}

// Save stores the transcript under its creation date, replacing any earlier
// transcript for that date.
func (s *PodcastStore) Save(ctx context.Context, transcript *domain.PodcastTranscript) error {
	data, err := json.Marshal(transcript)
	if err != nil {
		return fmt.Errorf("marshal transcript: %w", err)
	}
	return s.backend.Set(ctx, podcastNamespace, DayKey(transcript.DateCreated), data, 0)
}

// ByDate returns the transcript created on date, or domain.ErrNotFound.
func (s *PodcastStore) ByDate(ctx context.Context, date time.Time) (*domain.PodcastTranscript, error) {
	data, found, err := s.backend.Get(ctx, podcastNamespace, DayKey(date))
	if err != nil {
		return nil, err
	}
	if !found {
		return nil, domain.ErrNotFound
	}

	var transcript domain.PodcastTranscript
	if err := json.Unmarshal(data, &transcript); err != nil {
		s.logger.Warn("dropping unparseable transcript", "date", DayKey(date), "error", err)
		return nil, domain.ErrNotFound
	}
	return &transcript, nil
}

// AttachAudio records the hosted audio URL on the transcript for date. The
// URL is set once; if one is already attached the call is a no-op so the
// voicing callback can retry safely.
func (s *PodcastStore) AttachAudio(ctx context.Context, date time.Time, url string) error {
	transcript, err := s.ByDate(ctx, date)
	if err != nil {
		return err
	}
	if transcript.AudioURL != "" {
		s.logger.Debug("audio already attached", "date", DayKey(date))
		return nil
	}

	transcript.AudioURL = url
	return s.Save(ctx, transcript)
}
