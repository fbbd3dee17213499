package service

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"news_pipeline/internal/config"
	"news_pipeline/internal/domain"
)

// PipelineService runs the full pipeline: scrape, snapshot, filter/dedup,
// enhance, publish, transcript, voice. Stages run sequentially; one run
// processes one batch end to end.
type PipelineService struct {
	source   Source
	research ResearchStore
	filter   *FilterService
	enhance  *EnhanceService
	publish  *PublishService
	podcast  *PodcastService
	logger   *slog.Logger
	config   config.PipelineConfig
	now      func() time.Time
}

func NewPipelineService(
	source Source,
	research ResearchStore,
	filter *FilterService,
	enhance *EnhanceService,
	publish *PublishService,
	podcast *PodcastService,
	logger *slog.Logger,
	cfg config.PipelineConfig,
) *PipelineService {
	return &PipelineService{
		source:   source,
		research: research,
		filter:   filter,
		enhance:  enhance,
		publish:  publish,
		podcast:  podcast,
		logger:   logger.With("service", "pipeline"),
		config:   cfg,
		now:      time.Now,
	}
}

// Run executes one pipeline pass. A scrape failure aborts the run; failures
// in later stages are logged, counted, and the run continues where the
// remaining stages can still make progress.
func (s *PipelineService) Run(ctx context.Context) (*domain.PipelineStats, error) {
	startTime := time.Now()
	today := s.now()

	s.logger.Info("starting pipeline run", "source", s.source.Name(), "max_pages", s.config.MaxPagesPerRun)

	articles, err := s.source.FetchArticles(ctx, s.config.MaxPagesPerRun)
	if err != nil {
		return nil, fmt.Errorf("fetch articles: %w", err)
	}

	stats := &domain.PipelineStats{Scraped: len(articles)}

	// Research snapshots are a cache; a failed save does not block filtering.
	snapshot := domain.ResearchSnapshot{
		Articles:    articles,
		LastUpdated: today,
		Source:      s.source.ID(),
	}
	if err := s.research.SaveSnapshot(ctx, today, snapshot); err != nil {
		s.logger.Warn("failed to save research snapshot", "error", err)
		stats.Errors++
	}

	_, filterStats, err := s.filter.FilterBatch(ctx, articles)
	if err != nil {
		return stats, fmt.Errorf("filter batch: %w", err)
	}
	stats.Filter = *filterStats

	enhanced, err := s.enhance.EnhancePending(ctx)
	if err != nil {
		return stats, fmt.Errorf("enhance pending: %w", err)
	}
	stats.Enhanced = enhanced

	published, err := s.publish.PublishEdited(ctx)
	if err != nil {
		return stats, fmt.Errorf("publish edited: %w", err)
	}
	stats.Published = published

	transcript, err := s.podcast.GenerateTranscript(ctx, today, false)
	if err != nil {
		s.logger.Error("transcript generation failed", "error", err)
		stats.Errors++
	}
	if transcript != nil {
		stats.Transcript = true
		url, err := s.podcast.VoiceTranscript(ctx, today)
		if err != nil {
			s.logger.Error("voicing failed", "error", err)
			stats.Errors++
		} else {
			stats.AudioURL = url
		}
	}

	stats.Duration = time.Since(startTime)

	s.logger.Info("pipeline run completed",
		"scraped", stats.Scraped,
		"created", stats.Filter.Created,
		"enhanced", stats.Enhanced,
		"published", stats.Published,
		"transcript", stats.Transcript,
		"errors", stats.Errors,
		"duration", stats.Duration,
	)

	return stats, nil
}
