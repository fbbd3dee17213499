package service

import (
	"context"
	"fmt"
	"log/slog"
)

// PublishService publishes enhanced stories and emits story.published events.
type PublishService struct {
	stories   StoryStore
	publisher Publisher
	logger    *slog.Logger
}

func NewPublishService(stories StoryStore, publisher Publisher, logger *slog.Logger) *PublishService {
	return &PublishService{
		stories:   stories,
		publisher: publisher,
		logger:    logger.With("service", "publish"),
	}
}

// PublishEdited publishes every edited unpublished story. Publication is
// idempotent at the store level, so retrying after a partial run is safe.
// Returns the number of stories published.
func (s *PublishService) PublishEdited(ctx context.Context) (int, error) {
	ready, err := s.stories.EditedUnpublished(ctx)
	if err != nil {
		return 0, fmt.Errorf("list edited stories: %w", err)
	}
	if len(ready) == 0 {
		s.logger.Info("no stories ready to publish")
		return 0, nil
	}

	published := 0
	for i := range ready {
		story := &ready[i]

		if err := s.stories.MarkPublished(ctx, story.Link); err != nil {
			s.logger.Warn("failed to publish story", "link", story.Link, "error", err)
			continue
		}
		published++

		if s.publisher == nil {
			continue
		}
		// Re-fetch so the event carries date_published.
		fresh, err := s.stories.GetByLink(ctx, story.Link)
		if err != nil {
			s.logger.Warn("failed to load published story for event", "link", story.Link, "error", err)
			continue
		}
		if err := s.publisher.PublishEvent(ctx, "published", fresh); err != nil {
			s.logger.Warn("failed to publish event", "link", story.Link, "error", err)
		}
	}

	s.logger.Info("publication completed", "ready", len(ready), "published", published)
	return published, nil
}
