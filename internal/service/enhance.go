package service

import (
	"context"
	"fmt"
	"log/slog"
)

// EnhanceService turns unedited stories into publishable ones via the
// enhancement collaborator. Enhancement always precedes publication.
type EnhanceService struct {
	stories  StoryStore
	enhancer Enhancer
	logger   *slog.Logger
}

func NewEnhanceService(stories StoryStore, enhancer Enhancer, logger *slog.Logger) *EnhanceService {
	return &EnhanceService{
		stories:  stories,
		enhancer: enhancer,
		logger:   logger.With("service", "enhance"),
	}
}

// EnhancePending enhances every unedited unpublished story and marks it
// edited. Per-story failures are logged and skipped. Returns the number of
// stories enhanced.
func (s *EnhanceService) EnhancePending(ctx context.Context) (int, error) {
	pending, err := s.stories.UneditedUnpublished(ctx)
	if err != nil {
		return 0, fmt.Errorf("list pending stories: %w", err)
	}
	if len(pending) == 0 {
		s.logger.Info("no stories pending enhancement")
		return 0, nil
	}

	enhanced := 0
	for i := range pending {
		story := &pending[i]

		enhancement, err := s.enhancer.Enhance(ctx, story)
		if err != nil {
			s.logger.Warn("enhancement failed", "link", story.Link, "error", err)
			continue
		}

		if err := s.stories.MarkEdited(ctx, story.Link, *enhancement); err != nil {
			s.logger.Warn("failed to mark story edited", "link", story.Link, "error", err)
			continue
		}
		enhanced++
	}

	s.logger.Info("enhancement completed", "pending", len(pending), "enhanced", enhanced)
	return enhanced, nil
}
