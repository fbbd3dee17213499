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

// FilterService turns a batch of scraped articles into new stories, rejecting
// articles that are already known by link, off-topic, or duplicate recent
// published coverage. Articles are processed sequentially in batch order to
// bound classifier load and keep first-match-wins semantics deterministic.
type FilterService struct {
	stories    StoryStore
	relevance  RelevanceClassifier
	similarity SimilarityClassifier
	publisher  Publisher
	logger     *slog.Logger
	config     config.FilterConfig
	now        func() time.Time
}

func NewFilterService(
	stories StoryStore,
	relevance RelevanceClassifier,
	similarity SimilarityClassifier,
	publisher Publisher,
	logger *slog.Logger,
	cfg config.FilterConfig,
) *FilterService {
	return &FilterService{
		stories:    stories,
		relevance:  relevance,
		similarity: similarity,
		publisher:  publisher,
		logger:     logger.With("service", "filter"),
		config:     cfg,
		now:        time.Now,
	}
}

// FilterBatch classifies every article and creates stories for the ones that
// pass. Classifier failures skip the affected article and never abort the
// batch. An empty batch returns empty stats, not an error.
func (s *FilterService) FilterBatch(ctx context.Context, articles []domain.Article) ([]domain.Story, *domain.FilterStats, error) {
	startTime := time.Now()
	stats := &domain.FilterStats{Received: len(articles)}

	if len(articles) == 0 {
		s.logger.Info("no articles to filter")
		return nil, stats, nil
	}

	// The published corpus is fetched once per batch, bounded by the
	// configured window, not reloaded per article.
	corpusStart := s.now().AddDate(0, 0, -s.config.CorpusDays)
	corpus, err := s.stories.QueryByDateRange(ctx, corpusStart, s.now(), domain.StoryQuery{
		PublishedOnly: true,
		Limit:         s.config.CorpusLimit,
	})
	if err != nil {
		return nil, nil, fmt.Errorf("load published corpus: %w", err)
	}

	s.logger.Info("filtering batch", "articles", len(articles), "corpus", len(corpus))

	var created []domain.Story
	for i := range articles {
		article := &articles[i]

		story, outcome := s.filterOne(ctx, article, corpus)
		switch outcome {
		case outcomeKnown:
			stats.Known++
		case outcomeIrrelevant:
			stats.Irrelevant++
		case outcomeDuplicate:
			stats.Duplicates++
		case outcomeError:
			stats.Errors++
		case outcomeCreated:
			stats.Created++
			created = append(created, *story)
		}
	}

	stats.Duration = time.Since(startTime)

	s.logger.Info("filter batch completed",
		"received", stats.Received,
		"known", stats.Known,
		"irrelevant", stats.Irrelevant,
		"duplicates", stats.Duplicates,
		"created", stats.Created,
		"errors", stats.Errors,
		"duration", stats.Duration,
	)

	return created, stats, nil
}

type filterOutcome int

const (
	outcomeCreated filterOutcome = iota
	outcomeKnown
	outcomeIrrelevant
	outcomeDuplicate
	outcomeError
)

func (s *FilterService) filterOne(ctx context.Context, article *domain.Article, corpus []domain.Story) (*domain.Story, filterOutcome) {
	exists, err := s.stories.Exists(ctx, article.Link)
	if err != nil {
		s.logger.Warn("existence check failed", "link", article.Link, "error", err)
		return nil, outcomeError
	}
	if exists {
		s.logger.Debug("skipping known link", "link", article.Link)
		return nil, outcomeKnown
	}

	rel, err := s.relevance.ClassifyRelevance(ctx, article.Headline, article.Summary)
	if err != nil {
		s.logger.Warn("relevance classification failed", "link", article.Link, "error", err)
		return nil, outcomeError
	}
	if !rel.IsRelevant || rel.Confidence < s.config.RelevanceThreshold {
		s.logger.Debug("rejected as irrelevant",
			"link", article.Link,
			"confidence", rel.Confidence,
			"reason", rel.Reason,
		)
		return nil, outcomeIrrelevant
	}

	sim, err := s.similarity.ClassifySimilarity(ctx, *article, corpus)
	if err != nil {
		s.logger.Warn("similarity classification failed", "link", article.Link, "error", err)
		return nil, outcomeError
	}
	if sim.IsSimilar && sim.Confidence > s.config.SimilarityThreshold {
		s.logger.Debug("rejected as duplicate coverage",
			"link", article.Link,
			"confidence", sim.Confidence,
			"reason", sim.Reason,
		)
		return nil, outcomeDuplicate
	}

	input := domain.StoryInput{
		Headline:  article.Headline,
		Summary:   article.Summary,
		Link:      article.Link,
		Source:    article.Source,
		DateAdded: s.now(),
		Images:    article.Images,
	}
	if _, err := s.stories.Add(ctx, input); err != nil {
		if errors.Is(err, domain.ErrDuplicateLink) {
			return nil, outcomeKnown
		}
		s.logger.Warn("failed to add story", "link", article.Link, "error", err)
		return nil, outcomeError
	}

	// Re-fetch to capture the assigned id.
	story, err := s.stories.GetByLink(ctx, article.Link)
	if err != nil {
		s.logger.Warn("failed to load created story", "link", article.Link, "error", err)
		return nil, outcomeError
	}

	if s.publisher != nil {
		if err := s.publisher.PublishEvent(ctx, "created", story); err != nil {
			s.logger.Warn("failed to publish created event", "link", story.Link, "error", err)
		}
	}

	return story, outcomeCreated
}
