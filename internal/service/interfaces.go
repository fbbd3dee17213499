package service

//go:generate mockgen -source=interfaces.go -destination=mocks/mocks.go -package=mocks

import (
	"context"
	"time"

	"news_pipeline/internal/domain"
)

type StoryStore interface {
	Add(ctx context.Context, input domain.StoryInput) (string, error)
	GetByLink(ctx context.Context, link string) (*domain.Story, error)
	Exists(ctx context.Context, link string) (bool, error)
	MarkEdited(ctx context.Context, link string, e domain.Enhancement) error
	MarkPublished(ctx context.Context, link string) error
	QueryByDateRange(ctx context.Context, start, end time.Time, q domain.StoryQuery) ([]domain.Story, error)
	UneditedUnpublished(ctx context.Context) ([]domain.Story, error)
	EditedUnpublished(ctx context.Context) ([]domain.Story, error)
	Published(ctx context.Context) ([]domain.Story, error)
}

type ResearchStore interface {
	SaveSnapshot(ctx context.Context, date time.Time, snapshot domain.ResearchSnapshot) error
	Snapshot(ctx context.Context, date time.Time) (*domain.ResearchSnapshot, error)
}

type PodcastStore interface {
	Save(ctx context.Context, transcript *domain.PodcastTranscript) error
	ByDate(ctx context.Context, date time.Time) (*domain.PodcastTranscript, error)
	AttachAudio(ctx context.Context, date time.Time, url string) error
}

type Source interface {
	ID() string
	Name() string
	FetchArticles(ctx context.Context, maxPages int) ([]domain.Article, error)
}

type RelevanceClassifier interface {
	ClassifyRelevance(ctx context.Context, headline, summary string) (*domain.RelevanceResult, error)
}

type SimilarityClassifier interface {
	ClassifySimilarity(ctx context.Context, article domain.Article, corpus []domain.Story) (*domain.SimilarityResult, error)
}

type Enhancer interface {
	Enhance(ctx context.Context, story *domain.Story) (*domain.Enhancement, error)
}

type TranscriptWriter interface {
	WriteTranscript(ctx context.Context, stories []domain.Story) (*domain.PodcastTranscript, error)
}

type Voicer interface {
	Synthesize(ctx context.Context, text string) (string, error)
}

type Publisher interface {
	PublishEvent(ctx context.Context, action string, story *domain.Story) error
	Close() error
}
