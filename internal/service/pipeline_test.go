package service

import (
	"context"
	"errors"
	"log/slog"
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"

	"news_pipeline/internal/config"
	"news_pipeline/internal/domain"
	"news_pipeline/internal/service/mocks"
)

// PipelineServiceTestSuite drives a full pipeline run through the real stage
// services with mocked collaborators underneath.
type PipelineServiceTestSuite struct {
	suite.Suite
	ctrl *gomock.Controller

	source     *mocks.MockSource
	research   *mocks.MockResearchStore
	stories    *mocks.MockStoryStore
	podcasts   *mocks.MockPodcastStore
	relevance  *mocks.MockRelevanceClassifier
	similarity *mocks.MockSimilarityClassifier
	enhancer   *mocks.MockEnhancer
	writer     *mocks.MockTranscriptWriter
	voicer     *mocks.MockVoicer
	publisher  *mocks.MockPublisher

	service *PipelineService
	today   time.Time
}

func (s *PipelineServiceTestSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())

	s.source = mocks.NewMockSource(s.ctrl)
	s.research = mocks.NewMockResearchStore(s.ctrl)
	s.stories = mocks.NewMockStoryStore(s.ctrl)
	s.podcasts = mocks.NewMockPodcastStore(s.ctrl)
	s.relevance = mocks.NewMockRelevanceClassifier(s.ctrl)
	s.similarity = mocks.NewMockSimilarityClassifier(s.ctrl)
	s.enhancer = mocks.NewMockEnhancer(s.ctrl)
	s.writer = mocks.NewMockTranscriptWriter(s.ctrl)
	s.voicer = mocks.NewMockVoicer(s.ctrl)
	s.publisher = mocks.NewMockPublisher(s.ctrl)

	s.today = time.Date(2026, 3, 10, 9, 0, 0, 0, time.UTC)

	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelError}))

	filter := NewFilterService(s.stories, s.relevance, s.similarity, s.publisher, logger, config.FilterConfig{
		RelevanceThreshold:  0.6,
		SimilarityThreshold: 0.6,
		CorpusDays:          30,
		CorpusLimit:         50,
	})
	filter.now = func() time.Time { return s.today }

	enhance := NewEnhanceService(s.stories, s.enhancer, logger)
	publish := NewPublishService(s.stories, s.publisher, logger)
	podcast := NewPodcastService(s.stories, s.podcasts, s.writer, s.voicer, logger, config.PodcastConfig{
		WindowDays: 1,
	})

	s.service = NewPipelineService(s.source, s.research, filter, enhance, publish, podcast, logger, config.PipelineConfig{
		MaxPagesPerRun: 5,
	})
	s.service.now = func() time.Time { return s.today }
}

func (s *PipelineServiceTestSuite) TearDownTest() {
	s.ctrl.Finish()
}

func TestPipelineServiceTestSuite(t *testing.T) {
	suite.Run(t, new(PipelineServiceTestSuite))
}

func (s *PipelineServiceTestSuite) TestRun_EndToEnd() {
	ctx := context.Background()
	link := "https://example.com/fresh"

	s.source.EXPECT().Name().Return("Research Feed").AnyTimes()
	s.source.EXPECT().ID().Return("research-feed").AnyTimes()

	articles := []domain.Article{{Headline: "Fresh", Summary: "Summary", Link: link, Source: "research-feed"}}
	s.source.EXPECT().FetchArticles(ctx, 5).Return(articles, nil)
	s.research.EXPECT().SaveSnapshot(ctx, s.today, gomock.Any()).Return(nil)

	// Filter stage: empty corpus, one fresh relevant article.
	s.stories.EXPECT().
		QueryByDateRange(ctx, s.today.AddDate(0, 0, -30), s.today, domain.StoryQuery{PublishedOnly: true, Limit: 50}).
		Return([]domain.Story{}, nil)
	s.stories.EXPECT().Exists(ctx, link).Return(false, nil)
	s.relevance.EXPECT().ClassifyRelevance(ctx, "Fresh", "Summary").
		Return(&domain.RelevanceResult{IsRelevant: true, Confidence: 0.9}, nil)
	s.similarity.EXPECT().ClassifySimilarity(ctx, articles[0], []domain.Story{}).
		Return(&domain.SimilarityResult{}, nil)
	s.stories.EXPECT().Add(ctx, gomock.Any()).Return("id-1", nil)

	created := &domain.Story{ID: "id-1", Headline: "Fresh", Link: link, DateAdded: s.today}
	s.stories.EXPECT().GetByLink(ctx, link).Return(created, nil)
	s.publisher.EXPECT().PublishEvent(ctx, "created", created).Return(nil)

	// Enhance stage.
	s.stories.EXPECT().UneditedUnpublished(ctx).Return([]domain.Story{*created}, nil)
	enhancement := domain.Enhancement{Body: "Full body."}
	s.enhancer.EXPECT().Enhance(ctx, gomock.Any()).Return(&enhancement, nil)
	s.stories.EXPECT().MarkEdited(ctx, link, enhancement).Return(nil)

	// Publish stage.
	edited := *created
	edited.Edited = true
	s.stories.EXPECT().EditedUnpublished(ctx).Return([]domain.Story{edited}, nil)
	s.stories.EXPECT().MarkPublished(ctx, link).Return(nil)

	published := edited
	published.Published = true
	published.DatePublished = &s.today
	s.stories.EXPECT().GetByLink(ctx, link).Return(&published, nil)
	s.publisher.EXPECT().PublishEvent(ctx, "published", &published).Return(nil)

	// Podcast stage.
	s.podcasts.EXPECT().ByDate(ctx, s.today).Return(nil, domain.ErrNotFound)
	s.stories.EXPECT().
		QueryByDateRange(ctx, s.today, s.today, domain.StoryQuery{PublishedOnly: true}).
		Return([]domain.Story{published}, nil)

	transcript := &domain.PodcastTranscript{
		Intro:    "Welcome.",
		Segments: []domain.PodcastSegment{{Headline: "Fresh", Content: "Segment."}},
	}
	s.writer.EXPECT().WriteTranscript(ctx, []domain.Story{published}).Return(transcript, nil)
	s.podcasts.EXPECT().Save(ctx, transcript).Return(nil)

	s.podcasts.EXPECT().ByDate(ctx, s.today).Return(transcript, nil)
	s.voicer.EXPECT().Synthesize(ctx, transcript.PlainText()).Return("https://cdn.example.com/ep1.mp3", nil)
	s.podcasts.EXPECT().AttachAudio(ctx, s.today, "https://cdn.example.com/ep1.mp3").Return(nil)

	stats, err := s.service.Run(ctx)

	s.NoError(err)
	s.Equal(1, stats.Scraped)
	s.Equal(1, stats.Filter.Created)
	s.Equal(1, stats.Enhanced)
	s.Equal(1, stats.Published)
	s.True(stats.Transcript)
	s.Equal("https://cdn.example.com/ep1.mp3", stats.AudioURL)
	s.Equal(0, stats.Errors)
}

func (s *PipelineServiceTestSuite) TestRun_FetchFailureAborts() {
	ctx := context.Background()

	s.source.EXPECT().Name().Return("Research Feed").AnyTimes()
	s.source.EXPECT().FetchArticles(ctx, 5).Return(nil, errors.New("feed down"))

	_, err := s.service.Run(ctx)

	s.Error(err)
	s.Contains(err.Error(), "fetch articles")
}

func (s *PipelineServiceTestSuite) TestRun_SnapshotFailureDoesNotAbort() {
	ctx := context.Background()

	s.source.EXPECT().Name().Return("Research Feed").AnyTimes()
	s.source.EXPECT().ID().Return("research-feed").AnyTimes()
	s.source.EXPECT().FetchArticles(ctx, 5).Return([]domain.Article{}, nil)
	s.research.EXPECT().SaveSnapshot(ctx, s.today, gomock.Any()).Return(errors.New("backend down"))

	// Empty batch short-circuits the filter; later stages still run.
	s.stories.EXPECT().UneditedUnpublished(ctx).Return(nil, nil)
	s.stories.EXPECT().EditedUnpublished(ctx).Return(nil, nil)

	s.podcasts.EXPECT().ByDate(ctx, s.today).Return(nil, domain.ErrNotFound)
	s.stories.EXPECT().
		QueryByDateRange(ctx, s.today, s.today, domain.StoryQuery{PublishedOnly: true}).
		Return([]domain.Story{}, nil)

	stats, err := s.service.Run(ctx)

	s.NoError(err)
	s.Equal(0, stats.Scraped)
	s.False(stats.Transcript)
	s.Equal(1, stats.Errors)
}
