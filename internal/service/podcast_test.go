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

type PodcastServiceTestSuite struct {
	suite.Suite
	ctrl *gomock.Controller

	stories  *mocks.MockStoryStore
	podcasts *mocks.MockPodcastStore
	writer   *mocks.MockTranscriptWriter
	voicer   *mocks.MockVoicer

	service *PodcastService
}

func (s *PodcastServiceTestSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())

	s.stories = mocks.NewMockStoryStore(s.ctrl)
	s.podcasts = mocks.NewMockPodcastStore(s.ctrl)
	s.writer = mocks.NewMockTranscriptWriter(s.ctrl)
	s.voicer = mocks.NewMockVoicer(s.ctrl)

	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelError}))
	s.service = NewPodcastService(s.stories, s.podcasts, s.writer, s.voicer, logger, config.PodcastConfig{
		WindowDays: 1,
	})
}

func (s *PodcastServiceTestSuite) TearDownTest() {
	s.ctrl.Finish()
}

func TestPodcastServiceTestSuite(t *testing.T) {
	suite.Run(t, new(PodcastServiceTestSuite))
}

func (s *PodcastServiceTestSuite) published(link string, date time.Time) domain.Story {
	return domain.Story{
		ID:            "id-" + link,
		Headline:      "Headline " + link,
		Summary:       "Summary " + link,
		Link:          link,
		Edited:        true,
		Published:     true,
		DatePublished: &date,
	}
}

func (s *PodcastServiceTestSuite) TestGenerateTranscript_BuildsAndSaves() {
	ctx := context.Background()
	date := time.Date(2026, 3, 10, 9, 0, 0, 0, time.UTC)
	stories := []domain.Story{
		s.published("https://example.com/1", date),
		s.published("https://example.com/2", date),
	}

	s.podcasts.EXPECT().ByDate(ctx, date).Return(nil, domain.ErrNotFound)
	s.stories.EXPECT().
		QueryByDateRange(ctx, date, date, domain.StoryQuery{PublishedOnly: true}).
		Return(stories, nil)

	written := &domain.PodcastTranscript{
		Intro: "Welcome.",
		Segments: []domain.PodcastSegment{
			{Headline: "Story one", Content: "Segment one."},
			{Headline: "Story two", Content: "Segment two."},
		},
		Outro: "Goodbye.",
	}
	s.writer.EXPECT().WriteTranscript(ctx, stories).Return(written, nil)
	s.podcasts.EXPECT().Save(ctx, written).Return(nil)

	transcript, err := s.service.GenerateTranscript(ctx, date, false)

	s.NoError(err)
	s.Require().NotNil(transcript)
	s.Equal(date, transcript.DateCreated)
	s.Len(transcript.Stories, 2)
	s.Equal("https://example.com/1", transcript.Stories[0].Link)
}

func (s *PodcastServiceTestSuite) TestGenerateTranscript_ExistingWithoutOverride() {
	ctx := context.Background()
	date := time.Date(2026, 3, 10, 9, 0, 0, 0, time.UTC)

	existing := &domain.PodcastTranscript{Intro: "Already written.", DateCreated: date}
	s.podcasts.EXPECT().ByDate(ctx, date).Return(existing, nil)

	transcript, err := s.service.GenerateTranscript(ctx, date, false)

	s.NoError(err)
	s.Same(existing, transcript)
}

func (s *PodcastServiceTestSuite) TestGenerateTranscript_OverrideRegenerates() {
	ctx := context.Background()
	date := time.Date(2026, 3, 10, 9, 0, 0, 0, time.UTC)
	stories := []domain.Story{s.published("https://example.com/1", date)}

	existing := &domain.PodcastTranscript{Intro: "Already written.", DateCreated: date}
	s.podcasts.EXPECT().ByDate(ctx, date).Return(existing, nil)
	s.stories.EXPECT().
		QueryByDateRange(ctx, date, date, domain.StoryQuery{PublishedOnly: true}).
		Return(stories, nil)

	rewritten := &domain.PodcastTranscript{
		Intro:    "A fresh take.",
		Segments: []domain.PodcastSegment{{Headline: "Story one", Content: "Segment one."}},
	}
	s.writer.EXPECT().WriteTranscript(ctx, stories).Return(rewritten, nil)
	s.podcasts.EXPECT().Save(ctx, rewritten).Return(nil)

	transcript, err := s.service.GenerateTranscript(ctx, date, true)

	s.NoError(err)
	s.Require().NotNil(transcript)
	s.Equal("A fresh take.", transcript.Intro)
}

func (s *PodcastServiceTestSuite) TestGenerateTranscript_NoStoriesInWindow() {
	ctx := context.Background()
	date := time.Date(2026, 3, 10, 9, 0, 0, 0, time.UTC)

	s.podcasts.EXPECT().ByDate(ctx, date).Return(nil, domain.ErrNotFound)
	s.stories.EXPECT().
		QueryByDateRange(ctx, date, date, domain.StoryQuery{PublishedOnly: true}).
		Return([]domain.Story{}, nil)

	transcript, err := s.service.GenerateTranscript(ctx, date, false)

	s.NoError(err)
	s.Nil(transcript)
}

func (s *PodcastServiceTestSuite) TestGenerateTranscript_WindowSpansConfiguredDays() {
	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelError}))
	service := NewPodcastService(s.stories, s.podcasts, s.writer, s.voicer, logger, config.PodcastConfig{
		WindowDays: 7,
	})

	ctx := context.Background()
	date := time.Date(2026, 3, 10, 9, 0, 0, 0, time.UTC)
	windowStart := time.Date(2026, 3, 4, 9, 0, 0, 0, time.UTC)

	s.podcasts.EXPECT().ByDate(ctx, date).Return(nil, domain.ErrNotFound)
	s.stories.EXPECT().
		QueryByDateRange(ctx, windowStart, date, domain.StoryQuery{PublishedOnly: true}).
		Return([]domain.Story{}, nil)

	transcript, err := service.GenerateTranscript(ctx, date, false)

	s.NoError(err)
	s.Nil(transcript)
}

func (s *PodcastServiceTestSuite) TestGenerateTranscript_WriterError() {
	ctx := context.Background()
	date := time.Date(2026, 3, 10, 9, 0, 0, 0, time.UTC)
	stories := []domain.Story{s.published("https://example.com/1", date)}

	s.podcasts.EXPECT().ByDate(ctx, date).Return(nil, domain.ErrNotFound)
	s.stories.EXPECT().
		QueryByDateRange(ctx, date, date, domain.StoryQuery{PublishedOnly: true}).
		Return(stories, nil)
	s.writer.EXPECT().WriteTranscript(ctx, stories).Return(nil, errors.New("llm error"))

	_, err := s.service.GenerateTranscript(ctx, date, false)

	s.Error(err)
	s.Contains(err.Error(), "write transcript")
}

func (s *PodcastServiceTestSuite) TestVoiceTranscript_SynthesizesAndAttaches() {
	ctx := context.Background()
	date := time.Date(2026, 3, 10, 9, 0, 0, 0, time.UTC)

	transcript := &domain.PodcastTranscript{
		Intro:       "Welcome.",
		Segments:    []domain.PodcastSegment{{Headline: "Story one", Content: "Segment one."}},
		Outro:       "Goodbye.",
		DateCreated: date,
	}
	s.podcasts.EXPECT().ByDate(ctx, date).Return(transcript, nil)
	s.voicer.EXPECT().Synthesize(ctx, transcript.PlainText()).Return("https://cdn.example.com/ep1.mp3", nil)
	s.podcasts.EXPECT().AttachAudio(ctx, date, "https://cdn.example.com/ep1.mp3").Return(nil)

	url, err := s.service.VoiceTranscript(ctx, date)

	s.NoError(err)
	s.Equal("https://cdn.example.com/ep1.mp3", url)
}

func (s *PodcastServiceTestSuite) TestVoiceTranscript_AlreadyVoiced() {
	ctx := context.Background()
	date := time.Date(2026, 3, 10, 9, 0, 0, 0, time.UTC)

	transcript := &domain.PodcastTranscript{
		DateCreated: date,
		AudioURL:    "https://cdn.example.com/ep1.mp3",
	}
	s.podcasts.EXPECT().ByDate(ctx, date).Return(transcript, nil)

	url, err := s.service.VoiceTranscript(ctx, date)

	s.NoError(err)
	s.Equal("https://cdn.example.com/ep1.mp3", url)
}

func (s *PodcastServiceTestSuite) TestVoiceTranscript_MissingTranscript() {
	ctx := context.Background()
	date := time.Date(2026, 3, 10, 9, 0, 0, 0, time.UTC)

	s.podcasts.EXPECT().ByDate(ctx, date).Return(nil, domain.ErrNotFound)

	_, err := s.service.VoiceTranscript(ctx, date)

	s.ErrorIs(err, domain.ErrNotFound)
}
