//go:build integration

package publisher

import (
	"context"
	"encoding/json"
	"log/slog"
	"os"
	"testing"
	"time"

	amqp "github.com/rabbitmq/amqp091-go"
	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/rabbitmq"
	"github.com/testcontainers/testcontainers-go/wait"

	"news_pipeline/internal/domain"
	"news_pipeline/testdata/utils"
)

type RabbitMQIntegrationSuite struct {
	suite.Suite
	ctx       context.Context
	container *rabbitmq.RabbitMQContainer
	amqpURL   string
	logger    *slog.Logger
}

func (s *RabbitMQIntegrationSuite) SetupSuite() {
	s.ctx = context.Background()
	s.logger = slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelError}))

	container, err := rabbitmq.Run(s.ctx,
		"rabbitmq:3.13-management-alpine",
		testcontainers.WithWaitStrategy(
			wait.ForLog("Server startup complete").
				WithStartupTimeout(60*time.Second),
		),
	)
	s.Require().NoError(err)
	s.container = container

	amqpURL, err := container.AmqpURL(s.ctx)
	s.Require().NoError(err)
	s.amqpURL = amqpURL
}

func (s *RabbitMQIntegrationSuite) TearDownSuite() {
	if s.container != nil {
		_ = s.container.Terminate(s.ctx)
	}
}

func TestRabbitMQIntegrationSuite(t *testing.T) {
	suite.Run(t, new(RabbitMQIntegrationSuite))
}

func (s *RabbitMQIntegrationSuite) TestPublisher_Connection() {
	cfg := Config{
		URL:        s.amqpURL,
		Exchange:   "test-exchange",
		RoutingKey: "test-routing-key",
		QueueName:  "test-queue",
	}

	pub, err := NewRabbitMQ(cfg, s.logger)
	s.NoError(err)
	s.NotNil(pub)

	err = pub.Close()
	s.NoError(err)
}

func (s *RabbitMQIntegrationSuite) TestPublisher_PublishCreated() {
	cfg := Config{
		URL:        s.amqpURL,
		Exchange:   "test-exchange-created",
		RoutingKey: "test-routing-key-created",
		QueueName:  "test-queue-created",
	}

	pub, err := NewRabbitMQ(cfg, s.logger)
	s.Require().NoError(err)
	defer pub.Close()

	story := &domain.Story{
		ID:        "story-1",
		Headline:  "Test Story",
		Summary:   "Test Summary",
		Link:      "https://example.com/story",
		Source:    "research-feed",
		DateAdded: time.Now().Truncate(time.Millisecond),
	}

	err = pub.PublishEvent(s.ctx, "created", story)
	s.NoError(err)

	msg := s.consumeMessage(cfg)
	s.NotNil(msg)

	var received StoryEvent
	err = json.Unmarshal(msg.Body, &received)
	s.NoError(err)
	s.Equal("created", received.Action)
	s.Equal("story-1", received.Story.ID)
	s.Equal("https://example.com/story", received.Story.Link)
	s.False(received.Story.Edited)
	s.False(received.Story.Published)
}

func (s *RabbitMQIntegrationSuite) TestPublisher_PublishPublished() {
	cfg := Config{
		URL:        s.amqpURL,
		Exchange:   "test-exchange-published",
		RoutingKey: "test-routing-key-published",
		QueueName:  "test-queue-published",
	}

	pub, err := NewRabbitMQ(cfg, s.logger)
	s.Require().NoError(err)
	defer pub.Close()

	now := time.Now().Truncate(time.Millisecond)
	story := &domain.Story{
		ID:            "story-2",
		Headline:      "Published Story",
		Link:          "https://example.com/published",
		Source:        "research-feed",
		DateAdded:     now,
		Edited:        true,
		Published:     true,
		DatePublished: &now,
		Body:          utils.Ptr("Full body text."),
		Tags:          []string{"tech", "ai"},
	}

	err = pub.PublishEvent(s.ctx, "published", story)
	s.NoError(err)

	msg := s.consumeMessage(cfg)
	s.NotNil(msg)

	var received StoryEvent
	err = json.Unmarshal(msg.Body, &received)
	s.NoError(err)
	s.Equal("published", received.Action)
	s.True(received.Story.Published)
	s.Require().NotNil(received.Story.DatePublished)
	s.Require().NotNil(received.Story.Body)
	s.Equal("Full body text.", *received.Story.Body)
	s.Len(received.Story.Tags, 2)
	s.False(received.Timestamp.IsZero())
}

func (s *RabbitMQIntegrationSuite) TestPublisher_MessageFormat() {
	cfg := Config{
		URL:        s.amqpURL,
		Exchange:   "test-exchange-format",
		RoutingKey: "test-routing-key-format",
		QueueName:  "test-queue-format",
	}

	pub, err := NewRabbitMQ(cfg, s.logger)
	s.Require().NoError(err)
	defer pub.Close()

	story := &domain.Story{
		ID:        "story-3",
		Headline:  "Format Story",
		Link:      "https://example.com/format",
		DateAdded: time.Now().Truncate(time.Millisecond),
	}

	err = pub.PublishEvent(s.ctx, "created", story)
	s.NoError(err)

	msg := s.consumeMessage(cfg)
	s.NotNil(msg)

	s.Equal("application/json", msg.ContentType)
	s.Equal(uint8(amqp.Persistent), msg.DeliveryMode)
}

func (s *RabbitMQIntegrationSuite) consumeMessage(cfg Config) *amqp.Delivery {
	conn, err := amqp.Dial(s.amqpURL)
	s.Require().NoError(err)
	defer conn.Close()

	ch, err := conn.Channel()
	s.Require().NoError(err)
	defer ch.Close()

	msgs, err := ch.Consume(cfg.QueueName, "", true, false, false, false, nil)
	s.Require().NoError(err)

	select {
	case msg := <-msgs:
		return &msg
	case <-time.After(5 * time.Second):
		s.Fail("Timeout waiting for message")
		return nil
	}
}
