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

	"coverage_migrator/internal/domain"
	"coverage_migrator/testdata/utils"
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

	container, err := rabbitmq.RunContainer(s.ctx,
		testcontainers.WithImage("rabbitmq:3.13-management-alpine"),
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

func (s *RabbitMQIntegrationSuite) TestPublisher_PublishOutcome() {
	cfg := Config{
		URL:        s.amqpURL,
		Exchange:   "test-exchange-outcome",
		RoutingKey: "test-routing-key-outcome",
		QueueName:  "test-queue-outcome",
	}

	pub, err := NewRabbitMQ(cfg, s.logger)
	s.Require().NoError(err)
	defer pub.Close()

	event := &domain.CoverageEvent{
		Outcome:        domain.OutcomeSynced,
		BoardUUID:      "board-1",
		NewsObjectUUID: "news-1",
		CoverageID:     utils.Ptr(int64(42)),
		Timestamp:      time.Now().UTC().Truncate(time.Millisecond),
	}

	err = pub.Publish(s.ctx, event)
	s.NoError(err)

	msg := s.consumeMessage(cfg)
	s.NotNil(msg)

	var received domain.CoverageEvent
	err = json.Unmarshal(msg.Body, &received)
	s.NoError(err)
	s.Equal(domain.OutcomeSynced, received.Outcome)
	s.Equal("board-1", received.BoardUUID)
	s.Equal("news-1", received.NewsObjectUUID)
	s.Equal(utils.Ptr(int64(42)), received.CoverageID)
	s.False(received.Timestamp.IsZero())
}

func (s *RabbitMQIntegrationSuite) TestPublisher_OmitsCoverageIDWhenAbsent() {
	cfg := Config{
		URL:        s.amqpURL,
		Exchange:   "test-exchange-unsupported",
		RoutingKey: "test-routing-key-unsupported",
		QueueName:  "test-queue-unsupported",
	}

	pub, err := NewRabbitMQ(cfg, s.logger)
	s.Require().NoError(err)
	defer pub.Close()

	event := &domain.CoverageEvent{
		Outcome:        domain.OutcomeUnsupported,
		BoardUUID:      "board-1",
		NewsObjectUUID: "news-2",
		Timestamp:      time.Now().UTC(),
	}

	err = pub.Publish(s.ctx, event)
	s.NoError(err)

	msg := s.consumeMessage(cfg)
	s.NotNil(msg)

	var raw map[string]json.RawMessage
	err = json.Unmarshal(msg.Body, &raw)
	s.NoError(err)
	s.NotContains(raw, "coverage_id")
	s.Contains(raw, "outcome")
}

func (s *RabbitMQIntegrationSuite) TestPublisher_MessagePersistence() {
	cfg := Config{
		URL:        s.amqpURL,
		Exchange:   "test-exchange-persist",
		RoutingKey: "test-routing-key-persist",
		QueueName:  "test-queue-persist",
	}

	pub, err := NewRabbitMQ(cfg, s.logger)
	s.Require().NoError(err)
	defer pub.Close()

	event := &domain.CoverageEvent{
		Outcome:        domain.OutcomeReconciled,
		BoardUUID:      "board-1",
		NewsObjectUUID: "news-3",
		Timestamp:      time.Now().UTC(),
	}

	err = pub.Publish(s.ctx, event)
	s.NoError(err)

	msg := s.consumeMessage(cfg)
	s.NotNil(msg)

	s.Equal(uint8(amqp.Persistent), msg.DeliveryMode)
	s.Equal("application/json", msg.ContentType)
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
