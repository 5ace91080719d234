package events

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"sync"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill-kafka/v2/pkg/kafka"
	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"
)

// Publisher emits domain events. Publishing is fire-and-forget from the
// caller's perspective: services log failures and never fail the request.
type Publisher interface {
	Publish(ctx context.Context, event Event) error
	Close() error
}

// ===== KAFKA PUBLISHER =====

type kafkaPublisher struct {
	publisher message.Publisher
}

// NewKafkaPublisher connects a watermill Kafka publisher for production use.
func NewKafkaPublisher(brokers []string, logger *slog.Logger) (Publisher, error) {
	pub, err := kafka.NewPublisher(
		kafka.PublisherConfig{
			Brokers:   brokers,
			Marshaler: kafka.DefaultMarshaler{},
		},
		watermill.NewSlogLogger(logger),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create kafka publisher: %w", err)
	}

	return &kafkaPublisher{publisher: pub}, nil
}

func (p *kafkaPublisher) Publish(ctx context.Context, event Event) error {
	return publish(p.publisher, event)
}

func (p *kafkaPublisher) Close() error {
	return p.publisher.Close()
}

// ===== IN-PROCESS PUBLISHER =====

type channelPublisher struct {
	publisher message.Publisher
}

// NewGoChannelPublisher returns an in-process publisher for development
// runs without a broker.
func NewGoChannelPublisher(logger *slog.Logger) Publisher {
	pub := gochannel.NewGoChannel(gochannel.Config{}, watermill.NewSlogLogger(logger))
	return &channelPublisher{publisher: pub}
}

func (p *channelPublisher) Publish(ctx context.Context, event Event) error {
	return publish(p.publisher, event)
}

func (p *channelPublisher) Close() error {
	return p.publisher.Close()
}

func publish(pub message.Publisher, event Event) error {
	payload, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("failed to marshal event: %w", err)
	}

	msg := message.NewMessage(event.ID, payload)
	msg.Metadata.Set("type", event.Type)
	msg.Metadata.Set("source", event.Source)

	return pub.Publish(Topic, msg)
}

// ===== MOCK PUBLISHER =====

// MockEventPublisher records events for tests.
type MockEventPublisher struct {
	mu     sync.Mutex
	events []Event
	logger *slog.Logger
}

func NewMockEventPublisher(logger *slog.Logger) *MockEventPublisher {
	return &MockEventPublisher{logger: logger}
}

func (m *MockEventPublisher) Publish(ctx context.Context, event Event) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.events = append(m.events, event)
	m.logger.Debug("mock publisher recorded event", "type", event.Type, "id", event.ID)
	return nil
}

func (m *MockEventPublisher) Close() error { return nil }

func (m *MockEventPublisher) GetPublishedEvents() []Event {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]Event, len(m.events))
	copy(out, m.events)
	return out
}

func (m *MockEventPublisher) ClearEvents() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.events = nil
}
