package events

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"testing"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"
)

func TestNewEvent(t *testing.T) {
	event := NewEvent(TypeClassApproved, map[string]interface{}{"class_id": 7})

	if event.ID == "" {
		t.Error("event ID should not be empty")
	}
	if event.Type != TypeClassApproved {
		t.Errorf("wrong type: %s", event.Type)
	}
	if event.Source != "marketplace-service" {
		t.Errorf("wrong source: %s", event.Source)
	}
	if event.Version != "1.0" {
		t.Errorf("wrong version: %s", event.Version)
	}
	if event.Timestamp.IsZero() {
		t.Error("timestamp should be set")
	}

	// Two events never share an ID
	other := NewEvent(TypeClassApproved, nil)
	if other.ID == event.ID {
		t.Error("event IDs must be unique")
	}
}

func TestGoChannelPublisher_Delivers(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	// Subscribe on the same in-process pubsub the publisher wraps.
	pubsub := gochannel.NewGoChannel(gochannel.Config{}, watermill.NewSlogLogger(logger))
	defer pubsub.Close()

	messages, err := pubsub.Subscribe(context.Background(), Topic)
	if err != nil {
		t.Fatalf("Subscribe failed: %v", err)
	}

	pub := &channelPublisher{publisher: pubsub}
	event := NewEvent(TypePaymentRecorded, map[string]interface{}{"payment_id": 1})
	if err := pub.Publish(context.Background(), event); err != nil {
		t.Fatalf("Publish failed: %v", err)
	}

	msg := <-messages
	msg.Ack()

	if msg.UUID != event.ID {
		t.Errorf("message UUID should be the event ID, got %s", msg.UUID)
	}
	if msg.Metadata.Get("type") != TypePaymentRecorded {
		t.Errorf("wrong type metadata: %s", msg.Metadata.Get("type"))
	}
	if msg.Metadata.Get("source") != Source {
		t.Errorf("wrong source metadata: %s", msg.Metadata.Get("source"))
	}

	var decoded Event
	if err := json.Unmarshal(msg.Payload, &decoded); err != nil {
		t.Fatalf("payload is not a JSON envelope: %v", err)
	}
	if decoded.Type != TypePaymentRecorded {
		t.Errorf("decoded envelope has wrong type: %s", decoded.Type)
	}
}

func TestMockEventPublisher(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	mock := NewMockEventPublisher(logger)

	for i := 0; i < 3; i++ {
		if err := mock.Publish(context.Background(), NewEvent(TypeUserCreated, nil)); err != nil {
			t.Fatalf("Publish failed: %v", err)
		}
	}

	if got := len(mock.GetPublishedEvents()); got != 3 {
		t.Errorf("expected 3 recorded events, got %d", got)
	}

	mock.ClearEvents()
	if got := len(mock.GetPublishedEvents()); got != 0 {
		t.Errorf("expected 0 after clear, got %d", got)
	}
}
