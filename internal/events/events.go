// Package events delivers visitor submissions and lead changes to whoever follows
// up on them (a Kafka topic when configured, the application log otherwise).
package events

import (
	"context"
	"encoding/json"
	"log/slog"
	"time"
)

const (
	TypeLeadCreated         = "lead.created"
	TypeLeadStatusChanged   = "lead.status_changed"
	TypeApplicationReceived = "application.received"
)

type Event struct {
	Type       string      `json:"type"`
	Key        string      `json:"key"`
	OccurredAt time.Time   `json:"occurred_at"`
	Payload    interface{} `json:"payload"`
}

func New(eventType, key string, payload interface{}) Event {
	return Event{Type: eventType, Key: key, OccurredAt: time.Now().UTC(), Payload: payload}
}

func (e Event) Encode() ([]byte, error) {
	return json.Marshal(e)
}

type Publisher interface {
	Publish(ctx context.Context, event Event) error
	Close()
}

// LogPublisher writes events to slog. It is the fallback when no broker is configured.
type LogPublisher struct {
	logger *slog.Logger
}

func NewLogPublisher(logger *slog.Logger) *LogPublisher {
	if logger == nil {
		logger = slog.Default()
	}
	return &LogPublisher{logger: logger}
}

func (p *LogPublisher) Publish(ctx context.Context, event Event) error {
	body, err := event.Encode()
	if err != nil {
		return err
	}
	p.logger.InfoContext(ctx, "event published", "type", event.Type, "key", event.Key, "event", json.RawMessage(body))
	return nil
}

func (p *LogPublisher) Close() {}
