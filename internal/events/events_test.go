package events

import (
	"bytes"
	"context"
	"encoding/json"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLogPublisherWritesEvent(t *testing.T) {
	var buf bytes.Buffer
	p := NewLogPublisher(slog.New(slog.NewJSONHandler(&buf, nil)))

	err := p.Publish(context.Background(), New(TypeLeadCreated, "lead-1", map[string]string{"email": "ana@example.com"}))
	require.NoError(t, err)

	var line struct {
		Msg   string `json:"msg"`
		Type  string `json:"type"`
		Key   string `json:"key"`
		Event Event  `json:"event"`
	}
	require.NoError(t, json.Unmarshal(buf.Bytes(), &line))
	assert.Equal(t, "event published", line.Msg)
	assert.Equal(t, TypeLeadCreated, line.Type)
	assert.Equal(t, "lead-1", line.Event.Key)
	assert.Equal(t, map[string]interface{}{"email": "ana@example.com"}, line.Event.Payload)
}

func TestNewKafkaPublisherNeedsBrokers(t *testing.T) {
	_, err := NewKafkaPublisher(nil, "site-events", time.Second)
	assert.Error(t, err)
}

func TestKafkaPublishGivesUpOnUnreachableBroker(t *testing.T) {
	p, err := NewKafkaPublisher([]string{"127.0.0.1:1"}, "site-events", 300*time.Millisecond)
	require.NoError(t, err)
	defer p.Close()

	start := time.Now()
	err = p.Publish(context.Background(), New(TypeLeadCreated, "lead-1", map[string]string{"email": "ana@example.com"}))
	require.Error(t, err)
	assert.Less(t, time.Since(start), 5*time.Second)
}
