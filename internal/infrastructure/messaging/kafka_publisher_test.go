package messaging

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/segmentio/kafka-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/gudang-api/internal/domain/event"
)

type fakeWriter struct {
	msgs   []kafka.Message
	err    error
	closed bool
}

func (w *fakeWriter) WriteMessages(ctx context.Context, msgs ...kafka.Message) error {
	if _, ok := ctx.Deadline(); !ok {
		return errors.New("sin deadline")
	}
	w.msgs = append(w.msgs, msgs...)
	return w.err
}

func (w *fakeWriter) Close() error {
	w.closed = true
	return nil
}

func TestPublish(t *testing.T) {
	w := &fakeWriter{}
	p := newKafkaPublisher(w, zerolog.Nop())
	at := time.Date(2025, 3, 1, 10, 0, 0, 0, time.UTC)

	err := p.Publish(context.Background(), event.Event{
		Type: event.TypeMovementPosted, Key: "item-1", OccurredAt: at,
		Payload: map[string]any{"transaction_code": "IN-25-001"},
	})
	require.NoError(t, err)
	require.Len(t, w.msgs, 1)

	msg := w.msgs[0]
	assert.Equal(t, "item-1", string(msg.Key))
	assert.Equal(t, at, msg.Time)
	require.Len(t, msg.Headers, 1)
	assert.Equal(t, event.TypeMovementPosted, string(msg.Headers[0].Value))

	var body map[string]any
	require.NoError(t, json.Unmarshal(msg.Value, &body))
	assert.Equal(t, event.TypeMovementPosted, body["type"])
	assert.Equal(t, "IN-25-001", body["payload"].(map[string]any)["transaction_code"])

	require.NoError(t, p.Close())
	assert.True(t, w.closed)
}

func TestPublish_ErrorDelBroker(t *testing.T) {
	p := newKafkaPublisher(&fakeWriter{err: errors.New("broker caído")}, zerolog.Nop())

	err := p.Publish(context.Background(), event.Event{Type: event.TypeMovementReversed, Key: "item-1"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), event.TypeMovementReversed)
}
