// Package messaging publica los eventos del libro de stock en Kafka.
package messaging

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/rs/zerolog"
	"github.com/segmentio/kafka-go"

	"github.com/jhoicas/gudang-api/internal/domain/event"
)

const publishTimeout = 5 * time.Second

// messageWriter subconjunto de *kafka.Writer usado por el publicador.
type messageWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error
	Close() error
}

// KafkaPublisher implementa event.Publisher. La clave del mensaje es el ID del artículo,
// así los eventos de un mismo artículo caen en la misma partición y conservan el orden.
type KafkaPublisher struct {
	writer messageWriter
	log    zerolog.Logger
}

// NewKafkaPublisher crea el publicador sobre los brokers y el topic indicados.
func NewKafkaPublisher(brokers []string, topic string, log zerolog.Logger) *KafkaPublisher {
	writer := &kafka.Writer{
		Addr:         kafka.TCP(brokers...),
		Topic:        topic,
		Balancer:     &kafka.Hash{},
		BatchSize:    100,
		BatchTimeout: 10 * time.Millisecond,
		RequiredAcks: kafka.RequireOne,
		Compression:  kafka.Snappy,
	}
	return newKafkaPublisher(writer, log)
}

func newKafkaPublisher(w messageWriter, log zerolog.Logger) *KafkaPublisher {
	return &KafkaPublisher{writer: w, log: log.With().Str("component", "kafka").Logger()}
}

var _ event.Publisher = (*KafkaPublisher)(nil)

// Publish serializa el evento en JSON y lo escribe con un timeout propio.
func (p *KafkaPublisher) Publish(ctx context.Context, e event.Event) error {
	body, err := json.Marshal(e)
	if err != nil {
		return fmt.Errorf("messaging: serializar evento %s: %w", e.Type, err)
	}
	msg := kafka.Message{
		Key:   []byte(e.Key),
		Value: body,
		Time:  e.OccurredAt,
		Headers: []kafka.Header{
			{Key: "event-type", Value: []byte(e.Type)},
		},
	}

	ctx, cancel := context.WithTimeout(ctx, publishTimeout)
	defer cancel()
	if err := p.writer.WriteMessages(ctx, msg); err != nil {
		return fmt.Errorf("messaging: escribir evento %s: %w", e.Type, err)
	}
	p.log.Debug().Str("event", e.Type).Str("key", e.Key).Msg("evento publicado")
	return nil
}

// Close vacía el buffer y cierra la conexión.
func (p *KafkaPublisher) Close() error {
	return p.writer.Close()
}
