// Package event define los eventos que emite el libro de stock hacia sistemas externos.
// La publicación es posterior al commit y no forma parte de la consistencia del libro.
package event

import (
	"context"
	"time"
)

// Tipos de evento.
const (
	TypeMovementPosted       = "stock.movement.posted"
	TypeMovementReversed     = "stock.movement.reversed"
	TypeRequestStatusChanged = "stock.request.status_changed"
)

// Event sobre publicado. Key agrupa eventos del mismo agregado (id del artículo).
type Event struct {
	Type       string    `json:"type"`
	Key        string    `json:"key"`
	OccurredAt time.Time `json:"occurred_at"`
	Payload    any       `json:"payload"`
}

// Publisher puerto de salida para eventos.
type Publisher interface {
	Publish(ctx context.Context, e Event) error
}

// NopPublisher descarta los eventos (Kafka deshabilitado).
type NopPublisher struct{}

// Publish no hace nada.
func (NopPublisher) Publish(context.Context, Event) error { return nil }
