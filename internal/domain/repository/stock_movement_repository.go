package repository

import (
	"context"
	"time"

	"github.com/jhoicas/gudang-api/internal/domain/entity"
)

// MovementFilter filtros del listado de movimientos.
type MovementFilter struct {
	Search   string // código de transacción o nombre del artículo
	Type     string
	ItemID   string
	DateFrom *time.Time
	DateTo   *time.Time
	Limit    int
	Offset   int
}

// StockMovementRepository puerto del registro de transacciones de stock (append/delete).
type StockMovementRepository interface {
	Create(ctx context.Context, movement *entity.StockMovement) error
	GetByID(ctx context.Context, id string) (*entity.StockMovement, error)
	List(ctx context.Context, f MovementFilter) ([]*entity.StockMovement, int, error)
	// ListByItem devuelve los movimientos de un artículo, más recientes primero.
	ListByItem(ctx context.Context, itemID string, limit int) ([]*entity.StockMovement, error)
	CountByItem(ctx context.Context, itemID string) (int, error)
	Delete(ctx context.Context, id string) error
}
