package repository

import (
	"context"

	"github.com/jhoicas/gudang-api/internal/domain/entity"
)

// ItemFilter filtros del listado de artículos. Campos vacíos no filtran.
type ItemFilter struct {
	Search     string // nombre o código
	CategoryID string
	VendorID   string
	Type       string
	Status     string
	LowStock   bool
	Limit      int
	Offset     int
}

// ItemRepository define el puerto de persistencia para Item (DIP).
type ItemRepository interface {
	Create(ctx context.Context, item *entity.Item) error
	GetByID(ctx context.Context, id string) (*entity.Item, error)
	GetByCode(ctx context.Context, code string) (*entity.Item, error)
	// GetForUpdate bloquea la fila del artículo (SELECT FOR UPDATE) hasta el fin de la transacción.
	// Devuelve (nil, nil) si no existe.
	GetForUpdate(ctx context.Context, id string) (*entity.Item, error)
	// Update modifica los datos maestros; nunca toca current_stock.
	Update(ctx context.Context, item *entity.Item) error
	// UpdateStock fija el saldo; solo lo usa el libro de stock.
	UpdateStock(ctx context.Context, id string, stock int64) error
	List(ctx context.Context, f ItemFilter) ([]*entity.Item, int, error)
	ListLowStock(ctx context.Context, limit int) ([]*entity.Item, error)
	Delete(ctx context.Context, id string) error
}
