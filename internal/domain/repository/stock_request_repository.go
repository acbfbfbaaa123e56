package repository

import (
	"context"

	"github.com/jhoicas/gudang-api/internal/domain/entity"
)

// StockRequestFilter filtros del listado de solicitudes.
type StockRequestFilter struct {
	Status      string
	ItemID      string
	RequestedBy string
	Limit       int
	Offset      int
}

// StockRequestRepository puerto de persistencia de solicitudes de stock.
type StockRequestRepository interface {
	Create(ctx context.Context, req *entity.StockRequest) error
	GetByID(ctx context.Context, id string) (*entity.StockRequest, error)
	// UpdateStatus persiste estado, aprobador, cantidad aprobada, notas y fecha de aprobación.
	UpdateStatus(ctx context.Context, req *entity.StockRequest) error
	List(ctx context.Context, f StockRequestFilter) ([]*entity.StockRequest, error)
}
