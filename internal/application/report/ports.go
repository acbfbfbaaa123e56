package report

import (
	"context"

	"github.com/jhoicas/gudang-api/internal/domain/entity"
)

// MovementReceiptGenerator genera el comprobante imprimible (PDF) de un movimiento.
type MovementReceiptGenerator interface {
	GenerateMovementReceipt(ctx context.Context, movement *entity.StockMovement, item *entity.Item) ([]byte, error)
}

// StockCardGenerator genera la tarjeta de existencias (kardex) de un artículo.
// movements llega en orden cronológico (más antiguo primero).
type StockCardGenerator interface {
	GenerateStockCard(ctx context.Context, item *entity.Item, movements []*entity.StockMovement) ([]byte, error)
}
