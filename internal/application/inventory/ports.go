package inventory

import (
	"context"

	"github.com/jhoicas/gudang-api/internal/domain/repository"
)

// TxRunner ejecuta una función dentro de una transacción de BD, pasando repositorios atados a esa tx.
// Garantiza atomicidad del libro de stock: si fn devuelve error se hace Rollback.
type TxRunner interface {
	Run(ctx context.Context, fn func(
		items repository.ItemRepository,
		movements repository.StockMovementRepository,
		sequences repository.SequenceRepository,
	) error) error
}
