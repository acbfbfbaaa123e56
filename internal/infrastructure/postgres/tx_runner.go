package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jhoicas/gudang-api/internal/application/inventory"
	"github.com/jhoicas/gudang-api/internal/application/requests"
	"github.com/jhoicas/gudang-api/internal/domain/repository"
)

// Ensure TxRunner implements inventory.TxRunner and requests.TxRunner.
var _ inventory.TxRunner = (*TxRunner)(nil)
var _ requests.TxRunner = (*TxRunner)(nil)

// TxRunner ejecuta callbacks dentro de una transacción PostgreSQL.
type TxRunner struct {
	pool *pgxpool.Pool
}

// NewTxRunner construye el runner con el pool.
func NewTxRunner(pool *pgxpool.Pool) *TxRunner {
	return &TxRunner{pool: pool}
}

func (r *TxRunner) inTx(ctx context.Context, fn func(tx pgx.Tx) error) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	if err := fn(tx); err != nil {
		return err
	}
	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit transaction: %w", err)
	}
	return nil
}

// Run inicia una transacción, ejecuta fn con repos atados a la tx y hace Commit o Rollback.
func (r *TxRunner) Run(ctx context.Context, fn func(
	items repository.ItemRepository,
	movements repository.StockMovementRepository,
	sequences repository.SequenceRepository,
) error) error {
	return r.inTx(ctx, func(tx pgx.Tx) error {
		return fn(NewItemRepository(tx), NewStockMovementRepository(tx), NewSequenceRepository(tx))
	})
}

// RunRequests transacción con repos de solicitudes y secuencias.
func (r *TxRunner) RunRequests(ctx context.Context, fn func(
	requests repository.StockRequestRepository,
	sequences repository.SequenceRepository,
) error) error {
	return r.inTx(ctx, func(tx pgx.Tx) error {
		return fn(NewStockRequestRepository(tx), NewSequenceRepository(tx))
	})
}
