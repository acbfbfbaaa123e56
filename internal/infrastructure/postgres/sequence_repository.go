package postgres

import (
	"context"
	"fmt"

	"github.com/jhoicas/gudang-api/internal/domain/repository"
)

var _ repository.SequenceRepository = (*SequenceRepo)(nil)

// SequenceRepo contadores monotónicos en movement_sequences.
type SequenceRepo struct {
	q Querier
}

// NewSequenceRepository construye el adaptador. Debe recibir la tx del movimiento.
func NewSequenceRepository(q Querier) *SequenceRepo {
	return &SequenceRepo{q: q}
}

// Next incrementa y devuelve el contador. El UPDATE bloquea la fila hasta el commit,
// así dos transacciones nunca obtienen el mismo valor; un rollback lo devuelve.
func (r *SequenceRepo) Next(ctx context.Context, name string) (int64, error) {
	query := `
		INSERT INTO movement_sequences (name, last_value) VALUES ($1, 1)
		ON CONFLICT (name) DO UPDATE SET last_value = movement_sequences.last_value + 1
		RETURNING last_value`
	var v int64
	if err := r.q.QueryRow(ctx, query, name).Scan(&v); err != nil {
		return 0, fmt.Errorf("next sequence %s: %w", name, err)
	}
	return v, nil
}
