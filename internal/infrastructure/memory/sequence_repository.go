package memory

import (
	"context"

	"github.com/jhoicas/gudang-api/internal/domain/repository"
)

// SequenceRepository contadores en memoria.
type SequenceRepository struct {
	s *Store
}

// NewSequenceRepository crea el repositorio.
func NewSequenceRepository(s *Store) *SequenceRepository {
	return &SequenceRepository{s: s}
}

var _ repository.SequenceRepository = (*SequenceRepository)(nil)

func (r *SequenceRepository) Next(_ context.Context, name string) (int64, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	r.s.sequences[name]++
	return r.s.sequences[name], nil
}
