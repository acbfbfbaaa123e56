package memory

import (
	"context"
	"sort"
	"strings"

	"github.com/jhoicas/gudang-api/internal/domain"
	"github.com/jhoicas/gudang-api/internal/domain/entity"
	"github.com/jhoicas/gudang-api/internal/domain/repository"
)

// StockMovementRepository implementación en memoria.
type StockMovementRepository struct {
	s *Store
}

// NewStockMovementRepository crea el repositorio.
func NewStockMovementRepository(s *Store) *StockMovementRepository {
	return &StockMovementRepository{s: s}
}

var _ repository.StockMovementRepository = (*StockMovementRepository)(nil)

func (r *StockMovementRepository) Create(_ context.Context, m *entity.StockMovement) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if _, ok := r.s.items[m.ItemID]; !ok {
		return domain.ErrItemNotFound
	}
	for _, other := range r.s.movements {
		if other.TransactionCode == m.TransactionCode {
			return domain.ErrDuplicate
		}
	}
	stored := *m
	stored.ItemCode, stored.ItemName, stored.UserName = "", "", ""
	r.s.movements[m.ID] = stored
	return nil
}

// joinLocked completa los datos de lectura como lo haría el JOIN en SQL.
func (r *StockMovementRepository) joinLocked(m entity.StockMovement) *entity.StockMovement {
	if it, ok := r.s.items[m.ItemID]; ok {
		m.ItemCode, m.ItemName = it.Code, it.Name
	}
	if u, ok := r.s.users[m.UserID]; ok {
		m.UserName = u.Name
	}
	return &m
}

func (r *StockMovementRepository) GetByID(_ context.Context, id string) (*entity.StockMovement, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	m, ok := r.s.movements[id]
	if !ok {
		return nil, nil
	}
	return r.joinLocked(m), nil
}

func (r *StockMovementRepository) List(_ context.Context, f repository.MovementFilter) ([]*entity.StockMovement, int, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	search := strings.ToLower(f.Search)
	var out []*entity.StockMovement
	for _, m := range r.s.movements {
		if f.Type != "" && m.Type != f.Type {
			continue
		}
		if f.ItemID != "" && m.ItemID != f.ItemID {
			continue
		}
		if f.DateFrom != nil && m.TransactionDate.Before(*f.DateFrom) {
			continue
		}
		if f.DateTo != nil && m.TransactionDate.After(*f.DateTo) {
			continue
		}
		j := r.joinLocked(m)
		if search != "" && !strings.Contains(strings.ToLower(j.TransactionCode), search) && !strings.Contains(strings.ToLower(j.ItemName), search) {
			continue
		}
		out = append(out, j)
	}
	sortRecentFirst(out)
	return page(out, f.Limit, f.Offset), len(out), nil
}

func (r *StockMovementRepository) ListByItem(ctx context.Context, itemID string, limit int) ([]*entity.StockMovement, error) {
	list, _, err := r.List(ctx, repository.MovementFilter{ItemID: itemID, Limit: limit})
	return list, err
}

func (r *StockMovementRepository) CountByItem(_ context.Context, itemID string) (int, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	n := 0
	for _, m := range r.s.movements {
		if m.ItemID == itemID {
			n++
		}
	}
	return n, nil
}

func (r *StockMovementRepository) Delete(_ context.Context, id string) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if _, ok := r.s.movements[id]; !ok {
		return domain.ErrNotFound
	}
	delete(r.s.movements, id)
	return nil
}

func sortRecentFirst(list []*entity.StockMovement) {
	sort.Slice(list, func(i, j int) bool {
		if !list[i].TransactionDate.Equal(list[j].TransactionDate) {
			return list[i].TransactionDate.After(list[j].TransactionDate)
		}
		return list[i].CreatedAt.After(list[j].CreatedAt)
	})
}
