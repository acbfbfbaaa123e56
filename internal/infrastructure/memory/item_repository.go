package memory

import (
	"context"
	"sort"
	"strings"
	"time"

	"github.com/jhoicas/gudang-api/internal/domain"
	"github.com/jhoicas/gudang-api/internal/domain/entity"
	"github.com/jhoicas/gudang-api/internal/domain/repository"
)

// ItemRepository implementación en memoria.
type ItemRepository struct {
	s *Store
}

// NewItemRepository crea el repositorio.
func NewItemRepository(s *Store) *ItemRepository {
	return &ItemRepository{s: s}
}

var _ repository.ItemRepository = (*ItemRepository)(nil)

func (r *ItemRepository) uniqueLocked(item *entity.Item) error {
	for id, other := range r.s.items {
		if id == item.ID {
			continue
		}
		if other.Code == item.Code || (item.Barcode != "" && other.Barcode == item.Barcode) {
			return domain.ErrDuplicate
		}
	}
	return nil
}

func (r *ItemRepository) Create(_ context.Context, item *entity.Item) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if _, ok := r.s.items[item.ID]; ok {
		return domain.ErrDuplicate
	}
	if err := r.uniqueLocked(item); err != nil {
		return err
	}
	if item.CurrentStock < 0 {
		return domain.ErrInvalidQuantity
	}
	r.s.items[item.ID] = *item
	return nil
}

func (r *ItemRepository) GetByID(_ context.Context, id string) (*entity.Item, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	it, ok := r.s.items[id]
	if !ok {
		return nil, nil
	}
	return &it, nil
}

func (r *ItemRepository) GetByCode(_ context.Context, code string) (*entity.Item, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	for _, it := range r.s.items {
		if it.Code == code {
			it := it
			return &it, nil
		}
	}
	return nil, nil
}

// GetForUpdate en memoria equivale a GetByID: la exclusión la da TxRunner.
func (r *ItemRepository) GetForUpdate(ctx context.Context, id string) (*entity.Item, error) {
	return r.GetByID(ctx, id)
}

func (r *ItemRepository) Update(_ context.Context, item *entity.Item) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	cur, ok := r.s.items[item.ID]
	if !ok {
		return domain.ErrNotFound
	}
	if err := r.uniqueLocked(item); err != nil {
		return err
	}
	upd := *item
	upd.CurrentStock = cur.CurrentStock
	upd.CreatedAt = cur.CreatedAt
	upd.UpdatedAt = time.Now()
	r.s.items[item.ID] = upd
	return nil
}

func (r *ItemRepository) UpdateStock(_ context.Context, id string, stock int64) error {
	if stock < 0 {
		return domain.ErrInsufficientStock
	}
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	it, ok := r.s.items[id]
	if !ok {
		return domain.ErrItemNotFound
	}
	it.CurrentStock = stock
	it.UpdatedAt = time.Now()
	r.s.items[id] = it
	return nil
}

func (r *ItemRepository) List(_ context.Context, f repository.ItemFilter) ([]*entity.Item, int, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	search := strings.ToLower(f.Search)
	var out []*entity.Item
	for _, it := range r.s.items {
		if search != "" && !strings.Contains(strings.ToLower(it.Name), search) && !strings.Contains(strings.ToLower(it.Code), search) {
			continue
		}
		if f.CategoryID != "" && it.CategoryID != f.CategoryID {
			continue
		}
		if f.VendorID != "" && it.VendorID != f.VendorID {
			continue
		}
		if f.Type != "" && it.Type != f.Type {
			continue
		}
		if f.Status != "" && it.Status != f.Status {
			continue
		}
		if f.LowStock && !it.IsLowStock() {
			continue
		}
		it := it
		out = append(out, &it)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return page(out, f.Limit, f.Offset), len(out), nil
}

func (r *ItemRepository) ListLowStock(ctx context.Context, limit int) ([]*entity.Item, error) {
	list, _, err := r.List(ctx, repository.ItemFilter{Status: entity.StatusActive, LowStock: true, Limit: limit})
	return list, err
}

func (r *ItemRepository) Delete(_ context.Context, id string) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if _, ok := r.s.items[id]; !ok {
		return domain.ErrNotFound
	}
	for _, m := range r.s.movements {
		if m.ItemID == id {
			return domain.ErrDeleteBlocked
		}
	}
	for _, rq := range r.s.requests {
		if rq.ItemID == id {
			return domain.ErrDeleteBlocked
		}
	}
	delete(r.s.items, id)
	return nil
}
