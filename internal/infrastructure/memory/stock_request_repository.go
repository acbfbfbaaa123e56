package memory

import (
	"context"
	"sort"

	"github.com/jhoicas/gudang-api/internal/domain"
	"github.com/jhoicas/gudang-api/internal/domain/entity"
	"github.com/jhoicas/gudang-api/internal/domain/repository"
)

// StockRequestRepository implementación en memoria.
type StockRequestRepository struct {
	s *Store
}

// NewStockRequestRepository crea el repositorio.
func NewStockRequestRepository(s *Store) *StockRequestRepository {
	return &StockRequestRepository{s: s}
}

var _ repository.StockRequestRepository = (*StockRequestRepository)(nil)

func (r *StockRequestRepository) Create(_ context.Context, req *entity.StockRequest) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if _, ok := r.s.items[req.ItemID]; !ok {
		return domain.ErrItemNotFound
	}
	for _, other := range r.s.requests {
		if other.RequestCode == req.RequestCode {
			return domain.ErrDuplicate
		}
	}
	r.s.requests[req.ID] = *req
	return nil
}

func (r *StockRequestRepository) joinLocked(req entity.StockRequest) *entity.StockRequest {
	if it, ok := r.s.items[req.ItemID]; ok {
		req.ItemCode, req.ItemName = it.Code, it.Name
	}
	if u, ok := r.s.users[req.RequestedBy]; ok {
		req.RequestedByName = u.Name
	}
	return &req
}

func (r *StockRequestRepository) GetByID(_ context.Context, id string) (*entity.StockRequest, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	req, ok := r.s.requests[id]
	if !ok {
		return nil, nil
	}
	return r.joinLocked(req), nil
}

func (r *StockRequestRepository) UpdateStatus(_ context.Context, req *entity.StockRequest) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	cur, ok := r.s.requests[req.ID]
	if !ok {
		return domain.ErrNotFound
	}
	cur.Status = req.Status
	cur.ApprovedBy = req.ApprovedBy
	cur.ApprovedQuantity = req.ApprovedQuantity
	cur.ApprovalNotes = req.ApprovalNotes
	cur.ApprovalDate = req.ApprovalDate
	cur.UpdatedAt = req.UpdatedAt
	r.s.requests[req.ID] = cur
	return nil
}

func (r *StockRequestRepository) List(_ context.Context, f repository.StockRequestFilter) ([]*entity.StockRequest, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	var out []*entity.StockRequest
	for _, req := range r.s.requests {
		if f.Status != "" && req.Status != f.Status {
			continue
		}
		if f.ItemID != "" && req.ItemID != f.ItemID {
			continue
		}
		if f.RequestedBy != "" && req.RequestedBy != f.RequestedBy {
			continue
		}
		out = append(out, r.joinLocked(req))
	}
	sort.Slice(out, func(i, j int) bool { return out[i].RequestDate.After(out[j].RequestDate) })
	return page(out, f.Limit, f.Offset), nil
}
