package inventory

import (
	"context"
	"sort"

	"github.com/jhoicas/gudang-api/internal/application/dto"
	"github.com/jhoicas/gudang-api/internal/domain/repository"
)

// LowStockUseCase genera la lista de reposición: artículos activos con stock <= mínimo.
type LowStockUseCase struct {
	items repository.ItemRepository
}

// NewLowStockUseCase construye el caso de uso.
func NewLowStockUseCase(items repository.ItemRepository) *LowStockUseCase {
	return &LowStockUseCase{items: items}
}

// List devuelve los artículos bajo mínimo con la cantidad sugerida de pedido
// (stock ideal = 2 × mínimo), ordenados por mayor déficit primero.
func (uc *LowStockUseCase) List(ctx context.Context, limit int) ([]dto.LowStockItemDTO, error) {
	if limit <= 0 || limit > 500 {
		limit = 100
	}
	items, err := uc.items.ListLowStock(ctx, limit)
	if err != nil {
		return nil, err
	}
	out := make([]dto.LowStockItemDTO, 0, len(items))
	for _, it := range items {
		suggested := it.MinimumStock*2 - it.CurrentStock
		if suggested < 0 {
			suggested = 0
		}
		out = append(out, dto.LowStockItemDTO{
			ItemID:       it.ID,
			Code:         it.Code,
			Name:         it.Name,
			Unit:         it.Unit,
			CurrentStock: it.CurrentStock,
			MinimumStock: it.MinimumStock,
			Deficit:      it.MinimumStock - it.CurrentStock,
			SuggestedQty: suggested,
		})
	}
	sort.SliceStable(out, func(i, j int) bool {
		if out[i].Deficit != out[j].Deficit {
			return out[i].Deficit > out[j].Deficit
		}
		return out[i].Code < out[j].Code
	})
	return out, nil
}
