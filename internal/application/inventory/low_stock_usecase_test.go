package inventory

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/gudang-api/internal/domain/entity"
	"github.com/jhoicas/gudang-api/internal/infrastructure/memory"
)

func TestLowStock_CantidadSugerida(t *testing.T) {
	store := memory.NewStore()
	store.Seed([]entity.Item{
		{ID: "a", Code: "A", Name: "Guantes", CurrentStock: 2, MinimumStock: 10, Status: entity.StatusActive},
		{ID: "b", Code: "B", Name: "Cinta", CurrentStock: 10, MinimumStock: 10, Status: entity.StatusActive},
		{ID: "c", Code: "C", Name: "Cable", CurrentStock: 50, MinimumStock: 10, Status: entity.StatusActive},
		{ID: "d", Code: "D", Name: "Viejo", CurrentStock: 0, MinimumStock: 10, Status: entity.StatusInactive},
	}, nil, nil, nil)

	uc := NewLowStockUseCase(memory.NewItemRepository(store))
	list, err := uc.List(context.Background(), 0)
	require.NoError(t, err)
	require.Len(t, list, 2)

	assert.Equal(t, "A", list[0].Code)
	assert.Equal(t, int64(8), list[0].Deficit)
	assert.Equal(t, int64(18), list[0].SuggestedQty)

	assert.Equal(t, "B", list[1].Code)
	assert.Equal(t, int64(0), list[1].Deficit)
	assert.Equal(t, int64(10), list[1].SuggestedQty)
}
