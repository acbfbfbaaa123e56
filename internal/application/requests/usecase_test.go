package requests

import (
	"context"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/gudang-api/internal/application/dto"
	"github.com/jhoicas/gudang-api/internal/domain"
	"github.com/jhoicas/gudang-api/internal/domain/entity"
	"github.com/jhoicas/gudang-api/internal/domain/repository"
	"github.com/jhoicas/gudang-api/internal/infrastructure/memory"
)

func newUseCase(t *testing.T) (*UseCase, *memory.ItemRepository) {
	t.Helper()
	store := memory.NewStore()
	store.Seed([]entity.Item{{ID: "item-1", Code: "ITM-001", Name: "Casco", CurrentStock: 7, Status: entity.StatusActive}},
		nil, nil, []entity.User{{ID: "u1", Name: "Solicitante"}})
	uc := NewUseCase(memory.NewTxRunner(store), memory.NewStockRequestRepository(store), memory.NewItemRepository(store), nil, zerolog.Nop())
	uc.now = func() time.Time { return time.Date(2025, 6, 1, 9, 0, 0, 0, time.UTC) }
	return uc, memory.NewItemRepository(store)
}

func TestCreate_CodigoYEstadoPendiente(t *testing.T) {
	uc, _ := newUseCase(t)
	ctx := context.Background()

	r1, err := uc.Create(ctx, "u1", dto.CreateStockRequestRequest{ItemID: "item-1", RequestedQuantity: 3, RequestReason: "obra"})
	require.NoError(t, err)
	assert.Equal(t, "REQ-25-001", r1.RequestCode)
	assert.Equal(t, entity.RequestStatusPending, r1.Status)
	assert.Equal(t, "ITM-001", r1.ItemCode)

	r2, err := uc.Create(ctx, "u1", dto.CreateStockRequestRequest{ItemID: "item-1", RequestedQuantity: 1, RequestReason: "obra"})
	require.NoError(t, err)
	assert.Equal(t, "REQ-25-002", r2.RequestCode)

	_, err = uc.Create(ctx, "u1", dto.CreateStockRequestRequest{ItemID: "nope", RequestedQuantity: 1})
	assert.ErrorIs(t, err, domain.ErrItemNotFound)

	_, err = uc.Create(ctx, "u1", dto.CreateStockRequestRequest{ItemID: "item-1", RequestedQuantity: 0})
	assert.ErrorIs(t, err, domain.ErrInvalidQuantity)
}

func TestTransiciones(t *testing.T) {
	uc, items := newUseCase(t)
	ctx := context.Background()

	r, err := uc.Create(ctx, "u1", dto.CreateStockRequestRequest{ItemID: "item-1", RequestedQuantity: 5, RequestReason: "obra"})
	require.NoError(t, err)

	_, err = uc.Fulfill(ctx, r.ID)
	assert.ErrorIs(t, err, domain.ErrInvalidTransition, "no se entrega lo que no está aprobado")

	approved, err := uc.Approve(ctx, r.ID, "admin-1", dto.ApproveStockRequestRequest{})
	require.NoError(t, err)
	assert.Equal(t, entity.RequestStatusApproved, approved.Status)
	require.NotNil(t, approved.ApprovedQuantity)
	assert.Equal(t, int64(5), *approved.ApprovedQuantity)
	assert.Equal(t, "admin-1", approved.ApprovedBy)
	assert.NotNil(t, approved.ApprovalDate)

	_, err = uc.Reject(ctx, r.ID, "admin-1", dto.RejectStockRequestRequest{})
	assert.ErrorIs(t, err, domain.ErrInvalidTransition)

	fulfilled, err := uc.Fulfill(ctx, r.ID)
	require.NoError(t, err)
	assert.Equal(t, entity.RequestStatusFulfilled, fulfilled.Status)

	// Las solicitudes no mueven stock.
	it, err := items.GetByID(ctx, "item-1")
	require.NoError(t, err)
	assert.Equal(t, int64(7), it.CurrentStock)
}

func TestApprove_CantidadParcialYRechazo(t *testing.T) {
	uc, _ := newUseCase(t)
	ctx := context.Background()

	a, err := uc.Create(ctx, "u1", dto.CreateStockRequestRequest{ItemID: "item-1", RequestedQuantity: 10, RequestReason: "x"})
	require.NoError(t, err)
	qty := int64(4)
	approved, err := uc.Approve(ctx, a.ID, "admin-1", dto.ApproveStockRequestRequest{ApprovedQuantity: &qty, ApprovalNotes: "parcial"})
	require.NoError(t, err)
	assert.Equal(t, int64(4), *approved.ApprovedQuantity)

	b, err := uc.Create(ctx, "u1", dto.CreateStockRequestRequest{ItemID: "item-1", RequestedQuantity: 2, RequestReason: "y"})
	require.NoError(t, err)
	rejected, err := uc.Reject(ctx, b.ID, "admin-1", dto.RejectStockRequestRequest{ApprovalNotes: "sin presupuesto"})
	require.NoError(t, err)
	assert.Equal(t, entity.RequestStatusRejected, rejected.Status)
	assert.Nil(t, rejected.ApprovedQuantity)

	pending, err := uc.List(ctx, repository.StockRequestFilter{Status: entity.RequestStatusPending})
	require.NoError(t, err)
	assert.Empty(t, pending)

	_, err = uc.Approve(ctx, "nope", "admin-1", dto.ApproveStockRequestRequest{})
	assert.ErrorIs(t, err, domain.ErrNotFound)
}
