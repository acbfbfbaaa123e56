package inventory

import (
	"context"
	"errors"
	"math"
	"sync"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/gudang-api/internal/domain"
	"github.com/jhoicas/gudang-api/internal/domain/entity"
	"github.com/jhoicas/gudang-api/internal/domain/event"
	"github.com/jhoicas/gudang-api/internal/domain/repository"
	"github.com/jhoicas/gudang-api/internal/infrastructure/memory"
)

type capturePublisher struct {
	mu     sync.Mutex
	events []event.Event
	err    error
}

func (p *capturePublisher) Publish(_ context.Context, e event.Event) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.events = append(p.events, e)
	return p.err
}

type ledgerFixture struct {
	uc    *LedgerUseCase
	items *memory.ItemRepository
	pub   *capturePublisher
}

func newLedgerFixture(t *testing.T, stock int64) ledgerFixture {
	t.Helper()
	store := memory.NewStore()
	store.Seed([]entity.Item{{
		ID: "item-1", Code: "ITM-001", Name: "Tornillo M8", Type: entity.ItemTypeConsumable,
		CurrentStock: stock, MinimumStock: 5, Unit: "pcs", Status: entity.StatusActive,
	}}, nil, nil, []entity.User{{ID: "user-1", Name: "Operario", Role: entity.RoleWarehouseStaff}})

	pub := &capturePublisher{}
	uc := NewLedgerUseCase(memory.NewTxRunner(store), memory.NewStockMovementRepository(store), pub, zerolog.Nop())
	var clockMu sync.Mutex
	clock := time.Date(2026, 3, 10, 8, 0, 0, 0, time.UTC)
	uc.now = func() time.Time {
		clockMu.Lock()
		defer clockMu.Unlock()
		clock = clock.Add(time.Second)
		return clock
	}
	return ledgerFixture{uc: uc, items: memory.NewItemRepository(store), pub: pub}
}

func (f ledgerFixture) stock(t *testing.T) int64 {
	t.Helper()
	it, err := f.items.GetByID(context.Background(), "item-1")
	require.NoError(t, err)
	require.NotNil(t, it)
	return it.CurrentStock
}

func post(typ string, qty int64) PostMovementInput {
	return PostMovementInput{
		ItemID: "item-1", UserID: "user-1", Type: typ, Quantity: qty,
		UnitPrice:       decimal.RequireFromString("2.50"),
		TransactionDate: time.Date(2026, 3, 10, 0, 0, 0, 0, time.UTC),
	}
}

func TestPostMovement_SecuenciaCompleta(t *testing.T) {
	ctx := context.Background()
	f := newLedgerFixture(t, 100)

	in, err := f.uc.PostMovement(ctx, post(entity.MovementTypeIn, 50))
	require.NoError(t, err)
	assert.Equal(t, "IN-26-001", in.TransactionCode)
	assert.Equal(t, int64(100), in.StockBefore)
	assert.Equal(t, int64(150), in.StockAfter)
	assert.True(t, decimal.RequireFromString("125").Equal(in.TotalAmount))
	assert.Equal(t, "ITM-001", in.ItemCode)
	assert.Equal(t, int64(150), f.stock(t))

	out, err := f.uc.PostMovement(ctx, post(entity.MovementTypeOut, 30))
	require.NoError(t, err)
	assert.Equal(t, "OUT-26-001", out.TransactionCode)
	assert.Equal(t, int64(150), out.StockBefore)
	assert.Equal(t, int64(120), out.StockAfter)
	assert.Equal(t, int64(120), f.stock(t))

	_, err = f.uc.PostMovement(ctx, post(entity.MovementTypeOut, 200))
	assert.ErrorIs(t, err, domain.ErrInsufficientStock)
	assert.Equal(t, int64(120), f.stock(t))

	list, total, err := f.uc.ListMovements(ctx, repository.MovementFilter{ItemID: "item-1"})
	require.NoError(t, err)
	assert.Equal(t, 2, total)
	assert.Len(t, list, 2)

	require.NoError(t, f.uc.ReverseMovement(ctx, out.ID, "user-1"))
	assert.Equal(t, int64(150), f.stock(t))

	_, err = f.uc.GetMovement(ctx, out.ID)
	assert.ErrorIs(t, err, domain.ErrNotFound)

	// La salida rechazada no consumió número de secuencia.
	out2, err := f.uc.PostMovement(ctx, post(entity.MovementTypeOut, 10))
	require.NoError(t, err)
	assert.Equal(t, "OUT-26-002", out2.TransactionCode)
	assert.Equal(t, int64(140), f.stock(t))
}

func TestPostMovement_SalidaMayorQueSaldo(t *testing.T) {
	f := newLedgerFixture(t, 10)

	_, err := f.uc.PostMovement(context.Background(), post(entity.MovementTypeOut, 15))
	assert.ErrorIs(t, err, domain.ErrInsufficientStock)
	assert.Equal(t, int64(10), f.stock(t))
	assert.Empty(t, f.pub.events)
}

func TestPostMovement_SalidaExactaDejaCero(t *testing.T) {
	f := newLedgerFixture(t, 10)

	m, err := f.uc.PostMovement(context.Background(), post(entity.MovementTypeOut, 10))
	require.NoError(t, err)
	assert.Equal(t, int64(0), m.StockAfter)
	assert.Equal(t, int64(0), f.stock(t))
}

func TestPostMovement_EntradaInvalida(t *testing.T) {
	ctx := context.Background()
	f := newLedgerFixture(t, 10)

	tests := []struct {
		name string
		in   PostMovementInput
		want error
	}{
		{"cantidad cero", post(entity.MovementTypeIn, 0), domain.ErrInvalidQuantity},
		{"cantidad negativa", post(entity.MovementTypeOut, -3), domain.ErrInvalidQuantity},
		{"tipo desconocido", post("transfer", 1), domain.ErrInvalidInput},
		{"precio negativo", func() PostMovementInput {
			in := post(entity.MovementTypeIn, 1)
			in.UnitPrice = decimal.NewFromInt(-1)
			return in
		}(), domain.ErrInvalidPrice},
		{"artículo inexistente", func() PostMovementInput {
			in := post(entity.MovementTypeIn, 1)
			in.ItemID = "nope"
			return in
		}(), domain.ErrItemNotFound},
		{"sin usuario", func() PostMovementInput {
			in := post(entity.MovementTypeIn, 1)
			in.UserID = ""
			return in
		}(), domain.ErrInvalidInput},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := f.uc.PostMovement(ctx, tt.in)
			assert.ErrorIs(t, err, tt.want)
			assert.Equal(t, int64(10), f.stock(t))
		})
	}
}

func TestReverseMovement_UsaSaldoActual(t *testing.T) {
	ctx := context.Background()
	f := newLedgerFixture(t, 0)

	in, err := f.uc.PostMovement(ctx, post(entity.MovementTypeIn, 10))
	require.NoError(t, err)
	_, err = f.uc.PostMovement(ctx, post(entity.MovementTypeOut, 8))
	require.NoError(t, err)
	assert.Equal(t, int64(2), f.stock(t))

	err = f.uc.ReverseMovement(ctx, in.ID, "user-1")
	assert.ErrorIs(t, err, domain.ErrWouldUnderflow)
	assert.Equal(t, int64(2), f.stock(t))

	still, err := f.uc.GetMovement(ctx, in.ID)
	require.NoError(t, err)
	assert.Equal(t, in.TransactionCode, still.TransactionCode)
}

func TestReverseMovement_DobleEliminacion(t *testing.T) {
	ctx := context.Background()
	f := newLedgerFixture(t, 5)

	in, err := f.uc.PostMovement(ctx, post(entity.MovementTypeIn, 5))
	require.NoError(t, err)
	require.NoError(t, f.uc.ReverseMovement(ctx, in.ID, "user-1"))
	assert.Equal(t, int64(5), f.stock(t))

	err = f.uc.ReverseMovement(ctx, in.ID, "user-1")
	assert.ErrorIs(t, err, domain.ErrNotFound)
	assert.Equal(t, int64(5), f.stock(t))
}

func TestPostMovement_SalidasConcurrentes(t *testing.T) {
	ctx := context.Background()
	f := newLedgerFixture(t, 100)

	var (
		wg       sync.WaitGroup
		mu       sync.Mutex
		codes    = map[string]bool{}
		rejected int
	)
	for i := 0; i < 15; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			m, err := f.uc.PostMovement(ctx, post(entity.MovementTypeOut, 10))
			mu.Lock()
			defer mu.Unlock()
			if errors.Is(err, domain.ErrInsufficientStock) {
				rejected++
				return
			}
			if assert.NoError(t, err) {
				codes[m.TransactionCode] = true
			}
		}()
	}
	wg.Wait()

	assert.Len(t, codes, 10)
	assert.Equal(t, 5, rejected)
	assert.Equal(t, int64(0), f.stock(t))
}

func TestPostMovement_PublicaEventos(t *testing.T) {
	ctx := context.Background()
	f := newLedgerFixture(t, 0)
	f.pub.err = errors.New("broker caído")

	m, err := f.uc.PostMovement(ctx, post(entity.MovementTypeIn, 3))
	require.NoError(t, err, "un fallo del publicador no revierte el movimiento")
	require.NoError(t, f.uc.ReverseMovement(ctx, m.ID, "user-1"))

	require.Len(t, f.pub.events, 2)
	assert.Equal(t, event.TypeMovementPosted, f.pub.events[0].Type)
	assert.Equal(t, "item-1", f.pub.events[0].Key)
	assert.Equal(t, event.TypeMovementReversed, f.pub.events[1].Type)
}

func TestParseTransactionDate(t *testing.T) {
	d, err := ParseTransactionDate("2025-03-15")
	require.NoError(t, err)
	assert.Equal(t, time.Date(2025, 3, 15, 0, 0, 0, 0, time.UTC), d)

	d, err = ParseTransactionDate("2025-03-15T10:30:00Z")
	require.NoError(t, err)
	assert.Equal(t, 10, d.Hour())

	_, err = ParseTransactionDate("15/03/2025")
	assert.Error(t, err)
}

// stockFailRunner hace fallar UpdateStock después de que el movimiento ya se escribió en la tx.
type stockFailRunner struct {
	inner *memory.TxRunner
	fail  bool
}

type failingStockItems struct {
	repository.ItemRepository
}

var errStockWrite = errors.New("escritura de saldo fallida")

func (failingStockItems) UpdateStock(context.Context, string, int64) error { return errStockWrite }

func (r *stockFailRunner) Run(ctx context.Context, fn func(
	items repository.ItemRepository,
	movements repository.StockMovementRepository,
	sequences repository.SequenceRepository,
) error) error {
	return r.inner.Run(ctx, func(items repository.ItemRepository, movements repository.StockMovementRepository, sequences repository.SequenceRepository) error {
		if r.fail {
			items = failingStockItems{items}
		}
		return fn(items, movements, sequences)
	})
}

func TestPostMovement_FalloTrasCrearMovimientoNoDejaRastro(t *testing.T) {
	ctx := context.Background()
	store := memory.NewStore()
	store.Seed([]entity.Item{{
		ID: "item-1", Code: "ITM-001", Name: "Tornillo M8", Type: entity.ItemTypeConsumable,
		CurrentStock: 10, Unit: "pcs", Status: entity.StatusActive,
	}}, nil, nil, nil)
	runner := &stockFailRunner{inner: memory.NewTxRunner(store), fail: true}
	uc := NewLedgerUseCase(runner, memory.NewStockMovementRepository(store), nil, zerolog.Nop())
	items := memory.NewItemRepository(store)

	_, err := uc.PostMovement(ctx, post(entity.MovementTypeIn, 5))
	require.ErrorIs(t, err, errStockWrite)

	list, total, err := uc.ListMovements(ctx, repository.MovementFilter{})
	require.NoError(t, err)
	assert.Empty(t, list)
	assert.Zero(t, total)
	it, err := items.GetByID(ctx, "item-1")
	require.NoError(t, err)
	assert.Equal(t, int64(10), it.CurrentStock)

	// la secuencia también volvió atrás: el primer movimiento válido sigue siendo el 001
	runner.fail = false
	mov, err := uc.PostMovement(ctx, post(entity.MovementTypeIn, 5))
	require.NoError(t, err)
	assert.Regexp(t, `^IN-\d{2}-001$`, mov.TransactionCode)
	it, err = items.GetByID(ctx, "item-1")
	require.NoError(t, err)
	assert.Equal(t, int64(15), it.CurrentStock)
}

func TestPostMovement_EntradaQueDesbordaElSaldo(t *testing.T) {
	ctx := context.Background()
	f := newLedgerFixture(t, 10)

	_, err := f.uc.PostMovement(ctx, post(entity.MovementTypeIn, math.MaxInt64))
	require.ErrorIs(t, err, domain.ErrInvalidQuantity)
	assert.Equal(t, int64(10), f.stock(t))

	_, total, err := f.uc.ListMovements(ctx, repository.MovementFilter{})
	require.NoError(t, err)
	assert.Zero(t, total)
}
