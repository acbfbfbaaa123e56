// Package memory implementa los repositorios en memoria (tests y desarrollo local).
// Las transacciones se serializan y se deshacen restaurando una copia del estado.
package memory

import (
	"context"
	"sync"

	"github.com/jhoicas/gudang-api/internal/domain/entity"
	"github.com/jhoicas/gudang-api/internal/domain/repository"
)

// Store estado compartido por todos los repositorios en memoria.
type Store struct {
	txMu sync.Mutex   // una transacción a la vez (equivale al bloqueo de fila)
	mu   sync.RWMutex // protege los mapas

	items      map[string]entity.Item
	movements  map[string]entity.StockMovement
	sequences  map[string]int64
	categories map[string]entity.Category
	vendors    map[string]entity.Vendor
	requests   map[string]entity.StockRequest
	users      map[string]entity.User
}

// NewStore crea un store vacío.
func NewStore() *Store {
	return &Store{
		items:      make(map[string]entity.Item),
		movements:  make(map[string]entity.StockMovement),
		sequences:  make(map[string]int64),
		categories: make(map[string]entity.Category),
		vendors:    make(map[string]entity.Vendor),
		requests:   make(map[string]entity.StockRequest),
		users:      make(map[string]entity.User),
	}
}

type snapshot struct {
	items     map[string]entity.Item
	movements map[string]entity.StockMovement
	sequences map[string]int64
	requests  map[string]entity.StockRequest
}

func (s *Store) snapshot() snapshot {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return snapshot{
		items:     cloneMap(s.items),
		movements: cloneMap(s.movements),
		sequences: cloneMap(s.sequences),
		requests:  cloneMap(s.requests),
	}
}

func (s *Store) restore(snap snapshot) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.items = snap.items
	s.movements = snap.movements
	s.sequences = snap.sequences
	s.requests = snap.requests
}

func cloneMap[K comparable, V any](m map[K]V) map[K]V {
	out := make(map[K]V, len(m))
	for k, v := range m {
		out[k] = v
	}
	return out
}

// TxRunner ejecuta fn de forma serializada; si fn devuelve error se restaura el estado previo.
type TxRunner struct {
	store *Store
}

// NewTxRunner crea el runner sobre el store.
func NewTxRunner(store *Store) *TxRunner {
	return &TxRunner{store: store}
}

func (r *TxRunner) atomically(fn func() error) error {
	r.store.txMu.Lock()
	defer r.store.txMu.Unlock()
	snap := r.store.snapshot()
	if err := fn(); err != nil {
		r.store.restore(snap)
		return err
	}
	return nil
}

// Run implementa el runner del libro de stock.
func (r *TxRunner) Run(ctx context.Context, fn func(
	items repository.ItemRepository,
	movements repository.StockMovementRepository,
	sequences repository.SequenceRepository,
) error) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	return r.atomically(func() error {
		return fn(NewItemRepository(r.store), NewStockMovementRepository(r.store), NewSequenceRepository(r.store))
	})
}

// RunRequests implementa el runner de solicitudes de stock.
func (r *TxRunner) RunRequests(ctx context.Context, fn func(
	requests repository.StockRequestRepository,
	sequences repository.SequenceRepository,
) error) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	return r.atomically(func() error {
		return fn(NewStockRequestRepository(r.store), NewSequenceRepository(r.store))
	})
}

// Seed carga datos maestros directamente (tests).
func (s *Store) Seed(items []entity.Item, categories []entity.Category, vendors []entity.Vendor, users []entity.User) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, it := range items {
		s.items[it.ID] = it
	}
	for _, c := range categories {
		s.categories[c.ID] = c
	}
	for _, v := range vendors {
		s.vendors[v.ID] = v
	}
	for _, u := range users {
		s.users[u.ID] = u
	}
}

func page[T any](list []T, limit, offset int) []T {
	if offset >= len(list) {
		return []T{}
	}
	list = list[offset:]
	if limit > 0 && limit < len(list) {
		list = list[:limit]
	}
	return list
}
