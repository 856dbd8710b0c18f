package order

import (
	"context"
	"sync"

	"github.com/google/uuid"
)

// InMemoryRepository keeps orders in a map. Used by tests and local
// runs without a configured store.
type InMemoryRepository struct {
	mu     sync.Mutex
	orders map[string]PersistedOrder
}

func NewInMemoryRepository() *InMemoryRepository {
	return &InMemoryRepository{
		orders: make(map[string]PersistedOrder),
	}
}

func (r *InMemoryRepository) Push(ctx context.Context, rec *PersistedOrder) (string, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	id := uuid.New().String()
	r.orders[id] = *rec
	return id, nil
}

func (r *InMemoryRepository) Exists(ctx context.Context, callID string) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, rec := range r.orders {
		if rec.CallID == callID {
			return true, nil
		}
	}
	return false, nil
}

func (r *InMemoryRepository) List(ctx context.Context) (map[string]PersistedOrder, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	orders := make(map[string]PersistedOrder, len(r.orders))
	for id, rec := range r.orders {
		orders[id] = rec
	}
	return orders, nil
}

func (r *InMemoryRepository) UpdateStatus(ctx context.Context, id string, status string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	rec, ok := r.orders[id]
	if !ok {
		return ErrNotFound
	}
	rec.Status = status
	r.orders[id] = rec
	return nil
}
