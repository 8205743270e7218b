package order

import (
	"context"
	"sync"

	"github.com/google/uuid"
)

type InMemoryRepository struct {
	mu     sync.RWMutex
	orders map[string][]SubmittedOrder
}

func NewInMemoryRepository() *InMemoryRepository {
	return &InMemoryRepository{
		orders: make(map[string][]SubmittedOrder),
	}
}

func (r *InMemoryRepository) SaveSubmitted(ctx context.Context, order *SubmittedOrder) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if order.ID == "" {
		order.ID = uuid.New().String()
	}
	r.orders[order.CustomerID] = append(r.orders[order.CustomerID], *order)
	return nil
}

func (r *InMemoryRepository) ListByCustomer(ctx context.Context, customerID string) ([]SubmittedOrder, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	orders := make([]SubmittedOrder, len(r.orders[customerID]))
	copy(orders, r.orders[customerID])
	return orders, nil
}
