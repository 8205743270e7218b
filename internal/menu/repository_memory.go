package menu

import (
	"context"
	"sort"
	"sync"
)

// InMemoryRepository keeps the menu in a map keyed by item name.
// Used when no database is configured, and as the test double.
type InMemoryRepository struct {
	mu    sync.RWMutex
	items map[string]Item
}

func NewInMemoryRepository(items ...Item) *InMemoryRepository {
	r := &InMemoryRepository{
		items: make(map[string]Item, len(items)),
	}
	for _, item := range items {
		r.items[item.Name] = item
	}
	return r
}

func (r *InMemoryRepository) GetByName(ctx context.Context, name string) (*Item, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	item, ok := r.items[name]
	if !ok {
		return nil, ErrItemNotFound
	}
	return &item, nil
}

func (r *InMemoryRepository) List(ctx context.Context) ([]Item, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	items := make([]Item, 0, len(r.items))
	for _, item := range r.items {
		items = append(items, item)
	}
	sort.Slice(items, func(i, j int) bool {
		if items[i].Category != items[j].Category {
			return items[i].Category < items[j].Category
		}
		return items[i].Name < items[j].Name
	})
	return items, nil
}

func (r *InMemoryRepository) ListByCategory(ctx context.Context, category Category) ([]Item, error) {
	all, err := r.List(ctx)
	if err != nil {
		return nil, err
	}

	items := make([]Item, 0, len(all))
	for _, item := range all {
		if item.Category == category {
			items = append(items, item)
		}
	}
	return items, nil
}

func (r *InMemoryRepository) Upsert(ctx context.Context, item *Item) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.items[item.Name] = *item
	return nil
}

func (r *InMemoryRepository) Delete(ctx context.Context, name string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.items[name]; !ok {
		return ErrItemNotFound
	}
	delete(r.items, name)
	return nil
}
