package menu

import (
	"context"
	"errors"
)

var ErrItemNotFound = errors.New("menu item not found")

// Repository defines the data-access contract.
// Service depends ONLY on this interface.
type Repository interface {
	GetByName(ctx context.Context, name string) (*Item, error)
	List(ctx context.Context) ([]Item, error)
	ListByCategory(ctx context.Context, category Category) ([]Item, error)
	Upsert(ctx context.Context, item *Item) error
	Delete(ctx context.Context, name string) error
}
