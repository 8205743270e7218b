package menu

import (
	"context"
	"errors"
)

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

// LookupItem resolves a menu item by name. Unknown names are not an
// error here: the order core treats them as "no selection".
func (s *Service) LookupItem(ctx context.Context, name string) (*Item, bool) {
	item, err := s.repo.GetByName(ctx, name)
	if err != nil {
		return nil, false
	}
	return item, true
}

func (s *Service) List(ctx context.Context) ([]Item, error) {
	return s.repo.List(ctx)
}

func (s *Service) ListByCategory(ctx context.Context, category Category) ([]Item, error) {
	if !category.Valid() {
		return nil, errors.New("unknown category")
	}
	return s.repo.ListByCategory(ctx, category)
}

func (s *Service) GetByName(ctx context.Context, name string) (*Item, error) {
	return s.repo.GetByName(ctx, name)
}

// --------------------------------------------------
// ADMIN — MENU MANAGEMENT
// --------------------------------------------------

func (s *Service) SaveItem(ctx context.Context, item *Item) error {
	if item.Name == "" {
		return errors.New("item name is required")
	}
	if item.Price < 0 {
		return errors.New("item price must be non-negative")
	}
	if !item.Category.Valid() {
		return errors.New("unknown category")
	}
	return s.repo.Upsert(ctx, item)
}

func (s *Service) RemoveItem(ctx context.Context, name string) error {
	if name == "" {
		return errors.New("item name is required")
	}
	return s.repo.Delete(ctx, name)
}
