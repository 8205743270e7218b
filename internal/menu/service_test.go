package menu

import (
	"context"
	"testing"
)

func TestLookupItem_Found(t *testing.T) {
	repo := NewInMemoryRepository(DefaultMenu()...)
	service := NewService(repo)

	item, ok := service.LookupItem(context.Background(), "Cauliflower")
	if !ok {
		t.Fatal("expected item to be found")
	}

	if item.Price != 7.00 {
		t.Errorf("expected price 7.00, got %v", item.Price)
	}
	if item.Category != CategoryEntree {
		t.Errorf("expected category entree, got %s", item.Category)
	}
}

func TestLookupItem_Unknown(t *testing.T) {
	repo := NewInMemoryRepository(DefaultMenu()...)
	service := NewService(repo)

	item, ok := service.LookupItem(context.Background(), "Pizza")
	if ok {
		t.Fatal("expected unknown item to not be found")
	}
	if item != nil {
		t.Errorf("expected nil item, got %+v", item)
	}
}

func TestListByCategory(t *testing.T) {
	repo := NewInMemoryRepository(DefaultMenu()...)
	service := NewService(repo)

	sides, err := service.ListByCategory(context.Background(), CategorySide)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(sides) != 4 {
		t.Fatalf("expected 4 sides, got %d", len(sides))
	}
	for _, item := range sides {
		if item.Category != CategorySide {
			t.Errorf("expected only sides, got %s in %s", item.Name, item.Category)
		}
	}
}

func TestListByCategory_Unknown(t *testing.T) {
	service := NewService(NewInMemoryRepository())

	if _, err := service.ListByCategory(context.Background(), Category("dessert")); err == nil {
		t.Fatal("expected error for unknown category")
	}
}

func TestSaveItem_Validation(t *testing.T) {
	service := NewService(NewInMemoryRepository())

	cases := []struct {
		name string
		item Item
	}{
		{"missing name", Item{Price: 1.00, Category: CategorySide}},
		{"negative price", Item{Name: "Soup", Price: -1.00, Category: CategorySide}},
		{"bad category", Item{Name: "Soup", Price: 1.00, Category: "dessert"}},
	}

	for _, tc := range cases {
		if err := service.SaveItem(context.Background(), &tc.item); err == nil {
			t.Errorf("%s: expected validation error", tc.name)
		}
	}
}

func TestSaveItem_ReplacesExisting(t *testing.T) {
	repo := NewInMemoryRepository()
	service := NewService(repo)

	item := &Item{Name: "Soup", Price: 3.00, Category: CategorySide}
	if err := service.SaveItem(context.Background(), item); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	item.Price = 3.50
	if err := service.SaveItem(context.Background(), item); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	got, ok := service.LookupItem(context.Background(), "Soup")
	if !ok {
		t.Fatal("expected item to exist")
	}
	if got.Price != 3.50 {
		t.Errorf("expected updated price 3.50, got %v", got.Price)
	}
}

func TestRemoveItem_Unknown(t *testing.T) {
	service := NewService(NewInMemoryRepository())

	err := service.RemoveItem(context.Background(), "Ghost")
	if err == nil {
		t.Fatal("expected error removing unknown item")
	}
}
