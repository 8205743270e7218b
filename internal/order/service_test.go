package order

import (
	"context"
	"errors"
	"testing"
)

// --------------------------------------------------
// Mock Publisher
// --------------------------------------------------

type MockPublisher struct {
	routingKeys []string
	events      []any
}

func (m *MockPublisher) PublishOrderEvent(ctx context.Context, routingKey string, event any) error {
	m.routingKeys = append(m.routingKeys, routingKey)
	m.events = append(m.events, event)
	return nil
}

func newTestService() (*Service, *MockPublisher) {
	events := &MockPublisher{}
	service := NewService(testLookup(), NewInMemoryRepository(), events)
	return service, events
}

// --------------------------------------------------
// TESTS
// --------------------------------------------------

func TestStartThenSelectThenSubmit(t *testing.T) {
	ctx := context.Background()
	service, events := newTestService()

	trayID, snap := service.Start("customer-1")
	if snap.Subtotal != 0 || snap.Entree != nil {
		t.Fatalf("expected empty tray, got %+v", snap)
	}

	snap, err := service.SetSlot(ctx, trayID, "customer-1", SlotEntree, "Burrito")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !almostEqual(snap.Total, 4.32) {
		t.Errorf("expected total 4.32, got %v", snap.Total)
	}

	snap, err = service.SetSlot(ctx, trayID, "customer-1", SlotSide, "Fries")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !almostEqual(snap.Subtotal, 6.00) {
		t.Errorf("expected subtotal 6.00, got %v", snap.Subtotal)
	}

	order, err := service.Submit(ctx, trayID, "customer-1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if order.Entree != "Burrito" || order.Side != "Fries" || order.Accompaniment != "" {
		t.Errorf("unexpected archived order: %+v", order)
	}
	if !almostEqual(order.Total, 6.48) {
		t.Errorf("expected archived total 6.48, got %v", order.Total)
	}

	if len(events.routingKeys) != 1 || events.routingKeys[0] != "order.submitted" {
		t.Errorf("expected one order.submitted event, got %v", events.routingKeys)
	}

	// the tray is closed after submit
	if _, err := service.Get(trayID, "customer-1"); err == nil {
		t.Error("expected tray to be closed after submit")
	}
}

func TestSubmitRequiresEntree(t *testing.T) {
	ctx := context.Background()
	service, _ := newTestService()

	trayID, _ := service.Start("customer-1")
	if _, err := service.SetSlot(ctx, trayID, "customer-1", SlotSide, "Fries"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if _, err := service.Submit(ctx, trayID, "customer-1"); err != ErrEmptyTray {
		t.Fatalf("expected ErrEmptyTray, got %v", err)
	}
}

func TestTrayOwnership(t *testing.T) {
	ctx := context.Background()
	service, _ := newTestService()

	trayID, _ := service.Start("customer-1")

	if _, err := service.Get(trayID, "customer-2"); err != ErrTrayNotFound {
		t.Errorf("expected ErrTrayNotFound for foreign customer, got %v", err)
	}
	if _, err := service.SetSlot(ctx, trayID, "customer-2", SlotEntree, "Burrito"); err != ErrTrayNotFound {
		t.Errorf("expected ErrTrayNotFound for foreign customer, got %v", err)
	}
}

func TestUnknownSlotRejected(t *testing.T) {
	ctx := context.Background()
	service, _ := newTestService()

	trayID, _ := service.Start("customer-1")
	if _, err := service.SetSlot(ctx, trayID, "customer-1", Slot("dessert"), "Cake"); err != ErrUnknownSlot {
		t.Fatalf("expected ErrUnknownSlot, got %v", err)
	}
}

func TestCancelClosesTrayAndPublishes(t *testing.T) {
	ctx := context.Background()
	service, events := newTestService()

	trayID, _ := service.Start("customer-1")
	if _, err := service.SetSlot(ctx, trayID, "customer-1", SlotEntree, "Taco"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if err := service.Cancel(ctx, trayID, "customer-1"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(events.routingKeys) != 1 || events.routingKeys[0] != "order.cancelled" {
		t.Errorf("expected one order.cancelled event, got %v", events.routingKeys)
	}
	if _, err := service.Get(trayID, "customer-1"); err == nil {
		t.Error("expected tray to be closed after cancel")
	}
}

// --------------------------------------------------
// Blocking publisher: Submit must not hold the
// service lock while the broker call is in flight
// --------------------------------------------------

type blockingPublisher struct {
	started chan struct{}
	release chan struct{}
}

func (p *blockingPublisher) PublishOrderEvent(ctx context.Context, routingKey string, event any) error {
	p.started <- struct{}{}
	<-p.release
	return nil
}

func TestSubmitDoesNotBlockOtherTrays(t *testing.T) {
	ctx := context.Background()
	pub := &blockingPublisher{
		started: make(chan struct{}),
		release: make(chan struct{}),
	}
	service := NewService(testLookup(), NewInMemoryRepository(), pub)

	tray1, _ := service.Start("customer-1")
	if _, err := service.SetSlot(ctx, tray1, "customer-1", SlotEntree, "Burrito"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	tray2, _ := service.Start("customer-2")

	done := make(chan error, 1)
	go func() {
		_, err := service.Submit(ctx, tray1, "customer-1")
		done <- err
	}()

	// the publish is now in flight; another tray must still update
	<-pub.started
	if _, err := service.SetSlot(ctx, tray2, "customer-2", SlotEntree, "Taco"); err != nil {
		t.Fatalf("unexpected error while publish in flight: %v", err)
	}

	close(pub.release)
	if err := <-done; err != nil {
		t.Fatalf("unexpected submit error: %v", err)
	}
}

// --------------------------------------------------
// Failing archive: the tray must survive so the
// customer can retry the submit
// --------------------------------------------------

type failingRepository struct {
	err error
}

func (r *failingRepository) SaveSubmitted(ctx context.Context, order *SubmittedOrder) error {
	return r.err
}

func (r *failingRepository) ListByCustomer(ctx context.Context, customerID string) ([]SubmittedOrder, error) {
	return nil, r.err
}

func TestSubmitKeepsTrayWhenArchiveFails(t *testing.T) {
	ctx := context.Background()
	repoErr := errors.New("connection lost")
	service := NewService(testLookup(), &failingRepository{err: repoErr}, &MockPublisher{})

	trayID, _ := service.Start("customer-1")
	if _, err := service.SetSlot(ctx, trayID, "customer-1", SlotEntree, "Burrito"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if _, err := service.Submit(ctx, trayID, "customer-1"); !errors.Is(err, repoErr) {
		t.Fatalf("expected archive error, got %v", err)
	}

	// the tray is back with its selections intact
	snap, err := service.Get(trayID, "customer-1")
	if err != nil {
		t.Fatalf("expected tray to survive a failed submit: %v", err)
	}
	if snap.Entree == nil || snap.Entree.Name != "Burrito" {
		t.Errorf("expected selections preserved, got %+v", snap)
	}
}

func TestHistoryListsSubmittedOrders(t *testing.T) {
	ctx := context.Background()
	service, _ := newTestService()

	for _, entree := range []string{"Burrito", "Taco"} {
		trayID, _ := service.Start("customer-1")
		if _, err := service.SetSlot(ctx, trayID, "customer-1", SlotEntree, entree); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if _, err := service.Submit(ctx, trayID, "customer-1"); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	}

	orders, err := service.History(ctx, "customer-1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(orders) != 2 {
		t.Fatalf("expected 2 archived orders, got %d", len(orders))
	}

	other, err := service.History(ctx, "customer-2")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(other) != 0 {
		t.Errorf("expected empty history for other customer, got %d", len(other))
	}
}
