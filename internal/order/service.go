package order

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/google/uuid"
)

var (
	ErrTrayNotFound = errors.New("tray not found")
	ErrEmptyTray    = errors.New("tray has no entree selected")
	ErrUnknownSlot  = errors.New("unknown slot")
)

// Publisher pushes order lifecycle events to interested consumers
// (kitchen display, notifications). See internal/events.
type Publisher interface {
	PublishOrderEvent(ctx context.Context, routingKey string, event any) error
}

// Event payloads published on submit/cancel.
type SubmittedEvent struct {
	OrderID       string  `json:"order_id"`
	CustomerID    string  `json:"customer_id"`
	Entree        string  `json:"entree"`
	Side          string  `json:"side,omitempty"`
	Accompaniment string  `json:"accompaniment,omitempty"`
	Total         float64 `json:"total"`
}

type CancelledEvent struct {
	TrayID     string `json:"tray_id"`
	CustomerID string `json:"customer_id"`
}

type tray struct {
	customerID string
	state      *State
}

// Service owns one State per open tray. The map is shared between
// request goroutines; the mutex gives each State its single writer.
type Service struct {
	mu    sync.Mutex
	trays map[string]*tray

	lookup Lookup
	repo   Repository
	events Publisher
}

func NewService(lookup Lookup, repo Repository, events Publisher) *Service {
	return &Service{
		trays:  make(map[string]*tray),
		lookup: lookup,
		repo:   repo,
		events: events,
	}
}

// Start opens a new empty tray for the customer and returns its ID.
func (s *Service) Start(customerID string) (string, Snapshot) {
	s.mu.Lock()
	defer s.mu.Unlock()

	id := uuid.New().String()
	s.trays[id] = &tray{
		customerID: customerID,
		state:      NewState(s.lookup),
	}
	return id, s.trays[id].state.Snapshot()
}

func (s *Service) Get(trayID, customerID string) (Snapshot, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	t, err := s.tray(trayID, customerID)
	if err != nil {
		return Snapshot{}, err
	}
	return t.state.Snapshot(), nil
}

// SetSlot replaces one slot's selection and returns the resulting
// consistent snapshot. Unknown item names deselect the slot.
func (s *Service) SetSlot(ctx context.Context, trayID, customerID string, slot Slot, name string) (Snapshot, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	t, err := s.tray(trayID, customerID)
	if err != nil {
		return Snapshot{}, err
	}

	switch slot {
	case SlotEntree:
		t.state.SetEntree(ctx, name)
	case SlotSide:
		t.state.SetSide(ctx, name)
	case SlotAccompaniment:
		t.state.SetAccompaniment(ctx, name)
	default:
		return Snapshot{}, ErrUnknownSlot
	}

	return t.state.Snapshot(), nil
}

// Submit archives the completed tray, publishes order.submitted, then
// resets and closes the tray. A tray needs at least an entree.
//
// The tray is claimed out of the map before the archive write and the
// publish, so neither the database nor a slow broker is ever reached
// while s.mu is held and other trays keep updating freely. If the
// archive write fails the tray is put back untouched.
func (s *Service) Submit(ctx context.Context, trayID, customerID string) (*SubmittedOrder, error) {
	s.mu.Lock()
	t, err := s.tray(trayID, customerID)
	if err != nil {
		s.mu.Unlock()
		return nil, err
	}

	snap := t.state.Snapshot()
	if snap.Entree == nil {
		s.mu.Unlock()
		return nil, ErrEmptyTray
	}

	delete(s.trays, trayID)
	s.mu.Unlock()

	order := &SubmittedOrder{
		ID:          uuid.New().String(),
		CustomerID:  customerID,
		Entree:      snap.Entree.Name,
		Subtotal:    snap.Subtotal,
		Tax:         snap.Tax,
		Total:       snap.Total,
		SubmittedAt: time.Now().UTC(),
	}
	if snap.Side != nil {
		order.Side = snap.Side.Name
	}
	if snap.Accompaniment != nil {
		order.Accompaniment = snap.Accompaniment.Name
	}

	if err := s.repo.SaveSubmitted(ctx, order); err != nil {
		s.mu.Lock()
		s.trays[trayID] = t
		s.mu.Unlock()
		return nil, err
	}

	// the order is archived at this point; the event is best-effort
	_ = s.events.PublishOrderEvent(ctx, "order.submitted", SubmittedEvent{
		OrderID:       order.ID,
		CustomerID:    order.CustomerID,
		Entree:        order.Entree,
		Side:          order.Side,
		Accompaniment: order.Accompaniment,
		Total:         order.Total,
	})

	t.state.Reset()
	return order, nil
}

// Cancel publishes order.cancelled, resets, and closes the tray. As in
// Submit, the tray is claimed first and the publish runs unlocked.
func (s *Service) Cancel(ctx context.Context, trayID, customerID string) error {
	s.mu.Lock()
	t, err := s.tray(trayID, customerID)
	if err != nil {
		s.mu.Unlock()
		return err
	}
	delete(s.trays, trayID)
	s.mu.Unlock()

	_ = s.events.PublishOrderEvent(ctx, "order.cancelled", CancelledEvent{
		TrayID:     trayID,
		CustomerID: customerID,
	})

	t.state.Reset()
	return nil
}

// History lists the customer's archived orders, newest first.
func (s *Service) History(ctx context.Context, customerID string) ([]SubmittedOrder, error) {
	return s.repo.ListByCustomer(ctx, customerID)
}

// tray looks up an open tray and checks ownership. Callers hold s.mu.
func (s *Service) tray(trayID, customerID string) (*tray, error) {
	t, ok := s.trays[trayID]
	if !ok || t.customerID != customerID {
		return nil, ErrTrayNotFound
	}
	return t, nil
}
