package order

import (
	"context"
	"fmt"

	"lunchline/internal/menu"
)

// TaxRate is the fixed sales tax applied to every tray.
const TaxRate = 0.08

// Lookup resolves a menu item by name. The boolean reports whether the
// name exists on the menu.
type Lookup interface {
	LookupItem(ctx context.Context, name string) (*menu.Item, bool)
}

// Snapshot is a consistent read of a tray taken after an update has
// fully completed: the derived fields always agree with the selections.
type Snapshot struct {
	Entree        *menu.Item `json:"entree"`
	Side          *menu.Item `json:"side"`
	Accompaniment *menu.Item `json:"accompaniment"`

	Subtotal float64 `json:"subtotal"`
	Tax      float64 `json:"tax"`
	Total    float64 `json:"total"`

	SubtotalText string `json:"subtotal_text"`
	TaxText      string `json:"tax_text"`
	TotalText    string `json:"total_text"`
}

// State tracks the current selection in each of the three tray slots
// and keeps subtotal, tax, and total consistent with them. Replacing a
// slot's selection swaps its price contribution; it never accumulates.
//
// State is not goroutine-safe: it expects a single writer. The order
// Service serializes access per tray.
type State struct {
	lookup Lookup

	entree        *menu.Item
	side          *menu.Item
	accompaniment *menu.Item

	// last price added to the subtotal per slot, so replacing a
	// selection removes exactly what the old one contributed
	prevEntreePrice        float64
	prevSidePrice          float64
	prevAccompanimentPrice float64

	subtotal float64
	tax      float64
	total    float64

	onChange func(Snapshot)
}

func NewState(lookup Lookup) *State {
	return &State{lookup: lookup}
}

// OnChange registers a callback invoked after every completed mutation.
// The snapshot it receives is always internally consistent.
func (s *State) OnChange(fn func(Snapshot)) {
	s.onChange = fn
}

func (s *State) SetEntree(ctx context.Context, name string) {
	s.setSlot(ctx, &s.entree, &s.prevEntreePrice, name)
}

func (s *State) SetSide(ctx context.Context, name string) {
	s.setSlot(ctx, &s.side, &s.prevSidePrice, name)
}

func (s *State) SetAccompaniment(ctx context.Context, name string) {
	s.setSlot(ctx, &s.accompaniment, &s.prevAccompanimentPrice, name)
}

// setSlot swaps one slot's selection: remove the old contribution, add
// the new one, recompute tax/total before anyone can observe the tray.
// Names not on the menu deselect the slot.
func (s *State) setSlot(ctx context.Context, slot **menu.Item, prevPrice *float64, name string) {
	item, ok := s.lookup.LookupItem(ctx, name)

	s.subtotal -= *prevPrice

	if ok {
		*slot = item
		*prevPrice = item.Price
	} else {
		*slot = nil
		*prevPrice = 0
	}

	s.subtotal += *prevPrice
	s.CalculateTaxAndTotal()
	s.notify()
}

// CalculateTaxAndTotal recomputes the two derived fields from the
// current subtotal. Every setter calls it before returning.
func (s *State) CalculateTaxAndTotal() {
	s.tax = s.subtotal * TaxRate
	s.total = s.subtotal + s.tax
}

// Reset clears all selections and derived fields back to the initial
// state. Runs once per submitted or cancelled order.
func (s *State) Reset() {
	s.entree = nil
	s.side = nil
	s.accompaniment = nil
	s.prevEntreePrice = 0
	s.prevSidePrice = 0
	s.prevAccompanimentPrice = 0
	s.subtotal = 0
	s.tax = 0
	s.total = 0
	s.notify()
}

func (s *State) notify() {
	if s.onChange != nil {
		s.onChange(s.Snapshot())
	}
}

func (s *State) Entree() *menu.Item        { return s.entree }
func (s *State) Side() *menu.Item          { return s.side }
func (s *State) Accompaniment() *menu.Item { return s.accompaniment }
func (s *State) Subtotal() float64         { return s.subtotal }
func (s *State) Tax() float64              { return s.tax }
func (s *State) Total() float64            { return s.total }

func (s *State) Snapshot() Snapshot {
	return Snapshot{
		Entree:        s.entree,
		Side:          s.side,
		Accompaniment: s.accompaniment,
		Subtotal:      s.subtotal,
		Tax:           s.tax,
		Total:         s.total,
		SubtotalText:  FormatUSD(s.subtotal),
		TaxText:       FormatUSD(s.tax),
		TotalText:     FormatUSD(s.total),
	}
}

// FormatUSD renders an amount as a dollar string, rounding to cents at
// the display boundary only.
func FormatUSD(amount float64) string {
	return fmt.Sprintf("$%.2f", amount)
}
