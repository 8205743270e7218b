package order

import "time"

// Slot names one of the three tray positions.
type Slot string

const (
	SlotEntree        Slot = "entree"
	SlotSide          Slot = "side"
	SlotAccompaniment Slot = "accompaniment"
)

// SubmittedOrder is the archived record of a completed tray. Only
// finished orders are persisted; in-progress trays live in memory.
type SubmittedOrder struct {
	ID            string    `json:"id"`
	CustomerID    string    `json:"customer_id"`
	Entree        string    `json:"entree"`
	Side          string    `json:"side,omitempty"`
	Accompaniment string    `json:"accompaniment,omitempty"`
	Subtotal      float64   `json:"subtotal"`
	Tax           float64   `json:"tax"`
	Total         float64   `json:"total"`
	SubmittedAt   time.Time `json:"submitted_at"`
}
