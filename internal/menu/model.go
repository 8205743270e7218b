package menu

// Category places an item in one of the three tray slots.
type Category string

const (
	CategoryEntree        Category = "entree"
	CategorySide          Category = "side"
	CategoryAccompaniment Category = "accompaniment"
)

// Valid reports whether c is one of the three known categories.
func (c Category) Valid() bool {
	switch c {
	case CategoryEntree, CategorySide, CategoryAccompaniment:
		return true
	}
	return false
}

// Item is the immutable menu record
// used for pricing and display.
type Item struct {
	Name        string   `json:"name"`
	Price       float64  `json:"price"`
	Category    Category `json:"category"`
	Description string   `json:"description"`
}
