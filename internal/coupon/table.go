package coupon

// mapTable implements Table using a map for O(1) lookups.
type mapTable struct {
	discounts map[string]float64
}

// NewMapTable creates a new map-based coupon table.
func NewMapTable(capacity int) Table {
	return &mapTable{
		discounts: make(map[string]float64, capacity),
	}
}

// Discount returns the discount for a code and whether it exists.
func (t *mapTable) Discount(code string) (float64, bool) {
	amount, exists := t.discounts[code]
	return amount, exists
}

// Size returns the number of codes in the table.
func (t *mapTable) Size() int {
	return len(t.discounts)
}

// Add registers a coupon code with its discount amount.
func (t *mapTable) Add(code string, amount float64) {
	t.discounts[code] = amount
}
