package cart

import (
	"fmt"
	"sync"

	"freshmart/internal/model"
	"freshmart/internal/notify"

	"github.com/rs/zerolog"
)

// Store owns the cart lines for a session. Lines are keyed by product id for
// O(1) mutation; a separate slice preserves first-add order for display.
// Derived values (item count, subtotal) are recomputed from the line set on
// every read and are never cached.
type Store struct {
	mu       sync.Mutex
	lines    map[string]*model.CartLine
	order    []string
	notifier notify.Notifier
	logger   zerolog.Logger
}

// NewStore creates an empty cart store.
func NewStore(notifier notify.Notifier, logger zerolog.Logger) *Store {
	return &Store{
		lines:    make(map[string]*model.CartLine),
		notifier: notifier,
		logger:   logger.With().Str("component", "cart").Logger(),
	}
}

// AddItem adds quantity units of the product to the cart. If a line for the
// product already exists its quantity is incremented, otherwise a new line is
// appended. A non-positive quantity is a no-op; callers are expected to
// pre-validate.
func (s *Store) AddItem(product model.Product, quantity int) {
	if quantity <= 0 {
		s.logger.Debug().
			Str("product_id", product.ID).
			Int("quantity", quantity).
			Msg("ignoring non-positive quantity")
		return
	}

	s.mu.Lock()
	line, exists := s.lines[product.ID]
	if exists {
		line.Quantity += quantity
	} else {
		s.lines[product.ID] = &model.CartLine{Product: product, Quantity: quantity}
		s.order = append(s.order, product.ID)
	}
	s.mu.Unlock()

	if exists {
		s.notifier.Show(notify.KindSuccess, fmt.Sprintf("Updated %s quantity", product.Name))
	} else {
		s.notifier.Show(notify.KindSuccess, fmt.Sprintf("Added %s to cart", product.Name))
	}

	s.logger.Debug().
		Str("product_id", product.ID).
		Int("quantity", quantity).
		Bool("merged", exists).
		Msg("item added")
}

// UpdateQuantity replaces the line's quantity in place, preserving its
// position. A quantity of zero or less is equivalent to RemoveItem.
func (s *Store) UpdateQuantity(productID string, quantity int) {
	if quantity <= 0 {
		s.RemoveItem(productID)
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	line, ok := s.lines[productID]
	if !ok {
		s.logger.Debug().Str("product_id", productID).Msg("update for absent line ignored")
		return
	}
	line.Quantity = quantity
}

// RemoveItem deletes the matching line if present. Removing an absent product
// is a no-op, not an error.
func (s *Store) RemoveItem(productID string) {
	s.mu.Lock()
	_, ok := s.lines[productID]
	if ok {
		delete(s.lines, productID)
		for i, id := range s.order {
			if id == productID {
				s.order = append(s.order[:i], s.order[i+1:]...)
				break
			}
		}
	}
	s.mu.Unlock()

	if ok {
		s.notifier.Show(notify.KindSuccess, "Item removed from cart")
		s.logger.Debug().Str("product_id", productID).Msg("item removed")
	}
}

// ItemCount returns the sum of quantities across all lines.
func (s *Store) ItemCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()

	count := 0
	for _, line := range s.lines {
		count += line.Quantity
	}
	return count
}

// Subtotal returns the sum of price times quantity across all lines.
func (s *Store) Subtotal() float64 {
	s.mu.Lock()
	defer s.mu.Unlock()

	total := 0.0
	for _, line := range s.lines {
		total += line.Product.Price * float64(line.Quantity)
	}
	return total
}

// Lines returns a copy of the cart lines in first-add order.
func (s *Store) Lines() []model.CartLine {
	s.mu.Lock()
	defer s.mu.Unlock()

	lines := make([]model.CartLine, 0, len(s.order))
	for _, id := range s.order {
		lines = append(lines, *s.lines[id])
	}
	return lines
}

// Len returns the number of distinct lines in the cart.
func (s *Store) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.lines)
}

// View returns a snapshot of the cart for the rendering layer.
func (s *Store) View() model.CartView {
	return model.CartView{
		Lines:     s.Lines(),
		ItemCount: s.ItemCount(),
		Subtotal:  s.Subtotal(),
	}
}

// Clear resets the cart to empty. Called exactly once per order, at
// confirmation time.
func (s *Store) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.lines = make(map[string]*model.CartLine)
	s.order = nil
	s.logger.Debug().Msg("cart cleared")
}
