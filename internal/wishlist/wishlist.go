package wishlist

import (
	"sync"
	"time"

	"freshmart/internal/model"

	"github.com/rs/zerolog"
)

// Entry is one wishlisted product with the time it was added.
type Entry struct {
	Product model.Product `json:"product"`
	AddedAt time.Time     `json:"addedAt"`
}

// Store owns the session's wishlist: an ordered set of products. Adding a
// product already present is a no-op, as is removing an absent one.
type Store struct {
	mu      sync.Mutex
	entries map[string]Entry
	order   []string
	logger  zerolog.Logger
	now     func() time.Time
}

// NewStore creates an empty wishlist.
func NewStore(logger zerolog.Logger) *Store {
	return &Store{
		entries: make(map[string]Entry),
		logger:  logger.With().Str("component", "wishlist").Logger(),
		now:     time.Now,
	}
}

// Add puts the product on the wishlist. Reports whether it was newly added.
func (s *Store) Add(product model.Product) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.entries[product.ID]; ok {
		return false
	}

	s.entries[product.ID] = Entry{Product: product, AddedAt: s.now()}
	s.order = append(s.order, product.ID)

	s.logger.Debug().Str("product_id", product.ID).Msg("product wishlisted")
	return true
}

// Remove takes the product off the wishlist. Reports whether it was present.
func (s *Store) Remove(productID string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.entries[productID]; !ok {
		return false
	}

	delete(s.entries, productID)
	for i, id := range s.order {
		if id == productID {
			s.order = append(s.order[:i], s.order[i+1:]...)
			break
		}
	}

	s.logger.Debug().Str("product_id", productID).Msg("product unwishlisted")
	return true
}

// Contains reports whether the product is on the wishlist.
func (s *Store) Contains(productID string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	_, ok := s.entries[productID]
	return ok
}

// Entries returns the wishlist in the order products were added.
func (s *Store) Entries() []Entry {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]Entry, 0, len(s.order))
	for _, id := range s.order {
		out = append(out, s.entries[id])
	}
	return out
}
