package view

import (
	"sync"

	"freshmart/internal/model"

	"github.com/rs/zerolog"
)

// Page identifies the single page-level view that is currently visible.
// Exactly one page is active at any time; a single discriminated value
// replaces the original UI's pile of independent boolean flags, which
// permitted invalid combinations.
type Page string

const (
	PageHome              Page = "home"
	PageCategory          Page = "category"
	PageSearch            Page = "search"
	PageProduct           Page = "product"
	PageCart              Page = "cart"
	PageCheckout          Page = "checkout"
	PageOrderConfirmation Page = "order-confirmation"
	PageTrackOrder        Page = "track-order"
	PageWishlist          Page = "wishlist"
	PageAccount           Page = "account"
)

// IsValid reports whether p names a known page.
func (p Page) IsValid() bool {
	switch p {
	case PageHome, PageCategory, PageSearch, PageProduct, PageCart,
		PageCheckout, PageOrderConfirmation, PageTrackOrder,
		PageWishlist, PageAccount:
		return true
	}
	return false
}

// predecessors maps each page to where Back lands. There is no history
// stack: back from a sub-page returns to a single fixed predecessor, as the
// storefront's hardcoded back buttons do. Pages without an entry fall back
// to home.
// TODO: replace with an explicit history stack if multi-level back is ever
// needed.
var predecessors = map[Page]Page{
	PageCheckout: PageCart,
}

// Selector is the page-level state machine. Home is both the initial state
// and the state every terminal page returns to.
type Selector struct {
	mu      sync.Mutex
	current Page
	logger  zerolog.Logger
}

// NewSelector creates a selector showing the home page.
func NewSelector(logger zerolog.Logger) *Selector {
	return &Selector{
		current: PageHome,
		logger:  logger.With().Str("component", "view").Logger(),
	}
}

// Current returns the active page.
func (s *Selector) Current() Page {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.current
}

// Show navigates to the target page, clearing whatever was active. The order
// confirmation page is only reachable through the checkout confirm action,
// so navigating to it from anywhere else is rejected.
func (s *Selector) Show(target Page) error {
	if !target.IsValid() {
		return model.ErrInvalidTransition
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if target == PageOrderConfirmation && s.current != PageCheckout {
		s.logger.Warn().
			Str("from", string(s.current)).
			Str("to", string(target)).
			Msg("rejected navigation")
		return model.ErrInvalidTransition
	}

	s.logger.Debug().
		Str("from", string(s.current)).
		Str("to", string(target)).
		Msg("navigating")
	s.current = target
	return nil
}

// Back returns to the active page's fixed predecessor.
func (s *Selector) Back() Page {
	s.mu.Lock()
	defer s.mu.Unlock()

	prev, ok := predecessors[s.current]
	if !ok {
		prev = PageHome
	}

	s.logger.Debug().
		Str("from", string(s.current)).
		Str("to", string(prev)).
		Msg("navigating back")
	s.current = prev
	return prev
}

// Reset returns the selector to the home page unconditionally.
func (s *Selector) Reset() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.current = PageHome
}
