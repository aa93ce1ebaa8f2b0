package view

import (
	"testing"

	"freshmart/internal/model"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSelector_InitialStateIsHome(t *testing.T) {
	s := NewSelector(zerolog.Nop())
	assert.Equal(t, PageHome, s.Current())
}

func TestSelector_ExactlyOneActivePage(t *testing.T) {
	s := NewSelector(zerolog.Nop())

	// Any show-X action from any page leaves exactly the target active;
	// there is no way to observe zero or multiple active pages because the
	// state is a single value.
	pages := []Page{
		PageCategory, PageSearch, PageProduct, PageCart,
		PageWishlist, PageAccount, PageTrackOrder, PageHome,
	}
	for _, p := range pages {
		require.NoError(t, s.Show(p))
		assert.Equal(t, p, s.Current())
	}
}

func TestSelector_OrderConfirmationOnlyFromCheckout(t *testing.T) {
	tests := []struct {
		name    string
		from    Page
		wantErr bool
	}{
		{name: "from checkout", from: PageCheckout, wantErr: false},
		{name: "from home", from: PageHome, wantErr: true},
		{name: "from cart", from: PageCart, wantErr: true},
		{name: "from track order", from: PageTrackOrder, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := NewSelector(zerolog.Nop())
			if tt.from == PageCheckout {
				require.NoError(t, s.Show(PageCart))
			}
			require.NoError(t, s.Show(tt.from))

			err := s.Show(PageOrderConfirmation)
			if tt.wantErr {
				require.ErrorIs(t, err, model.ErrInvalidTransition)
				// Rejected navigation leaves the current page untouched.
				assert.Equal(t, tt.from, s.Current())
			} else {
				require.NoError(t, err)
				assert.Equal(t, PageOrderConfirmation, s.Current())
			}
		})
	}
}

func TestSelector_Show_UnknownPage(t *testing.T) {
	s := NewSelector(zerolog.Nop())
	err := s.Show(Page("settings"))
	require.ErrorIs(t, err, model.ErrInvalidTransition)
	assert.Equal(t, PageHome, s.Current())
}

func TestSelector_Back(t *testing.T) {
	tests := []struct {
		name string
		from Page
		want Page
	}{
		{name: "checkout returns to cart", from: PageCheckout, want: PageCart},
		{name: "cart returns home", from: PageCart, want: PageHome},
		{name: "wishlist returns home", from: PageWishlist, want: PageHome},
		{name: "track order returns home", from: PageTrackOrder, want: PageHome},
		{name: "home stays home", from: PageHome, want: PageHome},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := NewSelector(zerolog.Nop())
			require.NoError(t, s.Show(tt.from))

			got := s.Back()
			assert.Equal(t, tt.want, got)
			assert.Equal(t, tt.want, s.Current())
		})
	}
}

func TestSelector_BackFromOrderConfirmation(t *testing.T) {
	s := NewSelector(zerolog.Nop())
	require.NoError(t, s.Show(PageCheckout))
	require.NoError(t, s.Show(PageOrderConfirmation))

	// Order confirmation is a terminal page; back means back to home.
	assert.Equal(t, PageHome, s.Back())
}

func TestSelector_Reset(t *testing.T) {
	s := NewSelector(zerolog.Nop())
	require.NoError(t, s.Show(PageWishlist))

	s.Reset()
	assert.Equal(t, PageHome, s.Current())
}
