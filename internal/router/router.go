package router

import (
	"net/http"
	"strings"

	"freshmart/internal/handler"
	"freshmart/internal/middleware"

	"github.com/rs/zerolog"
)

// Handlers groups the handler set the router wires up.
type Handlers struct {
	Product  *handler.ProductHandler
	Cart     *handler.CartHandler
	View     *handler.ViewHandler
	Address  *handler.AddressHandler
	Checkout *handler.CheckoutHandler
	Wishlist *handler.WishlistHandler
}

// New creates a new HTTP router with all routes and middleware configured.
func New(h Handlers, apiKey string, logger zerolog.Logger) http.Handler {
	mux := http.NewServeMux()

	// Health check endpoint (no authentication required)
	mux.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		w.Write([]byte(`{"status": "healthy"}`))
	})

	// Product handler function
	productRouteHandler := func(w http.ResponseWriter, r *http.Request) {
		// Check if this is a request for a specific product ID
		if r.URL.Path != "/api/products" && r.URL.Path != "/api/products/" {
			h.Product.GetByID(w, r)
			return
		}
		h.Product.GetAll(w, r)
	}

	// Register product routes (both with and without trailing slash)
	mux.HandleFunc("/api/products", productRouteHandler)
	mux.HandleFunc("/api/products/", productRouteHandler)

	mux.HandleFunc("/api/categories", h.Product.Categories)
	mux.HandleFunc("/api/categories/", h.Product.Categories)

	// Cart routes: the collection holds the snapshot, items take mutations.
	mux.HandleFunc("/api/cart", h.Cart.Get)
	mux.HandleFunc("/api/cart/", h.Cart.Get)

	cartItemsRouteHandler := func(w http.ResponseWriter, r *http.Request) {
		if r.Method == http.MethodPost && (r.URL.Path == "/api/cart/items" || r.URL.Path == "/api/cart/items/") {
			h.Cart.AddItem(w, r)
			return
		}

		if strings.HasPrefix(r.URL.Path, "/api/cart/items/") && r.URL.Path != "/api/cart/items/" {
			switch r.Method {
			case http.MethodPut:
				h.Cart.UpdateItem(w, r)
			case http.MethodDelete:
				h.Cart.RemoveItem(w, r)
			default:
				http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
			}
			return
		}

		http.Error(w, "not found", http.StatusNotFound)
	}

	mux.HandleFunc("/api/cart/items", cartItemsRouteHandler)
	mux.HandleFunc("/api/cart/items/", cartItemsRouteHandler)

	// View routes
	mux.HandleFunc("/api/view", h.View.Get)
	mux.HandleFunc("/api/view/navigate", h.View.Navigate)
	mux.HandleFunc("/api/view/back", h.View.Back)

	// Address routes
	addressRouteHandler := func(w http.ResponseWriter, r *http.Request) {
		switch r.Method {
		case http.MethodGet:
			h.Address.List(w, r)
		case http.MethodPost:
			h.Address.Create(w, r)
		default:
			http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		}
	}
	mux.HandleFunc("/api/addresses", addressRouteHandler)
	mux.HandleFunc("/api/addresses/", addressRouteHandler)

	// Checkout and order-tracking routes
	mux.HandleFunc("/api/checkout/confirm", h.Checkout.Confirm)

	orderRouteHandler := func(w http.ResponseWriter, r *http.Request) {
		if strings.HasPrefix(r.URL.Path, "/api/orders/") && r.URL.Path != "/api/orders/" {
			h.Checkout.GetByNumber(w, r)
			return
		}
		http.Error(w, "not found", http.StatusNotFound)
	}
	mux.HandleFunc("/api/orders", orderRouteHandler)
	mux.HandleFunc("/api/orders/", orderRouteHandler)

	// Wishlist routes
	wishlistRouteHandler := func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "/api/wishlist" || r.URL.Path == "/api/wishlist/" {
			h.Wishlist.List(w, r)
			return
		}

		switch r.Method {
		case http.MethodPost:
			h.Wishlist.Add(w, r)
		case http.MethodDelete:
			h.Wishlist.Remove(w, r)
		default:
			http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		}
	}
	mux.HandleFunc("/api/wishlist", wishlistRouteHandler)
	mux.HandleFunc("/api/wishlist/", wishlistRouteHandler)

	// Apply middleware in order: Recovery -> Logging -> CORS -> APIKeyAuth
	var root http.Handler = mux
	root = middleware.APIKeyAuth(apiKey, logger)(root)
	root = middleware.CORS(root)
	root = middleware.Logging(logger)(root)
	root = middleware.Recovery(logger)(root)

	return root
}
