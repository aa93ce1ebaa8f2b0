package model

// ErrorResponse represents a standardised error response.
type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message,omitempty"`
}

// Standard error codes for API responses
const (
	ErrCodeInvalidJSON         = "INVALID_JSON"
	ErrCodeMissingField        = "MISSING_FIELD"
	ErrCodeInvalidEmail        = "INVALID_EMAIL"
	ErrCodeProductNotFound     = "PRODUCT_NOT_FOUND"
	ErrCodeOutOfStock          = "OUT_OF_STOCK"
	ErrCodeInvalidQuantity     = "INVALID_QUANTITY"
	ErrCodeEmptyCart           = "EMPTY_CART"
	ErrCodeInvalidCoupon       = "INVALID_COUPON"
	ErrCodeInvalidCouponLength = "INVALID_COUPON_LENGTH"
	ErrCodeInvalidPayment      = "INVALID_PAYMENT_METHOD"
	ErrCodeOrderNotFound       = "ORDER_NOT_FOUND"
	ErrCodeAddressNotFound     = "ADDRESS_NOT_FOUND"
	ErrCodeInvalidTransition   = "INVALID_TRANSITION"
	ErrCodeUnauthorised        = "UNAUTHORIZED"
	ErrCodeInternalError       = "INTERNAL_ERROR"
)

// Domain errors for business logic
type DomainError struct {
	Code    string
	Message string
}

func (e *DomainError) Error() string {
	return e.Message
}

// NewDomainError creates a new domain error
func NewDomainError(code, message string) *DomainError {
	return &DomainError{
		Code:    code,
		Message: message,
	}
}

// Common domain errors
var (
	ErrProductNotFound     = NewDomainError(ErrCodeProductNotFound, "Product not found")
	ErrOutOfStock          = NewDomainError(ErrCodeOutOfStock, "Product is out of stock")
	ErrInvalidQuantity     = NewDomainError(ErrCodeInvalidQuantity, "Quantity must be greater than zero")
	ErrEmptyCart           = NewDomainError(ErrCodeEmptyCart, "Cart is empty")
	ErrMissingField        = NewDomainError(ErrCodeMissingField, "First name, last name and street address are required")
	ErrInvalidEmail        = NewDomainError(ErrCodeInvalidEmail, "Email address is malformed")
	ErrInvalidCoupon       = NewDomainError(ErrCodeInvalidCoupon, "Coupon code is not recognised")
	ErrInvalidCouponLength = NewDomainError(ErrCodeInvalidCouponLength, "Coupon code must be between 8 and 10 characters")
	ErrInvalidPayment      = NewDomainError(ErrCodeInvalidPayment, "Unknown payment method")
	ErrOrderNotFound       = NewDomainError(ErrCodeOrderNotFound, "Order not found")
	ErrAddressNotFound     = NewDomainError(ErrCodeAddressNotFound, "Saved address not found")
	ErrInvalidTransition   = NewDomainError(ErrCodeInvalidTransition, "Page is not reachable from the current page")
)
