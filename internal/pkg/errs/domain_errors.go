package errs

import "errors"

// Domain-specific sentinel errors for CQRS usecase layers
var (
	// Catalog errors
	ErrBookNotFound     = errors.New("book not found")
	ErrCategoryNotFound = errors.New("category not found")
	ErrCommentNotFound  = errors.New("comment not found")

	// Cart errors
	ErrCartNotFound     = errors.New("cart not found")
	ErrCartItemNotFound = errors.New("cart item not found")
	ErrEmptyCart        = errors.New("cart is empty")

	// Customer errors
	ErrCustomerNotFound       = errors.New("customer not found")
	ErrCustomerProfileMissing = errors.New("customer profile missing")

	// Order errors
	ErrOrderNotFound           = errors.New("order not found")
	ErrInvalidStatusTransition = errors.New("invalid order status transition")

	// Access errors
	ErrUnauthenticated = errors.New("authentication required")
	ErrForbidden       = errors.New("permission denied")

	// Validation errors
	ErrDomainValidation = errors.New("domain validation error")
	ErrInvalidCursor    = errors.New("invalid cursor")
	ErrConstraintFailed = errors.New("stored value rejected by constraint")

	// Operation errors
	ErrConflict                = errors.New("conflicting state")
	ErrDatabaseOperationFailed = errors.New("database operation failed")
)
