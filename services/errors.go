package services

import "errors"

// Validation errors are detected before any write; callers map them to 4xx.
// Storage failures pass through untouched and map to 5xx.
var (
	ErrItemUnavailable        = errors.New("menu item, variant or addon not available")
	ErrOutOfDeliveryRange     = errors.New("destination outside delivery range")
	ErrBelowMinimumOrder      = errors.New("subtotal below delivery minimum")
	ErrInvalidTransition      = errors.New("invalid status transition")
	ErrOrderNotFound          = errors.New("order not found")
	ErrNotCancellable         = errors.New("order can no longer be cancelled")
	ErrInvalidQueueMembership = errors.New("reorder contains an order not in the active queue")
	ErrInvalidCoordinate      = errors.New("invalid delivery coordinate")
	ErrDeliveryAddressMissing = errors.New("delivery address is required")
)
