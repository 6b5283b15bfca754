package retailer

import "errors"

var (
	// ErrStoreNotFound is returned when a cart references an unknown store.
	ErrStoreNotFound = errors.New("store not found")
	// ErrCartNotFound is returned for operations against an unknown cart id.
	ErrCartNotFound = errors.New("cart not found")
)
