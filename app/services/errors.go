package services

import "errors"

var (
	// ErrInvalidProduct means the catalog has no product for the requested id.
	ErrInvalidProduct = errors.New("invalid product id")

	// ErrCartNotFound means the referenced cart id does not exist.
	ErrCartNotFound = errors.New("cart not found")

	// ErrCartItemNotFound means the referenced cart item id does not exist.
	ErrCartItemNotFound = errors.New("cart item not found")

	// ErrCatalogUnavailable means the product catalog could not be reached or
	// answered with a server error. It is surfaced, never silently defaulted.
	ErrCatalogUnavailable = errors.New("product catalog unavailable")
)
