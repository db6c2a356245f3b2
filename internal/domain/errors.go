package domain

import (
	"errors"
	"fmt"
)

var (
	// ErrEmptyRequest is returned when the grocery list has no items.
	ErrEmptyRequest = errors.New("grocery list must contain at least one item")

	// ErrNoOffers is returned when the catalog has no eligible offer for
	// any requested product.
	ErrNoOffers = errors.New("no offers found for any requested products")

	// ErrNoCompleteStore is returned in single-store mode when no store
	// carries every requested product.
	ErrNoCompleteStore = errors.New("no single store has all requested products")

	// ErrInvalidMode is returned when the mode selector is not
	// single_store or multi_store.
	ErrInvalidMode = errors.New("mode must be single_store or multi_store")

	// ErrNoSearchResults is returned when a product search matches nothing.
	ErrNoSearchResults = errors.New("no products found matching the query")
)

// MissingProductError is returned in multi-store mode when a specific
// requested product has no eligible offer anywhere. Match with errors.As.
type MissingProductError struct {
	Product string
}

func (e *MissingProductError) Error() string {
	return fmt.Sprintf("no offers found for product %q", e.Product)
}
