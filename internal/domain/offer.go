package domain

import "time"

// OptimizeMode selects the allocation strategy for a grocery list.
type OptimizeMode string

const (
	// ModeSingleStore picks the one store that can supply every requested
	// product at the lowest combined cost.
	ModeSingleStore OptimizeMode = "single_store"

	// ModeMultiStore picks the globally cheapest offer per product,
	// allowing different products to come from different stores.
	ModeMultiStore OptimizeMode = "multi_store"
)

// ParseOptimizeMode validates a mode token. An empty token defaults to
// single_store.
func ParseOptimizeMode(s string) (OptimizeMode, error) {
	switch OptimizeMode(s) {
	case "":
		return ModeSingleStore, nil
	case ModeSingleStore:
		return ModeSingleStore, nil
	case ModeMultiStore:
		return ModeMultiStore, nil
	default:
		return "", ErrInvalidMode
	}
}

// RequestedItem is one line of a shopper's grocery list.
type RequestedItem struct {
	Name     string  `json:"name" binding:"required"`
	Quantity float64 `json:"quantity" binding:"required,gt=0"`
	Unit     string  `json:"unit" binding:"required"`
}

// Offer is a store's priced package of a product, valid over a date range.
// Offers are owned by the catalog and read-only to the allocation core.
type Offer struct {
	ID          int64     `json:"offer_id"`
	StoreName   string    `json:"store_name"`
	ProductName string    `json:"product_name"`
	Quantity    float64   `json:"quantity"` // package size, e.g. 2000 (g)
	Unit        string    `json:"unit"`
	Price       float64   `json:"price"`
	ValidFrom   time.Time `json:"valid_from"`
	ValidUntil  time.Time `json:"valid_until"`
	Image       string    `json:"image,omitempty"`
}

// Allocation assigns one requested product to an offer, with the number of
// whole packages needed to cover the requested quantity.
//
// PackageQuantity/PackageUnit normally report the offer's package size. When
// the requested and offer units are genuinely incompatible, they report the
// requested quantity/unit verbatim and RequiredPackages is 1 (the lossy
// price-per-requested-unit fallback).
type Allocation struct {
	ProductName      string  `json:"product_name"`
	StoreName        string  `json:"store_name"`
	OfferID          int64   `json:"offer_id"`
	OfferPrice       float64 `json:"price"`
	UnitPrice        float64 `json:"unit_price"`
	PackageQuantity  float64 `json:"quantity"`
	PackageUnit      string  `json:"unit"`
	RequiredPackages int     `json:"required_packages"`
	LineCost         float64 `json:"line_cost"`
	Image            string  `json:"image,omitempty"`
}

// AllocationResult is the complete purchase plan for one optimize call.
// Stores lists distinct store names in first-use order; Items follows the
// order of the requested list.
type AllocationResult struct {
	Mode       OptimizeMode `json:"mode"`
	TotalPrice float64      `json:"total_price"`
	Stores     []string     `json:"stores"`
	Items      []Allocation `json:"items"`
}
