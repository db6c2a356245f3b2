package domain

import (
	"context"
	"time"
)

// CatalogGateway supplies the eligible offer set for an optimize call.
// Implementations must return only offers with valid_until >= asOf whose
// product name is in productNames. The returned order is an input to the
// allocation core: cheapest-offer ties break toward the earlier offer, so
// gateways should return a stable order (e.g. by offer ID).
type CatalogGateway interface {
	FetchEligibleOffers(ctx context.Context, productNames []string, asOf time.Time) ([]Offer, error)
}

// CatalogRepository is the full catalog persistence interface. The allocation
// core only depends on the embedded CatalogGateway; the remaining methods
// serve the product endpoints and the dataset loader.
type CatalogRepository interface {
	CatalogGateway

	// ListOffers returns the whole catalog ordered by offer ID.
	ListOffers(ctx context.Context) ([]Offer, error)

	// SearchOffers returns offers whose product name contains the given
	// term (case-insensitive), optionally filtered by store name.
	SearchOffers(ctx context.Context, term, store string) ([]Offer, error)

	// InsertOffers appends offers to the catalog and returns the number
	// of rows written.
	InsertOffers(ctx context.Context, offers []Offer) (int, error)

	// DeleteAllOffers removes every offer. Used by the loader's reset flag.
	DeleteAllOffers(ctx context.Context) error
}
