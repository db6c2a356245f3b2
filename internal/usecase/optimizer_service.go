package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/marktfox/backend/internal/domain"
)

// OptimizerService orchestrates one optimize call: fetch the eligible offers
// for the requested product names, index them, and run the allocation
// engine. The catalog gateway is an injected capability; the service holds
// no catalog state of its own.
type OptimizerService struct {
	catalog domain.CatalogGateway
	engine  *AllocationEngine
}

// NewOptimizerService creates an optimizer service backed by the given
// catalog gateway.
func NewOptimizerService(catalog domain.CatalogGateway) *OptimizerService {
	return &OptimizerService{
		catalog: catalog,
		engine:  NewAllocationEngine(),
	}
}

// Optimize produces a purchase plan for the grocery list as of the given
// reference date. Failure modes: ErrEmptyRequest, ErrNoOffers,
// ErrNoCompleteStore (single_store) and MissingProductError (multi_store).
func (s *OptimizerService) Optimize(
	ctx context.Context,
	mode domain.OptimizeMode,
	items []domain.RequestedItem,
	asOf time.Time,
) (*domain.AllocationResult, error) {
	if len(items) == 0 {
		return nil, domain.ErrEmptyRequest
	}

	names := make([]string, 0, len(items))
	seen := make(map[string]bool, len(items))
	for _, item := range items {
		if !seen[item.Name] {
			seen[item.Name] = true
			names = append(names, item.Name)
		}
	}

	offers, err := s.catalog.FetchEligibleOffers(ctx, names, asOf)
	if err != nil {
		return nil, fmt.Errorf("fetching offers: %w", err)
	}
	if len(offers) == 0 {
		return nil, domain.ErrNoOffers
	}

	idx := BuildOfferIndex(offers)
	return s.engine.Allocate(mode, items, idx)
}
