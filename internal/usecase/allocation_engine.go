package usecase

import (
	"math"
	"strings"

	"github.com/marktfox/backend/internal/domain"
)

// AllocationEngine turns a requested grocery list plus a built OfferIndex
// into a purchase plan. It is a pure computation: no shared state, safe for
// concurrent use, always one pass over the inputs.
//
// Duplicate requested names are allowed; name-keyed lookups are last-write
// wins, while result items still follow the request order.
type AllocationEngine struct{}

// NewAllocationEngine creates an allocation engine.
func NewAllocationEngine() *AllocationEngine {
	return &AllocationEngine{}
}

// Allocate produces a purchase plan for the requested items.
//
// single_store: only stores carrying every requested product qualify; the
// store with the strictly lowest quantized total wins, earlier-seen store on
// ties. Fails with ErrNoCompleteStore when no store qualifies.
//
// multi_store: each item takes the globally cheapest offer for its product,
// failing fast with MissingProductError on the first item that has no offer.
func (e *AllocationEngine) Allocate(
	mode domain.OptimizeMode,
	items []domain.RequestedItem,
	idx *OfferIndex,
) (*domain.AllocationResult, error) {
	if mode == domain.ModeMultiStore {
		return e.allocateMultiStore(items, idx)
	}
	return e.allocateSingleStore(items, idx)
}

func (e *AllocationEngine) allocateSingleStore(
	items []domain.RequestedItem,
	idx *OfferIndex,
) (*domain.AllocationResult, error) {
	var (
		bestStore string
		bestTotal float64
		bestItems []domain.Allocation
		found     bool
	)

	for _, store := range idx.Stores() {
		allocations, total, ok := e.planStore(store, items, idx)
		if !ok {
			continue
		}
		if !found || total < bestTotal {
			found = true
			bestStore = store
			bestTotal = total
			bestItems = allocations
		}
	}

	if !found {
		return nil, domain.ErrNoCompleteStore
	}

	return &domain.AllocationResult{
		Mode:       domain.ModeSingleStore,
		TotalPrice: bestTotal,
		Stores:     []string{bestStore},
		Items:      bestItems,
	}, nil
}

// planStore prices the whole list against one store. ok is false when the
// store is missing any requested product: a store is only a candidate if it
// is a complete basket.
func (e *AllocationEngine) planStore(
	store string,
	items []domain.RequestedItem,
	idx *OfferIndex,
) ([]domain.Allocation, float64, bool) {
	allocations := make([]domain.Allocation, 0, len(items))
	total := 0.0

	for _, item := range items {
		offer, ok := idx.StoreOffer(store, item.Name)
		if !ok {
			return nil, 0, false
		}
		alloc := e.matchQuantity(item, offer)
		total += alloc.LineCost
		allocations = append(allocations, alloc)
	}

	return allocations, total, true
}

func (e *AllocationEngine) allocateMultiStore(
	items []domain.RequestedItem,
	idx *OfferIndex,
) (*domain.AllocationResult, error) {
	var (
		allocations = make([]domain.Allocation, 0, len(items))
		stores      []string
		seenStores  = make(map[string]bool)
		total       float64
	)

	for _, item := range items {
		offer, ok := idx.GlobalCheapest(item.Name)
		if !ok {
			return nil, &domain.MissingProductError{Product: item.Name}
		}

		alloc := e.matchQuantity(item, offer)
		total += alloc.LineCost
		allocations = append(allocations, alloc)

		if !seenStores[offer.StoreName] {
			seenStores[offer.StoreName] = true
			stores = append(stores, offer.StoreName)
		}
	}

	return &domain.AllocationResult{
		Mode:       domain.ModeMultiStore,
		TotalPrice: total,
		Stores:     stores,
		Items:      allocations,
	}, nil
}

// matchQuantity quantizes one requested quantity against one offer:
//
//  1. Same base unit and positive package size: whole packages via ceiling
//     division in base units, cost = price * packages.
//  2. Otherwise, identical raw unit spellings (lower-cased, trimmed) and a
//     positive package size: ceiling division on the raw quantities.
//  3. Otherwise the units are genuinely incompatible and the requested
//     quantity is treated as already expressed in whatever unit the price
//     is per: one package, cost = price * requested quantity, reporting
//     the requested quantity/unit instead of the package size.
func (e *AllocationEngine) matchQuantity(item domain.RequestedItem, offer *domain.Offer) domain.Allocation {
	alloc := domain.Allocation{
		ProductName: item.Name,
		StoreName:   offer.StoreName,
		OfferID:     offer.ID,
		OfferPrice:  offer.Price,
		UnitPrice:   UnitPrice(offer),
		Image:       offer.Image,
	}

	reqBaseQty, reqBaseUnit := ToBaseQuantity(item.Quantity, item.Unit)
	offBaseQty, offBaseUnit := ToBaseQuantity(offer.Quantity, offer.Unit)

	switch {
	case reqBaseUnit == offBaseUnit && offBaseQty > 0:
		packages := int(math.Ceil(reqBaseQty / offBaseQty))
		alloc.PackageQuantity = offer.Quantity
		alloc.PackageUnit = offer.Unit
		alloc.RequiredPackages = packages
		alloc.LineCost = offer.Price * float64(packages)

	case rawUnitsEqual(item.Unit, offer.Unit) && offer.Quantity > 0:
		packages := int(math.Ceil(item.Quantity / offer.Quantity))
		alloc.PackageQuantity = offer.Quantity
		alloc.PackageUnit = offer.Unit
		alloc.RequiredPackages = packages
		alloc.LineCost = offer.Price * float64(packages)

	default:
		alloc.PackageQuantity = item.Quantity
		alloc.PackageUnit = item.Unit
		alloc.RequiredPackages = 1
		alloc.LineCost = offer.Price * item.Quantity
	}

	return alloc
}

func rawUnitsEqual(a, b string) bool {
	return strings.ToLower(strings.TrimSpace(a)) == strings.ToLower(strings.TrimSpace(b))
}
