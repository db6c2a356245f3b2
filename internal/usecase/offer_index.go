package usecase

import (
	"math"

	"github.com/marktfox/backend/internal/domain"
)

// UnitPrice returns the price per one base unit of the offer's package,
// used for cheapest-offer comparisons. Offers whose package size does not
// convert to a positive base quantity get +Inf so they never win a
// comparison but also never abort the computation.
func UnitPrice(offer *domain.Offer) float64 {
	baseQty, _ := ToBaseQuantity(offer.Quantity, offer.Unit)
	if baseQty > 0 {
		return offer.Price / baseQty
	}
	if offer.Quantity > 0 {
		return offer.Price / offer.Quantity
	}
	return math.Inf(1)
}

// OfferIndex holds the two cheapest-offer maps derived from one fetched
// offer set. Indexes are built fresh per optimize call and discarded with
// the response; offers are never mutated.
type OfferIndex struct {
	byStore    map[string]map[string]*domain.Offer
	storeOrder []string
	global     map[string]*domain.Offer
}

// BuildOfferIndex makes a single pass over the offers and keeps, per
// (store, product) and per product globally, the offer with the lowest unit
// price. Ties break toward the offer seen first, so the result is
// deterministic for a fixed input order. Store iteration order is recorded
// explicitly because the tie-break in store selection depends on it.
func BuildOfferIndex(offers []domain.Offer) *OfferIndex {
	idx := &OfferIndex{
		byStore: make(map[string]map[string]*domain.Offer),
		global:  make(map[string]*domain.Offer),
	}

	for i := range offers {
		offer := &offers[i]

		storeEntry, ok := idx.byStore[offer.StoreName]
		if !ok {
			storeEntry = make(map[string]*domain.Offer)
			idx.byStore[offer.StoreName] = storeEntry
			idx.storeOrder = append(idx.storeOrder, offer.StoreName)
		}

		if existing, ok := storeEntry[offer.ProductName]; !ok || UnitPrice(offer) < UnitPrice(existing) {
			storeEntry[offer.ProductName] = offer
		}

		if existing, ok := idx.global[offer.ProductName]; !ok || UnitPrice(offer) < UnitPrice(existing) {
			idx.global[offer.ProductName] = offer
		}
	}

	return idx
}

// Stores returns store names in the order they first appeared in the
// fetched offer sequence.
func (idx *OfferIndex) Stores() []string {
	return idx.storeOrder
}

// StoreOffer returns the cheapest offer for a product within one store.
func (idx *OfferIndex) StoreOffer(store, product string) (*domain.Offer, bool) {
	offer, ok := idx.byStore[store][product]
	return offer, ok
}

// GlobalCheapest returns the cheapest offer for a product across all stores.
func (idx *OfferIndex) GlobalCheapest(product string) (*domain.Offer, bool) {
	offer, ok := idx.global[product]
	return offer, ok
}
