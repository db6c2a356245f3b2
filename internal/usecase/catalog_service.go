package usecase

import (
	"context"
	"strings"

	"github.com/marktfox/backend/internal/domain"
)

// CatalogService serves the product listing and search endpoints on top of
// the catalog repository.
type CatalogService struct {
	repo domain.CatalogRepository
}

// NewCatalogService creates a catalog service.
func NewCatalogService(repo domain.CatalogRepository) *CatalogService {
	return &CatalogService{repo: repo}
}

// ListProducts returns the whole catalog.
func (s *CatalogService) ListProducts(ctx context.Context) ([]domain.Offer, error) {
	return s.repo.ListOffers(ctx)
}

// SearchProducts returns offers whose product name contains the term,
// optionally restricted to one store. Returns ErrNoSearchResults when the
// search matches nothing.
func (s *CatalogService) SearchProducts(ctx context.Context, term, store string) ([]domain.Offer, error) {
	term = strings.TrimSpace(term)
	if term == "" {
		return nil, domain.ErrNoSearchResults
	}

	offers, err := s.repo.SearchOffers(ctx, term, store)
	if err != nil {
		return nil, err
	}
	if len(offers) == 0 {
		return nil, domain.ErrNoSearchResults
	}
	return offers, nil
}
