package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/marktfox/backend/internal/domain"
)

// fakeRepo is an in-memory CatalogRepository for service tests.
type fakeRepo struct {
	offers []domain.Offer
}

func (f *fakeRepo) FetchEligibleOffers(ctx context.Context, productNames []string, asOf time.Time) ([]domain.Offer, error) {
	return f.offers, nil
}

func (f *fakeRepo) ListOffers(ctx context.Context) ([]domain.Offer, error) {
	return f.offers, nil
}

func (f *fakeRepo) SearchOffers(ctx context.Context, term, store string) ([]domain.Offer, error) {
	var matched []domain.Offer
	for _, o := range f.offers {
		if store != "" && o.StoreName != store {
			continue
		}
		matched = append(matched, o)
	}
	return matched, nil
}

func (f *fakeRepo) InsertOffers(ctx context.Context, offers []domain.Offer) (int, error) {
	f.offers = append(f.offers, offers...)
	return len(offers), nil
}

func (f *fakeRepo) DeleteAllOffers(ctx context.Context) error {
	f.offers = nil
	return nil
}

func TestSearchProducts(t *testing.T) {
	ctx := context.Background()

	t.Run("rejects blank search term", func(t *testing.T) {
		svc := NewCatalogService(&fakeRepo{})
		_, err := svc.SearchProducts(ctx, "   ", "")
		if !errors.Is(err, domain.ErrNoSearchResults) {
			t.Errorf("error = %v, want ErrNoSearchResults", err)
		}
	})

	t.Run("returns ErrNoSearchResults when nothing matches", func(t *testing.T) {
		svc := NewCatalogService(&fakeRepo{})
		_, err := svc.SearchProducts(ctx, "milk", "")
		if !errors.Is(err, domain.ErrNoSearchResults) {
			t.Errorf("error = %v, want ErrNoSearchResults", err)
		}
	})

	t.Run("returns matching offers", func(t *testing.T) {
		repo := &fakeRepo{offers: []domain.Offer{
			offer(1, "ALDI", "Milk", 1, "l", 2.0),
		}}
		svc := NewCatalogService(repo)

		offers, err := svc.SearchProducts(ctx, "milk", "")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(offers) != 1 || offers[0].ProductName != "Milk" {
			t.Errorf("offers = %v, want the Milk offer", offers)
		}
	})
}
