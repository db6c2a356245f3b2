package catalog

import (
	"encoding/json"
	"fmt"
	"io"
	"strconv"
	"time"

	"github.com/marktfox/backend/internal/domain"
)

// datasetRecord is one raw offer from a JSON dataset file. Field names vary
// between dataset exports (store_name|store|storeName etc.), and quantity
// and price may arrive as numbers or strings.
type datasetRecord struct {
	StoreName     string     `json:"store_name"`
	Store         string     `json:"store"`
	StoreAlias    string     `json:"storeName"`
	ProductName   string     `json:"product_name"`
	Product       string     `json:"product"`
	ProductAlias  string     `json:"productName"`
	Quantity      flexNumber `json:"quantity"`
	Unit          string     `json:"unit"`
	Price         flexNumber `json:"price"`
	ValidFrom     string     `json:"valid_from"`
	ValidFromAlt  string     `json:"validFrom"`
	ValidUntil    string     `json:"valid_until"`
	ValidUntilAlt string     `json:"validUntil"`
	Image         string     `json:"image"`
}

// DecodeDataset reads a JSON array of offer records and converts it into
// domain offers. Records missing a store name, product name or valid_until
// date are rejected with the record index in the error.
func DecodeDataset(r io.Reader) ([]domain.Offer, error) {
	dec := json.NewDecoder(r)

	var records []datasetRecord
	if err := dec.Decode(&records); err != nil {
		return nil, fmt.Errorf("failed to decode dataset: %w", err)
	}

	offers := make([]domain.Offer, 0, len(records))
	for i, rec := range records {
		offer, err := rec.toOffer()
		if err != nil {
			return nil, fmt.Errorf("record %d: %w", i, err)
		}
		offers = append(offers, offer)
	}
	return offers, nil
}

func (r datasetRecord) toOffer() (domain.Offer, error) {
	store := firstNonEmpty(r.StoreName, r.Store, r.StoreAlias)
	if store == "" {
		return domain.Offer{}, fmt.Errorf("missing store name")
	}

	product := firstNonEmpty(r.ProductName, r.Product, r.ProductAlias)
	if product == "" {
		return domain.Offer{}, fmt.Errorf("missing product name")
	}

	quantity, err := parseNumber(r.Quantity)
	if err != nil {
		return domain.Offer{}, fmt.Errorf("invalid quantity: %w", err)
	}

	price, err := parseNumber(r.Price)
	if err != nil {
		return domain.Offer{}, fmt.Errorf("invalid price: %w", err)
	}

	validUntil, err := parseDate(firstNonEmpty(r.ValidUntil, r.ValidUntilAlt))
	if err != nil {
		return domain.Offer{}, fmt.Errorf("invalid valid_until: %w", err)
	}

	// valid_from defaults to valid_until when absent; the optimizer only
	// filters on the upper bound.
	validFrom := validUntil
	if s := firstNonEmpty(r.ValidFrom, r.ValidFromAlt); s != "" {
		if validFrom, err = parseDate(s); err != nil {
			return domain.Offer{}, fmt.Errorf("invalid valid_from: %w", err)
		}
	}

	return domain.Offer{
		StoreName:   store,
		ProductName: product,
		Quantity:    quantity,
		Unit:        r.Unit,
		Price:       price,
		ValidFrom:   validFrom,
		ValidUntil:  validUntil,
		Image:       r.Image,
	}, nil
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}

// flexNumber accepts both JSON numbers and numeric strings.
type flexNumber string

func (n *flexNumber) UnmarshalJSON(data []byte) error {
	var s string
	if len(data) > 0 && data[0] == '"' {
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
	} else {
		var num json.Number
		if err := json.Unmarshal(data, &num); err != nil {
			return err
		}
		s = num.String()
	}
	*n = flexNumber(s)
	return nil
}

func parseNumber(n flexNumber) (float64, error) {
	if n == "" {
		return 0, fmt.Errorf("missing value")
	}
	return strconv.ParseFloat(string(n), 64)
}

func parseDate(s string) (time.Time, error) {
	if s == "" {
		return time.Time{}, fmt.Errorf("missing date")
	}
	return time.Parse(dateLayout, s)
}
