// Command loader imports a JSON dataset of store offers into the catalog
// database.
//
// Usage:
//
//	loader [-reset] path/to/offers.json
//
// The dataset is an array of objects with keys store_name, product_name,
// quantity, unit, price, valid_from, valid_until and optional image. Dates
// are YYYY-MM-DD; quantity and price may be numbers or strings. Alias key
// spellings (store/storeName, product/productName, validFrom/validUntil)
// are accepted.
package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/marktfox/backend/config"
	"github.com/marktfox/backend/internal/infrastructure/catalog"
)

func main() {
	reset := flag.Bool("reset", false, "delete all existing offers before loading")
	flag.Parse()

	if flag.NArg() != 1 {
		fmt.Fprintln(os.Stderr, "Usage: loader [-reset] path/to/offers.json")
		os.Exit(1)
	}
	path := flag.Arg(0)

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	f, err := os.Open(path)
	if err != nil {
		log.Fatalf("Failed to open dataset: %v", err)
	}
	defer f.Close()

	offers, err := catalog.DecodeDataset(f)
	if err != nil {
		log.Fatalf("Failed to decode dataset: %v", err)
	}

	store, err := catalog.NewSQLiteStore(cfg.Catalog.Path)
	if err != nil {
		log.Fatalf("Failed to open catalog: %v", err)
	}
	defer store.Close()

	ctx := context.Background()

	if *reset {
		if err := store.DeleteAllOffers(ctx); err != nil {
			log.Fatalf("Failed to reset catalog: %v", err)
		}
		log.Printf("Removed existing offers")
	}

	inserted, err := store.InsertOffers(ctx, offers)
	if err != nil {
		log.Fatalf("Failed to insert offers: %v", err)
	}

	log.Printf("Inserted %d offers into %s", inserted, cfg.Catalog.Path)
}
