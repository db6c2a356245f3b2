package main

import (
	"fmt"
	"log"
	"os"

	"github.com/marktfox/backend/config"
	httpDelivery "github.com/marktfox/backend/internal/delivery/http"
	"github.com/marktfox/backend/internal/infrastructure/catalog"
	"github.com/marktfox/backend/internal/usecase"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	log.Printf("Starting Marktfox Backend v1.0.0")
	log.Printf("Environment: %s", cfg.Server.Environment)
	log.Printf("Port: %s", cfg.Server.Port)
	log.Printf("Catalog: %s (%s)", cfg.Catalog.Path, cfg.Catalog.Driver)

	// Initialize infrastructure dependencies
	store, err := catalog.NewSQLiteStore(cfg.Catalog.Path)
	if err != nil {
		log.Fatalf("Failed to open catalog: %v", err)
	}
	defer store.Close()

	// Initialize usecase layer
	optimizerService := usecase.NewOptimizerService(store)
	catalogService := usecase.NewCatalogService(store)

	log.Printf("Rate limit: %d req/s per IP (burst %d)", cfg.RateLimit.PerIP, cfg.RateLimit.Burst)

	// Create HTTP handler with dependencies
	handler := httpDelivery.NewHandler(optimizerService, catalogService)

	// Setup router
	router := httpDelivery.SetupRouter(cfg, handler)

	// Start server
	addr := fmt.Sprintf(":%s", cfg.Server.Port)
	log.Printf("Server listening on %s", addr)

	if err := router.Run(addr); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}

func init() {
	// Set log flags for better debugging
	log.SetFlags(log.Ldate | log.Ltime | log.Lshortfile)
	log.SetOutput(os.Stdout)
}
