package http

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/marktfox/backend/internal/domain"
	"github.com/marktfox/backend/internal/usecase"
)

// Handler holds dependencies for HTTP handlers
type Handler struct {
	optimizer *usecase.OptimizerService
	catalog   *usecase.CatalogService
}

// NewHandler creates a new HTTP handler
func NewHandler(optimizer *usecase.OptimizerService, catalog *usecase.CatalogService) *Handler {
	return &Handler{
		optimizer: optimizer,
		catalog:   catalog,
	}
}

// groceryListRequest is the body of POST /optimize.
type groceryListRequest struct {
	Items []domain.RequestedItem `json:"items" binding:"dive"`
}

// productResponse is the external representation of one offer.
type productResponse struct {
	OfferID     int64   `json:"offer_id"`
	ProductName string  `json:"product_name"`
	StoreName   string  `json:"store_name"`
	Quantity    float64 `json:"quantity"`
	Unit        string  `json:"unit"`
	Price       float64 `json:"price"`
	Image       string  `json:"image,omitempty"`
}

// optimizedItem pairs the chosen offer with its package count and line cost.
type optimizedItem struct {
	Product          productResponse `json:"product"`
	RequiredPackages int             `json:"required_packages"`
	LineCost         float64         `json:"line_cost"`
}

// optimizeResponse is the body of a successful POST /optimize.
type optimizeResponse struct {
	Mode       domain.OptimizeMode `json:"mode"`
	TotalPrice float64             `json:"total_price"`
	Stores     []string            `json:"stores"`
	Items      []optimizedItem     `json:"items"`
}

// HealthCheck returns the health status of the API
func (h *Handler) HealthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "healthy",
		"service": "marktfox-backend",
		"version": "1.0.0",
	})
}

// Optimize handles POST /optimize?mode=single_store|multi_store. The mode
// defaults to single_store. The empty-list check happens here, before the
// allocation core is invoked.
func (h *Handler) Optimize(c *gin.Context) {
	mode, err := domain.ParseOptimizeMode(c.Query("mode"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	var req groceryListRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if len(req.Items) == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": domain.ErrEmptyRequest.Error()})
		return
	}

	result, err := h.optimizer.Optimize(c.Request.Context(), mode, req.Items, time.Now())
	if err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, toOptimizeResponse(result))
}

// ListProducts handles GET /products.
func (h *Handler) ListProducts(c *gin.Context) {
	offers, err := h.catalog.ListProducts(c.Request.Context())
	if err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, toProductResponses(offers))
}

// SearchProducts handles GET /search/products?name=&store=.
func (h *Handler) SearchProducts(c *gin.Context) {
	term := c.Query("name")
	if term == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "query parameter 'name' is required"})
		return
	}

	offers, err := h.catalog.SearchProducts(c.Request.Context(), term, c.Query("store"))
	if err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, toProductResponses(offers))
}

// respondError maps domain failures to HTTP status codes. Every allocation
// failure is recoverable at this boundary; nothing is fatal to the process.
func (h *Handler) respondError(c *gin.Context, err error) {
	var missing *domain.MissingProductError

	switch {
	case errors.Is(err, domain.ErrEmptyRequest), errors.Is(err, domain.ErrInvalidMode):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	case errors.As(err, &missing),
		errors.Is(err, domain.ErrNoOffers),
		errors.Is(err, domain.ErrNoCompleteStore),
		errors.Is(err, domain.ErrNoSearchResults):
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
	}
}

func toOptimizeResponse(result *domain.AllocationResult) optimizeResponse {
	items := make([]optimizedItem, 0, len(result.Items))
	for _, alloc := range result.Items {
		items = append(items, optimizedItem{
			Product: productResponse{
				OfferID:     alloc.OfferID,
				ProductName: alloc.ProductName,
				StoreName:   alloc.StoreName,
				Quantity:    alloc.PackageQuantity,
				Unit:        alloc.PackageUnit,
				Price:       alloc.OfferPrice,
				Image:       alloc.Image,
			},
			RequiredPackages: alloc.RequiredPackages,
			LineCost:         alloc.LineCost,
		})
	}

	return optimizeResponse{
		Mode:       result.Mode,
		TotalPrice: result.TotalPrice,
		Stores:     result.Stores,
		Items:      items,
	}
}

func toProductResponses(offers []domain.Offer) []productResponse {
	products := make([]productResponse, 0, len(offers))
	for _, offer := range offers {
		products = append(products, productResponse{
			OfferID:     offer.ID,
			ProductName: offer.ProductName,
			StoreName:   offer.StoreName,
			Quantity:    offer.Quantity,
			Unit:        offer.Unit,
			Price:       offer.Price,
			Image:       offer.Image,
		})
	}
	return products
}
