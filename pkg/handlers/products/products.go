package products

import (
	"net/http"

	"github.com/chris/campus-market/pkg/api"
	"github.com/chris/campus-market/pkg/handlers"
	"github.com/chris/campus-market/pkg/mapping"
	"github.com/chris/campus-market/pkg/storage"
)

// ProductsHandler holds the dependencies for listing lookups.
type ProductsHandler struct {
	Store storage.ListingReader
}

// NewProductsHandler creates a new ProductsHandler.
func NewProductsHandler(store storage.ListingReader) *ProductsHandler {
	return &ProductsHandler{Store: store}
}

// GetProductById handles the logic for retrieving a listing by its ID.
func (h *ProductsHandler) GetProductById(w http.ResponseWriter, r *http.Request, productId string) {
	domainProduct, err := h.Store.GetProduct(r.Context(), productId)
	if err != nil {
		handlers.WriteStoreError(w, "retrieve product", err)
		return
	}

	apiProduct := mapping.ToApiProduct(domainProduct)
	handlers.WriteJSON(w, http.StatusOK, apiProduct)
}

// ListSellerProducts handles the logic for retrieving a seller's active
// listings, used by a proposer to pick their item for a swap.
func (h *ProductsHandler) ListSellerProducts(w http.ResponseWriter, r *http.Request, sellerId string) {
	domainProducts, err := h.Store.ListActiveProductsBySeller(r.Context(), sellerId)
	if err != nil {
		handlers.WriteStoreError(w, "retrieve seller products", err)
		return
	}

	apiProducts := make([]*api.Product, len(domainProducts))
	for i, product := range domainProducts {
		apiProducts[i] = mapping.ToApiProduct(&product)
	}

	handlers.WriteJSON(w, http.StatusOK, apiProducts)
}
