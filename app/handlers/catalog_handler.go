package handlers

import (
	"errors"
	"log"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"
	"github.com/sathyamr/go-cart/app/services"
	"github.com/unrolled/render"
)

// CatalogHandler proxies the remote product catalog: product lookups and
// warehouse distance queries.
type CatalogHandler struct {
	catalog services.ProductCatalogClient
	render  *render.Render
}

func NewCatalogHandler(catalog services.ProductCatalogClient) *CatalogHandler {
	return &CatalogHandler{
		catalog: catalog,
		render:  render.New(),
	}
}

// GetProduct handles GET /product/{id}.
func (h *CatalogHandler) GetProduct(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		_ = h.render.JSON(w, http.StatusBadRequest, map[string]interface{}{
			"success": http.StatusBadRequest,
			"message": "product id must be an integer",
		})
		return
	}

	product, err := h.catalog.GetProduct(r.Context(), id)
	if err != nil {
		if errors.Is(err, services.ErrInvalidProduct) {
			_ = h.render.JSON(w, http.StatusNotFound, map[string]interface{}{
				"success": http.StatusNotFound,
				"message": "Invalid product id.",
			})
			return
		}
		log.Printf("CatalogHandler.GetProduct: %v", err)
		_ = h.render.JSON(w, http.StatusBadGateway, map[string]interface{}{
			"success": http.StatusBadGateway,
			"message": "product catalog unavailable",
		})
		return
	}

	_ = h.render.JSON(w, http.StatusOK, map[string]interface{}{"response": product})
}

// GetWarehouseDistance handles GET /warehouse/distance?postal_code=...
func (h *CatalogHandler) GetWarehouseDistance(w http.ResponseWriter, r *http.Request) {
	postalCode := r.URL.Query().Get("postal_code")
	if postalCode == "" {
		_ = h.render.JSON(w, http.StatusBadRequest, map[string]interface{}{
			"success": http.StatusBadRequest,
			"message": "postal_code is required",
		})
		return
	}

	distance, err := h.catalog.GetWarehouseDistance(r.Context(), postalCode)
	if err != nil {
		log.Printf("CatalogHandler.GetWarehouseDistance: %v", err)
		_ = h.render.JSON(w, http.StatusBadGateway, map[string]interface{}{
			"success": http.StatusBadGateway,
			"message": "warehouse distance lookup unavailable",
		})
		return
	}

	_ = h.render.JSON(w, http.StatusOK, map[string]interface{}{"response": distance})
}
