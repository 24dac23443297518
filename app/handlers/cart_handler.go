package handlers

import (
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/gorilla/mux"
	"github.com/sathyamr/go-cart/app/services"
	"github.com/sathyamr/go-cart/app/utils/format"
	"github.com/sathyamr/go-cart/app/utils/sessions"
	"github.com/shopspring/decimal"
	"github.com/unrolled/render"
)

type CartHandler struct {
	cartSvc  *services.CartService
	render   *render.Render
	validate *validator.Validate
}

func NewCartHandler(cartSvc *services.CartService) *CartHandler {
	return &CartHandler{
		cartSvc:  cartSvc,
		render:   render.New(),
		validate: validator.New(),
	}
}

type AddItemRequest struct {
	ID       int    `json:"id" validate:"required,gt=0"`
	Quantity int    `json:"quantity"`
	UserID   string `json:"user_id" validate:"omitempty,max=64"`
}

// AddItem handles POST /cart/item. The user id is optional; requests
// without one get a session-scoped anonymous cart identity.
func (h *CartHandler) AddItem(w http.ResponseWriter, r *http.Request) {
	var req AddItemRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.clientError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	if err := h.validate.Struct(req); err != nil {
		h.clientError(w, http.StatusBadRequest, "a positive product id is required")
		return
	}

	userID := req.UserID
	if userID == "" {
		var err error
		userID, err = sessions.GetCartUserID(w, r)
		if err != nil {
			log.Printf("CartHandler.AddItem: failed to resolve session cart identity: %v", err)
			h.serverError(w, "failed to resolve cart identity")
			return
		}
	}

	cart, err := h.cartSvc.AddItem(r.Context(), userID, req.ID, req.Quantity)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrInvalidProduct):
			h.clientError(w, http.StatusBadRequest, "Invalid product id.")
		case errors.Is(err, services.ErrCatalogUnavailable):
			log.Printf("CartHandler.AddItem: catalog unavailable: %v", err)
			h.clientError(w, http.StatusBadGateway, "product catalog unavailable")
		default:
			log.Printf("CartHandler.AddItem: %v", err)
			h.serverError(w, "failed to add item to cart")
		}
		return
	}

	_ = h.render.JSON(w, http.StatusOK, map[string]interface{}{
		"success": http.StatusOK,
		"data":    cart,
	})
}

// ListCarts handles GET /cart/items.
func (h *CartHandler) ListCarts(w http.ResponseWriter, r *http.Request) {
	carts, err := h.cartSvc.GetCarts(r.Context())
	if err != nil {
		log.Printf("CartHandler.ListCarts: %v", err)
		h.serverError(w, "failed to list carts")
		return
	}

	_ = h.render.JSON(w, http.StatusOK, map[string]interface{}{
		"success": http.StatusOK,
		"data":    carts,
	})
}

// GetCartItem handles GET /cart/items/{cartItemId}.
func (h *CartHandler) GetCartItem(w http.ResponseWriter, r *http.Request) {
	itemID := mux.Vars(r)["cartItemId"]

	item, err := h.cartSvc.GetCartItem(r.Context(), itemID)
	if err != nil {
		if errors.Is(err, services.ErrCartItemNotFound) {
			h.clientError(w, http.StatusNotFound, "Invalid Cart Item")
			return
		}
		log.Printf("CartHandler.GetCartItem: %v", err)
		h.serverError(w, "failed to get cart item")
		return
	}

	_ = h.render.JSON(w, http.StatusOK, map[string]interface{}{
		"success": http.StatusOK,
		"data":    item,
	})
}

// ClearCart handles PUT /cart/{cartId}: removes every item and zeroes the
// cart's totals.
func (h *CartHandler) ClearCart(w http.ResponseWriter, r *http.Request) {
	cartID := mux.Vars(r)["cartId"]

	cart, err := h.cartSvc.ClearCart(r.Context(), cartID)
	if err != nil {
		if errors.Is(err, services.ErrCartNotFound) {
			h.clientError(w, http.StatusNotFound, "Invalid Cart")
			return
		}
		log.Printf("CartHandler.ClearCart: %v", err)
		h.serverError(w, "failed to clear cart")
		return
	}

	_ = h.render.JSON(w, http.StatusOK, map[string]interface{}{
		"success": http.StatusOK,
		"data":    cart,
	})
}

// CheckoutValue handles GET /cart/checkout-value/{cartId}. The shipping
// distance arrives either as ?shipping_object={"postal_code":...,
// "distance_in_kilometers":...} or as a plain distance_in_kilometers query
// parameter.
func (h *CartHandler) CheckoutValue(w http.ResponseWriter, r *http.Request) {
	cartID := mux.Vars(r)["cartId"]

	distanceKm, err := parseDistance(r)
	if err != nil {
		h.clientError(w, http.StatusBadRequest, err.Error())
		return
	}
	if distanceKm.IsNegative() {
		h.clientError(w, http.StatusBadRequest, "distance_in_kilometers must not be negative")
		return
	}

	value, err := h.cartSvc.CheckoutValue(r.Context(), cartID, distanceKm)
	if err != nil {
		if errors.Is(err, services.ErrCartNotFound) {
			h.clientError(w, http.StatusNotFound, "Invalid Cart")
			return
		}
		log.Printf("CartHandler.CheckoutValue: %v", err)
		h.serverError(w, "failed to compute checkout value")
		return
	}

	value.GrandTotalLabel = format.Money(value.GrandTotal)

	_ = h.render.JSON(w, http.StatusOK, value)
}

func parseDistance(r *http.Request) (decimal.Decimal, error) {
	if raw := r.URL.Query().Get("shipping_object"); raw != "" {
		var shipping struct {
			PostalCode int         `json:"postal_code"`
			DistanceKm json.Number `json:"distance_in_kilometers"`
		}
		if err := json.Unmarshal([]byte(raw), &shipping); err != nil {
			return decimal.Zero, fmt.Errorf("shipping_object is not valid JSON")
		}
		d, err := decimal.NewFromString(shipping.DistanceKm.String())
		if err != nil {
			return decimal.Zero, fmt.Errorf("shipping_object is missing a numeric distance_in_kilometers")
		}
		return d, nil
	}

	if raw := r.URL.Query().Get("distance_in_kilometers"); raw != "" {
		d, err := decimal.NewFromString(raw)
		if err != nil {
			return decimal.Zero, fmt.Errorf("distance_in_kilometers must be numeric")
		}
		return d, nil
	}

	return decimal.Zero, fmt.Errorf("shipping distance is required")
}

func (h *CartHandler) clientError(w http.ResponseWriter, status int, message string) {
	_ = h.render.JSON(w, status, map[string]interface{}{
		"success": status,
		"message": message,
	})
}

func (h *CartHandler) serverError(w http.ResponseWriter, message string) {
	h.clientError(w, http.StatusInternalServerError, message)
}
