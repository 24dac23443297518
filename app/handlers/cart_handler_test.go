package handlers

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gorilla/mux"
	"github.com/sathyamr/go-cart/app/models"
	"github.com/sathyamr/go-cart/app/services"
	"github.com/sathyamr/go-cart/app/utils/calc"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

func d(s string) decimal.Decimal {
	v, err := decimal.NewFromString(s)
	if err != nil {
		panic(err)
	}
	return v
}

type stubCartRepo struct {
	carts map[string]*models.Cart
}

func (r *stubCartRepo) GetOrCreateByUserID(ctx context.Context, userID string) (*models.Cart, error) {
	for _, cart := range r.carts {
		if cart.UserID == userID {
			return cart, nil
		}
	}
	cart := &models.Cart{ID: "cart-" + userID, UserID: userID}
	r.carts[cart.ID] = cart
	return cart, nil
}

func (r *stubCartRepo) GetByID(ctx context.Context, id string) (*models.Cart, error) {
	cart, ok := r.carts[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return cart, nil
}

func (r *stubCartRepo) GetWithItems(ctx context.Context, cartID string) (*models.Cart, error) {
	return r.GetByID(ctx, cartID)
}

func (r *stubCartRepo) ListWithActiveItems(ctx context.Context) ([]models.Cart, error) {
	var carts []models.Cart
	for _, cart := range r.carts {
		carts = append(carts, *cart)
	}
	return carts, nil
}

func (r *stubCartRepo) AppendItem(ctx context.Context, cartID string, item *models.CartItem) (*models.Cart, error) {
	cart, ok := r.carts[cartID]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	item.CartID = cartID
	cart.CartItems = append(cart.CartItems, *item)
	totals := calc.Recompute(cart.CartItems)
	cart.SubTotal = totals.SubTotal
	cart.CartItemsQty = totals.CartItemsQty
	cart.TotalWeightKg = totals.TotalWeightKg
	return cart, nil
}

func (r *stubCartRepo) ClearItems(ctx context.Context, cartID string) (*models.Cart, error) {
	cart, ok := r.carts[cartID]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	cart.CartItems = []models.CartItem{}
	cart.SubTotal = decimal.Zero
	cart.CartItemsQty = 0
	cart.TotalWeightKg = decimal.Zero
	return cart, nil
}

func (r *stubCartRepo) OverwriteAggregates(ctx context.Context, cartID string, totals calc.Totals) error {
	return nil
}

type stubCartItemRepo struct{}

func (r *stubCartItemRepo) Add(ctx context.Context, item *models.CartItem) error { return nil }
func (r *stubCartItemRepo) GetByID(ctx context.Context, id string) (*models.CartItem, error) {
	return nil, gorm.ErrRecordNotFound
}
func (r *stubCartItemRepo) GetByCartID(ctx context.Context, cartID string) ([]models.CartItem, error) {
	return nil, nil
}

type stubCatalog struct {
	products map[int]*services.ProductData
}

func (c *stubCatalog) GetProduct(ctx context.Context, productID int) (*services.ProductData, error) {
	product, ok := c.products[productID]
	if !ok {
		return nil, services.ErrInvalidProduct
	}
	return product, nil
}

func (c *stubCatalog) GetWarehouseDistance(ctx context.Context, postalCode string) (*services.DistanceData, error) {
	return nil, fmt.Errorf("%w: not wired in this stub", services.ErrCatalogUnavailable)
}

func newTestHandler() (*CartHandler, *stubCartRepo) {
	repo := &stubCartRepo{carts: map[string]*models.Cart{
		"cart-1": {
			ID:            "cart-1",
			UserID:        "user-1",
			SubTotal:      d("150"),
			CartItemsQty:  2,
			TotalWeightKg: d("2.00"),
		},
	}}
	catalog := &stubCatalog{products: map[int]*services.ProductData{
		101: {ID: 101, Title: "Wireless Mouse", Price: d("50"), WeightGrams: d("500")},
	}}
	svc := services.NewCartService(repo, &stubCartItemRepo{}, catalog)

	return NewCartHandler(svc), repo
}

func checkoutRequest(query string) *http.Request {
	req := httptest.NewRequest(http.MethodGet, "/cart/checkout-value/cart-1"+query, nil)
	return mux.SetURLVars(req, map[string]string{"cartId": "cart-1"})
}

func TestCheckoutValueHandler(t *testing.T) {
	handler, _ := newTestHandler()

	rec := httptest.NewRecorder()
	handler.CheckoutValue(rec, checkoutRequest(`?shipping_object={"postal_code":465535,"distance_in_kilometers":4}`))

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200, body: %s", rec.Code, rec.Body.String())
	}

	var resp struct {
		SubTotal       json.Number `json:"subTotal"`
		ShippingCharge int64       `json:"shippingCharge"`
		GrandTotal     json.Number `json:"GrandTotal"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}

	// 2.00kg at 4km: first weight band, first distance band.
	if resp.ShippingCharge != 12 {
		t.Errorf("shippingCharge = %d, want 12", resp.ShippingCharge)
	}
	if resp.GrandTotal.String() != "162" {
		t.Errorf("GrandTotal = %s, want 162", resp.GrandTotal)
	}
}

func TestCheckoutValueHandlerPlainDistanceParam(t *testing.T) {
	handler, _ := newTestHandler()

	rec := httptest.NewRecorder()
	handler.CheckoutValue(rec, checkoutRequest("?distance_in_kilometers=600"))

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200, body: %s", rec.Code, rec.Body.String())
	}

	var resp struct {
		ShippingCharge int64 `json:"shippingCharge"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if resp.ShippingCharge != 100 {
		t.Errorf("shippingCharge = %d, want 100", resp.ShippingCharge)
	}
}

func TestCheckoutValueHandlerBadInput(t *testing.T) {
	tests := []struct {
		name  string
		query string
	}{
		{"malformed shipping_object", `?shipping_object={not-json`},
		{"missing distance field", `?shipping_object={"postal_code":465535}`},
		{"non-numeric distance", "?distance_in_kilometers=abc"},
		{"negative distance", "?distance_in_kilometers=-4"},
		{"no distance at all", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			handler, _ := newTestHandler()

			rec := httptest.NewRecorder()
			handler.CheckoutValue(rec, checkoutRequest(tt.query))

			if rec.Code != http.StatusBadRequest {
				t.Errorf("status = %d, want 400, body: %s", rec.Code, rec.Body.String())
			}
		})
	}
}

func TestCheckoutValueHandlerUnknownCart(t *testing.T) {
	handler, _ := newTestHandler()

	req := httptest.NewRequest(http.MethodGet, "/cart/checkout-value/nope?distance_in_kilometers=4", nil)
	req = mux.SetURLVars(req, map[string]string{"cartId": "nope"})

	rec := httptest.NewRecorder()
	handler.CheckoutValue(rec, req)

	if rec.Code != http.StatusNotFound {
		t.Errorf("status = %d, want 404, body: %s", rec.Code, rec.Body.String())
	}
}

func TestAddItemHandler(t *testing.T) {
	handler, _ := newTestHandler()

	body := strings.NewReader(`{"id":101,"quantity":2,"user_id":"user-2"}`)
	req := httptest.NewRequest(http.MethodPost, "/cart/item", body)

	rec := httptest.NewRecorder()
	handler.AddItem(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200, body: %s", rec.Code, rec.Body.String())
	}

	var resp struct {
		Success int `json:"success"`
		Data    struct {
			SubTotal      json.Number `json:"subTotal"`
			CartItemsQty  int         `json:"cartItemsQty"`
			TotalWeightKg json.Number `json:"total_weight_kg"`
		} `json:"data"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if resp.Data.SubTotal.String() != "100" {
		t.Errorf("subTotal = %s, want 100", resp.Data.SubTotal)
	}
	if resp.Data.CartItemsQty != 1 {
		t.Errorf("cartItemsQty = %d, want 1", resp.Data.CartItemsQty)
	}
	if resp.Data.TotalWeightKg.String() != "1" {
		t.Errorf("total_weight_kg = %s, want 1", resp.Data.TotalWeightKg)
	}
}

func TestAddItemHandlerInvalidProduct(t *testing.T) {
	handler, repo := newTestHandler()

	body := strings.NewReader(`{"id":999,"user_id":"user-1"}`)
	req := httptest.NewRequest(http.MethodPost, "/cart/item", body)

	rec := httptest.NewRecorder()
	handler.AddItem(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400, body: %s", rec.Code, rec.Body.String())
	}
	if len(repo.carts["cart-1"].CartItems) != 0 {
		t.Errorf("cart mutated on invalid product")
	}
}

func TestAddItemHandlerRejectsMissingProductID(t *testing.T) {
	handler, _ := newTestHandler()

	body := strings.NewReader(`{"quantity":2,"user_id":"user-1"}`)
	req := httptest.NewRequest(http.MethodPost, "/cart/item", body)

	rec := httptest.NewRecorder()
	handler.AddItem(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Errorf("status = %d, want 400, body: %s", rec.Code, rec.Body.String())
	}
}

func TestClearCartHandlerUnknownCart(t *testing.T) {
	handler, _ := newTestHandler()

	req := httptest.NewRequest(http.MethodPut, "/cart/nope", nil)
	req = mux.SetURLVars(req, map[string]string{"cartId": "nope"})

	rec := httptest.NewRecorder()
	handler.ClearCart(rec, req)

	if rec.Code != http.StatusNotFound {
		t.Errorf("status = %d, want 404, body: %s", rec.Code, rec.Body.String())
	}
}
