package services

import (
	"context"
	"errors"
	"fmt"
	"log"
	"time"

	"github.com/sathyamr/go-cart/app/models"
	"github.com/sathyamr/go-cart/app/repositories"
	"github.com/sathyamr/go-cart/app/utils/calc"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type CartService struct {
	cartRepo     repositories.CartRepository
	cartItemRepo repositories.CartItemRepository
	catalog      ProductCatalogClient
}

func NewCartService(cartRepo repositories.CartRepository, cartItemRepo repositories.CartItemRepository, catalog ProductCatalogClient) *CartService {
	return &CartService{
		cartRepo:     cartRepo,
		cartItemRepo: cartItemRepo,
		catalog:      catalog,
	}
}

// CheckoutValue is a cart priced for delivery: the stored cart fields plus
// the tariff charge and the resulting payable amount.
type CheckoutValue struct {
	*models.Cart
	ShippingCharge  int64           `json:"shippingCharge"`
	GrandTotal      decimal.Decimal `json:"GrandTotal"`
	GrandTotalLabel string          `json:"grandTotalLabel"`
}

// AddItem fetches the product from the catalog, appends a new line to the
// user's cart (creating the cart on first use) and refreshes the derived
// totals. A repeated product id appends another line, it never merges.
// Nothing is written when the catalog rejects the product id.
func (s *CartService) AddItem(ctx context.Context, userID string, productID, qty int) (*models.Cart, error) {
	if userID == "" {
		return nil, fmt.Errorf("user id is required")
	}
	if qty < 1 {
		qty = 1
	}

	product, err := s.catalog.GetProduct(ctx, productID)
	if err != nil {
		return nil, err
	}

	cart, err := s.cartRepo.GetOrCreateByUserID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to get or create cart: %w", err)
	}

	totalPrice, totalWeight := calc.LineTotals(product.Price, product.WeightGrams, qty)

	item := &models.CartItem{
		ProductID:          product.ID,
		Name:               product.Title,
		Category:           product.Category,
		Description:        product.Description,
		Image:              product.Image,
		Price:              product.Price,
		DiscountPercentage: product.AdditionalCharges,
		Quantity:           qty,
		WeightGrams:        product.WeightGrams,
		TotalPrice:         totalPrice,
		TotalWeightGrams:   totalWeight,
		Rating: models.Rating{
			Rate:  product.Rating.Rate,
			Count: product.Rating.Count,
		},
		Status:    models.StatusActive,
		CreatedAt: time.Now(),
		UpdatedAt: time.Now(),
	}

	updatedCart, err := s.cartRepo.AppendItem(ctx, cart.ID, item)
	if err != nil {
		log.Printf("AddItem: failed to append item to cart %s: %v", cart.ID, err)
		return nil, fmt.Errorf("failed to add cart item: %w", err)
	}

	return updatedCart, nil
}

// GetCarts lists every cart with its active items, most recently updated
// first.
func (s *CartService) GetCarts(ctx context.Context) ([]models.Cart, error) {
	carts, err := s.cartRepo.ListWithActiveItems(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list carts: %w", err)
	}

	return carts, nil
}

// GetCartItem returns a single active line item by id.
func (s *CartService) GetCartItem(ctx context.Context, itemID string) (*models.CartItem, error) {
	item, err := s.cartItemRepo.GetByID(ctx, itemID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrCartItemNotFound
		}
		return nil, fmt.Errorf("failed to get cart item: %w", err)
	}

	return item, nil
}

// ClearCart removes every line from the cart and zeroes its derived totals.
func (s *CartService) ClearCart(ctx context.Context, cartID string) (*models.Cart, error) {
	cart, err := s.cartRepo.ClearItems(ctx, cartID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrCartNotFound
		}
		return nil, fmt.Errorf("failed to clear cart: %w", err)
	}

	return cart, nil
}

// CheckoutValue reads the cart and prices its delivery over the given
// distance. The subtotal comes from the stored aggregate, not a fresh
// recomputation.
func (s *CartService) CheckoutValue(ctx context.Context, cartID string, distanceKm decimal.Decimal) (*CheckoutValue, error) {
	cart, err := s.cartRepo.GetWithItems(ctx, cartID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrCartNotFound
		}
		return nil, fmt.Errorf("failed to get cart: %w", err)
	}

	charge := calc.ShippingCharge(cart.TotalWeightKg, distanceKm)

	return &CheckoutValue{
		Cart:           cart,
		ShippingCharge: charge,
		GrandTotal:     calc.GrandTotal(cart.SubTotal, charge),
	}, nil
}
