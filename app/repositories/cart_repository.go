package repositories

import (
	"context"

	"github.com/sathyamr/go-cart/app/models"
	"github.com/sathyamr/go-cart/app/utils/calc"
	"gorm.io/gorm"
)

type CartRepository interface {
	GetOrCreateByUserID(ctx context.Context, userID string) (*models.Cart, error)
	GetByID(ctx context.Context, id string) (*models.Cart, error)
	GetWithItems(ctx context.Context, cartID string) (*models.Cart, error)
	ListWithActiveItems(ctx context.Context) ([]models.Cart, error)
	AppendItem(ctx context.Context, cartID string, item *models.CartItem) (*models.Cart, error)
	ClearItems(ctx context.Context, cartID string) (*models.Cart, error)
	OverwriteAggregates(ctx context.Context, cartID string, totals calc.Totals) error
}

type cartRepository struct {
	db *gorm.DB
}

func NewCartRepository(db *gorm.DB) CartRepository {
	return &cartRepository{db}
}

func (r *cartRepository) GetOrCreateByUserID(ctx context.Context, userID string) (*models.Cart, error) {
	var cart models.Cart
	err := r.db.WithContext(ctx).
		Where(models.Cart{UserID: userID}).
		FirstOrCreate(&cart, models.Cart{UserID: userID}).Error
	if err != nil {
		return nil, err
	}

	return &cart, nil
}

func (r *cartRepository) GetByID(ctx context.Context, id string) (*models.Cart, error) {
	var cart models.Cart
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&cart).Error; err != nil {
		return nil, err
	}

	return &cart, nil
}

func (r *cartRepository) GetWithItems(ctx context.Context, cartID string) (*models.Cart, error) {
	var cart models.Cart
	err := r.db.WithContext(ctx).
		Preload("CartItems", "status = ?", models.StatusActive).
		Where("id = ?", cartID).
		First(&cart).Error
	if err != nil {
		return nil, err
	}

	return &cart, nil
}

func (r *cartRepository) ListWithActiveItems(ctx context.Context) ([]models.Cart, error) {
	var carts []models.Cart
	err := r.db.WithContext(ctx).
		Preload("CartItems", "status = ?", models.StatusActive).
		Order("updated_at DESC").
		Find(&carts).Error

	return carts, err
}

// AppendItem adds a line and refreshes the cart's derived totals in one
// transaction, so the totals are always computed from the item list as of
// the same write.
func (r *cartRepository) AppendItem(ctx context.Context, cartID string, item *models.CartItem) (*models.Cart, error) {
	var cart models.Cart

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		item.CartID = cartID
		if err := tx.Create(item).Error; err != nil {
			return err
		}

		var items []models.CartItem
		if err := tx.Where("cart_id = ?", cartID).Order("created_at").Find(&items).Error; err != nil {
			return err
		}

		if err := overwriteAggregates(tx, cartID, calc.Recompute(items)); err != nil {
			return err
		}

		return tx.Preload("CartItems", "status = ?", models.StatusActive).
			Where("id = ?", cartID).
			First(&cart).Error
	})
	if err != nil {
		return nil, err
	}

	return &cart, nil
}

// ClearItems removes every line from the cart and zeroes its aggregates.
// Returns gorm.ErrRecordNotFound when no cart matches.
func (r *cartRepository) ClearItems(ctx context.Context, cartID string) (*models.Cart, error) {
	var cart models.Cart

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("id = ?", cartID).First(&cart).Error; err != nil {
			return err
		}

		if err := tx.Where("cart_id = ?", cartID).Delete(&models.CartItem{}).Error; err != nil {
			return err
		}

		if err := overwriteAggregates(tx, cartID, calc.Totals{}); err != nil {
			return err
		}

		return tx.Where("id = ?", cartID).First(&cart).Error
	})
	if err != nil {
		return nil, err
	}

	cart.CartItems = []models.CartItem{}
	return &cart, nil
}

func (r *cartRepository) OverwriteAggregates(ctx context.Context, cartID string, totals calc.Totals) error {
	return overwriteAggregates(r.db.WithContext(ctx), cartID, totals)
}

// overwriteAggregates fully replaces the derived fields. A map is used so
// zero values are written too; a struct update would skip them.
func overwriteAggregates(tx *gorm.DB, cartID string, totals calc.Totals) error {
	return tx.Model(&models.Cart{}).
		Where("id = ?", cartID).
		Updates(map[string]interface{}{
			"sub_total":       totals.SubTotal,
			"cart_items_qty":  totals.CartItemsQty,
			"total_weight_kg": totals.TotalWeightKg,
		}).Error
}
