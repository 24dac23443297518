package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// API responses carry totals as JSON numbers, not quoted strings.
func init() {
	decimal.MarshalJSONWithoutQuotes = true
}

// Cart is the aggregate root for one shopper. SubTotal, CartItemsQty and
// TotalWeightKg are derived from CartItems and overwritten after every
// mutation; they are never set independently of the item list.
type Cart struct {
	ID            string          `gorm:"size:36;not null;uniqueIndex;primary_key" json:"_id"`
	UserID        string          `gorm:"size:64;index" json:"userId"`
	CartItems     []CartItem      `json:"items"`
	SubTotal      decimal.Decimal `gorm:"type:decimal(16,2);default:0" json:"subTotal"`
	CartItemsQty  int             `gorm:"default:0" json:"cartItemsQty"`
	TotalWeightKg decimal.Decimal `gorm:"type:decimal(10,2);default:0" json:"total_weight_kg"`
	DeliveryFee   decimal.Decimal `gorm:"type:decimal(16,2);default:0" json:"deliveryFee"`
	CreatedAt     time.Time       `json:"createdAt"`
	UpdatedAt     time.Time       `json:"updatedAt"`
}

func (c *Cart) BeforeCreate(tx *gorm.DB) (err error) {
	if c.ID == "" {
		c.ID = uuid.New().String()
	}
	return
}
