package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// Item status values. Reads only surface active items; deleted is reserved
// for soft removal.
const (
	StatusActive   = 1
	StatusInactive = 2
	StatusDeleted  = 3
)

// Rating is the catalog rating snapshot carried on a line item.
type Rating struct {
	Rate  decimal.Decimal `gorm:"type:decimal(4,2);default:0" json:"rate"`
	Count int             `gorm:"default:0" json:"count"`
}

// CartItem is one purchased line. Product attributes are denormalized from
// the catalog at add time; the line is never mutated afterwards (a repeated
// product id appends a new line, it does not merge).
type CartItem struct {
	ID                 string          `gorm:"size:36;not null;uniqueIndex;primary_key" json:"_id"`
	Cart               *Cart           `gorm:"foreignKey:CartID" json:"-"`
	CartID             string          `gorm:"size:36;index" json:"-"`
	ProductID          int             `gorm:"index" json:"productId"`
	Name               string          `gorm:"size:255" json:"name"`
	Category           string          `gorm:"size:100" json:"category"`
	Description        string          `gorm:"type:text" json:"description"`
	Image              string          `gorm:"size:255" json:"image"`
	Price              decimal.Decimal `gorm:"type:decimal(16,2);default:0" json:"price"`
	DiscountPercentage decimal.Decimal `gorm:"type:decimal(10,2);default:0" json:"discount_percentage"`
	Quantity           int             `gorm:"not null;default:1" json:"quantity"`
	WeightGrams        decimal.Decimal `gorm:"type:decimal(10,2);default:0" json:"weight_in_grams"`
	TotalPrice         decimal.Decimal `gorm:"type:decimal(16,2);default:0" json:"totalPrice"`
	TotalWeightGrams   decimal.Decimal `gorm:"type:decimal(12,2);default:0" json:"total_weight_grams"`
	Rating             Rating          `gorm:"embedded;embeddedPrefix:rating_" json:"rating"`
	Status             int             `gorm:"not null;default:1" json:"status"`
	CreatedAt          time.Time       `json:"newCreatedAt"`
	UpdatedAt          time.Time       `json:"newUpdatedAt"`
}

func (ci *CartItem) BeforeCreate(tx *gorm.DB) (err error) {
	if ci.ID == "" {
		ci.ID = uuid.New().String()
	}
	if ci.Quantity < 1 {
		ci.Quantity = 1
	}
	if ci.Status == 0 {
		ci.Status = StatusActive
	}
	return
}
