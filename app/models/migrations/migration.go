package migrations

import (
	"github.com/sathyamr/go-cart/app/models"
	"gorm.io/gorm"
)

func AutoMigrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&models.Cart{},
		&models.CartItem{},
	)
}
