package seed

import (
	"context"
	"errors"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	catalogdomain "github.com/Kavindya2002/mc-computers-invoicing/internal/catalog/domain"
)

// EnsureCatalog seeds the demo product catalog on an empty database so a
// fresh install has something to invoice. An already-populated catalog is
// left untouched.
func EnsureCatalog(db *gorm.DB) error {
	if db == nil {
		return errors.New("seed database handle is required")
	}

	ctx := context.Background()
	return db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var count int64
		if err := tx.Model(&catalogdomain.Product{}).Count(&count).Error; err != nil {
			return err
		}
		if count > 0 {
			return nil
		}
		return tx.Create(defaultCatalog()).Error
	})
}

func defaultCatalog() []catalogdomain.Product {
	return []catalogdomain.Product{
		{ID: 1, Name: "Laptop Dell XPS 13", Description: "13-inch, 16GB RAM, 512GB SSD", Price: decimal.RequireFromString("1299.99")},
		{ID: 2, Name: "MacBook Pro 14", Description: "14-inch Apple laptop, M3 chip, 16GB RAM", Price: decimal.RequireFromString("1999.99")},
		{ID: 3, Name: "Gaming PC", Description: "Intel i7, RTX 4070, 32GB RAM, 1TB SSD", Price: decimal.RequireFromString("1599.99")},
		{ID: 4, Name: "Wireless Mouse", Description: "Ergonomic wireless mouse with RGB lighting", Price: decimal.RequireFromString("29.99")},
		{ID: 5, Name: "Mechanical Keyboard", Description: "RGB mechanical keyboard with blue switches", Price: decimal.RequireFromString("89.99")},
	}
}
