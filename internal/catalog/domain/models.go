package domain

import (
	"context"
	"errors"
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/datatypes"
)

// Product is a catalog entry. Invoices copy name, description and price
// onto their lines at add-time; editing a product never rewrites history.
type Product struct {
	ID          int64             `json:"id" gorm:"primaryKey"`
	Name        string            `json:"name" gorm:"type:text;not null"`
	Description string            `json:"description" gorm:"type:text"`
	Price       decimal.Decimal   `json:"price" gorm:"type:decimal(12,2);not null"`
	Metadata    datatypes.JSONMap `json:"metadata,omitempty"`
	CreatedAt   time.Time         `json:"-" gorm:"not null;default:CURRENT_TIMESTAMP"`
}

// TableName sets the database table name.
func (Product) TableName() string { return "products" }

// Service is a read-only lookup; the catalog is maintained elsewhere.
type Service interface {
	List(ctx context.Context) ([]Product, error)
	GetByID(ctx context.Context, id int64) (Product, error)
}

var ErrProductNotFound = errors.New("product_not_found")
