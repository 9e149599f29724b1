package domain

import (
	"time"

	"github.com/bwmarrin/snowflake"
	"github.com/shopspring/decimal"
)

// Customer is embedded in an invoice; it has no lifecycle of its own.
type Customer struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Phone   string `json:"phone"`
	Address string `json:"address"`
}

// Invoice is the aggregate root. It exclusively owns its items; deleting
// an invoice removes them with it.
type Invoice struct {
	ID          snowflake.ID    `json:"id" gorm:"primaryKey"`
	Number      string          `json:"invoiceNumber" gorm:"column:invoice_number;type:text;not null;uniqueIndex"`
	InvoiceDate time.Time       `json:"invoiceDate" gorm:"not null;index"`
	Customer    Customer        `json:"customer" gorm:"embedded;embeddedPrefix:customer_"`
	SubTotal    decimal.Decimal `json:"subTotal" gorm:"type:decimal(12,2);not null"`
	Discount    decimal.Decimal `json:"discount" gorm:"type:decimal(12,2);not null"`
	Total       decimal.Decimal `json:"total" gorm:"type:decimal(12,2);not null"`
	Items       []InvoiceItem   `json:"items" gorm:"foreignKey:InvoiceID;constraint:OnDelete:CASCADE"`
	CreatedAt   time.Time       `json:"-" gorm:"not null;default:CURRENT_TIMESTAMP"`
}

// TableName sets the database table name.
func (Invoice) TableName() string { return "invoices" }

// InvoiceItem is one line of an invoice. ProductName, Description and
// Price are snapshots taken when the line was added; later catalog edits
// do not rewrite history.
type InvoiceItem struct {
	ID          snowflake.ID    `json:"id" gorm:"primaryKey"`
	InvoiceID   snowflake.ID    `json:"-" gorm:"not null;index"`
	ProductID   int64           `json:"productId" gorm:"not null"`
	ProductName string          `json:"productName" gorm:"type:text;not null"`
	Description string          `json:"description" gorm:"type:text"`
	Quantity    int             `json:"quantity" gorm:"not null"`
	Price       decimal.Decimal `json:"price" gorm:"type:decimal(12,2);not null"`
	Amount      decimal.Decimal `json:"amount" gorm:"type:decimal(12,2);not null"`
}

// TableName sets the database table name.
func (InvoiceItem) TableName() string { return "invoice_items" }
