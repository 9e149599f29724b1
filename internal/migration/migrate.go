package migration

import (
	catalogdomain "github.com/Kavindya2002/mc-computers-invoicing/internal/catalog/domain"
	invoicedomain "github.com/Kavindya2002/mc-computers-invoicing/internal/invoice/domain"
	"gorm.io/gorm"
)

// Run brings the schema up to date. Items carry a cascading foreign key to
// their invoice, so removing an invoice removes its lines with it.
func Run(conn *gorm.DB) error {
	return conn.AutoMigrate(
		&catalogdomain.Product{},
		&invoicedomain.Invoice{},
		&invoicedomain.InvoiceItem{},
	)
}
