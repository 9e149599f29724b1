package render

import (
	"time"

	"github.com/shopspring/decimal"

	invoicedomain "github.com/Kavindya2002/mc-computers-invoicing/internal/invoice/domain"
)

// RenderInput is the deterministic input used for invoice rendering.
// Rendering consumes a finalized invoice and never touches stored state.
type RenderInput struct {
	Company  CompanyView
	Invoice  InvoiceView
	Customer CustomerView
	Items    []LineItemView
}

type CompanyView struct {
	Name    string
	Address string
	Contact string
}

type InvoiceView struct {
	Number      string
	InvoiceDate time.Time
	SubTotal    decimal.Decimal
	Discount    decimal.Decimal
	Total       decimal.Decimal
}

type CustomerView struct {
	Name    string
	Email   string
	Phone   string
	Address string
}

type LineItemView struct {
	ProductName string
	Description string
	Quantity    int
	Price       decimal.Decimal
	Amount      decimal.Decimal
}

// NewInput projects a stored invoice into the render views.
func NewInput(company CompanyView, invoice invoicedomain.Invoice) RenderInput {
	items := make([]LineItemView, 0, len(invoice.Items))
	for _, item := range invoice.Items {
		items = append(items, LineItemView{
			ProductName: item.ProductName,
			Description: item.Description,
			Quantity:    item.Quantity,
			Price:       item.Price,
			Amount:      item.Amount,
		})
	}
	return RenderInput{
		Company: company,
		Invoice: InvoiceView{
			Number:      invoice.Number,
			InvoiceDate: invoice.InvoiceDate,
			SubTotal:    invoice.SubTotal,
			Discount:    invoice.Discount,
			Total:       invoice.Total,
		},
		Customer: CustomerView{
			Name:    invoice.Customer.Name,
			Email:   invoice.Customer.Email,
			Phone:   invoice.Customer.Phone,
			Address: invoice.Customer.Address,
		},
		Items: items,
	}
}

func formatMoney(value decimal.Decimal) string {
	return "LKR " + value.StringFixed(2)
}

func formatDate(value time.Time) string {
	if value.IsZero() {
		return "-"
	}
	return value.Format("2006-01-02")
}
