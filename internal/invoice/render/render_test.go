package render

import (
	"strings"
	"testing"
	"time"

	"github.com/shopspring/decimal"

	invoicedomain "github.com/Kavindya2002/mc-computers-invoicing/internal/invoice/domain"
)

func sampleInput() RenderInput {
	invoice := invoicedomain.Invoice{
		Number:      "INV-20251023224923123-0042",
		InvoiceDate: time.Date(2025, 10, 23, 22, 49, 23, 0, time.UTC),
		Customer: invoicedomain.Customer{
			Name:  "Nadeesha Perera",
			Phone: "+94 77 123 4567",
			Email: "nadeesha@example.com",
		},
		SubTotal: decimal.RequireFromString("149.97"),
		Discount: decimal.RequireFromString("10.00"),
		Total:    decimal.RequireFromString("139.97"),
		Items: []invoicedomain.InvoiceItem{
			{
				ProductName: "Wireless Mouse",
				Description: "Ergonomic wireless mouse",
				Quantity:    2,
				Price:       decimal.RequireFromString("29.99"),
				Amount:      decimal.RequireFromString("59.98"),
			},
			{
				ProductName: "Mechanical Keyboard",
				Description: "RGB, blue switches",
				Quantity:    1,
				Price:       decimal.RequireFromString("89.99"),
				Amount:      decimal.RequireFromString("89.99"),
			},
		},
	}
	company := CompanyView{
		Name:    "MC Computers",
		Address: "123 Tech Avenue, Colombo 07, Sri Lanka",
		Contact: "+94 11 234 5678 | info@mccomputers.lk",
	}
	return NewInput(company, invoice)
}

func TestRenderHTMLContainsInvoiceFacts(t *testing.T) {
	html, err := NewHTMLRenderer().RenderHTML(sampleInput())
	if err != nil {
		t.Fatalf("render html: %v", err)
	}

	for _, want := range []string{
		"INV-20251023224923123-0042",
		"Nadeesha Perera",
		"Wireless Mouse",
		"LKR 149.97",
		"LKR 10.00",
		"LKR 139.97",
		"MC Computers",
	} {
		if !strings.Contains(html, want) {
			t.Fatalf("rendered html missing %q", want)
		}
	}
}

func TestRenderHTMLOmitsZeroDiscount(t *testing.T) {
	input := sampleInput()
	input.Invoice.Discount = decimal.Zero
	html, err := NewHTMLRenderer().RenderHTML(input)
	if err != nil {
		t.Fatalf("render html: %v", err)
	}
	if strings.Contains(html, "Discount:") {
		t.Fatal("zero discount should not be rendered")
	}
}

func TestRenderPDFProducesDocument(t *testing.T) {
	data, err := NewPDFRenderer().RenderPDF(sampleInput())
	if err != nil {
		t.Fatalf("render pdf: %v", err)
	}
	if len(data) == 0 {
		t.Fatal("empty pdf output")
	}
	if !strings.HasPrefix(string(data[:5]), "%PDF-") {
		t.Fatalf("output does not look like a pdf: %q", data[:8])
	}
}
