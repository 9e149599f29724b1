package render

import (
	"bytes"
	"strconv"

	"github.com/jung-kurt/gofpdf"
)

// PDFRenderer produces the downloadable A4 invoice document.
type PDFRenderer struct{}

func NewPDFRenderer() *PDFRenderer {
	return &PDFRenderer{}
}

func (r *PDFRenderer) RenderPDF(input RenderInput) ([]byte, error) {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.AddPage()

	// Company block, right aligned next to the title.
	pdf.SetFont("Arial", "B", 24)
	pdf.SetTextColor(33, 150, 243)
	pdf.Text(20, 30, "INVOICE")

	pdf.SetFont("Arial", "B", 16)
	pdf.Text(120, 30, input.Company.Name)
	pdf.SetFont("Arial", "", 10)
	pdf.SetTextColor(100, 100, 100)
	pdf.Text(120, 36, input.Company.Address)
	pdf.Text(120, 41, input.Company.Contact)

	pdf.SetFont("Arial", "", 12)
	pdf.SetTextColor(0, 0, 0)
	pdf.Text(20, 55, "Invoice No: "+input.Invoice.Number)
	pdf.Text(20, 62, "Date: "+formatDate(input.Invoice.InvoiceDate))

	y := 77.0
	pdf.SetFont("Arial", "B", 14)
	pdf.SetTextColor(33, 150, 243)
	pdf.Text(20, y, "BILLED TO:")
	pdf.SetFont("Arial", "", 12)
	pdf.SetTextColor(0, 0, 0)
	y += 7
	pdf.Text(20, y, input.Customer.Name)
	y += 6
	pdf.Text(20, y, input.Customer.Phone)
	if input.Customer.Email != "" {
		y += 6
		pdf.Text(20, y, input.Customer.Email)
	}
	if input.Customer.Address != "" {
		y += 6
		pdf.Text(20, y, input.Customer.Address)
	}

	y += 12
	y = r.tableHeader(pdf, y)
	pdf.SetFont("Arial", "", 10)
	for _, item := range input.Items {
		if y > 250 {
			pdf.AddPage()
			y = r.tableHeader(pdf, 30)
			pdf.SetFont("Arial", "", 10)
		}
		pdf.Text(20, y, item.ProductName)
		pdf.Text(75, y, item.Description)
		pdf.Text(130, y, strconv.Itoa(item.Quantity))
		pdf.Text(145, y, formatMoney(item.Price))
		pdf.Text(172, y, formatMoney(item.Amount))
		y += 8
	}

	y += 8
	pdf.SetFont("Arial", "", 12)
	pdf.Text(130, y, "Subtotal: "+formatMoney(input.Invoice.SubTotal))
	if !input.Invoice.Discount.IsZero() {
		y += 7
		pdf.Text(130, y, "Discount: -"+formatMoney(input.Invoice.Discount))
	}
	y += 9
	pdf.SetFont("Arial", "B", 14)
	pdf.SetTextColor(33, 150, 243)
	pdf.Text(130, y, "Total: "+formatMoney(input.Invoice.Total))

	y += 20
	pdf.SetFont("Arial", "", 10)
	pdf.SetTextColor(100, 100, 100)
	pdf.Text(20, y, "Thank you for your business!")
	pdf.Text(20, y+5, "Terms: Payment due upon receipt. Warranty covers manufacturing defects for 14 days.")

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func (r *PDFRenderer) tableHeader(pdf *gofpdf.Fpdf, y float64) float64 {
	pdf.SetFillColor(33, 150, 243)
	pdf.Rect(20, y-6, 170, 9, "F")
	pdf.SetTextColor(255, 255, 255)
	pdf.SetFont("Arial", "B", 10)
	pdf.Text(20, y, "Product")
	pdf.Text(75, y, "Description")
	pdf.Text(130, y, "Qty")
	pdf.Text(145, y, "Price")
	pdf.Text(172, y, "Amount")
	pdf.SetTextColor(0, 0, 0)
	return y + 9
}
