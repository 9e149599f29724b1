package server

import (
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"

	invoicedomain "github.com/Kavindya2002/mc-computers-invoicing/internal/invoice/domain"
	"github.com/Kavindya2002/mc-computers-invoicing/internal/invoice/render"
)

type invoiceItemRequest struct {
	ProductID   int64           `json:"productId"`
	ProductName string          `json:"productName"`
	Description string          `json:"description"`
	Quantity    int             `json:"quantity"`
	Price       decimal.Decimal `json:"price"`
}

type invoiceRequest struct {
	CustomerName    string               `json:"customerName"`
	CustomerEmail   string               `json:"customerEmail"`
	CustomerPhone   string               `json:"customerPhone"`
	CustomerAddress string               `json:"customerAddress"`
	Discount        decimal.Decimal      `json:"discount"`
	Items           []invoiceItemRequest `json:"items"`
}

// invoiceSummary is the list shape: customer fields flattened onto the
// invoice, the way the original list endpoint always emitted them.
type invoiceSummary struct {
	ID              string          `json:"id"`
	InvoiceNumber   string          `json:"invoiceNumber"`
	InvoiceDate     time.Time       `json:"invoiceDate"`
	CustomerName    string          `json:"customerName"`
	CustomerEmail   string          `json:"customerEmail"`
	CustomerPhone   string          `json:"customerPhone"`
	CustomerAddress string          `json:"customerAddress"`
	SubTotal        decimal.Decimal `json:"subTotal"`
	Discount        decimal.Decimal `json:"discount"`
	Total           decimal.Decimal `json:"total"`
	Items           []invoiceItem   `json:"items"`
}

// invoiceDetail is the get/create shape, with a nested customer object.
type invoiceDetail struct {
	ID            string                 `json:"id"`
	InvoiceNumber string                 `json:"invoiceNumber"`
	InvoiceDate   time.Time              `json:"invoiceDate"`
	Customer      invoicedomain.Customer `json:"customer"`
	SubTotal      decimal.Decimal        `json:"subTotal"`
	Discount      decimal.Decimal        `json:"discount"`
	Total         decimal.Decimal        `json:"total"`
	Items         []invoiceItem          `json:"items"`
}

type invoiceItem struct {
	ID          string          `json:"id"`
	ProductID   int64           `json:"productId"`
	ProductName string          `json:"productName"`
	Description string          `json:"description"`
	Quantity    int             `json:"quantity"`
	Price       decimal.Decimal `json:"price"`
	Amount      decimal.Decimal `json:"amount"`
}

// @Summary      List Invoices
// @Description  List stored invoices, newest first
// @Tags         invoices
// @Produce      json
// @Success      200  {array}  invoiceSummary
// @Router       /api/invoices [get]
func (s *Server) ListInvoices(c *gin.Context) {
	invoices, err := s.invoiceSvc.List(c.Request.Context())
	if err != nil {
		AbortWithError(c, err)
		return
	}

	summaries := make([]invoiceSummary, 0, len(invoices))
	for _, invoice := range invoices {
		summaries = append(summaries, invoiceSummary{
			ID:              invoice.ID.String(),
			InvoiceNumber:   invoice.Number,
			InvoiceDate:     invoice.InvoiceDate,
			CustomerName:    invoice.Customer.Name,
			CustomerEmail:   invoice.Customer.Email,
			CustomerPhone:   invoice.Customer.Phone,
			CustomerAddress: invoice.Customer.Address,
			SubTotal:        invoice.SubTotal,
			Discount:        invoice.Discount,
			Total:           invoice.Total,
			Items:           toWireItems(invoice.Items),
		})
	}
	c.JSON(http.StatusOK, summaries)
}

// @Summary      Get Invoice
// @Description  Get a single invoice by id
// @Tags         invoices
// @Produce      json
// @Param        id   path      string  true  "Invoice ID"
// @Success      200  {object}  invoiceDetail
// @Failure      404  {object}  map[string]string
// @Router       /api/invoices/{id} [get]
func (s *Server) GetInvoiceByID(c *gin.Context) {
	invoice, err := s.invoiceSvc.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		AbortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, toDetail(invoice))
}

// @Summary      Create Invoice
// @Description  Validate a draft, recompute its totals server-side and store it
// @Tags         invoices
// @Accept       json
// @Produce      json
// @Param        request body invoiceRequest true "Invoice Draft"
// @Success      200  {object}  invoiceDetail
// @Failure      400  {object}  map[string]string
// @Router       /api/invoices [post]
func (s *Server) CreateInvoice(c *gin.Context) {
	var req invoiceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		invalidRequestBody(c)
		return
	}

	created, err := s.invoiceSvc.Create(c.Request.Context(), req.toDraft())
	if err != nil {
		AbortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, toDetail(created))
}

// @Summary      Update Invoice
// @Description  Replace an invoice's customer, items and discount; totals are recomputed like on create
// @Tags         invoices
// @Accept       json
// @Produce      json
// @Param        id       path  string          true  "Invoice ID"
// @Param        request  body  invoiceRequest  true  "Invoice Draft"
// @Success      200  {object}  invoiceDetail
// @Failure      404  {object}  map[string]string
// @Router       /api/invoices/{id} [put]
func (s *Server) UpdateInvoice(c *gin.Context) {
	var req invoiceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		invalidRequestBody(c)
		return
	}

	updated, err := s.invoiceSvc.Update(c.Request.Context(), c.Param("id"), req.toDraft())
	if err != nil {
		AbortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, toDetail(updated))
}

// @Summary      Delete Invoice
// @Description  Remove an invoice and all of its items
// @Tags         invoices
// @Produce      json
// @Param        id   path      string  true  "Invoice ID"
// @Success      200  {object}  map[string]string
// @Failure      404  {object}  map[string]string
// @Router       /api/invoices/{id} [delete]
func (s *Server) DeleteInvoice(c *gin.Context) {
	if err := s.invoiceSvc.Delete(c.Request.Context(), c.Param("id")); err != nil {
		AbortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"Message": "Invoice deleted successfully"})
}

// @Summary      Render Invoice HTML
// @Description  Render a stored invoice as a printable HTML document
// @Tags         invoices
// @Produce      html
// @Param        id   path      string  true  "Invoice ID"
// @Success      200  {string}  string
// @Router       /api/invoices/{id}/html [get]
func (s *Server) RenderInvoiceHTML(c *gin.Context) {
	invoice, err := s.invoiceSvc.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		AbortWithError(c, err)
		return
	}

	html, err := s.html.RenderHTML(render.NewInput(s.companyView(), invoice))
	if err != nil {
		AbortWithError(c, err)
		return
	}
	c.Data(http.StatusOK, "text/html; charset=utf-8", []byte(html))
}

// @Summary      Download Invoice PDF
// @Description  Render a stored invoice as a downloadable PDF
// @Tags         invoices
// @Produce      application/pdf
// @Param        id   path      string  true  "Invoice ID"
// @Success      200  {file}    binary
// @Router       /api/invoices/{id}/pdf [get]
func (s *Server) DownloadInvoicePDF(c *gin.Context) {
	invoice, err := s.invoiceSvc.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		AbortWithError(c, err)
		return
	}

	pdf, err := s.pdf.RenderPDF(render.NewInput(s.companyView(), invoice))
	if err != nil {
		AbortWithError(c, err)
		return
	}
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=invoice-%s.pdf", invoice.Number))
	c.Data(http.StatusOK, "application/pdf", pdf)
}

func (req invoiceRequest) toDraft() *invoicedomain.Draft {
	items := make([]invoicedomain.InvoiceItem, 0, len(req.Items))
	for _, item := range req.Items {
		items = append(items, invoicedomain.InvoiceItem{
			ProductID:   item.ProductID,
			ProductName: item.ProductName,
			Description: item.Description,
			Quantity:    item.Quantity,
			Price:       item.Price,
		})
	}
	return &invoicedomain.Draft{
		Customer: invoicedomain.Customer{
			Name:    strings.TrimSpace(req.CustomerName),
			Email:   strings.TrimSpace(req.CustomerEmail),
			Phone:   strings.TrimSpace(req.CustomerPhone),
			Address: strings.TrimSpace(req.CustomerAddress),
		},
		Discount: req.Discount,
		Items:    items,
	}
}

func (s *Server) companyView() render.CompanyView {
	return render.CompanyView{
		Name:    s.cfg.Company.Name,
		Address: s.cfg.Company.Address,
		Contact: s.cfg.Company.Contact,
	}
}

func toDetail(invoice invoicedomain.Invoice) invoiceDetail {
	return invoiceDetail{
		ID:            invoice.ID.String(),
		InvoiceNumber: invoice.Number,
		InvoiceDate:   invoice.InvoiceDate,
		Customer:      invoice.Customer,
		SubTotal:      invoice.SubTotal,
		Discount:      invoice.Discount,
		Total:         invoice.Total,
		Items:         toWireItems(invoice.Items),
	}
}

func toWireItems(items []invoicedomain.InvoiceItem) []invoiceItem {
	wire := make([]invoiceItem, 0, len(items))
	for _, item := range items {
		wire = append(wire, invoiceItem{
			ID:          item.ID.String(),
			ProductID:   item.ProductID,
			ProductName: item.ProductName,
			Description: item.Description,
			Quantity:    item.Quantity,
			Price:       item.Price,
			Amount:      item.Amount,
		})
	}
	return wire
}
