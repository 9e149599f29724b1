package domain

import (
	"strings"

	"github.com/shopspring/decimal"

	"github.com/Kavindya2002/mc-computers-invoicing/internal/money"
)

// ProductSnapshot is the slice of a catalog product that gets copied onto
// a line item when it is added. The catalog may change afterwards without
// affecting the draft.
type ProductSnapshot struct {
	ID          int64
	Name        string
	Description string
	Price       decimal.Decimal
}

// Draft is an invoice under active editing: no identity, no number, not
// yet persisted. Every mutation leaves subtotal, discount and total
// consistent with the items, using the same arithmetic the gateway applies
// on commit.
type Draft struct {
	Customer Customer
	Items    []InvoiceItem
	SubTotal decimal.Decimal
	Discount decimal.Decimal
	Total    decimal.Decimal
}

func NewDraft() *Draft {
	return &Draft{}
}

// AddItem merges onto an existing line when the product is already on the
// draft, otherwise appends a new snapshot line.
func (d *Draft) AddItem(product ProductSnapshot, quantity int) error {
	if quantity < 1 {
		quantity = 1
	}
	for i := range d.Items {
		if d.Items[i].ProductID == product.ID {
			return d.setQuantity(i, d.Items[i].Quantity+quantity)
		}
	}
	amount, err := money.LineAmount(quantity, product.Price)
	if err != nil {
		return err
	}
	d.Items = append(d.Items, InvoiceItem{
		ProductID:   product.ID,
		ProductName: product.Name,
		Description: product.Description,
		Quantity:    quantity,
		Price:       product.Price,
		Amount:      amount,
	})
	d.recompute()
	return nil
}

func (d *Draft) RemoveItem(index int) error {
	if index < 0 || index >= len(d.Items) {
		return ErrItemIndexOutOfRange
	}
	d.Items = append(d.Items[:index], d.Items[index+1:]...)
	d.recompute()
	return nil
}

// UpdateItemQuantity coerces quantity to at least one, matching the form
// behaviour where a line can never drop below a single unit.
func (d *Draft) UpdateItemQuantity(index, quantity int) error {
	if index < 0 || index >= len(d.Items) {
		return ErrItemIndexOutOfRange
	}
	if quantity < 1 {
		quantity = 1
	}
	return d.setQuantity(index, quantity)
}

func (d *Draft) SetDiscount(value decimal.Decimal) {
	d.Discount = value
	d.recompute()
}

// ValidateForCommit enforces the commit rules: at least one item, and a
// customer name and phone. Email and address stay optional.
func (d *Draft) ValidateForCommit() error {
	if len(d.Items) == 0 {
		return ErrEmptyInvoice
	}
	if strings.TrimSpace(d.Customer.Name) == "" || strings.TrimSpace(d.Customer.Phone) == "" {
		return ErrMissingCustomerInfo
	}
	return nil
}

func (d *Draft) setQuantity(index, quantity int) error {
	amount, err := money.LineAmount(quantity, d.Items[index].Price)
	if err != nil {
		return err
	}
	d.Items[index].Quantity = quantity
	d.Items[index].Amount = amount
	d.recompute()
	return nil
}

func (d *Draft) recompute() {
	amounts := make([]decimal.Decimal, 0, len(d.Items))
	for _, item := range d.Items {
		amounts = append(amounts, item.Amount)
	}
	d.SubTotal = money.Subtotal(amounts)
	d.Discount, d.Total = money.ApplyDiscount(d.SubTotal, d.Discount)
}
