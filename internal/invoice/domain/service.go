package domain

import (
	"context"
	"errors"
)

// Service is the persistence gateway contract. Create and Update receive a
// draft, recompute the authoritative totals from quantity and price, and
// return the canonical stored invoice with its items re-fetched.
type Service interface {
	List(ctx context.Context) ([]Invoice, error)
	GetByID(ctx context.Context, id string) (Invoice, error)
	Create(ctx context.Context, draft *Draft) (Invoice, error)
	Update(ctx context.Context, id string, draft *Draft) (Invoice, error)
	Delete(ctx context.Context, id string) error
}

var (
	ErrEmptyInvoice        = errors.New("empty_invoice")
	ErrMissingCustomerInfo = errors.New("missing_customer_info")
	ErrItemIndexOutOfRange = errors.New("item_index_out_of_range")
	ErrInvalidInvoiceID    = errors.New("invalid_invoice_id")
	ErrInvoiceNotFound     = errors.New("invoice_not_found")
)
