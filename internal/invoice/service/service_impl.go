package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/bwmarrin/snowflake"
	"github.com/shopspring/decimal"
	"go.uber.org/fx"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/Kavindya2002/mc-computers-invoicing/internal/clock"
	invoicedomain "github.com/Kavindya2002/mc-computers-invoicing/internal/invoice/domain"
	"github.com/Kavindya2002/mc-computers-invoicing/internal/money"
)

type ServiceParam struct {
	fx.In

	DB    *gorm.DB
	Log   *zap.Logger
	GenID *snowflake.Node
	Clock clock.Clock
}

type Service struct {
	db    *gorm.DB
	log   *zap.Logger
	genID *snowflake.Node
	clock clock.Clock
}

func NewService(p ServiceParam) invoicedomain.Service {
	return &Service{
		db:    p.DB,
		log:   p.Log.Named("invoice.service"),
		genID: p.GenID,
		clock: p.Clock,
	}
}

func (s *Service) List(ctx context.Context) ([]invoicedomain.Invoice, error) {
	var invoices []invoicedomain.Invoice
	err := s.db.WithContext(ctx).
		Preload("Items", func(tx *gorm.DB) *gorm.DB { return tx.Order("invoice_items.id") }).
		Order("invoice_date DESC, id DESC").
		Find(&invoices).Error
	if err != nil {
		return nil, err
	}
	return invoices, nil
}

func (s *Service) GetByID(ctx context.Context, id string) (invoicedomain.Invoice, error) {
	invoiceID, err := parseID(id)
	if err != nil {
		return invoicedomain.Invoice{}, err
	}
	return s.fetch(ctx, s.db, invoiceID)
}

// Create assigns identity, number and date, recomputes every amount and
// the aggregate totals from the quantities and prices it received, and
// persists the invoice with its items as one transaction. Client-sent
// amounts and totals are ignored.
func (s *Service) Create(ctx context.Context, draft *invoicedomain.Draft) (invoicedomain.Invoice, error) {
	if err := draft.ValidateForCommit(); err != nil {
		return invoicedomain.Invoice{}, err
	}

	now := s.clock.Now()
	invoice, err := s.buildAggregate(draft)
	if err != nil {
		return invoicedomain.Invoice{}, err
	}
	invoice.ID = s.genID.Generate()
	invoice.Number = s.nextNumber(now)
	invoice.InvoiceDate = now
	for i := range invoice.Items {
		invoice.Items[i].InvoiceID = invoice.ID
	}

	err = s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return tx.Create(&invoice).Error
	})
	if err != nil {
		return invoicedomain.Invoice{}, fmt.Errorf("create invoice: %w", err)
	}

	s.log.Info("invoice created",
		zap.String("invoice_id", invoice.ID.String()),
		zap.String("invoice_number", invoice.Number),
		zap.Int("items", len(invoice.Items)),
	)
	return s.fetch(ctx, s.db, invoice.ID)
}

// Update revalidates and recomputes exactly like Create, keeping the
// original identity, number and date. The stored item set is replaced
// wholesale inside one transaction.
func (s *Service) Update(ctx context.Context, id string, draft *invoicedomain.Draft) (invoicedomain.Invoice, error) {
	invoiceID, err := parseID(id)
	if err != nil {
		return invoicedomain.Invoice{}, err
	}
	if err := draft.ValidateForCommit(); err != nil {
		return invoicedomain.Invoice{}, err
	}

	existing, err := s.fetch(ctx, s.db, invoiceID)
	if err != nil {
		return invoicedomain.Invoice{}, err
	}

	updated, err := s.buildAggregate(draft)
	if err != nil {
		return invoicedomain.Invoice{}, err
	}
	updated.ID = existing.ID
	updated.Number = existing.Number
	updated.InvoiceDate = existing.InvoiceDate
	updated.CreatedAt = existing.CreatedAt
	for i := range updated.Items {
		updated.Items[i].InvoiceID = existing.ID
	}

	err = s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("invoice_id = ?", existing.ID).Delete(&invoicedomain.InvoiceItem{}).Error; err != nil {
			return err
		}
		columns := map[string]any{
			"customer_name":    updated.Customer.Name,
			"customer_email":   updated.Customer.Email,
			"customer_phone":   updated.Customer.Phone,
			"customer_address": updated.Customer.Address,
			"sub_total":        updated.SubTotal,
			"discount":         updated.Discount,
			"total":            updated.Total,
		}
		if err := tx.Model(&invoicedomain.Invoice{}).Where("id = ?", existing.ID).Updates(columns).Error; err != nil {
			return err
		}
		return tx.Create(&updated.Items).Error
	})
	if err != nil {
		return invoicedomain.Invoice{}, fmt.Errorf("update invoice: %w", err)
	}
	return s.fetch(ctx, s.db, existing.ID)
}

func (s *Service) Delete(ctx context.Context, id string) error {
	invoiceID, err := parseID(id)
	if err != nil {
		return err
	}

	err = s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var invoice invoicedomain.Invoice
		if err := tx.First(&invoice, "id = ?", invoiceID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return invoicedomain.ErrInvoiceNotFound
			}
			return err
		}
		if err := tx.Where("invoice_id = ?", invoiceID).Delete(&invoicedomain.InvoiceItem{}).Error; err != nil {
			return err
		}
		return tx.Delete(&invoice).Error
	})
	if err != nil {
		if errors.Is(err, invoicedomain.ErrInvoiceNotFound) {
			return err
		}
		return fmt.Errorf("delete invoice: %w", err)
	}

	s.log.Info("invoice deleted", zap.String("invoice_id", invoiceID.String()))
	return nil
}

// buildAggregate turns a draft into a persistable aggregate with fresh
// item identities and server-computed amounts and totals.
func (s *Service) buildAggregate(draft *invoicedomain.Draft) (invoicedomain.Invoice, error) {
	items := make([]invoicedomain.InvoiceItem, 0, len(draft.Items))
	for _, item := range draft.Items {
		quantity := item.Quantity
		if quantity < 1 {
			quantity = 1
		}
		amount, err := money.LineAmount(quantity, item.Price)
		if err != nil {
			return invoicedomain.Invoice{}, err
		}
		items = append(items, invoicedomain.InvoiceItem{
			ID:          s.genID.Generate(),
			ProductID:   item.ProductID,
			ProductName: item.ProductName,
			Description: item.Description,
			Quantity:    quantity,
			Price:       item.Price,
			Amount:      amount,
		})
	}

	lineAmounts := make([]decimal.Decimal, 0, len(items))
	for _, item := range items {
		lineAmounts = append(lineAmounts, item.Amount)
	}
	subtotal := money.Subtotal(lineAmounts)
	discount, total := money.ApplyDiscount(subtotal, draft.Discount)

	return invoicedomain.Invoice{
		Customer: invoicedomain.Customer{
			Name:    strings.TrimSpace(draft.Customer.Name),
			Email:   strings.TrimSpace(draft.Customer.Email),
			Phone:   strings.TrimSpace(draft.Customer.Phone),
			Address: strings.TrimSpace(draft.Customer.Address),
		},
		SubTotal: subtotal,
		Discount: discount,
		Total:    total,
		Items:    items,
	}, nil
}

func (s *Service) fetch(ctx context.Context, conn *gorm.DB, id snowflake.ID) (invoicedomain.Invoice, error) {
	var invoice invoicedomain.Invoice
	err := conn.WithContext(ctx).
		Preload("Items", func(tx *gorm.DB) *gorm.DB { return tx.Order("invoice_items.id") }).
		First(&invoice, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return invoicedomain.Invoice{}, invoicedomain.ErrInvoiceNotFound
	}
	if err != nil {
		return invoicedomain.Invoice{}, err
	}
	return invoice, nil
}

// nextNumber derives a human-readable token from the wall clock, with a
// snowflake-derived suffix so two invoices in the same millisecond still
// get distinct numbers.
func (s *Service) nextNumber(now time.Time) string {
	suffix := int64(s.genID.Generate()) % 10000
	return fmt.Sprintf("INV-%s%03d-%04d",
		now.Format("20060102150405"),
		now.Nanosecond()/int(time.Millisecond),
		suffix,
	)
}

func parseID(value string) (snowflake.ID, error) {
	id, err := snowflake.ParseString(strings.TrimSpace(value))
	if err != nil || id == 0 {
		return 0, invoicedomain.ErrInvalidInvoiceID
	}
	return id, nil
}
