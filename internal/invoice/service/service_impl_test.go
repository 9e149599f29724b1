package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"testing"
	"time"

	"github.com/bwmarrin/snowflake"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	invoicedomain "github.com/Kavindya2002/mc-computers-invoicing/internal/invoice/domain"
	"github.com/Kavindya2002/mc-computers-invoicing/internal/migration"
)

type testClock struct {
	now time.Time
}

func (c *testClock) Now() time.Time { return c.now }

func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	conn, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	if err := migration.Run(conn); err != nil {
		t.Fatalf("migrate: %v", err)
	}
	return conn
}

func newTestService(t *testing.T, conn *gorm.DB, clk *testClock) *Service {
	t.Helper()
	node, err := snowflake.NewNode(1)
	if err != nil {
		t.Fatalf("new snowflake node: %v", err)
	}
	return &Service{
		db:    conn,
		log:   zap.NewNop(),
		genID: node,
		clock: clk,
	}
}

func validDraft(t *testing.T) *invoicedomain.Draft {
	t.Helper()
	draft := invoicedomain.NewDraft()
	draft.Customer = invoicedomain.Customer{
		Name:  "Nadeesha Perera",
		Phone: "+94 77 123 4567",
	}
	if err := draft.AddItem(invoicedomain.ProductSnapshot{
		ID: 4, Name: "Wireless Mouse", Description: "Ergonomic wireless mouse",
		Price: decimal.RequireFromString("29.99"),
	}, 2); err != nil {
		t.Fatalf("add mouse: %v", err)
	}
	if err := draft.AddItem(invoicedomain.ProductSnapshot{
		ID: 5, Name: "Mechanical Keyboard", Description: "RGB, blue switches",
		Price: decimal.RequireFromString("89.99"),
	}, 1); err != nil {
		t.Fatalf("add keyboard: %v", err)
	}
	draft.SetDiscount(decimal.RequireFromString("10.00"))
	return draft
}

func TestCreateRecomputesAuthoritativeTotals(t *testing.T) {
	conn := setupTestDB(t)
	clk := &testClock{now: time.Date(2025, 10, 23, 22, 49, 23, 0, time.UTC)}
	svc := newTestService(t, conn, clk)

	draft := validDraft(t)
	// Tamper with the client-side figures; the gateway must not trust them.
	draft.SubTotal = decimal.RequireFromString("1.00")
	draft.Total = decimal.RequireFromString("0.50")
	draft.Items[0].Amount = decimal.RequireFromString("999.99")

	created, err := svc.Create(context.Background(), draft)
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	if want := decimal.RequireFromString("149.97"); !created.SubTotal.Equal(want) {
		t.Fatalf("subtotal %s, want %s", created.SubTotal, want)
	}
	if want := decimal.RequireFromString("139.97"); !created.Total.Equal(want) {
		t.Fatalf("total %s, want %s", created.Total, want)
	}
	if want := decimal.RequireFromString("59.98"); !created.Items[0].Amount.Equal(want) {
		t.Fatalf("item amount %s, want %s", created.Items[0].Amount, want)
	}
	if created.ID == 0 {
		t.Fatal("expected server-assigned invoice id")
	}
	for _, item := range created.Items {
		if item.ID == 0 {
			t.Fatal("expected server-assigned item ids")
		}
	}
	if !strings.HasPrefix(created.Number, "INV-20251023224923") {
		t.Fatalf("invoice number %q not derived from clock", created.Number)
	}
	if !created.InvoiceDate.Equal(clk.now) {
		t.Fatalf("invoice date %s, want %s", created.InvoiceDate, clk.now)
	}
}

func TestCreateEmptyDraftPersistsNothing(t *testing.T) {
	conn := setupTestDB(t)
	svc := newTestService(t, conn, &testClock{now: time.Now()})

	draft := invoicedomain.NewDraft()
	draft.Customer = invoicedomain.Customer{Name: "N", Phone: "1"}
	if _, err := svc.Create(context.Background(), draft); !errors.Is(err, invoicedomain.ErrEmptyInvoice) {
		t.Fatalf("expected empty invoice error, got %v", err)
	}

	invoices, err := svc.List(context.Background())
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(invoices) != 0 {
		t.Fatalf("expected no persisted invoices, got %d", len(invoices))
	}
}

func TestCreateMissingCustomerInfo(t *testing.T) {
	conn := setupTestDB(t)
	svc := newTestService(t, conn, &testClock{now: time.Now()})

	draft := validDraft(t)
	draft.Customer.Phone = "  "
	if _, err := svc.Create(context.Background(), draft); !errors.Is(err, invoicedomain.ErrMissingCustomerInfo) {
		t.Fatalf("expected missing customer error, got %v", err)
	}
}

func TestCreateAssignsDistinctNumbers(t *testing.T) {
	conn := setupTestDB(t)
	svc := newTestService(t, conn, &testClock{now: time.Now()})

	first, err := svc.Create(context.Background(), validDraft(t))
	if err != nil {
		t.Fatalf("create first: %v", err)
	}
	second, err := svc.Create(context.Background(), validDraft(t))
	if err != nil {
		t.Fatalf("create second: %v", err)
	}
	if first.Number == second.Number {
		t.Fatalf("expected distinct invoice numbers, both %q", first.Number)
	}
}

func TestListNewestFirst(t *testing.T) {
	conn := setupTestDB(t)
	clk := &testClock{now: time.Date(2025, 10, 1, 9, 0, 0, 0, time.UTC)}
	svc := newTestService(t, conn, clk)

	older, err := svc.Create(context.Background(), validDraft(t))
	if err != nil {
		t.Fatalf("create older: %v", err)
	}
	clk.now = clk.now.Add(48 * time.Hour)
	newer, err := svc.Create(context.Background(), validDraft(t))
	if err != nil {
		t.Fatalf("create newer: %v", err)
	}

	invoices, err := svc.List(context.Background())
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(invoices) != 2 {
		t.Fatalf("expected 2 invoices, got %d", len(invoices))
	}
	if invoices[0].ID != newer.ID || invoices[1].ID != older.ID {
		t.Fatal("expected newest invoice first")
	}
	if len(invoices[0].Items) == 0 {
		t.Fatal("expected items preloaded on list")
	}
}

func TestGetByIDNotFound(t *testing.T) {
	conn := setupTestDB(t)
	svc := newTestService(t, conn, &testClock{now: time.Now()})

	if _, err := svc.GetByID(context.Background(), "123456789"); !errors.Is(err, invoicedomain.ErrInvoiceNotFound) {
		t.Fatalf("expected not found, got %v", err)
	}
	if _, err := svc.GetByID(context.Background(), "not-a-number"); !errors.Is(err, invoicedomain.ErrInvalidInvoiceID) {
		t.Fatalf("expected invalid id, got %v", err)
	}
}

func TestDeleteRemovesInvoiceAndItems(t *testing.T) {
	conn := setupTestDB(t)
	svc := newTestService(t, conn, &testClock{now: time.Now()})

	created, err := svc.Create(context.Background(), validDraft(t))
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	if err := svc.Delete(context.Background(), created.ID.String()); err != nil {
		t.Fatalf("delete: %v", err)
	}

	invoices, err := svc.List(context.Background())
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(invoices) != 0 {
		t.Fatalf("expected empty list after delete, got %d", len(invoices))
	}

	var orphans int64
	if err := conn.Model(&invoicedomain.InvoiceItem{}).Where("invoice_id = ?", created.ID).Count(&orphans).Error; err != nil {
		t.Fatalf("count items: %v", err)
	}
	if orphans != 0 {
		t.Fatalf("expected no orphan items, got %d", orphans)
	}

	if err := svc.Delete(context.Background(), created.ID.String()); !errors.Is(err, invoicedomain.ErrInvoiceNotFound) {
		t.Fatalf("expected not found on second delete, got %v", err)
	}
}

func TestUpdateRecomputesLikeCreate(t *testing.T) {
	conn := setupTestDB(t)
	clk := &testClock{now: time.Date(2025, 10, 23, 22, 49, 23, 0, time.UTC)}
	svc := newTestService(t, conn, clk)

	created, err := svc.Create(context.Background(), validDraft(t))
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	replacement := invoicedomain.NewDraft()
	replacement.Customer = created.Customer
	if err := replacement.AddItem(invoicedomain.ProductSnapshot{
		ID: 1, Name: "Laptop Dell XPS 13", Price: decimal.RequireFromString("1299.99"),
	}, 2); err != nil {
		t.Fatalf("add: %v", err)
	}
	replacement.SetDiscount(decimal.RequireFromString("100.00"))

	clk.now = clk.now.Add(time.Hour)
	updated, err := svc.Update(context.Background(), created.ID.String(), replacement)
	if err != nil {
		t.Fatalf("update: %v", err)
	}

	if updated.Number != created.Number {
		t.Fatalf("invoice number changed on update: %q -> %q", created.Number, updated.Number)
	}
	if !updated.InvoiceDate.Equal(created.InvoiceDate) {
		t.Fatal("invoice date must not change on update")
	}
	if want := decimal.RequireFromString("2599.98"); !updated.SubTotal.Equal(want) {
		t.Fatalf("subtotal %s, want %s", updated.SubTotal, want)
	}
	if want := decimal.RequireFromString("2499.98"); !updated.Total.Equal(want) {
		t.Fatalf("total %s, want %s", updated.Total, want)
	}
	if len(updated.Items) != 1 {
		t.Fatalf("expected replaced item set, got %d items", len(updated.Items))
	}
}
