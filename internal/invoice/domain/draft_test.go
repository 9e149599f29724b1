package domain

import (
	"errors"
	"testing"

	"github.com/shopspring/decimal"
)

var (
	laptop = ProductSnapshot{ID: 1, Name: "Laptop Dell XPS 13", Description: "13-inch, 16GB RAM, 512GB SSD", Price: decimal.RequireFromString("1299.99")}
	mouse  = ProductSnapshot{ID: 4, Name: "Wireless Mouse", Description: "Ergonomic wireless mouse", Price: decimal.RequireFromString("29.99")}
)

func TestAddItemMergesSameProduct(t *testing.T) {
	draft := NewDraft()
	if err := draft.AddItem(mouse, 1); err != nil {
		t.Fatalf("add: %v", err)
	}
	if err := draft.AddItem(mouse, 2); err != nil {
		t.Fatalf("add again: %v", err)
	}

	if len(draft.Items) != 1 {
		t.Fatalf("expected one merged line, got %d", len(draft.Items))
	}
	if draft.Items[0].Quantity != 3 {
		t.Fatalf("expected quantity 3, got %d", draft.Items[0].Quantity)
	}
	if want := decimal.RequireFromString("89.97"); !draft.Items[0].Amount.Equal(want) {
		t.Fatalf("amount %s, want %s", draft.Items[0].Amount, want)
	}
	if !draft.SubTotal.Equal(draft.Items[0].Amount) {
		t.Fatalf("subtotal %s diverged from line amount", draft.SubTotal)
	}
}

func TestAddItemDefaultsQuantityToOne(t *testing.T) {
	draft := NewDraft()
	if err := draft.AddItem(mouse, 0); err != nil {
		t.Fatalf("add: %v", err)
	}
	if draft.Items[0].Quantity != 1 {
		t.Fatalf("expected quantity 1, got %d", draft.Items[0].Quantity)
	}
}

func TestRemoveItemRecomputesTotals(t *testing.T) {
	draft := NewDraft()
	if err := draft.AddItem(laptop, 1); err != nil {
		t.Fatalf("add laptop: %v", err)
	}
	if err := draft.AddItem(mouse, 1); err != nil {
		t.Fatalf("add mouse: %v", err)
	}

	if err := draft.RemoveItem(0); err != nil {
		t.Fatalf("remove: %v", err)
	}
	if len(draft.Items) != 1 {
		t.Fatalf("expected one line, got %d", len(draft.Items))
	}
	if !draft.SubTotal.Equal(mouse.Price) {
		t.Fatalf("subtotal %s, want %s", draft.SubTotal, mouse.Price)
	}

	if err := draft.RemoveItem(5); !errors.Is(err, ErrItemIndexOutOfRange) {
		t.Fatalf("expected out of range error, got %v", err)
	}
}

func TestUpdateItemQuantityCoercesToMinimumOne(t *testing.T) {
	draft := NewDraft()
	if err := draft.AddItem(mouse, 4); err != nil {
		t.Fatalf("add: %v", err)
	}
	if err := draft.UpdateItemQuantity(0, -3); err != nil {
		t.Fatalf("update: %v", err)
	}
	if draft.Items[0].Quantity != 1 {
		t.Fatalf("expected coerced quantity 1, got %d", draft.Items[0].Quantity)
	}
	if !draft.Items[0].Amount.Equal(mouse.Price) {
		t.Fatalf("amount %s, want %s", draft.Items[0].Amount, mouse.Price)
	}
}

func TestSetDiscountClampsIntoRange(t *testing.T) {
	draft := NewDraft()
	if err := draft.AddItem(mouse, 1); err != nil {
		t.Fatalf("add: %v", err)
	}

	draft.SetDiscount(decimal.RequireFromString("100.00"))
	if !draft.Discount.Equal(draft.SubTotal) {
		t.Fatalf("discount %s should clamp to subtotal %s", draft.Discount, draft.SubTotal)
	}
	if !draft.Total.IsZero() {
		t.Fatalf("total %s, want 0", draft.Total)
	}

	draft.SetDiscount(decimal.RequireFromString("-10"))
	if !draft.Discount.IsZero() {
		t.Fatalf("negative discount should clamp to zero, got %s", draft.Discount)
	}
	if !draft.Total.Equal(draft.SubTotal) {
		t.Fatalf("total %s, want %s", draft.Total, draft.SubTotal)
	}
}

func TestValidateForCommit(t *testing.T) {
	draft := NewDraft()
	if err := draft.ValidateForCommit(); !errors.Is(err, ErrEmptyInvoice) {
		t.Fatalf("expected empty invoice error, got %v", err)
	}

	if err := draft.AddItem(mouse, 1); err != nil {
		t.Fatalf("add: %v", err)
	}
	if err := draft.ValidateForCommit(); !errors.Is(err, ErrMissingCustomerInfo) {
		t.Fatalf("expected missing customer error, got %v", err)
	}

	draft.Customer = Customer{Name: "Nadeesha Perera", Phone: "+94 77 123 4567"}
	if err := draft.ValidateForCommit(); err != nil {
		t.Fatalf("expected valid draft, got %v", err)
	}
}
