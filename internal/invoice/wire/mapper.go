// Package wire reconciles the historical wire shapes of an invoice with
// the canonical model. Producers have emitted both a nested customer
// object and flat customer-prefixed fields, with inconsistent letter
// casing; everything outside this package only ever sees the canonical
// form.
package wire

import (
	"encoding/json"
	"strings"
	"time"

	"github.com/bwmarrin/snowflake"
	"github.com/shopspring/decimal"

	invoicedomain "github.com/Kavindya2002/mc-computers-invoicing/internal/invoice/domain"
	"github.com/Kavindya2002/mc-computers-invoicing/internal/money"
)

// DecodeInvoice adapts a decoded JSON object into the canonical invoice.
// Missing strings default to empty, missing numbers to zero. Subtotal and
// total are recomputed only when the payload omits them; values the server
// did supply are kept as-is.
func DecodeInvoice(raw map[string]any) invoicedomain.Invoice {
	var invoice invoicedomain.Invoice

	if id, ok := lookupInt(raw, "id"); ok {
		invoice.ID = snowflake.ID(id)
	}
	invoice.Number = lookupString(raw, "invoiceNumber", "number")
	if ts, ok := lookupTime(raw, "invoiceDate"); ok {
		invoice.InvoiceDate = ts
	}
	invoice.Customer = decodeCustomer(raw)
	invoice.Items = decodeItems(raw)

	amounts := make([]decimal.Decimal, 0, len(invoice.Items))
	for _, item := range invoice.Items {
		amounts = append(amounts, item.Amount)
	}

	if subTotal, ok := lookupDecimal(raw, "subTotal"); ok {
		invoice.SubTotal = subTotal
	} else {
		invoice.SubTotal = money.Subtotal(amounts)
	}
	invoice.Discount, _ = lookupDecimalDefault(raw, "discount")
	if total, ok := lookupDecimal(raw, "total"); ok {
		invoice.Total = total
	} else {
		_, invoice.Total = money.ApplyDiscount(invoice.SubTotal, invoice.Discount)
	}
	return invoice
}

// EncodeDraft produces the POST/PUT body the API accepts.
func EncodeDraft(draft *invoicedomain.Draft) map[string]any {
	items := make([]map[string]any, 0, len(draft.Items))
	for _, item := range draft.Items {
		items = append(items, map[string]any{
			"ProductId":   item.ProductID,
			"ProductName": item.ProductName,
			"Description": item.Description,
			"Quantity":    item.Quantity,
			"Price":       item.Price,
		})
	}
	return map[string]any{
		"CustomerName":    draft.Customer.Name,
		"CustomerEmail":   draft.Customer.Email,
		"CustomerPhone":   draft.Customer.Phone,
		"CustomerAddress": draft.Customer.Address,
		"Discount":        draft.Discount,
		"Items":           items,
	}
}

func decodeCustomer(raw map[string]any) invoicedomain.Customer {
	if nested, ok := lookupMap(raw, "customer"); ok {
		return invoicedomain.Customer{
			Name:    lookupString(nested, "name"),
			Email:   lookupString(nested, "email"),
			Phone:   lookupString(nested, "phone"),
			Address: lookupString(nested, "address"),
		}
	}
	return invoicedomain.Customer{
		Name:    lookupString(raw, "customerName"),
		Email:   lookupString(raw, "customerEmail"),
		Phone:   lookupString(raw, "customerPhone"),
		Address: lookupString(raw, "customerAddress"),
	}
}

func decodeItems(raw map[string]any) []invoicedomain.InvoiceItem {
	entries, ok := lookupSlice(raw, "items")
	if !ok {
		return nil
	}
	items := make([]invoicedomain.InvoiceItem, 0, len(entries))
	for _, entry := range entries {
		obj, ok := entry.(map[string]any)
		if !ok {
			continue
		}
		item := invoicedomain.InvoiceItem{
			ProductName: lookupString(obj, "productName"),
			Description: lookupString(obj, "description"),
		}
		if id, ok := lookupInt(obj, "id"); ok {
			item.ID = snowflake.ID(id)
		}
		if productID, ok := lookupInt(obj, "productId"); ok {
			item.ProductID = productID
		}
		if quantity, ok := lookupInt(obj, "quantity"); ok {
			item.Quantity = int(quantity)
		}
		item.Price, _ = lookupDecimalDefault(obj, "price")
		if amount, ok := lookupDecimal(obj, "amount"); ok {
			item.Amount = amount
		} else if computed, err := money.LineAmount(item.Quantity, item.Price); err == nil {
			item.Amount = computed
		}
		items = append(items, item)
	}
	return items
}

// lookup finds a key ignoring case. The first matching variant wins.
func lookup(raw map[string]any, key string) (any, bool) {
	if value, ok := raw[key]; ok {
		return value, true
	}
	for k, value := range raw {
		if strings.EqualFold(k, key) {
			return value, true
		}
	}
	return nil, false
}

func lookupString(raw map[string]any, keys ...string) string {
	for _, key := range keys {
		if value, ok := lookup(raw, key); ok {
			if s, ok := value.(string); ok {
				return s
			}
		}
	}
	return ""
}

func lookupMap(raw map[string]any, key string) (map[string]any, bool) {
	value, ok := lookup(raw, key)
	if !ok {
		return nil, false
	}
	m, ok := value.(map[string]any)
	return m, ok
}

func lookupSlice(raw map[string]any, key string) ([]any, bool) {
	value, ok := lookup(raw, key)
	if !ok {
		return nil, false
	}
	s, ok := value.([]any)
	return s, ok
}

func lookupInt(raw map[string]any, key string) (int64, bool) {
	value, ok := lookup(raw, key)
	if !ok {
		return 0, false
	}
	switch v := value.(type) {
	case json.Number:
		parsed, err := v.Int64()
		if err != nil {
			return 0, false
		}
		return parsed, true
	case float64:
		return int64(v), true
	case int:
		return int64(v), true
	case int64:
		return v, true
	case string:
		parsed, err := decimal.NewFromString(strings.TrimSpace(v))
		if err != nil {
			return 0, false
		}
		return parsed.IntPart(), true
	}
	return 0, false
}

func lookupDecimal(raw map[string]any, key string) (decimal.Decimal, bool) {
	value, ok := lookup(raw, key)
	if !ok || value == nil {
		return decimal.Zero, false
	}
	switch v := value.(type) {
	case json.Number:
		parsed, err := decimal.NewFromString(v.String())
		if err != nil {
			return decimal.Zero, false
		}
		return parsed.Round(2), true
	case float64:
		return decimal.NewFromFloat(v).Round(2), true
	case string:
		parsed, err := decimal.NewFromString(strings.TrimSpace(v))
		if err != nil {
			return decimal.Zero, false
		}
		return parsed.Round(2), true
	}
	return decimal.Zero, false
}

func lookupDecimalDefault(raw map[string]any, key string) (decimal.Decimal, bool) {
	if value, ok := lookupDecimal(raw, key); ok {
		return value, true
	}
	return decimal.Zero, false
}

func lookupTime(raw map[string]any, key string) (time.Time, bool) {
	value, ok := lookup(raw, key)
	if !ok {
		return time.Time{}, false
	}
	s, ok := value.(string)
	if !ok {
		return time.Time{}, false
	}
	for _, layout := range []string{time.RFC3339Nano, time.RFC3339, "2006-01-02T15:04:05"} {
		if ts, err := time.Parse(layout, s); err == nil {
			return ts, true
		}
	}
	return time.Time{}, false
}
