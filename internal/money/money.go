// Package money holds the invoice arithmetic shared by the draft editor
// and the persistence gateway. Both sides must compute totals through
// these functions; the server-side result is the one that is stored.
package money

import (
	"errors"

	"github.com/shopspring/decimal"
)

var ErrNegativeQuantity = errors.New("negative_quantity")

// LineAmount returns quantity multiplied by unit price, rounded to two
// decimal places.
func LineAmount(quantity int, price decimal.Decimal) (decimal.Decimal, error) {
	if quantity < 0 {
		return decimal.Zero, ErrNegativeQuantity
	}
	return price.Mul(decimal.NewFromInt(int64(quantity))).Round(2), nil
}

// Subtotal sums the line amounts. An empty slice yields zero.
func Subtotal(amounts []decimal.Decimal) decimal.Decimal {
	total := decimal.Zero
	for _, amount := range amounts {
		total = total.Add(amount)
	}
	return total.Round(2)
}

// ApplyDiscount clamps discount into [0, subtotal] and returns the clamped
// value together with the resulting total. Discounts are never rejected,
// only clamped.
func ApplyDiscount(subtotal, discount decimal.Decimal) (decimal.Decimal, decimal.Decimal) {
	if discount.IsNegative() {
		discount = decimal.Zero
	}
	if discount.GreaterThan(subtotal) {
		discount = subtotal
	}
	discount = discount.Round(2)
	return discount, subtotal.Sub(discount).Round(2)
}
