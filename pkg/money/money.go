// Package money centralizes order total arithmetic. The cart preview and
// the checkout flow both derive totals through this package so the two
// can never disagree.
package money

import "github.com/shopspring/decimal"

// TaxRate is the fixed 12% surcharge applied to every subtotal.
var TaxRate = decimal.New(12, -2)

// Totals breaks an amount into its charged parts.
type Totals struct {
	Subtotal decimal.Decimal
	Tax      decimal.Decimal
	Total    decimal.Decimal
}

// Itemize applies the tax rate to a subtotal.
func Itemize(subtotal decimal.Decimal) Totals {
	tax := subtotal.Mul(TaxRate)
	return Totals{
		Subtotal: subtotal,
		Tax:      tax,
		Total:    subtotal.Add(tax),
	}
}

// Line returns the extended price for a quantity of one product.
func Line(unitPrice decimal.Decimal, quantity int) decimal.Decimal {
	return unitPrice.Mul(decimal.NewFromInt(int64(quantity)))
}
