// Package finance holds the invoice arithmetic: discount, GST and totals.
//
// The functions do not validate their input. Callers validate at the request
// boundary; negative or otherwise meaningless input flows through the same
// formulas and produces equally meaningless (but consistent) output.
package finance

import (
	"math"

	"invoicepilot/internal/domain"
)

type Totals struct {
	DiscountAmount        float64 `json:"discountAmount"`
	SubtotalAfterDiscount float64 `json:"subtotalAfterDiscount"`
	GSTAmount             float64 `json:"gstAmount"`
	TotalAmount           float64 `json:"totalAmount"`
}

func CalculatePercentage(value, percentage float64) float64 {
	return value * percentage / 100
}

// CalculateDiscount returns the discount to subtract from amount. A fixed
// discount is clamped to amount.
func CalculateDiscount(amount, discount float64, isPercentage bool) float64 {
	if isPercentage {
		return CalculatePercentage(amount, discount)
	}
	return math.Min(discount, amount)
}

func CalculateGST(amount, rate float64) float64 {
	return amount * rate / 100
}

// CalculateInvoiceTotal applies a fixed discount to subtotal, then GST on the
// discounted subtotal.
func CalculateInvoiceTotal(subtotal, gstRate, discount float64) Totals {
	discountAmount := CalculateDiscount(subtotal, discount, false)
	subtotalAfterDiscount := subtotal - discountAmount
	gstAmount := CalculateGST(subtotalAfterDiscount, gstRate)

	return Totals{
		DiscountAmount:        discountAmount,
		SubtotalAfterDiscount: subtotalAfterDiscount,
		GSTAmount:             gstAmount,
		TotalAmount:           subtotalAfterDiscount + gstAmount,
	}
}

func Subtotal(items []domain.LineItem) float64 {
	var sum float64
	for _, item := range items {
		sum += item.Amount()
	}
	return sum
}
