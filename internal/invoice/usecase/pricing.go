package usecase

import (
	"invoicepilot/internal/domain"
	"invoicepilot/internal/finance"
)

// applyTotals fills the invoice amounts from its items. Stored amounts are
// rounded to cents and the total is derived from the rounded parts so
// Total == (Subtotal - Discount) + GST holds exactly.
func applyTotals(inv *domain.Invoice, items []domain.LineItem, gstRate, discount float64) {
	subtotal := finance.Round2(finance.Subtotal(items))
	totals := finance.CalculateInvoiceTotal(subtotal, gstRate, discount)

	inv.GSTRate = gstRate
	inv.Subtotal = subtotal
	inv.Discount = finance.Round2(totals.DiscountAmount)
	inv.GSTAmount = finance.Round2(totals.GSTAmount)
	inv.TotalAmount = finance.Round2(inv.Subtotal - inv.Discount + inv.GSTAmount)
}
