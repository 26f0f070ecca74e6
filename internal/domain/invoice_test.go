package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestInvoice_Creation(t *testing.T) {
	createdAt := time.Now()
	due := createdAt.AddDate(0, 0, 30)
	notes := "Payment within 30 days"

	invoice := Invoice{
		ID:            "inv-001",
		OrderID:       "ord-001",
		CompanyID:     "comp-001",
		CustomerID:    "cust-001",
		InvoiceNumber: "INV-COM-20240101-AB12CD34",
		GSTRate:       18,
		Subtotal:      10000,
		Discount:      500,
		GSTAmount:     1710,
		TotalAmount:   11210,
		Status:        InvoiceStatusUnpaid,
		DueDate:       &due,
		Notes:         &notes,
		CreatedAt:     createdAt,
		UpdatedAt:     createdAt,
		CreatedBy:     "admin-001",
	}

	assert.Equal(t, "inv-001", invoice.ID)
	assert.Equal(t, InvoiceStatusUnpaid, invoice.Status)
	assert.Equal(t, &due, invoice.DueDate)
	assert.True(t, invoice.HasNotes())
	assert.True(t, invoice.HasConsistentTotals())
}

func TestInvoice_HasConsistentTotals(t *testing.T) {
	tests := []struct {
		name    string
		invoice Invoice
		want    bool
	}{
		{
			name:    "discounted total",
			invoice: Invoice{Subtotal: 10000, Discount: 500, GSTAmount: 1710, TotalAmount: 11210},
			want:    true,
		},
		{
			name:    "no discount no tax",
			invoice: Invoice{Subtotal: 250, TotalAmount: 250},
			want:    true,
		},
		{
			name:    "rounded cents",
			invoice: Invoice{Subtotal: 99.99, GSTAmount: 17.9982, TotalAmount: 117.99},
			want:    true,
		},
		{
			name:    "total off",
			invoice: Invoice{Subtotal: 10000, Discount: 500, GSTAmount: 1800, TotalAmount: 11210},
			want:    false,
		},
		{
			name:    "discount exceeds subtotal",
			invoice: Invoice{Subtotal: 100, Discount: 150, TotalAmount: -50},
			want:    false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.invoice.HasConsistentTotals())
		})
	}
}

func TestInvoice_NullableFields(t *testing.T) {
	empty := ""
	invoice := Invoice{ID: "inv-002", Status: InvoiceStatusPaid}

	assert.Nil(t, invoice.DueDate)
	assert.Nil(t, invoice.PaidAt)
	assert.False(t, invoice.HasNotes())

	invoice.Notes = &empty
	assert.False(t, invoice.HasNotes())
}

func TestInvoiceStatus_Valid(t *testing.T) {
	assert.True(t, InvoiceStatusPaid.Valid())
	assert.True(t, InvoiceStatusUnpaid.Valid())
	assert.True(t, InvoiceStatusOverdue.Valid())
	assert.True(t, InvoiceStatusCancelled.Valid())
	assert.False(t, InvoiceStatus("draft").Valid())
	assert.False(t, InvoiceStatus("").Valid())
}

func TestLineItem_Amount(t *testing.T) {
	items := []LineItem{
		{Name: "Product A", Quantity: 2, Price: 2500},
		{Name: "Product B", Quantity: 1, Price: 5000},
		{Name: "Free sample", Quantity: 3, Price: 0},
	}

	assert.Equal(t, 5000.0, items[0].Amount())
	assert.Equal(t, 5000.0, items[1].Amount())
	assert.Equal(t, 0.0, items[2].Amount())
}

func TestCustomer_HasGSTNumber(t *testing.T) {
	gst := "27AAPPU1111H1A0"
	empty := ""

	assert.True(t, Customer{GSTNumber: &gst}.HasGSTNumber())
	assert.False(t, Customer{GSTNumber: &empty}.HasGSTNumber())
	assert.False(t, Customer{}.HasGSTNumber())
}
