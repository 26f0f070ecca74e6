package domain

import (
	"math"
	"time"
)

type InvoiceStatus string

const (
	InvoiceStatusPaid      InvoiceStatus = "paid"
	InvoiceStatusUnpaid    InvoiceStatus = "unpaid"
	InvoiceStatusOverdue   InvoiceStatus = "overdue"
	InvoiceStatusCancelled InvoiceStatus = "cancelled"
)

func (s InvoiceStatus) Valid() bool {
	switch s {
	case InvoiceStatusPaid, InvoiceStatusUnpaid, InvoiceStatusOverdue, InvoiceStatusCancelled:
		return true
	}
	return false
}

type Invoice struct {
	ID            string
	OrderID       string
	CompanyID     string
	CustomerID    string
	InvoiceNumber string
	GSTRate       float64
	Subtotal      float64
	GSTAmount     float64
	Discount      float64
	TotalAmount   float64
	Status        InvoiceStatus
	DueDate       *time.Time
	Notes         *string
	PaidAt        *time.Time
	CreatedAt     time.Time
	UpdatedAt     time.Time
	CreatedBy     string
}

// totalsTolerance absorbs float drift on amounts persisted with two decimals.
const totalsTolerance = 0.005

// HasConsistentTotals reports whether TotalAmount == (Subtotal - Discount) + GSTAmount
// and Discount does not exceed Subtotal.
func (i Invoice) HasConsistentTotals() bool {
	if i.Discount > i.Subtotal {
		return false
	}
	expected := (i.Subtotal - i.Discount) + i.GSTAmount
	return math.Abs(expected-i.TotalAmount) <= totalsTolerance
}

func (i Invoice) HasNotes() bool {
	return i.Notes != nil && *i.Notes != ""
}

// LineItem is a priced entry on an invoice. It is not persisted by the core.
type LineItem struct {
	Name     string
	Quantity int
	Price    float64
}

func (l LineItem) Amount() float64 {
	return float64(l.Quantity) * l.Price
}

// InvoiceDocument is everything needed to render one invoice.
type InvoiceDocument struct {
	Invoice  Invoice
	Customer Customer
	Company  Company
	Items    []LineItem
}
