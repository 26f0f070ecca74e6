package dto

import (
	"time"

	apperrors "invoicepilot/internal/errors"
)

type LineItemResponse struct {
	Name     string  `json:"name"`
	Quantity int     `json:"quantity"`
	Price    float64 `json:"price"`
	Amount   float64 `json:"amount"`
}

type InvoiceResponse struct {
	ID             string             `json:"id"`
	OrderID        string             `json:"orderId"`
	CompanyID      string             `json:"companyId"`
	CustomerID     string             `json:"customerId"`
	InvoiceNumber  string             `json:"invoiceNumber"`
	GSTRate        float64            `json:"gstRate"`
	Subtotal       float64            `json:"subtotal"`
	GSTAmount      float64            `json:"gstAmount"`
	Discount       float64            `json:"discount"`
	TotalAmount    float64            `json:"totalAmount"`
	TotalFormatted string             `json:"totalFormatted"`
	Status         string             `json:"status"`
	DueDate        *time.Time         `json:"dueDate,omitempty"`
	IsOverdue      *bool              `json:"isOverdue,omitempty"`
	DaysRemaining  *int               `json:"daysRemaining,omitempty"`
	Notes          *string            `json:"notes,omitempty"`
	PaidAt         *time.Time         `json:"paidAt,omitempty"`
	CreatedAt      time.Time          `json:"createdAt"`
	UpdatedAt      time.Time          `json:"updatedAt"`
	CreatedBy      string             `json:"createdBy"`
	Items          []LineItemResponse `json:"items,omitempty"`
}

type CreateInvoiceResponse struct {
	TraceID string          `json:"traceId"`
	Invoice InvoiceResponse `json:"invoice"`
}

type ListInvoicesResponse struct {
	TraceID  string            `json:"traceId"`
	Count    int               `json:"count"`
	Invoices []InvoiceResponse `json:"invoices"`
}

type EmailInvoiceResponse struct {
	TraceID       string    `json:"traceId"`
	InvoiceID     string    `json:"invoiceId"`
	InvoiceNumber string    `json:"invoiceNumber"`
	To            string    `json:"to"`
	Status        string    `json:"status"`
	Timestamp     time.Time `json:"timestamp"`
}

type ErrorResponse struct {
	TraceID   string                       `json:"traceId"`
	Status    int                          `json:"status"`
	Code      string                       `json:"error"`
	Message   string                       `json:"message"`
	Details   []apperrors.ValidationDetail `json:"details,omitempty"`
	Timestamp time.Time                    `json:"timestamp"`
}
