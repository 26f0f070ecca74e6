package dto

import "time"

type LineItemRequest struct {
	Name     string  `json:"name" validate:"required,max=100"`
	Quantity int     `json:"quantity" validate:"min=1,max=1000000"`
	Price    float64 `json:"price" validate:"min=0,max=1e12"`
}

type CreateInvoiceRequest struct {
	OrderID    string            `json:"orderId" validate:"required"`
	CompanyID  string            `json:"companyId" validate:"required"`
	CustomerID string            `json:"customerId" validate:"required"`
	GSTRate    float64           `json:"gstRate" validate:"min=0,max=100"`
	Discount   float64           `json:"discount" validate:"min=0,max=1e12"`
	DueDate    *time.Time        `json:"dueDate"`
	Notes      *string           `json:"notes" validate:"omitempty,max=1000"`
	CreatedBy  string            `json:"createdBy" validate:"required"`
	Items      []LineItemRequest `json:"items" validate:"required,min=1,max=100,dive"`
}

type GenerateInvoiceRequest struct {
	InvoiceID string `json:"invoiceId" validate:"required"`
}

type EmailInvoiceRequest struct {
	InvoiceID string `json:"invoiceId" validate:"required"`
	To        string `json:"to" validate:"omitempty,email"`
}

type PreviewCompany struct {
	Name         string `json:"name" validate:"required,min=2,max=100"`
	GSTNumber    string `json:"gstNumber" validate:"required,gstin"`
	Address      string `json:"address" validate:"required,min=5,max=255"`
	ContactEmail string `json:"contactEmail" validate:"required,email"`
	ContactPhone string `json:"contactPhone"`
}

type PreviewCustomer struct {
	Name      string `json:"name" validate:"required,min=2,max=100"`
	Email     string `json:"email" validate:"required,email"`
	Phone     string `json:"phone" validate:"required,min=10,max=15"`
	Address   string `json:"address" validate:"required,min=5,max=255"`
	GSTNumber string `json:"gstNumber" validate:"omitempty,gstin"`
}

// PreviewInvoiceRequest carries a complete document inline so it can be
// rendered without any stored records.
type PreviewInvoiceRequest struct {
	Company  PreviewCompany    `json:"company"`
	Customer PreviewCustomer   `json:"customer"`
	GSTRate  float64           `json:"gstRate" validate:"min=0,max=100"`
	Discount float64           `json:"discount" validate:"min=0,max=1e12"`
	DueDate  *time.Time        `json:"dueDate"`
	Notes    *string           `json:"notes" validate:"omitempty,max=1000"`
	Items    []LineItemRequest `json:"items" validate:"required,min=1,max=100,dive"`
}
