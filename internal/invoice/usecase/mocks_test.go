package usecase

import (
	"context"

	"invoicepilot/internal/domain"
	apperrors "invoicepilot/internal/errors"
	"invoicepilot/internal/notification"
)

type mockCompanyRepository struct {
	FindByIDFunc func(ctx context.Context, id string) (*domain.Company, error)
}

func (m *mockCompanyRepository) FindByID(ctx context.Context, id string) (*domain.Company, error) {
	return m.FindByIDFunc(ctx, id)
}

type mockCustomerRepository struct {
	FindByIDFunc func(ctx context.Context, id string) (*domain.Customer, error)
}

func (m *mockCustomerRepository) FindByID(ctx context.Context, id string) (*domain.Customer, error) {
	return m.FindByIDFunc(ctx, id)
}

type mockInvoiceRepository struct {
	FindByIDFunc      func(ctx context.Context, id string) (*domain.Invoice, error)
	ListByCompanyFunc func(ctx context.Context, companyID string) ([]domain.Invoice, error)
}

func (m *mockInvoiceRepository) FindByID(ctx context.Context, id string) (*domain.Invoice, error) {
	return m.FindByIDFunc(ctx, id)
}

func (m *mockInvoiceRepository) ListByCompany(ctx context.Context, companyID string) ([]domain.Invoice, error) {
	return m.ListByCompanyFunc(ctx, companyID)
}

type mockLineItemRepository struct {
	FindByInvoiceIDFunc func(ctx context.Context, invoiceID string) ([]domain.LineItem, error)
}

func (m *mockLineItemRepository) FindByInvoiceID(ctx context.Context, invoiceID string) ([]domain.LineItem, error) {
	return m.FindByInvoiceIDFunc(ctx, invoiceID)
}

type mockRenderer struct {
	RenderFunc func(doc domain.InvoiceDocument) ([]byte, error)
	rendered   []domain.InvoiceDocument
}

func (m *mockRenderer) Render(doc domain.InvoiceDocument) ([]byte, error) {
	m.rendered = append(m.rendered, doc)
	if m.RenderFunc == nil {
		return []byte("%PDF-1.3 test"), nil
	}
	return m.RenderFunc(doc)
}

type mockMailer struct {
	SendInvoiceEmailFunc func(ctx context.Context, data notification.InvoiceEmailData, pdf []byte) error
	sent                 []notification.InvoiceEmailData
}

func (m *mockMailer) SendInvoiceEmail(ctx context.Context, data notification.InvoiceEmailData, pdf []byte) error {
	m.sent = append(m.sent, data)
	if m.SendInvoiceEmailFunc == nil {
		return nil
	}
	return m.SendInvoiceEmailFunc(ctx, data, pdf)
}

type fixedNumbers struct {
	number string
	seen   []string
}

func (f *fixedNumbers) InvoiceNumber(companyID string) string {
	f.seen = append(f.seen, companyID)
	return f.number
}

func strPtr(s string) *string {
	return &s
}

func testCompany() *domain.Company {
	return &domain.Company{
		ID:           "comp-1",
		Name:         "Acme Traders",
		GSTNumber:    "27AAPFU0939F1ZV",
		Address:      "12 MG Road, Pune",
		ContactEmail: "billing@acme.in",
		IsActive:     true,
	}
}

func testCustomer() *domain.Customer {
	return &domain.Customer{
		ID:        "cust-1",
		CompanyID: "comp-1",
		Name:      "John Doe",
		Email:     "john@example.com",
		Phone:     "9876543210",
		Address:   "1 Park Street",
		IsActive:  true,
	}
}

func companyRepoWith(c *domain.Company) *mockCompanyRepository {
	return &mockCompanyRepository{
		FindByIDFunc: func(ctx context.Context, id string) (*domain.Company, error) {
			if c == nil || id != c.ID {
				return nil, apperrors.NewNotFoundError("company " + id + " not found")
			}
			return c, nil
		},
	}
}

func customerRepoWith(c *domain.Customer) *mockCustomerRepository {
	return &mockCustomerRepository{
		FindByIDFunc: func(ctx context.Context, id string) (*domain.Customer, error) {
			if c == nil || id != c.ID {
				return nil, apperrors.NewNotFoundError("customer " + id + " not found")
			}
			return c, nil
		},
	}
}
