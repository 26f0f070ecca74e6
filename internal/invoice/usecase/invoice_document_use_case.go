package usecase

import (
	"context"
	"time"

	"go.uber.org/zap"

	"invoicepilot/internal/domain"
	apperrors "invoicepilot/internal/errors"
	"invoicepilot/internal/notification"
)

type LineItemRepository interface {
	FindByInvoiceID(ctx context.Context, invoiceID string) ([]domain.LineItem, error)
}

type Renderer interface {
	Render(doc domain.InvoiceDocument) ([]byte, error)
}

type InvoiceMailer interface {
	SendInvoiceEmail(ctx context.Context, data notification.InvoiceEmailData, pdf []byte) error
}

type GeneratedDocument struct {
	InvoiceNumber string
	PDF           []byte
}

type EmailReceipt struct {
	InvoiceID     string
	InvoiceNumber string
	To            string
}

type PreviewInput struct {
	Company  domain.Company
	Customer domain.Customer
	GSTRate  float64
	Discount float64
	DueDate  *time.Time
	Notes    *string
	Items    []domain.LineItem
}

// InvoiceDocumentUseCase runs the render pipeline: hydrate, render, and
// optionally deliver by email with the PDF attached.
type InvoiceDocumentUseCase struct {
	invoiceRepo  InvoiceRepository
	itemRepo     LineItemRepository
	customerRepo CustomerRepository
	companyRepo  CompanyRepository
	renderer     Renderer
	mailer       InvoiceMailer
	numbers      NumberGenerator
	logger       *zap.Logger
	now          func() time.Time
}

func NewInvoiceDocumentUseCase(
	invoiceRepo InvoiceRepository,
	itemRepo LineItemRepository,
	customerRepo CustomerRepository,
	companyRepo CompanyRepository,
	renderer Renderer,
	mailer InvoiceMailer,
	numbers NumberGenerator,
	logger *zap.Logger,
) *InvoiceDocumentUseCase {
	return &InvoiceDocumentUseCase{
		invoiceRepo:  invoiceRepo,
		itemRepo:     itemRepo,
		customerRepo: customerRepo,
		companyRepo:  companyRepo,
		renderer:     renderer,
		mailer:       mailer,
		numbers:      numbers,
		logger:       logger,
		now:          time.Now,
	}
}

// Load hydrates everything needed to render the invoice.
func (uc *InvoiceDocumentUseCase) Load(ctx context.Context, invoiceID string) (*domain.InvoiceDocument, error) {
	inv, err := uc.invoiceRepo.FindByID(ctx, invoiceID)
	if err != nil {
		return nil, err
	}

	company, err := uc.companyRepo.FindByID(ctx, inv.CompanyID)
	if err != nil {
		return nil, err
	}

	customer, err := uc.customerRepo.FindByID(ctx, inv.CustomerID)
	if err != nil {
		return nil, err
	}

	items, err := uc.itemRepo.FindByInvoiceID(ctx, inv.ID)
	if err != nil {
		return nil, err
	}

	if !inv.HasConsistentTotals() {
		uc.logger.Warn("stored invoice totals are inconsistent",
			zap.String("invoiceId", inv.ID),
			zap.Float64("subtotal", inv.Subtotal),
			zap.Float64("discount", inv.Discount),
			zap.Float64("gstAmount", inv.GSTAmount),
			zap.Float64("totalAmount", inv.TotalAmount),
		)
	}

	return &domain.InvoiceDocument{
		Invoice:  *inv,
		Customer: *customer,
		Company:  *company,
		Items:    items,
	}, nil
}

func (uc *InvoiceDocumentUseCase) Generate(ctx context.Context, invoiceID string) (*GeneratedDocument, error) {
	doc, err := uc.Load(ctx, invoiceID)
	if err != nil {
		return nil, err
	}

	pdf, err := uc.renderer.Render(*doc)
	if err != nil {
		return nil, err
	}

	uc.logger.Info("invoice generated",
		zap.String("invoiceId", invoiceID),
		zap.String("invoiceNumber", doc.Invoice.InvoiceNumber),
		zap.Int("bytes", len(pdf)),
	)

	return &GeneratedDocument{InvoiceNumber: doc.Invoice.InvoiceNumber, PDF: pdf}, nil
}

// Email renders the invoice and sends it to "to", or to the customer's
// address when "to" is empty.
func (uc *InvoiceDocumentUseCase) Email(ctx context.Context, invoiceID, to string) (*EmailReceipt, error) {
	doc, err := uc.Load(ctx, invoiceID)
	if err != nil {
		return nil, err
	}

	if to == "" {
		to = doc.Customer.Email
	}
	if to == "" {
		return nil, apperrors.NewValidationError("validation failed", apperrors.ValidationDetail{
			Field:   "to",
			Message: "customer has no email address; to is required",
		})
	}

	pdf, err := uc.renderer.Render(*doc)
	if err != nil {
		return nil, err
	}

	err = uc.mailer.SendInvoiceEmail(ctx, notification.InvoiceEmailData{
		To:            to,
		InvoiceNumber: doc.Invoice.InvoiceNumber,
		CustomerName:  doc.Customer.Name,
		CompanyName:   doc.Company.Name,
		TotalAmount:   doc.Invoice.TotalAmount,
		DueDate:       doc.Invoice.DueDate,
	}, pdf)
	if err != nil {
		return nil, err
	}

	return &EmailReceipt{
		InvoiceID:     invoiceID,
		InvoiceNumber: doc.Invoice.InvoiceNumber,
		To:            to,
	}, nil
}

// Preview renders an unsaved invoice built from in.
func (uc *InvoiceDocumentUseCase) Preview(ctx context.Context, in PreviewInput) (*GeneratedDocument, error) {
	now := uc.now().UTC()
	inv := domain.Invoice{
		InvoiceNumber: uc.numbers.InvoiceNumber(in.Company.Name),
		Status:        domain.InvoiceStatusUnpaid,
		DueDate:       in.DueDate,
		Notes:         in.Notes,
		CreatedAt:     now,
		UpdatedAt:     now,
	}
	applyTotals(&inv, in.Items, in.GSTRate, in.Discount)

	pdf, err := uc.renderer.Render(domain.InvoiceDocument{
		Invoice:  inv,
		Customer: in.Customer,
		Company:  in.Company,
		Items:    in.Items,
	})
	if err != nil {
		return nil, err
	}

	uc.logger.Debug("invoice preview rendered", zap.String("invoiceNumber", inv.InvoiceNumber), zap.Int("bytes", len(pdf)))
	return &GeneratedDocument{InvoiceNumber: inv.InvoiceNumber, PDF: pdf}, nil
}
