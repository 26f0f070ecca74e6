package usecase

import (
	"context"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"invoicepilot/internal/domain"
	apperrors "invoicepilot/internal/errors"
)

type CompanyRepository interface {
	FindByID(ctx context.Context, id string) (*domain.Company, error)
}

type CustomerRepository interface {
	FindByID(ctx context.Context, id string) (*domain.Customer, error)
}

type NumberGenerator interface {
	InvoiceNumber(companyID string) string
}

type DraftInvoiceInput struct {
	OrderID    string
	CompanyID  string
	CustomerID string
	GSTRate    float64
	Discount   float64
	DueDate    *time.Time
	Notes      *string
	CreatedBy  string
	Items      []domain.LineItem
}

// DraftInvoiceUseCase assembles a new unpaid invoice. Nothing is persisted.
type DraftInvoiceUseCase struct {
	companyRepo  CompanyRepository
	customerRepo CustomerRepository
	numbers      NumberGenerator
	logger       *zap.Logger
	newID        func() string
	now          func() time.Time
}

func NewDraftInvoiceUseCase(
	companyRepo CompanyRepository,
	customerRepo CustomerRepository,
	numbers NumberGenerator,
	logger *zap.Logger,
) *DraftInvoiceUseCase {
	return &DraftInvoiceUseCase{
		companyRepo:  companyRepo,
		customerRepo: customerRepo,
		numbers:      numbers,
		logger:       logger,
		newID:        uuid.NewString,
		now:          time.Now,
	}
}

func (uc *DraftInvoiceUseCase) Draft(ctx context.Context, in DraftInvoiceInput) (*domain.InvoiceDocument, error) {
	uc.logger.Info("draft invoice started",
		zap.String("companyId", in.CompanyID),
		zap.String("customerId", in.CustomerID),
		zap.Int("itemCount", len(in.Items)),
	)

	company, err := uc.companyRepo.FindByID(ctx, in.CompanyID)
	if err != nil {
		return nil, err
	}

	customer, err := uc.customerRepo.FindByID(ctx, in.CustomerID)
	if err != nil {
		return nil, err
	}

	if customer.CompanyID != company.ID {
		return nil, apperrors.NewValidationError("validation failed", apperrors.ValidationDetail{
			Field:   "customerId",
			Message: "customer does not belong to company",
		})
	}

	now := uc.now().UTC()
	inv := domain.Invoice{
		ID:            uc.newID(),
		OrderID:       in.OrderID,
		CompanyID:     company.ID,
		CustomerID:    customer.ID,
		InvoiceNumber: uc.numbers.InvoiceNumber(company.ID),
		Status:        domain.InvoiceStatusUnpaid,
		DueDate:       in.DueDate,
		Notes:         in.Notes,
		CreatedAt:     now,
		UpdatedAt:     now,
		CreatedBy:     in.CreatedBy,
	}
	applyTotals(&inv, in.Items, in.GSTRate, in.Discount)

	uc.logger.Info("invoice drafted",
		zap.String("invoiceId", inv.ID),
		zap.String("invoiceNumber", inv.InvoiceNumber),
		zap.Float64("totalAmount", inv.TotalAmount),
	)

	return &domain.InvoiceDocument{
		Invoice:  inv,
		Customer: *customer,
		Company:  *company,
		Items:    in.Items,
	}, nil
}
