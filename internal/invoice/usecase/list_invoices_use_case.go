package usecase

import (
	"context"

	"go.uber.org/zap"

	"invoicepilot/internal/domain"
)

type InvoiceRepository interface {
	FindByID(ctx context.Context, id string) (*domain.Invoice, error)
	ListByCompany(ctx context.Context, companyID string) ([]domain.Invoice, error)
}

type ListInvoicesUseCase struct {
	invoiceRepo InvoiceRepository
	logger      *zap.Logger
}

func NewListInvoicesUseCase(invoiceRepo InvoiceRepository, logger *zap.Logger) *ListInvoicesUseCase {
	return &ListInvoicesUseCase{
		invoiceRepo: invoiceRepo,
		logger:      logger,
	}
}

func (uc *ListInvoicesUseCase) List(ctx context.Context, companyID string) ([]domain.Invoice, error) {
	invoices, err := uc.invoiceRepo.ListByCompany(ctx, companyID)
	if err != nil {
		return nil, err
	}

	uc.logger.Debug("invoices listed", zap.String("companyId", companyID), zap.Int("count", len(invoices)))
	return invoices, nil
}
