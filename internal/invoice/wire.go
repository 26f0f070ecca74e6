package invoice

import (
	"database/sql"
	"time"

	"go.uber.org/zap"

	companyrepo "invoicepilot/internal/company/repository"
	"invoicepilot/internal/config"
	customerrepo "invoicepilot/internal/customer/repository"
	"invoicepilot/internal/document"
	"invoicepilot/internal/identifier"
	"invoicepilot/internal/invoice/controller"
	invoicerepo "invoicepilot/internal/invoice/repository"
	"invoicepilot/internal/invoice/usecase"
	"invoicepilot/internal/notification"
)

func NewModule(db *sql.DB, cfg *config.Config, transport notification.Transport, logger *zap.Logger) *controller.InvoiceController {
	invoiceRepo := invoicerepo.NewMySQLInvoiceRepository(db)
	itemRepo := invoicerepo.NewMySQLLineItemRepository(db)
	customerRepo := customerrepo.NewMySQLCustomerRepository(db)
	companyRepo := companyrepo.NewMySQLCompanyRepository(db)

	numbers := identifier.New()
	renderer := document.NewRenderer(cfg.App.PDFCurrencySymbol, logger)
	formatter := notification.NewFormatter(cfg.App.CurrencySymbol, time.Now)
	mailer := notification.NewMailer(transport, formatter, cfg.Mail.From, logger)

	draftUC := usecase.NewDraftInvoiceUseCase(companyRepo, customerRepo, numbers, logger)
	listUC := usecase.NewListInvoicesUseCase(invoiceRepo, logger)
	documentUC := usecase.NewInvoiceDocumentUseCase(
		invoiceRepo,
		itemRepo,
		customerRepo,
		companyRepo,
		renderer,
		mailer,
		numbers,
		logger,
	)

	return controller.NewInvoiceController(draftUC, listUC, documentUC, cfg.App.CurrencySymbol, logger)
}
