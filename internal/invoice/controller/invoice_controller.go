package controller

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"invoicepilot/internal/domain"
	"invoicepilot/internal/dto"
	apperrors "invoicepilot/internal/errors"
	"invoicepilot/internal/finance"
	"invoicepilot/internal/invoice/usecase"
)

const traceHeader = "X-Trace-Id"

type DraftUseCase interface {
	Draft(ctx context.Context, in usecase.DraftInvoiceInput) (*domain.InvoiceDocument, error)
}

type ListUseCase interface {
	List(ctx context.Context, companyID string) ([]domain.Invoice, error)
}

type DocumentUseCase interface {
	Generate(ctx context.Context, invoiceID string) (*usecase.GeneratedDocument, error)
	Email(ctx context.Context, invoiceID, to string) (*usecase.EmailReceipt, error)
	Preview(ctx context.Context, in usecase.PreviewInput) (*usecase.GeneratedDocument, error)
}

type InvoiceController struct {
	draft          DraftUseCase
	list           ListUseCase
	documents      DocumentUseCase
	validate       *validator.Validate
	currencySymbol string
	now            func() time.Time
	logger         *zap.Logger
}

func NewInvoiceController(draft DraftUseCase, list ListUseCase, documents DocumentUseCase, currencySymbol string, logger *zap.Logger) *InvoiceController {
	return &InvoiceController{
		draft:          draft,
		list:           list,
		documents:      documents,
		validate:       newValidator(),
		currencySymbol: currencySymbol,
		now:            time.Now,
		logger:         logger,
	}
}

func (c *InvoiceController) CreateInvoice(w http.ResponseWriter, r *http.Request) {
	traceID, logger := c.trace(w)

	var req dto.CreateInvoiceRequest
	if !c.decode(w, r, traceID, logger, &req) {
		return
	}

	doc, err := c.draft.Draft(r.Context(), usecase.DraftInvoiceInput{
		OrderID:    req.OrderID,
		CompanyID:  req.CompanyID,
		CustomerID: req.CustomerID,
		GSTRate:    req.GSTRate,
		Discount:   req.Discount,
		DueDate:    req.DueDate,
		Notes:      req.Notes,
		CreatedBy:  req.CreatedBy,
		Items:      toLineItems(req.Items),
	})
	if err != nil {
		c.handleUseCaseError(w, traceID, err, logger)
		return
	}

	c.writeJSON(w, http.StatusCreated, dto.CreateInvoiceResponse{
		TraceID: traceID,
		Invoice: c.toInvoiceResponse(doc.Invoice, doc.Items),
	})
}

func (c *InvoiceController) ListInvoices(w http.ResponseWriter, r *http.Request) {
	traceID, logger := c.trace(w)

	companyID := r.URL.Query().Get("companyId")
	if companyID == "" {
		c.writeValidationError(w, traceID, "validation failed", apperrors.ValidationDetail{
			Field:   "companyId",
			Message: "companyId is required",
		})
		return
	}

	invoices, err := c.list.List(r.Context(), companyID)
	if err != nil {
		c.handleUseCaseError(w, traceID, err, logger)
		return
	}

	resp := dto.ListInvoicesResponse{
		TraceID:  traceID,
		Count:    len(invoices),
		Invoices: make([]dto.InvoiceResponse, len(invoices)),
	}
	for i, inv := range invoices {
		resp.Invoices[i] = c.toInvoiceResponse(inv, nil)
	}

	c.writeJSON(w, http.StatusOK, resp)
}

func (c *InvoiceController) GenerateInvoice(w http.ResponseWriter, r *http.Request) {
	traceID, logger := c.trace(w)

	var req dto.GenerateInvoiceRequest
	if !c.decode(w, r, traceID, logger, &req) {
		return
	}

	out, err := c.documents.Generate(r.Context(), req.InvoiceID)
	if err != nil {
		c.handleUseCaseError(w, traceID, err, logger)
		return
	}

	c.writePDF(w, "attachment", out)
}

func (c *InvoiceController) EmailInvoice(w http.ResponseWriter, r *http.Request) {
	traceID, logger := c.trace(w)

	var req dto.EmailInvoiceRequest
	if !c.decode(w, r, traceID, logger, &req) {
		return
	}

	receipt, err := c.documents.Email(r.Context(), req.InvoiceID, req.To)
	if err != nil {
		c.handleUseCaseError(w, traceID, err, logger)
		return
	}

	c.writeJSON(w, http.StatusOK, dto.EmailInvoiceResponse{
		TraceID:       traceID,
		InvoiceID:     receipt.InvoiceID,
		InvoiceNumber: receipt.InvoiceNumber,
		To:            receipt.To,
		Status:        "sent",
		Timestamp:     time.Now().UTC(),
	})
}

func (c *InvoiceController) PreviewInvoice(w http.ResponseWriter, r *http.Request) {
	traceID, logger := c.trace(w)

	var req dto.PreviewInvoiceRequest
	if !c.decode(w, r, traceID, logger, &req) {
		return
	}

	in := usecase.PreviewInput{
		Company: domain.Company{
			Name:         req.Company.Name,
			GSTNumber:    req.Company.GSTNumber,
			Address:      req.Company.Address,
			ContactEmail: req.Company.ContactEmail,
		},
		Customer: domain.Customer{
			Name:    req.Customer.Name,
			Email:   req.Customer.Email,
			Phone:   req.Customer.Phone,
			Address: req.Customer.Address,
		},
		GSTRate:  req.GSTRate,
		Discount: req.Discount,
		DueDate:  req.DueDate,
		Notes:    req.Notes,
		Items:    toLineItems(req.Items),
	}
	if req.Company.ContactPhone != "" {
		in.Company.ContactPhone = &req.Company.ContactPhone
	}
	if req.Customer.GSTNumber != "" {
		in.Customer.GSTNumber = &req.Customer.GSTNumber
	}

	out, err := c.documents.Preview(r.Context(), in)
	if err != nil {
		c.handleUseCaseError(w, traceID, err, logger)
		return
	}

	c.writePDF(w, "inline", out)
}

// trace assigns the request trace id, echoes it in the response header and
// returns a logger scoped to it.
func (c *InvoiceController) trace(w http.ResponseWriter) (string, *zap.Logger) {
	traceID := uuid.New().String()
	w.Header().Set(traceHeader, traceID)
	return traceID, c.logger.With(zap.String("traceId", traceID))
}

// decode reads and validates the JSON body into dst. It writes the 400
// response itself and reports false when the request cannot proceed.
func (c *InvoiceController) decode(w http.ResponseWriter, r *http.Request, traceID string, logger *zap.Logger, dst any) bool {
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		logger.Warn("invalid JSON body", zap.Error(err))
		c.writeValidationError(w, traceID, "invalid JSON body", apperrors.ValidationDetail{
			Field:   "body",
			Message: "request body must be valid JSON",
		})
		return false
	}

	if err := validateRequest(c.validate, dst); err != nil {
		if ve, ok := apperrors.IsValidationError(err); ok {
			logger.Info("request validation failed", zap.Int("violations", len(ve.Details)))
			c.writeValidationError(w, traceID, ve.Message, ve.Details...)
			return false
		}
		logger.Error("validator failed", zap.Error(err))
		c.writeErrorResponse(w, traceID, http.StatusInternalServerError, "INTERNAL_ERROR", "an unexpected error occurred")
		return false
	}

	return true
}

func (c *InvoiceController) handleUseCaseError(w http.ResponseWriter, traceID string, err error, logger *zap.Logger) {
	if ve, ok := apperrors.IsValidationError(err); ok {
		c.writeValidationError(w, traceID, ve.Message, ve.Details...)
		return
	}

	if _, ok := apperrors.IsNotFoundError(err); ok {
		logger.Info("resource not found", zap.Error(err))
		c.writeErrorResponse(w, traceID, http.StatusNotFound, "NOT_FOUND", err.Error())
		return
	}

	if _, ok := apperrors.IsRenderError(err); ok {
		logger.Error("invoice rendering failed", zap.Error(err))
		c.writeErrorResponse(w, traceID, http.StatusInternalServerError, "RENDER_ERROR", "failed to generate invoice document")
		return
	}

	if _, ok := apperrors.IsDeliveryError(err); ok {
		logger.Error("invoice delivery failed", zap.Error(err))
		c.writeErrorResponse(w, traceID, http.StatusBadGateway, "DELIVERY_ERROR", err.Error())
		return
	}

	logger.Error("unexpected error", zap.Error(err))
	c.writeErrorResponse(w, traceID, http.StatusInternalServerError, "INTERNAL_ERROR", "an unexpected error occurred")
}

func (c *InvoiceController) toInvoiceResponse(inv domain.Invoice, items []domain.LineItem) dto.InvoiceResponse {
	resp := dto.InvoiceResponse{
		ID:             inv.ID,
		OrderID:        inv.OrderID,
		CompanyID:      inv.CompanyID,
		CustomerID:     inv.CustomerID,
		InvoiceNumber:  inv.InvoiceNumber,
		GSTRate:        inv.GSTRate,
		Subtotal:       inv.Subtotal,
		GSTAmount:      inv.GSTAmount,
		Discount:       inv.Discount,
		TotalAmount:    inv.TotalAmount,
		TotalFormatted: finance.FormatCurrency(inv.TotalAmount, c.currencySymbol),
		Status:         string(inv.Status),
		DueDate:        inv.DueDate,
		Notes:          inv.Notes,
		PaidAt:         inv.PaidAt,
		CreatedAt:      inv.CreatedAt,
		UpdatedAt:      inv.UpdatedAt,
		CreatedBy:      inv.CreatedBy,
	}

	// Due tracking applies only while payment is outstanding.
	if inv.DueDate != nil && (inv.Status == domain.InvoiceStatusUnpaid || inv.Status == domain.InvoiceStatusOverdue) {
		now := c.now()
		overdue := finance.IsOverdue(*inv.DueDate, now)
		days := finance.DaysRemaining(*inv.DueDate, now)
		resp.IsOverdue = &overdue
		resp.DaysRemaining = &days
	}

	for _, item := range items {
		resp.Items = append(resp.Items, dto.LineItemResponse{
			Name:     item.Name,
			Quantity: item.Quantity,
			Price:    item.Price,
			Amount:   finance.Round2(item.Amount()),
		})
	}

	return resp
}

func toLineItems(reqs []dto.LineItemRequest) []domain.LineItem {
	items := make([]domain.LineItem, len(reqs))
	for i, item := range reqs {
		items[i] = domain.LineItem{
			Name:     item.Name,
			Quantity: item.Quantity,
			Price:    item.Price,
		}
	}
	return items
}

func (c *InvoiceController) writePDF(w http.ResponseWriter, disposition string, out *usecase.GeneratedDocument) {
	w.Header().Set("Content-Type", "application/pdf")
	w.Header().Set("Content-Disposition", fmt.Sprintf("%s; filename=%q", disposition, out.InvoiceNumber+".pdf"))
	w.Header().Set("Content-Length", strconv.Itoa(len(out.PDF)))
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write(out.PDF); err != nil {
		c.logger.Error("failed to write pdf response", zap.Error(err))
	}
}

func (c *InvoiceController) writeErrorResponse(w http.ResponseWriter, traceID string, statusCode int, code string, message string) {
	c.writeJSON(w, statusCode, dto.ErrorResponse{
		TraceID:   traceID,
		Status:    statusCode,
		Code:      code,
		Message:   message,
		Timestamp: time.Now().UTC(),
	})
}

func (c *InvoiceController) writeValidationError(w http.ResponseWriter, traceID string, message string, details ...apperrors.ValidationDetail) {
	c.writeJSON(w, http.StatusBadRequest, dto.ErrorResponse{
		TraceID:   traceID,
		Status:    http.StatusBadRequest,
		Code:      "VALIDATION_ERROR",
		Message:   message,
		Details:   details,
		Timestamp: time.Now().UTC(),
	})
}

func (c *InvoiceController) writeJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		c.logger.Error("failed to encode response", zap.Error(err))
	}
}
