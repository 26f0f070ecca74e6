package repository

import (
	"context"
	"database/sql"
	"fmt"

	"invoicepilot/internal/domain"
	"invoicepilot/internal/errors"
)

const invoiceColumns = `
		id, orderId, companyId, customerId, invoiceNumber,
		gstRate, subtotal, gstAmount, discount, totalAmount, status,
		dueDate, notes, paidAt, createdAt, updatedAt, createdBy`

type MySQLInvoiceRepository struct {
	db *sql.DB
}

func NewMySQLInvoiceRepository(db *sql.DB) *MySQLInvoiceRepository {
	return &MySQLInvoiceRepository{db: db}
}

func (r *MySQLInvoiceRepository) FindByID(ctx context.Context, id string) (*domain.Invoice, error) {
	query := `SELECT` + invoiceColumns + `
		FROM Invoices
		WHERE id = ?
	`

	inv, err := scanInvoice(r.db.QueryRowContext(ctx, query, id))
	if err == sql.ErrNoRows {
		return nil, errors.NewNotFoundError(fmt.Sprintf("invoice %s not found", id))
	}
	if err != nil {
		return nil, errors.NewInternalError("querying invoice by id", err)
	}

	return inv, nil
}

// ListByCompany returns the company's invoices, newest first.
func (r *MySQLInvoiceRepository) ListByCompany(ctx context.Context, companyID string) ([]domain.Invoice, error) {
	query := `SELECT` + invoiceColumns + `
		FROM Invoices
		WHERE companyId = ?
		ORDER BY createdAt DESC, invoiceNumber DESC
	`

	rows, err := r.db.QueryContext(ctx, query, companyID)
	if err != nil {
		return nil, errors.NewInternalError("querying invoices by company", err)
	}
	defer rows.Close()

	invoices := []domain.Invoice{}
	for rows.Next() {
		inv, err := scanInvoice(rows)
		if err != nil {
			return nil, errors.NewInternalError("scanning invoice row", err)
		}
		invoices = append(invoices, *inv)
	}

	if err := rows.Err(); err != nil {
		return nil, errors.NewInternalError("iterating invoice rows", err)
	}

	return invoices, nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanInvoice(row rowScanner) (*domain.Invoice, error) {
	var (
		inv     domain.Invoice
		status  string
		dueDate sql.NullTime
		notes   sql.NullString
		paidAt  sql.NullTime
	)

	err := row.Scan(
		&inv.ID, &inv.OrderID, &inv.CompanyID, &inv.CustomerID, &inv.InvoiceNumber,
		&inv.GSTRate, &inv.Subtotal, &inv.GSTAmount, &inv.Discount, &inv.TotalAmount, &status,
		&dueDate, &notes, &paidAt, &inv.CreatedAt, &inv.UpdatedAt, &inv.CreatedBy,
	)
	if err != nil {
		return nil, err
	}

	inv.Status = domain.InvoiceStatus(status)
	if !inv.Status.Valid() {
		return nil, fmt.Errorf("unknown invoice status %q", status)
	}
	if dueDate.Valid {
		inv.DueDate = &dueDate.Time
	}
	if notes.Valid {
		inv.Notes = &notes.String
	}
	if paidAt.Valid {
		inv.PaidAt = &paidAt.Time
	}

	return &inv, nil
}
