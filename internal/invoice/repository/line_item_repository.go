package repository

import (
	"context"
	"database/sql"

	"invoicepilot/internal/domain"
	"invoicepilot/internal/errors"
)

type MySQLLineItemRepository struct {
	db *sql.DB
}

func NewMySQLLineItemRepository(db *sql.DB) *MySQLLineItemRepository {
	return &MySQLLineItemRepository{db: db}
}

// FindByInvoiceID returns the invoice's items in display order. An invoice
// without items yields an empty slice.
func (r *MySQLLineItemRepository) FindByInvoiceID(ctx context.Context, invoiceID string) ([]domain.LineItem, error) {
	query := `
		SELECT name, quantity, price
		FROM InvoiceItems
		WHERE invoiceId = ?
		ORDER BY position, id
	`

	rows, err := r.db.QueryContext(ctx, query, invoiceID)
	if err != nil {
		return nil, errors.NewInternalError("querying invoice items", err)
	}
	defer rows.Close()

	items := []domain.LineItem{}
	for rows.Next() {
		var item domain.LineItem
		if err := rows.Scan(&item.Name, &item.Quantity, &item.Price); err != nil {
			return nil, errors.NewInternalError("scanning invoice item row", err)
		}
		items = append(items, item)
	}

	if err := rows.Err(); err != nil {
		return nil, errors.NewInternalError("iterating invoice item rows", err)
	}

	return items, nil
}
