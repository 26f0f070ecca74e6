package repository

import (
	"context"
	"database/sql"
	"fmt"

	"invoicepilot/internal/domain"
	"invoicepilot/internal/errors"
)

type MySQLCustomerRepository struct {
	db *sql.DB
}

func NewMySQLCustomerRepository(db *sql.DB) *MySQLCustomerRepository {
	return &MySQLCustomerRepository{db: db}
}

func (r *MySQLCustomerRepository) FindByID(ctx context.Context, id string) (*domain.Customer, error) {
	query := `
		SELECT id, companyId, name, email, phone, address, gstNumber,
		       createdAt, isActive
		FROM Customers
		WHERE id = ?
	`

	var (
		customer  domain.Customer
		gstNumber sql.NullString
	)
	err := r.db.QueryRowContext(ctx, query, id).Scan(
		&customer.ID, &customer.CompanyID, &customer.Name, &customer.Email,
		&customer.Phone, &customer.Address, &gstNumber,
		&customer.CreatedAt, &customer.IsActive,
	)

	if err == sql.ErrNoRows {
		return nil, errors.NewNotFoundError(fmt.Sprintf("customer %s not found", id))
	}
	if err != nil {
		return nil, errors.NewInternalError("querying customer by id", err)
	}

	if gstNumber.Valid {
		customer.GSTNumber = &gstNumber.String
	}

	return &customer, nil
}
