package repository

import (
	"context"
	"database/sql"
	"fmt"

	"invoicepilot/internal/domain"
	"invoicepilot/internal/errors"
)

type MySQLCompanyRepository struct {
	db *sql.DB
}

func NewMySQLCompanyRepository(db *sql.DB) *MySQLCompanyRepository {
	return &MySQLCompanyRepository{db: db}
}

func (r *MySQLCompanyRepository) FindByID(ctx context.Context, id string) (*domain.Company, error) {
	query := `
		SELECT id, name, gstNumber, address, contactEmail, contactPhone,
		       createdBy, createdAt, isActive
		FROM Companies
		WHERE id = ?
	`

	var (
		company domain.Company
		phone   sql.NullString
	)
	err := r.db.QueryRowContext(ctx, query, id).Scan(
		&company.ID, &company.Name, &company.GSTNumber, &company.Address,
		&company.ContactEmail, &phone,
		&company.CreatedBy, &company.CreatedAt, &company.IsActive,
	)

	if err == sql.ErrNoRows {
		return nil, errors.NewNotFoundError(fmt.Sprintf("company %s not found", id))
	}
	if err != nil {
		return nil, errors.NewInternalError("querying company by id", err)
	}

	if phone.Valid {
		company.ContactPhone = &phone.String
	}

	return &company, nil
}
