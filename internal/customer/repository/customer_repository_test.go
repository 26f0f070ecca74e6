package repository

import (
	"context"
	"database/sql"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"invoicepilot/internal/errors"
	"invoicepilot/internal/testutil"
)

func TestNewMySQLCustomerRepository(t *testing.T) {
	db := &sql.DB{}
	repo := NewMySQLCustomerRepository(db)

	assert.NotNil(t, repo)
	assert.Equal(t, db, repo.db)
}

func TestCustomerRepository_FindByID(t *testing.T) {
	db := testutil.SetupTestDB(t)
	testutil.SetupTestTables(t, db)
	defer testutil.CleanupTestDB(t, db)

	repo := NewMySQLCustomerRepository(db)

	_, err := db.Exec(`
		INSERT INTO Customers (id, companyId, name, email, phone, address, gstNumber)
		VALUES
			('cust-1', 'comp-1', 'John Doe', 'john@example.com', '9876543210', '1 Park Street', '27AAPFU0939F1ZV'),
			('cust-2', 'comp-1', 'Jane Roe', 'jane@example.com', '9876543211', '2 Park Street', NULL)
	`)
	require.NoError(t, err)

	tests := []struct {
		name    string
		id      string
		wantGST *string
	}{
		{name: "with gst number", id: "cust-1", wantGST: strPtr("27AAPFU0939F1ZV")},
		{name: "without gst number", id: "cust-2", wantGST: nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			customer, err := repo.FindByID(context.Background(), tt.id)
			require.NoError(t, err)
			assert.Equal(t, tt.id, customer.ID)
			assert.Equal(t, "comp-1", customer.CompanyID)
			assert.Equal(t, tt.wantGST, customer.GSTNumber)
			assert.Equal(t, tt.wantGST != nil, customer.HasGSTNumber())
		})
	}
}

func TestCustomerRepository_FindByID_NotFound(t *testing.T) {
	db := testutil.SetupTestDB(t)
	testutil.SetupTestTables(t, db)
	defer testutil.CleanupTestDB(t, db)

	repo := NewMySQLCustomerRepository(db)

	customer, err := repo.FindByID(context.Background(), "nobody")
	assert.Nil(t, customer)

	_, ok := errors.IsNotFoundError(err)
	assert.True(t, ok)
}

func strPtr(s string) *string {
	return &s
}
