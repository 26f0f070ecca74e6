package repository

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"invoicepilot/internal/domain"
	"invoicepilot/internal/errors"
	"invoicepilot/internal/testutil"
)

func insertInvoice(t *testing.T, db *sql.DB, id, number, companyID string, createdAt time.Time, dueDate *time.Time, notes *string) {
	t.Helper()
	_, err := db.Exec(`
		INSERT INTO Invoices (id, orderId, companyId, customerId, invoiceNumber,
			gstRate, subtotal, gstAmount, discount, totalAmount, status,
			dueDate, notes, createdAt, updatedAt, createdBy)
		VALUES (?, 'ORD-1', ?, 'cust-1', ?, 18.00, 10000.00, 1710.00, 500.00, 11210.00, 'unpaid', ?, ?, ?, ?, 'user-1')
	`, id, companyID, number, dueDate, notes, createdAt, createdAt)
	require.NoError(t, err)
}

// Unit Tests

func TestNewMySQLInvoiceRepository(t *testing.T) {
	db := &sql.DB{}
	repo := NewMySQLInvoiceRepository(db)

	assert.NotNil(t, repo)
	assert.Equal(t, db, repo.db)
}

// fakeRow fills Scan destinations from a fixed invoice row.
type fakeRow struct {
	status string
	err    error
}

func (r fakeRow) Scan(dest ...any) error {
	if r.err != nil {
		return r.err
	}
	created := time.Date(2024, time.May, 10, 9, 30, 0, 0, time.UTC)
	*dest[0].(*string) = "inv-1"
	*dest[4].(*string) = "INV-COM-20240510-AB12CD34"
	*dest[9].(*float64) = 11210
	*dest[10].(*string) = r.status
	*dest[14].(*time.Time) = created
	*dest[15].(*time.Time) = created
	return nil
}

func TestScanInvoice_KnownStatus(t *testing.T) {
	inv, err := scanInvoice(fakeRow{status: "overdue"})
	require.NoError(t, err)

	assert.Equal(t, domain.InvoiceStatusOverdue, inv.Status)
	assert.Equal(t, 11210.0, inv.TotalAmount)
	assert.Nil(t, inv.DueDate)
	assert.Nil(t, inv.Notes)
}

func TestScanInvoice_RejectsUnknownStatus(t *testing.T) {
	inv, err := scanInvoice(fakeRow{status: "draft"})

	require.Error(t, err)
	assert.Nil(t, inv)
	assert.Contains(t, err.Error(), `unknown invoice status "draft"`)
}

func TestScanInvoice_PassesThroughNoRows(t *testing.T) {
	_, err := scanInvoice(fakeRow{err: sql.ErrNoRows})

	assert.ErrorIs(t, err, sql.ErrNoRows)
}

// Integration Tests

func TestInvoiceRepository_FindByID_Success(t *testing.T) {
	db := testutil.SetupTestDB(t)
	testutil.SetupTestTables(t, db)
	defer testutil.CleanupTestDB(t, db)

	repo := NewMySQLInvoiceRepository(db)

	created := time.Date(2024, time.May, 10, 9, 30, 0, 0, time.UTC)
	due := time.Date(2024, time.June, 9, 0, 0, 0, 0, time.UTC)
	notes := "Payment within 30 days"
	insertInvoice(t, db, "inv-1", "INV-COM-20240510-AB12CD34", "comp-1", created, &due, &notes)

	inv, err := repo.FindByID(context.Background(), "inv-1")
	require.NoError(t, err)

	assert.Equal(t, "INV-COM-20240510-AB12CD34", inv.InvoiceNumber)
	assert.Equal(t, "comp-1", inv.CompanyID)
	assert.Equal(t, 18.0, inv.GSTRate)
	assert.Equal(t, 10000.0, inv.Subtotal)
	assert.Equal(t, 500.0, inv.Discount)
	assert.Equal(t, 1710.0, inv.GSTAmount)
	assert.Equal(t, 11210.0, inv.TotalAmount)
	assert.Equal(t, domain.InvoiceStatusUnpaid, inv.Status)
	assert.True(t, inv.HasConsistentTotals())
	require.NotNil(t, inv.DueDate)
	assert.True(t, due.Equal(*inv.DueDate))
	require.NotNil(t, inv.Notes)
	assert.Equal(t, notes, *inv.Notes)
	assert.Nil(t, inv.PaidAt)
	assert.True(t, created.Equal(inv.CreatedAt))
}

func TestInvoiceRepository_FindByID_NotFound(t *testing.T) {
	db := testutil.SetupTestDB(t)
	testutil.SetupTestTables(t, db)
	defer testutil.CleanupTestDB(t, db)

	repo := NewMySQLInvoiceRepository(db)

	inv, err := repo.FindByID(context.Background(), "missing")
	assert.Nil(t, inv)

	_, ok := errors.IsNotFoundError(err)
	assert.True(t, ok)
}

func TestInvoiceRepository_ListByCompany(t *testing.T) {
	db := testutil.SetupTestDB(t)
	testutil.SetupTestTables(t, db)
	defer testutil.CleanupTestDB(t, db)

	repo := NewMySQLInvoiceRepository(db)

	base := time.Date(2024, time.May, 10, 9, 0, 0, 0, time.UTC)
	insertInvoice(t, db, "inv-1", "INV-COM-20240510-00000001", "comp-1", base, nil, nil)
	insertInvoice(t, db, "inv-2", "INV-COM-20240511-00000002", "comp-1", base.Add(24*time.Hour), nil, nil)
	insertInvoice(t, db, "inv-3", "INV-OTH-20240511-00000003", "comp-2", base, nil, nil)

	invoices, err := repo.ListByCompany(context.Background(), "comp-1")
	require.NoError(t, err)
	require.Len(t, invoices, 2)
	assert.Equal(t, "inv-2", invoices[0].ID)
	assert.Equal(t, "inv-1", invoices[1].ID)
	assert.Nil(t, invoices[0].DueDate)
	assert.Nil(t, invoices[0].Notes)
}

func TestInvoiceRepository_ListByCompany_Empty(t *testing.T) {
	db := testutil.SetupTestDB(t)
	testutil.SetupTestTables(t, db)
	defer testutil.CleanupTestDB(t, db)

	repo := NewMySQLInvoiceRepository(db)

	invoices, err := repo.ListByCompany(context.Background(), "nobody")
	require.NoError(t, err)
	assert.NotNil(t, invoices)
	assert.Empty(t, invoices)
}

func TestLineItemRepository_FindByInvoiceID(t *testing.T) {
	db := testutil.SetupTestDB(t)
	testutil.SetupTestTables(t, db)
	defer testutil.CleanupTestDB(t, db)

	insertInvoice(t, db, "inv-1", "INV-COM-20240510-00000001", "comp-1", time.Now().UTC(), nil, nil)
	_, err := db.Exec(`
		INSERT INTO InvoiceItems (invoiceId, position, name, quantity, price)
		VALUES ('inv-1', 2, 'Support', 1, 2500.00),
		       ('inv-1', 1, 'Consulting', 3, 2500.00)
	`)
	require.NoError(t, err)

	repo := NewMySQLLineItemRepository(db)

	items, err := repo.FindByInvoiceID(context.Background(), "inv-1")
	require.NoError(t, err)
	assert.Equal(t, []domain.LineItem{
		{Name: "Consulting", Quantity: 3, Price: 2500},
		{Name: "Support", Quantity: 1, Price: 2500},
	}, items)

	none, err := repo.FindByInvoiceID(context.Background(), "inv-unknown")
	require.NoError(t, err)
	assert.Empty(t, none)
}
