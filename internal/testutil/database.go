package testutil

import (
	"database/sql"
	"fmt"
	"testing"
	"time"

	"github.com/go-sql-driver/mysql"
)

// SetupTestDB connects to the integration database. It expects MySQL on
// localhost:3306 with an empty 'invoicepilot_test' schema and skips the test
// when the server is not reachable.
func SetupTestDB(t *testing.T) *sql.DB {
	t.Helper()

	cfg := mysql.NewConfig()
	cfg.User = "root"
	cfg.Net = "tcp"
	cfg.Addr = "localhost:3306"
	cfg.DBName = "invoicepilot_test"
	cfg.ParseTime = true
	cfg.Loc = time.UTC

	db, err := sql.Open("mysql", cfg.FormatDSN())
	if err != nil {
		t.Fatalf("failed to open test database: %v", err)
	}

	if err := db.Ping(); err != nil {
		db.Close()
		t.Skipf("test database not available: %v", err)
	}

	return db
}

// CleanupTestDB empties every table and closes the connection.
func CleanupTestDB(t *testing.T, db *sql.DB) {
	if db == nil {
		return
	}

	tables := []string{"InvoiceItems", "Invoices", "Customers", "Companies"}
	for _, table := range tables {
		_, err := db.Exec(fmt.Sprintf("DELETE FROM %s", table))
		if err != nil {
			t.Logf("failed to clean table %s: %v", table, err)
		}
	}

	db.Close()
}

func SetupTestTables(t *testing.T, db *sql.DB) {
	createCompaniesTable := `
	CREATE TABLE IF NOT EXISTS Companies (
		id VARCHAR(36) NOT NULL PRIMARY KEY,
		name VARCHAR(100) NOT NULL,
		gstNumber VARCHAR(15) NOT NULL,
		address VARCHAR(255) NOT NULL,
		contactEmail VARCHAR(150) NOT NULL,
		contactPhone VARCHAR(30),
		createdBy VARCHAR(36) NOT NULL,
		createdAt DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP,
		isActive TINYINT(1) NOT NULL DEFAULT 1
	)`

	createCustomersTable := `
	CREATE TABLE IF NOT EXISTS Customers (
		id VARCHAR(36) NOT NULL PRIMARY KEY,
		companyId VARCHAR(36) NOT NULL,
		name VARCHAR(100) NOT NULL,
		email VARCHAR(150) NOT NULL,
		phone VARCHAR(15) NOT NULL,
		address VARCHAR(255) NOT NULL,
		gstNumber VARCHAR(15),
		createdAt DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP,
		isActive TINYINT(1) NOT NULL DEFAULT 1,
		INDEX idx_company (companyId)
	)`

	createInvoicesTable := `
	CREATE TABLE IF NOT EXISTS Invoices (
		id VARCHAR(36) NOT NULL PRIMARY KEY,
		orderId VARCHAR(36) NOT NULL,
		companyId VARCHAR(36) NOT NULL,
		customerId VARCHAR(36) NOT NULL,
		invoiceNumber VARCHAR(32) NOT NULL UNIQUE,
		gstRate DECIMAL(5,2) NOT NULL,
		subtotal DECIMAL(12,2) NOT NULL,
		gstAmount DECIMAL(12,2) NOT NULL,
		discount DECIMAL(12,2) NOT NULL DEFAULT 0.00,
		totalAmount DECIMAL(12,2) NOT NULL,
		status VARCHAR(20) NOT NULL DEFAULT 'unpaid',
		dueDate DATETIME,
		notes TEXT,
		paidAt DATETIME,
		createdAt DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP,
		updatedAt DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP ON UPDATE CURRENT_TIMESTAMP,
		createdBy VARCHAR(36) NOT NULL,
		INDEX idx_company (companyId)
	)`

	createInvoiceItemsTable := `
	CREATE TABLE IF NOT EXISTS InvoiceItems (
		id INT UNSIGNED NOT NULL AUTO_INCREMENT PRIMARY KEY,
		invoiceId VARCHAR(36) NOT NULL,
		position INT NOT NULL DEFAULT 0,
		name VARCHAR(100) NOT NULL,
		quantity INT NOT NULL DEFAULT 1,
		price DECIMAL(12,2) NOT NULL,
		FOREIGN KEY (invoiceId) REFERENCES Invoices(id) ON DELETE CASCADE,
		INDEX idx_invoice (invoiceId)
	)`

	tables := []struct {
		name  string
		query string
	}{
		{"Companies", createCompaniesTable},
		{"Customers", createCustomersTable},
		{"Invoices", createInvoicesTable},
		{"InvoiceItems", createInvoiceItemsTable},
	}

	for _, tbl := range tables {
		_, err := db.Exec(tbl.query)
		if err != nil {
			t.Logf("failed to create table %s: %v", tbl.name, err)
		}
	}
}
