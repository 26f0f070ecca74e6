package domain

import "time"

type Customer struct {
	ID        string
	CompanyID string
	Name      string
	Email     string
	Phone     string
	Address   string
	GSTNumber *string
	CreatedAt time.Time
	IsActive  bool
}

func (c Customer) HasGSTNumber() bool {
	return c.GSTNumber != nil && *c.GSTNumber != ""
}

type Company struct {
	ID           string
	Name         string
	GSTNumber    string
	Address      string
	ContactEmail string
	ContactPhone *string
	CreatedBy    string
	CreatedAt    time.Time
	IsActive     bool
}
