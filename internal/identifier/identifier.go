// Package identifier produces human-legible record identifiers of the form
// PREFIX-<time component>-<random suffix>. They are meant for scanning by
// people, not for security: collisions are improbable, not impossible.
package identifier

import (
	"math/rand"
	"strconv"
	"strings"
	"time"
)

const (
	alphabet     = "0123456789ABCDEFGHIJKLMNOPQRSTUVWXYZ"
	suffixLength = 8

	InvoicePrefix  = "INV"
	OrderPrefix    = "ORD"
	CustomerPrefix = "CUST"
)

type Generator struct {
	now  func() time.Time
	intN func(n int) int
}

func New() *Generator {
	return NewWithSource(time.Now, rand.Intn)
}

// NewWithSource builds a generator from an explicit clock and random source.
// intN must return a value in [0, n) and be safe for concurrent use if the
// generator is shared.
func NewWithSource(now func() time.Time, intN func(n int) int) *Generator {
	return &Generator{now: now, intN: intN}
}

// InvoiceNumber returns INV-<first 3 characters of companyID>-<yyyyMMdd>-<suffix>.
func (g *Generator) InvoiceNumber(companyID string) string {
	company := []rune(companyID)
	if len(company) > 3 {
		company = company[:3]
	}
	return strings.Join([]string{
		InvoicePrefix,
		strings.ToUpper(string(company)),
		g.now().Format("20060102"),
		g.suffix(),
	}, "-")
}

// OrderID returns ORD-<unix millis in base 36>-<suffix>.
func (g *Generator) OrderID() string {
	return g.timestamped(OrderPrefix)
}

// CustomerID returns CUST-<unix millis in base 36>-<suffix>.
func (g *Generator) CustomerID() string {
	return g.timestamped(CustomerPrefix)
}

func (g *Generator) timestamped(prefix string) string {
	ts := strings.ToUpper(strconv.FormatInt(g.now().UnixMilli(), 36))
	return prefix + "-" + ts + "-" + g.suffix()
}

func (g *Generator) suffix() string {
	b := make([]byte, suffixLength)
	for i := range b {
		b[i] = alphabet[g.intN(len(alphabet))]
	}
	return string(b)
}
