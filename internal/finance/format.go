package finance

import (
	"math"
	"strconv"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

const displayDateLayout = "Jan 02, 2006"

// FormatCurrency renders amount with the symbol prefix, comma thousands
// separators and two decimals, e.g. ₹123,456.70. The minus sign of a negative
// amount follows the symbol: ₹-100.00. Non-finite amounts render as
// ₹+Inf, ₹-Inf or ₹NaN.
func FormatCurrency(amount float64, symbol string) string {
	if !isFinite(amount) {
		return symbol + strconv.FormatFloat(amount, 'f', -1, 64)
	}

	d := decimal.NewFromFloat(amount).Round(2)

	sign := ""
	if d.IsNegative() {
		sign = "-"
		d = d.Abs()
	}

	intPart, fracPart, _ := strings.Cut(d.StringFixed(2), ".")
	return symbol + sign + groupThousands(intPart) + "." + fracPart
}

func groupThousands(digits string) string {
	if len(digits) <= 3 {
		return digits
	}

	var b strings.Builder
	lead := len(digits) % 3
	if lead > 0 {
		b.WriteString(digits[:lead])
	}
	for i := lead; i < len(digits); i += 3 {
		if b.Len() > 0 {
			b.WriteByte(',')
		}
		b.WriteString(digits[i : i+3])
	}
	return b.String()
}

// Round2 rounds to cents, half away from zero. Non-finite amounts are
// returned unchanged.
func Round2(amount float64) float64 {
	if !isFinite(amount) {
		return amount
	}
	return decimal.NewFromFloat(amount).Round(2).InexactFloat64()
}

func isFinite(f float64) bool {
	return !math.IsInf(f, 0) && !math.IsNaN(f)
}

func FormatDate(t time.Time) string {
	return t.Format(displayDateLayout)
}

func IsOverdue(due, now time.Time) bool {
	return due.Before(now)
}

// DaysRemaining is the number of started days until due; negative once overdue.
func DaysRemaining(due, now time.Time) int {
	return int(math.Ceil(due.Sub(now).Hours() / 24))
}
