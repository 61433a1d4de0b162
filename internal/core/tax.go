package core

import (
	"strings"

	"github.com/shopspring/decimal"
)

// GSTNotApplicable is the stored rate value meaning "no tax on this line".
const GSTNotApplicable = "Not Applicable"

// ParseGSTRate converts a stored GST rate string ("18%", "9%", "Not
// Applicable", empty) into a percentage. ok is false when the rate
// contributes nothing — either explicitly not applicable or unparseable.
func ParseGSTRate(rate string) (pct decimal.Decimal, ok bool) {
	s := strings.TrimSpace(rate)
	if s == "" || strings.EqualFold(s, GSTNotApplicable) {
		return decimal.Zero, false
	}
	s = strings.TrimSuffix(s, "%")
	pct, err := decimal.NewFromString(strings.TrimSpace(s))
	if err != nil {
		return decimal.Zero, false
	}
	return pct, true
}

// GSTAmount returns base × rate/100, or zero when the rate is not
// applicable. GSTAmount("Not Applicable", X) is zero for any X.
func GSTAmount(rate string, base decimal.Decimal) decimal.Decimal {
	pct, ok := ParseGSTRate(rate)
	if !ok {
		return decimal.Zero
	}
	return base.Mul(pct).Div(decimal.NewFromInt(100))
}

// WithGST returns base plus the contribution of each of the given rates
// applied to base.
func WithGST(base decimal.Decimal, rates ...string) decimal.Decimal {
	total := base
	for _, r := range rates {
		total = total.Add(GSTAmount(r, base))
	}
	return total
}
