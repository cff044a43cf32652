// Package safenum centralizes numeric coercion at the data-ingestion
// boundary. Upstream payloads and partially-migrated rows carry empty or
// garbage numeric strings; aggregation must stay total, so everything
// unparseable coerces to zero instead of erroring mid-request.
package safenum

import (
	"strings"

	"github.com/shopspring/decimal"
)

// Decimal parses s into a decimal, coercing empty or invalid input to zero.
func Decimal(s string) decimal.Decimal {
	s = strings.TrimSpace(s)
	if s == "" {
		return decimal.Zero
	}
	d, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Zero
	}
	return d
}

// DecimalPtr behaves like Decimal for optional fields.
func DecimalPtr(s *string) decimal.Decimal {
	if s == nil {
		return decimal.Zero
	}
	return Decimal(*s)
}
