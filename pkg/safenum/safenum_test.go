package safenum

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestDecimal(t *testing.T) {
	tests := []struct {
		in   string
		want decimal.Decimal
	}{
		{"4.99", decimal.NewFromFloat(4.99)},
		{" 10 ", decimal.NewFromInt(10)},
		{"-2.5", decimal.NewFromFloat(-2.5)},
		{"", decimal.Zero},
		{"   ", decimal.Zero},
		{"abc", decimal.Zero},
		{"12,34", decimal.Zero}, // comma decimals are upstream garbage, not parsed
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got := Decimal(tt.in)
			assert.True(t, tt.want.Equal(got), "want %s, got %s", tt.want, got)
		})
	}
}

func TestDecimalPtr(t *testing.T) {
	assert.True(t, DecimalPtr(nil).IsZero())

	s := "7.25"
	assert.True(t, DecimalPtr(&s).Equal(decimal.NewFromFloat(7.25)))

	bad := "not-a-number"
	assert.True(t, DecimalPtr(&bad).IsZero())
}
