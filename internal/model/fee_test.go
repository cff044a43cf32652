package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFeeAppliesTo(t *testing.T) {
	tests := []struct {
		name    string
		methods []string
		method  string
		want    bool
	}{
		{"empty list applies to everything", nil, "pix", true},
		{"listed method", []string{"pix", "boleto"}, "boleto", true},
		{"unlisted method", []string{"pix"}, "card", false},
		{"case insensitive", []string{"PIX"}, "pix", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fee := Fee{PaymentMethods: tt.methods}
			assert.Equal(t, tt.want, fee.AppliesTo(tt.method))
		})
	}
}
