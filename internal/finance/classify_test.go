package finance

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestClassifyStatus(t *testing.T) {
	tests := []struct {
		status string
		want   Bucket
	}{
		{"PAID", BucketPaid},
		{"paid", BucketPaid},
		{"Confirmed", BucketPaid},
		{"PROCESSING", BucketPaid},
		{"SHIPPED", BucketPaid},
		{"DELIVERED", BucketPaid},
		{"COMPLETED", BucketPaid},
		{"PENDING", BucketPending},
		{"preparing", BucketPending},
		{"WAITING", BucketPending},
		{"ABANDONED", BucketAbandoned},
		{"canceled", BucketAbandoned},
		{"", BucketUnknown},
		{"   ", BucketUnknown},
		{"REFUNDED", BucketUnknown},
		{"CANCELLED", BucketUnknown}, // double-L spelling is outside the vocabulary
		{"paid ", BucketPaid},
	}

	for _, tt := range tests {
		t.Run(tt.status, func(t *testing.T) {
			assert.Equal(t, tt.want, ClassifyStatus(tt.status))
		})
	}
}

func TestResolveMethod(t *testing.T) {
	pix := "PIX"
	pixCheckout := "pix_checkout"
	boleto := "Boleto Bancário"
	card := "credit_card"
	visa := "visa"
	empty := ""

	tests := []struct {
		name string
		raw  *string
		want Method
	}{
		{"nil defaults to card", nil, MethodCard},
		{"empty defaults to card", &empty, MethodCard},
		{"pix uppercase", &pix, MethodPix},
		{"pix embedded", &pixCheckout, MethodPix},
		{"boleto with suffix", &boleto, MethodBoleto},
		{"credit card", &card, MethodCard},
		{"unrecognized falls back to card", &visa, MethodCard},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ResolveMethod(tt.raw))
		})
	}
}
