package finance

import (
	"backend/internal/model"

	"github.com/shopspring/decimal"
)

var oneHundred = decimal.NewFromInt(100)

// FeeDeduction computes the gateway-fee cost a single paid order incurs given
// the merchant's configured fees. Percentage fees contribute amount*value/100,
// fixed fees contribute their value flat. Every configured fee is applied to
// every paid order; the fee's payment-method list is a display/config concern
// (see Fee.AppliesTo) and is deliberately not consulted here.
func FeeDeduction(amount decimal.Decimal, fees []model.Fee) decimal.Decimal {
	total := decimal.Zero
	for _, fee := range fees {
		switch fee.Type {
		case model.FeeTypePercentage:
			total = total.Add(amount.Mul(fee.Value).Div(oneHundred))
		case model.FeeTypeFixed:
			total = total.Add(fee.Value)
		}
	}
	return total
}

// TaxDeduction computes the revenue-based tax a single paid order incurs.
// Only taxes whose base is gross revenue participate; the system ad-spend
// row and commission-based rules are skipped.
func TaxDeduction(amount decimal.Decimal, taxes []model.Tax) decimal.Decimal {
	total := decimal.Zero
	for _, tax := range taxes {
		if !tax.AppliesToRevenue() {
			continue
		}
		total = total.Add(amount.Mul(tax.Rate).Div(oneHundred))
	}
	return total
}
