package finance

import (
	"testing"

	"backend/internal/model"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func strPtr(s string) *string { return &s }

func TestFeeDeductionComposesPercentageAndFixed(t *testing.T) {
	fees := []model.Fee{
		{Name: "Gateway", Type: model.FeeTypePercentage, Value: decimal.NewFromInt(5)},
		{Name: "Per-sale", Type: model.FeeTypeFixed, Value: decimal.NewFromInt(1)},
	}

	got := FeeDeduction(decimal.NewFromInt(100), fees)
	assert.True(t, got.Equal(decimal.NewFromInt(6)), "want 6, got %s", got)
}

func TestFeeDeductionIgnoresPaymentMethodList(t *testing.T) {
	// Every configured fee applies to every paid order, even when its
	// payment-method list names a different method.
	fees := []model.Fee{
		{Name: "Pix only", Type: model.FeeTypeFixed, Value: decimal.NewFromInt(3), PaymentMethods: []string{"pix"}},
	}

	got := FeeDeduction(decimal.NewFromInt(50), fees)
	assert.True(t, got.Equal(decimal.NewFromInt(3)), "want 3, got %s", got)
}

func TestFeeDeductionUnknownTypeContributesNothing(t *testing.T) {
	fees := []model.Fee{
		{Name: "Broken row", Type: "SOMETHING_ELSE", Value: decimal.NewFromInt(10)},
	}

	got := FeeDeduction(decimal.NewFromInt(100), fees)
	assert.True(t, got.IsZero(), "want 0, got %s", got)
}

func TestTaxDeductionRevenueRules(t *testing.T) {
	taxes := []model.Tax{
		{Name: "Simples", Rate: decimal.NewFromInt(10)},                                                               // nil rule counts
		{Name: "ICMS", Rate: decimal.NewFromInt(5), CalculationRule: strPtr(model.TaxRuleRevenue)},                    // faturamento counts
		{Name: "Legacy", Rate: decimal.NewFromInt(1), CalculationRule: strPtr(model.TaxRuleRevenueLegacy)},            // legacy label counts
		{Name: "Commission", Rate: decimal.NewFromInt(50), CalculationRule: strPtr(model.TaxRuleCommission)},          // skipped
		{Name: model.AdSpendTaxName, Rate: decimal.NewFromInt(99), CalculationRule: strPtr(model.TaxRuleAdSpend), IsSystem: true}, // skipped
	}

	// 10% + 5% + 1% of 200 = 32
	got := TaxDeduction(decimal.NewFromInt(200), taxes)
	assert.True(t, got.Equal(decimal.NewFromInt(32)), "want 32, got %s", got)
}

func TestTaxDeductionAdSpendNeverContributes(t *testing.T) {
	taxes := []model.Tax{
		{Name: model.AdSpendTaxName, Rate: decimal.NewFromInt(15), CalculationRule: strPtr(model.TaxRuleAdSpend), IsSystem: true},
	}

	got := TaxDeduction(decimal.NewFromInt(1000), taxes)
	assert.True(t, got.IsZero(), "want 0, got %s", got)
}

func TestTaxAppliesToRevenue(t *testing.T) {
	tests := []struct {
		name string
		tax  model.Tax
		want bool
	}{
		{"nil rule", model.Tax{}, true},
		{"empty rule", model.Tax{CalculationRule: strPtr("")}, true},
		{"faturamento", model.Tax{CalculationRule: strPtr(model.TaxRuleRevenue)}, true},
		{"legacy label", model.Tax{CalculationRule: strPtr(model.TaxRuleRevenueLegacy)}, true},
		{"comissao", model.Tax{CalculationRule: strPtr(model.TaxRuleCommission)}, false},
		{"gasto_anuncio", model.Tax{CalculationRule: strPtr(model.TaxRuleAdSpend)}, false},
		{"system row with nil rule", model.Tax{IsSystem: true}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.tax.AppliesToRevenue())
		})
	}
}
