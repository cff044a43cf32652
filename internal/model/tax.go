package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Tax calculation rule constants
const (
	TaxRuleRevenue       = "faturamento"
	TaxRuleRevenueLegacy = "Sobre Faturamento" // legacy label still present in older rows
	TaxRuleCommission    = "comissao"
	TaxRuleAdSpend       = "gasto_anuncio"
)

// AdSpendTaxName is the display name of the auto-provisioned system tax row
const AdSpendTaxName = "Imposto sobre Ad Spend"

// Tax represents a percentage tax configured by (or provisioned for) a merchant.
// Exactly one system row per user carries the ad-spend rule; its base is
// marketing spend, not order revenue, so it never enters revenue aggregation.
type Tax struct {
	ID              uuid.UUID       `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	UserID          uuid.UUID       `gorm:"type:uuid;not null;index" json:"user_id"`
	Name            string          `gorm:"type:varchar(255);not null" json:"name"`
	Rate            decimal.Decimal `gorm:"type:decimal(18,4);not null;default:0" json:"rate"` // percent, e.g. 8.5 = 8.5%
	CalculationRule *string         `gorm:"type:varchar(50)" json:"calculation_rule"`
	IsSystem        bool            `gorm:"not null;default:false" json:"is_system"`
	CreatedAt       time.Time       `json:"created_at"`
	UpdatedAt       time.Time       `json:"updated_at"`
}

// AppliesToRevenue reports whether this tax is charged against paid-order
// revenue. System rows and non-revenue rules (comissao, gasto_anuncio) are out.
func (t Tax) AppliesToRevenue() bool {
	if t.IsSystem {
		return false
	}
	if t.CalculationRule == nil {
		return true
	}
	switch *t.CalculationRule {
	case "", TaxRuleRevenue, TaxRuleRevenueLegacy:
		return true
	}
	return false
}
