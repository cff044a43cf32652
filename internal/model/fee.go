package model

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// FeeType enum constants
const (
	FeeTypePercentage = "PERCENTAGE"
	FeeTypeFixed      = "FIXED"
)

// Fee calculation rule constants (display/config semantics)
const (
	FeeRuleRevenue = "faturamento" // charged over gross revenue
	FeeRuleSale    = "venda"       // charged per sale
)

// Fee represents a configured gateway/processing cost for a merchant.
// Percentage fees scale with the order amount; fixed fees are flat per order.
type Fee struct {
	ID              uuid.UUID       `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	UserID          uuid.UUID       `gorm:"type:uuid;not null;index" json:"user_id"`
	Name            string          `gorm:"type:varchar(255);not null" json:"name"`
	Type            string          `gorm:"type:varchar(20);not null" json:"type"` // PERCENTAGE, FIXED
	Value           decimal.Decimal `gorm:"type:decimal(18,4);not null;default:0" json:"value"`
	CalculationRule *string         `gorm:"type:varchar(50)" json:"calculation_rule"`       // faturamento, venda
	PaymentMethods  []string        `gorm:"serializer:json" json:"payment_methods"`         // pix, boleto, card
	CreatedAt       time.Time       `json:"created_at"`
	UpdatedAt       time.Time       `json:"updated_at"`
}

// AppliesTo reports whether this fee is configured for the given payment
// method bucket. An empty list means the fee applies to every method.
// Display/config predicate only: the aggregation engine intentionally applies
// every configured fee to every paid order regardless of this list.
func (f Fee) AppliesTo(method string) bool {
	if len(f.PaymentMethods) == 0 {
		return true
	}
	for _, m := range f.PaymentMethods {
		if strings.EqualFold(m, method) {
			return true
		}
	}
	return false
}
