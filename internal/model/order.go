package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Order represents a checkout order ingested from upstream integrations.
// Status and payment method arrive as free text from the checkout provider;
// they are decoded into closed enums at the finance boundary, never trusted raw.
type Order struct {
	ID            uuid.UUID       `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	UserID        uuid.UUID       `gorm:"type:uuid;not null;index" json:"user_id"`
	ExternalRef   string          `gorm:"type:varchar(100);index" json:"external_ref"` // Provider-side order id, if any
	Status        string          `gorm:"type:varchar(50)" json:"status"`
	Total         decimal.Decimal `gorm:"type:decimal(18,2);not null;default:0" json:"total"`
	PaymentMethod *string         `gorm:"type:varchar(50)" json:"payment_method"`
	Items         []OrderItem     `gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE" json:"items"`
	CreatedAt     time.Time       `gorm:"index" json:"created_at"`
	UpdatedAt     time.Time       `json:"updated_at"`
}

// OrderItem is a line item; cost price feeds cost-of-goods for paid orders
type OrderItem struct {
	ID          uuid.UUID       `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	OrderID     uuid.UUID       `gorm:"type:uuid;not null;index" json:"order_id"`
	ProductName string          `gorm:"type:varchar(255)" json:"product_name"`
	CostPrice   decimal.Decimal `gorm:"type:decimal(18,2);not null;default:0" json:"cost_price"`
	Quantity    int             `gorm:"type:int;not null;default:1" json:"quantity"`
}

// CostOfGoods returns cost_price * quantity summed over the order's items
func (o Order) CostOfGoods() decimal.Decimal {
	total := decimal.Zero
	for _, item := range o.Items {
		total = total.Add(item.CostPrice.Mul(decimal.NewFromInt(int64(item.Quantity))))
	}
	return total
}
