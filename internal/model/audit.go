package model

import (
	"time"

	"github.com/google/uuid"
)

const (
	ActionRegisterUser       = "REGISTER_USER"
	ActionCreateOrder        = "CREATE_ORDER"
	ActionCreateFee          = "CREATE_FEE"
	ActionUpdateFee          = "UPDATE_FEE"
	ActionDeleteFee          = "DELETE_FEE"
	ActionCreateTax          = "CREATE_TAX"
	ActionUpdateTax          = "UPDATE_TAX"
	ActionDeleteTax          = "DELETE_TAX"
	ActionCreateFixedExpense = "CREATE_FIXED_EXPENSE"
	ActionUpdateFixedExpense = "UPDATE_FIXED_EXPENSE"
	ActionDeleteFixedExpense = "DELETE_FIXED_EXPENSE"
)

// AuditLog tracks Who, What, and When for financial configuration changes
type AuditLog struct {
	ID         uuid.UUID  `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	UserID     *uuid.UUID `gorm:"type:uuid;index" json:"user_id"` // Nullable gracefully if automated ingestion
	User       *User      `gorm:"foreignKey:UserID" json:"user"`
	Action     string     `gorm:"type:varchar(50);not null;index" json:"action"`
	EntityID   string     `gorm:"type:varchar(50);index" json:"entity_id"`        // Reference string (uuid/code)
	EntityName string     `gorm:"type:varchar(255)" json:"entity_name,omitempty"` // Human readable name
	Details    string     `gorm:"type:jsonb" json:"details"`                      // Serialized JSON payload of the action
	CreatedAt  time.Time  `gorm:"index" json:"created_at"`
}
