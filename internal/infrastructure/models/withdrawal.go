package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Withdrawal rows are immutable apart from status.
type Withdrawal struct {
	ID               uuid.UUID       `gorm:"type:uuid;primaryKey;default:uuid_generate_v4()"`
	MerchantID       uuid.UUID       `gorm:"type:uuid;not null;index"`
	Amount           decimal.Decimal `gorm:"type:decimal(18,4);not null"`
	Fee              decimal.Decimal `gorm:"type:decimal(18,4);not null"`
	NetAmount        decimal.Decimal `gorm:"type:decimal(18,4);not null"`
	Provider         string          `gorm:"type:varchar(20);not null"`
	DestinationPhone string          `gorm:"type:varchar(20);not null"`
	Status           string          `gorm:"type:varchar(50);not null;index;default:'pending'"`
	CreatedAt        time.Time       `gorm:"index"`
	UpdatedAt        time.Time
}
