package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Sale rows are financial records and never deleted.
type Sale struct {
	ID          uuid.UUID       `gorm:"type:uuid;primaryKey;default:uuid_generate_v4()"`
	MerchantID  uuid.UUID       `gorm:"type:uuid;not null;index"`
	ProductID   uuid.UUID       `gorm:"type:uuid;not null;index"`
	ProductName string          `gorm:"type:varchar(255);not null"`
	BuyerName   string          `gorm:"type:varchar(100);not null"`
	BuyerEmail  *string         `gorm:"type:varchar(255)"`
	BuyerPhone  string          `gorm:"type:varchar(20);not null"`
	Provider    string          `gorm:"type:varchar(20);not null"`
	Amount      decimal.Decimal `gorm:"type:decimal(18,4);not null"`
	Fee         decimal.Decimal `gorm:"type:decimal(18,4);not null"`
	Status      string          `gorm:"type:varchar(50);not null;index;default:'pending'"`
	CreatedAt   time.Time       `gorm:"index"`
	UpdatedAt   time.Time
}
