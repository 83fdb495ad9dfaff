package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type Product struct {
	ID          uuid.UUID       `gorm:"type:uuid;primaryKey;default:uuid_generate_v4()"`
	MerchantID  uuid.UUID       `gorm:"type:uuid;not null;index"`
	Name        string          `gorm:"type:varchar(255);not null"`
	Category    string          `gorm:"type:varchar(100);not null"`
	Price       decimal.Decimal `gorm:"type:decimal(18,4);not null"`
	Available   bool            `gorm:"not null;default:true"`
	Status      string          `gorm:"type:varchar(50);not null;index;default:'pending'"`
	LimitedTime bool            `gorm:"not null;default:false"`
	OfferTitle  *string         `gorm:"type:varchar(255)"`
	OfferPrice  *decimal.Decimal `gorm:"type:decimal(18,4)"`
	CreatedAt   time.Time
	UpdatedAt   time.Time
	DeletedAt   gorm.DeletedAt `gorm:"index"`
}
