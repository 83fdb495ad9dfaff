package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type PaymentLink struct {
	ID         uuid.UUID `gorm:"type:uuid;primaryKey;default:uuid_generate_v4()"`
	MerchantID uuid.UUID `gorm:"type:uuid;not null;index;uniqueIndex:idx_payment_links_owner_product"`
	ProductID  uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_payment_links_owner_product"`
	URL        string    `gorm:"type:text;not null"`
	CreatedAt  time.Time
	DeletedAt  gorm.DeletedAt `gorm:"index"`
}
