package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Merchant struct {
	ID            uuid.UUID `gorm:"type:uuid;primaryKey;default:uuid_generate_v4()"`
	UserID        uuid.UUID `gorm:"type:uuid;not null;uniqueIndex"`
	BusinessName  string    `gorm:"type:varchar(255);not null"`
	BusinessEmail string    `gorm:"type:varchar(255)"`
	Status        string    `gorm:"type:varchar(50);not null;default:'pending'"`
	VerifiedAt    *time.Time
	CreatedAt     time.Time
	UpdatedAt     time.Time
	DeletedAt     gorm.DeletedAt `gorm:"index"`
}
