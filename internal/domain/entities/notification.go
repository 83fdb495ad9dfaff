package entities

import (
	"time"

	"github.com/google/uuid"
)

// Notification is an informational side record for the merchant
// dashboard. Not part of any financial invariant.
type Notification struct {
	ID         uuid.UUID `json:"id"`
	MerchantID uuid.UUID `json:"merchantId"`
	Title      string    `json:"title"`
	Message    string    `json:"message"`
	Read       bool      `json:"read"`
	CreatedAt  time.Time `json:"createdAt"`
}
