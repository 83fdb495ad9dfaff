package entities

import (
	"fmt"
	"time"

	"github.com/google/uuid"
)

// PaymentLink is a shareable checkout URL for a product. One link per
// (merchant, product) pair; creating it again returns the existing one.
type PaymentLink struct {
	ID         uuid.UUID  `json:"id"`
	MerchantID uuid.UUID  `json:"merchantId"`
	ProductID  uuid.UUID  `json:"productId"`
	URL        string     `json:"url"`
	CreatedAt  time.Time  `json:"createdAt"`
	DeletedAt  *time.Time `json:"-"`
}

// BuildCheckoutURL derives the public checkout URL for a link. The URL
// always embeds the exact product id the link was generated for.
func BuildCheckoutURL(baseURL string, productID, linkID uuid.UUID) string {
	return fmt.Sprintf("%s/checkout/%s?ref=%s", baseURL, productID, linkID)
}

// CreatePaymentLinkInput represents input for generating a checkout link
type CreatePaymentLinkInput struct {
	ProductID string `json:"productId" binding:"required,uuid"`
}
