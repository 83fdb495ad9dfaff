package entities

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/volatiletech/null/v8"
	"payeasy.backend/internal/domain/wallet"
)

// SaleStatus represents the lifecycle state of a sale
type SaleStatus string

const (
	SaleStatusPending   SaleStatus = "pending"
	SaleStatusApproved  SaleStatus = "approved"
	SaleStatusCancelled SaleStatus = "cancelled"
	SaleStatusRefunded  SaleStatus = "refunded"
)

// saleTransitions lists the legal lifecycle moves. Cancelled and
// refunded are terminal.
var saleTransitions = map[SaleStatus]map[SaleStatus]bool{
	SaleStatusPending:   {SaleStatusApproved: true, SaleStatusCancelled: true},
	SaleStatusApproved:  {SaleStatusRefunded: true},
	SaleStatusCancelled: {},
	SaleStatusRefunded:  {},
}

// CanTransitionSale reports whether a sale may move from one status to
// another.
func CanTransitionSale(from, to SaleStatus) bool {
	return saleTransitions[from][to]
}

// Sale is a financial record of a buyer purchase. Never hard-deleted.
type Sale struct {
	ID          uuid.UUID       `json:"id"`
	MerchantID  uuid.UUID       `json:"merchantId"`
	ProductID   uuid.UUID       `json:"productId"`
	ProductName string          `json:"productName"`
	BuyerName   string          `json:"buyerName"`
	BuyerEmail  null.String     `json:"buyerEmail,omitempty"`
	BuyerPhone  string          `json:"buyerPhone"`
	Provider    wallet.Provider `json:"provider"`
	Amount      decimal.Decimal `json:"amount"`
	Fee         decimal.Decimal `json:"fee"`
	Status      SaleStatus      `json:"status"`
	CreatedAt   time.Time       `json:"createdAt"`
	UpdatedAt   time.Time       `json:"updatedAt"`
}

// Net returns the merchant's share of the sale.
func (s *Sale) Net() decimal.Decimal {
	return s.Amount.Sub(s.Fee)
}

// CheckoutInput is the buyer submission on the public checkout page.
type CheckoutInput struct {
	BuyerName  string `json:"buyerName" binding:"required"`
	BuyerEmail string `json:"buyerEmail" binding:"omitempty,email"`
	BuyerPhone string `json:"buyerPhone" binding:"required"`
	Provider   string `json:"provider" binding:"required"`
	// LinkID is the ?ref= value when the buyer arrived via a payment link.
	LinkID string `json:"-"`
}

// CheckoutResponse is returned after a successful checkout submission.
type CheckoutResponse struct {
	SaleID  uuid.UUID  `json:"saleId"`
	Status  SaleStatus `json:"status"`
	Message string     `json:"message"`
}

// CheckoutPage is the public view of a product on the checkout page.
type CheckoutPage struct {
	ProductID   uuid.UUID           `json:"productId"`
	Name        string              `json:"name"`
	Category    string              `json:"category"`
	Price       decimal.Decimal     `json:"price"`
	LimitedTime bool                `json:"limitedTime"`
	OfferTitle  null.String         `json:"offerTitle,omitempty"`
	OfferPrice  decimal.NullDecimal `json:"offerPrice,omitempty"`
	Merchant    string              `json:"merchant"`
}
