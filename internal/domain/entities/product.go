package entities

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/volatiletech/null/v8"
)

// ProductStatus represents the review state of a product
type ProductStatus string

const (
	ProductStatusPending  ProductStatus = "pending"
	ProductStatusApproved ProductStatus = "approved"
	ProductStatusRejected ProductStatus = "rejected"
)

// productTransitions lists the legal review transitions. A reviewed
// product stays reviewed.
var productTransitions = map[ProductStatus]map[ProductStatus]bool{
	ProductStatusPending:  {ProductStatusApproved: true, ProductStatusRejected: true},
	ProductStatusApproved: {},
	ProductStatusRejected: {},
}

// CanTransitionProduct reports whether a product may move between the
// two review states.
func CanTransitionProduct(from, to ProductStatus) bool {
	return productTransitions[from][to]
}

// Product represents a digital product listed by a merchant
type Product struct {
	ID          uuid.UUID       `json:"id"`
	MerchantID  uuid.UUID       `json:"merchantId"`
	Name        string          `json:"name"`
	Category    string          `json:"category"`
	Price       decimal.Decimal `json:"price"`
	Available   bool            `json:"available"`
	Status      ProductStatus   `json:"status"`
	LimitedTime bool            `json:"limitedTime"`
	OfferTitle  null.String     `json:"offerTitle,omitempty"`
	OfferPrice  decimal.NullDecimal `json:"offerPrice,omitempty"`
	CreatedAt   time.Time       `json:"createdAt"`
	UpdatedAt   time.Time       `json:"updatedAt"`
	DeletedAt   *time.Time      `json:"-"`
}

// Purchasable reports whether a buyer may check the product out.
func (p *Product) Purchasable() bool {
	return p.Status == ProductStatusApproved && p.Available
}

// CreateProductInput represents input for creating a product
type CreateProductInput struct {
	Name        string `json:"name" binding:"required,min=2,max=255"`
	Category    string `json:"category" binding:"required"`
	Price       string `json:"price" binding:"required"`
	Available   *bool  `json:"available"`
	LimitedTime bool   `json:"limitedTime"`
	OfferTitle  string `json:"offerTitle"`
	OfferPrice  string `json:"offerPrice"`
}

// UpdateProductInput represents input for updating a product
type UpdateProductInput struct {
	Name        string `json:"name" binding:"omitempty,min=2,max=255"`
	Category    string `json:"category"`
	Price       string `json:"price"`
	Available   *bool  `json:"available"`
	LimitedTime *bool  `json:"limitedTime"`
	OfferTitle  string `json:"offerTitle"`
	OfferPrice  string `json:"offerPrice"`
}
