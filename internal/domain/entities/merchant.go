package entities

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/volatiletech/null/v8"
)

// MerchantStatus represents merchant account status
type MerchantStatus string

const (
	MerchantStatusPending   MerchantStatus = "pending"
	MerchantStatusActive    MerchantStatus = "active"
	MerchantStatusSuspended MerchantStatus = "suspended"
	MerchantStatusRejected  MerchantStatus = "rejected"
)

// Merchant represents a merchant account. Every product, sale,
// withdrawal, link and notification is owned by exactly one merchant.
type Merchant struct {
	ID            uuid.UUID      `json:"id"`
	UserID        uuid.UUID      `json:"userId"`
	BusinessName  string         `json:"businessName"`
	BusinessEmail null.String    `json:"businessEmail,omitempty"`
	Status        MerchantStatus `json:"status"`
	VerifiedAt    null.Time      `json:"verifiedAt,omitempty"`
	CreatedAt     time.Time      `json:"createdAt"`
	UpdatedAt     time.Time      `json:"updatedAt"`
	DeletedAt     null.Time      `json:"-"`
}

// FinanceOverview summarizes a merchant's ledger position.
type FinanceOverview struct {
	Balance        decimal.Decimal `json:"balance"`
	GrossRevenue   decimal.Decimal `json:"grossRevenue"`
	NetRevenue     decimal.Decimal `json:"netRevenue"`
	ApprovedSales  int64           `json:"approvedSales"`
	PendingSales   int64           `json:"pendingSales"`
	TotalWithdrawn decimal.Decimal `json:"totalWithdrawn"`
}
