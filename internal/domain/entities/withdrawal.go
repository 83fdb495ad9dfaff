package entities

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"payeasy.backend/internal/domain/wallet"
)

// WithdrawalStatus represents the settlement state of a withdrawal
type WithdrawalStatus string

const (
	WithdrawalStatusPending   WithdrawalStatus = "pending"
	WithdrawalStatusCompleted WithdrawalStatus = "completed"
	WithdrawalStatusRejected  WithdrawalStatus = "rejected"
)

// withdrawalTransitions lists the legal settlement moves. Completed and
// rejected are terminal.
var withdrawalTransitions = map[WithdrawalStatus]map[WithdrawalStatus]bool{
	WithdrawalStatusPending:   {WithdrawalStatusCompleted: true, WithdrawalStatusRejected: true},
	WithdrawalStatusCompleted: {},
	WithdrawalStatusRejected:  {},
}

// CanTransitionWithdrawal reports whether a withdrawal may move from one
// status to another.
func CanTransitionWithdrawal(from, to WithdrawalStatus) bool {
	return withdrawalTransitions[from][to]
}

// Withdrawal is a merchant payout request. Immutable once created; the
// funds hold lives in the ledger, not here.
type Withdrawal struct {
	ID               uuid.UUID        `json:"id"`
	MerchantID       uuid.UUID        `json:"merchantId"`
	Amount           decimal.Decimal  `json:"amount"`
	Fee              decimal.Decimal  `json:"fee"`
	NetAmount        decimal.Decimal  `json:"netAmount"`
	Provider         wallet.Provider  `json:"provider"`
	DestinationPhone string           `json:"destinationPhone"`
	Status           WithdrawalStatus `json:"status"`
	CreatedAt        time.Time        `json:"createdAt"`
	UpdatedAt        time.Time        `json:"updatedAt"`
}

// RequestWithdrawalInput represents a merchant withdrawal request
type RequestWithdrawalInput struct {
	Amount   string `json:"amount" binding:"required"`
	Provider string `json:"provider" binding:"required"`
	Phone    string `json:"phone" binding:"required"`
}
