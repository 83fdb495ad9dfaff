package entities

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// LedgerEntryType classifies a ledger movement. Credits increase the
// merchant's available balance, debits decrease it.
type LedgerEntryType string

const (
	// LedgerEntrySaleCredit credits the net amount of an approved sale.
	LedgerEntrySaleCredit LedgerEntryType = "sale_credit"
	// LedgerEntrySaleReversal debits a previously credited sale on refund.
	LedgerEntrySaleReversal LedgerEntryType = "sale_reversal"
	// LedgerEntryWithdrawalHold debits the gross amount when a
	// withdrawal is requested.
	LedgerEntryWithdrawalHold LedgerEntryType = "withdrawal_hold"
	// LedgerEntryWithdrawalReversal credits the hold back when a
	// withdrawal is rejected.
	LedgerEntryWithdrawalReversal LedgerEntryType = "withdrawal_reversal"
)

// credits is the set of entry types that add to the balance.
var credits = map[LedgerEntryType]bool{
	LedgerEntrySaleCredit:         true,
	LedgerEntryWithdrawalReversal: true,
}

// LedgerEntry is one append-only balance movement. The merchant balance
// is the signed sum of all entries; there is no mutable counter.
type LedgerEntry struct {
	ID         uuid.UUID       `json:"id"`
	MerchantID uuid.UUID       `json:"merchantId"`
	EntryType  LedgerEntryType `json:"entryType"`
	Amount     decimal.Decimal `json:"amount"`
	// ReferenceID points at the sale or withdrawal that caused the entry.
	ReferenceID uuid.UUID `json:"referenceId"`
	CreatedAt   time.Time `json:"createdAt"`
}

// Signed returns the amount with the sign implied by the entry type.
func (e *LedgerEntry) Signed() decimal.Decimal {
	if credits[e.EntryType] {
		return e.Amount
	}
	return e.Amount.Neg()
}
