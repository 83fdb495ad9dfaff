package repositories

import (
	"context"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"payeasy.backend/internal/domain/entities"
)

// LedgerRepository defines append-only balance ledger operations. The
// merchant balance is derived, never stored.
type LedgerRepository interface {
	Create(ctx context.Context, entry *entities.LedgerEntry) error
	// Balance returns the signed sum of all entries for a merchant.
	Balance(ctx context.Context, merchantID uuid.UUID) (decimal.Decimal, error)
	GetByMerchantID(ctx context.Context, merchantID uuid.UUID, limit, offset int) ([]*entities.LedgerEntry, int, error)
}
