package repositories

import (
	"context"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"payeasy.backend/internal/domain/entities"
)

// WithdrawalRepository defines withdrawal data operations. Withdrawals
// are immutable ledger entries apart from their settlement status.
type WithdrawalRepository interface {
	Create(ctx context.Context, withdrawal *entities.Withdrawal) error
	GetByID(ctx context.Context, id uuid.UUID) (*entities.Withdrawal, error)
	GetByMerchantID(ctx context.Context, merchantID uuid.UUID, limit, offset int) ([]*entities.Withdrawal, int, error)
	UpdateStatus(ctx context.Context, id uuid.UUID, status entities.WithdrawalStatus) error
	// SumCompleted returns the total gross amount of completed
	// withdrawals for a merchant.
	SumCompleted(ctx context.Context, merchantID uuid.UUID) (decimal.Decimal, error)
}
