package repositories

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"payeasy.backend/internal/domain/entities"
)

// SaleAggregate summarizes sales of one status for a merchant.
type SaleAggregate struct {
	Gross decimal.Decimal
	Fees  decimal.Decimal
	Count int64
}

// SaleRepository defines sale data operations. Sales are financial
// records and are never hard-deleted.
type SaleRepository interface {
	Create(ctx context.Context, sale *entities.Sale) error
	GetByID(ctx context.Context, id uuid.UUID) (*entities.Sale, error)
	GetByMerchantID(ctx context.Context, merchantID uuid.UUID, limit, offset int) ([]*entities.Sale, int, error)
	UpdateStatus(ctx context.Context, id uuid.UUID, status entities.SaleStatus) error
	// AggregateByStatus sums gross amounts and fees for one status.
	AggregateByStatus(ctx context.Context, merchantID uuid.UUID, status entities.SaleStatus) (*SaleAggregate, error)
	// GetPendingOlderThan returns pending sales created before the
	// cutoff. Used by the confirmation sweep.
	GetPendingOlderThan(ctx context.Context, cutoff time.Time, limit int) ([]*entities.Sale, error)
}
