package repositories

import (
	"context"

	"github.com/google/uuid"
	"payeasy.backend/internal/domain/entities"
)

// PaymentLinkRepository defines checkout link data operations
type PaymentLinkRepository interface {
	Create(ctx context.Context, link *entities.PaymentLink) error
	GetByID(ctx context.Context, id uuid.UUID) (*entities.PaymentLink, error)
	// GetByMerchantAndProduct backs link idempotency per (owner, product).
	GetByMerchantAndProduct(ctx context.Context, merchantID, productID uuid.UUID) (*entities.PaymentLink, error)
	GetByMerchantID(ctx context.Context, merchantID uuid.UUID, limit, offset int) ([]*entities.PaymentLink, int, error)
	SoftDelete(ctx context.Context, id uuid.UUID) error
}
