package repositories

import (
	"context"
	"time"

	"github.com/google/uuid"
	"payeasy.backend/internal/domain/entities"
)

// ProductRepository defines product data operations
type ProductRepository interface {
	Create(ctx context.Context, product *entities.Product) error
	GetByID(ctx context.Context, id uuid.UUID) (*entities.Product, error)
	GetByMerchantID(ctx context.Context, merchantID uuid.UUID, limit, offset int) ([]*entities.Product, int, error)
	Update(ctx context.Context, product *entities.Product) error
	UpdateStatus(ctx context.Context, id uuid.UUID, status entities.ProductStatus) error
	SoftDelete(ctx context.Context, id uuid.UUID) error
	// GetPendingOlderThan returns products still awaiting review that
	// were created before the cutoff. Used by the review job.
	GetPendingOlderThan(ctx context.Context, cutoff time.Time, limit int) ([]*entities.Product, error)
}
