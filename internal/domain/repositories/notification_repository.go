package repositories

import (
	"context"

	"github.com/google/uuid"
	"payeasy.backend/internal/domain/entities"
)

// NotificationRepository defines notification data operations
type NotificationRepository interface {
	Create(ctx context.Context, notification *entities.Notification) error
	GetByMerchantID(ctx context.Context, merchantID uuid.UUID, limit, offset int) ([]*entities.Notification, int, error)
	MarkRead(ctx context.Context, merchantID, id uuid.UUID) error
	MarkAllRead(ctx context.Context, merchantID uuid.UUID) error
}
