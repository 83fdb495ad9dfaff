package repositories

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"payeasy.backend/internal/domain/entities"
	domainerrors "payeasy.backend/internal/domain/errors"
	"payeasy.backend/internal/infrastructure/models"
	"payeasy.backend/pkg/utils"
)

// NotificationRepository implements notification data operations
type NotificationRepository struct {
	db *gorm.DB
}

// NewNotificationRepository creates a new notification repository
func NewNotificationRepository(db *gorm.DB) *NotificationRepository {
	return &NotificationRepository{db: db}
}

// Create creates a new notification
func (r *NotificationRepository) Create(ctx context.Context, notification *entities.Notification) error {
	if notification.ID == uuid.Nil {
		notification.ID = utils.GenerateUUIDv7()
	}

	m := &models.Notification{
		ID:         notification.ID,
		MerchantID: notification.MerchantID,
		Title:      notification.Title,
		Message:    notification.Message,
		Read:       notification.Read,
	}

	db := GetDB(ctx, r.db)
	if err := db.WithContext(ctx).Create(m).Error; err != nil {
		return err
	}

	notification.CreatedAt = m.CreatedAt
	return nil
}

// GetByMerchantID gets notifications for a merchant with pagination
func (r *NotificationRepository) GetByMerchantID(ctx context.Context, merchantID uuid.UUID, limit, offset int) ([]*entities.Notification, int, error) {
	var ms []models.Notification
	var total int64

	db := GetDB(ctx, r.db)
	query := db.WithContext(ctx).Model(&models.Notification{}).Where("merchant_id = ?", merchantID)

	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	if err := query.Order("created_at DESC").Limit(limit).Offset(offset).Find(&ms).Error; err != nil {
		return nil, 0, err
	}

	notifications := make([]*entities.Notification, 0, len(ms))
	for _, m := range ms {
		model := m
		notifications = append(notifications, r.toEntity(&model))
	}
	return notifications, int(total), nil
}

// MarkRead marks one notification as read. Scoped by merchant so one
// merchant cannot touch another's feed.
func (r *NotificationRepository) MarkRead(ctx context.Context, merchantID, id uuid.UUID) error {
	db := GetDB(ctx, r.db)
	result := db.WithContext(ctx).Model(&models.Notification{}).
		Where("id = ? AND merchant_id = ?", id, merchantID).
		Update("read", true)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domainerrors.ErrNotFound
	}
	return nil
}

// MarkAllRead marks all of a merchant's notifications as read
func (r *NotificationRepository) MarkAllRead(ctx context.Context, merchantID uuid.UUID) error {
	db := GetDB(ctx, r.db)
	return db.WithContext(ctx).Model(&models.Notification{}).
		Where("merchant_id = ? AND read = ?", merchantID, false).
		Update("read", true).Error
}

func (r *NotificationRepository) toEntity(m *models.Notification) *entities.Notification {
	return &entities.Notification{
		ID:         m.ID,
		MerchantID: m.MerchantID,
		Title:      m.Title,
		Message:    m.Message,
		Read:       m.Read,
		CreatedAt:  m.CreatedAt,
	}
}
