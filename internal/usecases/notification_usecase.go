package usecases

import (
	"context"

	"github.com/google/uuid"
	"payeasy.backend/internal/domain/entities"
	"payeasy.backend/internal/domain/repositories"
	"payeasy.backend/pkg/utils"
)

// NotificationUsecase handles the merchant notification feed
type NotificationUsecase struct {
	notificationRepo repositories.NotificationRepository
	merchantRepo     repositories.MerchantRepository
}

// NewNotificationUsecase creates a new notification usecase
func NewNotificationUsecase(notificationRepo repositories.NotificationRepository, merchantRepo repositories.MerchantRepository) *NotificationUsecase {
	return &NotificationUsecase{
		notificationRepo: notificationRepo,
		merchantRepo:     merchantRepo,
	}
}

// List returns the merchant's notifications, newest first
func (u *NotificationUsecase) List(ctx context.Context, userID uuid.UUID, params utils.PaginationParams) ([]*entities.Notification, *utils.PaginationMeta, error) {
	merchant, err := u.merchantRepo.GetByUserID(ctx, userID)
	if err != nil {
		return nil, nil, err
	}

	notifications, total, err := u.notificationRepo.GetByMerchantID(ctx, merchant.ID, params.Limit, params.CalculateOffset())
	if err != nil {
		return nil, nil, err
	}

	meta := utils.CalculateMeta(int64(total), params.Page, params.Limit)
	return notifications, &meta, nil
}

// MarkRead marks one notification as read
func (u *NotificationUsecase) MarkRead(ctx context.Context, userID, notificationID uuid.UUID) error {
	merchant, err := u.merchantRepo.GetByUserID(ctx, userID)
	if err != nil {
		return err
	}
	return u.notificationRepo.MarkRead(ctx, merchant.ID, notificationID)
}

// MarkAllRead marks the whole feed as read
func (u *NotificationUsecase) MarkAllRead(ctx context.Context, userID uuid.UUID) error {
	merchant, err := u.merchantRepo.GetByUserID(ctx, userID)
	if err != nil {
		return err
	}
	return u.notificationRepo.MarkAllRead(ctx, merchant.ID)
}
