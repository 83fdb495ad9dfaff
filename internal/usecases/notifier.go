package usecases

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"payeasy.backend/internal/domain/entities"
	"payeasy.backend/internal/domain/repositories"
	"payeasy.backend/pkg/logger"
)

// Publisher pushes a payload onto a realtime channel. Backed by Redis
// pub/sub in production.
type Publisher interface {
	Publish(ctx context.Context, channel string, payload interface{}) error
}

// PublisherFunc adapts a function to the Publisher interface
type PublisherFunc func(ctx context.Context, channel string, payload interface{}) error

func (f PublisherFunc) Publish(ctx context.Context, channel string, payload interface{}) error {
	return f(ctx, channel, payload)
}

// Notifier records a merchant notification and mirrors it onto the
// realtime feed. The feed is best-effort; the database row is the
// source of truth.
type Notifier struct {
	repo      repositories.NotificationRepository
	publisher Publisher
}

// NewNotifier creates a new notifier. publisher may be nil when no
// realtime feed is wired.
func NewNotifier(repo repositories.NotificationRepository, publisher Publisher) *Notifier {
	return &Notifier{repo: repo, publisher: publisher}
}

// NotificationChannel returns the realtime channel for a merchant
func NotificationChannel(merchantID uuid.UUID) string {
	return fmt.Sprintf("notifications:%s", merchantID)
}

// Notify stores the notification and publishes it to the merchant's
// channel.
func (n *Notifier) Notify(ctx context.Context, merchantID uuid.UUID, title, message string) {
	notification := &entities.Notification{
		MerchantID: merchantID,
		Title:      title,
		Message:    message,
	}
	if err := n.repo.Create(ctx, notification); err != nil {
		logger.Error(ctx, "failed to store notification",
			zap.String("merchant_id", merchantID.String()), zap.Error(err))
		return
	}

	if n.publisher == nil {
		return
	}
	payload, err := json.Marshal(notification)
	if err != nil {
		return
	}
	if err := n.publisher.Publish(ctx, NotificationChannel(merchantID), payload); err != nil {
		logger.Warn(ctx, "failed to publish notification",
			zap.String("merchant_id", merchantID.String()), zap.Error(err))
	}
}
