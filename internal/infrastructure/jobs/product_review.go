package jobs

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"
	"payeasy.backend/internal/domain/entities"
	"payeasy.backend/internal/domain/repositories"
	"payeasy.backend/pkg/logger"
)

// ProductReviewJob auto-approves products that have been waiting in
// review longer than the configured delay.
type ProductReviewJob struct {
	products      repositories.ProductRepository
	notifications repositories.NotificationRepository
	delay         time.Duration
	interval      time.Duration
	stop          chan struct{}
}

func NewProductReviewJob(products repositories.ProductRepository, notifications repositories.NotificationRepository, delay, interval time.Duration) *ProductReviewJob {
	return &ProductReviewJob{
		products:      products,
		notifications: notifications,
		delay:         delay,
		interval:      interval,
		stop:          make(chan struct{}),
	}
}

func (j *ProductReviewJob) Start(ctx context.Context) {
	logger.Info(ctx, "starting product review job", zap.Duration("interval", j.interval))

	ticker := time.NewTicker(j.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			logger.Info(ctx, "product review job stopped")
			return
		case <-j.stop:
			logger.Info(ctx, "product review job stopped")
			return
		case <-ticker.C:
			j.processPendingProducts(ctx)
		}
	}
}

func (j *ProductReviewJob) Stop() {
	close(j.stop)
}

func (j *ProductReviewJob) processPendingProducts(ctx context.Context) {
	cutoff := time.Now().Add(-j.delay)
	pending, err := j.products.GetPendingOlderThan(ctx, cutoff, 100)
	if err != nil {
		logger.Error(ctx, "failed to fetch products awaiting review", zap.Error(err))
		return
	}

	if len(pending) == 0 {
		return
	}

	for _, p := range pending {
		if !entities.CanTransitionProduct(p.Status, entities.ProductStatusApproved) {
			continue
		}
		if err := j.products.UpdateStatus(ctx, p.ID, entities.ProductStatusApproved); err != nil {
			logger.Error(ctx, "failed to approve product", zap.String("product_id", p.ID.String()), zap.Error(err))
			continue
		}

		notification := &entities.Notification{
			MerchantID: p.MerchantID,
			Title:      "Produto aprovado",
			Message:    fmt.Sprintf("O produto %q foi aprovado e já pode ser vendido.", p.Name),
		}
		if err := j.notifications.Create(ctx, notification); err != nil {
			logger.Error(ctx, "failed to create approval notification", zap.String("product_id", p.ID.String()), zap.Error(err))
		}
	}

	logger.Info(ctx, "approved products awaiting review", zap.Int("count", len(pending)))
}
