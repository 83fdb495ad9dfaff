package jobs

import (
	"context"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"payeasy.backend/internal/domain/repositories"
	"payeasy.backend/pkg/logger"
)

// SaleApprover settles a pending sale. Implemented by the sale
// lifecycle use case; the job only decides which sales are due.
type SaleApprover interface {
	ApproveSale(ctx context.Context, saleID uuid.UUID) error
}

// SaleConfirmationJob sweeps sales stuck in pending and confirms them.
// It is the fallback path when the gateway webhook never arrived.
type SaleConfirmationJob struct {
	sales    repositories.SaleRepository
	approver SaleApprover
	maxAge   time.Duration
	interval time.Duration
	stop     chan struct{}
}

func NewSaleConfirmationJob(sales repositories.SaleRepository, approver SaleApprover, maxAge, interval time.Duration) *SaleConfirmationJob {
	return &SaleConfirmationJob{
		sales:    sales,
		approver: approver,
		maxAge:   maxAge,
		interval: interval,
		stop:     make(chan struct{}),
	}
}

func (j *SaleConfirmationJob) Start(ctx context.Context) {
	logger.Info(ctx, "starting sale confirmation job", zap.Duration("interval", j.interval))

	ticker := time.NewTicker(j.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			logger.Info(ctx, "sale confirmation job stopped")
			return
		case <-j.stop:
			logger.Info(ctx, "sale confirmation job stopped")
			return
		case <-ticker.C:
			j.processPendingSales(ctx)
		}
	}
}

func (j *SaleConfirmationJob) Stop() {
	close(j.stop)
}

func (j *SaleConfirmationJob) processPendingSales(ctx context.Context) {
	cutoff := time.Now().Add(-j.maxAge)
	pending, err := j.sales.GetPendingOlderThan(ctx, cutoff, 100)
	if err != nil {
		logger.Error(ctx, "failed to fetch pending sales", zap.Error(err))
		return
	}

	if len(pending) == 0 {
		return
	}

	confirmed := 0
	for _, s := range pending {
		if err := j.approver.ApproveSale(ctx, s.ID); err != nil {
			logger.Error(ctx, "failed to confirm sale", zap.String("sale_id", s.ID.String()), zap.Error(err))
			continue
		}
		confirmed++
	}

	logger.Info(ctx, "confirmed pending sales", zap.Int("confirmed", confirmed), zap.Int("due", len(pending)))
}
