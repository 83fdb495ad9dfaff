package usecases

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"payeasy.backend/internal/domain/entities"
	domainerrors "payeasy.backend/internal/domain/errors"
	"payeasy.backend/internal/domain/repositories"
)

// AdminUsecase handles platform operator actions
type AdminUsecase struct {
	productRepo  repositories.ProductRepository
	merchantRepo repositories.MerchantRepository
	notifier     *Notifier
}

// NewAdminUsecase creates a new admin usecase
func NewAdminUsecase(
	productRepo repositories.ProductRepository,
	merchantRepo repositories.MerchantRepository,
	notifier *Notifier,
) *AdminUsecase {
	return &AdminUsecase{
		productRepo:  productRepo,
		merchantRepo: merchantRepo,
		notifier:     notifier,
	}
}

// ReviewProduct overrides the automatic review of a pending product.
// A reviewed product stays reviewed.
func (u *AdminUsecase) ReviewProduct(ctx context.Context, productID uuid.UUID, status entities.ProductStatus) error {
	switch status {
	case entities.ProductStatusApproved, entities.ProductStatusRejected:
	default:
		return domainerrors.NewError(fmt.Sprintf("unknown product status %q", status), domainerrors.ErrInvalidInput)
	}

	product, err := u.productRepo.GetByID(ctx, productID)
	if err != nil {
		return err
	}
	if !entities.CanTransitionProduct(product.Status, status) {
		return domainerrors.NewError(
			fmt.Sprintf("product is already %s", product.Status),
			domainerrors.ErrInvalidTransition,
		)
	}

	if err := u.productRepo.UpdateStatus(ctx, productID, status); err != nil {
		return err
	}

	switch status {
	case entities.ProductStatusApproved:
		u.notifier.Notify(ctx, product.MerchantID, "Produto aprovado",
			fmt.Sprintf("O produto %q foi aprovado e já pode ser vendido.", product.Name))
	case entities.ProductStatusRejected:
		u.notifier.Notify(ctx, product.MerchantID, "Produto rejeitado",
			fmt.Sprintf("O produto %q foi rejeitado na revisão.", product.Name))
	}
	return nil
}

// PlatformStats is the operator dashboard summary.
type PlatformStats struct {
	TotalMerchants     int64 `json:"totalMerchants"`
	PendingMerchants   int64 `json:"pendingMerchants"`
	ActiveMerchants    int64 `json:"activeMerchants"`
	SuspendedMerchants int64 `json:"suspendedMerchants"`
	RejectedMerchants  int64 `json:"rejectedMerchants"`
}

// Stats summarizes the merchant base for the operator dashboard
func (u *AdminUsecase) Stats(ctx context.Context) (*PlatformStats, error) {
	merchants, err := u.merchantRepo.List(ctx)
	if err != nil {
		return nil, err
	}

	stats := &PlatformStats{TotalMerchants: int64(len(merchants))}
	for _, m := range merchants {
		switch m.Status {
		case entities.MerchantStatusPending:
			stats.PendingMerchants++
		case entities.MerchantStatusActive:
			stats.ActiveMerchants++
		case entities.MerchantStatusSuspended:
			stats.SuspendedMerchants++
		case entities.MerchantStatusRejected:
			stats.RejectedMerchants++
		}
	}
	return stats, nil
}
