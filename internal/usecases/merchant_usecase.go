package usecases

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"payeasy.backend/internal/domain/entities"
	domainerrors "payeasy.backend/internal/domain/errors"
	"payeasy.backend/internal/domain/repositories"
)

// MerchantUsecase handles merchant account and finance overview logic
type MerchantUsecase struct {
	merchantRepo   repositories.MerchantRepository
	saleRepo       repositories.SaleRepository
	withdrawalRepo repositories.WithdrawalRepository
	ledgerRepo     repositories.LedgerRepository
	notifier       *Notifier
}

// NewMerchantUsecase creates a new merchant usecase
func NewMerchantUsecase(
	merchantRepo repositories.MerchantRepository,
	saleRepo repositories.SaleRepository,
	withdrawalRepo repositories.WithdrawalRepository,
	ledgerRepo repositories.LedgerRepository,
	notifier *Notifier,
) *MerchantUsecase {
	return &MerchantUsecase{
		merchantRepo:   merchantRepo,
		saleRepo:       saleRepo,
		withdrawalRepo: withdrawalRepo,
		ledgerRepo:     ledgerRepo,
		notifier:       notifier,
	}
}

// FinanceOverview assembles the merchant dashboard numbers. The balance
// comes from the ledger, never from a stored counter.
func (u *MerchantUsecase) FinanceOverview(ctx context.Context, userID uuid.UUID) (*entities.FinanceOverview, error) {
	merchant, err := u.merchantRepo.GetByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}

	balance, err := u.ledgerRepo.Balance(ctx, merchant.ID)
	if err != nil {
		return nil, err
	}

	approved, err := u.saleRepo.AggregateByStatus(ctx, merchant.ID, entities.SaleStatusApproved)
	if err != nil {
		return nil, err
	}
	pending, err := u.saleRepo.AggregateByStatus(ctx, merchant.ID, entities.SaleStatusPending)
	if err != nil {
		return nil, err
	}

	withdrawn, err := u.withdrawalRepo.SumCompleted(ctx, merchant.ID)
	if err != nil {
		return nil, err
	}

	return &entities.FinanceOverview{
		Balance:        balance,
		GrossRevenue:   approved.Gross,
		NetRevenue:     approved.Gross.Sub(approved.Fees),
		ApprovedSales:  approved.Count,
		PendingSales:   pending.Count,
		TotalWithdrawn: withdrawn,
	}, nil
}

// Ledger returns the merchant's ledger entries, newest first
func (u *MerchantUsecase) Ledger(ctx context.Context, userID uuid.UUID, limit, offset int) ([]*entities.LedgerEntry, int, error) {
	merchant, err := u.merchantRepo.GetByUserID(ctx, userID)
	if err != nil {
		return nil, 0, err
	}
	return u.ledgerRepo.GetByMerchantID(ctx, merchant.ID, limit, offset)
}

// ListMerchants returns all merchants. Admin only.
func (u *MerchantUsecase) ListMerchants(ctx context.Context) ([]*entities.Merchant, error) {
	return u.merchantRepo.List(ctx)
}

// UpdateMerchantStatus moves a merchant between account states. Admin
// only.
func (u *MerchantUsecase) UpdateMerchantStatus(ctx context.Context, merchantID uuid.UUID, status entities.MerchantStatus) error {
	switch status {
	case entities.MerchantStatusPending, entities.MerchantStatusActive,
		entities.MerchantStatusSuspended, entities.MerchantStatusRejected:
	default:
		return domainerrors.NewError(fmt.Sprintf("unknown merchant status %q", status), domainerrors.ErrInvalidInput)
	}

	if _, err := u.merchantRepo.GetByID(ctx, merchantID); err != nil {
		return err
	}
	if err := u.merchantRepo.UpdateStatus(ctx, merchantID, status); err != nil {
		return err
	}

	switch status {
	case entities.MerchantStatusActive:
		u.notifier.Notify(ctx, merchantID, "Conta activada",
			"A sua conta foi verificada. Já pode vender e levantar fundos.")
	case entities.MerchantStatusSuspended:
		u.notifier.Notify(ctx, merchantID, "Conta suspensa",
			"A sua conta foi suspensa. Contacte o suporte.")
	}
	return nil
}
