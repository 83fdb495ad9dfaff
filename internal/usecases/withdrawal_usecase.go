package usecases

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
	"payeasy.backend/internal/domain/entities"
	domainerrors "payeasy.backend/internal/domain/errors"
	"payeasy.backend/internal/domain/fees"
	"payeasy.backend/internal/domain/repositories"
	"payeasy.backend/internal/domain/wallet"
	"payeasy.backend/internal/infrastructure/gateway"
	"payeasy.backend/pkg/logger"
	"payeasy.backend/pkg/utils"
)

// WithdrawalUsecase handles merchant payout requests. Requesting a
// withdrawal immediately holds the gross amount in the ledger so the
// same balance cannot be withdrawn twice.
type WithdrawalUsecase struct {
	withdrawalRepo repositories.WithdrawalRepository
	merchantRepo   repositories.MerchantRepository
	ledgerRepo     repositories.LedgerRepository
	uow            repositories.UnitOfWork
	charger        gateway.Charger
	notifier       *Notifier
}

// NewWithdrawalUsecase creates a new withdrawal usecase
func NewWithdrawalUsecase(
	withdrawalRepo repositories.WithdrawalRepository,
	merchantRepo repositories.MerchantRepository,
	ledgerRepo repositories.LedgerRepository,
	uow repositories.UnitOfWork,
	charger gateway.Charger,
	notifier *Notifier,
) *WithdrawalUsecase {
	return &WithdrawalUsecase{
		withdrawalRepo: withdrawalRepo,
		merchantRepo:   merchantRepo,
		ledgerRepo:     ledgerRepo,
		uow:            uow,
		charger:        charger,
		notifier:       notifier,
	}
}

// Request creates a pending withdrawal and holds the gross amount. The
// balance check and the hold run inside one transaction.
func (u *WithdrawalUsecase) Request(ctx context.Context, userID uuid.UUID, input *entities.RequestWithdrawalInput) (*entities.Withdrawal, error) {
	merchant, err := u.merchantRepo.GetByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if merchant.Status != entities.MerchantStatusActive {
		return nil, domainerrors.ErrMerchantNotActive
	}

	amount, err := decimal.NewFromString(input.Amount)
	if err != nil || !amount.IsPositive() {
		return nil, domainerrors.NewError("invalid amount", domainerrors.ErrInvalidInput)
	}
	if amount.LessThan(fees.MinWithdrawal) {
		return nil, domainerrors.NewError(
			fmt.Sprintf("minimum withdrawal is %s MZN", fees.MinWithdrawal),
			domainerrors.ErrBelowMinimum,
		)
	}

	provider := wallet.Provider(input.Provider)
	phone, err := wallet.ValidatePhone(input.Phone, provider)
	if err != nil {
		return nil, domainerrors.NewError(err.Error(), domainerrors.ErrInvalidPhone)
	}

	fee := fees.WithdrawalFee(amount)
	withdrawal := &entities.Withdrawal{
		MerchantID:       merchant.ID,
		Amount:           amount,
		Fee:              fee,
		NetAmount:        fees.Net(amount, fee),
		Provider:         provider,
		DestinationPhone: phone,
		Status:           entities.WithdrawalStatusPending,
	}

	err = u.uow.Do(ctx, func(txCtx context.Context) error {
		balance, err := u.ledgerRepo.Balance(txCtx, merchant.ID)
		if err != nil {
			return err
		}
		if amount.GreaterThan(balance) {
			return domainerrors.NewError(
				fmt.Sprintf("available balance is %s MZN", balance.StringFixed(2)),
				domainerrors.ErrInsufficientBalance,
			)
		}

		if err := u.withdrawalRepo.Create(txCtx, withdrawal); err != nil {
			return err
		}
		return u.ledgerRepo.Create(txCtx, &entities.LedgerEntry{
			MerchantID:  merchant.ID,
			EntryType:   entities.LedgerEntryWithdrawalHold,
			Amount:      amount,
			ReferenceID: withdrawal.ID,
		})
	})
	if err != nil {
		return nil, err
	}

	logger.Info(ctx, "withdrawal requested",
		zap.String("withdrawal_id", withdrawal.ID.String()),
		zap.String("amount", amount.String()))

	u.notifier.Notify(ctx, merchant.ID, "Levantamento solicitado",
		fmt.Sprintf("Levantamento de %s MZN solicitado. Valor líquido: %s MZN.",
			amount.StringFixed(2), withdrawal.NetAmount.StringFixed(2)))
	return withdrawal, nil
}

// List returns the merchant's withdrawals with pagination
func (u *WithdrawalUsecase) List(ctx context.Context, userID uuid.UUID, params utils.PaginationParams) ([]*entities.Withdrawal, *utils.PaginationMeta, error) {
	merchant, err := u.merchantRepo.GetByUserID(ctx, userID)
	if err != nil {
		return nil, nil, err
	}

	withdrawals, total, err := u.withdrawalRepo.GetByMerchantID(ctx, merchant.ID, params.Limit, params.CalculateOffset())
	if err != nil {
		return nil, nil, err
	}

	meta := utils.CalculateMeta(int64(total), params.Page, params.Limit)
	return withdrawals, &meta, nil
}

// Complete settles a pending withdrawal: the payout is pushed to the
// merchant's wallet and the withdrawal closes. The hold stays in the
// ledger; it is the permanent debit.
func (u *WithdrawalUsecase) Complete(ctx context.Context, withdrawalID uuid.UUID) error {
	withdrawal, err := u.withdrawalRepo.GetByID(ctx, withdrawalID)
	if err != nil {
		return err
	}
	if !entities.CanTransitionWithdrawal(withdrawal.Status, entities.WithdrawalStatusCompleted) {
		return domainerrors.NewError(
			fmt.Sprintf("withdrawal cannot move from %s to completed", withdrawal.Status),
			domainerrors.ErrInvalidTransition,
		)
	}

	result, err := u.charger.Disburse(ctx, gateway.DisburseRequest{
		WithdrawalID: withdrawal.ID,
		Phone:        withdrawal.DestinationPhone,
		Provider:     withdrawal.Provider,
		Amount:       withdrawal.NetAmount,
	})
	if err != nil {
		return err
	}
	if !result.Accepted {
		return domainerrors.ErrGatewayUnavailable
	}

	if err := u.withdrawalRepo.UpdateStatus(ctx, withdrawalID, entities.WithdrawalStatusCompleted); err != nil {
		return err
	}

	u.notifier.Notify(ctx, withdrawal.MerchantID, "Levantamento concluído",
		fmt.Sprintf("%s MZN foram enviados para %s.", withdrawal.NetAmount.StringFixed(2), withdrawal.DestinationPhone))
	return nil
}

// Reject declines a pending withdrawal and releases the hold by
// appending a compensating credit. The hold row itself is never
// touched.
func (u *WithdrawalUsecase) Reject(ctx context.Context, withdrawalID uuid.UUID) error {
	withdrawal, err := u.withdrawalRepo.GetByID(ctx, withdrawalID)
	if err != nil {
		return err
	}
	if !entities.CanTransitionWithdrawal(withdrawal.Status, entities.WithdrawalStatusRejected) {
		return domainerrors.NewError(
			fmt.Sprintf("withdrawal cannot move from %s to rejected", withdrawal.Status),
			domainerrors.ErrInvalidTransition,
		)
	}

	err = u.uow.Do(ctx, func(txCtx context.Context) error {
		if err := u.withdrawalRepo.UpdateStatus(txCtx, withdrawalID, entities.WithdrawalStatusRejected); err != nil {
			return err
		}
		return u.ledgerRepo.Create(txCtx, &entities.LedgerEntry{
			MerchantID:  withdrawal.MerchantID,
			EntryType:   entities.LedgerEntryWithdrawalReversal,
			Amount:      withdrawal.Amount,
			ReferenceID: withdrawal.ID,
		})
	})
	if err != nil {
		return err
	}

	u.notifier.Notify(ctx, withdrawal.MerchantID, "Levantamento rejeitado",
		fmt.Sprintf("O levantamento de %s MZN foi rejeitado e o valor devolvido ao saldo.", withdrawal.Amount.StringFixed(2)))
	return nil
}
