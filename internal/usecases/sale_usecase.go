package usecases

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"payeasy.backend/internal/domain/entities"
	domainerrors "payeasy.backend/internal/domain/errors"
	"payeasy.backend/internal/domain/repositories"
	"payeasy.backend/pkg/logger"
	"payeasy.backend/pkg/utils"
)

// SaleUsecase drives the sale lifecycle. Every transition goes through
// the transition table; the ledger entry and the status change are
// committed atomically.
type SaleUsecase struct {
	saleRepo     repositories.SaleRepository
	merchantRepo repositories.MerchantRepository
	ledgerRepo   repositories.LedgerRepository
	uow          repositories.UnitOfWork
	notifier     *Notifier
}

// NewSaleUsecase creates a new sale usecase
func NewSaleUsecase(
	saleRepo repositories.SaleRepository,
	merchantRepo repositories.MerchantRepository,
	ledgerRepo repositories.LedgerRepository,
	uow repositories.UnitOfWork,
	notifier *Notifier,
) *SaleUsecase {
	return &SaleUsecase{
		saleRepo:     saleRepo,
		merchantRepo: merchantRepo,
		ledgerRepo:   ledgerRepo,
		uow:          uow,
		notifier:     notifier,
	}
}

// transition moves a sale to the target status after consulting the
// transition table.
func (u *SaleUsecase) transition(ctx context.Context, saleID uuid.UUID, to entities.SaleStatus) (*entities.Sale, error) {
	sale, err := u.saleRepo.GetByID(ctx, saleID)
	if err != nil {
		return nil, err
	}
	if !entities.CanTransitionSale(sale.Status, to) {
		return nil, domainerrors.NewError(
			fmt.Sprintf("sale cannot move from %s to %s", sale.Status, to),
			domainerrors.ErrInvalidTransition,
		)
	}
	return sale, nil
}

// ApproveSale confirms payment for a pending sale and credits the
// merchant's balance with the net amount.
func (u *SaleUsecase) ApproveSale(ctx context.Context, saleID uuid.UUID) error {
	sale, err := u.transition(ctx, saleID, entities.SaleStatusApproved)
	if err != nil {
		return err
	}

	err = u.uow.Do(ctx, func(txCtx context.Context) error {
		if err := u.saleRepo.UpdateStatus(txCtx, saleID, entities.SaleStatusApproved); err != nil {
			return err
		}
		return u.ledgerRepo.Create(txCtx, &entities.LedgerEntry{
			MerchantID:  sale.MerchantID,
			EntryType:   entities.LedgerEntrySaleCredit,
			Amount:      sale.Net(),
			ReferenceID: sale.ID,
		})
	})
	if err != nil {
		return err
	}

	logger.Info(ctx, "sale approved",
		zap.String("sale_id", sale.ID.String()),
		zap.String("net", sale.Net().String()))

	u.notifier.Notify(ctx, sale.MerchantID, "Venda aprovada",
		fmt.Sprintf("%s foi vendido por %s MZN. Receita líquida: %s MZN.",
			sale.ProductName, sale.Amount.StringFixed(2), sale.Net().StringFixed(2)))
	return nil
}

// CancelSale closes a pending sale that was never paid. No ledger
// movement: nothing was ever credited.
func (u *SaleUsecase) CancelSale(ctx context.Context, saleID uuid.UUID) error {
	sale, err := u.transition(ctx, saleID, entities.SaleStatusCancelled)
	if err != nil {
		return err
	}

	if err := u.saleRepo.UpdateStatus(ctx, saleID, entities.SaleStatusCancelled); err != nil {
		return err
	}

	u.notifier.Notify(ctx, sale.MerchantID, "Venda cancelada",
		fmt.Sprintf("A venda de %s foi cancelada.", sale.ProductName))
	return nil
}

// RefundSale reverses an approved sale. The earlier credit is
// compensated by a reversal entry; the original row stays untouched.
func (u *SaleUsecase) RefundSale(ctx context.Context, saleID uuid.UUID) error {
	sale, err := u.transition(ctx, saleID, entities.SaleStatusRefunded)
	if err != nil {
		return err
	}

	err = u.uow.Do(ctx, func(txCtx context.Context) error {
		if err := u.saleRepo.UpdateStatus(txCtx, saleID, entities.SaleStatusRefunded); err != nil {
			return err
		}
		return u.ledgerRepo.Create(txCtx, &entities.LedgerEntry{
			MerchantID:  sale.MerchantID,
			EntryType:   entities.LedgerEntrySaleReversal,
			Amount:      sale.Net(),
			ReferenceID: sale.ID,
		})
	})
	if err != nil {
		return err
	}

	logger.Info(ctx, "sale refunded", zap.String("sale_id", sale.ID.String()))

	u.notifier.Notify(ctx, sale.MerchantID, "Venda reembolsada",
		fmt.Sprintf("A venda de %s foi reembolsada. %s MZN foram debitados do saldo.",
			sale.ProductName, sale.Net().StringFixed(2)))
	return nil
}

// HandleSettlement converges gateway webhooks and the simulator onto
// the lifecycle. A repeated settlement for an already-settled sale is
// ignored.
func (u *SaleUsecase) HandleSettlement(ctx context.Context, saleID uuid.UUID, approved bool) error {
	var err error
	if approved {
		err = u.ApproveSale(ctx, saleID)
	} else {
		err = u.CancelSale(ctx, saleID)
	}
	if errors.Is(err, domainerrors.ErrInvalidTransition) {
		logger.Warn(ctx, "duplicate settlement ignored", zap.String("sale_id", saleID.String()))
		return nil
	}
	return err
}

// Get returns one of the merchant's sales
func (u *SaleUsecase) Get(ctx context.Context, userID, saleID uuid.UUID) (*entities.Sale, error) {
	merchant, err := u.merchantRepo.GetByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}

	sale, err := u.saleRepo.GetByID(ctx, saleID)
	if err != nil {
		return nil, err
	}
	if sale.MerchantID != merchant.ID {
		return nil, domainerrors.ErrNotFound
	}
	return sale, nil
}

// List returns the merchant's sales with pagination
func (u *SaleUsecase) List(ctx context.Context, userID uuid.UUID, params utils.PaginationParams) ([]*entities.Sale, *utils.PaginationMeta, error) {
	merchant, err := u.merchantRepo.GetByUserID(ctx, userID)
	if err != nil {
		return nil, nil, err
	}

	sales, total, err := u.saleRepo.GetByMerchantID(ctx, merchant.ID, params.Limit, params.CalculateOffset())
	if err != nil {
		return nil, nil, err
	}

	meta := utils.CalculateMeta(int64(total), params.Page, params.Limit)
	return sales, &meta, nil
}

// Refund lets the merchant refund their own approved sale
func (u *SaleUsecase) Refund(ctx context.Context, userID, saleID uuid.UUID) error {
	if _, err := u.Get(ctx, userID, saleID); err != nil {
		return err
	}
	return u.RefundSale(ctx, saleID)
}
