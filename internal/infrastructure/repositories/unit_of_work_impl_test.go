package repositories

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
	"payeasy.backend/internal/domain/entities"
	"payeasy.backend/internal/domain/wallet"
)

func TestUnitOfWork_CommitsBothWrites(t *testing.T) {
	db := newTestDB(t)
	createWithdrawalTable(t, db)
	createLedgerTable(t, db)

	uow := NewUnitOfWork(db)
	withdrawals := NewWithdrawalRepository(db)
	ledger := NewLedgerRepository(db)
	ctx := context.Background()

	merchantID := uuid.New()
	w := newTestWithdrawal(merchantID, 1000)

	err := uow.Do(ctx, func(txCtx context.Context) error {
		if err := withdrawals.Create(txCtx, w); err != nil {
			return err
		}
		return ledger.Create(txCtx, &entities.LedgerEntry{
			MerchantID:  merchantID,
			EntryType:   entities.LedgerEntryWithdrawalHold,
			Amount:      w.Amount,
			ReferenceID: w.ID,
		})
	})
	require.NoError(t, err)

	_, err = withdrawals.GetByID(ctx, w.ID)
	require.NoError(t, err)

	balance, err := ledger.Balance(ctx, merchantID)
	require.NoError(t, err)
	require.True(t, balance.Equal(decimal.NewFromInt(-1000)), "balance=%s", balance)
}

func TestUnitOfWork_RollsBackOnError(t *testing.T) {
	db := newTestDB(t)
	createWithdrawalTable(t, db)
	createLedgerTable(t, db)

	uow := NewUnitOfWork(db)
	withdrawals := NewWithdrawalRepository(db)
	ctx := context.Background()

	w := &entities.Withdrawal{
		MerchantID:       uuid.New(),
		Amount:           decimal.NewFromInt(500),
		Fee:              decimal.NewFromInt(15),
		NetAmount:        decimal.NewFromInt(485),
		Provider:         wallet.ProviderMpesa,
		DestinationPhone: "851234567",
	}

	boom := errors.New("boom")
	err := uow.Do(ctx, func(txCtx context.Context) error {
		if err := withdrawals.Create(txCtx, w); err != nil {
			return err
		}
		return boom
	})
	require.ErrorIs(t, err, boom)

	_, _, err = withdrawals.GetByMerchantID(ctx, w.MerchantID, 10, 0)
	require.NoError(t, err)
	_, getErr := withdrawals.GetByID(ctx, w.ID)
	require.Error(t, getErr, "rolled back row must not be visible")
}
