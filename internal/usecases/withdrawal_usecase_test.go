package usecases_test

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"payeasy.backend/internal/domain/entities"
	domainerrors "payeasy.backend/internal/domain/errors"
	"payeasy.backend/internal/domain/wallet"
	"payeasy.backend/internal/infrastructure/gateway"
	"payeasy.backend/internal/usecases"
)

type withdrawalFixture struct {
	withdrawalRepo *MockWithdrawalRepository
	merchantRepo   *MockMerchantRepository
	ledgerRepo     *MockLedgerRepository
	notifRepo      *MockNotificationRepository
	uow            *MockUnitOfWork
	charger        *MockCharger
	uc             *usecases.WithdrawalUsecase
}

func newWithdrawalFixture(t *testing.T) *withdrawalFixture {
	t.Helper()
	f := &withdrawalFixture{
		withdrawalRepo: new(MockWithdrawalRepository),
		merchantRepo:   new(MockMerchantRepository),
		ledgerRepo:     new(MockLedgerRepository),
		notifRepo:      new(MockNotificationRepository),
		uow:            new(MockUnitOfWork),
		charger:        new(MockCharger),
	}
	notifier := usecases.NewNotifier(f.notifRepo, nil)
	f.uc = usecases.NewWithdrawalUsecase(f.withdrawalRepo, f.merchantRepo, f.ledgerRepo, f.uow, f.charger, notifier)
	return f
}

func validWithdrawalInput() *entities.RequestWithdrawalInput {
	return &entities.RequestWithdrawalInput{
		Amount:   "1000",
		Provider: "mpesa",
		Phone:    "841234567",
	}
}

func TestWithdrawalUsecase_Request(t *testing.T) {
	f := newWithdrawalFixture(t)
	userID := uuid.New()
	merchant := activeMerchant(userID)

	f.merchantRepo.On("GetByUserID", mock.Anything, userID).Return(merchant, nil)
	f.uow.On("Do", mock.Anything, mock.Anything).Return(nil)
	f.ledgerRepo.On("Balance", mock.Anything, merchant.ID).Return(decimal.NewFromInt(5000), nil)
	f.withdrawalRepo.On("Create", mock.Anything, mock.AnythingOfType("*entities.Withdrawal")).Return(nil)
	f.ledgerRepo.On("Create", mock.Anything, mock.AnythingOfType("*entities.LedgerEntry")).Return(nil)
	f.notifRepo.On("Create", mock.Anything, mock.Anything).Return(nil)

	w, err := f.uc.Request(context.Background(), userID, validWithdrawalInput())
	require.NoError(t, err)
	require.Equal(t, entities.WithdrawalStatusPending, w.Status)
	require.Equal(t, wallet.ProviderMpesa, w.Provider)
	// fee = 5 + 2% of 1000 = 25; net = 975
	require.True(t, w.Fee.Equal(decimal.NewFromInt(25)), "fee=%s", w.Fee)
	require.True(t, w.NetAmount.Equal(decimal.NewFromInt(975)))

	var hold *entities.LedgerEntry
	for _, call := range f.ledgerRepo.Calls {
		if call.Method == "Create" {
			hold = call.Arguments.Get(1).(*entities.LedgerEntry)
		}
	}
	require.NotNil(t, hold)
	require.Equal(t, entities.LedgerEntryWithdrawalHold, hold.EntryType)
	require.True(t, hold.Amount.Equal(decimal.NewFromInt(1000)), "hold must be the gross amount")
}

func TestWithdrawalUsecase_Request_BelowMinimum(t *testing.T) {
	f := newWithdrawalFixture(t)
	userID := uuid.New()
	f.merchantRepo.On("GetByUserID", mock.Anything, userID).Return(activeMerchant(userID), nil)

	input := validWithdrawalInput()
	input.Amount = "199.99"
	_, err := f.uc.Request(context.Background(), userID, input)
	require.ErrorIs(t, err, domainerrors.ErrBelowMinimum)
	f.withdrawalRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestWithdrawalUsecase_Request_ExactMinimumAllowed(t *testing.T) {
	f := newWithdrawalFixture(t)
	userID := uuid.New()
	merchant := activeMerchant(userID)

	f.merchantRepo.On("GetByUserID", mock.Anything, userID).Return(merchant, nil)
	f.uow.On("Do", mock.Anything, mock.Anything).Return(nil)
	f.ledgerRepo.On("Balance", mock.Anything, merchant.ID).Return(decimal.NewFromInt(200), nil)
	f.withdrawalRepo.On("Create", mock.Anything, mock.Anything).Return(nil)
	f.ledgerRepo.On("Create", mock.Anything, mock.Anything).Return(nil)
	f.notifRepo.On("Create", mock.Anything, mock.Anything).Return(nil)

	input := validWithdrawalInput()
	input.Amount = "200"
	_, err := f.uc.Request(context.Background(), userID, input)
	require.NoError(t, err)
}

func TestWithdrawalUsecase_Request_InsufficientBalance(t *testing.T) {
	f := newWithdrawalFixture(t)
	userID := uuid.New()
	merchant := activeMerchant(userID)

	f.merchantRepo.On("GetByUserID", mock.Anything, userID).Return(merchant, nil)
	f.uow.On("Do", mock.Anything, mock.Anything).Return(nil)
	f.ledgerRepo.On("Balance", mock.Anything, merchant.ID).Return(decimal.NewFromInt(999), nil)

	_, err := f.uc.Request(context.Background(), userID, validWithdrawalInput())
	require.ErrorIs(t, err, domainerrors.ErrInsufficientBalance)
	f.withdrawalRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	f.ledgerRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestWithdrawalUsecase_Request_WrongPrefixForProvider(t *testing.T) {
	f := newWithdrawalFixture(t)
	userID := uuid.New()
	f.merchantRepo.On("GetByUserID", mock.Anything, userID).Return(activeMerchant(userID), nil)

	input := validWithdrawalInput()
	input.Provider = "emola"
	// 84 belongs to mpesa.
	_, err := f.uc.Request(context.Background(), userID, input)
	require.ErrorIs(t, err, domainerrors.ErrInvalidPhone)
}

func TestWithdrawalUsecase_Request_InactiveMerchant(t *testing.T) {
	f := newWithdrawalFixture(t)
	userID := uuid.New()
	f.merchantRepo.On("GetByUserID", mock.Anything, userID).Return(&entities.Merchant{
		ID: uuid.New(), UserID: userID, Status: entities.MerchantStatusPending,
	}, nil)

	_, err := f.uc.Request(context.Background(), userID, validWithdrawalInput())
	require.ErrorIs(t, err, domainerrors.ErrMerchantNotActive)
}

func TestWithdrawalUsecase_Complete(t *testing.T) {
	f := newWithdrawalFixture(t)
	w := &entities.Withdrawal{
		ID:               uuid.New(),
		MerchantID:       uuid.New(),
		Amount:           decimal.NewFromInt(1000),
		Fee:              decimal.NewFromInt(25),
		NetAmount:        decimal.NewFromInt(975),
		Provider:         wallet.ProviderMpesa,
		DestinationPhone: "841234567",
		Status:           entities.WithdrawalStatusPending,
	}

	f.withdrawalRepo.On("GetByID", mock.Anything, w.ID).Return(w, nil)
	f.charger.On("Disburse", mock.Anything, mock.AnythingOfType("gateway.DisburseRequest")).Return(&gateway.Result{Accepted: true}, nil)
	f.withdrawalRepo.On("UpdateStatus", mock.Anything, w.ID, entities.WithdrawalStatusCompleted).Return(nil)
	f.notifRepo.On("Create", mock.Anything, mock.Anything).Return(nil)

	require.NoError(t, f.uc.Complete(context.Background(), w.ID))

	req := f.charger.Calls[0].Arguments.Get(1).(gateway.DisburseRequest)
	require.True(t, req.Amount.Equal(decimal.NewFromInt(975)), "payout must be the net amount")
	require.Equal(t, "841234567", req.Phone)
}

func TestWithdrawalUsecase_Complete_AlreadyCompleted(t *testing.T) {
	f := newWithdrawalFixture(t)
	w := &entities.Withdrawal{ID: uuid.New(), Status: entities.WithdrawalStatusCompleted}
	f.withdrawalRepo.On("GetByID", mock.Anything, w.ID).Return(w, nil)

	err := f.uc.Complete(context.Background(), w.ID)
	require.ErrorIs(t, err, domainerrors.ErrInvalidTransition)
	f.charger.AssertNotCalled(t, "Disburse", mock.Anything, mock.Anything)
}

func TestWithdrawalUsecase_Complete_DisburseFails(t *testing.T) {
	f := newWithdrawalFixture(t)
	w := &entities.Withdrawal{ID: uuid.New(), Status: entities.WithdrawalStatusPending, Provider: wallet.ProviderMpesa}
	f.withdrawalRepo.On("GetByID", mock.Anything, w.ID).Return(w, nil)
	f.charger.On("Disburse", mock.Anything, mock.Anything).Return(nil, domainerrors.ErrGatewayUnavailable)

	err := f.uc.Complete(context.Background(), w.ID)
	require.ErrorIs(t, err, domainerrors.ErrGatewayUnavailable)
	f.withdrawalRepo.AssertNotCalled(t, "UpdateStatus", mock.Anything, mock.Anything, mock.Anything)
}

func TestWithdrawalUsecase_Reject_ReleasesHold(t *testing.T) {
	f := newWithdrawalFixture(t)
	w := &entities.Withdrawal{
		ID:         uuid.New(),
		MerchantID: uuid.New(),
		Amount:     decimal.NewFromInt(1000),
		Status:     entities.WithdrawalStatusPending,
	}

	f.withdrawalRepo.On("GetByID", mock.Anything, w.ID).Return(w, nil)
	f.uow.On("Do", mock.Anything, mock.Anything).Return(nil)
	f.withdrawalRepo.On("UpdateStatus", mock.Anything, w.ID, entities.WithdrawalStatusRejected).Return(nil)
	f.ledgerRepo.On("Create", mock.Anything, mock.AnythingOfType("*entities.LedgerEntry")).Return(nil)
	f.notifRepo.On("Create", mock.Anything, mock.Anything).Return(nil)

	require.NoError(t, f.uc.Reject(context.Background(), w.ID))

	entry := f.ledgerRepo.Calls[0].Arguments.Get(1).(*entities.LedgerEntry)
	require.Equal(t, entities.LedgerEntryWithdrawalReversal, entry.EntryType)
	require.True(t, entry.Amount.Equal(decimal.NewFromInt(1000)), "reversal must credit the gross amount back")
	require.Equal(t, w.ID, entry.ReferenceID)
}
