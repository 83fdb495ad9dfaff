package usecases_test

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"payeasy.backend/internal/domain/entities"
	domainerrors "payeasy.backend/internal/domain/errors"
	"payeasy.backend/internal/usecases"
	"payeasy.backend/pkg/crypto"
	"payeasy.backend/pkg/jwt"
	loggerpkg "payeasy.backend/pkg/logger"
)

func TestMain(m *testing.M) {
	loggerpkg.Init("test")
	m.Run()
}

func newJWT() *jwt.JWTService {
	return jwt.NewJWTService("test-secret", 15*time.Minute, 24*time.Hour)
}

func TestAuthUsecase_Register(t *testing.T) {
	userRepo := new(MockUserRepository)
	merchantRepo := new(MockMerchantRepository)
	uow := new(MockUnitOfWork)
	uc := usecases.NewAuthUsecase(userRepo, merchantRepo, uow, newJWT())

	userID := uuid.New()
	userRepo.On("GetByEmail", mock.Anything, "amina@exemplo.co.mz").Return(nil, domainerrors.ErrNotFound)
	uow.On("Do", mock.Anything, mock.Anything).Return(nil)
	userRepo.On("Create", mock.Anything, mock.AnythingOfType("*entities.User")).Run(func(args mock.Arguments) {
		args.Get(1).(*entities.User).ID = userID
	}).Return(nil)
	merchantRepo.On("Create", mock.Anything, mock.AnythingOfType("*entities.Merchant")).Return(nil)

	resp, err := uc.Register(context.Background(), &entities.RegisterInput{
		Name:         "Amina Sitoe",
		Email:        "amina@exemplo.co.mz",
		Password:     "secret-password",
		BusinessName: "Loja da Amina",
	})
	require.NoError(t, err)
	require.NotEmpty(t, resp.AccessToken)
	require.NotEmpty(t, resp.RefreshToken)
	require.Equal(t, entities.UserRoleMerchant, resp.User.Role)
	require.Equal(t, userID, resp.Merchant.UserID)
	require.Equal(t, "Loja da Amina", resp.Merchant.BusinessName)
	require.NotEqual(t, "secret-password", resp.User.PasswordHash, "password must be hashed")

	userRepo.AssertExpectations(t)
	merchantRepo.AssertExpectations(t)
}

func TestAuthUsecase_Register_DuplicateEmail(t *testing.T) {
	userRepo := new(MockUserRepository)
	merchantRepo := new(MockMerchantRepository)
	uow := new(MockUnitOfWork)
	uc := usecases.NewAuthUsecase(userRepo, merchantRepo, uow, newJWT())

	userRepo.On("GetByEmail", mock.Anything, "taken@exemplo.co.mz").Return(&entities.User{ID: uuid.New()}, nil)

	_, err := uc.Register(context.Background(), &entities.RegisterInput{
		Name:         "X",
		Email:        "taken@exemplo.co.mz",
		Password:     "password123",
		BusinessName: "Loja",
	})
	require.ErrorIs(t, err, domainerrors.ErrAlreadyExists)
	userRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestAuthUsecase_Login(t *testing.T) {
	userRepo := new(MockUserRepository)
	merchantRepo := new(MockMerchantRepository)
	uow := new(MockUnitOfWork)
	uc := usecases.NewAuthUsecase(userRepo, merchantRepo, uow, newJWT())

	hash, err := crypto.HashPassword("correct-password")
	require.NoError(t, err)
	user := &entities.User{ID: uuid.New(), Email: "amina@exemplo.co.mz", PasswordHash: hash, Role: entities.UserRoleMerchant}
	merchant := &entities.Merchant{ID: uuid.New(), UserID: user.ID, Status: entities.MerchantStatusActive}

	userRepo.On("GetByEmail", mock.Anything, user.Email).Return(user, nil)
	merchantRepo.On("GetByUserID", mock.Anything, user.ID).Return(merchant, nil)

	resp, err := uc.Login(context.Background(), &entities.LoginInput{Email: user.Email, Password: "correct-password"})
	require.NoError(t, err)
	require.NotEmpty(t, resp.AccessToken)
	require.Equal(t, merchant.ID, resp.Merchant.ID)
}

func TestAuthUsecase_Login_WrongPassword(t *testing.T) {
	userRepo := new(MockUserRepository)
	merchantRepo := new(MockMerchantRepository)
	uow := new(MockUnitOfWork)
	uc := usecases.NewAuthUsecase(userRepo, merchantRepo, uow, newJWT())

	hash, _ := crypto.HashPassword("correct-password")
	user := &entities.User{ID: uuid.New(), Email: "amina@exemplo.co.mz", PasswordHash: hash}
	userRepo.On("GetByEmail", mock.Anything, user.Email).Return(user, nil)

	_, err := uc.Login(context.Background(), &entities.LoginInput{Email: user.Email, Password: "wrong"})
	require.ErrorIs(t, err, domainerrors.ErrInvalidCredentials)
}

func TestAuthUsecase_Login_UnknownEmail(t *testing.T) {
	userRepo := new(MockUserRepository)
	merchantRepo := new(MockMerchantRepository)
	uow := new(MockUnitOfWork)
	uc := usecases.NewAuthUsecase(userRepo, merchantRepo, uow, newJWT())

	userRepo.On("GetByEmail", mock.Anything, "nobody@exemplo.co.mz").Return(nil, domainerrors.ErrNotFound)

	_, err := uc.Login(context.Background(), &entities.LoginInput{Email: "nobody@exemplo.co.mz", Password: "x"})
	require.ErrorIs(t, err, domainerrors.ErrInvalidCredentials)
}

func TestAuthUsecase_RefreshToken(t *testing.T) {
	userRepo := new(MockUserRepository)
	merchantRepo := new(MockMerchantRepository)
	uow := new(MockUnitOfWork)
	svc := newJWT()
	uc := usecases.NewAuthUsecase(userRepo, merchantRepo, uow, svc)

	user := &entities.User{ID: uuid.New(), Email: "amina@exemplo.co.mz", Role: entities.UserRoleMerchant}
	pair, err := svc.GenerateTokenPair(user.ID, user.Email, string(user.Role))
	require.NoError(t, err)

	userRepo.On("GetByID", mock.Anything, user.ID).Return(user, nil)

	fresh, err := uc.RefreshToken(context.Background(), pair.RefreshToken)
	require.NoError(t, err)
	require.NotEmpty(t, fresh.AccessToken)
}

func TestAuthUsecase_RefreshToken_Invalid(t *testing.T) {
	uc := usecases.NewAuthUsecase(new(MockUserRepository), new(MockMerchantRepository), new(MockUnitOfWork), newJWT())

	_, err := uc.RefreshToken(context.Background(), "not-a-token")
	require.Error(t, err)
}

func TestAuthUsecase_Me(t *testing.T) {
	userRepo := new(MockUserRepository)
	merchantRepo := new(MockMerchantRepository)
	uow := new(MockUnitOfWork)
	uc := usecases.NewAuthUsecase(userRepo, merchantRepo, uow, newJWT())

	user := &entities.User{ID: uuid.New()}
	merchant := &entities.Merchant{ID: uuid.New(), UserID: user.ID}
	userRepo.On("GetByID", mock.Anything, user.ID).Return(user, nil)
	merchantRepo.On("GetByUserID", mock.Anything, user.ID).Return(merchant, nil)

	gotUser, gotMerchant, err := uc.Me(context.Background(), user.ID)
	require.NoError(t, err)
	require.Equal(t, user.ID, gotUser.ID)
	require.Equal(t, merchant.ID, gotMerchant.ID)
}
