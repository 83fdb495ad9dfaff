package repositories

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
	"payeasy.backend/internal/domain/entities"
	domainerrors "payeasy.backend/internal/domain/errors"
	"payeasy.backend/internal/domain/wallet"
	"payeasy.backend/internal/infrastructure/models"
	"payeasy.backend/pkg/utils"
)

// WithdrawalRepository implements withdrawal data operations
type WithdrawalRepository struct {
	db *gorm.DB
}

// NewWithdrawalRepository creates a new withdrawal repository
func NewWithdrawalRepository(db *gorm.DB) *WithdrawalRepository {
	return &WithdrawalRepository{db: db}
}

// Create creates a new withdrawal
func (r *WithdrawalRepository) Create(ctx context.Context, withdrawal *entities.Withdrawal) error {
	if withdrawal.ID == uuid.Nil {
		withdrawal.ID = utils.GenerateUUIDv7()
	}
	if withdrawal.Status == "" {
		withdrawal.Status = entities.WithdrawalStatusPending
	}

	m := &models.Withdrawal{
		ID:               withdrawal.ID,
		MerchantID:       withdrawal.MerchantID,
		Amount:           withdrawal.Amount,
		Fee:              withdrawal.Fee,
		NetAmount:        withdrawal.NetAmount,
		Provider:         string(withdrawal.Provider),
		DestinationPhone: withdrawal.DestinationPhone,
		Status:           string(withdrawal.Status),
	}

	db := GetDB(ctx, r.db)
	if err := db.WithContext(ctx).Create(m).Error; err != nil {
		return err
	}

	withdrawal.CreatedAt = m.CreatedAt
	withdrawal.UpdatedAt = m.UpdatedAt
	return nil
}

// GetByID gets a withdrawal by ID
func (r *WithdrawalRepository) GetByID(ctx context.Context, id uuid.UUID) (*entities.Withdrawal, error) {
	var m models.Withdrawal
	db := GetDB(ctx, r.db)
	if err := db.WithContext(ctx).Where("id = ?", id).First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domainerrors.ErrNotFound
		}
		return nil, err
	}
	return r.toEntity(&m), nil
}

// GetByMerchantID gets withdrawals for a merchant with pagination
func (r *WithdrawalRepository) GetByMerchantID(ctx context.Context, merchantID uuid.UUID, limit, offset int) ([]*entities.Withdrawal, int, error) {
	var ms []models.Withdrawal
	var total int64

	db := GetDB(ctx, r.db)
	query := db.WithContext(ctx).Model(&models.Withdrawal{}).Where("merchant_id = ?", merchantID)

	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	if err := query.Order("created_at DESC").Limit(limit).Offset(offset).Find(&ms).Error; err != nil {
		return nil, 0, err
	}

	withdrawals := make([]*entities.Withdrawal, 0, len(ms))
	for _, m := range ms {
		model := m
		withdrawals = append(withdrawals, r.toEntity(&model))
	}
	return withdrawals, int(total), nil
}

// UpdateStatus updates a withdrawal's settlement status
func (r *WithdrawalRepository) UpdateStatus(ctx context.Context, id uuid.UUID, status entities.WithdrawalStatus) error {
	db := GetDB(ctx, r.db)
	result := db.WithContext(ctx).Model(&models.Withdrawal{}).
		Where("id = ?", id).
		Updates(map[string]interface{}{
			"status":     string(status),
			"updated_at": time.Now(),
		})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domainerrors.ErrNotFound
	}
	return nil
}

// SumCompleted returns the total gross amount of completed withdrawals
func (r *WithdrawalRepository) SumCompleted(ctx context.Context, merchantID uuid.UUID) (decimal.Decimal, error) {
	var row struct {
		Total decimal.Decimal
	}

	db := GetDB(ctx, r.db)
	err := db.WithContext(ctx).Model(&models.Withdrawal{}).
		Select("COALESCE(SUM(amount), 0) AS total").
		Where("merchant_id = ? AND status = ?", merchantID, string(entities.WithdrawalStatusCompleted)).
		Scan(&row).Error
	if err != nil {
		return decimal.Zero, err
	}
	return row.Total, nil
}

func (r *WithdrawalRepository) toEntity(m *models.Withdrawal) *entities.Withdrawal {
	return &entities.Withdrawal{
		ID:               m.ID,
		MerchantID:       m.MerchantID,
		Amount:           m.Amount,
		Fee:              m.Fee,
		NetAmount:        m.NetAmount,
		Provider:         wallet.Provider(m.Provider),
		DestinationPhone: m.DestinationPhone,
		Status:           entities.WithdrawalStatus(m.Status),
		CreatedAt:        m.CreatedAt,
		UpdatedAt:        m.UpdatedAt,
	}
}
