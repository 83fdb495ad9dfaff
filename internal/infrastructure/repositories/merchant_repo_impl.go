package repositories

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/volatiletech/null/v8"
	"gorm.io/gorm"
	"payeasy.backend/internal/domain/entities"
	domainerrors "payeasy.backend/internal/domain/errors"
	"payeasy.backend/internal/infrastructure/models"
	"payeasy.backend/pkg/utils"
)

// MerchantRepository implements merchant data operations
type MerchantRepository struct {
	db *gorm.DB
}

// NewMerchantRepository creates a new merchant repository
func NewMerchantRepository(db *gorm.DB) *MerchantRepository {
	return &MerchantRepository{db: db}
}

// Create creates a new merchant
func (r *MerchantRepository) Create(ctx context.Context, merchant *entities.Merchant) error {
	if merchant.ID == uuid.Nil {
		merchant.ID = utils.GenerateUUIDv7()
	}
	if merchant.Status == "" {
		merchant.Status = entities.MerchantStatusPending
	}

	m := &models.Merchant{
		ID:            merchant.ID,
		UserID:        merchant.UserID,
		BusinessName:  merchant.BusinessName,
		BusinessEmail: merchant.BusinessEmail.String,
		Status:        string(merchant.Status),
	}

	db := GetDB(ctx, r.db)
	if err := db.WithContext(ctx).Create(m).Error; err != nil {
		return err
	}

	merchant.CreatedAt = m.CreatedAt
	merchant.UpdatedAt = m.UpdatedAt
	return nil
}

// GetByID gets a merchant by ID
func (r *MerchantRepository) GetByID(ctx context.Context, id uuid.UUID) (*entities.Merchant, error) {
	var m models.Merchant
	db := GetDB(ctx, r.db)
	if err := db.WithContext(ctx).Where("id = ?", id).First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domainerrors.ErrNotFound
		}
		return nil, err
	}
	return r.toEntity(&m), nil
}

// GetByUserID gets a merchant by user ID
func (r *MerchantRepository) GetByUserID(ctx context.Context, userID uuid.UUID) (*entities.Merchant, error) {
	var m models.Merchant
	db := GetDB(ctx, r.db)
	if err := db.WithContext(ctx).Where("user_id = ?", userID).First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domainerrors.ErrNotFound
		}
		return nil, err
	}
	return r.toEntity(&m), nil
}

// UpdateStatus updates merchant status. Activation stamps verified_at.
func (r *MerchantRepository) UpdateStatus(ctx context.Context, id uuid.UUID, status entities.MerchantStatus) error {
	updates := map[string]interface{}{
		"status":     string(status),
		"updated_at": time.Now(),
	}
	if status == entities.MerchantStatusActive {
		updates["verified_at"] = time.Now()
	}

	db := GetDB(ctx, r.db)
	result := db.WithContext(ctx).Model(&models.Merchant{}).
		Where("id = ?", id).
		Updates(updates)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domainerrors.ErrNotFound
	}
	return nil
}

// List lists all merchants
func (r *MerchantRepository) List(ctx context.Context) ([]*entities.Merchant, error) {
	var ms []models.Merchant
	db := GetDB(ctx, r.db)
	if err := db.WithContext(ctx).Order("created_at DESC").Find(&ms).Error; err != nil {
		return nil, err
	}

	merchants := make([]*entities.Merchant, 0, len(ms))
	for _, m := range ms {
		model := m
		merchants = append(merchants, r.toEntity(&model))
	}
	return merchants, nil
}

func (r *MerchantRepository) toEntity(m *models.Merchant) *entities.Merchant {
	e := &entities.Merchant{
		ID:           m.ID,
		UserID:       m.UserID,
		BusinessName: m.BusinessName,
		Status:       entities.MerchantStatus(m.Status),
		VerifiedAt:   null.TimeFromPtr(m.VerifiedAt),
		CreatedAt:    m.CreatedAt,
		UpdatedAt:    m.UpdatedAt,
	}
	if m.BusinessEmail != "" {
		e.BusinessEmail = null.StringFrom(m.BusinessEmail)
	}
	return e
}
