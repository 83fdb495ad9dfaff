package repositories

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"payeasy.backend/internal/domain/entities"
	domainerrors "payeasy.backend/internal/domain/errors"
	"payeasy.backend/internal/infrastructure/models"
	"payeasy.backend/pkg/utils"
)

// PaymentLinkRepository implements checkout link data operations
type PaymentLinkRepository struct {
	db *gorm.DB
}

// NewPaymentLinkRepository creates a new payment link repository
func NewPaymentLinkRepository(db *gorm.DB) *PaymentLinkRepository {
	return &PaymentLinkRepository{db: db}
}

// Create creates a new payment link
func (r *PaymentLinkRepository) Create(ctx context.Context, link *entities.PaymentLink) error {
	if link.ID == uuid.Nil {
		link.ID = utils.GenerateUUIDv7()
	}

	m := &models.PaymentLink{
		ID:         link.ID,
		MerchantID: link.MerchantID,
		ProductID:  link.ProductID,
		URL:        link.URL,
	}

	db := GetDB(ctx, r.db)
	if err := db.WithContext(ctx).Create(m).Error; err != nil {
		return err
	}

	link.CreatedAt = m.CreatedAt
	return nil
}

// GetByID gets a payment link by ID
func (r *PaymentLinkRepository) GetByID(ctx context.Context, id uuid.UUID) (*entities.PaymentLink, error) {
	var m models.PaymentLink
	db := GetDB(ctx, r.db)
	if err := db.WithContext(ctx).Where("id = ?", id).First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domainerrors.ErrNotFound
		}
		return nil, err
	}
	return r.toEntity(&m), nil
}

// GetByMerchantAndProduct gets the live link for a (merchant, product) pair
func (r *PaymentLinkRepository) GetByMerchantAndProduct(ctx context.Context, merchantID, productID uuid.UUID) (*entities.PaymentLink, error) {
	var m models.PaymentLink
	db := GetDB(ctx, r.db)
	if err := db.WithContext(ctx).
		Where("merchant_id = ? AND product_id = ?", merchantID, productID).
		First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domainerrors.ErrNotFound
		}
		return nil, err
	}
	return r.toEntity(&m), nil
}

// GetByMerchantID gets payment links for a merchant with pagination
func (r *PaymentLinkRepository) GetByMerchantID(ctx context.Context, merchantID uuid.UUID, limit, offset int) ([]*entities.PaymentLink, int, error) {
	var ms []models.PaymentLink
	var total int64

	db := GetDB(ctx, r.db)
	query := db.WithContext(ctx).Model(&models.PaymentLink{}).Where("merchant_id = ?", merchantID)

	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	if err := query.Order("created_at DESC").Limit(limit).Offset(offset).Find(&ms).Error; err != nil {
		return nil, 0, err
	}

	links := make([]*entities.PaymentLink, 0, len(ms))
	for _, m := range ms {
		model := m
		links = append(links, r.toEntity(&model))
	}
	return links, int(total), nil
}

// SoftDelete soft deletes a payment link
func (r *PaymentLinkRepository) SoftDelete(ctx context.Context, id uuid.UUID) error {
	db := GetDB(ctx, r.db)
	result := db.WithContext(ctx).Where("id = ?", id).Delete(&models.PaymentLink{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domainerrors.ErrNotFound
	}
	return nil
}

func (r *PaymentLinkRepository) toEntity(m *models.PaymentLink) *entities.PaymentLink {
	e := &entities.PaymentLink{
		ID:         m.ID,
		MerchantID: m.MerchantID,
		ProductID:  m.ProductID,
		URL:        m.URL,
		CreatedAt:  m.CreatedAt,
	}
	if m.DeletedAt.Valid {
		t := m.DeletedAt.Time
		e.DeletedAt = &t
	}
	return e
}
