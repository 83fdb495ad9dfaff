package repositories

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/volatiletech/null/v8"
	"gorm.io/gorm"
	"payeasy.backend/internal/domain/entities"
	domainerrors "payeasy.backend/internal/domain/errors"
	"payeasy.backend/internal/infrastructure/models"
	"payeasy.backend/pkg/utils"
)

// ProductRepository implements product data operations
type ProductRepository struct {
	db *gorm.DB
}

// NewProductRepository creates a new product repository
func NewProductRepository(db *gorm.DB) *ProductRepository {
	return &ProductRepository{db: db}
}

// Create creates a new product
func (r *ProductRepository) Create(ctx context.Context, product *entities.Product) error {
	if product.ID == uuid.Nil {
		product.ID = utils.GenerateUUIDv7()
	}
	if product.Status == "" {
		product.Status = entities.ProductStatusPending
	}

	m := r.toModel(product)
	db := GetDB(ctx, r.db)
	if err := db.WithContext(ctx).Create(m).Error; err != nil {
		return err
	}

	product.CreatedAt = m.CreatedAt
	product.UpdatedAt = m.UpdatedAt
	return nil
}

// GetByID gets a product by ID
func (r *ProductRepository) GetByID(ctx context.Context, id uuid.UUID) (*entities.Product, error) {
	var m models.Product
	db := GetDB(ctx, r.db)
	if err := db.WithContext(ctx).Where("id = ?", id).First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domainerrors.ErrNotFound
		}
		return nil, err
	}
	return r.toEntity(&m), nil
}

// GetByMerchantID gets products for a merchant with pagination
func (r *ProductRepository) GetByMerchantID(ctx context.Context, merchantID uuid.UUID, limit, offset int) ([]*entities.Product, int, error) {
	var ms []models.Product
	var total int64

	db := GetDB(ctx, r.db)
	query := db.WithContext(ctx).Model(&models.Product{}).Where("merchant_id = ?", merchantID)

	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	if err := query.Order("created_at DESC").Limit(limit).Offset(offset).Find(&ms).Error; err != nil {
		return nil, 0, err
	}

	products := make([]*entities.Product, 0, len(ms))
	for _, m := range ms {
		model := m
		products = append(products, r.toEntity(&model))
	}
	return products, int(total), nil
}

// Update updates a product's merchant-editable fields
func (r *ProductRepository) Update(ctx context.Context, product *entities.Product) error {
	updates := map[string]interface{}{
		"name":         product.Name,
		"category":     product.Category,
		"price":        product.Price,
		"available":    product.Available,
		"limited_time": product.LimitedTime,
		"updated_at":   time.Now(),
	}
	if product.OfferTitle.Valid {
		updates["offer_title"] = product.OfferTitle.String
	} else {
		updates["offer_title"] = nil
	}
	if product.OfferPrice.Valid {
		updates["offer_price"] = product.OfferPrice.Decimal
	} else {
		updates["offer_price"] = nil
	}

	db := GetDB(ctx, r.db)
	result := db.WithContext(ctx).Model(&models.Product{}).
		Where("id = ?", product.ID).
		Updates(updates)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domainerrors.ErrNotFound
	}
	return nil
}

// UpdateStatus updates a product's review status
func (r *ProductRepository) UpdateStatus(ctx context.Context, id uuid.UUID, status entities.ProductStatus) error {
	db := GetDB(ctx, r.db)
	result := db.WithContext(ctx).Model(&models.Product{}).
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

// SoftDelete soft deletes a product
func (r *ProductRepository) SoftDelete(ctx context.Context, id uuid.UUID) error {
	db := GetDB(ctx, r.db)
	result := db.WithContext(ctx).Where("id = ?", id).Delete(&models.Product{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domainerrors.ErrNotFound
	}
	return nil
}

// GetPendingOlderThan returns pending products created before the cutoff
func (r *ProductRepository) GetPendingOlderThan(ctx context.Context, cutoff time.Time, limit int) ([]*entities.Product, error) {
	var ms []models.Product
	db := GetDB(ctx, r.db)
	if err := db.WithContext(ctx).
		Where("status = ? AND created_at < ?", string(entities.ProductStatusPending), cutoff).
		Order("created_at ASC").
		Limit(limit).
		Find(&ms).Error; err != nil {
		return nil, err
	}

	products := make([]*entities.Product, 0, len(ms))
	for _, m := range ms {
		model := m
		products = append(products, r.toEntity(&model))
	}
	return products, nil
}

func (r *ProductRepository) toModel(p *entities.Product) *models.Product {
	m := &models.Product{
		ID:          p.ID,
		MerchantID:  p.MerchantID,
		Name:        p.Name,
		Category:    p.Category,
		Price:       p.Price,
		Available:   p.Available,
		Status:      string(p.Status),
		LimitedTime: p.LimitedTime,
	}
	if p.OfferTitle.Valid {
		title := p.OfferTitle.String
		m.OfferTitle = &title
	}
	if p.OfferPrice.Valid {
		price := p.OfferPrice.Decimal
		m.OfferPrice = &price
	}
	return m
}

func (r *ProductRepository) toEntity(m *models.Product) *entities.Product {
	e := &entities.Product{
		ID:          m.ID,
		MerchantID:  m.MerchantID,
		Name:        m.Name,
		Category:    m.Category,
		Price:       m.Price,
		Available:   m.Available,
		Status:      entities.ProductStatus(m.Status),
		LimitedTime: m.LimitedTime,
		CreatedAt:   m.CreatedAt,
		UpdatedAt:   m.UpdatedAt,
	}
	if m.OfferTitle != nil {
		e.OfferTitle = null.StringFrom(*m.OfferTitle)
	}
	if m.OfferPrice != nil {
		e.OfferPrice = decimal.NewNullDecimal(*m.OfferPrice)
	}
	if m.DeletedAt.Valid {
		t := m.DeletedAt.Time
		e.DeletedAt = &t
	}
	return e
}
