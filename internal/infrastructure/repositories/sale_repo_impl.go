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
	"payeasy.backend/internal/domain/repositories"
	"payeasy.backend/internal/domain/wallet"
	"payeasy.backend/internal/infrastructure/models"
	"payeasy.backend/pkg/utils"
)

// SaleRepository implements sale data operations
type SaleRepository struct {
	db *gorm.DB
}

// NewSaleRepository creates a new sale repository
func NewSaleRepository(db *gorm.DB) *SaleRepository {
	return &SaleRepository{db: db}
}

// Create creates a new sale
func (r *SaleRepository) Create(ctx context.Context, sale *entities.Sale) error {
	if sale.ID == uuid.Nil {
		sale.ID = utils.GenerateUUIDv7()
	}
	if sale.Status == "" {
		sale.Status = entities.SaleStatusPending
	}

	m := &models.Sale{
		ID:          sale.ID,
		MerchantID:  sale.MerchantID,
		ProductID:   sale.ProductID,
		ProductName: sale.ProductName,
		BuyerName:   sale.BuyerName,
		BuyerPhone:  sale.BuyerPhone,
		Provider:    string(sale.Provider),
		Amount:      sale.Amount,
		Fee:         sale.Fee,
		Status:      string(sale.Status),
	}
	if sale.BuyerEmail.Valid {
		email := sale.BuyerEmail.String
		m.BuyerEmail = &email
	}

	db := GetDB(ctx, r.db)
	if err := db.WithContext(ctx).Create(m).Error; err != nil {
		return err
	}

	sale.CreatedAt = m.CreatedAt
	sale.UpdatedAt = m.UpdatedAt
	return nil
}

// GetByID gets a sale by ID
func (r *SaleRepository) GetByID(ctx context.Context, id uuid.UUID) (*entities.Sale, error) {
	var m models.Sale
	db := GetDB(ctx, r.db)
	if err := db.WithContext(ctx).Where("id = ?", id).First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domainerrors.ErrNotFound
		}
		return nil, err
	}
	return r.toEntity(&m), nil
}

// GetByMerchantID gets sales for a merchant with pagination
func (r *SaleRepository) GetByMerchantID(ctx context.Context, merchantID uuid.UUID, limit, offset int) ([]*entities.Sale, int, error) {
	var ms []models.Sale
	var total int64

	db := GetDB(ctx, r.db)
	query := db.WithContext(ctx).Model(&models.Sale{}).Where("merchant_id = ?", merchantID)

	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	if err := query.Order("created_at DESC").Limit(limit).Offset(offset).Find(&ms).Error; err != nil {
		return nil, 0, err
	}

	sales := make([]*entities.Sale, 0, len(ms))
	for _, m := range ms {
		model := m
		sales = append(sales, r.toEntity(&model))
	}
	return sales, int(total), nil
}

// UpdateStatus updates a sale's lifecycle status
func (r *SaleRepository) UpdateStatus(ctx context.Context, id uuid.UUID, status entities.SaleStatus) error {
	db := GetDB(ctx, r.db)
	result := db.WithContext(ctx).Model(&models.Sale{}).
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

// AggregateByStatus sums gross amounts and fees for one status
func (r *SaleRepository) AggregateByStatus(ctx context.Context, merchantID uuid.UUID, status entities.SaleStatus) (*repositories.SaleAggregate, error) {
	var row struct {
		Gross decimal.Decimal
		Fees  decimal.Decimal
		Count int64
	}

	db := GetDB(ctx, r.db)
	err := db.WithContext(ctx).Model(&models.Sale{}).
		Select("COALESCE(SUM(amount), 0) AS gross, COALESCE(SUM(fee), 0) AS fees, COUNT(*) AS count").
		Where("merchant_id = ? AND status = ?", merchantID, string(status)).
		Scan(&row).Error
	if err != nil {
		return nil, err
	}

	return &repositories.SaleAggregate{
		Gross: row.Gross,
		Fees:  row.Fees,
		Count: row.Count,
	}, nil
}

// GetPendingOlderThan returns pending sales created before the cutoff
func (r *SaleRepository) GetPendingOlderThan(ctx context.Context, cutoff time.Time, limit int) ([]*entities.Sale, error) {
	var ms []models.Sale
	db := GetDB(ctx, r.db)
	if err := db.WithContext(ctx).
		Where("status = ? AND created_at < ?", string(entities.SaleStatusPending), cutoff).
		Order("created_at ASC").
		Limit(limit).
		Find(&ms).Error; err != nil {
		return nil, err
	}

	sales := make([]*entities.Sale, 0, len(ms))
	for _, m := range ms {
		model := m
		sales = append(sales, r.toEntity(&model))
	}
	return sales, nil
}

func (r *SaleRepository) toEntity(m *models.Sale) *entities.Sale {
	e := &entities.Sale{
		ID:          m.ID,
		MerchantID:  m.MerchantID,
		ProductID:   m.ProductID,
		ProductName: m.ProductName,
		BuyerName:   m.BuyerName,
		BuyerPhone:  m.BuyerPhone,
		Provider:    wallet.Provider(m.Provider),
		Amount:      m.Amount,
		Fee:         m.Fee,
		Status:      entities.SaleStatus(m.Status),
		CreatedAt:   m.CreatedAt,
		UpdatedAt:   m.UpdatedAt,
	}
	if m.BuyerEmail != nil {
		e.BuyerEmail = null.StringFrom(*m.BuyerEmail)
	}
	return e
}
