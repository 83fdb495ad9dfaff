package repositories

import (
	"context"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
	"payeasy.backend/internal/domain/entities"
	"payeasy.backend/internal/infrastructure/models"
	"payeasy.backend/pkg/utils"
)

// LedgerRepository implements the append-only balance ledger. There is
// no update or delete path on purpose.
type LedgerRepository struct {
	db *gorm.DB
}

// NewLedgerRepository creates a new ledger repository
func NewLedgerRepository(db *gorm.DB) *LedgerRepository {
	return &LedgerRepository{db: db}
}

// Create appends a ledger entry
func (r *LedgerRepository) Create(ctx context.Context, entry *entities.LedgerEntry) error {
	if entry.ID == uuid.Nil {
		entry.ID = utils.GenerateUUIDv7()
	}

	m := &models.LedgerEntry{
		ID:          entry.ID,
		MerchantID:  entry.MerchantID,
		EntryType:   string(entry.EntryType),
		Amount:      entry.Amount,
		ReferenceID: entry.ReferenceID,
	}

	db := GetDB(ctx, r.db)
	if err := db.WithContext(ctx).Create(m).Error; err != nil {
		return err
	}

	entry.CreatedAt = m.CreatedAt
	return nil
}

// Balance returns the signed sum of all entries for a merchant. Credits
// add, debits subtract; the sign lives in the entry type, not the row.
func (r *LedgerRepository) Balance(ctx context.Context, merchantID uuid.UUID) (decimal.Decimal, error) {
	var row struct {
		Balance decimal.Decimal
	}

	db := GetDB(ctx, r.db)
	err := db.WithContext(ctx).Model(&models.LedgerEntry{}).
		Select("COALESCE(SUM(CASE WHEN entry_type IN (?, ?) THEN amount ELSE -amount END), 0) AS balance",
			string(entities.LedgerEntrySaleCredit), string(entities.LedgerEntryWithdrawalReversal)).
		Where("merchant_id = ?", merchantID).
		Scan(&row).Error
	if err != nil {
		return decimal.Zero, err
	}
	return row.Balance, nil
}

// GetByMerchantID gets ledger entries for a merchant with pagination
func (r *LedgerRepository) GetByMerchantID(ctx context.Context, merchantID uuid.UUID, limit, offset int) ([]*entities.LedgerEntry, int, error) {
	var ms []models.LedgerEntry
	var total int64

	db := GetDB(ctx, r.db)
	query := db.WithContext(ctx).Model(&models.LedgerEntry{}).Where("merchant_id = ?", merchantID)

	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	if err := query.Order("created_at DESC").Limit(limit).Offset(offset).Find(&ms).Error; err != nil {
		return nil, 0, err
	}

	entries := make([]*entities.LedgerEntry, 0, len(ms))
	for _, m := range ms {
		model := m
		entries = append(entries, r.toEntity(&model))
	}
	return entries, int(total), nil
}

func (r *LedgerRepository) toEntity(m *models.LedgerEntry) *entities.LedgerEntry {
	return &entities.LedgerEntry{
		ID:          m.ID,
		MerchantID:  m.MerchantID,
		EntryType:   entities.LedgerEntryType(m.EntryType),
		Amount:      m.Amount,
		ReferenceID: m.ReferenceID,
		CreatedAt:   m.CreatedAt,
	}
}
