// Package persistence implements repository interfaces for database operations.
package persistence

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/deolhonanota/backend/internal/application/adapter"
	"github.com/deolhonanota/backend/internal/domain/entity"
	domainerror "github.com/deolhonanota/backend/internal/domain/error"
	"github.com/deolhonanota/backend/internal/integration/persistence/model"
)

// receiptRepository implements the adapter.ReceiptRepository interface.
type receiptRepository struct {
	db *gorm.DB
}

// NewReceiptRepository creates a new receipt repository instance.
func NewReceiptRepository(db *gorm.DB) adapter.ReceiptRepository {
	return &receiptRepository{
		db: db,
	}
}

// Create persists a receipt with its items in one transaction.
func (r *receiptRepository) Create(ctx context.Context, receipt *entity.Receipt) error {
	receiptModel := model.ReceiptFromEntity(receipt)
	result := r.db.WithContext(ctx).Create(receiptModel)
	if result.Error != nil {
		return result.Error
	}
	return nil
}

// FindByID retrieves a receipt with its items by ID.
func (r *receiptRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Receipt, error) {
	var receiptModel model.ReceiptModel
	result := r.db.WithContext(ctx).
		Preload("Items").
		Where("id = ?", id).
		First(&receiptModel)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, domainerror.ErrReceiptNotFound
		}
		return nil, result.Error
	}
	return receiptModel.ToEntity(), nil
}

// FindAll retrieves every receipt with items, newest issue date first.
// Receipts without an issue date sort last.
func (r *receiptRepository) FindAll(ctx context.Context) ([]*entity.Receipt, error) {
	var receiptModels []model.ReceiptModel
	result := r.db.WithContext(ctx).
		Preload("Items").
		Order("issued_at DESC NULLS LAST").
		Find(&receiptModels)
	if result.Error != nil {
		return nil, result.Error
	}

	receipts := make([]*entity.Receipt, len(receiptModels))
	for i := range receiptModels {
		receipts[i] = receiptModels[i].ToEntity()
	}
	return receipts, nil
}

// FindByMonth retrieves receipts issued in the given month, plus the receipts
// with no issue date so callers can count them as skipped.
func (r *receiptRepository) FindByMonth(ctx context.Context, year, monthIndex int) ([]*entity.Receipt, error) {
	start := time.Date(year, time.Month(monthIndex+1), 1, 0, 0, 0, 0, time.UTC)
	end := start.AddDate(0, 1, 0)

	var receiptModels []model.ReceiptModel
	result := r.db.WithContext(ctx).
		Preload("Items").
		Where("(issued_at >= ? AND issued_at < ?) OR issued_at IS NULL", start, end).
		Order("issued_at ASC").
		Find(&receiptModels)
	if result.Error != nil {
		return nil, result.Error
	}

	receipts := make([]*entity.Receipt, len(receiptModels))
	for i := range receiptModels {
		receipts[i] = receiptModels[i].ToEntity()
	}
	return receipts, nil
}

// ExistsByAccessKey checks whether a receipt with the access key exists.
func (r *receiptRepository) ExistsByAccessKey(ctx context.Context, accessKey string) (bool, error) {
	var count int64
	result := r.db.WithContext(ctx).
		Model(&model.ReceiptModel{}).
		Where("access_key = ?", accessKey).
		Count(&count)
	if result.Error != nil {
		return false, result.Error
	}
	return count > 0, nil
}
