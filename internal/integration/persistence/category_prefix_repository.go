// Package persistence implements repository interfaces for database operations.
package persistence

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/deolhonanota/backend/internal/application/adapter"
	"github.com/deolhonanota/backend/internal/domain/entity"
	domainerror "github.com/deolhonanota/backend/internal/domain/error"
	"github.com/deolhonanota/backend/internal/integration/persistence/model"
)

// categoryPrefixRepository implements the adapter.CategoryPrefixRepository interface.
type categoryPrefixRepository struct {
	db *gorm.DB
}

// NewCategoryPrefixRepository creates a new prefix rule repository instance.
func NewCategoryPrefixRepository(db *gorm.DB) adapter.CategoryPrefixRepository {
	return &categoryPrefixRepository{
		db: db,
	}
}

// Create creates a new prefix rule in the database.
func (r *categoryPrefixRepository) Create(ctx context.Context, prefix *entity.CategoryPrefix) error {
	prefixModel := model.CategoryPrefixFromEntity(prefix)
	result := r.db.WithContext(ctx).Create(prefixModel)
	if result.Error != nil {
		return result.Error
	}
	return nil
}

// FindByID retrieves a prefix rule by its ID.
func (r *categoryPrefixRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.CategoryPrefix, error) {
	var prefixModel model.CategoryPrefixModel
	result := r.db.WithContext(ctx).Where("id = ?", id).First(&prefixModel)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, domainerror.ErrCategoryPrefixNotFound
		}
		return nil, result.Error
	}
	return prefixModel.ToEntity(), nil
}

// FindAll retrieves all prefix rules ordered by creation time ascending.
// The order carries the classifier's tie-break for equal-length prefixes.
func (r *categoryPrefixRepository) FindAll(ctx context.Context) ([]*entity.CategoryPrefix, error) {
	var prefixModels []model.CategoryPrefixModel
	result := r.db.WithContext(ctx).
		Order("created_at ASC, id ASC").
		Find(&prefixModels)
	if result.Error != nil {
		return nil, result.Error
	}

	prefixes := make([]*entity.CategoryPrefix, len(prefixModels))
	for i, pm := range prefixModels {
		prefixes[i] = pm.ToEntity()
	}
	return prefixes, nil
}

// FindAllWithCategories retrieves all prefix rules with their categories.
// The join is left outer: rules whose category was removed come back with a
// nil category and classify as uncategorized.
func (r *categoryPrefixRepository) FindAllWithCategories(ctx context.Context) ([]*entity.CategoryPrefixWithCategory, error) {
	prefixes, err := r.FindAll(ctx)
	if err != nil {
		return nil, err
	}

	var categoryModels []model.CategoryModel
	result := r.db.WithContext(ctx).Find(&categoryModels)
	if result.Error != nil {
		return nil, result.Error
	}

	categoriesByID := make(map[uuid.UUID]*entity.Category, len(categoryModels))
	for i := range categoryModels {
		categoriesByID[categoryModels[i].ID] = categoryModels[i].ToEntity()
	}

	rules := make([]*entity.CategoryPrefixWithCategory, len(prefixes))
	for i, prefix := range prefixes {
		rules[i] = &entity.CategoryPrefixWithCategory{
			Prefix:   prefix,
			Category: categoriesByID[prefix.CategoryID],
		}
	}
	return rules, nil
}

// Update updates an existing prefix rule in the database.
func (r *categoryPrefixRepository) Update(ctx context.Context, prefix *entity.CategoryPrefix) error {
	prefixModel := model.CategoryPrefixFromEntity(prefix)
	result := r.db.WithContext(ctx).Save(prefixModel)
	if result.Error != nil {
		return result.Error
	}
	return nil
}

// Delete removes a prefix rule from the database.
func (r *categoryPrefixRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := r.db.WithContext(ctx).Delete(&model.CategoryPrefixModel{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domainerror.ErrCategoryPrefixNotFound
	}
	return nil
}
