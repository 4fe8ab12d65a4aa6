// Package category contains category-related use cases.
package category

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/deolhonanota/backend/internal/application/adapter"
	"github.com/deolhonanota/backend/internal/domain/entity"
)

// SeedCategoriesUseCase populates the category catalog on first boot. The
// catalog is fixed; a store that already holds categories is left untouched.
type SeedCategoriesUseCase struct {
	categoryRepo adapter.CategoryRepository
}

// NewSeedCategoriesUseCase creates a new SeedCategoriesUseCase instance.
func NewSeedCategoriesUseCase(categoryRepo adapter.CategoryRepository) *SeedCategoriesUseCase {
	return &SeedCategoriesUseCase{
		categoryRepo: categoryRepo,
	}
}

// Execute seeds the default categories when the store is empty.
func (uc *SeedCategoriesUseCase) Execute(ctx context.Context) error {
	defaults := entity.DefaultCategories()
	if err := uc.categoryRepo.SeedDefaults(ctx, defaults); err != nil {
		return fmt.Errorf("failed to seed categories: %w", err)
	}

	slog.Info("Category catalog ready", "categories", len(defaults))
	return nil
}
