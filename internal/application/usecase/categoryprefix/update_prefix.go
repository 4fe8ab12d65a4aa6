// Package categoryprefix contains prefix rule use cases.
package categoryprefix

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/deolhonanota/backend/internal/application/adapter"
	"github.com/deolhonanota/backend/internal/domain/entity"
	domainerror "github.com/deolhonanota/backend/internal/domain/error"
)

// UpdatePrefixInput represents the input for prefix rule updates. Both the
// prefix text and the target category are replaced.
type UpdatePrefixInput struct {
	PrefixID   uuid.UUID
	Prefix     string
	CategoryID uuid.UUID
}

// UpdatePrefixOutput represents the output of a prefix rule update.
type UpdatePrefixOutput struct {
	Rule *entity.CategoryPrefixWithCategory
}

// UpdatePrefixUseCase handles prefix rule update logic.
type UpdatePrefixUseCase struct {
	prefixRepo   adapter.CategoryPrefixRepository
	categoryRepo adapter.CategoryRepository
	cache        adapter.ReportCache
}

// NewUpdatePrefixUseCase creates a new UpdatePrefixUseCase instance.
func NewUpdatePrefixUseCase(
	prefixRepo adapter.CategoryPrefixRepository,
	categoryRepo adapter.CategoryRepository,
	cache adapter.ReportCache,
) *UpdatePrefixUseCase {
	return &UpdatePrefixUseCase{
		prefixRepo:   prefixRepo,
		categoryRepo: categoryRepo,
		cache:        cache,
	}
}

// Execute performs the prefix rule update. The rule keeps its creation time,
// so its tie-break position in the classifier is unchanged.
func (uc *UpdatePrefixUseCase) Execute(ctx context.Context, input UpdatePrefixInput) (*UpdatePrefixOutput, error) {
	normalized, err := validatePrefixText(input.Prefix)
	if err != nil {
		return nil, err
	}

	rule, err := uc.prefixRepo.FindByID(ctx, input.PrefixID)
	if err != nil {
		if errors.Is(err, domainerror.ErrCategoryPrefixNotFound) {
			return nil, domainerror.NewCategoryPrefixError(
				domainerror.ErrCodeCategoryPrefixNotFound,
				"prefix rule not found",
				domainerror.ErrCategoryPrefixNotFound,
			)
		}
		return nil, fmt.Errorf("failed to find prefix rule: %w", err)
	}

	category, err := uc.categoryRepo.FindByID(ctx, input.CategoryID)
	if err != nil {
		if errors.Is(err, domainerror.ErrCategoryNotFound) {
			return nil, domainerror.NewCategoryPrefixError(
				domainerror.ErrCodeCategoryNotFoundForPrefix,
				"category not found",
				domainerror.ErrCategoryNotFoundForPrefix,
			)
		}
		return nil, fmt.Errorf("failed to find category: %w", err)
	}

	rule.Prefix = normalized
	rule.CategoryID = category.ID
	rule.UpdatedAt = time.Now().UTC()

	if err := uc.prefixRepo.Update(ctx, rule); err != nil {
		return nil, fmt.Errorf("failed to update prefix rule: %w", err)
	}

	invalidateReports(ctx, uc.cache)

	return &UpdatePrefixOutput{
		Rule: &entity.CategoryPrefixWithCategory{
			Prefix:   rule,
			Category: category,
		},
	}, nil
}
