// Package categoryprefix contains prefix rule use cases.
package categoryprefix

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/deolhonanota/backend/internal/application/adapter"
	"github.com/deolhonanota/backend/internal/domain/entity"
	domainerror "github.com/deolhonanota/backend/internal/domain/error"
)

const (
	// MaxPrefixLength is the maximum allowed length for a prefix rule.
	MaxPrefixLength = 100
)

// NormalizePrefix trims surrounding whitespace and uppercases the prefix text.
// Matching is case insensitive, so rules are stored in canonical uppercase.
func NormalizePrefix(prefix string) string {
	return strings.ToUpper(strings.TrimSpace(prefix))
}

// validatePrefixText normalizes and validates a prefix, returning the
// canonical form.
func validatePrefixText(prefix string) (string, error) {
	normalized := NormalizePrefix(prefix)
	if normalized == "" {
		return "", domainerror.NewCategoryPrefixError(
			domainerror.ErrCodeBlankPrefix,
			"prefix must not be empty or only whitespace",
			domainerror.ErrBlankPrefix,
		)
	}
	if len(normalized) > MaxPrefixLength {
		return "", domainerror.NewCategoryPrefixError(
			domainerror.ErrCodePrefixTooLong,
			fmt.Sprintf("prefix must not exceed %d characters", MaxPrefixLength),
			domainerror.ErrPrefixTooLong,
		)
	}
	return normalized, nil
}

// CreatePrefixInput represents the input for prefix rule creation.
type CreatePrefixInput struct {
	Prefix     string
	CategoryID uuid.UUID
}

// CreatePrefixOutput represents the output of prefix rule creation.
type CreatePrefixOutput struct {
	Rule *entity.CategoryPrefixWithCategory
}

// CreatePrefixUseCase handles prefix rule creation logic. Duplicate prefixes
// are allowed: the classifier resolves overlaps by longest match, ties by
// oldest rule.
type CreatePrefixUseCase struct {
	prefixRepo   adapter.CategoryPrefixRepository
	categoryRepo adapter.CategoryRepository
	cache        adapter.ReportCache
}

// NewCreatePrefixUseCase creates a new CreatePrefixUseCase instance.
func NewCreatePrefixUseCase(
	prefixRepo adapter.CategoryPrefixRepository,
	categoryRepo adapter.CategoryRepository,
	cache adapter.ReportCache,
) *CreatePrefixUseCase {
	return &CreatePrefixUseCase{
		prefixRepo:   prefixRepo,
		categoryRepo: categoryRepo,
		cache:        cache,
	}
}

// Execute performs the prefix rule creation.
func (uc *CreatePrefixUseCase) Execute(ctx context.Context, input CreatePrefixInput) (*CreatePrefixOutput, error) {
	normalized, err := validatePrefixText(input.Prefix)
	if err != nil {
		return nil, err
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

	rule := entity.NewCategoryPrefix(normalized, category.ID)
	if err := uc.prefixRepo.Create(ctx, rule); err != nil {
		return nil, fmt.Errorf("failed to create prefix rule: %w", err)
	}

	invalidateReports(ctx, uc.cache)

	return &CreatePrefixOutput{
		Rule: &entity.CategoryPrefixWithCategory{
			Prefix:   rule,
			Category: category,
		},
	}, nil
}
