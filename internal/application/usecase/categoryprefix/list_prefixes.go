// Package categoryprefix contains prefix rule use cases.
package categoryprefix

import (
	"context"
	"fmt"

	"github.com/deolhonanota/backend/internal/application/adapter"
	"github.com/deolhonanota/backend/internal/domain/entity"
)

// ListPrefixesOutput represents the output of the prefix rule listing.
type ListPrefixesOutput struct {
	Rules []*entity.CategoryPrefixWithCategory
}

// ListPrefixesUseCase handles prefix rule listing logic.
type ListPrefixesUseCase struct {
	prefixRepo adapter.CategoryPrefixRepository
}

// NewListPrefixesUseCase creates a new ListPrefixesUseCase instance.
func NewListPrefixesUseCase(prefixRepo adapter.CategoryPrefixRepository) *ListPrefixesUseCase {
	return &ListPrefixesUseCase{
		prefixRepo: prefixRepo,
	}
}

// Execute retrieves all prefix rules with their categories, oldest first.
// Rules whose category was removed are listed with a nil category so callers
// can surface them for cleanup.
func (uc *ListPrefixesUseCase) Execute(ctx context.Context) (*ListPrefixesOutput, error) {
	rules, err := uc.prefixRepo.FindAllWithCategories(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list prefix rules: %w", err)
	}

	return &ListPrefixesOutput{
		Rules: rules,
	}, nil
}
