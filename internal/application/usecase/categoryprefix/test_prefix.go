// Package categoryprefix contains prefix rule use cases.
package categoryprefix

import (
	"context"
	"fmt"

	"github.com/deolhonanota/backend/internal/application/adapter"
	"github.com/deolhonanota/backend/internal/application/usecase/classification"
	"github.com/deolhonanota/backend/internal/domain/entity"
)

// TestPrefixInput represents the input for testing a product name against the
// current prefix index.
type TestPrefixInput struct {
	ProductName string
}

// TestPrefixOutput represents the result of a classification preview.
type TestPrefixOutput struct {
	ProductName string
	Matched     bool
	Category    *entity.Category // nil when uncategorized
}

// TestPrefixUseCase previews how a product name would classify with the rules
// currently in the store, without touching any receipt.
type TestPrefixUseCase struct {
	prefixRepo adapter.CategoryPrefixRepository
}

// NewTestPrefixUseCase creates a new TestPrefixUseCase instance.
func NewTestPrefixUseCase(prefixRepo adapter.CategoryPrefixRepository) *TestPrefixUseCase {
	return &TestPrefixUseCase{
		prefixRepo: prefixRepo,
	}
}

// Execute classifies the product name against a fresh snapshot of the index.
func (uc *TestPrefixUseCase) Execute(ctx context.Context, input TestPrefixInput) (*TestPrefixOutput, error) {
	rules, err := uc.prefixRepo.FindAllWithCategories(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load prefix index: %w", err)
	}

	classifier := classification.NewClassifier(rules)
	categoryID, matched := classifier.Classify(input.ProductName)

	output := &TestPrefixOutput{
		ProductName: input.ProductName,
		Matched:     matched,
	}
	if matched {
		for _, rule := range rules {
			if rule.Category != nil && rule.Category.ID == categoryID {
				output.Category = rule.Category
				break
			}
		}
	}

	return output, nil
}
