// Package suggestion contains AI-assisted prefix suggestion use cases.
package suggestion

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/deolhonanota/backend/internal/application/adapter"
	"github.com/deolhonanota/backend/internal/application/usecase/classification"
	"github.com/deolhonanota/backend/internal/domain/entity"
	domainerror "github.com/deolhonanota/backend/internal/domain/error"
)

// maxProductsPerRequest caps how many uncategorized names one AI request
// carries.
const maxProductsPerRequest = 100

// SuggestPrefixesOutput represents the output of the prefix suggestion run.
type SuggestPrefixesOutput struct {
	Suggestions    []*adapter.PrefixSuggestion
	ProductsSent   int
	ProductsIgnored int
}

// SuggestPrefixesUseCase collects product names no prefix rule matches and
// asks the AI service for prefix rules mapping them to existing categories.
// Suggestions are proposals only: nothing is written until the caller accepts
// one through the regular prefix creation flow.
type SuggestPrefixesUseCase struct {
	receiptRepo  adapter.ReceiptRepository
	prefixRepo   adapter.CategoryPrefixRepository
	categoryRepo adapter.CategoryRepository
	aiService    adapter.PrefixSuggestionService
}

// NewSuggestPrefixesUseCase creates a new SuggestPrefixesUseCase instance.
func NewSuggestPrefixesUseCase(
	receiptRepo adapter.ReceiptRepository,
	prefixRepo adapter.CategoryPrefixRepository,
	categoryRepo adapter.CategoryRepository,
	aiService adapter.PrefixSuggestionService,
) *SuggestPrefixesUseCase {
	return &SuggestPrefixesUseCase{
		receiptRepo:  receiptRepo,
		prefixRepo:   prefixRepo,
		categoryRepo: categoryRepo,
		aiService:    aiService,
	}
}

// Execute gathers uncategorized product names and requests suggestions.
func (uc *SuggestPrefixesUseCase) Execute(ctx context.Context) (*SuggestPrefixesOutput, error) {
	if !uc.aiService.IsAvailable() {
		return nil, domainerror.NewAISuggestionError(
			domainerror.ErrCodeAIServiceUnavailable,
			"ai service is not configured",
			domainerror.ErrAIServiceUnavailable,
		)
	}

	rules, err := uc.prefixRepo.FindAllWithCategories(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load prefix index: %w", err)
	}
	classifier := classification.NewClassifier(rules)

	receipts, err := uc.receiptRepo.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list receipts: %w", err)
	}

	names := uncategorizedNames(receipts, classifier)
	if len(names) == 0 {
		return nil, domainerror.NewAISuggestionError(
			domainerror.ErrCodeAINoUncategorized,
			"every product already matches a prefix rule",
			domainerror.ErrAINoUncategorized,
		)
	}

	ignored := 0
	if len(names) > maxProductsPerRequest {
		ignored = len(names) - maxProductsPerRequest
		names = names[:maxProductsPerRequest]
	}

	categories, err := uc.categoryRepo.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list categories: %w", err)
	}

	request := &adapter.PrefixSuggestionRequest{
		ProductNames: names,
		Categories:   make([]*adapter.CategoryForAI, 0, len(categories)),
	}
	knownCodes := make(map[string]bool, len(categories))
	for _, category := range categories {
		knownCodes[category.Code] = true
		request.Categories = append(request.Categories, &adapter.CategoryForAI{
			Code:        category.Code,
			Name:        category.Name,
			Description: category.Description,
		})
	}

	suggestions, err := uc.aiService.SuggestPrefixes(ctx, request)
	if err != nil {
		return nil, domainerror.NewAISuggestionError(
			domainerror.ErrCodeAIServiceError,
			"prefix suggestion request failed",
			err,
		)
	}

	// Drop suggestions the store cannot accept: blank prefixes or codes
	// outside the catalog.
	valid := make([]*adapter.PrefixSuggestion, 0, len(suggestions))
	for _, s := range suggestions {
		s.Prefix = strings.ToUpper(strings.TrimSpace(s.Prefix))
		if s.Prefix == "" || !knownCodes[s.CategoryCode] {
			slog.Warn("Discarding unusable AI prefix suggestion",
				"prefix", s.Prefix,
				"category_code", s.CategoryCode,
			)
			continue
		}
		valid = append(valid, s)
	}

	return &SuggestPrefixesOutput{
		Suggestions:     valid,
		ProductsSent:    len(names),
		ProductsIgnored: ignored,
	}, nil
}

// uncategorizedNames returns the distinct product names no rule matches,
// in first-seen order.
func uncategorizedNames(receipts []*entity.Receipt, classifier *classification.Classifier) []string {
	seen := make(map[string]bool)
	var names []string
	for _, receipt := range receipts {
		for _, item := range receipt.Items {
			if _, ok := classifier.Classify(item.Name); ok {
				continue
			}
			key := strings.ToUpper(strings.TrimSpace(item.Name))
			if key == "" || seen[key] {
				continue
			}
			seen[key] = true
			names = append(names, key)
		}
	}
	return names
}
