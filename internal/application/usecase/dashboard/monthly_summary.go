// Package dashboard contains spend-report use cases.
package dashboard

import (
	"context"
	"encoding/json"
	"fmt"
	"sort"

	"github.com/shopspring/decimal"

	"github.com/deolhonanota/backend/internal/application/adapter"
	"github.com/deolhonanota/backend/internal/application/usecase/classification"
	"github.com/deolhonanota/backend/internal/domain/entity"
)

// Presentation metadata for the uncategorized bucket, mirroring the catch-all
// category of the original frontend.
const (
	uncategorizedLabel = "Outros"
	uncategorizedColor = "#9ca3af"
	uncategorizedIcon  = "ShoppingCart"
)

// GetMonthlySummaryInput represents the input for the monthly summary report.
type GetMonthlySummaryInput struct {
	Year       int
	MonthIndex int // 0-based, 0 = January
}

// CategoryTotal represents one category's spend over the whole month.
type CategoryTotal struct {
	CategoryKey   string          `json:"category_key"` // Category ID, or the uncategorized key
	CategoryCode  string          `json:"category_code"`
	CategoryName  string          `json:"category_name"`
	CategoryColor string          `json:"category_color"`
	CategoryIcon  string          `json:"category_icon"`
	Total         decimal.Decimal `json:"total"`
}

// GetMonthlySummaryOutput is the chart-ready view model for a month: active
// categories, grand total, per-category ranking and the mean weekly spend.
type GetMonthlySummaryOutput struct {
	Year             int              `json:"year"`
	MonthIndex       int              `json:"month_index"`
	MonthLabel       string           `json:"month_label"`
	Total            decimal.Decimal  `json:"total"`
	WeeklyMean       decimal.Decimal  `json:"weekly_mean"`
	ActiveCategories int              `json:"active_categories"`
	Categories       []*CategoryTotal `json:"categories"` // Sorted by total, descending
}

// GetMonthlySummaryUseCase derives the monthly summary view model from the
// weekly breakdown. Pure derivation: nothing upstream is mutated.
type GetMonthlySummaryUseCase struct {
	breakdownUseCase *GetWeeklyBreakdownUseCase
	categoryRepo     adapter.CategoryRepository
	cache            adapter.ReportCache
}

// NewGetMonthlySummaryUseCase creates a new GetMonthlySummaryUseCase instance.
func NewGetMonthlySummaryUseCase(
	breakdownUseCase *GetWeeklyBreakdownUseCase,
	categoryRepo adapter.CategoryRepository,
	cache adapter.ReportCache,
) *GetMonthlySummaryUseCase {
	return &GetMonthlySummaryUseCase{
		breakdownUseCase: breakdownUseCase,
		categoryRepo:     categoryRepo,
		cache:            cache,
	}
}

// Execute computes the monthly summary for the given month.
func (uc *GetMonthlySummaryUseCase) Execute(ctx context.Context, input GetMonthlySummaryInput) (*GetMonthlySummaryOutput, error) {
	if err := validatePeriod(input.Year, input.MonthIndex); err != nil {
		return nil, err
	}

	cacheKey := fmt.Sprintf("report:resumo:%d:%d", input.Year, input.MonthIndex)
	if payload, ok := uc.cache.Get(ctx, cacheKey); ok {
		var cached GetMonthlySummaryOutput
		if err := json.Unmarshal(payload, &cached); err == nil {
			return &cached, nil
		}
	}

	breakdown, err := uc.breakdownUseCase.Execute(ctx, GetWeeklyBreakdownInput(input))
	if err != nil {
		return nil, err
	}

	categories, err := uc.categoryRepo.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list categories: %w", err)
	}

	output := SummarizeMonth(breakdown, categories)

	if payload, err := json.Marshal(output); err == nil {
		_ = uc.cache.Set(ctx, cacheKey, payload, reportCacheTTL)
	}

	return output, nil
}

// SummarizeMonth folds a weekly breakdown into the month view model. The mean
// weekly spend divides by the fixed WeeklyMeanDivisor, not the bucket count.
func SummarizeMonth(breakdown *GetWeeklyBreakdownOutput, categories []*entity.Category) *GetMonthlySummaryOutput {
	byID := make(map[string]*entity.Category, len(categories))
	for _, category := range categories {
		byID[category.ID.String()] = category
	}

	totals := make(map[string]decimal.Decimal)
	grandTotal := decimal.Zero
	for _, week := range breakdown.Weeks {
		for key, value := range week {
			totals[key] = totals[key].Add(value)
			grandTotal = grandTotal.Add(value)
		}
	}

	ranked := make([]*CategoryTotal, 0, len(totals))
	for key, total := range totals {
		if total.IsZero() {
			continue
		}

		item := &CategoryTotal{
			CategoryKey: key,
			Total:       total,
		}
		if category, ok := byID[key]; ok {
			item.CategoryCode = category.Code
			item.CategoryName = category.Name
			item.CategoryColor = category.Color
			item.CategoryIcon = category.Icon
		} else {
			item.CategoryKey = classification.UncategorizedKey
			item.CategoryCode = entity.FallbackCategoryCode
			item.CategoryName = uncategorizedLabel
			item.CategoryColor = uncategorizedColor
			item.CategoryIcon = uncategorizedIcon
		}
		ranked = append(ranked, item)
	}

	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].Total.GreaterThan(ranked[j].Total)
	})

	return &GetMonthlySummaryOutput{
		Year:             breakdown.Year,
		MonthIndex:       breakdown.MonthIndex,
		MonthLabel:       breakdown.MonthLabel,
		Total:            grandTotal,
		WeeklyMean:       grandTotal.Div(decimal.NewFromInt(WeeklyMeanDivisor)),
		ActiveCategories: len(ranked),
		Categories:       ranked,
	}
}
