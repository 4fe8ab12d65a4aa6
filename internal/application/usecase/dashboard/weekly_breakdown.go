// Package dashboard contains spend-report use cases.
package dashboard

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"

	"github.com/shopspring/decimal"

	"github.com/deolhonanota/backend/internal/application/adapter"
	"github.com/deolhonanota/backend/internal/application/usecase/classification"
	"github.com/deolhonanota/backend/internal/domain/entity"
	domainerror "github.com/deolhonanota/backend/internal/domain/error"
)

// WeekTotals maps a category bucket key (category ID string, or
// classification.UncategorizedKey) to the spend accumulated in that week.
type WeekTotals map[string]decimal.Decimal

// GetWeeklyBreakdownInput represents the input for the weekly breakdown report.
type GetWeeklyBreakdownInput struct {
	Year       int
	MonthIndex int // 0-based, 0 = January
}

// GetWeeklyBreakdownOutput represents the output of the weekly breakdown report.
// Weeks 1..MinWeeksPerMonth are always present, even when empty; a sixth week
// appears for months that spill past the fifth bucket.
type GetWeeklyBreakdownOutput struct {
	Year            int                `json:"year"`
	MonthIndex      int                `json:"month_index"`
	MonthLabel      string             `json:"month_label"`
	Weeks           map[int]WeekTotals `json:"weeks"`
	SkippedReceipts int                `json:"skipped_receipts"`
}

// GetWeeklyBreakdownUseCase buckets a month's item spend by week-of-month and
// category, classifying each product line with the prefix index.
type GetWeeklyBreakdownUseCase struct {
	receiptRepo adapter.ReceiptRepository
	prefixRepo  adapter.CategoryPrefixRepository
	cache       adapter.ReportCache
}

// NewGetWeeklyBreakdownUseCase creates a new GetWeeklyBreakdownUseCase instance.
func NewGetWeeklyBreakdownUseCase(
	receiptRepo adapter.ReceiptRepository,
	prefixRepo adapter.CategoryPrefixRepository,
	cache adapter.ReportCache,
) *GetWeeklyBreakdownUseCase {
	return &GetWeeklyBreakdownUseCase{
		receiptRepo: receiptRepo,
		prefixRepo:  prefixRepo,
		cache:       cache,
	}
}

// Execute computes the weekly breakdown for the given month.
func (uc *GetWeeklyBreakdownUseCase) Execute(ctx context.Context, input GetWeeklyBreakdownInput) (*GetWeeklyBreakdownOutput, error) {
	if err := validatePeriod(input.Year, input.MonthIndex); err != nil {
		return nil, err
	}

	cacheKey := fmt.Sprintf("report:semanal:%d:%d", input.Year, input.MonthIndex)
	if payload, ok := uc.cache.Get(ctx, cacheKey); ok {
		var cached GetWeeklyBreakdownOutput
		if err := json.Unmarshal(payload, &cached); err == nil {
			return &cached, nil
		}
	}

	receipts, err := uc.receiptRepo.FindByMonth(ctx, input.Year, input.MonthIndex)
	if err != nil {
		return nil, fmt.Errorf("failed to list receipts for month: %w", err)
	}

	prefixes, err := uc.prefixRepo.FindAllWithCategories(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load prefix index: %w", err)
	}
	classifier := classification.NewClassifier(prefixes)

	weeks, skipped := BreakdownByWeek(receipts, classifier, input.Year, input.MonthIndex)
	if skipped > 0 {
		slog.Warn("Receipts without a parsable issue date excluded from weekly report",
			"year", input.Year,
			"month_index", input.MonthIndex,
			"skipped", skipped,
		)
	}

	output := &GetWeeklyBreakdownOutput{
		Year:            input.Year,
		MonthIndex:      input.MonthIndex,
		MonthLabel:      MonthLabel(input.MonthIndex),
		Weeks:           weeks,
		SkippedReceipts: skipped,
	}

	if payload, err := json.Marshal(output); err == nil {
		_ = uc.cache.Set(ctx, cacheKey, payload, reportCacheTTL)
	}

	return output, nil
}

// BreakdownByWeek accumulates item spend per week-of-month and category for
// receipts issued in the given month. Receipts outside the month or without a
// valid issue date contribute to no bucket; the skipped count only covers the
// invalid dates. Week buckets 1..MinWeeksPerMonth always exist so consumers
// can render fixed-width series without nil checks; a sixth bucket is created
// on demand and never clamped.
func BreakdownByWeek(
	receipts []*entity.Receipt,
	classifier *classification.Classifier,
	year, monthIndex int,
) (map[int]WeekTotals, int) {
	weeks := make(map[int]WeekTotals, MinWeeksPerMonth)
	for week := 1; week <= MinWeeksPerMonth; week++ {
		weeks[week] = WeekTotals{}
	}

	skipped := 0
	for _, receipt := range receipts {
		if !receipt.HasValidIssueDate() {
			skipped++
			continue
		}
		if !InMonth(receipt.IssuedAt, year, monthIndex) {
			continue
		}

		week := WeekOfMonth(receipt.IssuedAt)
		totals, ok := weeks[week]
		if !ok {
			totals = WeekTotals{}
			weeks[week] = totals
		}

		for _, item := range receipt.Items {
			key := classifier.ClassifyKey(item.Name)
			totals[key] = totals[key].Add(item.TotalValue)
		}
	}

	return weeks, skipped
}

// validatePeriod rejects out-of-range report coordinates.
func validatePeriod(year, monthIndex int) error {
	if monthIndex < 0 || monthIndex > 11 {
		return domainerror.NewReportError(
			domainerror.ErrCodeInvalidMonthIndex,
			fmt.Sprintf("month index %d is outside 0..11", monthIndex),
			domainerror.ErrInvalidMonthIndex,
		)
	}
	if year < 2000 || year > 2200 {
		return domainerror.NewReportError(
			domainerror.ErrCodeInvalidYear,
			fmt.Sprintf("year %d is outside the supported range", year),
			domainerror.ErrInvalidYear,
		)
	}
	return nil
}
