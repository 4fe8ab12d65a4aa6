// Package dashboard contains spend-report use cases.
package dashboard

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"sort"
	"time"

	"github.com/shopspring/decimal"

	"github.com/deolhonanota/backend/internal/application/adapter"
	"github.com/deolhonanota/backend/internal/domain/entity"
)

// monthlySpendingCacheKey is the report-cache key for the month bucket list.
const monthlySpendingCacheKey = "report:mensal"

// reportCacheTTL bounds how stale a cached report may get when an
// invalidation is missed.
const reportCacheTTL = 5 * time.Minute

// MonthBucket represents all receipts issued in one calendar month.
type MonthBucket struct {
	Year       int               `json:"year"`
	MonthIndex int               `json:"month_index"` // 0-based, 0 = January
	MonthLabel string            `json:"month_label"`
	Total      decimal.Decimal   `json:"total"`
	Receipts   []*entity.Receipt `json:"receipts"`
}

// GetMonthlySpendingOutput represents the output of the monthly spending report.
type GetMonthlySpendingOutput struct {
	Months          []*MonthBucket `json:"months"`
	SkippedReceipts int            `json:"skipped_receipts"`
}

// GetMonthlySpendingUseCase groups receipts into month buckets, most recent first.
type GetMonthlySpendingUseCase struct {
	receiptRepo adapter.ReceiptRepository
	cache       adapter.ReportCache
}

// NewGetMonthlySpendingUseCase creates a new GetMonthlySpendingUseCase instance.
func NewGetMonthlySpendingUseCase(receiptRepo adapter.ReceiptRepository, cache adapter.ReportCache) *GetMonthlySpendingUseCase {
	return &GetMonthlySpendingUseCase{
		receiptRepo: receiptRepo,
		cache:       cache,
	}
}

// Execute computes the monthly spending report.
func (uc *GetMonthlySpendingUseCase) Execute(ctx context.Context) (*GetMonthlySpendingOutput, error) {
	if payload, ok := uc.cache.Get(ctx, monthlySpendingCacheKey); ok {
		var cached GetMonthlySpendingOutput
		if err := json.Unmarshal(payload, &cached); err == nil {
			return &cached, nil
		}
	}

	receipts, err := uc.receiptRepo.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list receipts: %w", err)
	}

	months, skipped := GroupReceiptsByMonth(receipts)
	if skipped > 0 {
		slog.Warn("Receipts without a parsable issue date excluded from monthly report",
			"skipped", skipped,
		)
	}

	output := &GetMonthlySpendingOutput{
		Months:          months,
		SkippedReceipts: skipped,
	}

	if payload, err := json.Marshal(output); err == nil {
		_ = uc.cache.Set(ctx, monthlySpendingCacheKey, payload, reportCacheTTL)
	}

	return output, nil
}

// GroupReceiptsByMonth partitions receipts into (year, month) buckets and sums
// the paid value per bucket. Buckets are ordered descending by (year, month).
// Receipts without a valid issue date are excluded from every bucket; the
// second return value counts them. Every input receipt lands in exactly one
// bucket or in the skipped count.
func GroupReceiptsByMonth(receipts []*entity.Receipt) ([]*MonthBucket, int) {
	type key struct {
		year  int
		month int
	}

	buckets := make(map[key]*MonthBucket)
	skipped := 0

	for _, receipt := range receipts {
		if !receipt.HasValidIssueDate() {
			skipped++
			continue
		}

		k := key{year: receipt.IssuedAt.Year(), month: MonthIndex(receipt.IssuedAt.Month())}
		bucket, ok := buckets[k]
		if !ok {
			bucket = &MonthBucket{
				Year:       k.year,
				MonthIndex: k.month,
				MonthLabel: MonthLabel(k.month),
				Total:      decimal.Zero,
			}
			buckets[k] = bucket
		}

		bucket.Total = bucket.Total.Add(receipt.PaidValue)
		bucket.Receipts = append(bucket.Receipts, receipt)
	}

	months := make([]*MonthBucket, 0, len(buckets))
	for _, bucket := range buckets {
		months = append(months, bucket)
	}

	sort.Slice(months, func(i, j int) bool {
		if months[i].Year != months[j].Year {
			return months[i].Year > months[j].Year
		}
		return months[i].MonthIndex > months[j].MonthIndex
	})

	return months, skipped
}
