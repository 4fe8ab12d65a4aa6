package dashboard

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/deolhonanota/backend/internal/application/usecase/classification"
	"github.com/deolhonanota/backend/internal/domain/entity"
	domainerror "github.com/deolhonanota/backend/internal/domain/error"
)

func prefixRule(prefix string, category *entity.Category) *entity.CategoryPrefixWithCategory {
	var categoryID uuid.UUID
	if category != nil {
		categoryID = category.ID
	} else {
		categoryID = uuid.New()
	}
	return &entity.CategoryPrefixWithCategory{
		Prefix:   entity.NewCategoryPrefix(prefix, categoryID),
		Category: category,
	}
}

func TestBreakdownByWeek(t *testing.T) {
	produce := entity.NewCategory("HORTIFRUTI", "Hortifruti", "", "#16a34a", "Apple")
	dairy := entity.NewCategory("LATICINIOS_E_OVOS", "Laticínios", "", "#f59e0b", "Milk")

	t.Run("buckets item spend by week and category", func(t *testing.T) {
		classifier := classification.NewClassifier([]*entity.CategoryPrefixWithCategory{
			prefixRule("BANANA", produce),
			prefixRule("LEITE", dairy),
		})

		// 2024-03-01 is a Friday, so the 1st lands in week 1.
		receipts := []*entity.Receipt{
			newReceipt(date(2024, time.March, 1), "10.50", item("BANANA PRATA", "10.50")),
			newReceipt(date(2024, time.March, 10), "7.25",
				item("LEITE INTEGRAL", "4.00"),
				item("SABAO EM PO", "3.25"),
			),
		}

		weeks, skipped := BreakdownByWeek(receipts, classifier, 2024, 2)
		if skipped != 0 {
			t.Fatalf("skipped = %d, want 0", skipped)
		}

		if got := weeks[1][produce.ID.String()]; !got.Equal(decimal.RequireFromString("10.50")) {
			t.Errorf("week 1 produce = %s, want 10.50", got)
		}
		if got := weeks[3][dairy.ID.String()]; !got.Equal(decimal.RequireFromString("4.00")) {
			t.Errorf("week 3 dairy = %s, want 4.00", got)
		}
		if got := weeks[3][classification.UncategorizedKey]; !got.Equal(decimal.RequireFromString("3.25")) {
			t.Errorf("week 3 uncategorized = %s, want 3.25", got)
		}
	})

	t.Run("preseeds weeks one through five even when empty", func(t *testing.T) {
		weeks, _ := BreakdownByWeek(nil, classification.NewClassifier(nil), 2024, 2)

		if len(weeks) != MinWeeksPerMonth {
			t.Fatalf("got %d week buckets, want %d", len(weeks), MinWeeksPerMonth)
		}
		for week := 1; week <= MinWeeksPerMonth; week++ {
			totals, ok := weeks[week]
			if !ok {
				t.Errorf("week %d bucket missing", week)
				continue
			}
			if len(totals) != 0 {
				t.Errorf("week %d has %d entries, want empty", week, len(totals))
			}
		}
	})

	t.Run("spills into a sixth week without clamping", func(t *testing.T) {
		classifier := classification.NewClassifier([]*entity.CategoryPrefixWithCategory{
			prefixRule("BANANA", produce),
		})
		receipts := []*entity.Receipt{
			newReceipt(date(2025, time.March, 31), "5.00", item("BANANA NANICA", "5.00")),
		}

		weeks, _ := BreakdownByWeek(receipts, classifier, 2025, 2)
		if got := weeks[6][produce.ID.String()]; !got.Equal(decimal.RequireFromString("5.00")) {
			t.Errorf("week 6 produce = %s, want 5.00", got)
		}
	})

	t.Run("skips receipts without a valid issue date", func(t *testing.T) {
		receipts := []*entity.Receipt{
			newReceipt(time.Time{}, "9.99", item("BANANA", "9.99")),
		}

		weeks, skipped := BreakdownByWeek(receipts, classification.NewClassifier(nil), 2024, 2)
		if skipped != 1 {
			t.Errorf("skipped = %d, want 1", skipped)
		}
		for week, totals := range weeks {
			if len(totals) != 0 {
				t.Errorf("week %d has entries from a dateless receipt", week)
			}
		}
	})

	t.Run("conserves item value across buckets", func(t *testing.T) {
		classifier := classification.NewClassifier([]*entity.CategoryPrefixWithCategory{
			prefixRule("BANANA", produce),
			prefixRule("LEITE", dairy),
		})
		receipts := []*entity.Receipt{
			newReceipt(date(2024, time.March, 2), "15.00",
				item("BANANA", "5.00"),
				item("LEITE", "4.00"),
				item("PICANHA", "6.00"),
			),
			newReceipt(date(2024, time.March, 25), "8.00", item("LEITE COND", "8.00")),
		}

		weeks, _ := BreakdownByWeek(receipts, classifier, 2024, 2)

		sum := decimal.Zero
		for _, totals := range weeks {
			for _, value := range totals {
				sum = sum.Add(value)
			}
		}
		if !sum.Equal(decimal.RequireFromString("23.00")) {
			t.Errorf("bucket sum = %s, want 23.00 (sum of all item totals)", sum)
		}
	})
}

func TestGetWeeklyBreakdownUseCase_Execute(t *testing.T) {
	produce := entity.NewCategory("HORTIFRUTI", "Hortifruti", "", "#16a34a", "Apple")

	t.Run("rejects an out-of-range month index", func(t *testing.T) {
		uc := NewGetWeeklyBreakdownUseCase(&fakeReceiptRepo{}, &fakePrefixRepo{}, noopCache{})

		_, err := uc.Execute(context.Background(), GetWeeklyBreakdownInput{Year: 2024, MonthIndex: 12})
		if !errors.Is(err, domainerror.ErrInvalidMonthIndex) {
			t.Errorf("err = %v, want ErrInvalidMonthIndex", err)
		}
	})

	t.Run("classifies a month of receipts", func(t *testing.T) {
		receiptRepo := &fakeReceiptRepo{receipts: []*entity.Receipt{
			newReceipt(date(2024, time.March, 1), "10.50", item("BANANA PRATA", "10.50")),
		}}
		prefixRepo := &fakePrefixRepo{rules: []*entity.CategoryPrefixWithCategory{
			prefixRule("BANANA", produce),
		}}
		uc := NewGetWeeklyBreakdownUseCase(receiptRepo, prefixRepo, noopCache{})

		output, err := uc.Execute(context.Background(), GetWeeklyBreakdownInput{Year: 2024, MonthIndex: 2})
		if err != nil {
			t.Fatalf("Execute: %v", err)
		}
		if output.MonthLabel != "Março" {
			t.Errorf("label = %q, want Março", output.MonthLabel)
		}
		if got := output.Weeks[1][produce.ID.String()]; !got.Equal(decimal.RequireFromString("10.50")) {
			t.Errorf("week 1 produce = %s, want 10.50", got)
		}
	})
}
