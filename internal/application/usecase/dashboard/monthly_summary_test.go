package dashboard

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"

	"github.com/deolhonanota/backend/internal/application/usecase/classification"
	"github.com/deolhonanota/backend/internal/domain/entity"
)

func TestSummarizeMonth(t *testing.T) {
	produce := entity.NewCategory("HORTIFRUTI", "Hortifruti", "", "#16a34a", "Apple")
	dairy := entity.NewCategory("LATICINIOS_E_OVOS", "Laticínios", "", "#f59e0b", "Milk")
	categories := []*entity.Category{produce, dairy}

	breakdown := &GetWeeklyBreakdownOutput{
		Year:       2024,
		MonthIndex: 2,
		MonthLabel: "Março",
		Weeks: map[int]WeekTotals{
			1: {
				produce.ID.String(): decimal.RequireFromString("10.00"),
				dairy.ID.String():   decimal.RequireFromString("4.00"),
			},
			2: {
				produce.ID.String():            decimal.RequireFromString("30.00"),
				classification.UncategorizedKey: decimal.RequireFromString("6.00"),
			},
			3: {},
			4: {},
			5: {},
		},
	}

	summary := SummarizeMonth(breakdown, categories)

	t.Run("totals the whole month", func(t *testing.T) {
		if !summary.Total.Equal(decimal.RequireFromString("50.00")) {
			t.Errorf("total = %s, want 50.00", summary.Total)
		}
	})

	t.Run("mean weekly spend divides by the fixed divisor", func(t *testing.T) {
		if !summary.WeeklyMean.Equal(decimal.RequireFromString("12.50")) {
			t.Errorf("weekly mean = %s, want 12.50 (50 / 4)", summary.WeeklyMean)
		}
	})

	t.Run("ranks categories by total descending", func(t *testing.T) {
		if len(summary.Categories) != 3 {
			t.Fatalf("got %d categories, want 3", len(summary.Categories))
		}
		if summary.Categories[0].CategoryCode != "HORTIFRUTI" {
			t.Errorf("top category = %s, want HORTIFRUTI", summary.Categories[0].CategoryCode)
		}
		if !summary.Categories[0].Total.Equal(decimal.RequireFromString("40.00")) {
			t.Errorf("top total = %s, want 40.00", summary.Categories[0].Total)
		}
		for i := 1; i < len(summary.Categories); i++ {
			if summary.Categories[i].Total.GreaterThan(summary.Categories[i-1].Total) {
				t.Errorf("categories out of order at %d: %s > %s",
					i, summary.Categories[i].Total, summary.Categories[i-1].Total)
			}
		}
	})

	t.Run("counts active categories including the uncategorized bucket", func(t *testing.T) {
		if summary.ActiveCategories != 3 {
			t.Errorf("active = %d, want 3", summary.ActiveCategories)
		}
	})

	t.Run("fills presentation metadata from the registry", func(t *testing.T) {
		for _, c := range summary.Categories {
			if c.CategoryKey == classification.UncategorizedKey {
				if c.CategoryName != "Outros" || c.CategoryCode != entity.FallbackCategoryCode {
					t.Errorf("uncategorized presented as (%s, %s)", c.CategoryCode, c.CategoryName)
				}
				continue
			}
			if c.CategoryColor == "" || c.CategoryIcon == "" {
				t.Errorf("category %s missing presentation metadata", c.CategoryCode)
			}
		}
	})
}

func TestSummarizeMonth_EmptyMonth(t *testing.T) {
	breakdown := &GetWeeklyBreakdownOutput{
		Year:       2024,
		MonthIndex: 6,
		MonthLabel: "Julho",
		Weeks:      map[int]WeekTotals{1: {}, 2: {}, 3: {}, 4: {}, 5: {}},
	}

	summary := SummarizeMonth(breakdown, nil)
	if !summary.Total.IsZero() {
		t.Errorf("total = %s, want 0", summary.Total)
	}
	if !summary.WeeklyMean.IsZero() {
		t.Errorf("weekly mean = %s, want 0", summary.WeeklyMean)
	}
	if summary.ActiveCategories != 0 || len(summary.Categories) != 0 {
		t.Errorf("expected no active categories, got %d", summary.ActiveCategories)
	}
}

func TestGetMonthlySummaryUseCase_Execute(t *testing.T) {
	produce := entity.NewCategory("HORTIFRUTI", "Hortifruti", "", "#16a34a", "Apple")

	receiptRepo := &fakeReceiptRepo{receipts: []*entity.Receipt{
		newReceipt(date(2024, time.March, 1), "10.50", item("BANANA PRATA", "10.50")),
		newReceipt(date(2024, time.March, 10), "5.00", item("SABAO EM PO", "5.00")),
	}}
	prefixRepo := &fakePrefixRepo{rules: []*entity.CategoryPrefixWithCategory{
		prefixRule("BANANA", produce),
	}}
	categoryRepo := &fakeCategoryRepo{categories: []*entity.Category{produce}}

	breakdownUC := NewGetWeeklyBreakdownUseCase(receiptRepo, prefixRepo, noopCache{})
	uc := NewGetMonthlySummaryUseCase(breakdownUC, categoryRepo, noopCache{})

	output, err := uc.Execute(context.Background(), GetMonthlySummaryInput{Year: 2024, MonthIndex: 2})
	if err != nil {
		t.Fatalf("Execute: %v", err)
	}

	if !output.Total.Equal(decimal.RequireFromString("15.50")) {
		t.Errorf("total = %s, want 15.50", output.Total)
	}
	if output.ActiveCategories != 2 {
		t.Errorf("active = %d, want 2 (produce and uncategorized)", output.ActiveCategories)
	}
	if output.Categories[0].CategoryCode != "HORTIFRUTI" {
		t.Errorf("top category = %s, want HORTIFRUTI", output.Categories[0].CategoryCode)
	}
}
