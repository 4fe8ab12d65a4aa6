package dashboard

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"

	"github.com/deolhonanota/backend/internal/domain/entity"
)

func newReceipt(issuedAt time.Time, paid string, items ...entity.ReceiptItem) *entity.Receipt {
	value := decimal.RequireFromString(paid)
	return entity.NewReceipt("", "", "MERCADO TESTE", issuedAt, value, value, items)
}

func item(name, total string) entity.ReceiptItem {
	return entity.ReceiptItem{
		Name:       name,
		Quantity:   decimal.NewFromInt(1),
		Unit:       "UN",
		UnitValue:  decimal.RequireFromString(total),
		TotalValue: decimal.RequireFromString(total),
	}
}

func TestGroupReceiptsByMonth(t *testing.T) {
	t.Run("sums paid values per month", func(t *testing.T) {
		receipts := []*entity.Receipt{
			newReceipt(date(2024, time.March, 5), "50.00"),
			newReceipt(date(2024, time.March, 20), "30.00"),
		}

		months, skipped := GroupReceiptsByMonth(receipts)
		if skipped != 0 {
			t.Fatalf("skipped = %d, want 0", skipped)
		}
		if len(months) != 1 {
			t.Fatalf("got %d buckets, want 1", len(months))
		}

		bucket := months[0]
		if bucket.Year != 2024 || bucket.MonthIndex != 2 {
			t.Errorf("bucket is (%d, %d), want (2024, 2)", bucket.Year, bucket.MonthIndex)
		}
		if bucket.MonthLabel != "Março" {
			t.Errorf("label = %q, want Março", bucket.MonthLabel)
		}
		if !bucket.Total.Equal(decimal.RequireFromString("80.00")) {
			t.Errorf("total = %s, want 80.00", bucket.Total)
		}
		if len(bucket.Receipts) != 2 {
			t.Errorf("bucket holds %d receipts, want 2", len(bucket.Receipts))
		}
	})

	t.Run("orders buckets most recent first", func(t *testing.T) {
		receipts := []*entity.Receipt{
			newReceipt(date(2023, time.December, 10), "10.00"),
			newReceipt(date(2024, time.February, 10), "20.00"),
			newReceipt(date(2024, time.January, 10), "15.00"),
		}

		months, _ := GroupReceiptsByMonth(receipts)
		if len(months) != 3 {
			t.Fatalf("got %d buckets, want 3", len(months))
		}

		want := []struct{ year, month int }{
			{2024, 1},
			{2024, 0},
			{2023, 11},
		}
		for i, w := range want {
			if months[i].Year != w.year || months[i].MonthIndex != w.month {
				t.Errorf("months[%d] = (%d, %d), want (%d, %d)",
					i, months[i].Year, months[i].MonthIndex, w.year, w.month)
			}
		}
	})

	t.Run("every receipt lands in exactly one bucket or the skipped count", func(t *testing.T) {
		receipts := []*entity.Receipt{
			newReceipt(date(2024, time.March, 5), "50.00"),
			newReceipt(time.Time{}, "99.00"),
			newReceipt(date(2024, time.April, 1), "30.00"),
			newReceipt(time.Time{}, "1.00"),
		}

		months, skipped := GroupReceiptsByMonth(receipts)
		if skipped != 2 {
			t.Errorf("skipped = %d, want 2", skipped)
		}

		placed := 0
		for _, bucket := range months {
			placed += len(bucket.Receipts)
		}
		if placed+skipped != len(receipts) {
			t.Errorf("placed %d + skipped %d != %d receipts", placed, skipped, len(receipts))
		}
	})

	t.Run("no receipts yields no buckets", func(t *testing.T) {
		months, skipped := GroupReceiptsByMonth(nil)
		if len(months) != 0 || skipped != 0 {
			t.Errorf("got %d buckets, %d skipped, want none", len(months), skipped)
		}
	})
}

func TestGetMonthlySpendingUseCase_Execute(t *testing.T) {
	repo := &fakeReceiptRepo{receipts: []*entity.Receipt{
		newReceipt(date(2024, time.March, 5), "50.00"),
		newReceipt(time.Time{}, "10.00"),
	}}
	uc := NewGetMonthlySpendingUseCase(repo, noopCache{})

	output, err := uc.Execute(context.Background())
	if err != nil {
		t.Fatalf("Execute: %v", err)
	}
	if len(output.Months) != 1 {
		t.Fatalf("got %d buckets, want 1", len(output.Months))
	}
	if output.SkippedReceipts != 1 {
		t.Errorf("SkippedReceipts = %d, want 1", output.SkippedReceipts)
	}
	if !output.Months[0].Total.Equal(decimal.RequireFromString("50.00")) {
		t.Errorf("total = %s, want 50.00", output.Months[0].Total)
	}
}
