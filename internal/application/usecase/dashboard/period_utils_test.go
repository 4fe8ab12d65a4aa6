package dashboard

import (
	"testing"
	"time"
)

func date(year int, month time.Month, day int) time.Time {
	return time.Date(year, month, day, 12, 0, 0, 0, time.UTC)
}

func TestWeekOfMonth(t *testing.T) {
	tests := []struct {
		name string
		date time.Time
		want int
	}{
		{"first day of a Friday-starting month", date(2024, time.March, 1), 1},
		{"last day before the week rolls over", date(2024, time.March, 2), 1},
		{"first Sunday opens the second week", date(2024, time.March, 3), 2},
		{"mid-month", date(2024, time.March, 15), 3},
		{"Friday-starting 31-day month spills into week six", date(2024, time.March, 31), 6},
		{"Saturday-starting 31-day month spills into week six", date(2025, time.March, 31), 6},
		{"Sunday-starting month never exceeds week five", date(2024, time.September, 30), 5},
		{"February of a non-leap year", date(2025, time.February, 28), 5},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := WeekOfMonth(tt.date); got != tt.want {
				t.Errorf("WeekOfMonth(%s) = %d, want %d", tt.date.Format("2006-01-02"), got, tt.want)
			}
		})
	}
}

func TestMonthLabel(t *testing.T) {
	if got := MonthLabel(0); got != "Janeiro" {
		t.Errorf("MonthLabel(0) = %q, want Janeiro", got)
	}
	if got := MonthLabel(11); got != "Dezembro" {
		t.Errorf("MonthLabel(11) = %q, want Dezembro", got)
	}
	if got := MonthLabel(12); got != "" {
		t.Errorf("MonthLabel(12) = %q, want empty", got)
	}
	if got := MonthLabel(-1); got != "" {
		t.Errorf("MonthLabel(-1) = %q, want empty", got)
	}
}

func TestMonthIndex(t *testing.T) {
	if got := MonthIndex(time.January); got != 0 {
		t.Errorf("MonthIndex(January) = %d, want 0", got)
	}
	if got := MonthIndex(time.December); got != 11 {
		t.Errorf("MonthIndex(December) = %d, want 11", got)
	}
}

func TestInMonth(t *testing.T) {
	d := date(2024, time.March, 15)
	if !InMonth(d, 2024, 2) {
		t.Error("expected 2024-03-15 to fall in (2024, 2)")
	}
	if InMonth(d, 2024, 3) {
		t.Error("did not expect 2024-03-15 to fall in (2024, 3)")
	}
	if InMonth(d, 2023, 2) {
		t.Error("did not expect 2024-03-15 to fall in (2023, 2)")
	}
}
