// Package dashboard contains spend-report use cases.
package dashboard

import "time"

// MinWeeksPerMonth is the number of week buckets every month report carries,
// even when some are empty. Months can spill into a sixth bucket (a 31-day
// month starting near the end of the week); that bucket is added, never
// clamped away.
const MinWeeksPerMonth = 5

// WeeklyMeanDivisor is the fixed divisor for the mean weekly spend. The
// original reports divide the month total by 4 regardless of how many week
// buckets the month actually has; changing it would change reported numbers.
const WeeklyMeanDivisor = 4

// monthLabels holds the pt-BR display names for the 12 calendar months,
// indexed by 0-based month index.
var monthLabels = [12]string{
	"Janeiro",
	"Fevereiro",
	"Março",
	"Abril",
	"Maio",
	"Junho",
	"Julho",
	"Agosto",
	"Setembro",
	"Outubro",
	"Novembro",
	"Dezembro",
}

// MonthLabel returns the pt-BR display name for a 0-based month index.
// Out-of-range indexes return an empty string.
func MonthLabel(monthIndex int) string {
	if monthIndex < 0 || monthIndex > 11 {
		return ""
	}
	return monthLabels[monthIndex]
}

// MonthIndex converts a time.Month to the 0-based index used throughout the
// reporting layer (0 = January).
func MonthIndex(m time.Month) int {
	return int(m) - 1
}

// WeekOfMonth returns the 1-based week-of-month bucket for a date:
// ceil((dayOfMonth + firstWeekday) / 7), where firstWeekday is the 0-based
// weekday (0 = Sunday) of the first day of that month. The natural range is
// 1..5, reaching 6 for long months that start late in the week.
func WeekOfMonth(t time.Time) int {
	firstDay := time.Date(t.Year(), t.Month(), 1, 0, 0, 0, 0, t.Location())
	firstWeekday := int(firstDay.Weekday())
	dayOfMonth := t.Day()
	return (dayOfMonth + firstWeekday + 6) / 7
}

// InMonth reports whether the date falls in the given (year, 0-based month).
func InMonth(t time.Time, year, monthIndex int) bool {
	return t.Year() == year && MonthIndex(t.Month()) == monthIndex
}
