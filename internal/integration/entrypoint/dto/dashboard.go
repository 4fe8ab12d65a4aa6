// Package dto defines data transfer objects for API requests and responses.
package dto

import (
	"github.com/shopspring/decimal"

	"github.com/deolhonanota/backend/internal/application/usecase/dashboard"
)

// MonthBucketResponse represents one month of spending in API responses.
type MonthBucketResponse struct {
	Year       int               `json:"ano"`
	MonthIndex int               `json:"mes"`
	MonthLabel string            `json:"nomeMes"`
	Total      decimal.Decimal   `json:"total"`
	Receipts   []ReceiptResponse `json:"notas"`
}

// MonthlySpendingResponse represents the monthly spending report.
type MonthlySpendingResponse struct {
	Months          []MonthBucketResponse `json:"meses"`
	SkippedReceipts int                   `json:"notasSemData"`
}

// WeeklyBreakdownResponse represents the weekly breakdown report. Week keys
// are 1-based; category keys are category IDs or "uncategorized".
type WeeklyBreakdownResponse struct {
	Year            int                                   `json:"ano"`
	MonthIndex      int                                   `json:"mes"`
	MonthLabel      string                                `json:"nomeMes"`
	Weeks           map[int]map[string]decimal.Decimal    `json:"semanas"`
	SkippedReceipts int                                   `json:"notasSemData"`
}

// CategoryTotalResponse represents one category's spend over a month.
type CategoryTotalResponse struct {
	CategoryKey   string          `json:"chave"`
	CategoryCode  string          `json:"codigo"`
	CategoryName  string          `json:"nome"`
	CategoryColor string          `json:"cor"`
	CategoryIcon  string          `json:"icone"`
	Total         decimal.Decimal `json:"total"`
}

// MonthlySummaryResponse represents the monthly summary report.
type MonthlySummaryResponse struct {
	Year             int                     `json:"ano"`
	MonthIndex       int                     `json:"mes"`
	MonthLabel       string                  `json:"nomeMes"`
	Total            decimal.Decimal         `json:"total"`
	WeeklyMean       decimal.Decimal         `json:"mediaSemanal"`
	ActiveCategories int                     `json:"categoriasAtivas"`
	Categories       []CategoryTotalResponse `json:"categorias"`
}

// ToMonthlySpendingResponse converts the monthly spending output to its DTO.
func ToMonthlySpendingResponse(output *dashboard.GetMonthlySpendingOutput) MonthlySpendingResponse {
	months := make([]MonthBucketResponse, len(output.Months))
	for i, bucket := range output.Months {
		months[i] = MonthBucketResponse{
			Year:       bucket.Year,
			MonthIndex: bucket.MonthIndex,
			MonthLabel: bucket.MonthLabel,
			Total:      bucket.Total,
			Receipts:   ToReceiptListResponse(bucket.Receipts),
		}
	}
	return MonthlySpendingResponse{
		Months:          months,
		SkippedReceipts: output.SkippedReceipts,
	}
}

// ToWeeklyBreakdownResponse converts the weekly breakdown output to its DTO.
func ToWeeklyBreakdownResponse(output *dashboard.GetWeeklyBreakdownOutput) WeeklyBreakdownResponse {
	weeks := make(map[int]map[string]decimal.Decimal, len(output.Weeks))
	for week, totals := range output.Weeks {
		weeks[week] = totals
	}
	return WeeklyBreakdownResponse{
		Year:            output.Year,
		MonthIndex:      output.MonthIndex,
		MonthLabel:      output.MonthLabel,
		Weeks:           weeks,
		SkippedReceipts: output.SkippedReceipts,
	}
}

// ToMonthlySummaryResponse converts the monthly summary output to its DTO.
func ToMonthlySummaryResponse(output *dashboard.GetMonthlySummaryOutput) MonthlySummaryResponse {
	categories := make([]CategoryTotalResponse, len(output.Categories))
	for i, c := range output.Categories {
		categories[i] = CategoryTotalResponse{
			CategoryKey:   c.CategoryKey,
			CategoryCode:  c.CategoryCode,
			CategoryName:  c.CategoryName,
			CategoryColor: c.CategoryColor,
			CategoryIcon:  c.CategoryIcon,
			Total:         c.Total,
		}
	}
	return MonthlySummaryResponse{
		Year:             output.Year,
		MonthIndex:       output.MonthIndex,
		MonthLabel:       output.MonthLabel,
		Total:            output.Total,
		WeeklyMean:       output.WeeklyMean,
		ActiveCategories: output.ActiveCategories,
		Categories:       categories,
	}
}
