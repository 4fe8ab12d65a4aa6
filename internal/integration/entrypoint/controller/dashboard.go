// Package controller implements HTTP handlers for the API endpoints.
package controller

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/deolhonanota/backend/internal/application/usecase/dashboard"
	domainerror "github.com/deolhonanota/backend/internal/domain/error"
	"github.com/deolhonanota/backend/internal/integration/entrypoint/dto"
)

// DashboardController handles spend report endpoints.
type DashboardController struct {
	monthlyUseCase   *dashboard.GetMonthlySpendingUseCase
	breakdownUseCase *dashboard.GetWeeklyBreakdownUseCase
	summaryUseCase   *dashboard.GetMonthlySummaryUseCase
}

// NewDashboardController creates a new dashboard controller instance.
func NewDashboardController(
	monthlyUseCase *dashboard.GetMonthlySpendingUseCase,
	breakdownUseCase *dashboard.GetWeeklyBreakdownUseCase,
	summaryUseCase *dashboard.GetMonthlySummaryUseCase,
) *DashboardController {
	return &DashboardController{
		monthlyUseCase:   monthlyUseCase,
		breakdownUseCase: breakdownUseCase,
		summaryUseCase:   summaryUseCase,
	}
}

// MonthlySpending handles GET /relatorios/mensal requests.
func (c *DashboardController) MonthlySpending(ctx *gin.Context) {
	output, err := c.monthlyUseCase.Execute(ctx.Request.Context())
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{
			Error: "Failed to build monthly report",
		})
		return
	}

	ctx.JSON(http.StatusOK, dto.ToMonthlySpendingResponse(output))
}

// WeeklyBreakdown handles GET /relatorios/:ano/:mes/semanas requests.
// :mes is the 0-based month index the frontend charts use.
func (c *DashboardController) WeeklyBreakdown(ctx *gin.Context) {
	year, monthIndex, ok := c.parsePeriod(ctx)
	if !ok {
		return
	}

	output, err := c.breakdownUseCase.Execute(ctx.Request.Context(), dashboard.GetWeeklyBreakdownInput{
		Year:       year,
		MonthIndex: monthIndex,
	})
	if err != nil {
		c.handleReportError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToWeeklyBreakdownResponse(output))
}

// MonthlySummary handles GET /relatorios/:ano/:mes/resumo requests.
func (c *DashboardController) MonthlySummary(ctx *gin.Context) {
	year, monthIndex, ok := c.parsePeriod(ctx)
	if !ok {
		return
	}

	output, err := c.summaryUseCase.Execute(ctx.Request.Context(), dashboard.GetMonthlySummaryInput{
		Year:       year,
		MonthIndex: monthIndex,
	})
	if err != nil {
		c.handleReportError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToMonthlySummaryResponse(output))
}

// parsePeriod extracts the (ano, mes) path parameters.
func (c *DashboardController) parsePeriod(ctx *gin.Context) (int, int, bool) {
	year, err := strconv.Atoi(ctx.Param("ano"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid year",
			Code:  string(domainerror.ErrCodeInvalidYear),
		})
		return 0, 0, false
	}

	monthIndex, err := strconv.Atoi(ctx.Param("mes"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid month index",
			Code:  string(domainerror.ErrCodeInvalidMonthIndex),
		})
		return 0, 0, false
	}

	return year, monthIndex, true
}

// handleReportError maps report errors to HTTP responses.
func (c *DashboardController) handleReportError(ctx *gin.Context, err error) {
	var reportErr *domainerror.ReportError
	if errors.As(err, &reportErr) {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: reportErr.Message,
			Code:  string(reportErr.Code),
		})
		return
	}

	ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{
		Error: "Failed to build report",
	})
}
