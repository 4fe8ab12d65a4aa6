// Package controller implements HTTP handlers for the API endpoints.
package controller

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/deolhonanota/backend/internal/application/usecase/suggestion"
	domainerror "github.com/deolhonanota/backend/internal/domain/error"
	"github.com/deolhonanota/backend/internal/integration/entrypoint/dto"
)

// SuggestionController handles AI prefix suggestion endpoints.
type SuggestionController struct {
	suggestUseCase *suggestion.SuggestPrefixesUseCase
}

// NewSuggestionController creates a new suggestion controller instance.
func NewSuggestionController(suggestUseCase *suggestion.SuggestPrefixesUseCase) *SuggestionController {
	return &SuggestionController{
		suggestUseCase: suggestUseCase,
	}
}

// Suggest handles POST /sugestoes/prefixos requests.
func (c *SuggestionController) Suggest(ctx *gin.Context) {
	output, err := c.suggestUseCase.Execute(ctx.Request.Context())
	if err != nil {
		c.handleSuggestionError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToSuggestPrefixesResponse(output))
}

// handleSuggestionError maps AI suggestion errors to HTTP responses.
func (c *SuggestionController) handleSuggestionError(ctx *gin.Context, err error) {
	var aiErr *domainerror.AISuggestionError
	if errors.As(err, &aiErr) {
		status := http.StatusBadGateway
		switch {
		case errors.Is(err, domainerror.ErrAIServiceUnavailable):
			status = http.StatusServiceUnavailable
		case errors.Is(err, domainerror.ErrAINoUncategorized):
			status = http.StatusUnprocessableEntity
		case errors.Is(err, domainerror.ErrAIRateLimited):
			status = http.StatusTooManyRequests
		}
		ctx.JSON(status, dto.ErrorResponse{
			Error: aiErr.Message,
			Code:  string(aiErr.Code),
		})
		return
	}

	ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{
		Error: "Failed to generate suggestions",
	})
}
