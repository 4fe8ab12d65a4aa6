// Package controller implements HTTP handlers for the API endpoints.
package controller

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/deolhonanota/backend/internal/application/usecase/receipt"
	domainerror "github.com/deolhonanota/backend/internal/domain/error"
	"github.com/deolhonanota/backend/internal/integration/entrypoint/dto"
)

// ReceiptController handles fiscal receipt endpoints.
type ReceiptController struct {
	createUseCase *receipt.CreateReceiptUseCase
	listUseCase   *receipt.ListReceiptsUseCase
	getUseCase    *receipt.GetReceiptUseCase
}

// NewReceiptController creates a new receipt controller instance.
func NewReceiptController(
	createUseCase *receipt.CreateReceiptUseCase,
	listUseCase *receipt.ListReceiptsUseCase,
	getUseCase *receipt.GetReceiptUseCase,
) *ReceiptController {
	return &ReceiptController{
		createUseCase: createUseCase,
		listUseCase:   listUseCase,
		getUseCase:    getUseCase,
	}
}

// Create handles POST /notas-fiscais requests.
func (c *ReceiptController) Create(ctx *gin.Context) {
	var req dto.CreateReceiptRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid request body",
			Code:  string(domainerror.ErrCodeReceiptMissingFields),
		})
		return
	}

	output, err := c.createUseCase.Execute(ctx.Request.Context(), dto.ToReceiptInput(&req))
	if err != nil {
		c.handleReceiptError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.ToReceiptResponse(output.Receipt))
}

// List handles GET /notas-fiscais requests.
func (c *ReceiptController) List(ctx *gin.Context) {
	output, err := c.listUseCase.Execute(ctx.Request.Context())
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{
			Error: "Failed to retrieve receipts",
		})
		return
	}

	ctx.JSON(http.StatusOK, dto.ToReceiptListResponse(output.Receipts))
}

// Get handles GET /notas-fiscais/:id requests.
func (c *ReceiptController) Get(ctx *gin.Context) {
	receiptID, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid receipt ID format",
		})
		return
	}

	output, err := c.getUseCase.Execute(ctx.Request.Context(), receipt.GetReceiptInput{
		ReceiptID: receiptID,
	})
	if err != nil {
		c.handleReceiptError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToReceiptResponse(output.Receipt))
}

// handleReceiptError maps receipt errors to HTTP responses.
func (c *ReceiptController) handleReceiptError(ctx *gin.Context, err error) {
	var receiptErr *domainerror.ReceiptError
	if errors.As(err, &receiptErr) {
		status := http.StatusBadRequest
		switch {
		case errors.Is(err, domainerror.ErrReceiptNotFound):
			status = http.StatusNotFound
		case errors.Is(err, domainerror.ErrReceiptAlreadyExists):
			status = http.StatusConflict
		}
		ctx.JSON(status, dto.ErrorResponse{
			Error: receiptErr.Message,
			Code:  string(receiptErr.Code),
		})
		return
	}

	ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{
		Error: "Failed to process receipt",
	})
}
