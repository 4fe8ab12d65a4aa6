// Package controller implements HTTP handlers for the API endpoints.
package controller

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/deolhonanota/backend/internal/application/usecase/categoryprefix"
	domainerror "github.com/deolhonanota/backend/internal/domain/error"
	"github.com/deolhonanota/backend/internal/integration/entrypoint/dto"
)

// CategoryPrefixController handles prefix rule endpoints.
type CategoryPrefixController struct {
	listUseCase   *categoryprefix.ListPrefixesUseCase
	createUseCase *categoryprefix.CreatePrefixUseCase
	updateUseCase *categoryprefix.UpdatePrefixUseCase
	deleteUseCase *categoryprefix.DeletePrefixUseCase
	testUseCase   *categoryprefix.TestPrefixUseCase
}

// NewCategoryPrefixController creates a new prefix rule controller instance.
func NewCategoryPrefixController(
	listUseCase *categoryprefix.ListPrefixesUseCase,
	createUseCase *categoryprefix.CreatePrefixUseCase,
	updateUseCase *categoryprefix.UpdatePrefixUseCase,
	deleteUseCase *categoryprefix.DeletePrefixUseCase,
	testUseCase *categoryprefix.TestPrefixUseCase,
) *CategoryPrefixController {
	return &CategoryPrefixController{
		listUseCase:   listUseCase,
		createUseCase: createUseCase,
		updateUseCase: updateUseCase,
		deleteUseCase: deleteUseCase,
		testUseCase:   testUseCase,
	}
}

// List handles GET /categorias/prefixos/listar requests.
func (c *CategoryPrefixController) List(ctx *gin.Context) {
	output, err := c.listUseCase.Execute(ctx.Request.Context())
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{
			Error: "Failed to retrieve prefix rules",
		})
		return
	}

	ctx.JSON(http.StatusOK, dto.ToPrefixListResponse(output.Rules))
}

// Create handles POST /categorias/prefixos requests.
func (c *CategoryPrefixController) Create(ctx *gin.Context) {
	var req dto.CreatePrefixRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid request body",
			Code:  string(domainerror.ErrCodeBlankPrefix),
		})
		return
	}

	categoryID, err := uuid.Parse(req.CategoryID)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid category ID format",
		})
		return
	}

	output, err := c.createUseCase.Execute(ctx.Request.Context(), categoryprefix.CreatePrefixInput{
		Prefix:     req.Prefix,
		CategoryID: categoryID,
	})
	if err != nil {
		c.handlePrefixError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.ToPrefixResponse(output.Rule))
}

// Update handles PUT /categorias/prefixos/:id requests.
func (c *CategoryPrefixController) Update(ctx *gin.Context) {
	prefixID, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid prefix ID format",
		})
		return
	}

	var req dto.UpdatePrefixRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid request body",
			Code:  string(domainerror.ErrCodeBlankPrefix),
		})
		return
	}

	categoryID, err := uuid.Parse(req.CategoryID)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid category ID format",
		})
		return
	}

	output, err := c.updateUseCase.Execute(ctx.Request.Context(), categoryprefix.UpdatePrefixInput{
		PrefixID:   prefixID,
		Prefix:     req.Prefix,
		CategoryID: categoryID,
	})
	if err != nil {
		c.handlePrefixError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToPrefixResponse(output.Rule))
}

// Delete handles DELETE /categorias/prefixos/:id requests.
func (c *CategoryPrefixController) Delete(ctx *gin.Context) {
	prefixID, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid prefix ID format",
		})
		return
	}

	if _, err := c.deleteUseCase.Execute(ctx.Request.Context(), categoryprefix.DeletePrefixInput{
		PrefixID: prefixID,
	}); err != nil {
		c.handlePrefixError(ctx, err)
		return
	}

	ctx.Status(http.StatusNoContent)
}

// Test handles POST /categorias/prefixos/testar requests.
func (c *CategoryPrefixController) Test(ctx *gin.Context) {
	var req dto.TestPrefixRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid request body",
		})
		return
	}

	output, err := c.testUseCase.Execute(ctx.Request.Context(), categoryprefix.TestPrefixInput{
		ProductName: req.ProductName,
	})
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{
			Error: "Failed to test product name",
		})
		return
	}

	response := dto.TestPrefixResponse{
		ProductName: output.ProductName,
		Matched:     output.Matched,
	}
	if output.Category != nil {
		category := dto.ToCategoryResponse(output.Category)
		response.Category = &category
	}
	ctx.JSON(http.StatusOK, response)
}

// handlePrefixError maps prefix rule errors to HTTP responses.
func (c *CategoryPrefixController) handlePrefixError(ctx *gin.Context, err error) {
	var prefixErr *domainerror.CategoryPrefixError
	if errors.As(err, &prefixErr) {
		status := http.StatusBadRequest
		switch {
		case errors.Is(err, domainerror.ErrCategoryPrefixNotFound):
			status = http.StatusNotFound
		case errors.Is(err, domainerror.ErrCategoryNotFoundForPrefix):
			status = http.StatusUnprocessableEntity
		}
		ctx.JSON(status, dto.ErrorResponse{
			Error: prefixErr.Message,
			Code:  string(prefixErr.Code),
		})
		return
	}

	ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{
		Error: "Failed to process prefix rule",
	})
}
