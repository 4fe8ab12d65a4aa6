// Package dto defines data transfer objects for API requests and responses.
// Field names follow the pt-BR wire contract of the original frontend.
package dto

import (
	"github.com/deolhonanota/backend/internal/domain/entity"
)

// CategoryResponse represents a single category in API responses.
type CategoryResponse struct {
	ID          string `json:"id"`
	Code        string `json:"codigo"`
	Name        string `json:"nome"`
	Description string `json:"descricao"`
	Icon        string `json:"icone"`
	Color       string `json:"cor"`
}

// ToCategoryResponse converts a domain Category entity to a CategoryResponse DTO.
func ToCategoryResponse(category *entity.Category) CategoryResponse {
	return CategoryResponse{
		ID:          category.ID.String(),
		Code:        category.Code,
		Name:        category.Name,
		Description: category.Description,
		Icon:        category.Icon,
		Color:       category.Color,
	}
}

// ToCategoryListResponse converts domain categories to response DTOs.
func ToCategoryListResponse(categories []*entity.Category) []CategoryResponse {
	responses := make([]CategoryResponse, len(categories))
	for i, category := range categories {
		responses[i] = ToCategoryResponse(category)
	}
	return responses
}
