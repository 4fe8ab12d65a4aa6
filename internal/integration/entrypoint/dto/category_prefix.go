// Package dto defines data transfer objects for API requests and responses.
package dto

import (
	"time"

	"github.com/deolhonanota/backend/internal/domain/entity"
)

// CreatePrefixRequest represents the request body for prefix rule creation.
type CreatePrefixRequest struct {
	Prefix     string `json:"prefixo" binding:"required,max=100"`
	CategoryID string `json:"categoriaId" binding:"required,uuid"`
}

// UpdatePrefixRequest represents the request body for prefix rule updates.
type UpdatePrefixRequest struct {
	Prefix     string `json:"prefixo" binding:"required,max=100"`
	CategoryID string `json:"categoriaId" binding:"required,uuid"`
}

// TestPrefixRequest represents the request body for a classification preview.
type TestPrefixRequest struct {
	ProductName string `json:"produto" binding:"required,max=255"`
}

// PrefixResponse represents a single prefix rule in API responses. Categoria
// is null when the rule's category was removed.
type PrefixResponse struct {
	ID        string            `json:"id"`
	Prefix    string            `json:"prefixo"`
	Category  *CategoryResponse `json:"categoria"`
	CreatedAt time.Time         `json:"criadoEm"`
	UpdatedAt time.Time         `json:"atualizadoEm"`
}

// TestPrefixResponse represents the response of a classification preview.
type TestPrefixResponse struct {
	ProductName string            `json:"produto"`
	Matched     bool              `json:"classificado"`
	Category    *CategoryResponse `json:"categoria"`
}

// ToPrefixResponse converts a domain CategoryPrefixWithCategory to a PrefixResponse DTO.
func ToPrefixResponse(rule *entity.CategoryPrefixWithCategory) PrefixResponse {
	response := PrefixResponse{
		ID:        rule.Prefix.ID.String(),
		Prefix:    rule.Prefix.Prefix,
		CreatedAt: rule.Prefix.CreatedAt,
		UpdatedAt: rule.Prefix.UpdatedAt,
	}
	if rule.Category != nil {
		category := ToCategoryResponse(rule.Category)
		response.Category = &category
	}
	return response
}

// ToPrefixListResponse converts domain prefix rules to response DTOs.
func ToPrefixListResponse(rules []*entity.CategoryPrefixWithCategory) []PrefixResponse {
	responses := make([]PrefixResponse, len(rules))
	for i, rule := range rules {
		responses[i] = ToPrefixResponse(rule)
	}
	return responses
}
