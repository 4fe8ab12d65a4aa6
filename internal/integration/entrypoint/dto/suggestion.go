// Package dto defines data transfer objects for API requests and responses.
package dto

import (
	"github.com/deolhonanota/backend/internal/application/usecase/suggestion"
)

// PrefixSuggestionResponse represents one AI-suggested prefix rule.
type PrefixSuggestionResponse struct {
	Prefix       string   `json:"prefixo"`
	CategoryCode string   `json:"codigoCategoria"`
	ProductNames []string `json:"produtos"`
	Reasoning    string   `json:"justificativa"`
}

// SuggestPrefixesResponse represents the response of a suggestion run.
type SuggestPrefixesResponse struct {
	Suggestions     []PrefixSuggestionResponse `json:"sugestoes"`
	ProductsSent    int                        `json:"produtosAnalisados"`
	ProductsIgnored int                        `json:"produtosIgnorados"`
}

// ToSuggestPrefixesResponse converts the suggestion output to its DTO.
func ToSuggestPrefixesResponse(output *suggestion.SuggestPrefixesOutput) SuggestPrefixesResponse {
	suggestions := make([]PrefixSuggestionResponse, len(output.Suggestions))
	for i, s := range output.Suggestions {
		suggestions[i] = PrefixSuggestionResponse{
			Prefix:       s.Prefix,
			CategoryCode: s.CategoryCode,
			ProductNames: s.ProductNames,
			Reasoning:    s.Reasoning,
		}
	}
	return SuggestPrefixesResponse{
		Suggestions:     suggestions,
		ProductsSent:    output.ProductsSent,
		ProductsIgnored: output.ProductsIgnored,
	}
}
