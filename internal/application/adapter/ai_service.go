// Package adapter defines interfaces that will be implemented in the integration layer.
package adapter

import (
	"context"
)

// PrefixSuggestionRequest represents a request to suggest prefix rules for
// product names that currently classify as uncategorized.
type PrefixSuggestionRequest struct {
	ProductNames []string
	Categories   []*CategoryForAI
}

// CategoryForAI represents category data for AI processing.
type CategoryForAI struct {
	Code        string
	Name        string
	Description string
}

// PrefixSuggestion represents a single suggested prefix rule.
type PrefixSuggestion struct {
	Prefix       string   // Uppercase leading substring to register
	CategoryCode string   // Code of an existing category
	ProductNames []string // Product names the prefix would capture
	Reasoning    string
}

// PrefixSuggestionService defines the interface for AI prefix suggestions.
type PrefixSuggestionService interface {
	// SuggestPrefixes analyzes uncategorized product names and proposes
	// prefix rules mapping them to existing categories.
	SuggestPrefixes(ctx context.Context, request *PrefixSuggestionRequest) ([]*PrefixSuggestion, error)

	// IsAvailable checks if the AI service is available and properly configured.
	IsAvailable() bool
}
