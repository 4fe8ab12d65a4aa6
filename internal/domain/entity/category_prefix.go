// Package entity defines the core business entities for the domain layer.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// CategoryPrefix represents an auto-classification rule in the De Olho na Nota
// system. A prefix is matched against the start of a product name (case
// insensitive) to assign the product to a category. Prefixes are stored
// uppercase; overlapping prefixes are allowed and resolved by longest match
// at classification time.
type CategoryPrefix struct {
	ID         uuid.UUID
	Prefix     string    // Uppercase leading substring of a product name
	CategoryID uuid.UUID // The category assigned when the prefix matches
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

// NewCategoryPrefix creates a new CategoryPrefix entity.
// The prefix is expected to be normalized (trimmed, uppercased) by the
// Application layer before calling this constructor.
func NewCategoryPrefix(prefix string, categoryID uuid.UUID) *CategoryPrefix {
	now := time.Now().UTC()

	return &CategoryPrefix{
		ID:         uuid.New(),
		Prefix:     prefix,
		CategoryID: categoryID,
		CreatedAt:  now,
		UpdatedAt:  now,
	}
}

// CategoryPrefixWithCategory represents a prefix rule with its associated
// category. Category is nil when the rule's reference dangles (the category
// was removed from the store); such rules classify as uncategorized.
type CategoryPrefixWithCategory struct {
	Prefix   *CategoryPrefix
	Category *Category
}
