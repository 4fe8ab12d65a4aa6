// Package adapter defines interfaces that will be implemented in the integration layer.
package adapter

import (
	"context"

	"github.com/google/uuid"

	"github.com/deolhonanota/backend/internal/domain/entity"
)

// CategoryPrefixRepository defines the interface for prefix rule persistence
// operations. Prefixes are the single mutable collection owned by the engine;
// callers serialize writes (one mutation completes before the next begins).
type CategoryPrefixRepository interface {
	// Create creates a new prefix rule in the database.
	Create(ctx context.Context, prefix *entity.CategoryPrefix) error

	// FindByID retrieves a prefix rule by its ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.CategoryPrefix, error)

	// FindAll retrieves all prefix rules ordered by creation time ascending.
	// Creation order is the classifier's tie-break for equal-length prefixes.
	FindAll(ctx context.Context) ([]*entity.CategoryPrefix, error)

	// FindAllWithCategories retrieves all prefix rules with their categories,
	// in the same order as FindAll. Rules whose category reference dangles
	// carry a nil category.
	FindAllWithCategories(ctx context.Context) ([]*entity.CategoryPrefixWithCategory, error)

	// Update updates an existing prefix rule in the database.
	Update(ctx context.Context, prefix *entity.CategoryPrefix) error

	// Delete removes a prefix rule from the database.
	Delete(ctx context.Context, id uuid.UUID) error
}
