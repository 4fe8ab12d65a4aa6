// Package adapter defines interfaces that will be implemented in the integration layer.
package adapter

import (
	"context"

	"github.com/google/uuid"

	"github.com/deolhonanota/backend/internal/domain/entity"
)

// CategoryRepository defines the interface for category persistence operations.
// The registry is read-mostly: it is populated by the seeder and consumed by
// the classifier and the reporting layer.
type CategoryRepository interface {
	// FindAll retrieves every category, ordered by code ascending.
	// The order is stable across calls absent mutation.
	FindAll(ctx context.Context) ([]*entity.Category, error)

	// FindByID retrieves a category by its ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Category, error)

	// FindByCode retrieves a category by its symbolic code.
	FindByCode(ctx context.Context, code string) (*entity.Category, error)

	// SeedDefaults inserts the default category catalog when the store is
	// empty. It is a no-op when any category already exists.
	SeedDefaults(ctx context.Context, categories []*entity.Category) error
}
