// Package categoryprefix contains prefix rule use cases.
package categoryprefix

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/deolhonanota/backend/internal/application/adapter"
	domainerror "github.com/deolhonanota/backend/internal/domain/error"
)

// DeletePrefixInput represents the input for prefix rule deletion.
type DeletePrefixInput struct {
	PrefixID uuid.UUID
}

// DeletePrefixOutput represents the output of prefix rule deletion.
type DeletePrefixOutput struct {
	Success bool
}

// DeletePrefixUseCase handles prefix rule deletion logic. Products that only
// the deleted rule matched fall back to a shorter overlapping rule on the
// next classification, or to uncategorized.
type DeletePrefixUseCase struct {
	prefixRepo adapter.CategoryPrefixRepository
	cache      adapter.ReportCache
}

// NewDeletePrefixUseCase creates a new DeletePrefixUseCase instance.
func NewDeletePrefixUseCase(prefixRepo adapter.CategoryPrefixRepository, cache adapter.ReportCache) *DeletePrefixUseCase {
	return &DeletePrefixUseCase{
		prefixRepo: prefixRepo,
		cache:      cache,
	}
}

// Execute performs the prefix rule deletion.
func (uc *DeletePrefixUseCase) Execute(ctx context.Context, input DeletePrefixInput) (*DeletePrefixOutput, error) {
	if _, err := uc.prefixRepo.FindByID(ctx, input.PrefixID); err != nil {
		if errors.Is(err, domainerror.ErrCategoryPrefixNotFound) {
			return nil, domainerror.NewCategoryPrefixError(
				domainerror.ErrCodeCategoryPrefixNotFound,
				"prefix rule not found",
				domainerror.ErrCategoryPrefixNotFound,
			)
		}
		return nil, fmt.Errorf("failed to find prefix rule: %w", err)
	}

	if err := uc.prefixRepo.Delete(ctx, input.PrefixID); err != nil {
		return nil, fmt.Errorf("failed to delete prefix rule: %w", err)
	}

	invalidateReports(ctx, uc.cache)

	return &DeletePrefixOutput{
		Success: true,
	}, nil
}

// invalidateReports drops every cached report after a prefix mutation.
// Reports derive from the prefix index, so stale entries would serve
// pre-mutation classifications. A failed invalidation is logged and absorbed;
// the TTL bounds the staleness window.
func invalidateReports(ctx context.Context, cache adapter.ReportCache) {
	if err := cache.InvalidateAll(ctx); err != nil {
		slog.Warn("Failed to invalidate report cache after prefix mutation", "error", err)
	}
}
