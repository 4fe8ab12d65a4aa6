// Package adapter defines interfaces that will be implemented in the integration layer.
package adapter

import (
	"context"

	"github.com/google/uuid"

	"github.com/deolhonanota/backend/internal/domain/entity"
)

// ReceiptRepository defines the interface for receipt persistence operations.
// Receipts are owned by the store and read-only to the aggregation engine;
// Create exists for the ingestion endpoint only.
type ReceiptRepository interface {
	// Create persists a newly ingested receipt with its items.
	Create(ctx context.Context, receipt *entity.Receipt) error

	// FindByID retrieves a receipt with its items by ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Receipt, error)

	// FindAll retrieves every receipt with items, issue date descending.
	FindAll(ctx context.Context) ([]*entity.Receipt, error)

	// FindByMonth retrieves receipts issued in the given month.
	// monthIndex is 0-based (0 = January).
	FindByMonth(ctx context.Context, year, monthIndex int) ([]*entity.Receipt, error)

	// ExistsByAccessKey checks whether a receipt with the access key was
	// already ingested.
	ExistsByAccessKey(ctx context.Context, accessKey string) (bool, error)
}
