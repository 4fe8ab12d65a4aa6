// Package receipt contains receipt ingestion and listing use cases.
package receipt

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/deolhonanota/backend/internal/application/adapter"
	"github.com/deolhonanota/backend/internal/domain/entity"
	domainerror "github.com/deolhonanota/backend/internal/domain/error"
)

// ListReceiptsOutput represents the output of the receipt listing.
type ListReceiptsOutput struct {
	Receipts []*entity.Receipt
}

// ListReceiptsUseCase handles receipt listing logic.
type ListReceiptsUseCase struct {
	receiptRepo adapter.ReceiptRepository
}

// NewListReceiptsUseCase creates a new ListReceiptsUseCase instance.
func NewListReceiptsUseCase(receiptRepo adapter.ReceiptRepository) *ListReceiptsUseCase {
	return &ListReceiptsUseCase{
		receiptRepo: receiptRepo,
	}
}

// Execute retrieves all receipts with their items, newest first.
func (uc *ListReceiptsUseCase) Execute(ctx context.Context) (*ListReceiptsOutput, error) {
	receipts, err := uc.receiptRepo.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list receipts: %w", err)
	}

	return &ListReceiptsOutput{
		Receipts: receipts,
	}, nil
}

// GetReceiptInput represents the input for fetching a single receipt.
type GetReceiptInput struct {
	ReceiptID uuid.UUID
}

// GetReceiptOutput represents the output of a single receipt fetch.
type GetReceiptOutput struct {
	Receipt *entity.Receipt
}

// GetReceiptUseCase fetches one receipt with its items.
type GetReceiptUseCase struct {
	receiptRepo adapter.ReceiptRepository
}

// NewGetReceiptUseCase creates a new GetReceiptUseCase instance.
func NewGetReceiptUseCase(receiptRepo adapter.ReceiptRepository) *GetReceiptUseCase {
	return &GetReceiptUseCase{
		receiptRepo: receiptRepo,
	}
}

// Execute retrieves the receipt by ID.
func (uc *GetReceiptUseCase) Execute(ctx context.Context, input GetReceiptInput) (*GetReceiptOutput, error) {
	receipt, err := uc.receiptRepo.FindByID(ctx, input.ReceiptID)
	if err != nil {
		if errors.Is(err, domainerror.ErrReceiptNotFound) {
			return nil, domainerror.NewReceiptError(
				domainerror.ErrCodeReceiptNotFound,
				"receipt not found",
				domainerror.ErrReceiptNotFound,
			)
		}
		return nil, fmt.Errorf("failed to find receipt: %w", err)
	}

	return &GetReceiptOutput{
		Receipt: receipt,
	}, nil
}
