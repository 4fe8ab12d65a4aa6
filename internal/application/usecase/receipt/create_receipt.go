// Package receipt contains receipt ingestion and listing use cases.
package receipt

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/shopspring/decimal"

	"github.com/deolhonanota/backend/internal/application/adapter"
	"github.com/deolhonanota/backend/internal/domain/entity"
	domainerror "github.com/deolhonanota/backend/internal/domain/error"
)

// CreateReceiptItemInput represents one product line of an ingested receipt.
type CreateReceiptItemInput struct {
	Name       string
	Quantity   decimal.Decimal
	Unit       string
	UnitValue  decimal.Decimal
	TotalValue decimal.Decimal
}

// CreateReceiptInput represents a parsed fiscal receipt ready for ingestion.
// IssuedAt carries the zero value when the source date could not be parsed;
// such receipts are stored but excluded from reports.
type CreateReceiptInput struct {
	AccessKey string
	Number    string
	Merchant  string
	IssuedAt  time.Time
	TotalVal  decimal.Decimal
	PaidValue decimal.Decimal
	Items     []CreateReceiptItemInput
}

// CreateReceiptOutput represents the output of receipt ingestion.
type CreateReceiptOutput struct {
	Receipt *entity.Receipt
}

// CreateReceiptUseCase handles receipt ingestion logic.
type CreateReceiptUseCase struct {
	receiptRepo adapter.ReceiptRepository
	cache       adapter.ReportCache
}

// NewCreateReceiptUseCase creates a new CreateReceiptUseCase instance.
func NewCreateReceiptUseCase(receiptRepo adapter.ReceiptRepository, cache adapter.ReportCache) *CreateReceiptUseCase {
	return &CreateReceiptUseCase{
		receiptRepo: receiptRepo,
		cache:       cache,
	}
}

// Execute performs the receipt ingestion.
func (uc *CreateReceiptUseCase) Execute(ctx context.Context, input CreateReceiptInput) (*CreateReceiptOutput, error) {
	if input.Merchant == "" || len(input.Items) == 0 {
		return nil, domainerror.NewReceiptError(
			domainerror.ErrCodeReceiptMissingFields,
			"merchant and at least one item are required",
			domainerror.ErrReceiptMissingFields,
		)
	}

	if input.TotalVal.IsNegative() || input.PaidValue.IsNegative() {
		return nil, domainerror.NewReceiptError(
			domainerror.ErrCodeNegativeReceiptValue,
			"receipt totals must not be negative",
			domainerror.ErrNegativeReceiptValue,
		)
	}
	for _, item := range input.Items {
		if item.Name == "" {
			return nil, domainerror.NewReceiptError(
				domainerror.ErrCodeReceiptMissingFields,
				"every item needs a product name",
				domainerror.ErrReceiptMissingFields,
			)
		}
		if item.TotalValue.IsNegative() || item.UnitValue.IsNegative() {
			return nil, domainerror.NewReceiptError(
				domainerror.ErrCodeNegativeReceiptValue,
				"item values must not be negative",
				domainerror.ErrNegativeReceiptValue,
			)
		}
	}

	if input.AccessKey != "" {
		exists, err := uc.receiptRepo.ExistsByAccessKey(ctx, input.AccessKey)
		if err != nil {
			return nil, fmt.Errorf("failed to check receipt existence: %w", err)
		}
		if exists {
			return nil, domainerror.NewReceiptError(
				domainerror.ErrCodeReceiptAlreadyExists,
				"a receipt with this access key was already ingested",
				domainerror.ErrReceiptAlreadyExists,
			)
		}
	}

	items := make([]entity.ReceiptItem, 0, len(input.Items))
	for _, item := range input.Items {
		items = append(items, entity.ReceiptItem{
			Name:       item.Name,
			Quantity:   item.Quantity,
			Unit:       item.Unit,
			UnitValue:  item.UnitValue,
			TotalValue: item.TotalValue,
		})
	}

	receipt := entity.NewReceipt(
		input.AccessKey,
		input.Number,
		input.Merchant,
		input.IssuedAt,
		input.TotalVal,
		input.PaidValue,
		items,
	)

	if err := uc.receiptRepo.Create(ctx, receipt); err != nil {
		return nil, fmt.Errorf("failed to create receipt: %w", err)
	}

	if !receipt.HasValidIssueDate() {
		slog.Warn("Receipt ingested without a parsable issue date",
			"receipt_id", receipt.ID,
			"merchant", receipt.Merchant,
		)
	}

	if err := uc.cache.InvalidateAll(ctx); err != nil {
		slog.Warn("Failed to invalidate report cache after receipt ingestion", "error", err)
	}

	return &CreateReceiptOutput{
		Receipt: receipt,
	}, nil
}
