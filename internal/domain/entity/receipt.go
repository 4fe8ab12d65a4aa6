// Package entity defines the core business entities for the domain layer.
package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// ReceiptItem represents a single product line on a fiscal receipt.
type ReceiptItem struct {
	Name       string
	Quantity   decimal.Decimal
	Unit       string // Commercial unit as printed, e.g. "UN", "KG"
	UnitValue  decimal.Decimal
	TotalValue decimal.Decimal
}

// Receipt represents a parsed fiscal receipt (NFC-e) in the De Olho na Nota
// system. Receipts arrive already parsed from the QR-code consultation page;
// the engine only ever reads them.
type Receipt struct {
	ID        uuid.UUID
	AccessKey string // 44-digit NFC-e access key
	Number    string
	Merchant  string
	IssuedAt  time.Time // Zero when the source date could not be parsed
	TotalVal  decimal.Decimal
	PaidValue decimal.Decimal
	Items     []ReceiptItem
	CreatedAt time.Time
	UpdatedAt time.Time
}

// NewReceipt creates a new Receipt entity.
func NewReceipt(
	accessKey, number, merchant string,
	issuedAt time.Time,
	totalValue, paidValue decimal.Decimal,
	items []ReceiptItem,
) *Receipt {
	now := time.Now().UTC()

	return &Receipt{
		ID:        uuid.New(),
		AccessKey: accessKey,
		Number:    number,
		Merchant:  merchant,
		IssuedAt:  issuedAt,
		TotalVal:  totalValue,
		PaidValue: paidValue,
		Items:     items,
		CreatedAt: now,
		UpdatedAt: now,
	}
}

// HasValidIssueDate reports whether the receipt carries a usable issue date.
// Receipts without one are excluded from every aggregation bucket.
func (r *Receipt) HasValidIssueDate() bool {
	return !r.IssuedAt.IsZero()
}
