// Package dto defines data transfer objects for API requests and responses.
package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/deolhonanota/backend/internal/application/usecase/receipt"
	"github.com/deolhonanota/backend/internal/domain/entity"
)

// ReceiptItemRequest represents one product line of an ingested receipt.
type ReceiptItemRequest struct {
	Name       string          `json:"nome" binding:"required,max=255"`
	Quantity   decimal.Decimal `json:"quantidade"`
	Unit       string          `json:"unidade" binding:"max=10"`
	UnitValue  decimal.Decimal `json:"valorUnitario"`
	TotalValue decimal.Decimal `json:"valorTotal"`
}

// CreateReceiptRequest represents the request body for receipt ingestion.
// DataEmissao is the raw issue date string as parsed from the consultation
// page; an empty or unparsable value stores the receipt without a date.
type CreateReceiptRequest struct {
	AccessKey string               `json:"chaveAcesso" binding:"max=44"`
	Number    string               `json:"numero" binding:"max=20"`
	Merchant  string               `json:"estabelecimento" binding:"required,max=255"`
	IssuedAt  string               `json:"dataEmissao"`
	TotalVal  decimal.Decimal      `json:"valorTotal"`
	PaidValue decimal.Decimal      `json:"valorPago"`
	Items     []ReceiptItemRequest `json:"itens" binding:"required,min=1,dive"`
}

// ParseIssuedAt parses the issue date, accepting RFC 3339 and the bare
// "2006-01-02 15:04:05" layout the consultation pages produce. The zero time
// and false mean the date could not be parsed.
func (r *CreateReceiptRequest) ParseIssuedAt() (time.Time, bool) {
	raw := r.IssuedAt
	if raw == "" {
		return time.Time{}, false
	}
	for _, layout := range []string{time.RFC3339, "2006-01-02 15:04:05", "2006-01-02"} {
		if t, err := time.Parse(layout, raw); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}

// ReceiptItemResponse represents one product line in API responses.
type ReceiptItemResponse struct {
	Name       string          `json:"nome"`
	Quantity   decimal.Decimal `json:"quantidade"`
	Unit       string          `json:"unidade"`
	UnitValue  decimal.Decimal `json:"valorUnitario"`
	TotalValue decimal.Decimal `json:"valorTotal"`
}

// ReceiptResponse represents a receipt in API responses. DataEmissao is null
// for receipts stored without a parsable issue date.
type ReceiptResponse struct {
	ID        string                `json:"id"`
	AccessKey string                `json:"chaveAcesso,omitempty"`
	Number    string                `json:"numero,omitempty"`
	Merchant  string                `json:"estabelecimento"`
	IssuedAt  *time.Time            `json:"dataEmissao"`
	TotalVal  decimal.Decimal       `json:"valorTotal"`
	PaidValue decimal.Decimal       `json:"valorPago"`
	Items     []ReceiptItemResponse `json:"itens"`
}

// ToReceiptInput converts the request into the ingestion use case input.
func ToReceiptInput(req *CreateReceiptRequest) receipt.CreateReceiptInput {
	issuedAt, _ := req.ParseIssuedAt()

	items := make([]receipt.CreateReceiptItemInput, len(req.Items))
	for i, item := range req.Items {
		items[i] = receipt.CreateReceiptItemInput{
			Name:       item.Name,
			Quantity:   item.Quantity,
			Unit:       item.Unit,
			UnitValue:  item.UnitValue,
			TotalValue: item.TotalValue,
		}
	}

	return receipt.CreateReceiptInput{
		AccessKey: req.AccessKey,
		Number:    req.Number,
		Merchant:  req.Merchant,
		IssuedAt:  issuedAt,
		TotalVal:  req.TotalVal,
		PaidValue: req.PaidValue,
		Items:     items,
	}
}

// ToReceiptResponse converts a domain Receipt entity to a ReceiptResponse DTO.
func ToReceiptResponse(r *entity.Receipt) ReceiptResponse {
	var issuedAt *time.Time
	if r.HasValidIssueDate() {
		t := r.IssuedAt
		issuedAt = &t
	}

	items := make([]ReceiptItemResponse, len(r.Items))
	for i, item := range r.Items {
		items[i] = ReceiptItemResponse{
			Name:       item.Name,
			Quantity:   item.Quantity,
			Unit:       item.Unit,
			UnitValue:  item.UnitValue,
			TotalValue: item.TotalValue,
		}
	}

	return ReceiptResponse{
		ID:        r.ID.String(),
		AccessKey: r.AccessKey,
		Number:    r.Number,
		Merchant:  r.Merchant,
		IssuedAt:  issuedAt,
		TotalVal:  r.TotalVal,
		PaidValue: r.PaidValue,
		Items:     items,
	}
}

// ToReceiptListResponse converts domain receipts to response DTOs.
func ToReceiptListResponse(receipts []*entity.Receipt) []ReceiptResponse {
	responses := make([]ReceiptResponse, len(receipts))
	for i, r := range receipts {
		responses[i] = ToReceiptResponse(r)
	}
	return responses
}
