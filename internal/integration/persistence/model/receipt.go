// Package model defines database models for persistence layer.
package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/deolhonanota/backend/internal/domain/entity"
)

// ReceiptModel represents the receipts table in the database. IssuedAt is
// nullable: receipts whose source date could not be parsed are stored with a
// NULL issue date and excluded from reports.
type ReceiptModel struct {
	ID        uuid.UUID          `gorm:"type:uuid;primaryKey"`
	AccessKey string             `gorm:"type:varchar(44);index"`
	Number    string             `gorm:"type:varchar(20)"`
	Merchant  string             `gorm:"type:varchar(255);not null"`
	IssuedAt  *time.Time         `gorm:"index"`
	TotalVal  decimal.Decimal    `gorm:"type:numeric(12,2);not null"`
	PaidValue decimal.Decimal    `gorm:"type:numeric(12,2);not null"`
	Items     []ReceiptItemModel `gorm:"foreignKey:ReceiptID;constraint:OnDelete:CASCADE"`
	CreatedAt time.Time          `gorm:"not null"`
	UpdatedAt time.Time          `gorm:"not null"`
}

// TableName returns the table name for the ReceiptModel.
func (ReceiptModel) TableName() string {
	return "receipts"
}

// ReceiptItemModel represents the receipt_items table in the database.
type ReceiptItemModel struct {
	ID         uint            `gorm:"primaryKey;autoIncrement"`
	ReceiptID  uuid.UUID       `gorm:"type:uuid;not null;index"`
	Name       string          `gorm:"type:varchar(255);not null"`
	Quantity   decimal.Decimal `gorm:"type:numeric(12,4);not null"`
	Unit       string          `gorm:"type:varchar(10)"`
	UnitValue  decimal.Decimal `gorm:"type:numeric(12,4);not null"`
	TotalValue decimal.Decimal `gorm:"type:numeric(12,2);not null"`
}

// TableName returns the table name for the ReceiptItemModel.
func (ReceiptItemModel) TableName() string {
	return "receipt_items"
}

// ToEntity converts a ReceiptModel with its items to a domain Receipt entity.
func (m *ReceiptModel) ToEntity() *entity.Receipt {
	var issuedAt time.Time
	if m.IssuedAt != nil {
		issuedAt = *m.IssuedAt
	}

	items := make([]entity.ReceiptItem, len(m.Items))
	for i, item := range m.Items {
		items[i] = entity.ReceiptItem{
			Name:       item.Name,
			Quantity:   item.Quantity,
			Unit:       item.Unit,
			UnitValue:  item.UnitValue,
			TotalValue: item.TotalValue,
		}
	}

	return &entity.Receipt{
		ID:        m.ID,
		AccessKey: m.AccessKey,
		Number:    m.Number,
		Merchant:  m.Merchant,
		IssuedAt:  issuedAt,
		TotalVal:  m.TotalVal,
		PaidValue: m.PaidValue,
		Items:     items,
		CreatedAt: m.CreatedAt,
		UpdatedAt: m.UpdatedAt,
	}
}

// ReceiptFromEntity creates a ReceiptModel with items from a domain entity.
func ReceiptFromEntity(receipt *entity.Receipt) *ReceiptModel {
	var issuedAt *time.Time
	if receipt.HasValidIssueDate() {
		t := receipt.IssuedAt
		issuedAt = &t
	}

	items := make([]ReceiptItemModel, len(receipt.Items))
	for i, item := range receipt.Items {
		items[i] = ReceiptItemModel{
			ReceiptID:  receipt.ID,
			Name:       item.Name,
			Quantity:   item.Quantity,
			Unit:       item.Unit,
			UnitValue:  item.UnitValue,
			TotalValue: item.TotalValue,
		}
	}

	return &ReceiptModel{
		ID:        receipt.ID,
		AccessKey: receipt.AccessKey,
		Number:    receipt.Number,
		Merchant:  receipt.Merchant,
		IssuedAt:  issuedAt,
		TotalVal:  receipt.TotalVal,
		PaidValue: receipt.PaidValue,
		Items:     items,
		CreatedAt: receipt.CreatedAt,
		UpdatedAt: receipt.UpdatedAt,
	}
}
