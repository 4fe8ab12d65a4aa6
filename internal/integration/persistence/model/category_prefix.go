// Package model defines database models for persistence layer.
package model

import (
	"time"

	"github.com/google/uuid"

	"github.com/deolhonanota/backend/internal/domain/entity"
)

// CategoryPrefixModel represents the category_prefixes table in the database.
// The category association is deliberately not a foreign key constraint: a
// rule may outlive its category and then classifies as uncategorized.
type CategoryPrefixModel struct {
	ID         uuid.UUID `gorm:"type:uuid;primaryKey"`
	Prefix     string    `gorm:"type:varchar(100);not null;index"`
	CategoryID uuid.UUID `gorm:"type:uuid;not null;index"`
	CreatedAt  time.Time `gorm:"not null;index"`
	UpdatedAt  time.Time `gorm:"not null"`
}

// TableName returns the table name for the CategoryPrefixModel.
func (CategoryPrefixModel) TableName() string {
	return "category_prefixes"
}

// ToEntity converts a CategoryPrefixModel to a domain CategoryPrefix entity.
func (m *CategoryPrefixModel) ToEntity() *entity.CategoryPrefix {
	return &entity.CategoryPrefix{
		ID:         m.ID,
		Prefix:     m.Prefix,
		CategoryID: m.CategoryID,
		CreatedAt:  m.CreatedAt,
		UpdatedAt:  m.UpdatedAt,
	}
}

// CategoryPrefixFromEntity creates a CategoryPrefixModel from a domain entity.
func CategoryPrefixFromEntity(prefix *entity.CategoryPrefix) *CategoryPrefixModel {
	return &CategoryPrefixModel{
		ID:         prefix.ID,
		Prefix:     prefix.Prefix,
		CategoryID: prefix.CategoryID,
		CreatedAt:  prefix.CreatedAt,
		UpdatedAt:  prefix.UpdatedAt,
	}
}
