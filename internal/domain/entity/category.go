// Package entity defines the core business entities for the domain layer.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// DefaultCategoryColor is the fallback color for categories without one.
const DefaultCategoryColor = "#9ca3af"

// DefaultCategoryIcon is the fallback icon for categories without one.
const DefaultCategoryIcon = "ShoppingCart"

// FallbackCategoryCode is the code of the catch-all category products land in
// when no prefix rule matches them.
const FallbackCategoryCode = "OUTROS"

// Category represents a spending category in the De Olho na Nota system.
// The registry of categories is loaded once per session and is read-only to
// the classification and aggregation engine; its presentation metadata
// (color, icon, label) rides along for the reporting layer.
type Category struct {
	ID          uuid.UUID
	Code        string // Stable symbolic key, e.g. "HORTIFRUTI"
	Name        string
	Description string
	Color       string
	Icon        string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// NewCategory creates a new Category entity.
// Note: Defaulting logic for color and icon should be applied in the
// Application layer before calling this constructor.
func NewCategory(code, name, description, color, icon string) *Category {
	now := time.Now().UTC()

	return &Category{
		ID:          uuid.New(),
		Code:        code,
		Name:        name,
		Description: description,
		Color:       color,
		Icon:        icon,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
}

// DefaultCategories is the fixed catalog the registry is seeded with when the
// store is empty. Codes and presentation metadata mirror the grocery sections
// of a Brazilian supermarket receipt.
func DefaultCategories() []*Category {
	return []*Category{
		NewCategory("ACOUGUE_E_PEIXARIA", "Açougue", "Carnes, aves e peixes", "#dc2626", "Beef"),
		NewCategory("HORTIFRUTI", "Hortifruti", "Frutas, verduras e legumes", "#16a34a", "Apple"),
		NewCategory("LATICINIOS_E_OVOS", "Laticínios", "Leites, queijos e ovos", "#f59e0b", "Milk"),
		NewCategory("PADARIA_E_CONFEITARIA", "Padaria", "Pães, bolos e confeitaria", "#d97706", "Croissant"),
		NewCategory("MERCEARIA_SECA", "Mercearia", "Grãos, enlatados e secos", "#8b5cf6", "Package"),
		NewCategory("CONGELADOS", "Congelados", "Congelados e resfriados", "#0ea5e9", "Snowflake"),
		NewCategory("BEBIDAS", "Bebidas", "Bebidas em geral", "#ec4899", "Wine"),
		NewCategory("LIMPEZA", "Limpeza", "Produtos de limpeza", "#06b6d4", "SprayCan"),
		NewCategory("HIGIENE_E_BELEZA", "Higiene", "Higiene pessoal e beleza", "#f472b6", "Sparkles"),
		NewCategory("PET_SHOP", "Pet Shop", "Produtos para animais", "#a855f7", "PawPrint"),
		NewCategory("UTILIDADES_DOMESTICAS", "Utilidades", "Utilidades domésticas", "#64748b", "Lamp"),
		NewCategory(FallbackCategoryCode, "Outros", "Produtos sem categoria específica", DefaultCategoryColor, DefaultCategoryIcon),
	}
}
