package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Recipe is read-only input to grocery-list generation. The same recipe
// may appear in many meals within one plan and across plans.
type Recipe struct {
	ID          uuid.UUID          `gorm:"type:uuid;primary_key;default:(gen_random_uuid())" json:"id"`
	CreatedAt   time.Time          `json:"created_at"`
	UpdatedAt   time.Time          `json:"updated_at"`
	DeletedAt   gorm.DeletedAt     `gorm:"index" json:"-"`
	Name        string             `gorm:"size:255;not null" json:"name"`
	Ingredients []IngredientRecord `gorm:"constraint:OnDelete:CASCADE" json:"ingredients"`
}

// IngredientRecord is the raw authored triple. It is never mutated by the
// aggregation engine; parsing works on copies.
type IngredientRecord struct {
	ID       uuid.UUID `gorm:"type:uuid;primary_key;default:(gen_random_uuid())" json:"id"`
	RecipeID uuid.UUID `gorm:"type:uuid;not null;index" json:"recipe_id"`
	Position int       `gorm:"not null" json:"position"`
	Name     string    `gorm:"size:255;not null" json:"name"`
	Amount   string    `gorm:"size:50" json:"amount"`
	Unit     string    `gorm:"size:50" json:"unit"`
}
