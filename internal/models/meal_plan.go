package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// MealPlan is an ordered sequence of days authored by a trainer. Once a
// plan has been assigned it is immutable except for deletion.
type MealPlan struct {
	ID        uuid.UUID      `gorm:"type:uuid;primary_key;default:(gen_random_uuid())" json:"id"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`
	Name      string         `gorm:"size:255;not null" json:"name"`
	TrainerID uuid.UUID      `gorm:"type:uuid;not null" json:"trainer_id"`
	Days      []PlanDay      `gorm:"constraint:OnDelete:CASCADE" json:"days"`
}

// PlanDay is one day within a plan, ordered by Position.
type PlanDay struct {
	ID         uuid.UUID  `gorm:"type:uuid;primary_key;default:(gen_random_uuid())" json:"id"`
	MealPlanID uuid.UUID  `gorm:"type:uuid;not null;index" json:"meal_plan_id"`
	Position   int        `gorm:"not null" json:"position"`
	Meals      []PlanMeal `gorm:"constraint:OnDelete:CASCADE" json:"meals"`
}

// PlanMeal references the recipe served at one slot of a day.
type PlanMeal struct {
	ID        uuid.UUID `gorm:"type:uuid;primary_key;default:(gen_random_uuid())" json:"id"`
	PlanDayID uuid.UUID `gorm:"type:uuid;not null;index" json:"plan_day_id"`
	Position  int       `gorm:"not null" json:"position"`
	RecipeID  uuid.UUID `gorm:"type:uuid;not null" json:"recipe_id"`
	Recipe    Recipe    `json:"recipe"`
}
