package models

import (
	"database/sql/driver"
	"encoding/json"
	"time"

	"github.com/google/uuid"
)

// GroceryItem is one line of a generated list. For merged items Quantity
// is the summed amount in the canonical unit; for residual items Quantity
// and Unit are carried verbatim from the source record. RecipeIDs lists
// the contributing recipes for traceability.
type GroceryItem struct {
	Name      string   `json:"name"`
	Quantity  float64  `json:"quantity"`
	RawAmount string   `json:"raw_amount,omitempty"`
	Unit      string   `json:"unit"`
	Category  string   `json:"category"`
	RecipeIDs []string `json:"recipe_ids"`
}

// GroceryItemList is a custom type for storing grocery items in JSONB
type GroceryItemList []GroceryItem

// Value implements the driver.Valuer interface
func (l GroceryItemList) Value() (driver.Value, error) {
	if len(l) == 0 {
		return "[]", nil
	}
	return json.Marshal(l)
}

// Scan implements the sql.Scanner interface
func (l *GroceryItemList) Scan(value interface{}) error {
	if value == nil {
		*l = GroceryItemList{}
		return nil
	}

	var bytes []byte
	switch v := value.(type) {
	case []byte:
		bytes = v
	case string:
		bytes = []byte(v)
	default:
		return nil
	}

	return json.Unmarshal(bytes, l)
}

// GroceryList is the generated list for one (meal plan, customer) pair.
// The composite unique index is the authority for the at-most-one-list
// invariant; application code only ever writes through an upsert keyed
// by it.
type GroceryList struct {
	ID          uuid.UUID       `gorm:"type:uuid;primary_key;default:(gen_random_uuid())" json:"id"`
	CreatedAt   time.Time       `json:"created_at"`
	UpdatedAt   time.Time       `json:"updated_at"`
	MealPlanID  uuid.UUID       `gorm:"type:uuid;not null;uniqueIndex:idx_grocery_lists_plan_customer" json:"meal_plan_id"`
	CustomerID  uuid.UUID       `gorm:"type:uuid;not null;uniqueIndex:idx_grocery_lists_plan_customer" json:"customer_id"`
	Name        string          `gorm:"size:255;not null" json:"name"`
	GeneratedAt time.Time       `json:"generated_at"`
	Items       GroceryItemList `gorm:"type:jsonb;not null;default:'[]'" json:"items"`
	Residuals   GroceryItemList `gorm:"type:jsonb;not null;default:'[]'" json:"residuals"`
}
