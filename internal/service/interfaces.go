package service

import (
	"context"

	"github.com/google/uuid"
	"github.com/platefit/platefit-v2/backend/internal/models"
	"gorm.io/gorm"
)

// IFeatureService defines the interface for runtime feature toggles
type IFeatureService interface {
	IsEnabled(ctx context.Context, name string) bool
	SetEnabled(ctx context.Context, name string, enabled bool) error
}

// DeletionHook runs inside the plan-deletion transaction so dependent
// rows can never outlive their source plan.
type DeletionHook func(tx *gorm.DB, planID uuid.UUID) error

// IMealPlanService defines the interface for meal plan operations
type IMealPlanService interface {
	CreatePlan(ctx context.Context, plan *models.MealPlan) (*models.MealPlan, error)
	GetPlanWithRecipes(ctx context.Context, id uuid.UUID) (*models.MealPlan, error)
	DeletePlan(ctx context.Context, id uuid.UUID) error
	RegisterDeletionHook(hook DeletionHook)
}

// IGroceryService defines the interface for grocery list generation
type IGroceryService interface {
	OnAssignment(ctx context.Context, planID, customerID uuid.UUID) (*models.GroceryList, error)
	GetGroceryList(ctx context.Context, planID, customerID uuid.UUID) (*models.GroceryList, error)
}

// IRecipeService defines the interface for recipe operations
type IRecipeService interface {
	CreateRecipe(ctx context.Context, recipe *models.Recipe) (*models.Recipe, error)
	GetRecipe(ctx context.Context, id uuid.UUID) (*models.Recipe, error)
	ListRecipes(ctx context.Context) ([]*models.Recipe, error)
}
