package service

import (
	"context"

	"github.com/google/uuid"
	"github.com/platefit/platefit-v2/backend/internal/models"
	"gorm.io/gorm"
)

// MealPlanService handles meal plan operations
type MealPlanService struct {
	db    *gorm.DB
	hooks []DeletionHook
}

// NewMealPlanService creates a new MealPlanService instance
func NewMealPlanService(db *gorm.DB) *MealPlanService {
	return &MealPlanService{db: db}
}

// RegisterDeletionHook adds a hook that runs inside the DeletePlan
// transaction. Hooks are registered at wiring time, before the server
// serves traffic.
func (s *MealPlanService) RegisterDeletionHook(hook DeletionHook) {
	s.hooks = append(s.hooks, hook)
}

// CreatePlan creates a meal plan with its days and meals
func (s *MealPlanService) CreatePlan(ctx context.Context, plan *models.MealPlan) (*models.MealPlan, error) {
	if err := s.db.WithContext(ctx).Create(plan).Error; err != nil {
		return nil, err
	}
	return plan, nil
}

// GetPlanWithRecipes loads a plan fully hydrated: days, meals, recipes
// and every recipe's ingredient records, all in position order.
func (s *MealPlanService) GetPlanWithRecipes(ctx context.Context, id uuid.UUID) (*models.MealPlan, error) {
	var plan models.MealPlan
	err := s.db.WithContext(ctx).
		Preload("Days", func(db *gorm.DB) *gorm.DB {
			return db.Order("position ASC")
		}).
		Preload("Days.Meals", func(db *gorm.DB) *gorm.DB {
			return db.Order("position ASC")
		}).
		Preload("Days.Meals.Recipe").
		Preload("Days.Meals.Recipe.Ingredients", func(db *gorm.DB) *gorm.DB {
			return db.Order("position ASC")
		}).
		First(&plan, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &plan, nil
}

// DeletePlan removes a plan. Registered deletion hooks run in the same
// transaction, so rows that depend on the plan (grocery lists) are gone
// the moment the plan is.
func (s *MealPlanService) DeletePlan(ctx context.Context, id uuid.UUID) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var plan models.MealPlan
		if err := tx.First(&plan, "id = ?", id).Error; err != nil {
			return err
		}

		for _, hook := range s.hooks {
			if err := hook(tx, id); err != nil {
				return err
			}
		}

		return tx.Delete(&models.MealPlan{}, "id = ?", id).Error
	})
}
