package service

import (
	"context"
	"errors"
	"log"
	"time"

	"github.com/google/uuid"
	"github.com/platefit/platefit-v2/backend/internal/ingredient"
	"github.com/platefit/platefit-v2/backend/internal/models"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// GroceryService generates and serves grocery lists. Generation is
// best-effort: it must never fail the assignment workflow over data
// quality, and all writes go through a single atomic upsert keyed by
// (meal_plan_id, customer_id).
type GroceryService struct {
	db       *gorm.DB
	features IFeatureService
	plans    IMealPlanService
}

// NewGroceryService creates a new GroceryService instance and registers
// its cascade-delete hook with the meal plan service.
func NewGroceryService(db *gorm.DB, features IFeatureService, plans IMealPlanService) *GroceryService {
	s := &GroceryService{db: db, features: features, plans: plans}
	plans.RegisterDeletionHook(s.deleteListsForPlan)
	return s
}

// OnAssignment handles "plan assigned to customer". Returns (nil, nil)
// when the feature toggle is off; existing lists are left untouched in
// that case. Safe to call repeatedly for the same pair: the upsert
// replaces contents rather than creating a second row.
func (s *GroceryService) OnAssignment(ctx context.Context, planID, customerID uuid.UUID) (*models.GroceryList, error) {
	if !s.features.IsEnabled(ctx, GroceryGenerationFlag) {
		return nil, nil
	}

	name := "Grocery List"
	var result ingredient.Result

	plan, err := s.plans.GetPlanWithRecipes(ctx, planID)
	switch {
	case err == nil:
		name = "Grocery List - " + plan.Name
		result = ingredient.Aggregate(plan)
	case errors.Is(err, gorm.ErrRecordNotFound):
		// Missing plan still yields an empty list; assignment is never
		// blocked by generation.
		log.Printf("grocery generation: plan %s not found, generating empty list", planID)
	default:
		return nil, err
	}

	if n := len(result.Residuals); n > 0 {
		log.Printf("grocery generation: plan %s has %d unmergeable ingredient(s)", planID, n)
	}

	list := &models.GroceryList{
		ID:          uuid.New(),
		MealPlanID:  planID,
		CustomerID:  customerID,
		Name:        name,
		GeneratedAt: time.Now().UTC(),
		Items:       models.GroceryItemList(result.Items),
		Residuals:   models.GroceryItemList(result.Residuals),
	}

	err = s.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "meal_plan_id"}, {Name: "customer_id"}},
		DoUpdates: clause.AssignmentColumns([]string{
			"name", "generated_at", "items", "residuals", "updated_at",
		}),
	}).Create(list).Error
	if err != nil {
		return nil, err
	}

	// Re-read by key: on conflict the existing row keeps its id.
	return s.GetGroceryList(ctx, planID, customerID)
}

// GetGroceryList returns the list for a (plan, customer) pair, or nil
// when none has been generated.
func (s *GroceryService) GetGroceryList(ctx context.Context, planID, customerID uuid.UUID) (*models.GroceryList, error) {
	var list models.GroceryList
	err := s.db.WithContext(ctx).
		First(&list, "meal_plan_id = ? AND customer_id = ?", planID, customerID).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &list, nil
}

// deleteListsForPlan is the cascade hook: it runs inside the plan
// deletion transaction.
func (s *GroceryService) deleteListsForPlan(tx *gorm.DB, planID uuid.UUID) error {
	return tx.Where("meal_plan_id = ?", planID).Delete(&models.GroceryList{}).Error
}
