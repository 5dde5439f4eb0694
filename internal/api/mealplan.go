package api

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/platefit/platefit-v2/backend/internal/models"
	"github.com/platefit/platefit-v2/backend/internal/service"
	"gorm.io/gorm"
)

// MealPlanHandler exposes meal plan routes. Deleting a plan cascades to
// its grocery lists through the service's deletion hooks.
type MealPlanHandler struct {
	plans service.IMealPlanService
}

func NewMealPlanHandler(plans service.IMealPlanService) *MealPlanHandler {
	return &MealPlanHandler{plans: plans}
}

func (h *MealPlanHandler) RegisterRoutes(router *gin.RouterGroup) {
	plans := router.Group("/meal-plans")
	{
		plans.POST("", h.CreatePlan)
		plans.GET("/:id", h.GetPlan)
		plans.DELETE("/:id", h.DeletePlan)
	}
}

func (h *MealPlanHandler) CreatePlan(c *gin.Context) {
	var plan models.MealPlan
	if err := c.ShouldBindJSON(&plan); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	created, err := h.plans.CreatePlan(c.Request.Context(), &plan)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create meal plan"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{"meal_plan": created})
}

func (h *MealPlanHandler) GetPlan(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid meal plan id"})
		return
	}

	plan, err := h.plans.GetPlanWithRecipes(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Meal plan not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch meal plan"})
		return
	}

	c.JSON(http.StatusOK, plan)
}

func (h *MealPlanHandler) DeletePlan(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid meal plan id"})
		return
	}

	if err := h.plans.DeletePlan(c.Request.Context(), id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Meal plan not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete meal plan"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Meal plan deleted successfully",
		"id":      id.String(),
	})
}
