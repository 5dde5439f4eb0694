package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/platefit/platefit-v2/backend/internal/service"
)

// GroceryHandler exposes the assignment webhook and the grocery-list
// read API.
type GroceryHandler struct {
	grocery service.IGroceryService
}

func NewGroceryHandler(grocery service.IGroceryService) *GroceryHandler {
	return &GroceryHandler{grocery: grocery}
}

func (h *GroceryHandler) RegisterRoutes(router *gin.RouterGroup) {
	router.POST("/assignments", h.HandleAssignment)
	router.GET("/grocery-lists/:planID", h.GetGroceryList)
}

type assignmentRequest struct {
	MealPlanID string `json:"meal_plan_id" binding:"required"`
	CustomerID string `json:"customer_id" binding:"required"`
}

// HandleAssignment is called by the assignment collaborator after it has
// durably recorded the assignment. Calling it again for the same pair
// regenerates the list in place.
func (h *GroceryHandler) HandleAssignment(c *gin.Context) {
	var req assignmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	planID, err := uuid.Parse(req.MealPlanID)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid meal plan id"})
		return
	}
	customerID, err := uuid.Parse(req.CustomerID)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid customer id"})
		return
	}

	list, err := h.grocery.OnAssignment(c.Request.Context(), planID, customerID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to generate grocery list"})
		return
	}
	if list == nil {
		c.JSON(http.StatusAccepted, gin.H{"status": "skipped"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"grocery_list": list})
}

func (h *GroceryHandler) GetGroceryList(c *gin.Context) {
	planID, err := uuid.Parse(c.Param("planID"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid meal plan id"})
		return
	}
	customerID, err := uuid.Parse(c.Query("customer_id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid customer id"})
		return
	}

	list, err := h.grocery.GetGroceryList(c.Request.Context(), planID, customerID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch grocery list"})
		return
	}
	if list == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Grocery list not found"})
		return
	}

	c.JSON(http.StatusOK, list)
}
