package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/platefit/platefit-v2/backend/internal/service"
	"github.com/platefit/platefit-v2/backend/internal/testdb"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupTestRouter(t *testing.T) (*gin.Engine, *service.FeatureService) {
	gin.SetMode(gin.TestMode)

	db := testdb.Setup(t)
	features := service.NewFeatureService(nil, map[string]bool{service.GroceryGenerationFlag: true})
	plans := service.NewMealPlanService(db)
	recipes := service.NewRecipeService(db)
	grocery := service.NewGroceryService(db, features, plans)

	router := gin.New()
	v1 := router.Group("/api/v1")
	NewGroceryHandler(grocery).RegisterRoutes(v1)
	NewMealPlanHandler(plans).RegisterRoutes(v1)
	NewRecipeHandler(recipes).RegisterRoutes(v1)
	NewFeatureHandler(features).RegisterRoutes(v1)

	return router, features
}

func doJSON(t *testing.T, router *gin.Engine, method, path string, body interface{}) *httptest.ResponseRecorder {
	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func createRecipe(t *testing.T, router *gin.Engine) string {
	w := doJSON(t, router, "POST", "/api/v1/recipes", map[string]interface{}{
		"name": "Chicken Soup",
		"ingredients": []map[string]interface{}{
			{"position": 0, "name": "Chicken Broth", "amount": "1", "unit": "cup"},
			{"position": 1, "name": "Salt", "amount": "to taste", "unit": ""},
		},
	})
	require.Equal(t, 201, w.Code)

	var response map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
	recipe := response["recipe"].(map[string]interface{})
	return recipe["id"].(string)
}

func createPlan(t *testing.T, router *gin.Engine, recipeID string) string {
	w := doJSON(t, router, "POST", "/api/v1/meal-plans", map[string]interface{}{
		"name":       "Weekly Plan",
		"trainer_id": uuid.New().String(),
		"days": []map[string]interface{}{
			{
				"position": 0,
				"meals": []map[string]interface{}{
					{"position": 0, "recipe_id": recipeID},
				},
			},
		},
	})
	require.Equal(t, 201, w.Code)

	var response map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
	plan := response["meal_plan"].(map[string]interface{})
	return plan["id"].(string)
}

func TestAssignmentGeneratesGroceryList(t *testing.T) {
	router, _ := setupTestRouter(t)
	planID := createPlan(t, router, createRecipe(t, router))
	customerID := uuid.New().String()

	w := doJSON(t, router, "POST", "/api/v1/assignments", map[string]string{
		"meal_plan_id": planID,
		"customer_id":  customerID,
	})
	require.Equal(t, 200, w.Code)

	var response map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
	list := response["grocery_list"].(map[string]interface{})
	assert.Equal(t, "Grocery List - Weekly Plan", list["name"])

	// Read it back through the read API.
	w = doJSON(t, router, "GET", fmt.Sprintf("/api/v1/grocery-lists/%s?customer_id=%s", planID, customerID), nil)
	assert.Equal(t, 200, w.Code)
}

func TestAssignmentSkippedWhenToggleOff(t *testing.T) {
	router, features := setupTestRouter(t)
	planID := createPlan(t, router, createRecipe(t, router))

	require.NoError(t, features.SetEnabled(context.Background(), service.GroceryGenerationFlag, false))

	w := doJSON(t, router, "POST", "/api/v1/assignments", map[string]string{
		"meal_plan_id": planID,
		"customer_id":  uuid.New().String(),
	})
	assert.Equal(t, 202, w.Code)

	var response map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
	assert.Equal(t, "skipped", response["status"])
}

func TestAssignmentRejectsBadIDs(t *testing.T) {
	router, _ := setupTestRouter(t)

	w := doJSON(t, router, "POST", "/api/v1/assignments", map[string]string{
		"meal_plan_id": "not-a-uuid",
		"customer_id":  uuid.New().String(),
	})
	assert.Equal(t, 400, w.Code)
}

func TestGetGroceryListNotFound(t *testing.T) {
	router, _ := setupTestRouter(t)

	w := doJSON(t, router, "GET", fmt.Sprintf("/api/v1/grocery-lists/%s?customer_id=%s", uuid.New(), uuid.New()), nil)
	assert.Equal(t, 404, w.Code)
}

func TestDeletePlanRemovesGroceryList(t *testing.T) {
	router, _ := setupTestRouter(t)
	planID := createPlan(t, router, createRecipe(t, router))
	customerID := uuid.New().String()

	w := doJSON(t, router, "POST", "/api/v1/assignments", map[string]string{
		"meal_plan_id": planID,
		"customer_id":  customerID,
	})
	require.Equal(t, 200, w.Code)

	w = doJSON(t, router, "DELETE", "/api/v1/meal-plans/"+planID, nil)
	require.Equal(t, 200, w.Code)

	w = doJSON(t, router, "GET", fmt.Sprintf("/api/v1/grocery-lists/%s?customer_id=%s", planID, customerID), nil)
	assert.Equal(t, 404, w.Code)

	w = doJSON(t, router, "GET", "/api/v1/meal-plans/"+planID, nil)
	assert.Equal(t, 404, w.Code)
}

func TestFeatureToggleRoutes(t *testing.T) {
	router, _ := setupTestRouter(t)

	w := doJSON(t, router, "GET", "/api/v1/features/"+service.GroceryGenerationFlag, nil)
	require.Equal(t, 200, w.Code)

	var response map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
	assert.Equal(t, true, response["enabled"])

	w = doJSON(t, router, "PUT", "/api/v1/features/"+service.GroceryGenerationFlag, map[string]bool{"enabled": false})
	require.Equal(t, 200, w.Code)

	w = doJSON(t, router, "GET", "/api/v1/features/"+service.GroceryGenerationFlag, nil)
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
	assert.Equal(t, false, response["enabled"])
}
