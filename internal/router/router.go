package router

import (
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/platefit/platefit-v2/backend/internal/api"
	"github.com/platefit/platefit-v2/backend/internal/middleware"
)

// SetupRouter configures the application routes
func SetupRouter(
	groceryHandler *api.GroceryHandler,
	mealPlanHandler *api.MealPlanHandler,
	recipeHandler *api.RecipeHandler,
	featureHandler *api.FeatureHandler,
) *gin.Engine {
	router := gin.Default()

	router.Use(middleware.ErrorHandler())
	router.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"http://localhost:5173", "http://frontend:5173"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Content-Type", "Authorization", "Accept", "Origin"},
		AllowCredentials: true,
		MaxAge:           24 * time.Hour,
	}))

	// API v1 routes
	v1 := router.Group("/api/v1")

	groceryHandler.RegisterRoutes(v1)
	mealPlanHandler.RegisterRoutes(v1)
	recipeHandler.RegisterRoutes(v1)
	featureHandler.RegisterRoutes(v1)

	return router
}
