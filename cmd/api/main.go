package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/platefit/platefit-v2/backend/config"
	"github.com/platefit/platefit-v2/backend/internal/api"
	"github.com/platefit/platefit-v2/backend/internal/database"
	"github.com/platefit/platefit-v2/backend/internal/router"
	"github.com/platefit/platefit-v2/backend/internal/server"
	"github.com/platefit/platefit-v2/backend/internal/service"
)

func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	db, err := database.New(cfg)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	if err := database.RunMigrations(db, "migrations"); err != nil {
		log.Fatalf("Failed to run migrations: %v", err)
	}

	redisClient, err := database.NewRedisClient(cfg)
	if err != nil {
		log.Fatalf("Failed to connect to Redis: %v", err)
	}

	// Initialize services
	featureService := service.NewFeatureService(redisClient, cfg.FeatureDefaults)
	mealPlanService := service.NewMealPlanService(db)
	recipeService := service.NewRecipeService(db)
	groceryService := service.NewGroceryService(db, featureService, mealPlanService)

	// Initialize handlers and routes
	r := router.SetupRouter(
		api.NewGroceryHandler(groceryService),
		api.NewMealPlanHandler(mealPlanService),
		api.NewRecipeHandler(recipeService),
		api.NewFeatureHandler(featureService),
	)

	srv := server.New(r, cfg.ServerHost, cfg.ServerPort)

	errChan := make(chan error, 1)
	go func() {
		log.Printf("Starting server on %s:%s", cfg.ServerHost, cfg.ServerPort)
		errChan <- srv.Start()
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-errChan:
		if err != nil {
			log.Fatalf("Server error: %v", err)
		}
	case sig := <-quit:
		log.Printf("Received signal: %v", sig)
	}

	log.Println("Shutting down server...")
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.Fatalf("Server shutdown error: %v", err)
	}
	log.Println("Server stopped")
}
