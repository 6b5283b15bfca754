package main

import (
	"context"
	"log"

	"github.com/joho/godotenv"

	"grocery-assistant/internal/clipper"
	"grocery-assistant/internal/config"
	"grocery-assistant/internal/llm"
	"grocery-assistant/internal/mealplan"
	"grocery-assistant/internal/metrics"
	"grocery-assistant/internal/recipe"
	"grocery-assistant/internal/retailer"
	"grocery-assistant/internal/server"
	"grocery-assistant/internal/shopping"
)

func main() {
	// .env is optional; real deployments set the environment directly.
	_ = godotenv.Load()

	cfg, err := config.NewFromEnv()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	catalog := recipe.NewStaticCatalog(recipe.SeedRecipes())
	planRepo := mealplan.NewMemoryRepository()
	planService := mealplan.NewService(catalog, planRepo)

	cartRepo := retailer.NewMemoryCartRepository()
	retailService := retailer.NewService(retailer.SeedStores(), retailer.SeedCatalog(), cartRepo, []byte(cfg.CheckoutSigningKey))

	bridge := shopping.NewBridge(planService, retailService)
	metricsStore := metrics.NewStore()

	var clip *clipper.Clipper
	if cfg.GeminiAPIKey != "" {
		geminiClient, err := llm.NewGeminiClient(context.Background(), cfg.GeminiAPIKey)
		if err != nil {
			log.Fatalf("Failed to initialize Gemini client: %v", err)
		}
		defer geminiClient.Close()
		clip = clipper.NewClipper(geminiClient, metricsStore)
	} else {
		log.Printf("GEMINI_API_KEY not set; recipe clipping disabled")
	}

	srv := server.New(catalog, planService, retailService, bridge, clip, metricsStore)

	log.Printf("API listening on http://localhost:%s", cfg.Port)
	if err := srv.Router().Run(":" + cfg.Port); err != nil {
		log.Fatalf("Server exited: %v", err)
	}
}
