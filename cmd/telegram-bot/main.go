package main

import (
	"context"
	"log"
	"net/http"

	"github.com/joho/godotenv"

	"grocery-assistant/internal/clipper"
	"grocery-assistant/internal/config"
	"grocery-assistant/internal/llm"
	"grocery-assistant/internal/metrics"
	"grocery-assistant/internal/recipe"
	"grocery-assistant/internal/retailer"
	"grocery-assistant/internal/telegram"
)

func main() {
	_ = godotenv.Load()

	cfg, err := config.NewFromEnv()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}
	if err := cfg.RequireTelegram(); err != nil {
		log.Fatalf("Invalid configuration: %v", err)
	}

	catalog := recipe.NewStaticCatalog(recipe.SeedRecipes())
	cartRepo := retailer.NewMemoryCartRepository()
	retailService := retailer.NewService(retailer.SeedStores(), retailer.SeedCatalog(), cartRepo, []byte(cfg.CheckoutSigningKey))

	var clip *clipper.Clipper
	if cfg.GeminiAPIKey != "" {
		geminiClient, err := llm.NewGeminiClient(context.Background(), cfg.GeminiAPIKey)
		if err != nil {
			log.Fatalf("Failed to initialize Gemini client: %v", err)
		}
		defer geminiClient.Close()
		clip = clipper.NewClipper(geminiClient, metrics.NewStore())
	}

	bot, err := telegram.NewBot(cfg, catalog, retailService, clip)
	if err != nil {
		log.Fatalf("Failed to initialize bot: %v", err)
	}
	bot.RegisterHandlers()

	log.Printf("Bot listening on :%s", cfg.Port)
	if err := http.ListenAndServe(":"+cfg.Port, nil); err != nil {
		log.Fatalf("Server exited: %v", err)
	}
}
