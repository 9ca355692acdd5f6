package main

import (
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/joho/godotenv"

	"github.com/devingeorge/global-sales-insights/internal/config"
	"github.com/devingeorge/global-sales-insights/internal/handlers"
	"github.com/devingeorge/global-sales-insights/internal/middleware"
	"github.com/devingeorge/global-sales-insights/internal/services"
	"github.com/devingeorge/global-sales-insights/internal/slack"
	"github.com/devingeorge/global-sales-insights/internal/store"
)

func main() {
	log.SetFlags(log.LstdFlags | log.Lshortfile)

	log.Println("🚀 Starting Global Sales Insights...")

	// Load .env file (ignore error if file doesn't exist)
	if err := godotenv.Load(); err != nil {
		log.Printf("⚠️  No .env file found or error loading it: %v", err)
	}

	cfg := config.Load()
	log.Printf("📋 Configuration loaded (Port: %s, default source: %s)", cfg.Port, cfg.DefaultDataSource)

	if cfg.SlackBotToken == "" || cfg.SlackSigningSecret == "" {
		log.Fatal("❌ SLACK_BOT_TOKEN and SLACK_SIGNING_SECRET environment variables are required")
	}
	if cfg.OpenAIAPIKey == "" {
		log.Println("⚠️  OPENAI_API_KEY not set — generated briefs will use scripted fallback content")
	}

	// Preference store backed by the JSON snapshot
	storage, err := store.NewFileStorage(cfg.DataDir)
	if err != nil {
		log.Fatalf("❌ Failed to prepare data directory %s: %v", cfg.DataDir, err)
	}
	prefs := store.NewPreferenceStore(storage, cfg.DefaultDataSource, nil)

	// Slack client and services
	client := slack.NewClient(cfg.SlackBotToken)
	canvases := services.NewCanvasService(client)
	narrative := services.NewNarrativeService(cfg.OpenAIAPIKey, cfg.OpenAIModel, cfg.OpenAIBaseURL)
	briefs := services.NewBriefService(prefs, narrative, canvases)
	delivery := services.NewDeliveryService(client)
	home := services.NewHomeService(client, prefs)

	// Handlers
	healthHandler := handlers.NewHealthHandler()
	eventsHandler := handlers.NewEventsHandler(home)
	interactivityHandler := handlers.NewInteractivityHandler(
		client, prefs, canvases, briefs, delivery, home, cfg.DefaultDataSource,
	)

	app := fiber.New(fiber.Config{
		AppName:      "Global Sales Insights v1.0",
		ReadTimeout:  30 * time.Second,
		WriteTimeout: 30 * time.Second,
	})

	app.Use(recover.New())
	app.Use(logger.New())

	app.Get("/health", healthHandler.Handle)

	slackRoutes := app.Group("/slack", middleware.SlackSignature(cfg.SlackSigningSecret))
	slackRoutes.Post("/events", eventsHandler.Handle)
	slackRoutes.Post("/interactivity", interactivityHandler.Handle)

	// Graceful shutdown
	go func() {
		sigChan := make(chan os.Signal, 1)
		signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
		sig := <-sigChan
		log.Printf("🛑 Received signal %v, shutting down...", sig)
		if err := app.Shutdown(); err != nil {
			log.Printf("❌ Error during shutdown: %v", err)
		}
	}()

	log.Printf("⚡️ Global Sales Insights app is running on port %s", cfg.Port)
	if err := app.Listen(":" + cfg.Port); err != nil {
		log.Fatalf("❌ Server error: %v", err)
	}
}
