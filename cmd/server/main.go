package main

import (
	"net/http"
	"os"

	"github.com/Ri4dH/EcoTrack/internal/api"
	"github.com/Ri4dH/EcoTrack/internal/config"
	"github.com/Ri4dH/EcoTrack/internal/database"
	"github.com/Ri4dH/EcoTrack/internal/handler"
	"github.com/Ri4dH/EcoTrack/internal/logger"
	"github.com/Ri4dH/EcoTrack/internal/middleware"
)

func main() {
	// Load configuration
	cfg, err := config.LoadConfig()
	if err != nil {
		logger.Error("Could not load config: %v", err)
		os.Exit(1)
	}

	// Connect to PostgreSQL
	db, err := database.ConnectPostgres(cfg)
	if err != nil {
		logger.Error("Database connection failed: %v", err)
		os.Exit(1)
	}
	defer db.Close()

	// Wire handler collaborators (estimator, routing, store)
	handler.Init(cfg, db)

	if cfg.MapsAPIKey == "" {
		logger.Warning("MAPS_API_KEY not set: distance resolution will use straight-line estimates only")
	}

	// Initialize routes
	router := api.SetupRouter()

	// Wrap router with CORS middleware
	h := middleware.CORSMiddleware(router)

	// Start server
	logger.Success("Server starting on port %s", cfg.Port)
	if err := http.ListenAndServe(":"+cfg.Port, h); err != nil {
		logger.Error("Server failed: %v", err)
		os.Exit(1)
	}
}
