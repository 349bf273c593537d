package main

import (
	"log/slog"
	"os"

	"github.com/sk25649/pdf-api-landing-page/internal/api"
	"github.com/sk25649/pdf-api-landing-page/internal/config"
	"github.com/sk25649/pdf-api-landing-page/internal/pkg/supabase"
	"github.com/sk25649/pdf-api-landing-page/internal/render"
	"github.com/sk25649/pdf-api-landing-page/pkg/database"
)

func main() {
	// Load configuration
	cfg, err := config.LoadConfig()
	if err != nil {
		slog.Error("Invalid configuration", "error", err)
		os.Exit(1)
	}

	// Initialize database clients
	db, err := database.NewClients(cfg.Database.URL, cfg.Redis.Addr)
	if err != nil {
		slog.Error("Failed to initialize database clients", "error", err)
		os.Exit(1)
	}
	defer db.DB.Close()
	slog.Info("✅ Connected to databases")

	if err := db.CreateTables(); err != nil {
		slog.Error("Failed to bootstrap tables", "error", err)
		os.Exit(1)
	}

	// Initialize auth client
	auth, err := supabase.NewClient(cfg.Supabase.URL, cfg.Supabase.ServiceKey)
	if err != nil {
		slog.Error("Failed to initialize auth client", "error", err)
		os.Exit(1)
	}
	slog.Info("✅ Connected to auth provider")

	// Rendering API client
	renderer := render.NewHTTPClient(cfg.Render.BaseURL, cfg.Render.APIKey)

	// Create and start server
	server := api.NewServer(cfg, db, renderer, auth)
	if err := server.Start(); err != nil {
		slog.Error("Server error", "error", err)
		os.Exit(1)
	}
}
