// @title           Inventory Workflow Backend API
// @version         1.0.0
// @description     Backend API for grouping product photos, merging category presets, and saving resumable workflow batches.

// @host      localhost:8080
// @BasePath  /api/v1

package main

import (
	"context"
	"errors"
	"net/http"
	"net/url"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"inventory-workflow-backend/docs"
	"inventory-workflow-backend/internal/config"
	"inventory-workflow-backend/internal/database"
	"inventory-workflow-backend/internal/logger"
	"inventory-workflow-backend/internal/matching"
	"inventory-workflow-backend/internal/services"
	"inventory-workflow-backend/internal/supabase"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		// Logger level comes from config, so fall back to a default one here.
		if log, lerr := logger.New("development", "info"); lerr == nil {
			log.Fatal("failed to load configuration", "error", err)
		}
		os.Exit(1)
	}

	log, err := logger.New(cfg.Environment, cfg.LogLevel)
	if err != nil {
		os.Exit(1)
	}
	defer log.Sync()

	// Set Gin mode
	if cfg.Environment == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	db, err := database.Open(cfg.DatabaseDriver, cfg.DatabaseURL)
	if err != nil {
		log.Fatal("failed to open database", "driver", cfg.DatabaseDriver, "error", err)
	}
	defer db.Close()

	// Run migrations
	if err := database.NewMigrator(db, cfg.DatabaseDriver, log).Run(); err != nil {
		log.Fatal("migration failed", "error", err)
	}
	log.Info("migrations completed")

	dbClient := supabase.NewDatabaseClient(db, cfg.DatabaseDriver)

	var presetSource services.PresetSource = dbClient
	var objects services.ObjectStore
	if cfg.SupabaseEnabled() {
		storageClient, err := supabase.NewStorageClient(cfg.SupabaseURL, cfg.SupabasePublishableKey, cfg.SupabaseStorageBucket)
		if err != nil {
			log.Fatal("failed to initialize storage client", "error", err)
		}
		objects = storageClient

		if cfg.PresetSource == "postgrest" {
			supabaseClient, err := supabase.NewClient(cfg)
			if err != nil {
				log.Fatal("failed to initialize supabase client", "error", err)
			}
			presetSource = supabase.NewPresetClient(supabaseClient)
		}
	} else {
		log.Warn("supabase not configured, item files will not be deleted from storage")
	}

	matcher := matching.NewMatcher(dbClient, log.With("component", "matcher"), cfg.OrphanMatchWindow)
	workflowService := services.NewWorkflowService(dbClient, presetSource, objects, matcher, log.With("component", "workflow"))

	// Point Swagger docs at the public base URL
	if cfg.BaseURL != "" {
		baseURL, err := url.Parse(cfg.BaseURL)
		if err == nil {
			docs.SwaggerInfo.Host = baseURL.Host
			if baseURL.Scheme == "https" {
				docs.SwaggerInfo.Schemes = []string{"https", "http"}
			} else {
				docs.SwaggerInfo.Schemes = []string{"http", "https"}
			}
		}
	}

	router := newRouter(cfg, log, workflowService)

	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		log.Info("server starting", "port", cfg.Port)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal("failed to start server", "error", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.Error("server shutdown failed", "error", err)
	}
	log.Info("server stopped")
}
