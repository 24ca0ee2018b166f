package main

import (
	"context"
	"flag"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"log/slog"

	"github.com/joho/godotenv"

	"github.com/meridianlaw/cms/api"
	dbfs "github.com/meridianlaw/cms/db"
	"github.com/meridianlaw/cms/internal/audit"
	"github.com/meridianlaw/cms/internal/auth"
	"github.com/meridianlaw/cms/internal/config"
	"github.com/meridianlaw/cms/internal/db"
	"github.com/meridianlaw/cms/internal/store"
)

var (
	version   = "dev"
	buildTime = "unknown"
)

func main() {
	var configPath = flag.String("config", "", "Path to config YAML file")
	flag.Parse()

	// best effort; a missing .env is not an error
	_ = godotenv.Load()

	cfg, err := config.LoadConfig(*configPath)
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	api.SetLogger(logger)

	log.Printf("Starting CMS server version %s (built at %s)", version, buildTime)

	ctx := context.Background()

	st, err := store.Open(cfg.DataDir, logger)
	if err != nil {
		log.Fatalf("Failed to open store: %v", err)
	}

	// seed the first admin account so the panel is reachable on a fresh
	// deployment
	hash, err := auth.HashPassword(cfg.AdminPassword)
	if err != nil {
		log.Fatalf("Failed to hash default admin password: %v", err)
	}
	if err := st.EnsureAdmin(ctx, cfg.AdminEmail, hash, cfg.AdminName); err != nil {
		log.Fatalf("Failed to seed admin account: %v", err)
	}

	auditDB, err := db.New(ctx, cfg.AuditDBPath)
	if err != nil {
		log.Fatalf("Failed to open audit DB: %v", err)
	}
	if err := db.Migrate(ctx, auditDB, dbfs.Migrations); err != nil {
		log.Fatalf("Failed to migrate audit DB: %v", err)
	}
	auditLog := audit.New(auditDB, logger)

	handler := api.SetupRoutes(cfg, version, buildTime, st, auditLog)

	// Create HTTP server
	server := &http.Server{
		Addr:         cfg.Addr,
		Handler:      handler,
		ReadTimeout:  cfg.APITimeout,
		WriteTimeout: cfg.APITimeout,
		IdleTimeout:  60 * time.Second,
	}

	// Start server in a goroutine
	go func() {
		log.Printf("Server starting on %s", cfg.Addr)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Server failed to start: %v", err)
		}
	}()

	// Wait for interrupt signal to gracefully shutdown the server
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Println("Shutting down server...")

	// Give outstanding requests 30 seconds to complete
	ctx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		log.Fatalf("Server forced to shutdown: %v", err)
	}

	if err := auditDB.Close(); err != nil {
		log.Printf("Error closing audit DB: %v", err)
	}

	log.Println("Server exited")
}
