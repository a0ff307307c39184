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

	"github.com/peopleops/attrition/internal/config"
	"github.com/peopleops/attrition/internal/db"
	"github.com/peopleops/attrition/internal/scoring"
	"github.com/peopleops/attrition/internal/server"
	"github.com/peopleops/attrition/internal/services"

	"github.com/joho/godotenv"
)

// Default admin account, re-seeded on every startup if absent.
const (
	defaultAdminUser     = "admin"
	defaultAdminPassword = "admin123"
)

var migrateOnlyFlag = flag.Bool("migrate-only", false, "Create the DB schema and exit")

func main() {
	flag.Parse()
	_ = godotenv.Load()
	cfg := config.Load()

	dbConn, err := db.ConnectAndMigrate(cfg.DatabasePath)
	if err != nil {
		log.Fatalf("database setup failed: %v", err)
	}
	if *migrateOnlyFlag {
		log.Println("schema created; exiting as requested")
		return
	}

	// Idempotent bootstrap: Register never overwrites an existing account.
	creds := services.NewCredentialService(dbConn)
	if err := creds.Register(defaultAdminUser, defaultAdminPassword, "admin"); err != nil {
		log.Fatalf("seed admin failed: %v", err)
	}

	// Missing or inconsistent model artifacts are fatal; the app must not
	// come up half-started without a scorer.
	model, err := scoring.Load(cfg.ModelPath, cfg.FeaturesPath)
	if err != nil {
		log.Fatalf("load model artifacts: %v", err)
	}

	log.Printf("Starting server env=%s port=%s model=%s", cfg.Env, cfg.Port, cfg.ModelPath)
	srv := &http.Server{Addr: ":" + cfg.Port, Handler: server.New(dbConn, model, cfg)}

	go func() {
		log.Printf("Server listening on %s", srv.Addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("server error: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Println("Shutdown signal received")
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.Printf("Error during shutdown: %v", err)
	}
	log.Println("Server gracefully stopped")
}
