// Command seed loads the sample fixture catalog into the database.  It
// is idempotent: fixtures whose symbol name already exists are skipped,
// so the command can run on every deploy.
package main

import (
	"context"
	"log"
	"time"

	"github.com/joho/godotenv"

	"github.com/autolight/autolight-analyser/internal/catalog"
	"github.com/autolight/autolight-analyser/internal/config"
	"github.com/autolight/autolight-analyser/internal/database"
	"github.com/autolight/autolight-analyser/internal/repository"
)

func main() {
	_ = godotenv.Load()

	cfg := config.Load()

	db, err := database.Open(cfg.DBUser, cfg.DBPass, cfg.DBHost, cfg.DBPort, cfg.DBName)
	if err != nil {
		log.Fatalf("database: %v", err)
	}
	defer func() { _ = db.Close() }()

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	n, err := catalog.Seed(ctx, repository.NewCatalogRepo(db))
	if err != nil {
		log.Fatalf("seed: %v", err)
	}
	log.Printf("seed complete: %d fixtures inserted", n)
}
