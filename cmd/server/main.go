package main // Entry point package

import (
	"log" // Logging library

	"github.com/joho/godotenv"    // .env loader for local development
	"github.com/labstack/echo/v4" // Echo web framework

	"github.com/autolight/autolight-analyser/internal/config"
	"github.com/autolight/autolight-analyser/internal/database"
	"github.com/autolight/autolight-analyser/internal/handler"
	"github.com/autolight/autolight-analyser/internal/middleware"
	"github.com/autolight/autolight-analyser/internal/queue"
	"github.com/autolight/autolight-analyser/internal/repository"
	"github.com/autolight/autolight-analyser/internal/router"
)

func main() {
	// Load .env when present; real environments set variables directly.
	_ = godotenv.Load()

	cfg := config.Load()

	db, err := database.Open(cfg.DBUser, cfg.DBPass, cfg.DBHost, cfg.DBPort, cfg.DBName)
	if err != nil {
		log.Fatalf("database: %v", err)
	}
	defer func() { _ = db.Close() }()

	// Repositories
	users := repository.NewUserRepo(db)
	tokens := repository.NewTokenRepo(db)
	catalogRepo := repository.NewCatalogRepo(db)
	cadFiles := repository.NewCADFileRepo(db)
	rooms := repository.NewRoomRepo(db)
	installations := repository.NewInstallationRepo(db)
	reports := repository.NewReportRepo(db)

	// Handlers
	authHandler := handler.NewAuthHandler(cfg, users, tokens)
	architect := handler.NewArchitectHandler(cadFiles, rooms, installations, catalogRepo, reports)
	admin := handler.NewAdminHandler(catalogRepo, installations)
	public := &handler.PublicHandler{CatalogRepo: catalogRepo}

	// Redis-backed response cache and rate limiter.  A nil client
	// disables both; the middlewares degrade to pass-through.
	rdb := config.NewRedisClient()
	if rdb == nil {
		log.Println("redis unavailable; cache and rate limiting disabled")
	}
	cacheMW := middleware.NewRedisCache(config.LoadCacheConfig(), rdb)
	rateMW := middleware.NewTokenBucket(config.LoadRateLimitConfig(), rdb)

	e := echo.New()
	router.RegisterRoutes(e)
	router.RegisterAuth(e, authHandler, cfg.JWTSecret)
	router.RegisterPublic(e, public, rateMW, cacheMW)
	router.RegisterArchitect(e, architect, cfg.JWTSecret)
	router.RegisterAdmin(e, admin, cfg.JWTSecret)

	// Report consumer runs for the lifetime of the process and handles
	// its own reconnects.
	go func() {
		if err := queue.StartReportConsumer(); err != nil {
			log.Printf("report consumer stopped: %v", err)
		}
	}()

	addr := ":" + cfg.Port
	log.Printf("listening on %s (env=%s)", addr, cfg.Env)

	if err := e.Start(addr); err != nil {
		log.Fatal(err)
	}
}
