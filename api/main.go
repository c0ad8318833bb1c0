package main

import (
	"context"
	"log"
	"net/http"

	"github.com/redis/go-redis/v9"

	"github.com/rogerio-castellano/storefront/internal/auth"
	"github.com/rogerio-castellano/storefront/internal/catalog"
	"github.com/rogerio-castellano/storefront/internal/config"
	"github.com/rogerio-castellano/storefront/internal/db"
	api "github.com/rogerio-castellano/storefront/internal/http"
	"github.com/rogerio-castellano/storefront/internal/http/handlers"
	rl "github.com/rogerio-castellano/storefront/internal/http/rate_limiter"
	"github.com/rogerio-castellano/storefront/internal/promo"
	"github.com/rogerio-castellano/storefront/internal/session"
	"github.com/rogerio-castellano/storefront/internal/store"
)

var ctx = context.Background()

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("❌ Could not load config: %v", err)
	}

	auth.SetSecret(cfg.JWTSecret)

	cat, err := catalog.Load(cfg.CatalogPath)
	if err != nil {
		log.Fatalf("❌ Could not load catalog: %v", err)
	}
	log.Printf("✅ Catalog loaded: %d products", cat.Len())

	promos := promo.Default()
	if cfg.PromosPath != "" {
		promos, err = promo.LoadFile(cfg.PromosPath)
		if err != nil {
			log.Fatalf("❌ Could not load promos: %v", err)
		}
	}

	var stateStore store.StateStore
	switch cfg.StorageBackend {
	case "memory":
		stateStore = store.NewInMemoryStateStore()
	case "redis":
		rdb := redis.NewClient(&redis.Options{Addr: cfg.RedisAddr})
		if err := rdb.Ping(ctx).Err(); err != nil {
			log.Fatalf("Could not connect to Redis: %v", err)
		}
		defer rdb.Close()
		stateStore = store.NewRedisStateStore(rdb, cfg.StateKeyPrefix, cfg.StateTTL)
	case "postgres":
		database, err := db.Connect(cfg.DatabaseURL)
		if err != nil {
			log.Fatal("❌ Could not connect to database:", err)
		}
		defer database.Close()
		pg := store.NewPostgresStateStore(database)
		if err := pg.EnsureSchema(ctx); err != nil {
			log.Fatalf("❌ Could not prepare database: %v", err)
		}
		stateStore = pg
	default:
		log.Fatalf("❌ Unknown storage backend %q", cfg.StorageBackend)
	}

	adminHash, err := auth.HashPassword(cfg.AdminPassword)
	if err != nil {
		log.Fatalf("❌ Could not hash admin password: %v", err)
	}

	handlers.SetCatalog(cat)
	handlers.SetPromoTable(promos)
	handlers.SetSessionManager(session.NewManager(stateStore, cfg.SaveDelay))
	handlers.SetAdminPasswordHash(adminHash)

	limiter := rl.New(cfg.RateLimit, cfg.RateBurst)
	go limiter.StartCleanupLoop()
	api.SetRateLimiter(limiter)

	r := api.NewRouter()
	log.Printf("✅ Server running on %s", cfg.Addr)
	if err := http.ListenAndServe(cfg.Addr, r); err != nil {
		log.Fatal(err)
	}
}
