package main

import (
	"context"
	"log"
	"os"

	"github.com/KarmaGirafe/chicken-hot-system/internal/db"
	"github.com/KarmaGirafe/chicken-hot-system/internal/delivery"
	"github.com/KarmaGirafe/chicken-hot-system/internal/llm"
	"github.com/KarmaGirafe/chicken-hot-system/internal/menu"
	"github.com/KarmaGirafe/chicken-hot-system/internal/order"
	"github.com/KarmaGirafe/chicken-hot-system/internal/router"
	"github.com/KarmaGirafe/chicken-hot-system/internal/storage"

	"github.com/joho/godotenv"
)

func main() {

	// ───────────────────────── ENV ─────────────────────────
	if os.Getenv("APP_ENV") != "production" {
		_ = godotenv.Load()
	}

	if os.Getenv("OPENAI_API_KEY") == "" {
		log.Fatalf("❌ Missing env var: OPENAI_API_KEY")
	}
	if os.Getenv("FIREBASE_URL") == "" && os.Getenv("DATABASE_URL") == "" {
		log.Fatalf("❌ Missing env var: FIREBASE_URL (or DATABASE_URL)")
	}

	// ───────────────────────── STORE ─────────────────────────
	var repo order.Repository
	if os.Getenv("DATABASE_URL") != "" {
		pool := db.ConnectPostgres()
		defer pool.Close()
		repo = order.NewPostgresRepository(pool)
	} else {
		firebase, err := db.NewFirebaseClient()
		if err != nil {
			log.Fatal("❌ Firebase init failed:", err)
		}
		repo = order.NewFirebaseRepository(firebase)
	}

	// ───────────────────────── ARCHIVE (OPTIONAL) ─────────────────────────
	var archiver order.Archiver
	if storage.Configured() {
		r2, err := storage.NewR2Client(context.Background())
		if err != nil {
			log.Fatal("❌ R2 init failed:", err)
		}
		archiver = r2
		log.Println("✅ Transcript archive enabled")
	}

	// ───────────────────────── PIPELINE ─────────────────────────
	catalog := menu.NewCatalog()
	extractor := llm.NewOpenAIClient()
	pricer := delivery.NewPricer(delivery.NewHTTPGeocoder())
	cache := order.NewCallCache(order.DefaultDedupTTL)

	orderService := order.NewService(repo, cache, extractor, pricer, catalog, archiver)
	orderHandler := order.NewHandler(orderService)

	// ───────────────────────── ROUTER ─────────────────────────
	r := router.NewRouter(orderHandler)

	// ───────────────────────── START ─────────────────────────
	port := os.Getenv("PORT")
	if port == "" {
		port = "8000"
	}

	log.Printf("🍗 Chicken Hot order intake running at http://localhost:%s", port)
	if err := r.Run(":" + port); err != nil {
		log.Fatal("Failed to start server:", err)
	}
}
