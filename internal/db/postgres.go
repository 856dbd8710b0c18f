package db

import (
	"context"
	"log"
	"os"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
)

func ConnectPostgres() *pgxpool.Pool {
	dsn := os.Getenv("DATABASE_URL")
	if dsn == "" {
		log.Fatal("DATABASE_URL not set")
	}

	config, err := pgxpool.ParseConfig(dsn)
	if err != nil {
		log.Fatal(err)
	}

	config.MaxConns = 10
	config.MinConns = 2
	config.MaxConnLifetime = time.Hour

	pool, err := pgxpool.NewWithConfig(context.Background(), config)
	if err != nil {
		log.Fatal(err)
	}

	if err := pool.Ping(context.Background()); err != nil {
		log.Fatal("Postgres connection failed:", err)
	}

	log.Println("✅ Connected to PostgreSQL")

	if err := initSchema(pool); err != nil {
		log.Fatal("Failed to initialize schema:", err)
	}

	return pool
}

// initSchema creates the orders table. call_id is deliberately not
// unique-indexed: dedup is an explicit existence check at small scale.
func initSchema(pool *pgxpool.Pool) error {
	ctx := context.Background()

	ordersTableSQL := `
		CREATE TABLE IF NOT EXISTS orders (
			id UUID PRIMARY KEY,
			call_id VARCHAR(255) NOT NULL,
			phone_number VARCHAR(50),
			call_type VARCHAR(20) NOT NULL,
			service_type VARCHAR(20) NOT NULL,
			items JSONB NOT NULL,
			items_summary TEXT,
			delivery_address TEXT,
			delivery JSONB NOT NULL,
			subtotal NUMERIC(10,2) NOT NULL,
			total NUMERIC(10,2) NOT NULL,
			notes TEXT,
			status VARCHAR(20) NOT NULL DEFAULT 'pending',
			raw_transcript TEXT,
			created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP
		)
	`
	if _, err := pool.Exec(ctx, ordersTableSQL); err != nil {
		return err
	}

	log.Println("✅ Schema initialized successfully")
	return nil
}
