package main

import (
	"log"
	"net/http"
	"os"
	"shipping-quote-service/internal/adapters/fx"
	"shipping-quote-service/internal/adapters/rateconfig"
	"shipping-quote-service/internal/adapters/repositories"
	"shipping-quote-service/internal/api"
	"shipping-quote-service/internal/config"
	"shipping-quote-service/internal/domain"
	"shipping-quote-service/internal/platform/db"
	"shipping-quote-service/internal/ports"
	"shipping-quote-service/internal/services"
	"strings"
	"time"

	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"
)

// main is the application composition root.
// It loads the carrier rate table, wires concrete adapters (Postgres quote
// log, Redis FX cache) behind ports, and starts the HTTP server.
func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found (using environment variables)")
	}

	port := config.Get("PORT", "8080")

	table := loadRateTable(os.Getenv("CARRIER_CONFIG_PATH"))

	// A table that fails validation must never reach request handling.
	engine, err := services.NewQuoteEngine(table)
	if err != nil {
		log.Fatal(err)
	}
	log.Printf("Rate table loaded carriers=%d zones=%d", len(table.Tariffs), len(engine.SupportedZones()))

	fxProvider := buildFXProvider(os.Getenv("REDIS_URL"))
	quoteLog := buildQuoteLog(os.Getenv("DATABASE_URL"))

	router := api.NewRouter(engine, fxProvider, quoteLog)

	log.Printf("Server listening addr=:%s", port)
	srv := &http.Server{
		Addr:              ":" + port,
		Handler:           router,
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       10 * time.Second,
		WriteTimeout:      15 * time.Second,
		IdleTimeout:       60 * time.Second,
	}
	log.Fatal(srv.ListenAndServe())
}

func loadRateTable(path string) domain.RateTable {
	if strings.TrimSpace(path) == "" {
		return rateconfig.Default()
	}

	table, err := rateconfig.Load(path)
	if err != nil {
		log.Fatal(err)
	}
	log.Printf("Rate table override loaded path=%s", path)
	return table
}

// Redis caches FX multipliers when configured; otherwise the static
// fallback-rate table serves directly.
func buildFXProvider(redisURL string) ports.FXProvider {
	static := fx.NewStaticFXProvider()
	if strings.TrimSpace(redisURL) == "" {
		return static
	}

	opts, err := redis.ParseURL(redisURL)
	if err != nil {
		log.Fatalf("invalid REDIS_URL: %v", err)
	}
	client := redis.NewClient(opts)

	return fx.NewRedisFXCache(client, static, time.Hour)
}

// Postgres quote logging is optional: without DATABASE_URL issued quotes are
// simply not recorded.
func buildQuoteLog(databaseURL string) ports.QuoteLog {
	if strings.TrimSpace(databaseURL) == "" {
		log.Println("DATABASE_URL not set, quote logging disabled")
		return ports.NoopQuoteLog{}
	}

	conn, err := db.Open(databaseURL)
	if err != nil {
		log.Fatal(err)
	}

	if err := repositories.InitSchema(conn); err != nil {
		log.Fatal(err)
	}

	return repositories.NewPgQuoteLog(conn)
}
