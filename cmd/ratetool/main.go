package main

import (
	"log"
	"os"
	"shipping-quote-service/internal/adapters/rateconfig"
	"shipping-quote-service/internal/adapters/repositories"
	"shipping-quote-service/internal/config"
	"shipping-quote-service/internal/domain"
	"shipping-quote-service/internal/platform/db"
	"strings"

	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/joho/godotenv"
)

// ratetool validates a carrier rate configuration before deployment and can
// initialize the quote-log schema. Run it against a candidate config file so
// bracket gaps are caught here, not at server startup.
func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found (using environment variables)")
	}

	path := config.Get("CARRIER_CONFIG_PATH", "")

	var table domain.RateTable
	if path == "" {
		log.Println("CARRIER_CONFIG_PATH not set, checking built-in table")
		table = rateconfig.Default()
		if err := table.Validate(); err != nil {
			log.Fatalf("built-in table invalid: %v", err)
		}
	} else {
		loaded, err := rateconfig.Load(path)
		if err != nil {
			log.Fatal(err)
		}
		table = loaded
		log.Printf("Config valid path=%s", path)
	}

	printCoverage(table)

	databaseURL := os.Getenv("DATABASE_URL")
	if strings.TrimSpace(databaseURL) == "" {
		return
	}

	conn, err := db.Open(databaseURL)
	if err != nil {
		log.Fatal(err)
	}
	defer conn.Close()

	log.Println("Initializing quote log schema...")
	if err := repositories.InitSchema(conn); err != nil {
		log.Fatalf("schema initialization failed: %v", err)
	}
	log.Println("Schema ready.")
}

func printCoverage(table domain.RateTable) {
	log.Printf("Carriers configured: %d", len(table.Tariffs))

	for _, tariff := range table.Tariffs {
		zones := make([]string, 0, len(tariff.Zones))
		brackets := 0
		for _, zone := range domain.AllZones {
			zr, ok := tariff.Zones[zone]
			if !ok {
				continue
			}
			zones = append(zones, string(zone))
			brackets += len(zr.Brackets)
		}
		log.Printf(
			"carrier=%s zones=%s brackets=%d increment=%skg divisor=%s",
			tariff.Carrier, strings.Join(zones, ","), brackets,
			tariff.BillingIncrementKg, tariff.VolumetricDivisor,
		)
	}
}
