package repositories

import (
	"database/sql"
	"errors"
	"fmt"
)

// Initialize the Postgres schema for quote logging.
func InitSchema(db *sql.DB) error {
	if db == nil {
		return errors.New("init schema: DB is nil")
	}

	tx, err := db.Begin()
	if err != nil {
		return fmt.Errorf("init schema: begin tx: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	createQuoteRequests := `
	CREATE TABLE IF NOT EXISTS quote_requests (
		request_id  BIGSERIAL PRIMARY KEY,
		created_at  TIMESTAMPTZ NOT NULL DEFAULT now(),
		destination TEXT NOT NULL,
		zone        TEXT NOT NULL,
		length_cm   NUMERIC NOT NULL,
		width_cm    NUMERIC NOT NULL,
		height_cm   NUMERIC NOT NULL,
		weight_kg   NUMERIC NOT NULL
	);
	`

	createQuotes := `
	CREATE TABLE IF NOT EXISTS quotes (
		quote_id             BIGSERIAL PRIMARY KEY,
		request_id           BIGINT NOT NULL REFERENCES quote_requests(request_id),
		carrier              TEXT NOT NULL,
		chargeable_weight_kg NUMERIC NOT NULL,
		price                NUMERIC NOT NULL,
		currency             TEXT NOT NULL,
		min_days             INT NOT NULL,
		max_days             INT NOT NULL,
		cheapest             BOOLEAN NOT NULL,
		fastest              BOOLEAN NOT NULL
	);
	`

	createIndex := `
	CREATE INDEX IF NOT EXISTS idx_quotes_request_id
	ON quotes(request_id);
	`

	statements := []string{
		createQuoteRequests,
		createQuotes,
		createIndex,
	}

	for i, stmt := range statements {
		if _, err := tx.Exec(stmt); err != nil {
			return fmt.Errorf("init schema: exec statement #%d: %w", i+1, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("init schema: commit tx: %w", err)
	}
	return nil
}
