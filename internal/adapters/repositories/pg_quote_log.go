package repositories

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"shipping-quote-service/internal/domain"
	"shipping-quote-service/internal/platform/obs"
)

// Postgres-backed implementation of the QuoteLog port. Issued quotes are
// appended for downstream margin analytics; nothing in the quoting path ever
// reads them back.
type PgQuoteLog struct{ DB *sql.DB }

func NewPgQuoteLog(db *sql.DB) *PgQuoteLog {
	return &PgQuoteLog{DB: db}
}

// Record one quote request and every quote it produced in a single
// transaction, flagging the cheapest and fastest selections.
func (l *PgQuoteLog) RecordQuoteSet(ctx context.Context, pkg domain.Package, qs domain.QuoteSet) (err error) {
	defer obs.Time(ctx, "quotelog.RecordQuoteSet")(&err)

	if l.DB == nil {
		return errors.New("quote log: DB is nil")
	}

	tx, err := l.DB.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("record quote set: begin tx: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	insertRequest := `
	INSERT INTO quote_requests
		(destination, zone, length_cm, width_cm, height_cm, weight_kg)
	VALUES ($1, $2, $3, $4, $5, $6)
	RETURNING request_id;
	`

	var requestID int64
	err = tx.QueryRowContext(
		ctx, insertRequest,
		pkg.Destination, string(qs.Zone),
		pkg.LengthCm.String(), pkg.WidthCm.String(), pkg.HeightCm.String(),
		pkg.WeightKg.String(),
	).Scan(&requestID)
	if err != nil {
		return fmt.Errorf("record quote set: insert request: %w", err)
	}

	insertQuote := `
	INSERT INTO quotes
		(request_id, carrier, chargeable_weight_kg, price, currency,
		 min_days, max_days, cheapest, fastest)
	VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9);
	`

	cheapest, _ := qs.Cheapest()
	fastest, _ := qs.Fastest()

	for _, q := range qs.ByPrice {
		_, err := tx.ExecContext(
			ctx, insertQuote,
			requestID, string(q.Carrier),
			q.ChargeableWeightKg.String(), q.Price.String(), q.Currency,
			q.Transit.MinDays, q.Transit.MaxDays,
			q.Carrier == cheapest.Carrier, q.Carrier == fastest.Carrier,
		)
		if err != nil {
			return fmt.Errorf("record quote set: insert quote for %s: %w", q.Carrier, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("record quote set: commit tx: %w", err)
	}
	return nil
}
