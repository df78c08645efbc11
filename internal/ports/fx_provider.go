package ports

import (
	"context"

	"github.com/shopspring/decimal"
)

// Port: external currency-conversion service.
//
// Quotes are priced in USD; presentation layers that want another display
// currency multiply by the rate returned here. The engine itself never
// converts currency.
type FXProvider interface {
	// Multiplier returns the factor converting a USD amount into the given
	// ISO 4217 currency.
	Multiplier(ctx context.Context, currency string) (decimal.Decimal, error)
}
