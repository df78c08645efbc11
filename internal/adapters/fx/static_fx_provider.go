// Package fx provides currency-multiplier adapters behind the FXProvider
// port. Rates convert from USD, the currency all tariffs are denominated in.
package fx

import (
	"context"
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
)

// Fallback USD multipliers, refreshed with releases. A deployment wanting
// live rates plugs a different provider behind the same port.
var staticRates = map[string]decimal.Decimal{
	"USD": decimal.RequireFromString("1.0"),
	"CNY": decimal.RequireFromString("7.25"),
	"EUR": decimal.RequireFromString("0.92"),
	"GBP": decimal.RequireFromString("0.79"),
	"JPY": decimal.RequireFromString("149.5"),
	"CAD": decimal.RequireFromString("1.36"),
	"AUD": decimal.RequireFromString("1.54"),
	"HKD": decimal.RequireFromString("7.82"),
	"MXN": decimal.RequireFromString("17.15"),
	"BRL": decimal.RequireFromString("4.97"),
}

// StaticFXProvider serves multipliers from the built-in fallback table.
type StaticFXProvider struct{}

func NewStaticFXProvider() *StaticFXProvider {
	return &StaticFXProvider{}
}

func (p *StaticFXProvider) Multiplier(ctx context.Context, currency string) (decimal.Decimal, error) {
	cur := strings.ToUpper(strings.TrimSpace(currency))
	rate, ok := staticRates[cur]
	if !ok {
		return decimal.Decimal{}, fmt.Errorf("fx multiplier: unknown currency %q", currency)
	}
	return rate, nil
}
