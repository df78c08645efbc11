package services

import (
	"fmt"
	"shipping-quote-service/internal/domain"

	"github.com/shopspring/decimal"
)

// PriceFor prices a chargeable weight against one carrier's tariff for a zone.
//
// Returns ErrNotServed when the carrier has no rates for the zone and
// ErrOverweight when the weight exceeds the carrier's limit; the quote engine
// filters both silently. Bracket selection assumes the load-time validated
// invariant that brackets are contiguous over [0, ∞).
//
// All arithmetic is exact decimal. The final price is rounded exactly once,
// to the carrier's currency precision with the carrier's rounding mode, after
// surcharges are applied.
func PriceFor(
	tariff domain.CarrierTariff,
	zone domain.Zone,
	chargeableKg decimal.Decimal,
) (decimal.Decimal, error) {
	zoneRate, ok := tariff.Zones[zone]
	if !ok {
		return decimal.Decimal{}, fmt.Errorf(
			"price: carrier %s: %w: zone %s", tariff.Carrier, domain.ErrNotServed, zone,
		)
	}

	if tariff.MaxChargeableKg != nil && chargeableKg.GreaterThan(*tariff.MaxChargeableKg) {
		return decimal.Decimal{}, fmt.Errorf(
			"price: carrier %s: %w: %s kg > %s kg",
			tariff.Carrier, domain.ErrOverweight, chargeableKg, tariff.MaxChargeableKg,
		)
	}

	bracket, err := selectBracket(zoneRate.Brackets, chargeableKg)
	if err != nil {
		return decimal.Decimal{}, fmt.Errorf("price: carrier %s zone %s: %w", tariff.Carrier, zone, err)
	}

	price := bracket.BasePrice.Add(
		bracket.PricePerKg.Mul(chargeableKg.Sub(bracket.MinWeightKg)),
	)
	for _, s := range zoneRate.Surcharges {
		price = price.Add(s.Amount)
	}

	return RoundPrice(price, tariff.CurrencyPrecision, tariff.Rounding), nil
}

func selectBracket(brackets []domain.RateBracket, w decimal.Decimal) (domain.RateBracket, error) {
	for _, b := range brackets {
		if b.Contains(w) {
			return b, nil
		}
	}
	// Unreachable with a validated table; negative weights are rejected upstream.
	return domain.RateBracket{}, fmt.Errorf("no bracket contains weight %s kg", w)
}

// RoundPrice rounds a monetary amount to the given number of decimal places
// using the carrier's contracted rounding mode.
func RoundPrice(p decimal.Decimal, places int32, mode domain.RoundingMode) decimal.Decimal {
	if mode == domain.RoundHalfEven {
		return p.RoundBank(places)
	}
	// decimal.Round is half away from zero, which is half-up for the
	// non-negative amounts this engine produces.
	return p.Round(places)
}
