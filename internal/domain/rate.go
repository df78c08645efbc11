package domain

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// RoundingMode selects how a carrier rounds the final price to its
// contracted currency precision. Real carrier contracts vary, so the mode is
// configuration, not a constant.
type RoundingMode string

const (
	RoundHalfUp   RoundingMode = "half-up"
	RoundHalfEven RoundingMode = "half-even"
)

// RateBracket prices one weight range within a (carrier, zone) pair.
// Price for a chargeable weight w inside the bracket is
// BasePrice + PricePerKg × (w − MinWeightKg).
//
// Brackets for a (carrier, zone) are contiguous and cover [0, ∞): the first
// starts at 0, each next starts where the previous ends, and the last is
// unbounded (MaxWeightKg == nil). RateTable.Validate enforces this at load
// time so pricing never has to handle gaps.
type RateBracket struct {
	MinWeightKg decimal.Decimal
	MaxWeightKg *decimal.Decimal // nil means unbounded
	BasePrice   decimal.Decimal
	PricePerKg  decimal.Decimal
}

// Contains reports whether w falls in [MinWeightKg, MaxWeightKg).
func (b RateBracket) Contains(w decimal.Decimal) bool {
	if w.LessThan(b.MinWeightKg) {
		return false
	}
	return b.MaxWeightKg == nil || w.LessThan(*b.MaxWeightKg)
}

// Surcharge is a flat per-shipment addition (fuel, remote area, ...) applied
// before the final price rounding.
type Surcharge struct {
	Name   string
	Amount decimal.Decimal
}

// TransitRange is a carrier's declared door-to-door estimate in days.
type TransitRange struct {
	MinDays int
	MaxDays int
}

// ZoneRate is one carrier's pricing for a single zone.
type ZoneRate struct {
	Brackets   []RateBracket
	Transit    TransitRange
	Surcharges []Surcharge
}

// CarrierTariff is the complete, immutable pricing configuration for one
// carrier: which zones it serves, how it derives chargeable weight, and how
// it rounds money.
type CarrierTariff struct {
	Carrier            Carrier
	VolumetricDivisor  decimal.Decimal // cm³ per kg, commonly 5000 or 6000
	BillingIncrementKg decimal.Decimal // chargeable weight granularity, e.g. 0.5 or 0.1
	CurrencyPrecision  int32           // decimal places of the final price
	Rounding           RoundingMode
	MaxChargeableKg    *decimal.Decimal // nil means no carrier-level limit
	Tracking           bool
	InsuranceAvailable bool
	Zones              map[Zone]ZoneRate
}

// RateTable is the process-wide carrier configuration, loaded once at
// startup and never mutated. Reloads replace the whole table.
type RateTable struct {
	Tariffs []CarrierTariff
}

// Validate checks every structural invariant pricing relies on.
// A failure here is fatal at configuration load; request-time code assumes
// a validated table.
func (rt RateTable) Validate() error {
	if len(rt.Tariffs) == 0 {
		return fmt.Errorf("rate table: no carriers configured")
	}

	seen := make(map[Carrier]struct{}, len(rt.Tariffs))
	for _, t := range rt.Tariffs {
		if _, dup := seen[t.Carrier]; dup {
			return fmt.Errorf("rate table: duplicate carrier %q", t.Carrier)
		}
		seen[t.Carrier] = struct{}{}

		if err := t.Validate(); err != nil {
			return fmt.Errorf("rate table: carrier %q: %w", t.Carrier, err)
		}
	}
	return nil
}

// Validate checks one carrier's configuration.
func (t CarrierTariff) Validate() error {
	if !t.Carrier.IsKnown() {
		return fmt.Errorf("unknown carrier identity %q", t.Carrier)
	}
	if !t.VolumetricDivisor.IsPositive() {
		return fmt.Errorf("volumetric divisor must be positive, got %s", t.VolumetricDivisor)
	}
	if !t.BillingIncrementKg.IsPositive() {
		return fmt.Errorf("billing increment must be positive, got %s", t.BillingIncrementKg)
	}
	if t.CurrencyPrecision < 0 {
		return fmt.Errorf("currency precision must be >= 0, got %d", t.CurrencyPrecision)
	}
	switch t.Rounding {
	case RoundHalfUp, RoundHalfEven:
	default:
		return fmt.Errorf("unknown rounding mode %q", t.Rounding)
	}
	if t.MaxChargeableKg != nil && !t.MaxChargeableKg.IsPositive() {
		return fmt.Errorf("max chargeable weight must be positive, got %s", t.MaxChargeableKg)
	}
	if len(t.Zones) == 0 {
		return fmt.Errorf("no zones configured")
	}

	for zone, zr := range t.Zones {
		if !zone.IsKnown() {
			return fmt.Errorf("unknown zone %q", zone)
		}
		if err := zr.Validate(); err != nil {
			return fmt.Errorf("zone %s: %w", zone, err)
		}
	}
	return nil
}

// Validate checks bracket contiguity/coverage and transit sanity for one zone.
func (zr ZoneRate) Validate() error {
	if zr.Transit.MinDays <= 0 || zr.Transit.MaxDays < zr.Transit.MinDays {
		return fmt.Errorf(
			"transit range must satisfy 0 < min <= max, got %d-%d",
			zr.Transit.MinDays, zr.Transit.MaxDays,
		)
	}

	if len(zr.Brackets) == 0 {
		return fmt.Errorf("no rate brackets")
	}
	if !zr.Brackets[0].MinWeightKg.IsZero() {
		return fmt.Errorf("first bracket must start at 0, starts at %s", zr.Brackets[0].MinWeightKg)
	}

	for i, b := range zr.Brackets {
		if b.MinWeightKg.IsNegative() {
			return fmt.Errorf("bracket #%d: negative min weight %s", i+1, b.MinWeightKg)
		}
		if b.BasePrice.IsNegative() {
			return fmt.Errorf("bracket #%d: negative base price %s", i+1, b.BasePrice)
		}
		if b.PricePerKg.IsNegative() {
			return fmt.Errorf("bracket #%d: negative per-kg price %s", i+1, b.PricePerKg)
		}

		last := i == len(zr.Brackets)-1
		if last {
			if b.MaxWeightKg != nil {
				return fmt.Errorf("last bracket must be unbounded, ends at %s", b.MaxWeightKg)
			}
			continue
		}
		if b.MaxWeightKg == nil {
			return fmt.Errorf("bracket #%d: only the last bracket may be unbounded", i+1)
		}
		if !b.MaxWeightKg.GreaterThan(b.MinWeightKg) {
			return fmt.Errorf(
				"bracket #%d: max weight %s must exceed min weight %s",
				i+1, b.MaxWeightKg, b.MinWeightKg,
			)
		}
		if !zr.Brackets[i+1].MinWeightKg.Equal(*b.MaxWeightKg) {
			return fmt.Errorf(
				"bracket #%d ends at %s but bracket #%d starts at %s (gap or overlap)",
				i+1, b.MaxWeightKg, i+2, zr.Brackets[i+1].MinWeightKg,
			)
		}
	}

	for i, s := range zr.Surcharges {
		if s.Name == "" {
			return fmt.Errorf("surcharge #%d: empty name", i+1)
		}
		if s.Amount.IsNegative() {
			return fmt.Errorf("surcharge %q: negative amount %s", s.Name, s.Amount)
		}
	}
	return nil
}
