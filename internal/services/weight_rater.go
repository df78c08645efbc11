package services

import (
	"errors"
	"fmt"
	"shipping-quote-service/internal/domain"

	"github.com/shopspring/decimal"
)

// RateWeight derives the carrier-chargeable weight for a package.
//
// Volumetric weight is L×W×H / divisor (cm³ per kg). The chargeable weight
// is the greater of actual and volumetric weight, then ceiling-rounded to
// the carrier's billing increment: carriers never bill below their
// contracted granularity, and rounding down would under-charge.
//
// Pure and deterministic. Dimension or weight violations return
// ErrInvalidPackage (wrapped).
func RateWeight(
	pkg domain.Package,
	volumetricDivisor decimal.Decimal,
	billingIncrementKg decimal.Decimal,
) (decimal.Decimal, error) {
	if err := pkg.Validate(); err != nil {
		return decimal.Decimal{}, fmt.Errorf("rate weight: %w", err)
	}
	if !volumetricDivisor.IsPositive() {
		return decimal.Decimal{}, errors.New("rate weight: volumetric divisor must be positive")
	}
	if !billingIncrementKg.IsPositive() {
		return decimal.Decimal{}, errors.New("rate weight: billing increment must be positive")
	}

	volumetric := pkg.VolumeCm3().Div(volumetricDivisor)

	chargeable := pkg.WeightKg
	if volumetric.GreaterThan(chargeable) {
		chargeable = volumetric
	}

	return ceilToIncrement(chargeable, billingIncrementKg), nil
}

// ceilToIncrement rounds w up to the nearest multiple of inc.
// Exact multiples are returned unchanged, which makes the rounding
// idempotent. Mod on decimals is exact, so no binary-float drift can push a
// boundary weight into the wrong increment.
func ceilToIncrement(w, inc decimal.Decimal) decimal.Decimal {
	rem := w.Mod(inc)
	if rem.IsZero() {
		return w
	}
	return w.Sub(rem).Add(inc)
}
