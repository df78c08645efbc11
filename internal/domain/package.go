package domain

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
)

// Represents the physical package submitted for quoting.
// A Package is immutable once handed to the quote engine: it is built per
// request and discarded after the QuoteSet is produced.
type Package struct {
	LengthCm    decimal.Decimal
	WidthCm     decimal.Decimal
	HeightCm    decimal.Decimal
	WeightKg    decimal.Decimal
	Destination string // ISO 3166-1 alpha-2 country code
}

// Validate checks the physical constraints a quotable package must satisfy.
// Every violation wraps ErrInvalidPackage so callers can classify with errors.Is.
func (p Package) Validate() error {
	if !p.LengthCm.IsPositive() {
		return fmt.Errorf("%w: length must be positive, got %s cm", ErrInvalidPackage, p.LengthCm)
	}
	if !p.WidthCm.IsPositive() {
		return fmt.Errorf("%w: width must be positive, got %s cm", ErrInvalidPackage, p.WidthCm)
	}
	if !p.HeightCm.IsPositive() {
		return fmt.Errorf("%w: height must be positive, got %s cm", ErrInvalidPackage, p.HeightCm)
	}
	if !p.WeightKg.IsPositive() {
		return fmt.Errorf("%w: weight must be positive, got %s kg", ErrInvalidPackage, p.WeightKg)
	}
	if strings.TrimSpace(p.Destination) == "" {
		return fmt.Errorf("%w: destination must be non-empty", ErrInvalidPackage)
	}
	return nil
}

// VolumeCm3 returns length × width × height.
func (p Package) VolumeCm3() decimal.Decimal {
	return p.LengthCm.Mul(p.WidthCm).Mul(p.HeightCm)
}
