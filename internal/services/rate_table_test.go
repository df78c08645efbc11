package services

import (
	"errors"
	"shipping-quote-service/internal/domain"
	"testing"

	"github.com/shopspring/decimal"
)

func dPtr(s string) *decimal.Decimal {
	v := decimal.RequireFromString(s)
	return &v
}

func usBracketTariff() domain.CarrierTariff {
	return domain.CarrierTariff{
		Carrier:            domain.Carrier4PX,
		VolumetricDivisor:  d("5000"),
		BillingIncrementKg: d("0.5"),
		CurrencyPrecision:  2,
		Rounding:           domain.RoundHalfUp,
		Zones: map[domain.Zone]domain.ZoneRate{
			domain.ZoneUS: {
				Transit: domain.TransitRange{MinDays: 7, MaxDays: 15},
				Brackets: []domain.RateBracket{
					{MinWeightKg: d("0"), MaxWeightKg: dPtr("2"), BasePrice: d("2.50"), PricePerKg: d("5.80")},
					{MinWeightKg: d("2"), BasePrice: d("14.10"), PricePerKg: d("5.20")},
				},
			},
		},
	}
}

func TestPriceForFirstBracket(t *testing.T) {
	// 2.50 + 5.80 × 1.5 = 11.20
	price, err := PriceFor(usBracketTariff(), domain.ZoneUS, d("1.5"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !price.Equal(d("11.20")) {
		t.Fatalf("price = %s, want 11.20", price)
	}
}

func TestPriceForBracketBoundaryFallsInUpperBracket(t *testing.T) {
	// Brackets are [min, max): exactly 2 kg prices from the second bracket.
	price, err := PriceFor(usBracketTariff(), domain.ZoneUS, d("2"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !price.Equal(d("14.10")) {
		t.Fatalf("price = %s, want 14.10", price)
	}
}

func TestPriceForUpperBracketMarginal(t *testing.T) {
	// 14.10 + 5.20 × (3 − 2) = 19.30
	price, err := PriceFor(usBracketTariff(), domain.ZoneUS, d("3"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !price.Equal(d("19.30")) {
		t.Fatalf("price = %s, want 19.30", price)
	}
}

func TestPriceForZoneNotServed(t *testing.T) {
	_, err := PriceFor(usBracketTariff(), domain.ZoneEU, d("1"))
	if err == nil {
		t.Fatal("expected error, got nil")
	}
	if !errors.Is(err, domain.ErrNotServed) {
		t.Fatalf("error = %v, want ErrNotServed", err)
	}
}

func TestPriceForOverweight(t *testing.T) {
	tariff := usBracketTariff()
	tariff.MaxChargeableKg = dPtr("2")

	_, err := PriceFor(tariff, domain.ZoneUS, d("2.5"))
	if err == nil {
		t.Fatal("expected error, got nil")
	}
	if !errors.Is(err, domain.ErrOverweight) {
		t.Fatalf("error = %v, want ErrOverweight", err)
	}

	// At exactly the limit the carrier still prices.
	if _, err := PriceFor(tariff, domain.ZoneUS, d("2")); err != nil {
		t.Fatalf("unexpected error at weight limit: %v", err)
	}
}

func TestPriceForAppliesSurcharges(t *testing.T) {
	tariff := usBracketTariff()
	zr := tariff.Zones[domain.ZoneUS]
	zr.Surcharges = []domain.Surcharge{
		{Name: "fuel", Amount: d("1.50")},
		{Name: "remote_area", Amount: d("2.00")},
	}
	tariff.Zones[domain.ZoneUS] = zr

	// 11.20 + 1.50 + 2.00 = 14.70
	price, err := PriceFor(tariff, domain.ZoneUS, d("1.5"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !price.Equal(d("14.70")) {
		t.Fatalf("price = %s, want 14.70", price)
	}
}

func TestPriceForRoundingModes(t *testing.T) {
	tariff := usBracketTariff()
	zr := tariff.Zones[domain.ZoneUS]
	zr.Brackets = []domain.RateBracket{
		{MinWeightKg: d("0"), BasePrice: d("0"), PricePerKg: d("0.125")},
	}
	tariff.Zones[domain.ZoneUS] = zr

	// Raw price 0.125: half-up gives 0.13, half-even gives 0.12.
	price, err := PriceFor(tariff, domain.ZoneUS, d("1"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !price.Equal(d("0.13")) {
		t.Fatalf("half-up price = %s, want 0.13", price)
	}

	tariff.Rounding = domain.RoundHalfEven
	price, err = PriceFor(tariff, domain.ZoneUS, d("1"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !price.Equal(d("0.12")) {
		t.Fatalf("half-even price = %s, want 0.12", price)
	}
}

func TestPriceForExactDecimalAccumulation(t *testing.T) {
	// 0.1 per kg over 30 kg must be exactly 3.00, not 2.9999… as binary
	// floats would accumulate.
	tariff := usBracketTariff()
	zr := tariff.Zones[domain.ZoneUS]
	zr.Brackets = []domain.RateBracket{
		{MinWeightKg: d("0"), BasePrice: d("0"), PricePerKg: d("0.1")},
	}
	tariff.Zones[domain.ZoneUS] = zr

	price, err := PriceFor(tariff, domain.ZoneUS, d("30"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !price.Equal(d("3.00")) {
		t.Fatalf("price = %s, want 3.00", price)
	}
}
