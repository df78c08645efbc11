package services

import (
	"errors"
	"shipping-quote-service/internal/adapters/rateconfig"
	"shipping-quote-service/internal/domain"
	"testing"
)

func mustEngine(t *testing.T, table domain.RateTable) *QuoteEngine {
	t.Helper()
	engine, err := NewQuoteEngine(table)
	if err != nil {
		t.Fatalf("NewQuoteEngine failed: %v", err)
	}
	return engine
}

func flatTariff(carrier domain.Carrier, zone domain.Zone, base, perKg string, minDays, maxDays int) domain.CarrierTariff {
	return domain.CarrierTariff{
		Carrier:            carrier,
		VolumetricDivisor:  d("5000"),
		BillingIncrementKg: d("0.5"),
		CurrencyPrecision:  2,
		Rounding:           domain.RoundHalfUp,
		Tracking:           true,
		Zones: map[domain.Zone]domain.ZoneRate{
			zone: {
				Transit:  domain.TransitRange{MinDays: minDays, MaxDays: maxDays},
				Brackets: []domain.RateBracket{{MinWeightKg: d("0"), BasePrice: d(base), PricePerKg: d(perKg)}},
			},
		},
	}
}

func TestQuoteEngineScenarioUS(t *testing.T) {
	engine := mustEngine(t, rateconfig.Default())

	// 30×20×15 cm at 2.0 kg: volumetric is 1.8 kg under divisor 5000, so the
	// actual weight wins and rounds to 2.0 kg at a 0.5 kg increment.
	pkg := domain.Package{
		LengthCm: d("30"), WidthCm: d("20"), HeightCm: d("15"),
		WeightKg: d("2.0"), Destination: "US",
	}

	qs, err := engine.Quote(pkg)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if qs.Zone != domain.ZoneUS {
		t.Fatalf("zone = %s, want US", qs.Zone)
	}
	if qs.Empty() {
		t.Fatal("expected quotes for US, got none")
	}

	var fourPX *domain.Quote
	for i := range qs.ByPrice {
		if qs.ByPrice[i].Carrier == domain.Carrier4PX {
			fourPX = &qs.ByPrice[i]
		}
	}
	if fourPX == nil {
		t.Fatal("expected a 4PX quote for US")
	}
	if !fourPX.ChargeableWeightKg.Equal(d("2.0")) {
		t.Errorf("4PX chargeable weight = %s, want 2.0", fourPX.ChargeableWeightKg)
	}
	// 2.0 kg sits in the [2, ∞) bracket: price is its base, 14.10.
	if !fourPX.Price.Equal(d("14.10")) {
		t.Errorf("4PX price = %s, want 14.10", fourPX.Price)
	}

	cheapest, ok := qs.Cheapest()
	if !ok {
		t.Fatal("expected a cheapest quote")
	}
	if cheapest.Carrier != domain.CarrierChinaPost {
		t.Errorf("cheapest carrier = %s, want ChinaPost", cheapest.Carrier)
	}
	if !cheapest.Price.Equal(d("9.50")) {
		t.Errorf("cheapest price = %s, want 9.50", cheapest.Price)
	}

	fastest, ok := qs.Fastest()
	if !ok {
		t.Fatal("expected a fastest quote")
	}
	// FedEx and UPS both declare 3-day minimum to the US; UPS is cheaper.
	if fastest.Carrier != domain.CarrierUPS {
		t.Errorf("fastest carrier = %s, want UPS", fastest.Carrier)
	}
}

func TestQuoteEngineExtremalProperties(t *testing.T) {
	engine := mustEngine(t, rateconfig.Default())

	pkg := domain.Package{
		LengthCm: d("25"), WidthCm: d("18"), HeightCm: d("10"),
		WeightKg: d("1.2"), Destination: "DE",
	}

	qs, err := engine.Quote(pkg)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if qs.Empty() {
		t.Fatal("expected quotes for DE")
	}

	cheapest, _ := qs.Cheapest()
	fastest, _ := qs.Fastest()

	for _, q := range qs.ByPrice {
		if cheapest.Price.GreaterThan(q.Price) {
			t.Errorf("cheapest %s > %s quote %s", cheapest.Price, q.Carrier, q.Price)
		}
		if fastest.Transit.MinDays > q.Transit.MinDays {
			t.Errorf("fastest min_days %d > %s min_days %d", fastest.Transit.MinDays, q.Carrier, q.Transit.MinDays)
		}
		if q.ChargeableWeightKg.LessThan(pkg.WeightKg) {
			t.Errorf("%s chargeable %s < actual %s", q.Carrier, q.ChargeableWeightKg, pkg.WeightKg)
		}
		if !q.Price.IsPositive() {
			t.Errorf("%s price %s is not positive", q.Carrier, q.Price)
		}
	}
}

func TestQuoteEngineMonotonicPricing(t *testing.T) {
	table := rateconfig.Default()
	engine := mustEngine(t, table)

	pkg := domain.Package{
		LengthCm: d("20"), WidthCm: d("15"), HeightCm: d("10"),
		WeightKg: d("3.7"), Destination: "US",
	}

	qs, err := engine.Quote(pkg)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	// Every quote must price at or above the carrier's weight-0 base for the
	// zone: brackets only add marginal cost on top.
	baseFor := make(map[domain.Carrier]string)
	for _, tariff := range table.Tariffs {
		if zr, ok := tariff.Zones[domain.ZoneUS]; ok {
			baseFor[tariff.Carrier] = zr.Brackets[0].BasePrice.String()
		}
	}

	for _, q := range qs.ByPrice {
		base, ok := baseFor[q.Carrier]
		if !ok {
			t.Errorf("quote from carrier %s without a US tariff", q.Carrier)
			continue
		}
		if q.Price.LessThan(d(base)) {
			t.Errorf("%s price %s below zone base %s", q.Carrier, q.Price, base)
		}
	}
}

func TestQuoteEngineUnsupportedDestination(t *testing.T) {
	engine := mustEngine(t, rateconfig.Default())

	pkg := domain.Package{
		LengthCm: d("30"), WidthCm: d("20"), HeightCm: d("15"),
		WeightKg: d("2.0"), Destination: "ZZ",
	}

	_, err := engine.Quote(pkg)
	if err == nil {
		t.Fatal("expected error, got nil")
	}
	if !errors.Is(err, domain.ErrUnsupportedDestination) {
		t.Fatalf("error = %v, want ErrUnsupportedDestination", err)
	}
}

func TestQuoteEngineInvalidPackage(t *testing.T) {
	engine := mustEngine(t, rateconfig.Default())

	pkg := domain.Package{
		LengthCm: d("30"), WidthCm: d("20"), HeightCm: d("15"),
		WeightKg: d("0"), Destination: "US",
	}

	_, err := engine.Quote(pkg)
	if err == nil {
		t.Fatal("expected error, got nil")
	}
	if !errors.Is(err, domain.ErrInvalidPackage) {
		t.Fatalf("error = %v, want ErrInvalidPackage", err)
	}
}

func TestQuoteEngineEmptyQuoteSet(t *testing.T) {
	// The only configured carrier serves EU; a US destination resolves fine
	// but yields zero quotes, which is a valid outcome.
	table := domain.RateTable{Tariffs: []domain.CarrierTariff{
		flatTariff(domain.CarrierYanwen, domain.ZoneEU, "2.20", "5.50", 12, 28),
	}}
	engine := mustEngine(t, table)

	pkg := domain.Package{
		LengthCm: d("10"), WidthCm: d("10"), HeightCm: d("10"),
		WeightKg: d("1"), Destination: "US",
	}

	qs, err := engine.Quote(pkg)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !qs.Empty() {
		t.Fatalf("expected empty quote set, got %d quotes", len(qs.ByPrice))
	}
	if _, ok := qs.Cheapest(); ok {
		t.Error("Cheapest() on empty set reported ok")
	}
	if _, ok := qs.Fastest(); ok {
		t.Error("Fastest() on empty set reported ok")
	}
}

func TestQuoteEngineTieBreakDeterminism(t *testing.T) {
	// Identical price and identical transit: the canonical carrier order
	// decides, and the decision must not vary across calls.
	table := domain.RateTable{Tariffs: []domain.CarrierTariff{
		flatTariff(domain.CarrierYanwen, domain.ZoneEU, "12.00", "0", 5, 9),
		flatTariff(domain.CarrierYunExpress, domain.ZoneEU, "12.00", "0", 5, 9),
	}}
	engine := mustEngine(t, table)

	pkg := domain.Package{
		LengthCm: d("10"), WidthCm: d("10"), HeightCm: d("10"),
		WeightKg: d("1"), Destination: "FR",
	}

	for i := 0; i < 5; i++ {
		qs, err := engine.Quote(pkg)
		if err != nil {
			t.Fatalf("run %d: unexpected error: %v", i+1, err)
		}
		if len(qs.ByPrice) != 2 {
			t.Fatalf("run %d: got %d quotes, want 2", i+1, len(qs.ByPrice))
		}

		if qs.ByPrice[0].Carrier != domain.CarrierYunExpress {
			t.Fatalf("run %d: ByPrice[0] = %s, want YunExpress (canonical order)", i+1, qs.ByPrice[0].Carrier)
		}
		if qs.BySpeed[0].Carrier != domain.CarrierYunExpress {
			t.Fatalf("run %d: BySpeed[0] = %s, want YunExpress (canonical order)", i+1, qs.BySpeed[0].Carrier)
		}

		cheapest, _ := qs.Cheapest()
		fastest, _ := qs.Fastest()
		if cheapest.Carrier != domain.CarrierYunExpress || fastest.Carrier != domain.CarrierYunExpress {
			t.Fatalf("run %d: selections not deterministic: cheapest=%s fastest=%s", i+1, cheapest.Carrier, fastest.Carrier)
		}
	}
}

func TestQuoteEngineSkipsOverweightCarrier(t *testing.T) {
	engine := mustEngine(t, rateconfig.Default())

	// 5 kg exceeds ChinaPost's 2 kg small-packet limit; the carrier is
	// skipped, not an error.
	pkg := domain.Package{
		LengthCm: d("30"), WidthCm: d("20"), HeightCm: d("15"),
		WeightKg: d("5"), Destination: "US",
	}

	qs, err := engine.Quote(pkg)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	for _, q := range qs.ByPrice {
		if q.Carrier == domain.CarrierChinaPost {
			t.Fatal("ChinaPost quoted above its weight limit")
		}
	}

	var has4PX bool
	for _, q := range qs.ByPrice {
		if q.Carrier == domain.Carrier4PX {
			has4PX = true
		}
	}
	if !has4PX {
		t.Fatal("expected 4PX to still quote the 5 kg package")
	}
}

func TestNewQuoteEngineRejectsBracketGap(t *testing.T) {
	tariff := flatTariff(domain.Carrier4PX, domain.ZoneUS, "2.50", "5.80", 7, 15)
	zr := tariff.Zones[domain.ZoneUS]
	zr.Brackets = []domain.RateBracket{
		{MinWeightKg: d("0"), MaxWeightKg: dPtr("2"), BasePrice: d("2.50"), PricePerKg: d("5.80")},
		{MinWeightKg: d("3"), BasePrice: d("14.10"), PricePerKg: d("5.20")}, // gap between 2 and 3
	}
	tariff.Zones[domain.ZoneUS] = zr

	_, err := NewQuoteEngine(domain.RateTable{Tariffs: []domain.CarrierTariff{tariff}})
	if err == nil {
		t.Fatal("expected validation error for bracket gap, got nil")
	}
}

func TestAvailableCarriers(t *testing.T) {
	engine := mustEngine(t, rateconfig.Default())

	carriers, err := engine.AvailableCarriers("us")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(carriers) == 0 {
		t.Fatal("expected carriers for US")
	}
	if carriers[0] != domain.Carrier4PX {
		t.Errorf("carriers[0] = %s, want 4PX (canonical order)", carriers[0])
	}

	for i := 1; i < len(carriers); i++ {
		if domain.CanonicalRank(carriers[i-1]) >= domain.CanonicalRank(carriers[i]) {
			t.Errorf("carriers not in canonical order at #%d: %s before %s", i, carriers[i-1], carriers[i])
		}
	}

	if _, err := engine.AvailableCarriers("ZZ"); !errors.Is(err, domain.ErrUnsupportedDestination) {
		t.Errorf("error = %v, want ErrUnsupportedDestination", err)
	}
}

func TestSupportedZonesCoversAllZones(t *testing.T) {
	engine := mustEngine(t, rateconfig.Default())

	zones := engine.SupportedZones()
	if len(zones) != len(domain.AllZones) {
		t.Fatalf("got %d zones, want %d", len(zones), len(domain.AllZones))
	}
	for i, zone := range zones {
		if zone != domain.AllZones[i] {
			t.Errorf("zones[%d] = %s, want %s", i, zone, domain.AllZones[i])
		}
	}
}
