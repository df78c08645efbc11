package services

import (
	"errors"
	"fmt"
	"shipping-quote-service/internal/domain"
	"slices"
)

// QuoteCurrency is the currency every tariff is denominated in. Display
// conversion to other currencies happens outside the engine via an FX
// multiplier.
const QuoteCurrency = "USD"

// QuoteEngine evaluates every configured carrier tariff against a package
// and produces a ranked QuoteSet.
//
// The engine is stateless across calls: its only state is the immutable rate
// table captured at construction, so concurrent Quote calls need no
// coordination. Reloading configuration means building a new engine and
// swapping the pointer, never mutating the table in place.
type QuoteEngine struct {
	table domain.RateTable
}

// NewQuoteEngine validates the rate table and builds an engine over it.
// Validation failures here are configuration errors and should be fatal at
// startup; request-time code assumes a structurally sound table.
func NewQuoteEngine(table domain.RateTable) (*QuoteEngine, error) {
	if err := table.Validate(); err != nil {
		return nil, fmt.Errorf("new quote engine: %w", err)
	}

	// Fix evaluation order up front so ranking tie-breaks never depend on
	// configuration file ordering.
	tariffs := slices.Clone(table.Tariffs)
	slices.SortFunc(tariffs, func(a, b domain.CarrierTariff) int {
		return domain.CanonicalRank(a.Carrier) - domain.CanonicalRank(b.Carrier)
	})

	return &QuoteEngine{table: domain.RateTable{Tariffs: tariffs}}, nil
}

// Quote produces the full ranked QuoteSet for a package.
//
// UnsupportedDestination and InvalidPackage propagate to the caller; a
// carrier that does not serve the zone (or rejects the weight) is skipped.
// Zero surviving carriers yield an empty QuoteSet, which is a legitimate
// business outcome rather than an error.
func (e *QuoteEngine) Quote(pkg domain.Package) (domain.QuoteSet, error) {
	if err := pkg.Validate(); err != nil {
		return domain.QuoteSet{}, fmt.Errorf("quote: %w", err)
	}

	zone, err := ResolveZone(pkg.Destination)
	if err != nil {
		return domain.QuoteSet{}, fmt.Errorf("quote: %w", err)
	}

	quotes := make([]domain.Quote, 0, len(e.table.Tariffs))
	for _, tariff := range e.table.Tariffs {
		// Each carrier rates the same package with its own divisor and
		// increment, so chargeable weight is computed per carrier.
		chargeable, err := RateWeight(pkg, tariff.VolumetricDivisor, tariff.BillingIncrementKg)
		if err != nil {
			return domain.QuoteSet{}, fmt.Errorf("quote: carrier %s: %w", tariff.Carrier, err)
		}

		price, err := PriceFor(tariff, zone, chargeable)
		if errors.Is(err, domain.ErrNotServed) || errors.Is(err, domain.ErrOverweight) {
			continue
		}
		if err != nil {
			return domain.QuoteSet{}, fmt.Errorf("quote: %w", err)
		}

		quotes = append(quotes, domain.Quote{
			Carrier:            tariff.Carrier,
			Zone:               zone,
			ChargeableWeightKg: chargeable,
			Price:              price,
			Currency:           QuoteCurrency,
			Transit:            tariff.Zones[zone].Transit,
			Tracking:           tariff.Tracking,
			InsuranceAvailable: tariff.InsuranceAvailable,
		})
	}

	byPrice := slices.Clone(quotes)
	slices.SortFunc(byPrice, compareCheapest)

	bySpeed := slices.Clone(quotes)
	slices.SortFunc(bySpeed, compareFastest)

	return domain.QuoteSet{Zone: zone, ByPrice: byPrice, BySpeed: bySpeed}, nil
}

// AvailableCarriers lists carriers whose tariff covers the destination's
// zone, in canonical order. The weight-independent companion to Quote.
func (e *QuoteEngine) AvailableCarriers(destinationCode string) ([]domain.Carrier, error) {
	zone, err := ResolveZone(destinationCode)
	if err != nil {
		return nil, fmt.Errorf("available carriers: %w", err)
	}

	carriers := make([]domain.Carrier, 0, len(e.table.Tariffs))
	for _, tariff := range e.table.Tariffs {
		if _, ok := tariff.Zones[zone]; ok {
			carriers = append(carriers, tariff.Carrier)
		}
	}
	return carriers, nil
}

// SupportedZones lists every zone covered by at least one carrier, in the
// fixed zone display order.
func (e *QuoteEngine) SupportedZones() []domain.Zone {
	covered := make(map[domain.Zone]struct{})
	for _, tariff := range e.table.Tariffs {
		for zone := range tariff.Zones {
			covered[zone] = struct{}{}
		}
	}

	zones := make([]domain.Zone, 0, len(covered))
	for _, zone := range domain.AllZones {
		if _, ok := covered[zone]; ok {
			zones = append(zones, zone)
		}
	}
	return zones
}

// Cheapest ordering: price, then speed, then canonical carrier order.
func compareCheapest(a, b domain.Quote) int {
	if c := a.Price.Cmp(b.Price); c != 0 {
		return c
	}
	if a.Transit.MinDays != b.Transit.MinDays {
		return a.Transit.MinDays - b.Transit.MinDays
	}
	return domain.CanonicalRank(a.Carrier) - domain.CanonicalRank(b.Carrier)
}

// Fastest ordering: speed, then price, then canonical carrier order.
func compareFastest(a, b domain.Quote) int {
	if a.Transit.MinDays != b.Transit.MinDays {
		return a.Transit.MinDays - b.Transit.MinDays
	}
	if c := a.Price.Cmp(b.Price); c != 0 {
		return c
	}
	return domain.CanonicalRank(a.Carrier) - domain.CanonicalRank(b.Carrier)
}
