package domain

import "github.com/shopspring/decimal"

// Quote is one carrier's priced, timed offer for shipping a package to a
// destination. Quotes are produced fresh per request and never persisted by
// the engine itself.
type Quote struct {
	Carrier            Carrier
	Zone               Zone
	ChargeableWeightKg decimal.Decimal
	Price              decimal.Decimal
	Currency           string
	Transit            TransitRange
	Tracking           bool
	InsuranceAvailable bool
}

// QuoteSet holds all quotes produced for one request, pre-ranked both ways.
// An empty set is a valid outcome: no carrier covers the destination.
//
// ByPrice orders by ascending price, ties broken by ascending MinDays, then
// canonical carrier order. BySpeed orders by ascending MinDays, ties broken
// by ascending price, then canonical carrier order. Both orderings are fully
// deterministic.
type QuoteSet struct {
	Zone    Zone
	ByPrice []Quote
	BySpeed []Quote
}

// Empty reports whether no carrier produced a quote.
func (qs QuoteSet) Empty() bool {
	return len(qs.ByPrice) == 0
}

// Cheapest returns the lowest-price quote, if any.
func (qs QuoteSet) Cheapest() (Quote, bool) {
	if qs.Empty() {
		return Quote{}, false
	}
	return qs.ByPrice[0], true
}

// Fastest returns the quote with the lowest declared MinDays, if any.
func (qs QuoteSet) Fastest() (Quote, bool) {
	if qs.Empty() {
		return Quote{}, false
	}
	return qs.BySpeed[0], true
}
