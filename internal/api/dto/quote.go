package dto

import "github.com/shopspring/decimal"

// Decimal fields are carried as shopspring decimals: they accept JSON
// numbers or strings on the way in and marshal as strings on the way out,
// keeping money and weights exact end to end.

type QuoteRequest struct {
	LengthCm    decimal.Decimal `json:"length_cm"`
	WidthCm     decimal.Decimal `json:"width_cm"`
	HeightCm    decimal.Decimal `json:"height_cm"`
	WeightKg    decimal.Decimal `json:"weight_kg"`
	Destination string          `json:"destination"`
	Currency    string          `json:"currency"` // optional display currency, default USD
}

type QuoteResponse struct {
	Carrier            string          `json:"carrier"`
	Zone               string          `json:"zone"`
	ChargeableWeightKg decimal.Decimal `json:"chargeable_weight_kg"`
	Price              decimal.Decimal `json:"price"`
	Currency           string          `json:"currency"`
	MinDays            int             `json:"min_days"`
	MaxDays            int             `json:"max_days"`
	Tracking           bool            `json:"tracking"`
	InsuranceAvailable bool            `json:"insurance_available"`
}

type QuoteSetResponse struct {
	Zone     string          `json:"zone"`
	Currency string          `json:"currency"`
	Quotes   []QuoteResponse `json:"quotes"` // cheapest first
	Cheapest *QuoteResponse  `json:"cheapest,omitempty"`
	Fastest  *QuoteResponse  `json:"fastest,omitempty"`
}

type CarriersResponse struct {
	Destination string   `json:"destination"`
	Zone        string   `json:"zone"`
	Carriers    []string `json:"carriers"`
}

type ZonesResponse struct {
	Zones []string `json:"zones"`
}
