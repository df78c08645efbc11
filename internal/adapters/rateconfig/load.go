package rateconfig

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"
	"shipping-quote-service/internal/domain"

	"github.com/shopspring/decimal"
)

// JSON wire form of a rate table. Decimal fields accept both JSON strings
// and numbers; strings are preferred in config files so rates survive
// editor round-trips without float mangling.
type tableFile struct {
	Carriers []tariffJSON `json:"carriers"`
}

type tariffJSON struct {
	Carrier            string                  `json:"carrier"`
	VolumetricDivisor  decimal.Decimal         `json:"volumetric_divisor"`
	BillingIncrementKg decimal.Decimal         `json:"billing_increment_kg"`
	CurrencyPrecision  int32                   `json:"currency_precision"`
	Rounding           string                  `json:"rounding"`
	MaxChargeableKg    *decimal.Decimal        `json:"max_chargeable_kg,omitempty"`
	Tracking           bool                    `json:"tracking"`
	InsuranceAvailable bool                    `json:"insurance_available"`
	Zones              map[string]zoneRateJSON `json:"zones"`
}

type zoneRateJSON struct {
	Transit    transitJSON     `json:"transit"`
	Surcharges []surchargeJSON `json:"surcharges,omitempty"`
	Brackets   []bracketJSON   `json:"brackets"`
}

type transitJSON struct {
	MinDays int `json:"min_days"`
	MaxDays int `json:"max_days"`
}

type surchargeJSON struct {
	Name   string          `json:"name"`
	Amount decimal.Decimal `json:"amount"`
}

type bracketJSON struct {
	MinKg      decimal.Decimal  `json:"min_kg"`
	MaxKg      *decimal.Decimal `json:"max_kg,omitempty"`
	BasePrice  decimal.Decimal  `json:"base_price"`
	PricePerKg decimal.Decimal  `json:"price_per_kg"`
}

// Load reads and validates a rate table from a JSON file. Any structural
// violation (unknown carrier or zone, bracket gap or overlap, bad rounding
// mode) fails the load; the caller should treat that as fatal at startup.
func Load(path string) (domain.RateTable, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return domain.RateTable{}, fmt.Errorf("load rate config: read %q: %w", path, err)
	}

	table, err := FromJSON(raw)
	if err != nil {
		return domain.RateTable{}, fmt.Errorf("load rate config: %q: %w", path, err)
	}
	return table, nil
}

// FromJSON decodes and validates a rate table from raw JSON bytes.
func FromJSON(raw []byte) (domain.RateTable, error) {
	dec := json.NewDecoder(bytes.NewReader(raw))
	dec.DisallowUnknownFields()

	var file tableFile
	if err := dec.Decode(&file); err != nil {
		return domain.RateTable{}, fmt.Errorf("decode rate config: %w", err)
	}

	table := domain.RateTable{Tariffs: make([]domain.CarrierTariff, 0, len(file.Carriers))}
	for _, tj := range file.Carriers {
		tariff := domain.CarrierTariff{
			Carrier:            domain.Carrier(tj.Carrier),
			VolumetricDivisor:  tj.VolumetricDivisor,
			BillingIncrementKg: tj.BillingIncrementKg,
			CurrencyPrecision:  tj.CurrencyPrecision,
			Rounding:           domain.RoundingMode(tj.Rounding),
			MaxChargeableKg:    tj.MaxChargeableKg,
			Tracking:           tj.Tracking,
			InsuranceAvailable: tj.InsuranceAvailable,
			Zones:              make(map[domain.Zone]domain.ZoneRate, len(tj.Zones)),
		}

		for zoneName, zj := range tj.Zones {
			brackets := make([]domain.RateBracket, 0, len(zj.Brackets))
			for _, bj := range zj.Brackets {
				brackets = append(brackets, domain.RateBracket{
					MinWeightKg: bj.MinKg,
					MaxWeightKg: bj.MaxKg,
					BasePrice:   bj.BasePrice,
					PricePerKg:  bj.PricePerKg,
				})
			}

			surcharges := make([]domain.Surcharge, 0, len(zj.Surcharges))
			for _, sj := range zj.Surcharges {
				surcharges = append(surcharges, domain.Surcharge{Name: sj.Name, Amount: sj.Amount})
			}

			tariff.Zones[domain.Zone(zoneName)] = domain.ZoneRate{
				Transit: domain.TransitRange{
					MinDays: zj.Transit.MinDays,
					MaxDays: zj.Transit.MaxDays,
				},
				Surcharges: surcharges,
				Brackets:   brackets,
			}
		}

		table.Tariffs = append(table.Tariffs, tariff)
	}

	if err := table.Validate(); err != nil {
		return domain.RateTable{}, fmt.Errorf("validate rate config: %w", err)
	}
	return table, nil
}
