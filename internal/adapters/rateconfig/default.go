// Package rateconfig loads and validates the carrier rate tables the quote
// engine runs on. Configuration is read once at startup; a structurally
// invalid table is a fatal error there, never at request time.
package rateconfig

import (
	"shipping-quote-service/internal/domain"

	"github.com/shopspring/decimal"
)

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func decPtr(s string) *decimal.Decimal {
	v := dec(s)
	return &v
}

// bracket builds a RateBracket; max == "" means unbounded.
func bracket(min, max, base, perKg string) domain.RateBracket {
	b := domain.RateBracket{
		MinWeightKg: dec(min),
		BasePrice:   dec(base),
		PricePerKg:  dec(perKg),
	}
	if max != "" {
		b.MaxWeightKg = decPtr(max)
	}
	return b
}

func transit(minDays, maxDays int) domain.TransitRange {
	return domain.TransitRange{MinDays: minDays, MaxDays: maxDays}
}

// Default returns the built-in USD rate table for the supported carriers.
//
// Economy lines (Yanwen, ChinaPost, Cainiao, UBI, JCEX) price as a single
// flat base + per-kg curve; consolidators and express carriers step the
// marginal rate down across weight brackets, mirroring published tariffs.
// Values are contract snapshots and change with carrier renegotiation, which
// is why deployments can override this table with a JSON file.
func Default() domain.RateTable {
	return domain.RateTable{Tariffs: []domain.CarrierTariff{
		{
			Carrier:            domain.Carrier4PX,
			VolumetricDivisor:  dec("5000"),
			BillingIncrementKg: dec("0.5"),
			CurrencyPrecision:  2,
			Rounding:           domain.RoundHalfUp,
			Tracking:           true,
			Zones: map[domain.Zone]domain.ZoneRate{
				domain.ZoneUS: {
					Transit: transit(7, 15),
					Brackets: []domain.RateBracket{
						bracket("0", "2", "2.50", "5.80"),
						bracket("2", "", "14.10", "5.20"),
					},
				},
				domain.ZoneEU: {
					Transit: transit(8, 18),
					Brackets: []domain.RateBracket{
						bracket("0", "2", "3.00", "6.50"),
						bracket("2", "", "16.00", "5.90"),
					},
				},
				domain.ZoneUK: {
					Transit: transit(7, 15),
					Brackets: []domain.RateBracket{
						bracket("0", "2", "2.80", "6.00"),
						bracket("2", "", "14.80", "5.40"),
					},
				},
				domain.ZoneAU: {
					Transit: transit(8, 18),
					Brackets: []domain.RateBracket{
						bracket("0", "2", "3.20", "7.00"),
						bracket("2", "", "17.20", "6.30"),
					},
				},
				domain.ZoneJP: {
					Transit: transit(5, 10),
					Brackets: []domain.RateBracket{
						bracket("0", "2", "2.00", "4.50"),
						bracket("2", "", "11.00", "4.00"),
					},
				},
				domain.ZoneSEA: {
					Transit: transit(5, 12),
					Brackets: []domain.RateBracket{
						bracket("0", "2", "1.80", "3.80"),
						bracket("2", "", "9.40", "3.40"),
					},
				},
			},
		},
		{
			Carrier:            domain.CarrierYunExpress,
			VolumetricDivisor:  dec("6000"),
			BillingIncrementKg: dec("0.1"),
			CurrencyPrecision:  2,
			Rounding:           domain.RoundHalfUp,
			Tracking:           true,
			Zones: map[domain.Zone]domain.ZoneRate{
				domain.ZoneUS: {
					Transit: transit(8, 18),
					Brackets: []domain.RateBracket{
						bracket("0", "2", "2.00", "5.20"),
						bracket("2", "", "12.40", "4.70"),
					},
				},
				domain.ZoneEU: {
					Transit: transit(10, 20),
					Brackets: []domain.RateBracket{
						bracket("0", "2", "2.50", "6.00"),
						bracket("2", "", "14.50", "5.40"),
					},
				},
				domain.ZoneUK: {
					Transit: transit(8, 16),
					Brackets: []domain.RateBracket{
						bracket("0", "2", "2.30", "5.50"),
						bracket("2", "", "13.30", "5.00"),
					},
				},
				domain.ZoneSEA: {
					Transit: transit(5, 10),
					Brackets: []domain.RateBracket{
						bracket("0", "2", "1.50", "3.20"),
						bracket("2", "", "7.90", "2.90"),
					},
				},
			},
		},
		{
			Carrier:            domain.CarrierYanwen,
			VolumetricDivisor:  dec("6000"),
			BillingIncrementKg: dec("0.1"),
			CurrencyPrecision:  2,
			Rounding:           domain.RoundHalfUp,
			Tracking:           true,
			Zones: map[domain.Zone]domain.ZoneRate{
				domain.ZoneUS: {
					Transit:  transit(10, 25),
					Brackets: []domain.RateBracket{bracket("0", "", "1.80", "4.80")},
				},
				domain.ZoneEU: {
					Transit:  transit(12, 28),
					Brackets: []domain.RateBracket{bracket("0", "", "2.20", "5.50")},
				},
			},
		},
		{
			Carrier:            domain.CarrierCainiao,
			VolumetricDivisor:  dec("6000"),
			BillingIncrementKg: dec("0.1"),
			CurrencyPrecision:  2,
			Rounding:           domain.RoundHalfUp,
			Tracking:           true,
			Zones: map[domain.Zone]domain.ZoneRate{
				domain.ZoneRU: {
					Transit:  transit(10, 30),
					Brackets: []domain.RateBracket{bracket("0", "", "1.60", "4.20")},
				},
				domain.ZoneSEA: {
					Transit:  transit(6, 12),
					Brackets: []domain.RateBracket{bracket("0", "", "1.40", "3.00")},
				},
				domain.ZoneSA: {
					Transit:  transit(20, 40),
					Brackets: []domain.RateBracket{bracket("0", "", "2.80", "6.80")},
				},
			},
		},
		{
			Carrier:            domain.CarrierDHLECommerce,
			VolumetricDivisor:  dec("5000"),
			BillingIncrementKg: dec("0.1"),
			CurrencyPrecision:  2,
			Rounding:           domain.RoundHalfUp,
			Tracking:           true,
			Zones: map[domain.Zone]domain.ZoneRate{
				domain.ZoneUS: {
					Transit:    transit(6, 12),
					Surcharges: []domain.Surcharge{{Name: "fuel", Amount: dec("1.50")}},
					Brackets: []domain.RateBracket{
						bracket("0", "2", "4.50", "7.50"),
						bracket("2", "", "19.50", "6.80"),
					},
				},
				domain.ZoneEU: {
					Transit:    transit(6, 12),
					Surcharges: []domain.Surcharge{{Name: "fuel", Amount: dec("1.50")}},
					Brackets: []domain.RateBracket{
						bracket("0", "2", "5.00", "8.00"),
						bracket("2", "", "21.00", "7.20"),
					},
				},
				domain.ZoneUK: {
					Transit:    transit(6, 10),
					Surcharges: []domain.Surcharge{{Name: "fuel", Amount: dec("1.50")}},
					Brackets: []domain.RateBracket{
						bracket("0", "2", "4.80", "7.80"),
						bracket("2", "", "20.40", "7.00"),
					},
				},
			},
		},
		{
			Carrier:            domain.CarrierUBI,
			VolumetricDivisor:  dec("6000"),
			BillingIncrementKg: dec("0.1"),
			CurrencyPrecision:  2,
			Rounding:           domain.RoundHalfUp,
			Tracking:           true,
			Zones: map[domain.Zone]domain.ZoneRate{
				domain.ZoneUS: {
					Transit:  transit(8, 16),
					Brackets: []domain.RateBracket{bracket("0", "", "2.20", "5.00")},
				},
				domain.ZoneAU: {
					Transit:  transit(6, 12),
					Brackets: []domain.RateBracket{bracket("0", "", "2.00", "4.60")},
				},
			},
		},
		{
			Carrier:            domain.CarrierChinaPost,
			VolumetricDivisor:  dec("6000"),
			BillingIncrementKg: dec("0.1"),
			CurrencyPrecision:  2,
			Rounding:           domain.RoundHalfUp,
			// ePacket small-packet line: anything heavier must ship another way.
			MaxChargeableKg: decPtr("2"),
			Tracking:        false,
			Zones: map[domain.Zone]domain.ZoneRate{
				domain.ZoneUS: {
					Transit:  transit(15, 45),
					Brackets: []domain.RateBracket{bracket("0", "", "1.50", "4.00")},
				},
				domain.ZoneEU: {
					Transit:  transit(15, 45),
					Brackets: []domain.RateBracket{bracket("0", "", "1.80", "4.50")},
				},
			},
		},
		{
			Carrier:            domain.CarrierEMS,
			VolumetricDivisor:  dec("6000"),
			BillingIncrementKg: dec("0.5"),
			CurrencyPrecision:  2,
			// EMS contracts settle with banker's rounding.
			Rounding:           domain.RoundHalfEven,
			Tracking:           true,
			InsuranceAvailable: true,
			Zones: map[domain.Zone]domain.ZoneRate{
				domain.ZoneUS: {
					Transit: transit(5, 10),
					Brackets: []domain.RateBracket{
						bracket("0", "2", "8.00", "10.00"),
						bracket("2", "", "28.00", "9.00"),
					},
				},
				domain.ZoneEU: {
					Transit: transit(5, 12),
					Brackets: []domain.RateBracket{
						bracket("0", "2", "9.00", "11.00"),
						bracket("2", "", "31.00", "10.00"),
					},
				},
				domain.ZoneJP: {
					Transit: transit(3, 7),
					Brackets: []domain.RateBracket{
						bracket("0", "2", "6.00", "8.00"),
						bracket("2", "", "22.00", "7.20"),
					},
				},
				domain.ZoneME: {
					Transit:  transit(5, 12),
					Brackets: []domain.RateBracket{bracket("0", "", "10.00", "12.00")},
				},
				domain.ZoneAF: {
					Transit:  transit(7, 15),
					Brackets: []domain.RateBracket{bracket("0", "", "12.00", "13.00")},
				},
			},
		},
		{
			Carrier:            domain.CarrierFedEx,
			VolumetricDivisor:  dec("5000"),
			BillingIncrementKg: dec("0.5"),
			CurrencyPrecision:  2,
			Rounding:           domain.RoundHalfUp,
			MaxChargeableKg:    decPtr("68"),
			Tracking:           true,
			InsuranceAvailable: true,
			Zones: map[domain.Zone]domain.ZoneRate{
				domain.ZoneUS: {
					Transit:    transit(3, 6),
					Surcharges: []domain.Surcharge{{Name: "fuel", Amount: dec("2.50")}},
					Brackets: []domain.RateBracket{
						bracket("0", "5", "22.00", "9.50"),
						bracket("5", "20", "69.50", "8.00"),
						bracket("20", "", "189.50", "6.50"),
					},
				},
				domain.ZoneEU: {
					Transit:    transit(3, 6),
					Surcharges: []domain.Surcharge{{Name: "fuel", Amount: dec("2.50")}},
					Brackets: []domain.RateBracket{
						bracket("0", "5", "24.00", "10.50"),
						bracket("5", "20", "76.50", "9.00"),
						bracket("20", "", "211.50", "7.50"),
					},
				},
				domain.ZoneUK: {
					Transit:    transit(3, 6),
					Surcharges: []domain.Surcharge{{Name: "fuel", Amount: dec("2.50")}},
					Brackets: []domain.RateBracket{
						bracket("0", "5", "23.00", "10.00"),
						bracket("5", "20", "73.00", "8.50"),
						bracket("20", "", "200.50", "7.00"),
					},
				},
				domain.ZoneCA: {
					Transit:    transit(3, 6),
					Surcharges: []domain.Surcharge{{Name: "fuel", Amount: dec("2.50")}},
					Brackets: []domain.RateBracket{
						bracket("0", "5", "21.00", "9.00"),
						bracket("5", "20", "66.00", "7.60"),
						bracket("20", "", "180.00", "6.20"),
					},
				},
				domain.ZoneAU: {
					Transit:    transit(4, 7),
					Surcharges: []domain.Surcharge{{Name: "fuel", Amount: dec("2.50")}},
					Brackets: []domain.RateBracket{
						bracket("0", "5", "25.00", "11.00"),
						bracket("5", "20", "80.00", "9.40"),
						bracket("20", "", "221.00", "7.80"),
					},
				},
				domain.ZoneJP: {
					Transit:    transit(2, 4),
					Surcharges: []domain.Surcharge{{Name: "fuel", Amount: dec("2.50")}},
					Brackets: []domain.RateBracket{
						bracket("0", "5", "18.00", "8.00"),
						bracket("5", "20", "58.00", "6.80"),
						bracket("20", "", "160.00", "5.60"),
					},
				},
				domain.ZoneME: {
					Transit: transit(4, 8),
					Surcharges: []domain.Surcharge{
						{Name: "fuel", Amount: dec("2.50")},
						{Name: "remote_area", Amount: dec("4.00")},
					},
					Brackets: []domain.RateBracket{
						bracket("0", "5", "26.00", "12.00"),
						bracket("5", "20", "86.00", "10.20"),
						bracket("20", "", "239.00", "8.40"),
					},
				},
			},
		},
		{
			Carrier:            domain.CarrierUPS,
			VolumetricDivisor:  dec("5000"),
			BillingIncrementKg: dec("0.5"),
			CurrencyPrecision:  2,
			Rounding:           domain.RoundHalfUp,
			MaxChargeableKg:    decPtr("70"),
			Tracking:           true,
			InsuranceAvailable: true,
			Zones: map[domain.Zone]domain.ZoneRate{
				domain.ZoneUS: {
					Transit:    transit(3, 7),
					Surcharges: []domain.Surcharge{{Name: "fuel", Amount: dec("2.00")}},
					Brackets: []domain.RateBracket{
						bracket("0", "5", "20.00", "9.00"),
						bracket("5", "", "65.00", "7.60"),
					},
				},
				domain.ZoneEU: {
					Transit:    transit(3, 7),
					Surcharges: []domain.Surcharge{{Name: "fuel", Amount: dec("2.00")}},
					Brackets: []domain.RateBracket{
						bracket("0", "5", "23.00", "10.00"),
						bracket("5", "", "73.00", "8.50"),
					},
				},
				domain.ZoneCA: {
					Transit:    transit(3, 6),
					Surcharges: []domain.Surcharge{{Name: "fuel", Amount: dec("2.00")}},
					Brackets: []domain.RateBracket{
						bracket("0", "5", "19.00", "8.50"),
						bracket("5", "", "61.50", "7.20"),
					},
				},
			},
		},
		{
			Carrier:            domain.CarrierSFExpress,
			VolumetricDivisor:  dec("6000"),
			BillingIncrementKg: dec("0.5"),
			CurrencyPrecision:  2,
			Rounding:           domain.RoundHalfUp,
			Tracking:           true,
			InsuranceAvailable: true,
			Zones: map[domain.Zone]domain.ZoneRate{
				domain.ZoneUS: {
					Transit: transit(4, 8),
					Brackets: []domain.RateBracket{
						bracket("0", "2", "9.00", "8.50"),
						bracket("2", "", "26.00", "7.70"),
					},
				},
				domain.ZoneJP: {
					Transit: transit(2, 5),
					Brackets: []domain.RateBracket{
						bracket("0", "2", "5.00", "6.00"),
						bracket("2", "", "17.00", "5.40"),
					},
				},
				domain.ZoneSEA: {
					Transit: transit(2, 6),
					Brackets: []domain.RateBracket{
						bracket("0", "2", "4.00", "5.00"),
						bracket("2", "", "14.00", "4.50"),
					},
				},
			},
		},
		{
			Carrier:            domain.CarrierJCEX,
			VolumetricDivisor:  dec("6000"),
			BillingIncrementKg: dec("0.1"),
			CurrencyPrecision:  2,
			Rounding:           domain.RoundHalfUp,
			Tracking:           true,
			Zones: map[domain.Zone]domain.ZoneRate{
				domain.ZoneJP: {
					Transit:  transit(3, 8),
					Brackets: []domain.RateBracket{bracket("0", "", "3.00", "5.00")},
				},
				domain.ZoneSEA: {
					Transit:  transit(4, 9),
					Brackets: []domain.RateBracket{bracket("0", "", "2.50", "4.20")},
				},
			},
		},
	}}
}
