package services

import (
	"fmt"
	"shipping-quote-service/internal/domain"
	"strings"
)

// Static ISO 3166-1 alpha-2 → pricing zone mapping.
// Lookup is exact match only; destinations outside this map are unsupported,
// never defaulted to a fallback zone.
var countryZones = map[string]domain.Zone{
	"US": domain.ZoneUS, "MX": domain.ZoneUS,
	"CA": domain.ZoneCA,
	"GB": domain.ZoneUK,
	"DE": domain.ZoneEU, "FR": domain.ZoneEU, "IT": domain.ZoneEU,
	"ES": domain.ZoneEU, "NL": domain.ZoneEU, "BE": domain.ZoneEU,
	"PL": domain.ZoneEU, "SE": domain.ZoneEU, "AT": domain.ZoneEU,
	"PT": domain.ZoneEU, "IE": domain.ZoneEU,
	"AU": domain.ZoneAU, "NZ": domain.ZoneAU,
	"JP": domain.ZoneJP, "KR": domain.ZoneJP,
	"SG": domain.ZoneSEA, "MY": domain.ZoneSEA, "TH": domain.ZoneSEA,
	"ID": domain.ZoneSEA, "PH": domain.ZoneSEA, "VN": domain.ZoneSEA,
	"BR": domain.ZoneSA, "AR": domain.ZoneSA, "CL": domain.ZoneSA,
	"CO": domain.ZoneSA,
	"AE": domain.ZoneME, "SA": domain.ZoneME, "IL": domain.ZoneME,
	"TR": domain.ZoneME,
	"RU": domain.ZoneRU, "UA": domain.ZoneRU, "KZ": domain.ZoneRU,
	"ZA": domain.ZoneAF, "NG": domain.ZoneAF, "KE": domain.ZoneAF,
	"EG": domain.ZoneAF,
}

// ResolveZone maps a destination country code to its pricing zone.
// Codes are trimmed and matched case-insensitively. Unmapped codes return
// ErrUnsupportedDestination; callers must treat that as a hard stop.
func ResolveZone(destinationCode string) (domain.Zone, error) {
	code := strings.ToUpper(strings.TrimSpace(destinationCode))
	zone, ok := countryZones[code]
	if !ok {
		return "", fmt.Errorf("resolve zone: %w: %q", domain.ErrUnsupportedDestination, destinationCode)
	}
	return zone, nil
}

// SupportedCountries returns every destination code the resolver recognizes.
func SupportedCountries() []string {
	codes := make([]string, 0, len(countryZones))
	for code := range countryZones {
		codes = append(codes, code)
	}
	return codes
}
