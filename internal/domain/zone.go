package domain

// Pricing zone grouping destination countries that share one rate table.
// The set is closed: adding a zone is a code change, not configuration.
type Zone string

const (
	ZoneUS  Zone = "US"
	ZoneEU  Zone = "EU"
	ZoneUK  Zone = "UK"
	ZoneCA  Zone = "CA"
	ZoneAU  Zone = "AU"
	ZoneJP  Zone = "JP"
	ZoneSEA Zone = "SEA" // Southeast Asia
	ZoneSA  Zone = "SA"  // South America
	ZoneME  Zone = "ME"  // Middle East
	ZoneAF  Zone = "AF"  // Africa
	ZoneRU  Zone = "RU"  // Russia/CIS
)

// AllZones lists every pricing zone in display order.
var AllZones = []Zone{
	ZoneUS, ZoneEU, ZoneUK, ZoneCA, ZoneAU, ZoneJP,
	ZoneSEA, ZoneSA, ZoneME, ZoneAF, ZoneRU,
}

// IsKnown reports whether z is a member of the closed zone set.
func (z Zone) IsKnown() bool {
	for _, known := range AllZones {
		if z == known {
			return true
		}
	}
	return false
}
