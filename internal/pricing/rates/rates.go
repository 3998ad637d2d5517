// Package rates holds the static pricing seed data: the per-ZIP baseline
// price-per-square-foot table and the county fallback multipliers.
// Data is fixed at build time; runtime adjustments go through the
// zip_overrides store instead.
package rates

import "strings"

// DefaultPricePerSqft is the fallback $/sqft when a ZIP has no seed rate and
// no override.
const DefaultPricePerSqft = 220.0

// Prince George's County market comps, $/sqft by ZIP.
var zipPricePerSqft = map[string]float64{
	"20706": 255, "20707": 260, "20708": 245, "20710": 240, "20712": 270,
	"20715": 250, "20716": 255, "20720": 265, "20721": 270, "20722": 245,
	"20735": 250, "20737": 255, "20740": 275, "20742": 280, "20743": 235,
	"20744": 245, "20745": 250, "20746": 240, "20747": 238, "20748": 242,
	"20769": 260, "20770": 265, "20771": 270, "20772": 255, "20774": 268,
	"20781": 248, "20782": 252, "20783": 258, "20784": 245, "20785": 240,
}

// Maryland county multipliers applied to DefaultPricePerSqft when the ZIP is
// unknown. Keys are stored normalized (see normalizeCounty).
var countyMultipliers = map[string]float64{
	"prince george's": 1.00,
	"calvert":         0.95,
	"st. mary's":      0.92,
	"charles":         0.96,
	"anne arundel":    1.18,
	"montgomery":      1.45,
	"howard":          1.30,
}

// BaseRate returns the seed $/sqft for a ZIP, if present.
func BaseRate(zip string) (float64, bool) {
	rate, ok := zipPricePerSqft[strings.TrimSpace(zip)]
	return rate, ok
}

// CountyMultiplier returns the multiplier for a county name, or 1.0 when the
// county is unknown or empty. Matching is case-insensitive and tolerates the
// curly apostrophe some clients send.
func CountyMultiplier(county string) float64 {
	if mult, ok := countyMultipliers[normalizeCounty(county)]; ok {
		return mult
	}
	return 1.0
}

// SeedTable returns a copy of the full seed ZIP table.
func SeedTable() map[string]float64 {
	table := make(map[string]float64, len(zipPricePerSqft))
	for zip, rate := range zipPricePerSqft {
		table[zip] = rate
	}
	return table
}

func normalizeCounty(county string) string {
	normalized := strings.ToLower(strings.TrimSpace(county))
	return strings.ReplaceAll(normalized, "’", "'")
}
