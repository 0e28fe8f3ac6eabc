// Package region holds the jurisdiction filter: a continental-US bounding box
// for coordinates and the closed set of US state codes (50 states + DC).
package region

import "strings"

// Bounds inclusive coordinate box
type Bounds struct {
	LatMin float64
	LatMax float64
	LngMin float64
	LngMax float64
}

// US continental United States
var US = Bounds{
	LatMin: 24.5,
	LatMax: 49.5,
	LngMin: -125,
	LngMax: -66,
}

// Contains reports whether (lat, lng) lies inside the box, edges included
func (b Bounds) Contains(lat, lng float64) bool {
	return lat >= b.LatMin && lat <= b.LatMax && lng >= b.LngMin && lng <= b.LngMax
}

// Midpoint center of the box
func (b Bounds) Midpoint() (lat, lng float64) {
	return (b.LatMin + b.LatMax) / 2, (b.LngMin + b.LngMax) / 2
}

var stateCodes = map[string]struct{}{
	"AL": {}, "AK": {}, "AZ": {}, "AR": {}, "CA": {}, "CO": {}, "CT": {}, "DE": {}, "FL": {}, "GA": {},
	"HI": {}, "ID": {}, "IL": {}, "IN": {}, "IA": {}, "KS": {}, "KY": {}, "LA": {}, "ME": {}, "MD": {},
	"MA": {}, "MI": {}, "MN": {}, "MS": {}, "MO": {}, "MT": {}, "NE": {}, "NV": {}, "NH": {}, "NJ": {},
	"NM": {}, "NY": {}, "NC": {}, "ND": {}, "OH": {}, "OK": {}, "OR": {}, "PA": {}, "RI": {}, "SC": {},
	"SD": {}, "TN": {}, "TX": {}, "UT": {}, "VT": {}, "VA": {}, "WA": {}, "WV": {}, "WI": {}, "WY": {},
	"DC": {},
}

// IsInRegion reports whether the coordinate pair falls inside the US box
func IsInRegion(lat, lng float64) bool {
	return US.Contains(lat, lng)
}

// IsRegionCode reports whether code is a US state or DC (case-insensitive, trimmed)
func IsRegionCode(code string) bool {
	c := strings.ToUpper(strings.TrimSpace(code))
	if len(c) != 2 {
		return false
	}
	_, ok := stateCodes[c]
	return ok
}

// Codes number of valid region codes
func Codes() int {
	return len(stateCodes)
}
