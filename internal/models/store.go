package models

import (
	"time"
)

// NewWindow how long a store counts as newly discovered
const NewWindow = 7 * 24 * time.Hour

// Store published, publicly visible record
type Store struct {
	ID              string    `json:"id"`
	Name            string    `json:"name"`
	Address         string    `json:"address"`
	Lat             float64   `json:"lat"`
	Lng             float64   `json:"lng"`
	Verified        bool      `json:"verified"`
	VerifiedSources []string  `json:"verifiedSources"`
	DiscoveredFrom  Platform  `json:"discoveredFrom"`
	DiscoveredAt    time.Time `json:"discoveredAt"`
	OriginalPostURL *string   `json:"originalPostUrl,omitempty"`
	ConfidenceScore *float64  `json:"confidenceScore,omitempty"`
}

// IsVerified verified flag set and at least one verification source
func (s *Store) IsVerified() bool {
	return s.Verified && len(s.VerifiedSources) > 0
}

// IsNew 0 <= now-discoveredAt < 7 days
func (s *Store) IsNew(now time.Time) bool {
	age := now.Sub(s.DiscoveredAt)
	return age >= 0 && age < NewWindow
}

// StoreSummary public-facing fields returned after a reseed
type StoreSummary struct {
	ID      string  `json:"id"`
	Name    string  `json:"name"`
	Address string  `json:"address"`
	Lat     float64 `json:"lat"`
	Lng     float64 `json:"lng"`
}

// Summary projects the public-facing fields
func (s *Store) Summary() StoreSummary {
	return StoreSummary{ID: s.ID, Name: s.Name, Address: s.Address, Lat: s.Lat, Lng: s.Lng}
}
