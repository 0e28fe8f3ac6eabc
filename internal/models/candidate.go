package models

import "time"

// DefaultConfidence fixed score for heuristic extractions
const DefaultConfidence = 0.75

// RawPost platform-neutral view of a social post
type RawPost struct {
	ID           string
	Caption      string
	Author       string
	Permalink    string
	LocationHint string // empty when the platform gave no location
}

// ParsedCandidate extractor output, before persistence
type ParsedCandidate struct {
	Name            string  `json:"name"`
	City            string  `json:"city"`
	State           string  `json:"state"`
	SourceHandle    string  `json:"sourceHandle"`
	PostURL         string  `json:"postUrl"`
	ConfidenceScore float64 `json:"confidenceScore"`
}

// NewCandidate unsaved candidate (no id, not verified)
type NewCandidate struct {
	ParsedCandidate
	DiscoveredFrom Platform
	DiscoveredAt   time.Time
}

// Candidate row of the candidate table; Verified is always false
type Candidate struct {
	ID              string    `json:"id"`
	Name            string    `json:"name"`
	City            string    `json:"city"`
	State           string    `json:"state"`
	SourceHandle    string    `json:"sourceHandle"`
	PostURL         string    `json:"postUrl"`
	ConfidenceScore float64   `json:"confidenceScore"`
	Verified        bool      `json:"verified"`
	DiscoveredFrom  Platform  `json:"discoveredFrom"`
	DiscoveredAt    time.Time `json:"discoveredAt"`
}
