package models

import (
	"encoding/json"
	"testing"
	"time"
)

func TestParseTimestamp(t *testing.T) {
	tests := []struct {
		in   string
		want time.Time
	}{
		{"2026-01-25T10:15:30.123Z", time.Date(2026, 1, 25, 10, 15, 30, 123000000, time.UTC)},
		{"2026-01-25T10:15:30Z", time.Date(2026, 1, 25, 10, 15, 30, 0, time.UTC)},
		{"2026-01-25T10:15:30+02:00", time.Date(2026, 1, 25, 8, 15, 30, 0, time.UTC)},
		{"2026-01-25T10:15:30", time.Date(2026, 1, 25, 10, 15, 30, 0, time.UTC)},
		{"2026-01-25T10:15", time.Date(2026, 1, 25, 10, 15, 0, 0, time.UTC)},
		{"2026-01-25", time.Date(2026, 1, 25, 0, 0, 0, 0, time.UTC)},
	}

	for _, tc := range tests {
		got, err := ParseTimestamp(tc.in)
		if err != nil {
			t.Errorf("ParseTimestamp(%q) failed: %v", tc.in, err)
			continue
		}
		if !got.Equal(tc.want) {
			t.Errorf("ParseTimestamp(%q) = %v, want %v", tc.in, got, tc.want)
		}
	}

	if _, err := ParseTimestamp("last tuesday"); err == nil {
		t.Error("expected error for free text")
	}
}

func TestStoreDecodesLegacyFields(t *testing.T) {
	var s Store
	raw := `{"id": 7, "name": "Crumbl", "address": "1 Main St", "lat": 40.7, "lng": -74.0,
		"verified": true, "verifiedSources": ["manual"], "discoveredFrom": "manual", "discoveredAt": 1769299200000}`
	if err := json.Unmarshal([]byte(raw), &s); err != nil {
		t.Fatalf("Unmarshal failed: %v", err)
	}
	if s.ID != "7" {
		t.Errorf("ID = %q, want 7", s.ID)
	}
	if s.Name != "Crumbl" || !s.Verified || len(s.VerifiedSources) != 1 {
		t.Errorf("plain fields not decoded: %+v", s)
	}
	if want := time.Date(2026, 1, 25, 0, 0, 0, 0, time.UTC); !s.DiscoveredAt.Equal(want) {
		t.Errorf("DiscoveredAt = %v, want %v", s.DiscoveredAt, want)
	}

	out, err := json.Marshal(s)
	if err != nil {
		t.Fatalf("Marshal failed: %v", err)
	}
	var back map[string]interface{}
	_ = json.Unmarshal(out, &back)
	if back["id"] != "7" || back["discoveredAt"] != "2026-01-25T00:00:00Z" {
		t.Errorf("store should re-serialize in canonical form, got %s", out)
	}
}

func TestCandidateDecodeRejectsBadTimestamp(t *testing.T) {
	var c Candidate
	if err := json.Unmarshal([]byte(`{"id":"1","discoveredAt":"soon"}`), &c); err == nil {
		t.Error("expected error for unparseable discoveredAt")
	}

	if err := json.Unmarshal([]byte(`{"id":"1","name":"x","discoveredAt":null}`), &c); err != nil {
		t.Fatalf("null discoveredAt should decode: %v", err)
	}
	if !c.DiscoveredAt.IsZero() || c.Name != "x" {
		t.Errorf("unexpected candidate: %+v", c)
	}
}
