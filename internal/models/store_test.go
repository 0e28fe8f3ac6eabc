package models

import (
	"testing"
	"time"
)

func TestStoreIsNew(t *testing.T) {
	now := time.Date(2026, 2, 1, 12, 0, 0, 0, time.UTC)

	tests := []struct {
		name         string
		discoveredAt time.Time
		want         bool
	}{
		{"just now", now, true},
		{"six days ago", now.Add(-6 * 24 * time.Hour), true},
		{"exactly seven days", now.Add(-NewWindow), false},
		{"a month ago", now.AddDate(0, -1, 0), false},
		{"in the future", now.Add(time.Hour), false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			s := Store{DiscoveredAt: tc.discoveredAt}
			if got := s.IsNew(now); got != tc.want {
				t.Errorf("IsNew = %v, want %v", got, tc.want)
			}
		})
	}
}

func TestStoreIsVerified(t *testing.T) {
	if (&Store{Verified: true}).IsVerified() {
		t.Error("verified without sources must not count as verified")
	}
	if (&Store{VerifiedSources: []string{"tiktok: @a"}}).IsVerified() {
		t.Error("sources without flag must not count as verified")
	}
	if !(&Store{Verified: true, VerifiedSources: []string{"tiktok: @a"}}).IsVerified() {
		t.Error("expected verified")
	}
}

func TestParseDiscoveryPlatform(t *testing.T) {
	if p, ok := ParseDiscoveryPlatform("tiktok"); !ok || p != PlatformTikTok {
		t.Errorf("expected tiktok, got %q %v", p, ok)
	}
	if p, ok := ParseDiscoveryPlatform(" instagram "); !ok || p != PlatformInstagram {
		t.Errorf("expected instagram, got %q %v", p, ok)
	}
	if _, ok := ParseDiscoveryPlatform("manual"); ok {
		t.Error("manual is an origin tag, not a discovery platform")
	}
	if _, ok := ParseDiscoveryPlatform("TikTok"); ok {
		t.Error("platform tags are case-sensitive")
	}
}

func TestSeedStoresAreVerified(t *testing.T) {
	seeds := SeedStores()
	if len(seeds) != 3 {
		t.Fatalf("expected 3 seed stores, got %d", len(seeds))
	}
	for _, s := range seeds {
		if !s.IsVerified() {
			t.Errorf("seed %q should be verified", s.Name)
		}
		if s.DiscoveredFrom != PlatformManual {
			t.Errorf("seed %q should be manual, got %s", s.Name, s.DiscoveredFrom)
		}
	}
}
