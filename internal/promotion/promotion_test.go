package promotion

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/ggorockee/cookiemap/internal/apperr"
	"github.com/ggorockee/cookiemap/internal/candidates"
	"github.com/ggorockee/cookiemap/internal/models"
	"github.com/ggorockee/cookiemap/internal/storage"
	"github.com/ggorockee/cookiemap/internal/stores"
	"github.com/ggorockee/cookiemap/internal/telemetry"
)

var discoveredAt = time.Date(2026, 2, 1, 9, 30, 0, 0, time.UTC)

func setup(t *testing.T, batch ...models.NewCandidate) (*Service, *candidates.Table, *stores.Table) {
	t.Helper()
	ctx := context.Background()

	candidateTable := candidates.New(storage.NewMemoryBackend(candidates.TableName))
	storeTable := stores.New(storage.NewMemoryBackend(stores.TableName))

	if _, err := storeTable.ReplaceAll(ctx, models.SeedStores()); err != nil {
		t.Fatalf("seed failed: %v", err)
	}
	if _, err := candidateTable.Append(ctx, batch); err != nil {
		t.Fatalf("append failed: %v", err)
	}

	return NewService(candidateTable, storeTable, telemetry.NewNoop("cookiemap-test")), candidateTable, storeTable
}

func candidate(name, city, state string) models.NewCandidate {
	return models.NewCandidate{
		ParsedCandidate: models.ParsedCandidate{
			Name:            name,
			City:            city,
			State:           state,
			SourceHandle:    "@cookiehunter",
			PostURL:         "https://www.tiktok.com/@cookiehunter/video/1",
			ConfidenceScore: models.DefaultConfidence,
		},
		DiscoveredFrom: models.PlatformTikTok,
		DiscoveredAt:   discoveredAt,
	}
}

func TestPromoteWithoutOverrides(t *testing.T) {
	ctx := context.Background()
	svc, candidateTable, storeTable := setup(t, candidate("Grace Street", "New York", "NY"))

	store, err := svc.Promote(ctx, "1", nil)
	if err != nil {
		t.Fatalf("Promote failed: %v", err)
	}

	if store.ID != "4" {
		t.Errorf("expected id 4 after three seed stores, got %s", store.ID)
	}
	if !store.Verified {
		t.Error("promoted store must be verified")
	}
	if len(store.VerifiedSources) != 1 || store.VerifiedSources[0] != "tiktok: @cookiehunter" {
		t.Errorf("unexpected verified sources %v", store.VerifiedSources)
	}
	if store.Address != "New York, NY, USA" {
		t.Errorf("unexpected address %q", store.Address)
	}
	if store.Lat != 37 || store.Lng != -95.5 {
		t.Errorf("expected midpoint (37, -95.5), got (%v, %v)", store.Lat, store.Lng)
	}
	if store.DiscoveredFrom != models.PlatformTikTok || !store.DiscoveredAt.Equal(discoveredAt) {
		t.Errorf("origin not preserved: %s %v", store.DiscoveredFrom, store.DiscoveredAt)
	}
	if store.OriginalPostURL == nil || *store.OriginalPostURL != "https://www.tiktok.com/@cookiehunter/video/1" {
		t.Errorf("post url not carried over: %v", store.OriginalPostURL)
	}
	if store.ConfidenceScore == nil || *store.ConfidenceScore != 0.75 {
		t.Errorf("confidence not carried over: %v", store.ConfidenceScore)
	}

	visible, _ := storeTable.GetVerifiedAndInRegion(ctx)
	if len(visible) != 4 {
		t.Errorf("promoted store should be publicly visible, got %d", len(visible))
	}

	c, err := candidateTable.GetByID(ctx, "1")
	if err != nil {
		t.Fatalf("candidate must survive promotion: %v", err)
	}
	if c.Verified {
		t.Error("candidate must not be marked verified")
	}
}

func TestPromoteWithOverrides(t *testing.T) {
	svc, _, _ := setup(t, candidate("Bear Donut", "New York", "NY"))

	address := "40 W 31st St, New York, NY 10001, USA"
	lat, lng := 40.7472, -73.9882
	store, err := svc.Promote(context.Background(), "1", &Overrides{Address: &address, Lat: &lat, Lng: &lng})
	if err != nil {
		t.Fatalf("Promote failed: %v", err)
	}
	if store.Address != address || store.Lat != lat || store.Lng != lng {
		t.Errorf("overrides not applied: %+v", store)
	}
}

func TestPromoteMissingCityAndState(t *testing.T) {
	ctx := context.Background()
	storeTable := stores.New(storage.NewMemoryBackend(stores.TableName))

	// rows written by an offline import can lack location fields
	backend := storage.NewMemoryBackend(candidates.TableName)
	backend.SetContent([]byte(`[{"id": "7", "name": "Mystery", "city": "", "state": "", "sourceHandle": "@anon", "postUrl": "", "confidenceScore": 0.75, "verified": false, "discoveredFrom": "instagram", "discoveredAt": "2026-01-10T00:00:00.000Z"}]`))
	candidateTable := candidates.New(backend)

	blank := "   "
	store, err := NewService(candidateTable, storeTable, nil).Promote(ctx, "7", &Overrides{Address: &blank})
	if err != nil {
		t.Fatalf("Promote failed: %v", err)
	}
	if store.Address != UnconfirmedAddress {
		t.Errorf("expected %q, got %q", UnconfirmedAddress, store.Address)
	}
	if store.Lat != 37.0 || store.Lng != -95.5 {
		t.Errorf("expected midpoint, got (%v, %v)", store.Lat, store.Lng)
	}
	if store.ID != "1" {
		t.Errorf("expected first id in an empty table, got %s", store.ID)
	}
	if store.VerifiedSources[0] != "instagram: @anon" {
		t.Errorf("unexpected verified sources %v", store.VerifiedSources)
	}
}

func TestPromoteUnknownCandidate(t *testing.T) {
	svc, _, storeTable := setup(t)

	_, err := svc.Promote(context.Background(), "404", nil)
	if !errors.Is(err, apperr.ErrNotFound) {
		t.Fatalf("expected not-found, got %v", err)
	}

	all, _ := storeTable.GetAll(context.Background())
	if len(all) != 3 {
		t.Errorf("store table must be untouched, got %d rows", len(all))
	}
}

func TestPromoteOutOfRegionOverride(t *testing.T) {
	svc, _, storeTable := setup(t, candidate("Bateel", "New York", "NY"))

	lat, lng := 25.2, 55.27
	_, err := svc.Promote(context.Background(), "1", &Overrides{Lat: &lat, Lng: &lng})
	if !errors.Is(err, apperr.ErrOutOfRegion) {
		t.Fatalf("expected jurisdiction error, got %v", err)
	}

	all, _ := storeTable.GetAll(context.Background())
	if len(all) != 3 {
		t.Errorf("nothing should be published, got %d rows", len(all))
	}
}

func TestResolveAddress(t *testing.T) {
	override := "1 Main St"
	padded := "  1 Main St \n"
	empty := ""
	blank := "   "

	tests := []struct {
		name      string
		candidate models.Candidate
		override  *string
		want      string
	}{
		{"override wins", models.Candidate{City: "Austin", State: "TX"}, &override, "1 Main St"},
		{"override trimmed", models.Candidate{City: "Austin", State: "TX"}, &padded, "1 Main St"},
		{"empty override ignored", models.Candidate{City: "Austin", State: "TX"}, &empty, "Austin, TX, USA"},
		{"blank override ignored", models.Candidate{City: "Austin", State: "TX"}, &blank, "Austin, TX, USA"},
		{"city only", models.Candidate{City: "Austin"}, nil, UnconfirmedAddress},
		{"state only", models.Candidate{State: "TX"}, nil, UnconfirmedAddress},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ResolveAddress(tt.candidate, tt.override); got != tt.want {
				t.Errorf("ResolveAddress() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestBuildPostURL(t *testing.T) {
	c := models.Candidate{ID: "1", Name: "Grace Street", City: "New York", State: "NY", ConfidenceScore: 0.75}

	store := Build(c, nil)
	if store.OriginalPostURL != nil {
		t.Errorf("expected no post url for a candidate without one, got %q", *store.OriginalPostURL)
	}
	if store.ConfidenceScore == nil || *store.ConfidenceScore != 0.75 {
		t.Errorf("confidence not carried over: %v", store.ConfidenceScore)
	}

	c.PostURL = "https://www.instagram.com/p/abc"
	store = Build(c, nil)
	if store.OriginalPostURL == nil || *store.OriginalPostURL != c.PostURL {
		t.Errorf("post url not carried over: %v", store.OriginalPostURL)
	}
}
