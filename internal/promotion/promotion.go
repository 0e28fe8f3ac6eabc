// Package promotion turns a reviewed candidate into a published store. The
// candidate row is left untouched.
package promotion

import (
	"context"
	"fmt"
	"strings"

	"github.com/ggorockee/cookiemap/internal/logger"
	"github.com/ggorockee/cookiemap/internal/models"
	"github.com/ggorockee/cookiemap/internal/region"
	"github.com/ggorockee/cookiemap/internal/telemetry"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

// UnconfirmedAddress used when neither an override nor city+state is known
const UnconfirmedAddress = "Address to be confirmed"

// CandidateReader read side of the candidate table
type CandidateReader interface {
	GetByID(ctx context.Context, id string) (models.Candidate, error)
}

// StoreAppender write side of the published store table
type StoreAppender interface {
	Append(ctx context.Context, store models.Store) (models.Store, error)
}

// Overrides reviewer-supplied corrections; nil fields fall back to defaults
type Overrides struct {
	Address *string  `json:"address,omitempty"`
	Lat     *float64 `json:"lat,omitempty"`
	Lng     *float64 `json:"lng,omitempty"`
}

// Service promotion workflow
type Service struct {
	candidates CandidateReader
	stores     StoreAppender
	telemetry  *telemetry.Telemetry
}

// NewService workflow reading candidates and appending published stores
func NewService(candidates CandidateReader, stores StoreAppender, tel *telemetry.Telemetry) *Service {
	if tel == nil {
		tel = telemetry.NewNoop("cookiemap")
	}
	return &Service{candidates: candidates, stores: stores, telemetry: tel}
}

// Promote publishes candidateID as a verified store. Not-found and
// jurisdiction errors come back unchanged from the tables.
func (s *Service) Promote(ctx context.Context, candidateID string, overrides *Overrides) (store models.Store, err error) {
	log := logger.GetLogger("promotion")

	ctx, span := s.telemetry.StartSpan(ctx, "promotion.promote",
		trace.WithAttributes(attribute.String("candidate.id", candidateID)),
	)
	var platform string
	defer func() {
		if err != nil {
			span.RecordError(err)
			span.SetStatus(codes.Error, err.Error())
		}
		s.telemetry.RecordPromotion(ctx, platform, err)
		span.End()
	}()

	candidate, err := s.candidates.GetByID(ctx, candidateID)
	if err != nil {
		return models.Store{}, err
	}
	platform = string(candidate.DiscoveredFrom)

	store, err = s.stores.Append(ctx, Build(candidate, overrides))
	if err != nil {
		log.Errorf("failed to publish candidate %s: %v", candidateID, err)
		return models.Store{}, err
	}

	span.SetAttributes(attribute.String("store.id", store.ID))
	log.Infof("promoted candidate %s to store %s (%s)", candidateID, store.ID, store.Name)
	return store, nil
}

// Build the published record for candidate, without an id
func Build(candidate models.Candidate, overrides *Overrides) models.Store {
	if overrides == nil {
		overrides = &Overrides{}
	}

	lat, lng := region.US.Midpoint()
	if overrides.Lat != nil {
		lat = *overrides.Lat
	}
	if overrides.Lng != nil {
		lng = *overrides.Lng
	}

	confidence := candidate.ConfidenceScore

	store := models.Store{
		Name:            candidate.Name,
		Address:         ResolveAddress(candidate, overrides.Address),
		Lat:             lat,
		Lng:             lng,
		Verified:        true,
		VerifiedSources: []string{fmt.Sprintf("%s: %s", candidate.DiscoveredFrom, candidate.SourceHandle)},
		DiscoveredFrom:  candidate.DiscoveredFrom,
		DiscoveredAt:    candidate.DiscoveredAt,
		ConfidenceScore: &confidence,
	}
	if candidate.PostURL != "" {
		postURL := candidate.PostURL
		store.OriginalPostURL = &postURL
	}
	return store
}

// ResolveAddress trimmed non-blank override, else "{city}, {state}, USA", else the
// unconfirmed placeholder
func ResolveAddress(candidate models.Candidate, override *string) string {
	if override != nil && strings.TrimSpace(*override) != "" {
		return strings.TrimSpace(*override)
	}
	if candidate.City != "" && candidate.State != "" {
		return fmt.Sprintf("%s, %s, USA", candidate.City, candidate.State)
	}
	return UnconfirmedAddress
}
