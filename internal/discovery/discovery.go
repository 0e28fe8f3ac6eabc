// Package discovery runs the ingestion path: connector search, extraction,
// region-code filtering and candidate append.
package discovery

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/ggorockee/cookiemap/internal/apperr"
	"github.com/ggorockee/cookiemap/internal/candidates"
	"github.com/ggorockee/cookiemap/internal/connector"
	"github.com/ggorockee/cookiemap/internal/extractor"
	"github.com/ggorockee/cookiemap/internal/logger"
	"github.com/ggorockee/cookiemap/internal/models"
	"github.com/ggorockee/cookiemap/internal/telemetry"
	"github.com/google/uuid"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
	"golang.org/x/sync/errgroup"
)

// CandidateAppender write side of the candidate table
type CandidateAppender interface {
	Append(ctx context.Context, batch []models.NewCandidate) (candidates.AppendResult, error)
}

// Request one discovery run
type Request struct {
	Keywords []string `json:"keywords"`
	Platform string   `json:"platform"`
}

// Result outcome of one platform run
type Result struct {
	RunID      string                   `json:"runId"`
	Platform   models.Platform          `json:"platform"`
	Candidates []models.ParsedCandidate `json:"candidates"`
	Saved      []models.Candidate       `json:"saved"`
	Rejected   []models.NewCandidate    `json:"-"`
}

// Message human-readable summary of the run
func (r *Result) Message() string {
	return fmt.Sprintf("Discovered %d candidates from %s, saved %d", len(r.Candidates), r.Platform, len(r.Saved))
}

// Service discovery orchestrator
type Service struct {
	registry   *connector.Registry
	candidates CandidateAppender
	telemetry  *telemetry.Telemetry
	now        func() time.Time
}

// NewService orchestrator over the registry's connectors writing to table
func NewService(registry *connector.Registry, table CandidateAppender, tel *telemetry.Telemetry) *Service {
	if tel == nil {
		tel = telemetry.NewNoop("cookiemap")
	}
	return &Service{
		registry:   registry,
		candidates: table,
		telemetry:  tel,
		now:        time.Now,
	}
}

// Validate normalizes keywords (trimmed, blanks dropped) and resolves the
// platform tag. Nothing is attempted on failure.
func Validate(req Request) ([]string, models.Platform, error) {
	keywords := make([]string, 0, len(req.Keywords))
	for _, k := range req.Keywords {
		if k = strings.TrimSpace(k); k != "" {
			keywords = append(keywords, k)
		}
	}
	if len(keywords) == 0 {
		return nil, "", apperr.Validation("keywords", "at least one keyword is required")
	}

	platform, ok := models.ParseDiscoveryPlatform(req.Platform)
	if !ok {
		return nil, "", apperr.Validation("platform", fmt.Sprintf("unsupported platform %q", req.Platform))
	}

	return keywords, platform, nil
}

// Run searches one platform and appends the in-region candidates
func (s *Service) Run(ctx context.Context, req Request) (*Result, error) {
	keywords, platform, err := Validate(req)
	if err != nil {
		return nil, err
	}
	return s.run(ctx, platform, keywords)
}

// RunAll runs every registered platform concurrently with the same keywords.
// The first failure cancels the remaining searches.
func (s *Service) RunAll(ctx context.Context, keywords []string) ([]*Result, error) {
	platforms := s.registry.Platforms()
	results := make([]*Result, len(platforms))

	g, gctx := errgroup.WithContext(ctx)
	for i, p := range platforms {
		i, p := i, p
		g.Go(func() error {
			res, err := s.Run(gctx, Request{Keywords: keywords, Platform: string(p)})
			if err != nil {
				return err
			}
			results[i] = res
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	return results, nil
}

func (s *Service) run(ctx context.Context, platform models.Platform, keywords []string) (res *Result, err error) {
	log := logger.GetLogger("discovery")
	runID := uuid.NewString()
	start := time.Now()

	ctx, span := s.telemetry.StartSpan(ctx, "discovery.run",
		trace.WithAttributes(
			attribute.String("discovery.run_id", runID),
			attribute.String("discovery.platform", string(platform)),
			attribute.StringSlice("discovery.keywords", keywords),
		),
	)
	var fetched int
	defer func() {
		if err != nil {
			span.RecordError(err)
			span.SetStatus(codes.Error, err.Error())
			s.telemetry.RecordDiscovery(ctx, string(platform), time.Since(start), 0, 0, 0, 0, err)
		} else {
			s.telemetry.RecordDiscovery(ctx, string(platform), time.Since(start),
				fetched, len(res.Candidates), len(res.Saved), len(res.Rejected), nil)
		}
		span.End()
	}()

	conn, ok := s.registry.Get(platform)
	if !ok {
		return nil, apperr.Validation("platform", fmt.Sprintf("no connector registered for %s", platform))
	}

	log.Infof("[%s] searching %s for %v", runID, platform, keywords)
	posts, err := conn.Search(ctx, keywords)
	if err != nil {
		log.Errorf("[%s] %s search failed: %v", runID, platform, err)
		return nil, err
	}
	fetched = len(posts)

	parsed := extractor.Parse(posts)
	discoveredAt := s.now().UTC()

	batch := make([]models.NewCandidate, 0, len(parsed))
	for _, p := range parsed {
		batch = append(batch, models.NewCandidate{
			ParsedCandidate: p,
			DiscoveredFrom:  platform,
			DiscoveredAt:    discoveredAt,
		})
	}

	appended, err := s.candidates.Append(ctx, batch)
	if err != nil {
		log.Errorf("[%s] saving candidates failed: %v", runID, err)
		return nil, fmt.Errorf("failed to save candidates: %w", err)
	}

	res = &Result{
		RunID:      runID,
		Platform:   platform,
		Candidates: parsed,
		Saved:      appended.Saved,
		Rejected:   appended.Rejected,
	}
	log.Infof("[%s] %d post(s), %d parsed, %d saved, %d rejected",
		runID, fetched, len(parsed), len(res.Saved), len(res.Rejected))

	return res, nil
}
