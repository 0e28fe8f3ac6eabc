// Package candidates is the append-only table of discovered, unverified
// store candidates.
package candidates

import (
	"context"
	"strconv"

	"github.com/ggorockee/cookiemap/internal/apperr"
	"github.com/ggorockee/cookiemap/internal/logger"
	"github.com/ggorockee/cookiemap/internal/models"
	"github.com/ggorockee/cookiemap/internal/region"
	"github.com/ggorockee/cookiemap/internal/storage"
)

// TableName label used in logs and storage metrics
const TableName = "store_candidates"

// AppendResult outcome of one append: rows written and rows dropped by the
// region-code filter. Dropping is not an error.
type AppendResult struct {
	Saved    []models.Candidate
	Rejected []models.NewCandidate
}

// Table candidate table over a storage backend
type Table struct {
	rows *storage.Table[models.Candidate]
}

// New candidate table persisted through backend
func New(backend storage.Backend) *Table {
	return &Table{rows: storage.NewTable[models.Candidate](TableName, backend)}
}

// Append keeps candidates whose state is a valid region code, numbers them
// max-existing-id+1.. in input order and persists existing+new. Storage is not
// touched when nothing survives the filter.
func (t *Table) Append(ctx context.Context, batch []models.NewCandidate) (AppendResult, error) {
	log := logger.GetLogger("candidates")

	result := AppendResult{Saved: []models.Candidate{}}
	var accepted []models.NewCandidate
	for _, c := range batch {
		if region.IsRegionCode(c.State) {
			accepted = append(accepted, c)
		} else {
			result.Rejected = append(result.Rejected, c)
		}
	}

	if len(result.Rejected) > 0 {
		log.Infof("dropped %d candidate(s) outside US region codes", len(result.Rejected))
	}
	if len(accepted) == 0 {
		return result, nil
	}

	err := t.rows.Mutate(ctx, func(existing []models.Candidate) ([]models.Candidate, error) {
		ids := make([]string, 0, len(existing))
		for _, c := range existing {
			ids = append(ids, c.ID)
		}
		maxID := storage.MaxNumericID(ids)

		saved := make([]models.Candidate, 0, len(accepted))
		for i, c := range accepted {
			saved = append(saved, models.Candidate{
				ID:              strconv.Itoa(maxID + i + 1),
				Name:            c.Name,
				City:            c.City,
				State:           c.State,
				SourceHandle:    c.SourceHandle,
				PostURL:         c.PostURL,
				ConfidenceScore: c.ConfidenceScore,
				Verified:        false,
				DiscoveredFrom:  c.DiscoveredFrom,
				DiscoveredAt:    c.DiscoveredAt,
			})
		}
		result.Saved = saved

		return append(existing, saved...), nil
	})
	if err != nil {
		return AppendResult{}, err
	}

	log.Infof("saved %d candidate(s)", len(result.Saved))
	return result, nil
}

// GetAll full table in insertion order
func (t *Table) GetAll(ctx context.Context) ([]models.Candidate, error) {
	return t.rows.ReadAll(ctx)
}

// GetByID linear lookup; apperr.ErrNotFound when absent
func (t *Table) GetByID(ctx context.Context, id string) (models.Candidate, error) {
	all, err := t.rows.ReadAll(ctx)
	if err != nil {
		return models.Candidate{}, err
	}
	for _, c := range all {
		if c.ID == id {
			return c, nil
		}
	}
	return models.Candidate{}, apperr.NotFound("candidate", id)
}
