// Package stores is the published store table: the authoritative dataset the
// public map reads. Both writers validate jurisdiction and fail the whole
// operation on a violation.
package stores

import (
	"context"
	"strconv"
	"strings"

	"github.com/ggorockee/cookiemap/internal/apperr"
	"github.com/ggorockee/cookiemap/internal/logger"
	"github.com/ggorockee/cookiemap/internal/models"
	"github.com/ggorockee/cookiemap/internal/region"
	"github.com/ggorockee/cookiemap/internal/storage"
)

// TableName label used in logs and storage metrics
const TableName = "stores"

// Table published store table over a storage backend
type Table struct {
	rows *storage.Table[models.Store]
}

// New published store table persisted through backend
func New(backend storage.Backend) *Table {
	return &Table{rows: storage.NewTable[models.Store](TableName, backend)}
}

func validate(s models.Store) error {
	if !region.IsInRegion(s.Lat, s.Lng) {
		return &apperr.JurisdictionError{Name: s.Name, Lat: s.Lat, Lng: s.Lng}
	}
	return nil
}

// ReplaceAll overwrites the table. Every record must be in region or nothing
// is written. Missing ids become the 1-based input position.
func (t *Table) ReplaceAll(ctx context.Context, stores []models.Store) ([]models.Store, error) {
	for _, s := range stores {
		if err := validate(s); err != nil {
			return nil, err
		}
	}

	rows := make([]models.Store, len(stores))
	for i, s := range stores {
		if s.ID == "" {
			s.ID = strconv.Itoa(i + 1)
		}
		rows[i] = s
	}

	if err := t.rows.Replace(ctx, rows); err != nil {
		return nil, err
	}

	logger.GetLogger("stores").Infof("replaced published table with %d store(s)", len(rows))
	return rows, nil
}

// Append adds one in-region store; a missing id becomes max-existing-id+1
func (t *Table) Append(ctx context.Context, store models.Store) (models.Store, error) {
	if err := validate(store); err != nil {
		return models.Store{}, err
	}

	err := t.rows.Mutate(ctx, func(existing []models.Store) ([]models.Store, error) {
		if store.ID == "" {
			ids := make([]string, 0, len(existing))
			for _, s := range existing {
				ids = append(ids, s.ID)
			}
			store.ID = strconv.Itoa(storage.MaxNumericID(ids) + 1)
		}
		return append(existing, store), nil
	})
	if err != nil {
		return models.Store{}, err
	}

	logger.GetLogger("stores").Infof("published store %s (%s)", store.ID, store.Name)
	return store, nil
}

// GetAll full table in stored order
func (t *Table) GetAll(ctx context.Context) ([]models.Store, error) {
	return t.rows.ReadAll(ctx)
}

// GetVerifiedAndInRegion the only query the public listing may use
func (t *Table) GetVerifiedAndInRegion(ctx context.Context) ([]models.Store, error) {
	all, err := t.rows.ReadAll(ctx)
	if err != nil {
		return nil, err
	}

	visible := make([]models.Store, 0, len(all))
	for _, s := range all {
		if s.IsVerified() && region.IsInRegion(s.Lat, s.Lng) {
			visible = append(visible, s)
		}
	}
	return visible, nil
}

// Search public listing narrowed by a case-insensitive substring of name or
// address. A blank query returns the whole public listing.
func (t *Table) Search(ctx context.Context, query string) ([]models.Store, error) {
	visible, err := t.GetVerifiedAndInRegion(ctx)
	if err != nil {
		return nil, err
	}

	q := strings.ToLower(strings.TrimSpace(query))
	if q == "" {
		return visible, nil
	}

	matched := make([]models.Store, 0, len(visible))
	for _, s := range visible {
		if strings.Contains(strings.ToLower(s.Name), q) || strings.Contains(strings.ToLower(s.Address), q) {
			matched = append(matched, s)
		}
	}
	return matched, nil
}
