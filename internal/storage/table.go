// Package storage implements the flat-file tables: the whole collection is
// read on every access and rewritten on every write.
//
// Rows decode one at a time. A row that cannot be decoded is skipped on read
// and carried through Mutate unchanged, so a later write never drops it. Only
// content that is not a JSON array at all reads as an empty table.
//
// Each Table serializes its own read-modify-write cycles with a mutex. That
// closes the lost-update race between goroutines of one process; two
// processes writing the same file can still interleave and lose a row.
package storage

import (
	"context"
	"encoding/json"
	"sync"
	"time"

	"github.com/ggorockee/cookiemap/internal/logger"
)

// Table typed JSON array persisted through a Backend
type Table[T any] struct {
	name    string
	backend Backend
	mu      sync.Mutex
}

// NewTable table named name over backend
func NewTable[T any](name string, backend Backend) *Table[T] {
	return &Table[T]{name: name, backend: backend}
}

// Name table label
func (t *Table[T]) Name() string {
	return t.name
}

// ReadAll full table in insertion order
func (t *Table[T]) ReadAll(ctx context.Context) ([]T, error) {
	rows, _, err := t.read(ctx)
	return rows, err
}

// Mutate runs fn over the current rows and persists what it returns, under the
// table lock. Nothing is written when fn fails.
func (t *Table[T]) Mutate(ctx context.Context, fn func(rows []T) ([]T, error)) error {
	t.mu.Lock()
	defer t.mu.Unlock()

	rows, undecoded, err := t.read(ctx)
	if err != nil {
		return err
	}

	next, err := fn(rows)
	if err != nil {
		return err
	}

	return t.write(ctx, next, undecoded)
}

// Replace overwrites the table with rows
func (t *Table[T]) Replace(ctx context.Context, rows []T) error {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.write(ctx, rows, nil)
}

// read decodes the stored array row by row; undecoded holds the raw rows that
// did not fit T
func (t *Table[T]) read(ctx context.Context) (rows []T, undecoded []json.RawMessage, err error) {
	start := time.Now()
	defer func() { observe("read", t.name, start, err) }()

	content, err := t.backend.Load(ctx)
	if err != nil {
		return nil, nil, err
	}
	if len(content) == 0 {
		rowsGauge.WithLabelValues(t.name).Set(0)
		return []T{}, nil, nil
	}

	log := logger.GetLogger("storage")

	var raw []json.RawMessage
	if jsonErr := json.Unmarshal(content, &raw); jsonErr != nil {
		log.Warnf("[%s] malformed content in %s, treating as empty: %v", t.name, t.backend.Name(), jsonErr)
		malformedTotal.WithLabelValues(t.name).Inc()
		rowsGauge.WithLabelValues(t.name).Set(0)
		return []T{}, nil, nil
	}

	rows = make([]T, 0, len(raw))
	for i, r := range raw {
		var row T
		if rowErr := json.Unmarshal(r, &row); rowErr != nil {
			log.Warnf("[%s] skipping undecodable row %d in %s: %v", t.name, i, t.backend.Name(), rowErr)
			malformedTotal.WithLabelValues(t.name).Inc()
			undecoded = append(undecoded, r)
			continue
		}
		rows = append(rows, row)
	}

	rowsGauge.WithLabelValues(t.name).Set(float64(len(rows)))
	return rows, undecoded, nil
}

// write persists rows followed by any undecoded rows carried from the read
func (t *Table[T]) write(ctx context.Context, rows []T, undecoded []json.RawMessage) (err error) {
	start := time.Now()
	defer func() { observe("write", t.name, start, err) }()

	out := make([]any, 0, len(rows)+len(undecoded))
	for _, r := range rows {
		out = append(out, r)
	}
	for _, r := range undecoded {
		out = append(out, r)
	}

	content, err := json.MarshalIndent(out, "", "  ")
	if err != nil {
		return err
	}

	if err = t.backend.Save(ctx, content); err != nil {
		return err
	}

	rowsGauge.WithLabelValues(t.name).Set(float64(len(rows)))
	return nil
}
