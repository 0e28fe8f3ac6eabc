package storage

import (
	"context"
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"sync"
	"testing"
)

type row struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

func TestTableFileRoundTrip(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "nested", "rows.json")
	table := NewTable[row]("rows", NewFileBackend(path))

	rows, err := table.ReadAll(ctx)
	if err != nil {
		t.Fatalf("ReadAll on missing file failed: %v", err)
	}
	if len(rows) != 0 {
		t.Fatalf("expected empty table, got %d rows", len(rows))
	}

	if err := table.Replace(ctx, []row{{ID: "1", Name: "a"}, {ID: "2", Name: "b"}}); err != nil {
		t.Fatalf("Replace failed: %v", err)
	}

	if _, err := os.Stat(path + ".tmp"); !os.IsNotExist(err) {
		t.Error("temp file should be renamed away")
	}

	rows, err = table.ReadAll(ctx)
	if err != nil {
		t.Fatalf("ReadAll failed: %v", err)
	}
	if len(rows) != 2 || rows[0].Name != "a" || rows[1].Name != "b" {
		t.Errorf("unexpected rows: %+v", rows)
	}
}

func TestTableMalformedContentIsEmpty(t *testing.T) {
	ctx := context.Background()

	for _, content := range []string{`{not json`, `{"id":"1"}`, `null`, `"text"`} {
		backend := NewMemoryBackend("rows")
		backend.SetContent([]byte(content))
		table := NewTable[row]("rows", backend)

		rows, err := table.ReadAll(ctx)
		if err != nil {
			t.Errorf("content %q: unexpected error %v", content, err)
			continue
		}
		if len(rows) != 0 {
			t.Errorf("content %q: expected empty table, got %+v", content, rows)
		}
	}
}

func TestTableUndecodableRowSurvivesMutate(t *testing.T) {
	ctx := context.Background()
	backend := NewMemoryBackend("rows")
	backend.SetContent([]byte(`[{"id":"1","name":"a"},{"id":{"bad":true},"name":"b"}]`))
	table := NewTable[row]("rows", backend)

	rows, err := table.ReadAll(ctx)
	if err != nil {
		t.Fatalf("ReadAll failed: %v", err)
	}
	if len(rows) != 1 || rows[0].ID != "1" {
		t.Fatalf("expected the decodable row only, got %+v", rows)
	}

	err = table.Mutate(ctx, func(rows []row) ([]row, error) {
		return append(rows, row{ID: "2", Name: "c"}), nil
	})
	if err != nil {
		t.Fatalf("Mutate failed: %v", err)
	}

	content, _ := backend.Load(ctx)
	var raw []json.RawMessage
	if err := json.Unmarshal(content, &raw); err != nil {
		t.Fatalf("persisted content is not an array: %v", err)
	}
	if len(raw) != 3 {
		t.Fatalf("expected 3 persisted rows, got %d: %s", len(raw), content)
	}

	var kept struct {
		Name string `json:"name"`
	}
	if err := json.Unmarshal(raw[2], &kept); err != nil || kept.Name != "b" {
		t.Errorf("undecodable row not carried through: %s", raw[2])
	}
}

func TestTableMutateFailureWritesNothing(t *testing.T) {
	ctx := context.Background()
	backend := NewMemoryBackend("rows")
	table := NewTable[row]("rows", backend)

	if err := table.Replace(ctx, []row{{ID: "1"}}); err != nil {
		t.Fatalf("Replace failed: %v", err)
	}

	boom := errors.New("boom")
	err := table.Mutate(ctx, func(rows []row) ([]row, error) {
		return append(rows, row{ID: "2"}), boom
	})
	if !errors.Is(err, boom) {
		t.Fatalf("expected boom, got %v", err)
	}

	rows, _ := table.ReadAll(ctx)
	if len(rows) != 1 {
		t.Errorf("expected table unchanged, got %+v", rows)
	}
	if backend.Saves() != 1 {
		t.Errorf("expected exactly one save, got %d", backend.Saves())
	}
}

func TestTableSaveErrorSurfaces(t *testing.T) {
	backend := NewMemoryBackend("rows")
	backend.SaveErr = errors.New("disk full")
	table := NewTable[row]("rows", backend)

	if err := table.Replace(context.Background(), []row{{ID: "1"}}); err == nil {
		t.Error("expected save error")
	}
}

func TestTableConcurrentMutateKeepsEveryRow(t *testing.T) {
	ctx := context.Background()
	table := NewTable[row]("rows", NewMemoryBackend("rows"))

	var wg sync.WaitGroup
	for i := 0; i < 20; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_ = table.Mutate(ctx, func(rows []row) ([]row, error) {
				return append(rows, row{ID: "x"}), nil
			})
		}()
	}
	wg.Wait()

	rows, _ := table.ReadAll(ctx)
	if len(rows) != 20 {
		t.Errorf("expected 20 rows, got %d", len(rows))
	}
}

func TestNumericID(t *testing.T) {
	tests := []struct {
		in   string
		want int
		ok   bool
	}{
		{"12", 12, true},
		{" 7", 7, true},
		{"3b", 3, true},
		{"-4", -4, true},
		{"abc", 0, false},
		{"", 0, false},
		{"-", 0, false},
		{"legacy-9", 0, false},
	}

	for _, tc := range tests {
		got, ok := NumericID(tc.in)
		if got != tc.want || ok != tc.ok {
			t.Errorf("NumericID(%q) = (%d, %v), want (%d, %v)", tc.in, got, ok, tc.want, tc.ok)
		}
	}

	if m := MaxNumericID([]string{"2", "abc", "10", "-50", "9z"}); m != 10 {
		t.Errorf("MaxNumericID = %d, want 10", m)
	}
	if m := MaxNumericID(nil); m != 0 {
		t.Errorf("MaxNumericID(nil) = %d, want 0", m)
	}
}
