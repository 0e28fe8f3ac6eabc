package storage

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"sync"
)

// Backend raw byte storage behind a table
type Backend interface {
	// Load returns nil content when nothing has been written yet
	Load(ctx context.Context) ([]byte, error)
	Save(ctx context.Context, content []byte) error
	Name() string
}

// FileBackend single JSON file on local disk
type FileBackend struct {
	Path string
}

// NewFileBackend file-backed storage at path
func NewFileBackend(path string) *FileBackend {
	return &FileBackend{Path: path}
}

// Name file path
func (f *FileBackend) Name() string {
	return f.Path
}

// Load reads the whole file
func (f *FileBackend) Load(ctx context.Context) ([]byte, error) {
	content, err := os.ReadFile(f.Path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to read %s: %w", f.Path, err)
	}
	return content, nil
}

// Save rewrites the whole file through a temp file + rename
func (f *FileBackend) Save(ctx context.Context, content []byte) error {
	if err := os.MkdirAll(filepath.Dir(f.Path), 0755); err != nil {
		return fmt.Errorf("failed to create data directory: %w", err)
	}

	tmpPath := f.Path + ".tmp"
	if err := os.WriteFile(tmpPath, content, 0644); err != nil {
		return fmt.Errorf("failed to write temp file: %w", err)
	}

	if err := os.Rename(tmpPath, f.Path); err != nil {
		os.Remove(tmpPath)
		return fmt.Errorf("failed to rename temp file: %w", err)
	}

	return nil
}

// MemoryBackend in-process storage, used as the fake in tests
type MemoryBackend struct {
	mu      sync.Mutex
	name    string
	content []byte
	saves   int

	// SaveErr when set, every Save fails with it
	SaveErr error
}

// NewMemoryBackend empty in-memory storage
func NewMemoryBackend(name string) *MemoryBackend {
	return &MemoryBackend{name: name}
}

// Name backend label
func (m *MemoryBackend) Name() string {
	return m.name
}

// Load copy of the stored content
func (m *MemoryBackend) Load(ctx context.Context) ([]byte, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.content == nil {
		return nil, nil
	}
	return append([]byte(nil), m.content...), nil
}

// Save replaces the stored content
func (m *MemoryBackend) Save(ctx context.Context, content []byte) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.SaveErr != nil {
		return m.SaveErr
	}
	m.content = append([]byte(nil), content...)
	m.saves++
	return nil
}

// SetContent seeds raw content (e.g. malformed JSON in tests)
func (m *MemoryBackend) SetContent(content []byte) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.content = append([]byte(nil), content...)
}

// Saves number of successful writes
func (m *MemoryBackend) Saves() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.saves
}
