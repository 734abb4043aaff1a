package store

import (
	"fmt"
	"os"
	"path/filepath"
)

// Record keys for the three durable records.
const (
	RecordCurrentPlan      = "current-plan"
	RecordSavedPlans       = "saved-plans"
	RecordCustomActivities = "custom-activities"
)

// Records is a durable key/value store for the planner's records. A
// missing key loads as (nil, nil).
type Records interface {
	Load(key string) ([]byte, error)
	Save(key string, data []byte) error
	Close() error
}

// FileRecords stores each record as a YAML file in a data directory.
type FileRecords struct {
	Root string // e.g., ~/.local/share/weekendly
}

// NewFileRecords creates a FileRecords rooted at the given directory,
// creating it if needed.
func NewFileRecords(root string) (*FileRecords, error) {
	if err := os.MkdirAll(root, 0755); err != nil {
		return nil, fmt.Errorf("creating data directory: %w", err)
	}
	return &FileRecords{Root: root}, nil
}

func (f *FileRecords) path(key string) string {
	return filepath.Join(f.Root, key+".yaml")
}

// Load reads a record file. A missing file is not an error.
func (f *FileRecords) Load(key string) ([]byte, error) {
	data, err := os.ReadFile(f.path(key))
	if os.IsNotExist(err) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", key, err)
	}
	return data, nil
}

// Save writes a record file.
func (f *FileRecords) Save(key string, data []byte) error {
	if err := os.WriteFile(f.path(key), data, 0644); err != nil {
		return fmt.Errorf("writing %s: %w", key, err)
	}
	return nil
}

// Close is a no-op for file-backed records.
func (f *FileRecords) Close() error { return nil }
