package repository

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"nanoconsult/internal/models"
)

// FileStore writes each record as a pretty-printed JSON file. It is the
// fallback when no database is configured.
type FileStore struct {
	dir string
}

// NewFileStore returns a store rooted at dir.
func NewFileStore(dir string) *FileStore {
	if dir == "" {
		dir = "applications"
	}
	return &FileStore{dir: dir}
}

// Save writes the record to applications/application_<timestamp>_<id>.json.
func (s *FileStore) Save(_ context.Context, record models.ApplicationRecord) error {
	if err := os.MkdirAll(s.dir, 0o755); err != nil {
		return fmt.Errorf("file store: create dir: %w", err)
	}

	data, err := json.MarshalIndent(record, "", "  ")
	if err != nil {
		return err
	}

	id := record.ID
	if len(id) > 8 {
		id = id[:8]
	}
	name := fmt.Sprintf("application_%s_%s.json", record.Timestamp.Format("20060102_150405"), id)
	path := filepath.Join(s.dir, name)

	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("file store: write record: %w", err)
	}
	return nil
}
