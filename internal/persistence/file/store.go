// Package file persists the campus document as a single JSON file, the
// layout shared with the original registry data files.
package file

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/example/campus-scheduler/internal/persistence"
)

// Store reads and writes the full document at a fixed path. Writes go
// through a temporary file and rename so a crash never leaves a partial
// document behind.
type Store struct {
	path string
}

// NewStore returns a store rooted at path. The file does not have to
// exist yet; the first Load reports an empty document.
func NewStore(path string) *Store {
	return &Store{path: path}
}

// Load parses the document from disk. A missing file yields an empty
// campus rather than an error.
func (s *Store) Load(ctx context.Context) (*persistence.Campus, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	data, err := os.ReadFile(s.path)
	if errors.Is(err, fs.ErrNotExist) {
		return persistence.NewCampus(), nil
	}
	if err != nil {
		return nil, fmt.Errorf("file: read %s: %w", s.path, err)
	}

	campus := persistence.NewCampus()
	if err := json.Unmarshal(data, campus); err != nil {
		return nil, fmt.Errorf("file: parse %s: %w", s.path, err)
	}
	return campus, nil
}

// Save overwrites the document on disk atomically.
func (s *Store) Save(ctx context.Context, campus *persistence.Campus) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	data, err := json.MarshalIndent(campus, "", "    ")
	if err != nil {
		return fmt.Errorf("file: encode campus: %w", err)
	}
	data = append(data, '\n')

	if dir := filepath.Dir(s.path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("file: create %s: %w", dir, err)
		}
	}

	tmp := s.path + ".tmp"
	if err := os.WriteFile(tmp, data, 0o644); err != nil {
		return fmt.Errorf("file: write %s: %w", tmp, err)
	}
	if err := os.Rename(tmp, s.path); err != nil {
		return fmt.Errorf("file: replace %s: %w", s.path, err)
	}
	return nil
}
