// Package artifacts manages the on-disk HTML files rendered for each report.
package artifacts

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"golang.org/x/sync/singleflight"
)

// ErrArtifactMissing indicates the expected report file is absent on disk.
// It is informational, not fatal: callers report it inline.
var ErrArtifactMissing = errors.New("report artifact not found")

// Store reads and writes rendered report artifacts under a static directory.
type Store struct {
	dir   string
	group singleflight.Group
}

// NewStore creates an artifact store rooted at dir.
func NewStore(dir string) *Store {
	return &Store{dir: dir}
}

// FileName returns the artifact file name for a report ID.
func FileName(reportID string) string {
	return reportID + "_report.html"
}

// Path returns the on-disk path of a report's artifact.
func (s *Store) Path(reportID string) string {
	return filepath.Join(s.dir, FileName(reportID))
}

// Exists reports whether the artifact file is present on disk.
func (s *Store) Exists(reportID string) bool {
	info, err := os.Stat(s.Path(reportID))
	return err == nil && !info.IsDir()
}

// Read returns the full artifact bytes for a report.
// A missing file surfaces as ErrArtifactMissing.
func (s *Store) Read(reportID string) ([]byte, error) {
	data, err := os.ReadFile(s.Path(reportID))
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: %s", ErrArtifactMissing, FileName(reportID))
		}
		return nil, fmt.Errorf("failed to read artifact %s: %w", FileName(reportID), err)
	}
	return data, nil
}

// Materialize renders and persists the artifact for a report. Concurrent
// calls for the same report ID are collapsed into a single render+write.
func (s *Store) Materialize(reportID string, render func() (string, error)) error {
	_, err, _ := s.group.Do(reportID, func() (any, error) {
		html, err := render()
		if err != nil {
			return nil, err
		}
		if err := os.MkdirAll(s.dir, 0o755); err != nil {
			return nil, fmt.Errorf("failed to create artifact directory: %w", err)
		}
		if err := os.WriteFile(s.Path(reportID), []byte(html), 0o644); err != nil {
			return nil, fmt.Errorf("failed to write artifact %s: %w", FileName(reportID), err)
		}
		return nil, nil
	})
	return err
}
