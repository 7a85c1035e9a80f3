// Package staging reads and writes the plain-text artifacts that are the
// only channel between pipeline stages.
package staging

import (
	"errors"
	"fmt"
	"io/fs"
	"math"
	"os"
	"path/filepath"

	"github.com/wonny/brownian/internal/contracts"
	"github.com/wonny/brownian/pkg/logger"
)

// Store resolves artifacts inside one stage directory
type Store struct {
	Root   string
	logger *logger.Logger
}

// NewStore creates a Store rooted at dir
func NewStore(dir string, log *logger.Logger) *Store {
	if log == nil {
		log = logger.Nop()
	}
	return &Store{
		Root:   dir,
		logger: log.WithField("module", "staging"),
	}
}

// Path returns the artifact's file path
func (s *Store) Path(a contracts.Artifact) string {
	return filepath.Join(s.Root, a.Name)
}

// Exists reports whether the artifact file is present
func (s *Store) Exists(a contracts.Artifact) bool {
	info, err := os.Stat(s.Path(a))
	return err == nil && !info.IsDir()
}

// Read loads and validates an artifact.
// A missing file names the stage that must run first.
func (s *Store) Read(a contracts.Artifact) ([]float64, error) {
	path := s.Path(a)

	f, err := os.Open(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s not found, run \"gbm %s\" first",
				contracts.ErrMissingUpstreamArtifact, path, a.Producer)
		}
		return nil, fmt.Errorf("%w: open %s: %v", contracts.ErrIOFailure, path, err)
	}
	defer f.Close()

	values, err := Decode(f)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}

	s.logger.WithFields(map[string]interface{}{
		"artifact": a.Name,
		"count":    len(values),
	}).Debug("Artifact read")

	return values, nil
}

// Write persists values atomically: a temp file in the same directory is
// written, synced and renamed over the target. On failure nothing is left behind.
func (s *Store) Write(a contracts.Artifact, values []float64) (err error) {
	if err := contracts.ValidateLength(len(values)); err != nil {
		return err
	}
	for i, v := range values {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return fmt.Errorf("%w: refusing to write non-finite value %v at index %d",
				contracts.ErrMalformedArtifact, v, i)
		}
	}

	if err := os.MkdirAll(s.Root, 0o755); err != nil {
		return fmt.Errorf("%w: create stage dir: %v", contracts.ErrIOFailure, err)
	}

	tmp, err := os.CreateTemp(s.Root, "."+a.Name+".*.tmp")
	if err != nil {
		return fmt.Errorf("%w: create %s: %v", contracts.ErrIOFailure, s.Path(a), err)
	}
	tmpName := tmp.Name()
	defer func() {
		if err != nil {
			_ = tmp.Close()
			_ = os.Remove(tmpName)
		}
	}()

	if err = Encode(tmp, values); err != nil {
		return fmt.Errorf("%w: write %s: %v", contracts.ErrIOFailure, tmpName, err)
	}
	if err = tmp.Sync(); err != nil {
		return fmt.Errorf("%w: fsync failed: %v", contracts.ErrIOFailure, err)
	}
	if err = tmp.Close(); err != nil {
		return fmt.Errorf("%w: close %s: %v", contracts.ErrIOFailure, tmpName, err)
	}
	if err = os.Chmod(tmpName, 0o644); err != nil {
		return fmt.Errorf("%w: chmod %s: %v", contracts.ErrIOFailure, tmpName, err)
	}
	if err = os.Rename(tmpName, s.Path(a)); err != nil {
		return fmt.Errorf("%w: rename into %s: %v", contracts.ErrIOFailure, s.Path(a), err)
	}

	s.logger.WithFields(map[string]interface{}{
		"artifact": a.Name,
		"count":    len(values),
	}).Debug("Artifact written")

	return nil
}
