// Package local implements the evidence file store on the local filesystem.
// Production deployments point the capture pipeline at an object storage
// collaborator instead; this adapter exists for development and tests.
package local

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/casetrail/casetrail-backend/internal/config"
)

// Store writes evidence files under a root directory. Paths are always
// namespaced by owner id by the caller; the store rejects any path that
// escapes the root.
type Store struct {
	root string
	ttl  time.Duration
}

// New creates a Store rooted at cfg.Root, creating the directory if needed.
func New(cfg config.StorageConfig) (*Store, error) {
	abs, err := filepath.Abs(cfg.Root)
	if err != nil {
		return nil, fmt.Errorf("storage root: %w", err)
	}
	if err := os.MkdirAll(abs, 0o755); err != nil {
		return nil, fmt.Errorf("create storage root: %w", err)
	}
	return &Store{root: abs, ttl: cfg.SignedURLTTL}, nil
}

// Upload writes data to path under the root.
func (s *Store) Upload(ctx context.Context, path string, data []byte, contentType string) error {
	full, err := s.resolve(path)
	if err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(full), 0o755); err != nil {
		return fmt.Errorf("storage: mkdir: %w", err)
	}
	if err := os.WriteFile(full, data, 0o644); err != nil {
		return fmt.Errorf("storage: write %s: %w", path, err)
	}
	return nil
}

// SignedURL returns a time-limited file URL. The local store has no real
// signing authority; the expiry is advisory and exists so callers exercise
// the same contract as the object-storage collaborator.
func (s *Store) SignedURL(ctx context.Context, path string, ttl time.Duration) (string, error) {
	full, err := s.resolve(path)
	if err != nil {
		return "", err
	}
	if _, err := os.Stat(full); err != nil {
		return "", fmt.Errorf("storage: stat %s: %w", path, err)
	}
	if ttl <= 0 {
		ttl = s.ttl
	}
	expires := time.Now().Add(ttl).Unix()
	return fmt.Sprintf("file://%s?expires=%d", full, expires), nil
}

// resolve joins path onto the root and rejects traversal outside it.
func (s *Store) resolve(path string) (string, error) {
	full := filepath.Join(s.root, filepath.FromSlash(path))
	if !strings.HasPrefix(full, s.root+string(filepath.Separator)) {
		return "", fmt.Errorf("storage: path %q escapes root", path)
	}
	return full, nil
}
