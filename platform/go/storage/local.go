package storage

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
)

// LocalStore writes blobs under a directory; the API serves that directory itself.
type LocalStore struct {
	dir           string
	prefix        string
	publicBaseURL string
}

// NewLocalStore builds a store rooted at dir whose files are served from publicBaseURL.
func NewLocalStore(dir, prefix, publicBaseURL string) *LocalStore {
	if dir == "" {
		panic("storage directory is required")
	}
	return &LocalStore{dir: dir, prefix: prefix, publicBaseURL: publicBaseURL}
}

// Dir is the root served at the public base URL.
func (s *LocalStore) Dir() string {
	return s.dir
}

func (s *LocalStore) Put(ctx context.Context, key string, _ string, body io.Reader) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	loc, err := ResolveObjectLocation("local", s.prefix, key)
	if err != nil {
		return "", err
	}

	path := filepath.Join(s.dir, filepath.FromSlash(loc.FullPath))
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return "", fmt.Errorf("create %s: %w", filepath.Dir(path), err)
	}

	tmp, err := os.CreateTemp(filepath.Dir(path), ".upload-*")
	if err != nil {
		return "", fmt.Errorf("create temp file: %w", err)
	}
	defer os.Remove(tmp.Name())

	if _, err := io.Copy(tmp, body); err != nil {
		_ = tmp.Close()
		return "", fmt.Errorf("write %s: %w", path, err)
	}
	if err := tmp.Close(); err != nil {
		return "", fmt.Errorf("close %s: %w", path, err)
	}
	if err := os.Rename(tmp.Name(), path); err != nil {
		return "", fmt.Errorf("move upload to %s: %w", path, err)
	}

	return joinURL(s.publicBaseURL, loc.FullPath), nil
}

// Check verifies the root directory exists or can be created.
func (s *LocalStore) Check(context.Context) error {
	if err := os.MkdirAll(s.dir, 0o755); err != nil {
		return fmt.Errorf("storage dir %s: %w", s.dir, err)
	}
	return nil
}

var _ BlobStore = (*LocalStore)(nil)
