// Package uploads resolves optionally-present uploaded files into persisted
// files under a public static directory, and serves them back.
package uploads

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	lru "github.com/hashicorp/golang-lru/v2"

	"github.com/bangladeshiit/cms-backend/internal"
)

// PublicPrefix is the URL prefix under which stored team images are served.
// It is also the prefix of every public path embedded in a document.
const PublicPrefix = "/uploads/teamImages"

var (
	// ErrWriteFailed is returned when the file bytes could not be persisted.
	// Callers must not write a document referencing the file in that case.
	ErrWriteFailed = fmt.Errorf("storage write failed")
	// ErrFileNotFound is returned when the requested file is not on disk.
	ErrFileNotFound = fmt.Errorf("file not found")
)

// Storage persists uploaded team images under a fixed local directory and
// hands out public-facing relative paths. It never deletes, compresses,
// resizes or validates image content. Superseded files stay on disk.
type Storage struct {
	baseDir string
	cache   *lru.Cache[string, []byte]
}

// New creates the storage rooted at baseDir, creating the directory if it
// does not exist yet.
func New(baseDir string) (*Storage, error) {
	if baseDir == "" {
		return nil, fmt.Errorf("upload directory is not defined")
	}
	if err := os.MkdirAll(baseDir, 0o755); err != nil {
		return nil, fmt.Errorf("cannot create upload directory: %w", err)
	}
	cache, err := lru.New[string, []byte](256)
	if err != nil {
		return nil, fmt.Errorf("cannot create cache: %w", err)
	}
	return &Storage{baseDir: baseDir, cache: cache}, nil
}

// Put persists the file bytes under a generated collision-resistant name and
// returns the public path to embed in a document. The stored name is
// <unix-milli>-<random-suffix><original-extension>, so two uploads within the
// same millisecond still get distinct names. The extension is taken verbatim
// from the original filename.
func (s *Storage) Put(data io.Reader, originalName string) (string, error) {
	buff, err := io.ReadAll(data)
	if err != nil {
		return "", fmt.Errorf("cannot read file: %w", err)
	}
	name := fmt.Sprintf("%d-%s%s", time.Now().UnixMilli(), internal.RandomHex(4), filepath.Ext(originalName))
	if err := os.WriteFile(filepath.Join(s.baseDir, name), buff, 0o644); err != nil {
		return "", fmt.Errorf("%w: %v", ErrWriteFailed, err)
	}
	return PublicPrefix + "/" + name, nil
}

// File returns the bytes of a stored file by its generated name. It checks
// the cache first and falls back to the disk.
func (s *Storage) File(name string) ([]byte, error) {
	if data, ok := s.cache.Get(name); ok {
		return data, nil
	}
	data, err := os.ReadFile(filepath.Join(s.baseDir, name))
	if err != nil {
		if os.IsNotExist(err) {
			return nil, ErrFileNotFound
		}
		return nil, err
	}
	s.cache.Add(name, data)
	return data, nil
}
