package schema

import (
	"crypto/md5"
	"encoding/hex"
	"encoding/json"
	"os"
	"path/filepath"
	"time"
)

// CacheTTL is the maximum age of a cache entry before it is no longer
// preferred over a fresh download.
const CacheTTL = 24 * time.Hour

// cacheExt is the file extension used for persisted schema documents.
const cacheExt = ".json"

// DefaultCacheDir returns the schema cache directory under the user's home
// directory.
func DefaultCacheDir() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".traefik-validator", "cache"), nil
}

// Store persists schema documents on the filesystem, one file per schema
// identifier. It knows nothing about schema semantics: entries are opaque
// JSON documents keyed by a digest of their identifier, and freshness is
// derived from file modification time. The filesystem is the sole source of
// truth, so a Store needs no teardown and every lookup reflects writes made
// by other processes.
type Store struct {
	root string
	now  func() time.Time
}

// NewStore creates a Store rooted at the given directory. The directory is
// created lazily on first write.
func NewStore(root string) *Store {
	return &Store{
		root: root,
		now:  time.Now,
	}
}

// Locate maps a schema identifier to its cache file location. The mapping is
// a pure function of the identifier: the same identifier always yields the
// same location, across calls and process restarts.
func (s *Store) Locate(identifier string) string {
	digest := md5.Sum([]byte(identifier))
	return filepath.Join(s.root, hex.EncodeToString(digest[:])+cacheExt)
}

// IsFresh reports whether a cache entry exists at location and is younger
// than CacheTTL. A missing or unreadable entry is never fresh.
func (s *Store) IsFresh(location string) bool {
	info, err := os.Stat(location)
	if err != nil {
		return false
	}
	return s.now().Sub(info.ModTime()) < CacheTTL
}

// Exists reports whether a cache entry of any age is present at location.
func (s *Store) Exists(location string) bool {
	_, err := os.Stat(location)
	return err == nil
}

// Read loads and decodes the schema document at location.
func (s *Store) Read(location string) (map[string]interface{}, error) {
	data, err := os.ReadFile(location)
	if err != nil {
		return nil, &CacheReadError{Location: location, Err: err}
	}
	var schema map[string]interface{}
	if err := json.Unmarshal(data, &schema); err != nil {
		return nil, &CacheReadError{Location: location, Err: err}
	}
	return schema, nil
}

// Write persists a schema document at location, overwriting any prior
// content wholesale. The cache root is created if absent; creation is
// idempotent.
func (s *Store) Write(location string, schema map[string]interface{}) error {
	if err := os.MkdirAll(filepath.Dir(location), 0o755); err != nil {
		return err
	}
	data, err := json.Marshal(schema)
	if err != nil {
		return err
	}
	return os.WriteFile(location, data, 0o644)
}
