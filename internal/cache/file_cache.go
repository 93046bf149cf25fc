// Package cache holds short-lived copies of station board payloads so that
// repeated lookups within a refresh interval do not hit the RFI service.
package cache

import (
	"bufio"
	"bytes"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"time"
)

const fileExt = ".board"

// Key hashes a request URL into a stable cache key
func Key(url string) string {
	hash := sha256.Sum256([]byte(url))
	return hex.EncodeToString(hash[:])
}

// FileCache implements a file-based cache with TTL. Each entry is one file:
// the expiry time on the first line, the payload verbatim after it.
type FileCache struct {
	dir string
	ttl time.Duration
	now func() time.Time
}

// NewFileCache creates a new file cache
func NewFileCache(dir string, ttl time.Duration) (*FileCache, error) {
	// Create cache directory if it doesn't exist (0750 for security)
	if err := os.MkdirAll(dir, 0750); err != nil {
		return nil, err
	}

	return &FileCache{
		dir: dir,
		ttl: ttl,
		now: time.Now,
	}, nil
}

// DefaultCacheDir returns the default cache directory
func DefaultCacheDir() string {
	// Check XDG_CACHE_HOME first
	if xdgCache := os.Getenv("XDG_CACHE_HOME"); xdgCache != "" {
		return filepath.Join(xdgCache, "treni")
	}

	// Fall back to ~/.cache/treni
	home, err := os.UserHomeDir()
	if err != nil {
		return filepath.Join(os.TempDir(), "treni-cache")
	}

	return filepath.Join(home, ".cache", "treni")
}

// TTL returns how long entries stay valid
func (c *FileCache) TTL() time.Duration {
	return c.ttl
}

func (c *FileCache) filename(key string) string {
	return filepath.Join(c.dir, Key(key)+fileExt)
}

// Get retrieves a value from the cache
func (c *FileCache) Get(key string) ([]byte, bool) {
	filename := c.filename(key)

	// #nosec G304 -- filename is derived from hash of cache key, not user input
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, false
	}

	expiresAt, payload, err := decodeEntry(data)
	if err != nil || c.now().After(expiresAt) {
		_ = os.Remove(filename)
		return nil, false
	}

	return payload, true
}

// Set stores a value in the cache
func (c *FileCache) Set(key string, value []byte) error {
	var buf bytes.Buffer
	buf.WriteString(c.now().Add(c.ttl).UTC().Format(time.RFC3339Nano))
	buf.WriteByte('\n')
	buf.Write(value)

	// Write then rename so readers never see a partial entry
	tmp, err := os.CreateTemp(c.dir, "entry-*")
	if err != nil {
		return err
	}
	if _, err := tmp.Write(buf.Bytes()); err != nil {
		_ = tmp.Close()
		_ = os.Remove(tmp.Name())
		return err
	}
	if err := tmp.Close(); err != nil {
		_ = os.Remove(tmp.Name())
		return err
	}
	return os.Rename(tmp.Name(), c.filename(key))
}

// Clear removes all cache entries
func (c *FileCache) Clear() error {
	return c.sweep(func([]byte) bool { return true })
}

// Cleanup removes expired and unreadable entries
func (c *FileCache) Cleanup() error {
	now := c.now()
	return c.sweep(func(data []byte) bool {
		expiresAt, _, err := decodeEntry(data)
		return err != nil || now.After(expiresAt)
	})
}

func (c *FileCache) sweep(remove func(data []byte) bool) error {
	entries, err := os.ReadDir(c.dir)
	if err != nil {
		return err
	}

	for _, entry := range entries {
		if entry.IsDir() || filepath.Ext(entry.Name()) != fileExt {
			continue
		}

		filename := filepath.Join(c.dir, entry.Name())
		// #nosec G304 -- filename is from ReadDir within cache directory
		data, err := os.ReadFile(filename)
		if err != nil {
			continue
		}
		if remove(data) {
			_ = os.Remove(filename)
		}
	}

	return nil
}

var errCorruptEntry = errors.New("corrupt cache entry")

func decodeEntry(data []byte) (time.Time, []byte, error) {
	r := bufio.NewReader(bytes.NewReader(data))
	header, err := r.ReadString('\n')
	if err != nil {
		return time.Time{}, nil, errCorruptEntry
	}
	expiresAt, err := time.Parse(time.RFC3339Nano, strings.TrimSpace(header))
	if err != nil {
		return time.Time{}, nil, errCorruptEntry
	}
	return expiresAt, data[len(header):], nil
}
