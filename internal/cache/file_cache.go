package cache

import (
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"time"
)

const entryExt = ".json"

// FileCache keeps rendered text on disk, one file per key, with a TTL.
type FileCache struct {
	dir string
	ttl time.Duration
	now func() time.Time
}

type entry struct {
	Text      string    `json:"text"`
	ExpiresAt time.Time `json:"expires_at"`
}

// NewFileCache creates the cache directory if needed.
func NewFileCache(dir string, ttl time.Duration) (*FileCache, error) {
	if err := os.MkdirAll(dir, 0750); err != nil {
		return nil, err
	}
	return &FileCache{dir: dir, ttl: ttl, now: time.Now}, nil
}

// DefaultDir returns the directory for highlighted file renders.
func DefaultDir() string {
	if xdgCache := os.Getenv("XDG_CACHE_HOME"); xdgCache != "" {
		return filepath.Join(xdgCache, "hoverscroll", "highlight")
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return filepath.Join(os.TempDir(), "hoverscroll-cache", "highlight")
	}
	return filepath.Join(home, ".cache", "hoverscroll", "highlight")
}

// Key derives a cache key from its parts. Parts are joined unambiguously so
// ("ab", "c") and ("a", "bc") differ.
func Key(parts ...string) string {
	h := sha256.New()
	for _, p := range parts {
		_, _ = h.Write([]byte(p))
		_, _ = h.Write([]byte{0})
	}
	return hex.EncodeToString(h.Sum(nil))
}

// filename hashes key again so arbitrary strings map to safe names.
func (c *FileCache) filename(key string) string {
	return filepath.Join(c.dir, Key(key)+entryExt)
}

// Get returns the cached text. Expired or unreadable entries are removed.
func (c *FileCache) Get(key string) (string, bool) {
	name := c.filename(key)

	// #nosec G304 -- name is a hash inside the cache directory
	data, err := os.ReadFile(name)
	if err != nil {
		return "", false
	}

	var e entry
	if err := json.Unmarshal(data, &e); err != nil || c.now().After(e.ExpiresAt) {
		_ = os.Remove(name)
		return "", false
	}
	return e.Text, true
}

// Set stores text under key.
func (c *FileCache) Set(key, text string) error {
	data, err := json.Marshal(entry{Text: text, ExpiresAt: c.now().Add(c.ttl)})
	if err != nil {
		return err
	}
	return os.WriteFile(c.filename(key), data, 0600)
}

// Clear removes every entry.
func (c *FileCache) Clear() error {
	return c.sweep(func(string) bool { return true })
}

// Cleanup removes expired and corrupt entries.
func (c *FileCache) Cleanup() error {
	now := c.now()
	return c.sweep(func(name string) bool {
		// #nosec G304 -- name comes from ReadDir within the cache directory
		data, err := os.ReadFile(name)
		if err != nil {
			return false
		}
		var e entry
		if err := json.Unmarshal(data, &e); err != nil {
			return true
		}
		return now.After(e.ExpiresAt)
	})
}

func (c *FileCache) sweep(remove func(name string) bool) error {
	entries, err := os.ReadDir(c.dir)
	if err != nil {
		return err
	}
	for _, de := range entries {
		if de.IsDir() || !strings.HasSuffix(de.Name(), entryExt) {
			continue
		}
		name := filepath.Join(c.dir, de.Name())
		if remove(name) {
			_ = os.Remove(name)
		}
	}
	return nil
}
