package driver

import (
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/vmihailenco/msgpack/v5"

	"oxygen/internal/source"
)

// Bump when CachePayload changes shape; old entries then read as misses.
const cacheSchemaVersion uint16 = 1

// Digest is a SHA-256 value.
type Digest [sha256.Size]byte

// CachePayload records the outcome of a clean front-end run. Files with
// diagnostics are never cached, so a hit always means "ok" and carries
// the same counts a fresh run would report.
type CachePayload struct {
	Schema     uint16
	Path       string
	Tokens     int
	Statements int
}

// FileKey hashes path and content into the cache key. The path is part of
// the key so a rename re-checks.
func FileKey(f *source.File) Digest {
	h := sha256.New()
	h.Write([]byte(f.Path))
	h.Write([]byte{0})
	for _, line := range f.Lines {
		h.Write([]byte(line))
		h.Write([]byte{'\n'})
	}
	var d Digest
	copy(d[:], h.Sum(nil))
	return d
}

// DiskCache stores front-end results on disk. Safe for concurrent use.
type DiskCache struct {
	mu  sync.RWMutex
	dir string
}

// OpenDiskCache initializes and returns a disk cache at the standard
// location.
func OpenDiskCache(app string) (*DiskCache, error) {
	base := os.Getenv("XDG_CACHE_HOME")
	if base == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, err
		}
		base = filepath.Join(home, ".cache")
	}
	dir := filepath.Join(base, app)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, err
	}
	return &DiskCache{dir: dir}, nil
}

func (c *DiskCache) pathFor(key Digest) string {
	hexKey := hex.EncodeToString(key[:])
	return filepath.Join(c.dir, "front", hexKey+".mp")
}

// Put serializes and writes a payload, atomically replacing any previous
// entry.
func (c *DiskCache) Put(key Digest, payload *CachePayload) error {
	if c == nil {
		return nil
	}
	c.mu.Lock()
	defer c.mu.Unlock()

	p := c.pathFor(key)
	if err := os.MkdirAll(filepath.Dir(p), 0o755); err != nil {
		return err
	}
	f, err := os.CreateTemp(filepath.Dir(p), "tmp-*")
	if err != nil {
		return err
	}
	defer func() {
		// No-op after a successful rename.
		if err := os.Remove(f.Name()); err != nil && !errors.Is(err, os.ErrNotExist) {
			fmt.Fprintf(os.Stderr, "cache: remove temp file: %v\n", err)
		}
	}()

	if err := msgpack.NewEncoder(f).Encode(payload); err != nil {
		_ = f.Close()
		return err
	}
	if err := f.Close(); err != nil {
		return err
	}
	return os.Rename(f.Name(), p)
}

// Get reads the payload for key into out. A missing entry is (false, nil).
func (c *DiskCache) Get(key Digest, out *CachePayload) (bool, error) {
	if c == nil {
		return false, nil
	}
	c.mu.RLock()
	defer c.mu.RUnlock()

	f, err := os.Open(c.pathFor(key))
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return false, nil
		}
		return false, err
	}
	defer func() { _ = f.Close() }()

	if err := msgpack.NewDecoder(f).Decode(out); err != nil {
		return false, err
	}
	return true, nil
}
