package flatcache

import (
	"errors"
	"fmt"
	"os"

	"github.com/apex/log"
	"github.com/apex/log/handlers/discard"
	"github.com/spf13/afero"
)

// Cache is an ordered set of string entries mirrored to a single file.
//
// A Cache is a value: operations return a new Cache and never modify the
// entries of the one they were called on. The zero value has no backing
// file; use Open.
type Cache struct {
	path       string
	entries    []Entry
	autoUpdate bool
	fs         afero.Fs
	codec      Codec
	hashFunc   HashFunc
	synced     string // digest of the text last read from or written to path
	logger     log.Interface
}

// Open loads the cache stored at path, creating an empty file if none exists.
// Lines that cannot be decoded are skipped.
func Open(path string, options ...Option) (Cache, error) {
	cache := Cache{
		path:     path,
		fs:       afero.NewOsFs(),
		codec:    LineCodec{},
		hashFunc: defaultHashFunc,
		logger:   &log.Logger{Handler: discard.Default, Level: log.ErrorLevel},
	}

	// Apply options
	for _, option := range options {
		option(&cache)
	}

	return cache.load(true)
}

// OpenTemp creates a cache on a fresh in-memory filesystem.
// It panics if the cache cannot be created.
func OpenTemp(options ...Option) Cache {
	options = append([]Option{WithFs(afero.NewMemMapFs())}, options...)
	cache, err := Open("/flatcache.tmp", options...)
	if err != nil {
		panic(fmt.Sprintf("failed to create temp cache: %v", err))
	}
	return cache
}

// load reads and decodes the backing file. A missing file is created and
// the load retried once.
func (c Cache) load(createMissing bool) (Cache, error) {
	file, err := c.fs.Open(c.path)
	if err != nil {
		if createMissing && errors.Is(err, os.ErrNotExist) {
			if err := c.create(); err != nil {
				return Cache{}, err
			}
			return c.load(false)
		}
		return Cache{}, newFileError(ErrOpen, "open", c.path, err)
	}
	defer file.Close()

	text, err := readAll(file)
	if err != nil {
		return Cache{}, newFileError(ErrRead, "read", c.path, err)
	}

	entries, err := c.codec.Decode(text)
	if err != nil {
		return Cache{}, newFileError(ErrRead, "decode", c.path, err)
	}

	c.entries = entries
	c.synced = digest(c.hashFunc, text)
	c.logger.WithFields(log.Fields{
		"path":    c.path,
		"entries": len(entries),
		"bytes":   len(text),
	}).Debug("cache loaded")

	return c, nil
}

// create writes an empty backing file.
func (c Cache) create() error {
	file, err := c.fs.Create(c.path)
	if err != nil {
		return newFileError(ErrOpen, "create", c.path, err)
	}
	if err := file.Close(); err != nil {
		return newFileError(ErrOpen, "create", c.path, err)
	}

	c.logger.WithField("path", c.path).Debug("cache file created")
	return nil
}

// Get returns the value stored under key.
func (c Cache) Get(key string) (string, bool) {
	if i := c.index(key); i >= 0 {
		return c.entries[i].Value, true
	}
	return "", false
}

// Has reports whether key is present.
func (c Cache) Has(key string) bool {
	return c.index(key) >= 0
}

// Lookup is a strict Get: it fails with ErrDuplicateKey when more than one
// entry carries key.
func (c Cache) Lookup(key string) (string, bool, error) {
	value, found := "", false
	for _, entry := range c.entries {
		if entry.Key != key {
			continue
		}
		if found {
			return "", false, fmt.Errorf("%w: %q", ErrDuplicateKey, key)
		}
		value, found = entry.Value, true
	}
	return value, found, nil
}

// Verify checks that every key occurs once. It returns a *ValidationError
// with one ErrDuplicateKey error per repeated key, or nil.
func (c Cache) Verify() error {
	counts := make(map[string]int, len(c.entries))
	var order []string
	for _, entry := range c.entries {
		if counts[entry.Key] == 1 {
			order = append(order, entry.Key)
		}
		counts[entry.Key]++
	}

	var errs []error
	for _, key := range order {
		errs = append(errs, fmt.Errorf("%w: %q occurs %d times", ErrDuplicateKey, key, counts[key]))
	}
	return newValidationError(errs)
}

// Len returns the number of entries.
func (c Cache) Len() int {
	return len(c.entries)
}

// Keys returns the keys in entry order.
func (c Cache) Keys() []string {
	keys := make([]string, len(c.entries))
	for i, entry := range c.entries {
		keys[i] = entry.Key
	}
	return keys
}

// Entries returns a copy of the entries in order.
func (c Cache) Entries() []Entry {
	if c.entries == nil {
		return nil
	}
	return append([]Entry(nil), c.entries...)
}

// Path returns the path of the backing file.
func (c Cache) Path() string {
	return c.path
}

// AutoUpdate reports whether mutations are persisted immediately.
func (c Cache) AutoUpdate() bool {
	return c.autoUpdate
}

// index returns the position of the first entry with key, or -1.
func (c Cache) index(key string) int {
	for i, entry := range c.entries {
		if entry.Key == key {
			return i
		}
	}
	return -1
}
