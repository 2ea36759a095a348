package flatcache

import (
	"github.com/apex/log"
	"github.com/spf13/afero"
)

// Option defines a function that configures a Cache.
type Option func(*Cache)

// WithFs sets a custom filesystem for the cache.
// This is primarily useful for testing with in-memory filesystems.
//
// Example:
//
//	cache, err := flatcache.Open("results.cache", flatcache.WithFs(afero.NewMemMapFs()))
func WithFs(fs afero.Fs) Option {
	return func(c *Cache) {
		c.fs = fs
	}
}

// WithAutoUpdate controls whether every successful mutation rewrites the
// backing file. It is off by default.
func WithAutoUpdate(enabled bool) Option {
	return func(c *Cache) {
		c.autoUpdate = enabled
	}
}

// WithCodec sets the codec used to read and write the backing file.
// The default is LineCodec.
//
// Note: a file written with one codec cannot be read back with another.
func WithCodec(codec Codec) Option {
	return func(c *Cache) {
		c.codec = codec
	}
}

// WithHashFunc sets the hash used to fingerprint encoded snapshots.
// The default is xxHash64.
func WithHashFunc(hashFunc HashFunc) Option {
	return func(c *Cache) {
		c.hashFunc = hashFunc
	}
}

// WithLogger sets the logger receiving debug traces of loads and writes.
// By default nothing is logged.
func WithLogger(logger log.Interface) Option {
	return func(c *Cache) {
		c.logger = logger
	}
}
