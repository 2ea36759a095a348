package flatcache

import (
	"fmt"
)

// Stats represents a snapshot of the cache.
type Stats struct {
	Entries int    // Number of entries
	Size    int64  // Size of the encoded entries in bytes
	Digest  string // Hash of the encoded entries
	Synced  bool   // Whether the backing file is known to hold exactly these entries
}

// Stats returns statistics about the cache.
func (c Cache) Stats() (Stats, error) {
	if c.codec == nil {
		return Stats{}, errNoBackingFile
	}
	text, err := c.codec.Encode(c.entries)
	if err != nil {
		return Stats{}, fmt.Errorf("failed to encode entries: %w", err)
	}

	sum := digest(c.hashFunc, text)
	return Stats{
		Entries: len(c.entries),
		Size:    int64(len(text)),
		Digest:  sum,
		Synced:  sum == c.synced,
	}, nil
}
