package flatcache

import (
	"os"

	"github.com/apex/log"
)

// Flush rewrites the backing file with the current entries: the file is
// truncated, written in full, synced and closed. It writes even when the
// file is known to be up to date.
func (c Cache) Flush() (Cache, error) {
	return c.persist(false)
}

// Update is an alias for Flush.
func (c Cache) Update() (Cache, error) {
	return c.Flush()
}

// commit persists c if auto-update is enabled.
func (c Cache) commit() (Cache, error) {
	if !c.autoUpdate {
		return c, nil
	}
	return c.persist(false)
}

// touch is commit for a mutation that left the entries as they were. The
// write is skipped when this value last read or wrote the same snapshot.
func (c Cache) touch() (Cache, error) {
	if !c.autoUpdate {
		return c, nil
	}
	return c.persist(true)
}

func (c Cache) persist(skipSynced bool) (Cache, error) {
	if c.fs == nil || c.codec == nil {
		return Cache{}, newFileError(ErrOpen, "open", c.path, errNoBackingFile)
	}

	text, err := c.codec.Encode(c.entries)
	if err != nil {
		return Cache{}, newFileError(ErrWrite, "encode", c.path, err)
	}

	sum := digest(c.hashFunc, text)
	if skipSynced && sum == c.synced {
		c.logger.WithField("path", c.path).Debug("cache unchanged, skipping write")
		return c, nil
	}

	file, err := c.fs.OpenFile(c.path, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0o644)
	if err != nil {
		return Cache{}, newFileError(ErrOpen, "open", c.path, err)
	}
	if _, err := file.WriteString(text); err != nil {
		_ = file.Close()
		return Cache{}, newFileError(ErrWrite, "write", c.path, err)
	}
	if err := file.Sync(); err != nil {
		_ = file.Close()
		return Cache{}, newFileError(ErrWrite, "sync", c.path, err)
	}
	if err := file.Close(); err != nil {
		return Cache{}, newFileError(ErrWrite, "close", c.path, err)
	}

	c.synced = sum
	c.logger.WithFields(log.Fields{
		"path":    c.path,
		"entries": len(c.entries),
		"bytes":   len(text),
	}).Debug("cache written")

	return c, nil
}
