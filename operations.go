package flatcache

// Set stores value under key. An existing key keeps its position and gets
// the new value; a new key is appended.
//
// With auto-update enabled the file is rewritten before Set returns. If that
// write fails the error is returned and the updated cache is discarded. A Set
// that leaves the value as it was skips the write when the file is known to
// hold the current entries.
func (c Cache) Set(key, value string) (Cache, error) {
	next := c
	if i := c.index(key); i >= 0 {
		if c.entries[i].Value == value {
			return c.touch()
		}
		next.entries = append([]Entry(nil), c.entries...)
		next.entries[i].Value = value
	} else {
		next.entries = make([]Entry, len(c.entries), len(c.entries)+1)
		copy(next.entries, c.entries)
		next.entries = append(next.entries, Entry{Key: key, Value: value})
	}

	return next.commit()
}

// Remove deletes key, keeping the order of the remaining entries.
// Removing an absent key returns the cache unchanged.
func (c Cache) Remove(key string) (Cache, error) {
	i := c.index(key)
	if i < 0 {
		return c, nil
	}

	next := c
	next.entries = make([]Entry, 0, len(c.entries)-1)
	next.entries = append(next.entries, c.entries[:i]...)
	next.entries = append(next.entries, c.entries[i+1:]...)

	return next.commit()
}

// SetMany calls Set for each entry in order, so later entries override
// earlier ones with the same key. It stops at the first error.
//
// With auto-update enabled the file is rewritten once per entry. To write
// once, disable auto-update, apply the batch and Flush.
func (c Cache) SetMany(entries ...Entry) (Cache, error) {
	var err error
	for _, entry := range entries {
		if c, err = c.Set(entry.Key, entry.Value); err != nil {
			return Cache{}, err
		}
	}
	return c, nil
}

// Defaults sets each entry whose key is absent at the time it is processed.
// Existing values are never overwritten. It stops at the first error.
func (c Cache) Defaults(entries ...Entry) (Cache, error) {
	var err error
	for _, entry := range entries {
		if c.Has(entry.Key) {
			continue
		}
		if c, err = c.Set(entry.Key, entry.Value); err != nil {
			return Cache{}, err
		}
	}
	return c, nil
}

// Clear removes all entries.
func (c Cache) Clear() (Cache, error) {
	next := c
	next.entries = nil
	return next.commit()
}

// EnableAutoUpdate turns auto-update on. The current entries are not
// written; only later mutations are.
func (c Cache) EnableAutoUpdate() Cache {
	c.autoUpdate = true
	return c
}

// DisableAutoUpdate turns auto-update off.
func (c Cache) DisableAutoUpdate() Cache {
	c.autoUpdate = false
	return c
}
