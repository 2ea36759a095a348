package flatcache

// Chain carries a Cache or the first error met while building it.
// Every method is skipped once an error is carried, so a sequence of
// operations needs a single error check at the end:
//
//	cache, err := flatcache.Load("results.cache", flatcache.WithAutoUpdate(true)).
//	    Set("a", "A").
//	    Defaults(flatcache.Entry{Key: "default", Value: "1"}).
//	    Remove("stale").
//	    Unwrap()
type Chain struct {
	cache Cache
	err   error
}

// From starts a chain from the results of an operation returning a Cache.
func From(cache Cache, err error) Chain {
	if err != nil {
		return Chain{err: err}
	}
	return Chain{cache: cache}
}

// Load opens the cache at path and starts a chain from it.
func Load(path string, options ...Option) Chain {
	return From(Open(path, options...))
}

// Then applies op to the carried cache unless an error is already carried.
func (ch Chain) Then(op func(Cache) (Cache, error)) Chain {
	if ch.err != nil {
		return ch
	}
	return From(op(ch.cache))
}

// Set is the chained form of Cache.Set.
func (ch Chain) Set(key, value string) Chain {
	return ch.Then(func(c Cache) (Cache, error) {
		return c.Set(key, value)
	})
}

// Remove is the chained form of Cache.Remove.
func (ch Chain) Remove(key string) Chain {
	return ch.Then(func(c Cache) (Cache, error) {
		return c.Remove(key)
	})
}

// SetMany is the chained form of Cache.SetMany.
func (ch Chain) SetMany(entries ...Entry) Chain {
	return ch.Then(func(c Cache) (Cache, error) {
		return c.SetMany(entries...)
	})
}

// Defaults is the chained form of Cache.Defaults.
func (ch Chain) Defaults(entries ...Entry) Chain {
	return ch.Then(func(c Cache) (Cache, error) {
		return c.Defaults(entries...)
	})
}

// Clear is the chained form of Cache.Clear.
func (ch Chain) Clear() Chain {
	return ch.Then(Cache.Clear)
}

// Flush is the chained form of Cache.Flush.
func (ch Chain) Flush() Chain {
	return ch.Then(Cache.Flush)
}

// Update is an alias for Flush.
func (ch Chain) Update() Chain {
	return ch.Flush()
}

// EnableAutoUpdate is the chained form of Cache.EnableAutoUpdate.
func (ch Chain) EnableAutoUpdate() Chain {
	if ch.err != nil {
		return ch
	}
	ch.cache = ch.cache.EnableAutoUpdate()
	return ch
}

// DisableAutoUpdate is the chained form of Cache.DisableAutoUpdate.
func (ch Chain) DisableAutoUpdate() Chain {
	if ch.err != nil {
		return ch
	}
	ch.cache = ch.cache.DisableAutoUpdate()
	return ch
}

// Get returns the value stored under key. It reports false when the key is
// absent or the chain carries an error.
func (ch Chain) Get(key string) (string, bool) {
	if ch.err != nil {
		return "", false
	}
	return ch.cache.Get(key)
}

// GetOr returns the value stored under key, or fallback when the key is
// absent or the chain carries an error.
func (ch Chain) GetOr(key, fallback string) string {
	if value, ok := ch.Get(key); ok {
		return value
	}
	return fallback
}

// Err returns the carried error, if any.
func (ch Chain) Err() error {
	return ch.err
}

// Unwrap returns the carried cache and error. When the error is non-nil the
// cache is the zero value: it has no backing file, and Flush or an
// auto-updating mutation on it fails with ErrOpen.
func (ch Chain) Unwrap() (Cache, error) {
	return ch.cache, ch.err
}
