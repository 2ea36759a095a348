/*
Package flatcache provides a persistent key-value cache backed by a single flat text file.

It is meant for keeping the results of expensive computations across process runs,
where the data set is small enough to hold in memory and rewrite on every change.

# Overview

A Cache is an ordered list of string entries mirrored to one file. Keys are unique:
setting an existing key replaces its value in place, a new key is appended at the end.
Entries keep their insertion order, in memory and on disk.

Caches are values. Every operation returns a new Cache (or an error) and leaves the
Cache it was called on untouched, so a caller never observes a change it did not make.

# File Format

Each entry occupies one line:

	!key=value

The leading `!` marks an entry line; lines without it are ignored when the file is read.
The key ends at the first `=`, so values may contain `=` but keys may not. Neither keys
nor values may contain newlines. An empty file holds zero entries.

Other formats can be plugged in with WithCodec; YAMLCodec and TOMLCodec are provided.

# Basic Usage

Opening a cache (the file is created if it does not exist):

	cache, err := flatcache.Open("results.cache", flatcache.WithAutoUpdate(true))
	if err != nil {
	    log.Fatalf("Failed to open cache: %v", err)
	}

Reading and writing:

	if value, ok := cache.Get("answer"); ok {
	    fmt.Println("Cache hit:", value)
	} else {
	    cache, err = cache.Set("answer", compute())
	    if err != nil {
	        log.Fatalf("Failed to store result: %v", err)
	    }
	}

# Chaining

Chain carries either a Cache or the first error, so several operations can be applied
with a single error check:

	cache, err := flatcache.Load("results.cache", flatcache.WithAutoUpdate(true)).
	    Set("a", "A").
	    Defaults(flatcache.Entry{Key: "default", Value: "1"}).
	    SetMany(
	        flatcache.Entry{Key: "msg", Value: "Hello!"},
	        flatcache.Entry{Key: "secret", Value: "123"},
	    ).
	    Remove("secret").
	    Unwrap()

Once an error is carried the remaining operations are skipped. GetOr returns a fallback
for both a missing key and a failed chain:

	greeting := flatcache.Load(path).GetOr("msg", "hello")

# Persistence

With auto-update enabled every successful mutation truncates the file, writes all
entries, syncs and closes it. A Set that leaves the value as it was skips the write
when this cache value last read or wrote the same snapshot. Without auto-update, call Flush to write. SetMany and Defaults write
once per entry under auto-update; for one write, disable auto-update, apply the batch
and Flush.

No file handle is kept between calls. Two caches sharing one file, in one process or
several, may overwrite each other.

# Error Handling

File failures are returned as *FileError and match one of:

  - ErrOpen: the file cannot be opened or created
  - ErrRead: the file cannot be read or decoded
  - ErrWrite: writing, syncing or closing the file failed

The underlying filesystem error is also reachable through errors.Is and errors.As:

	_, err := flatcache.Open("/missing/dir/results.cache")
	if errors.Is(err, flatcache.ErrOpen) {
	    // Handle unreachable path
	}

Verify and Lookup report ErrDuplicateKey for files edited by hand to repeat a key.
*/
package flatcache
