package flatcache

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinel errors
var (
	// ErrOpen is returned when the backing file cannot be opened or created.
	ErrOpen = errors.New("open failed")

	// ErrRead is returned when the backing file cannot be read or decoded.
	ErrRead = errors.New("read failed")

	// ErrWrite is returned when persisting entries fails after the file was opened.
	ErrWrite = errors.New("write failed")

	// ErrDuplicateKey is returned by strict checks when a key occurs more than once.
	ErrDuplicateKey = errors.New("duplicate key")
)

// FileError describes a failed filesystem operation on the backing file.
// Kind is one of ErrOpen, ErrRead or ErrWrite; Err is the underlying cause.
type FileError struct {
	Kind error
	Op   string
	Path string
	Err  error
}

// Error implements the error interface.
func (fe *FileError) Error() string {
	return fmt.Sprintf("failed to %s %s: %v", fe.Op, fe.Path, fe.Err)
}

// Unwrap returns both the kind and the cause, so errors.Is matches either
// ErrOpen/ErrRead/ErrWrite or the filesystem error (e.g. fs.ErrNotExist).
func (fe *FileError) Unwrap() []error {
	return []error{fe.Kind, fe.Err}
}

func newFileError(kind error, op, path string, err error) error {
	return &FileError{Kind: kind, Op: op, Path: path, Err: err}
}

// errNoBackingFile is the cause reported when a Cache that was not opened
// (the zero value) is asked to persist.
var errNoBackingFile = errors.New("cache has no backing file")

// ValidationError is returned by Verify when the entries hold repeated keys.
// Errors has one entry per repeated key, each wrapping ErrDuplicateKey, in
// the order the keys first repeat.
type ValidationError struct {
	Errors []error
}

// Error implements the error interface.
func (ve *ValidationError) Error() string {
	switch len(ve.Errors) {
	case 0:
		return "cache entries are inconsistent"
	case 1:
		return "cache entries are inconsistent: " + ve.Errors[0].Error()
	}

	msgs := make([]string, len(ve.Errors))
	for i, err := range ve.Errors {
		msgs[i] = err.Error()
	}
	return fmt.Sprintf("cache entries are inconsistent (%d keys): %s", len(ve.Errors), strings.Join(msgs, "; "))
}

// Unwrap lets errors.Is match ErrDuplicateKey through the collected errors.
func (ve *ValidationError) Unwrap() []error {
	return ve.Errors
}

func newValidationError(errs []error) error {
	if len(errs) == 0 {
		return nil
	}
	return &ValidationError{Errors: errs}
}
