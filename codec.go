package flatcache

import (
	"strings"
)

const (
	sentinel  = "!"
	separator = "="
)

// Entry is a single key/value pair stored in the cache.
type Entry struct {
	Key   string
	Value string
}

// Codec converts between the text stored in the backing file and the
// ordered entry list. Implementations must preserve entry order.
type Codec interface {
	Decode(text string) ([]Entry, error)
	Encode(entries []Entry) (string, error)
}

// LineCodec is the default codec: one `!key=value` line per entry.
type LineCodec struct{}

// Decode implements Codec. It never fails.
func (LineCodec) Decode(text string) ([]Entry, error) {
	return Decode(text), nil
}

// Encode implements Codec. It never fails.
func (LineCodec) Encode(entries []Entry) (string, error) {
	return Encode(entries), nil
}

// CodecFuncs adapts a pair of plain functions to the Codec interface.
type CodecFuncs struct {
	DecodeFunc func(text string) ([]Entry, error)
	EncodeFunc func(entries []Entry) (string, error)
}

// Decode implements Codec.
func (cf CodecFuncs) Decode(text string) ([]Entry, error) {
	return cf.DecodeFunc(text)
}

// Encode implements Codec.
func (cf CodecFuncs) Encode(entries []Entry) (string, error) {
	return cf.EncodeFunc(entries)
}

// Decode parses text in the line format. Lines without the leading `!` or
// without a `=` are skipped. The key ends at the first `=`; the value keeps
// any further `=` characters.
//
// Keys and values cannot contain newlines.
func Decode(text string) []Entry {
	lines := strings.Split(text, "\n")
	if n := len(lines); lines[n-1] == "" {
		lines = lines[:n-1]
	}

	var entries []Entry
	for _, line := range lines {
		if entry, ok := parseLine(line); ok {
			entries = append(entries, entry)
		}
	}
	return entries
}

// Encode renders entries in the line format, one `!key=value\n` per entry.
func Encode(entries []Entry) string {
	var buf strings.Builder
	for _, entry := range entries {
		buf.WriteString(sentinel)
		buf.WriteString(entry.Key)
		buf.WriteString(separator)
		buf.WriteString(entry.Value)
		buf.WriteByte('\n')
	}
	return buf.String()
}

func parseLine(line string) (Entry, bool) {
	rest, ok := strings.CutPrefix(line, sentinel)
	if !ok {
		return Entry{}, false
	}
	key, value, ok := strings.Cut(rest, separator)
	if !ok {
		return Entry{}, false
	}
	return Entry{Key: key, Value: value}, true
}
