package flatcache

import (
	"fmt"
	"strings"

	"github.com/BurntSushi/toml"
)

// TOMLCodec stores entries as an array of tables, which keeps their order:
//
//	[[entry]]
//	  key = "msg"
//	  value = "Hello, World!"
type TOMLCodec struct{}

type tomlDocument struct {
	Entries []tomlEntry `toml:"entry"`
}

type tomlEntry struct {
	Key   string `toml:"key"`
	Value string `toml:"value"`
}

// Decode implements Codec.
func (TOMLCodec) Decode(text string) ([]Entry, error) {
	var doc tomlDocument
	if _, err := toml.Decode(text, &doc); err != nil {
		return nil, fmt.Errorf("failed to decode toml: %w", err)
	}

	if len(doc.Entries) == 0 {
		return nil, nil
	}
	entries := make([]Entry, len(doc.Entries))
	for i, e := range doc.Entries {
		entries[i] = Entry(e)
	}
	return entries, nil
}

// Encode implements Codec. No entries encode to an empty document.
func (TOMLCodec) Encode(entries []Entry) (string, error) {
	if len(entries) == 0 {
		return "", nil
	}

	doc := tomlDocument{Entries: make([]tomlEntry, len(entries))}
	for i, e := range entries {
		doc.Entries[i] = tomlEntry(e)
	}

	var buf strings.Builder
	if err := toml.NewEncoder(&buf).Encode(doc); err != nil {
		return "", fmt.Errorf("failed to encode toml: %w", err)
	}
	return buf.String(), nil
}
