package flatcache

import (
	"errors"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
)

func TestDecode(t *testing.T) {
	testCases := []struct {
		name     string
		text     string
		expected []Entry
	}{
		{
			name:     "Empty text",
			text:     "",
			expected: nil,
		},
		{
			name: "Embedded separators",
			text: "!a=Hello, World!\n!b=SGVsbG8sIFdvcmxkIQ==\n",
			expected: []Entry{
				{Key: "a", Value: "Hello, World!"},
				{Key: "b", Value: "SGVsbG8sIFdvcmxkIQ=="},
			},
		},
		{
			name: "Missing final newline",
			text: "!a=1\n!b=2",
			expected: []Entry{
				{Key: "a", Value: "1"},
				{Key: "b", Value: "2"},
			},
		},
		{
			name: "Lines without sentinel are skipped",
			text: "# comment\n\n!a=1\na=2\ngarbage\n!b=\n",
			expected: []Entry{
				{Key: "a", Value: "1"},
				{Key: "b", Value: ""},
			},
		},
		{
			name: "Lines without separator are skipped",
			text: "!novalue\n!k=v\n",
			expected: []Entry{
				{Key: "k", Value: "v"},
			},
		},
		{
			name: "Duplicates are kept in order",
			text: "!a=1\n!b=2\n!a=3\n",
			expected: []Entry{
				{Key: "a", Value: "1"},
				{Key: "b", Value: "2"},
				{Key: "a", Value: "3"},
			},
		},
		{
			name: "Carriage return stays in value",
			text: "!a=1\r\n",
			expected: []Entry{
				{Key: "a", Value: "1\r"},
			},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			got := Decode(tc.text)
			if diff := cmp.Diff(tc.expected, got, cmpopts.EquateEmpty()); diff != "" {
				t.Fatalf("Decode(%q) mismatch (-want +got):\n%s", tc.text, diff)
			}
		})
	}
}

func TestEncode(t *testing.T) {
	if got := Encode(nil); got != "" {
		t.Fatalf("expected empty encoding for no entries, got %q", got)
	}

	entries := []Entry{
		{Key: "a", Value: "Hello, World!"},
		{Key: "b", Value: "x=y=z"},
		{Key: "", Value: ""},
	}
	expected := "!a=Hello, World!\n!b=x=y=z\n!=\n"
	if got := Encode(entries); got != expected {
		t.Fatalf("expected %q, got %q", expected, got)
	}
}

func TestCodecRoundTrip(t *testing.T) {
	entries := []Entry{
		{Key: "z", Value: "last key first"},
		{Key: "token", Value: "SGVsbG8sIFdvcmxkIQ=="},
		{Key: "path", Value: "/tmp/a=b"},
		{Key: "empty", Value: ""},
		{Key: "unicode", Value: "héllo wörld ✓"},
		{Key: "bang", Value: "!a=b"},
	}

	got := Decode(Encode(entries))
	if diff := cmp.Diff(entries, got); diff != "" {
		t.Fatalf("round trip mismatch (-want +got):\n%s", diff)
	}
}

func TestLineCodec(t *testing.T) {
	var codec Codec = LineCodec{}

	text, err := codec.Encode([]Entry{{Key: "a", Value: "A"}})
	if err != nil {
		t.Fatalf("unexpected encode error: %v", err)
	}
	if text != "!a=A\n" {
		t.Fatalf("expected %q, got %q", "!a=A\n", text)
	}

	entries, err := codec.Decode(text)
	if err != nil {
		t.Fatalf("unexpected decode error: %v", err)
	}
	if len(entries) != 1 || entries[0] != (Entry{Key: "a", Value: "A"}) {
		t.Fatalf("unexpected entries: %v", entries)
	}
}

func TestCodecFuncs(t *testing.T) {
	errBroken := errors.New("broken")
	upper := CodecFuncs{
		DecodeFunc: func(text string) ([]Entry, error) {
			if strings.Contains(text, "broken") {
				return nil, errBroken
			}
			return Decode(strings.ToLower(text)), nil
		},
		EncodeFunc: func(entries []Entry) (string, error) {
			return strings.ToUpper(Encode(entries)), nil
		},
	}

	text, err := upper.Encode([]Entry{{Key: "a", Value: "b"}})
	if err != nil {
		t.Fatalf("unexpected encode error: %v", err)
	}
	if text != "!A=B\n" {
		t.Fatalf("expected %q, got %q", "!A=B\n", text)
	}

	entries, err := upper.Decode(text)
	if err != nil {
		t.Fatalf("unexpected decode error: %v", err)
	}
	if diff := cmp.Diff([]Entry{{Key: "a", Value: "b"}}, entries); diff != "" {
		t.Fatalf("decode mismatch (-want +got):\n%s", diff)
	}

	if _, err := upper.Decode("broken"); !errors.Is(err, errBroken) {
		t.Fatalf("expected errBroken, got %v", err)
	}
}
