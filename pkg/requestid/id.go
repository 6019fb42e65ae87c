package requestid

import (
	"log/slog"
	"strconv"
)

// ID is an opaque request identifier.
// The zero value means "no identifier" and is never issued by the bundled generators.
type ID struct {
	text    string
	seq     uint64
	numeric bool
}

// NumericID returns an ID carrying a counter value. Its text form is the decimal number.
func NumericID(n uint64) ID {
	return ID{text: strconv.FormatUint(n, 10), seq: n, numeric: true}
}

// TextID returns an ID carrying an arbitrary string payload.
func TextID(s string) ID {
	return ID{text: s}
}

// String returns the textual form written to response headers and logs.
func (id ID) String() string { return id.text }

// IsZero reports whether id is the zero value.
func (id ID) IsZero() bool { return id.text == "" }

// Seq returns the numeric payload of counter IDs.
func (id ID) Seq() (uint64, bool) { return id.seq, id.numeric }

func (id ID) MarshalText() ([]byte, error) { return []byte(id.text), nil }

func (id ID) LogValue() slog.Value { return slog.StringValue(id.text) }
