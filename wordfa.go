package wordfa

import "fmt"

// --- Spans ------------------------------------------------------------

// Span is a small type for capturing a run of input bytes. A matcher will
// track which input positions every consumed token covers, and a description
// scanner will do the same for its lexemes. A span denotes a start position and
// the position just behind the end.
type Span [2]uint64 // (x…y)

// MakeSpan creates a span for a token of length n, starting at position from.
func MakeSpan(from int, n int) Span {
	return Span{uint64(from), uint64(from + n)}
}

// From returns the start value of a span.
func (s Span) From() uint64 {
	return s[0]
}

// To returns the end value of a span.
func (s Span) To() uint64 {
	return s[1]
}

// Len returns the length of (x…y)
func (s Span) Len() uint64 {
	return s[1] - s[0]
}

func (s Span) IsNull() bool {
	return s == Span{}
}

// Extend returns the smallest span covering both s and other.
func (s Span) Extend(other Span) Span {
	if other[0] < s[0] {
		s[0] = other[0]
	}
	if other[1] > s[1] {
		s[1] = other[1]
	}
	return s
}

// Of returns the part of input covered by s. If s reaches beyond input,
// the empty string is returned.
func (s Span) Of(input string) string {
	if s[1] > uint64(len(input)) || s[0] > s[1] {
		return ""
	}
	return input[s[0]:s[1]]
}

func (s Span) String() string {
	return fmt.Sprintf("(%d…%d)", s[0], s[1])
}
