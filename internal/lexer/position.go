// Package lexer turns C source text into a stream of classified tokens.
//
// The Lexer reads the whole source up front and hands out one Token per
// NextToken call until it reaches end of input, which is itself reported as
// a TokenEOF token. Malformed input never stops the stream: recoverable
// problems are collected in an ErrorList that callers read once the stream
// is drained.
package lexer

import "strconv"

// Position represents a location in the source code.
//
// DESIGN CHOICE: Position is a value type (not a pointer) because:
// 1. It's small (3 integers)
// 2. It's immutable once created
// 3. Copying is cheap and avoids pointer chasing
//
// Rows are 0-based. Columns count characters within the row starting at 1;
// a newline character is attributed to column 0 of the row it opens, so
// the first character after it lands on column 1 again.
type Position struct {
	// Row is the 0-based line number.
	Row int

	// Col is the column of the character within its row.
	// We count in runes (Unicode code points), not bytes.
	Col int

	// Offset is the 0-based byte offset from the start of the source.
	// It lets callers slice the original text: source[offset:offset+length].
	Offset int
}

// String returns "row:col".
func (p Position) String() string {
	return strconv.Itoa(p.Row) + ":" + strconv.Itoa(p.Col)
}

// Before returns true if this position comes before the other position.
//
// DESIGN CHOICE: We compare by offset rather than row/column because
// offset is the source of truth; row and column are derived from it.
func (p Position) Before(other Position) bool {
	return p.Offset < other.Offset
}

// After returns true if this position comes after the other position.
func (p Position) After(other Position) bool {
	return p.Offset > other.Offset
}

// Span represents a range in the source code. Start is inclusive and End is
// exclusive: End is where the lexer's lookahead stood once the token had
// been consumed.
type Span struct {
	Start Position
	End   Position
}

// String returns a human-readable representation of the span.
// Single-row spans are shortened: "3:5-9" instead of "3:5-3:9".
func (s Span) String() string {
	if s.Start.Row == s.End.Row {
		return s.Start.String() + "-" + strconv.Itoa(s.End.Col)
	}
	return s.Start.String() + "-" + s.End.String()
}

// IsValid returns true if the span is ordered correctly.
func (s Span) IsValid() bool {
	return !s.End.Before(s.Start)
}

// Contains returns true if pos lies within the span.
func (s Span) Contains(pos Position) bool {
	return !pos.Before(s.Start) && pos.Before(s.End)
}

// Length returns the number of bytes covered by this span.
func (s Span) Length() int {
	if !s.IsValid() {
		return 0
	}
	return s.End.Offset - s.Start.Offset
}
