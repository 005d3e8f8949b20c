package lexer

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPosition_String(t *testing.T) {
	tests := []struct {
		name     string
		pos      Position
		expected string
	}{
		{
			name:     "zero position",
			pos:      Position{},
			expected: "0:0",
		},
		{
			name:     "first character",
			pos:      Position{Row: 0, Col: 1, Offset: 0},
			expected: "0:1",
		},
		{
			name:     "later row",
			pos:      Position{Row: 42, Col: 15, Offset: 900},
			expected: "42:15",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.pos.String())
		})
	}
}

func TestPosition_BeforeAfter(t *testing.T) {
	a := Position{Row: 0, Col: 3, Offset: 2}
	b := Position{Row: 1, Col: 1, Offset: 10}

	assert.True(t, a.Before(b))
	assert.False(t, b.Before(a))
	assert.True(t, b.After(a))
	assert.False(t, a.After(b))

	assert.False(t, a.Before(a))
	assert.False(t, a.After(a))
}

func TestSpan_String(t *testing.T) {
	tests := []struct {
		name     string
		span     Span
		expected string
	}{
		{
			name: "single row",
			span: Span{
				Start: Position{Row: 3, Col: 5, Offset: 20},
				End:   Position{Row: 3, Col: 9, Offset: 24},
			},
			expected: "3:5-9",
		},
		{
			name: "multiple rows",
			span: Span{
				Start: Position{Row: 3, Col: 5, Offset: 20},
				End:   Position{Row: 5, Col: 2, Offset: 41},
			},
			expected: "3:5-5:2",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.span.String())
		})
	}
}

func TestSpan_ContainsAndLength(t *testing.T) {
	span := Span{
		Start: Position{Row: 0, Col: 5, Offset: 4},
		End:   Position{Row: 0, Col: 10, Offset: 9},
	}

	assert.True(t, span.IsValid())
	assert.Equal(t, 5, span.Length())

	assert.True(t, span.Contains(Position{Offset: 4}))
	assert.True(t, span.Contains(Position{Offset: 8}))
	assert.False(t, span.Contains(Position{Offset: 9}), "End is exclusive")
	assert.False(t, span.Contains(Position{Offset: 3}))

	backwards := Span{Start: span.End, End: span.Start}
	assert.False(t, backwards.IsValid())
	assert.Equal(t, 0, backwards.Length())
}

func TestToken_SpanFromLexer(t *testing.T) {
	tokens, _ := All("x = /* a\nb */ y")

	comment := tokens[2]
	assert.Equal(t, TokenComment, comment.Type)
	assert.Equal(t, "0:5-1:5", comment.Span().String())
	assert.Equal(t, len("/* a\nb */"), comment.Span().Length())
}
