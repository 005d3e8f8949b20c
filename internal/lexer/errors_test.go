package lexer

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLexError_Error(t *testing.T) {
	err := LexError{Message: "Unexpected character: @", Position: Position{Row: 2, Col: 7}}
	assert.EqualError(t, err, "2:7: Unexpected character: @")
}

func TestErrorList(t *testing.T) {
	var el ErrorList

	assert.Equal(t, 0, el.Len())
	assert.Nil(t, el.Errors())
	assert.NoError(t, el.Err())

	el.Add(Position{Row: 0, Col: 1}, "first")
	assert.EqualError(t, el.Err(), "0:1: first")

	el.Add(Position{Row: 0, Col: 4, Offset: 3}, "second")
	el.Add(Position{Row: 1, Col: 1, Offset: 5}, "third")

	require.Equal(t, 3, el.Len())
	assert.Equal(t, []LexError{
		{Message: "first", Position: Position{Row: 0, Col: 1}},
		{Message: "second", Position: Position{Row: 0, Col: 4, Offset: 3}},
		{Message: "third", Position: Position{Row: 1, Col: 1, Offset: 5}},
	}, el.Errors())
	assert.EqualError(t, el.Err(), "0:1: first (and 2 more errors)")
}

func TestErrorList_ErrUnwraps(t *testing.T) {
	l := New("x @ y")
	for l.NextToken().Type != TokenEOF {
	}

	var lexErr LexError
	require.True(t, errors.As(l.Err(), &lexErr))
	assert.Equal(t, "Unexpected character: @", lexErr.Message)
	assert.Equal(t, 3, lexErr.Position.Col)
}
