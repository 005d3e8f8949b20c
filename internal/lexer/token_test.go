package lexer

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTokenType_String(t *testing.T) {
	tests := []struct {
		tt   TokenType
		want string
	}{
		{TokenEOF, "EOF"},
		{TokenUnknown, "Unknown"},
		{TokenComment, "Comment"},
		{TokenIntegerLiteral, "IntegerLiteral"},
		{TokenFloatLiteral, "FloatLiteral"},
		{TokenCharLiteral, "CharLiteral"},
		{TokenStringLiteral, "StringLiteral"},
		{TokenEmptyLiteral, "EmptyLiteral"},
		{TokenIdentifier, "Identifier"},
		{TokenKeyword, "Keyword"},
		{TokenOperator, "Operator"},
		{TokenPunctuator, "Punctuator"},
		{TokenType(99), "TokenType(99)"},
		{TokenType(-1), "TokenType(-1)"},
	}

	for _, tc := range tests {
		assert.Equal(t, tc.want, tc.tt.String())
	}
}

func TestTokenTypes(t *testing.T) {
	types := TokenTypes()

	require.Len(t, types, 12)
	assert.Equal(t, TokenEOF, types[0])
	assert.Equal(t, TokenPunctuator, types[len(types)-1])
}

func TestTokenType_IsLiteral(t *testing.T) {
	for _, tt := range []TokenType{TokenIntegerLiteral, TokenFloatLiteral, TokenCharLiteral, TokenStringLiteral, TokenEmptyLiteral} {
		assert.True(t, tt.IsLiteral(), tt.String())
	}
	for _, tt := range []TokenType{TokenEOF, TokenComment, TokenIdentifier, TokenKeyword, TokenOperator, TokenPunctuator} {
		assert.False(t, tt.IsLiteral(), tt.String())
	}
}

func TestLookupKeyword(t *testing.T) {
	k, ok := LookupKeyword("volatile")
	assert.True(t, ok)
	assert.Equal(t, KeywordVolatile, k)
	assert.Equal(t, "Volatile", k.String())

	_, ok = LookupKeyword("Volatile")
	assert.False(t, ok)

	_, ok = LookupKeyword("inline")
	assert.False(t, ok, "C99 keywords are not reserved here")
}

func TestKeywordNamesCoverTable(t *testing.T) {
	for text, k := range keywords {
		assert.NotContains(t, k.String(), "(", text)
	}
	assert.Equal(t, "Keyword(200)", Keyword(200).String())
}

func TestLookupOperator(t *testing.T) {
	o, ok := LookupOperator("<<=")
	assert.True(t, ok)
	assert.Equal(t, LeftShiftAssign, o)

	_, ok = LookupOperator("->")
	assert.False(t, ok)

	for text, o := range operators {
		assert.LessOrEqual(t, len(text), maxOperatorLen, text)
		assert.NotContains(t, o.String(), "(", text)
	}
	assert.Len(t, operators, 33)
}

func TestValue_String(t *testing.T) {
	tests := []struct {
		value Value
		want  string
	}{
		{TextValue("x"), `"x"`},
		{TextValue("a\nb"), `"a\nb"`},
		{IntegerValue(-42), "-42"},
		{FloatValue(3.14), "3.14"},
		{FloatValue(7), "7"},
		{CharValue('a'), `'a'`},
		{CharValue('\n'), `'\n'`},
		{EmptyValue(), "Empty"},
	}

	for _, tc := range tests {
		assert.Equal(t, tc.want, tc.value.String())
	}
}

func TestToken_String(t *testing.T) {
	tests := []struct {
		name   string
		source string
		want   string
	}{
		{"keyword", "int", `Keyword(Int) "int" at 0:1`},
		{"identifier", "  foo", `Identifier "foo" at 0:3`},
		{"operator", "<<=", `Operator(LeftShiftAssign) "<<=" at 0:1`},
		{"punctuator", "\n;", `Punctuator(;) ';' at 1:1`},
		{"integer", "42", `IntegerLiteral 42 at 0:1`},
		{"float", "2.5", `FloatLiteral 2.5 at 0:1`},
		{"char", "'c'", `CharLiteral 'c' at 0:1`},
		{"empty", "''", `EmptyLiteral Empty at 0:1`},
		{"string", `"s"`, `StringLiteral "s" at 0:1`},
		{"comment", "// c", `Comment " c" at 0:1`},
		{"eof", "", `EOF Empty at 0:1`},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			tok := New(tc.source).NextToken()
			assert.Equal(t, tc.want, tok.String())
		})
	}
}

func TestToken_Length(t *testing.T) {
	tokens, _ := All(`héllo "abc" <<=`)

	assert.Equal(t, 6, tokens[0].Length())
	assert.Equal(t, 5, tokens[1].Length())
	assert.Equal(t, 3, tokens[2].Length())
	assert.Equal(t, 0, tokens[3].Length())
}
