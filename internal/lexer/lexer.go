package lexer

import (
	"unicode"
	"unicode/utf8"
)

// Lexer performs lexical analysis on C source code, converting it into a
// stream of tokens.
//
// The lexer does NOT:
// - Expand macros or follow #include (there is no preprocessor)
// - Decode escape sequences in string or character literals
// - Parse anything beyond single-token boundaries
//
// DESIGN CHOICE: We keep a single lookahead character (ch) and the position
// it sits at, rather than start/current offsets, because every scanner
// decides what to do next from that one character. Token text is still
// sliced straight out of source using the byte offsets in Position.
type Lexer struct {
	// source is the complete source code being lexed. It is never modified.
	source string

	// ch is the lookahead character, valid while eof is false.
	ch rune

	// width is the size of ch in bytes.
	width int

	// eof is set once the lookahead has run off the end of source.
	eof bool

	// pos is where ch sits in the source.
	pos Position

	errors ErrorList
}

// New creates a Lexer for source and loads the first lookahead character.
func New(source string) *Lexer {
	l := &Lexer{source: source}
	l.advance()
	return l
}

// NextToken returns the next token from the source.
//
// It always returns a token. Once the input is exhausted it returns a
// TokenEOF token, and keeps returning the same TokenEOF token on every
// further call.
//
// Characters that cannot start any token are recorded in Errors and
// skipped one at a time; scanning then starts over from the next
// character, so an error never ends the stream.
func (l *Lexer) NextToken() Token {
	for {
		l.skipWhitespace()

		if l.eof {
			return Token{Type: TokenEOF, Value: EmptyValue(), Position: l.pos, End: l.pos}
		}

		start := l.pos
		ch := l.ch

		switch {
		case isLetter(ch):
			return l.scanIdentifier(start)
		case isDigit(ch):
			return l.scanNumber(start)
		}

		switch ch {
		case '"':
			return l.scanString(start)
		case '\'':
			return l.scanChar(start)
		case '/':
			// Checked before other operators: it may open a comment.
			return l.scanSlash(start)
		case '+', '-', '*', '=', '<', '>', '&', '|', '%', '^', '~', '!':
			return l.scanOperator(start)
		case ';', ',', '(', ')', '{', '}', '[', ']', '.':
			return l.scanPunctuator(start)
		}

		l.errors.Add(start, "Unexpected character: "+string(ch))
		l.advance()
	}
}

// Errors returns the lexical errors recorded so far, oldest first.
// Read it after NextToken has returned TokenEOF to get the full list.
func (l *Lexer) Errors() []LexError {
	return l.errors.Errors()
}

// Err returns the recorded errors as a single error, or nil.
func (l *Lexer) Err() error {
	return l.errors.Err()
}

// All lexes source to the end. The returned tokens end with the TokenEOF
// token.
func All(source string) ([]Token, []LexError) {
	l := New(source)
	var tokens []Token
	for {
		tok := l.NextToken()
		tokens = append(tokens, tok)
		if tok.Type == TokenEOF {
			return tokens, l.Errors()
		}
	}
}

// advance consumes the lookahead character and loads the next one.
//
// The column grows by one for every character. A newline resets it to 0
// and bumps the row during the same advance that loads it, so the first
// character of the next line is at column 1. Running off the end of the
// source moves the position one past the last character; after that
// advance does nothing.
func (l *Lexer) advance() {
	if l.eof {
		return
	}

	offset := l.pos.Offset + l.width
	l.pos.Col++
	l.pos.Offset = offset

	if offset >= len(l.source) {
		l.eof = true
		l.ch = 0
		l.width = 0
		return
	}

	l.ch, l.width = utf8.DecodeRuneInString(l.source[offset:])
	if l.ch == '\n' {
		l.pos.Col = 0
		l.pos.Row++
	}
}

// peek returns the character after the lookahead without consuming
// anything. ok is false if there is no such character.
func (l *Lexer) peek() (ch rune, ok bool) {
	next := l.pos.Offset + l.width
	if l.eof || next >= len(l.source) {
		return 0, false
	}
	ch, _ = utf8.DecodeRuneInString(l.source[next:])
	return ch, true
}

// skipWhitespace consumes whitespace. Whitespace never becomes a token.
func (l *Lexer) skipWhitespace() {
	for !l.eof && unicode.IsSpace(l.ch) {
		l.advance()
	}
}

// textFrom returns the source text from offset up to the lookahead.
func (l *Lexer) textFrom(offset int) string {
	return l.source[offset:l.pos.Offset]
}

// makeToken creates a token that starts at start and ends at the lookahead.
func (l *Lexer) makeToken(tokenType TokenType, value Value, start Position) Token {
	return Token{
		Type:     tokenType,
		Value:    value,
		Position: start,
		End:      l.pos,
	}
}

// isLetter returns true if the rune may start an identifier.
//
// DESIGN CHOICE: We use Unicode letter classification rather than just
// ASCII so that identifiers written in other scripts come out as one
// identifier instead of a run of "unexpected character" errors.
func isLetter(ch rune) bool {
	return unicode.IsLetter(ch) || ch == '_'
}

// isDigit returns true if the rune is an ASCII decimal digit.
func isDigit(ch rune) bool {
	return ch >= '0' && ch <= '9'
}
