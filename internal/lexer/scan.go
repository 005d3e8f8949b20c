package lexer

import (
	"errors"
	"fmt"
	"strconv"
)

// scanIdentifier scans an identifier or keyword.
//
// RULES:
// - Starts with a letter or underscore
// - Continues with letters, digits, or underscores
// - The spelling is checked against the keyword table afterwards
func (l *Lexer) scanIdentifier(start Position) Token {
	for !l.eof && (isLetter(l.ch) || isDigit(l.ch)) {
		l.advance()
	}

	text := l.textFrom(start.Offset)
	if kw, ok := LookupKeyword(text); ok {
		tok := l.makeToken(TokenKeyword, TextValue(text), start)
		tok.Keyword = kw
		return tok
	}
	return l.makeToken(TokenIdentifier, TextValue(text), start)
}

// scanNumber scans a run of digits with at most one decimal point.
//
// A second '.' ends the literal and is left for the next token, so
// "3.14.5" is 3.14 followed by '.' and 5. Signs, exponents and suffixes are
// not part of a number: "1e5" is 1 followed by the identifier e5.
func (l *Lexer) scanNumber(start Position) Token {
	seenDot := false
	for !l.eof {
		if isDigit(l.ch) {
			l.advance()
		} else if l.ch == '.' && !seenDot {
			seenDot = true
			l.advance()
		} else {
			break
		}
	}

	text := l.textFrom(start.Offset)

	if seenDot {
		f, err := strconv.ParseFloat(text, 64)
		if err != nil {
			if !errors.Is(err, strconv.ErrRange) {
				panic(fmt.Sprintf("lexer: scanned float %q does not parse: %v", text, err))
			}
			l.errors.Add(start, "Float literal out of range: "+text)
		}
		return l.makeToken(TokenFloatLiteral, FloatValue(f), start)
	}

	n, err := strconv.ParseInt(text, 10, 64)
	if err != nil {
		// Only digits were accepted above, so anything but an overflow
		// means the loop let through a character it should not have.
		if !errors.Is(err, strconv.ErrRange) {
			panic(fmt.Sprintf("lexer: scanned integer %q does not parse: %v", text, err))
		}
		l.errors.Add(start, "Integer literal out of range: "+text)
	}
	return l.makeToken(TokenIntegerLiteral, IntegerValue(n), start)
}

// scanString scans a string literal. The value is the raw text between
// the quotes.
//
// Escape sequences are not interpreted: the literal ends at the first '"'
// after the opening one, even when a backslash precedes it.
func (l *Lexer) scanString(start Position) Token {
	l.advance() // opening quote

	contentStart := l.pos.Offset
	for !l.eof && l.ch != '"' {
		l.advance()
	}
	text := l.textFrom(contentStart)

	if l.eof {
		l.errors.Add(start, "Unterminated string literal")
	} else {
		l.advance() // closing quote
	}
	return l.makeToken(TokenStringLiteral, TextValue(text), start)
}

// scanChar scans a character literal holding exactly one character.
//
// '' is reported as TokenEmptyLiteral. When the character is not followed
// by a closing quote, the error is recorded and the lookahead is left on
// whatever came instead, so no input is swallowed.
func (l *Lexer) scanChar(start Position) Token {
	l.advance() // opening quote

	if l.eof {
		l.errors.Add(start, "Unterminated character literal")
		return l.makeToken(TokenEmptyLiteral, EmptyValue(), start)
	}

	if l.ch == '\'' {
		l.advance()
		return l.makeToken(TokenEmptyLiteral, EmptyValue(), start)
	}

	c := l.ch
	l.advance()

	if !l.eof && l.ch == '\'' {
		l.advance()
	} else {
		l.errors.Add(start, "Unterminated character literal")
	}
	return l.makeToken(TokenCharLiteral, CharValue(c), start)
}

// scanSlash handles '/', which starts a line comment, a block comment,
// "/=" or a plain division operator.
//
// Comment values leave out the delimiters but keep everything else, so
// "// hello" has the value " hello".
func (l *Lexer) scanSlash(start Position) Token {
	l.advance() // '/'

	switch {
	case !l.eof && l.ch == '/':
		l.advance()
		contentStart := l.pos.Offset
		for !l.eof && l.ch != '\n' {
			l.advance()
		}
		return l.makeToken(TokenComment, TextValue(l.textFrom(contentStart)), start)

	case !l.eof && l.ch == '*':
		l.advance()
		return l.scanBlockComment(start)

	case !l.eof && l.ch == '=':
		l.advance()
		return l.makeOperator(DivideAssign, start)

	default:
		return l.makeOperator(Divide, start)
	}
}

// scanBlockComment scans the rest of a /* */ comment. The opening
// delimiter has already been consumed. Comments do not nest: the first
// "*/" closes the comment.
func (l *Lexer) scanBlockComment(start Position) Token {
	contentStart := l.pos.Offset
	for !l.eof {
		if next, ok := l.peek(); ok && l.ch == '*' && next == '/' {
			text := l.textFrom(contentStart)
			l.advance()
			l.advance()
			return l.makeToken(TokenComment, TextValue(text), start)
		}
		l.advance()
	}

	l.errors.Add(start, "Unterminated block comment")
	return l.makeToken(TokenComment, TextValue(l.textFrom(contentStart)), start)
}

// scanOperator scans the longest operator in the operator table that
// starts at the lookahead.
//
// DESIGN CHOICE: We try the longest candidate first and shrink, so "<<="
// is one token and "=-1" is '=' followed by '-'. Greedily collecting
// operator characters and matching afterwards would turn "=-" into a
// single unknown token.
func (l *Lexer) scanOperator(start Position) Token {
	end := start.Offset + maxOperatorLen
	if end > len(l.source) {
		end = len(l.source)
	}
	candidate := l.source[start.Offset:end]

	for n := len(candidate); n > 0; n-- {
		if op, ok := operators[candidate[:n]]; ok {
			for i := 0; i < n; i++ {
				l.advance()
			}
			return l.makeOperator(op, start)
		}
	}

	l.advance()
	return l.makeToken(TokenUnknown, TextValue(l.textFrom(start.Offset)), start)
}

// makeOperator creates an operator token whose text is the operator's
// source spelling.
func (l *Lexer) makeOperator(op Operator, start Position) Token {
	tok := l.makeToken(TokenOperator, TextValue(l.textFrom(start.Offset)), start)
	tok.Operator = op
	return tok
}

// scanPunctuator scans a single structural character.
func (l *Lexer) scanPunctuator(start Position) Token {
	c := l.ch
	l.advance()
	return l.makeToken(TokenPunctuator, CharValue(c), start)
}
