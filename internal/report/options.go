// Package report prints a lexed token stream and its diagnostics.
//
// It is the glue between the lexer and a terminal: it decides which tokens
// to show and how, tallies them by kind, and prints the error log after
// the stream. None of it feeds back into how the lexer scans.
package report

import (
	"fmt"
	"strings"

	"github.com/lithammer/fuzzysearch/fuzzy"

	"github.com/hassan/ctokenize/internal/lexer"
)

// Format selects how tokens are written.
type Format int

const (
	// FormatText writes one human-readable line per token.
	FormatText Format = iota

	// FormatJSON writes one JSON object per token and per error (NDJSON).
	FormatJSON

	// FormatDump writes a spew dump of every token, for debugging.
	FormatDump
)

var formatNames = map[string]Format{
	"text": FormatText,
	"json": FormatJSON,
	"dump": FormatDump,
}

func (f Format) String() string {
	for name, format := range formatNames {
		if format == f {
			return name
		}
	}
	return fmt.Sprintf("Format(%d)", int(f))
}

// Options controls what a Reporter prints.
type Options struct {
	Format Format

	// Comments keeps comment tokens in the output.
	Comments bool

	// Positions appends "at row:col" to each text line.
	Positions bool

	// WithEOF prints the final EOF token too.
	WithEOF bool

	// Kinds, when not empty, limits the output to these token types.
	Kinds []lexer.TokenType

	// Count prints a tally of the shown tokens by type.
	Count bool

	// Stats prints elapsed time and allocation figures for the lexing run.
	Stats bool
}

// DefaultOptions returns the options the command line starts from: text
// output with comments and no extras.
func DefaultOptions() Options {
	return Options{
		Format:   FormatText,
		Comments: true,
	}
}

// shows reports whether tok passes the comment, EOF and kind filters.
func (o Options) shows(tok lexer.Token) bool {
	if tok.Type == lexer.TokenEOF && !o.WithEOF {
		return false
	}
	if tok.Type == lexer.TokenComment && !o.Comments {
		return false
	}
	if len(o.Kinds) == 0 {
		return true
	}
	for _, k := range o.Kinds {
		if k == tok.Type {
			return true
		}
	}
	return false
}

// ParseFormat parses "text", "json" or "dump".
func ParseFormat(s string) (Format, error) {
	if f, ok := formatNames[strings.ToLower(strings.TrimSpace(s))]; ok {
		return f, nil
	}
	return FormatText, fmt.Errorf("unknown format %q (want text, json or dump)", s)
}

// ParseKinds parses a comma-separated list of token type names such as
// "Identifier,keyword". Names are case-insensitive. An unknown name is an
// error that suggests the closest valid name.
func ParseKinds(s string) ([]lexer.TokenType, error) {
	var kinds []lexer.TokenType
	for _, field := range strings.Split(s, ",") {
		name := strings.TrimSpace(field)
		if name == "" {
			continue
		}
		kind, err := parseKind(name)
		if err != nil {
			return nil, err
		}
		kinds = append(kinds, kind)
	}
	return kinds, nil
}

func parseKind(name string) (lexer.TokenType, error) {
	for _, tt := range lexer.TokenTypes() {
		if strings.EqualFold(tt.String(), name) {
			return tt, nil
		}
	}

	if suggestion := closestKind(name); suggestion != "" {
		return 0, fmt.Errorf("unknown token kind %q, did you mean %q?", name, suggestion)
	}
	return 0, fmt.Errorf("unknown token kind %q", name)
}

// closestKind returns the token type name that best matches name, or ""
// when nothing is close. Names that contain name as a subsequence win;
// otherwise a name within two edits is accepted.
func closestKind(name string) string {
	best, bestScore := "", -1
	for _, tt := range lexer.TokenTypes() {
		score := fuzzy.RankMatchNormalizedFold(name, tt.String())
		if score >= 0 && (bestScore < 0 || score < bestScore) {
			best, bestScore = tt.String(), score
		}
	}
	if best != "" {
		return best
	}

	lower := strings.ToLower(name)
	for _, tt := range lexer.TokenTypes() {
		distance := fuzzy.LevenshteinDistance(lower, strings.ToLower(tt.String()))
		if distance <= 2 && (bestScore < 0 || distance < bestScore) {
			best, bestScore = tt.String(), distance
		}
	}
	return best
}
