package report

import (
	"encoding/json"
	"fmt"
	"io"
	"runtime"
	"time"

	"github.com/davecgh/go-spew/spew"

	"github.com/hassan/ctokenize/internal/lexer"
)

// Summary describes one lexing run.
type Summary struct {
	// Tokens is the number of tokens the lexer produced, EOF included.
	Tokens int

	// Shown is the number of tokens that passed the output filters.
	Shown int

	// Counts tallies the shown tokens by type.
	Counts map[lexer.TokenType]int

	Errors []lexer.LexError

	Elapsed time.Duration

	// Allocated is the number of bytes allocated while lexing.
	Allocated uint64

	// Mallocs is the number of heap objects allocated while lexing.
	Mallocs uint64
}

// Reporter lexes sources and writes the result to w.
type Reporter struct {
	w    io.Writer
	opts Options
	dump *spew.ConfigState
}

// New creates a Reporter writing to w.
func New(w io.Writer, opts Options) *Reporter {
	return &Reporter{
		w:    w,
		opts: opts,
		dump: &spew.ConfigState{
			Indent:                  "  ",
			DisablePointerAddresses: true,
			DisableCapacities:       true,
			SortKeys:                true,
		},
	}
}

// Run lexes source, then writes the token stream followed by the
// requested tallies and the error log. The returned error is a write
// failure; lexical errors are part of the Summary.
func (r *Reporter) Run(source string) (Summary, error) {
	tokens, summary := r.lex(source)

	ew := &errWriter{w: r.w}
	switch r.opts.Format {
	case FormatJSON:
		r.writeJSON(ew, tokens, summary)
	default:
		r.writeText(ew, tokens, summary)
	}

	if ew.err != nil {
		return summary, fmt.Errorf("writing report: %w", ew.err)
	}
	return summary, nil
}

// lex drains a lexer over source, keeping the tokens that pass the
// filters. Memory figures come from runtime.ReadMemStats around the loop.
func (r *Reporter) lex(source string) ([]lexer.Token, Summary) {
	summary := Summary{Counts: make(map[lexer.TokenType]int)}

	var before, after runtime.MemStats
	if r.opts.Stats {
		runtime.ReadMemStats(&before)
	}
	start := time.Now()

	l := lexer.New(source)
	var shown []lexer.Token
	for {
		tok := l.NextToken()
		summary.Tokens++
		if r.opts.shows(tok) {
			shown = append(shown, tok)
			summary.Counts[tok.Type]++
		}
		if tok.Type == lexer.TokenEOF {
			break
		}
	}

	summary.Elapsed = time.Since(start)
	if r.opts.Stats {
		runtime.ReadMemStats(&after)
		summary.Allocated = after.TotalAlloc - before.TotalAlloc
		summary.Mallocs = after.Mallocs - before.Mallocs
	}

	summary.Shown = len(shown)
	summary.Errors = l.Errors()
	return shown, summary
}

func (r *Reporter) writeText(w *errWriter, tokens []lexer.Token, summary Summary) {
	w.printf("Tokens:\n")
	for _, tok := range tokens {
		switch {
		case r.opts.Format == FormatDump:
			r.dump.Fdump(w, tokenDump(tok))
		case r.opts.Positions:
			w.printf("%s\n", tok)
		default:
			w.printf("%s %s\n", tok.Kind(), tok.Value)
		}
	}

	if r.opts.Count {
		w.printf("\nToken counts:\n")
		for _, tt := range lexer.TokenTypes() {
			if n := summary.Counts[tt]; n > 0 {
				w.printf("  %-15s %d\n", tt.String()+":", n)
			}
		}
	}

	if len(summary.Errors) > 0 {
		w.printf("\nLexer errors:\n")
		for _, err := range summary.Errors {
			w.printf("  Error at %d:%d: %s\n", err.Position.Row, err.Position.Col, err.Message)
		}
	}

	if r.opts.Stats {
		w.printf("\nLexed %d tokens in %s (%d bytes in %d allocations)\n",
			summary.Tokens, summary.Elapsed, summary.Allocated, summary.Mallocs)
	}
}

// tokenDump has Token's fields but not its String method, so spew prints
// the fields instead of the one-line summary.
type tokenDump lexer.Token

// jsonToken is the NDJSON shape of a token.
type jsonToken struct {
	Type     string      `json:"type"`
	Keyword  string      `json:"keyword,omitempty"`
	Operator string      `json:"operator,omitempty"`
	Value    interface{} `json:"value,omitempty"`
	Row      int         `json:"row"`
	Col      int         `json:"col"`
	Offset   int         `json:"offset"`
	Length   int         `json:"length"`
}

// jsonError is the NDJSON shape of a lexical error.
type jsonError struct {
	Error string `json:"error"`
	Row   int    `json:"row"`
	Col   int    `json:"col"`
}

type jsonCounts struct {
	Counts map[string]int `json:"counts"`
}

type jsonStats struct {
	Tokens    int    `json:"tokens"`
	ElapsedNS int64  `json:"elapsed_ns"`
	Allocated uint64 `json:"allocated_bytes"`
	Mallocs   uint64 `json:"mallocs"`
}

func (r *Reporter) writeJSON(w *errWriter, tokens []lexer.Token, summary Summary) {
	enc := json.NewEncoder(w)
	encode := func(v interface{}) {
		if w.err == nil {
			w.err = enc.Encode(v)
		}
	}

	for _, tok := range tokens {
		encode(toJSON(tok))
	}

	if r.opts.Count {
		counts := make(map[string]int, len(summary.Counts))
		for tt, n := range summary.Counts {
			counts[tt.String()] = n
		}
		encode(jsonCounts{Counts: counts})
	}

	for _, err := range summary.Errors {
		encode(jsonError{Error: err.Message, Row: err.Position.Row, Col: err.Position.Col})
	}

	if r.opts.Stats {
		encode(jsonStats{
			Tokens:    summary.Tokens,
			ElapsedNS: summary.Elapsed.Nanoseconds(),
			Allocated: summary.Allocated,
			Mallocs:   summary.Mallocs,
		})
	}
}

func toJSON(tok lexer.Token) jsonToken {
	jt := jsonToken{
		Type:   tok.Type.String(),
		Row:    tok.Position.Row,
		Col:    tok.Position.Col,
		Offset: tok.Position.Offset,
		Length: tok.Length(),
	}
	if tok.Type == lexer.TokenKeyword {
		jt.Keyword = tok.Keyword.String()
	}
	if tok.Type == lexer.TokenOperator {
		jt.Operator = tok.Operator.String()
	}

	switch tok.Value.Kind {
	case lexer.ValueText:
		jt.Value = tok.Value.Text
	case lexer.ValueInteger:
		jt.Value = tok.Value.Int
	case lexer.ValueFloat:
		jt.Value = tok.Value.Float
	case lexer.ValueChar:
		jt.Value = string(tok.Value.Char)
	}
	return jt
}

// errWriter remembers the first write error and drops everything after it,
// so the printing code does not need an error check per line.
type errWriter struct {
	w   io.Writer
	err error
}

func (ew *errWriter) Write(p []byte) (int, error) {
	if ew.err != nil {
		return 0, ew.err
	}
	n, err := ew.w.Write(p)
	ew.err = err
	return n, err
}

func (ew *errWriter) printf(format string, args ...interface{}) {
	if ew.err != nil {
		return
	}
	_, ew.err = fmt.Fprintf(ew.w, format, args...)
}
