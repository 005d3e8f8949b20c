// Package main provides the ctokenize command: it lexes a C source file and
// prints the token stream followed by any lexical errors.
//
// Usage:
//
//	ctokenize [flags] <file.c>
//
// Exit status is 0 when the file lexed cleanly, 1 when lexical errors were
// reported, and 2 for usage or I/O problems.
package main

import (
	"flag"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/hassan/ctokenize/internal/report"
)

const (
	exitOK        = 0
	exitLexErrors = 1
	exitUsageOrIO = 2
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

func run(args []string, stdout, stderr io.Writer) int {
	name := filepath.Base(os.Args[0])
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	fs.SetOutput(stderr)

	defaults := report.DefaultOptions()
	comments := fs.Bool("comments", defaults.Comments, "include comment tokens")
	positions := fs.Bool("positions", false, "show the row:col of each token")
	withEOF := fs.Bool("with-eof", false, "include the EOF token")
	count := fs.Bool("count", false, "print a tally of tokens by kind")
	stats := fs.Bool("stats", false, "print lexing time and allocations")
	jsonOut := fs.Bool("json", false, "emit NDJSON: one object per token and per error")
	dump := fs.Bool("dump", false, "dump every token structure (debugging)")
	kinds := fs.String("kinds", "", "comma-separated token kinds to show, e.g. Keyword,Identifier")

	fs.Usage = func() {
		fmt.Fprintf(stderr, "Usage: %s [flags] <file.c>\n", name)
		fs.PrintDefaults()
	}

	if err := fs.Parse(args); err != nil {
		return exitUsageOrIO
	}
	if fs.NArg() != 1 {
		fs.Usage()
		return exitUsageOrIO
	}

	opts := defaults
	opts.Comments = *comments
	opts.Positions = *positions
	opts.WithEOF = *withEOF
	opts.Count = *count
	opts.Stats = *stats

	switch {
	case *jsonOut && *dump:
		fmt.Fprintln(stderr, "Error: -json and -dump cannot be combined")
		return exitUsageOrIO
	case *jsonOut:
		opts.Format = report.FormatJSON
	case *dump:
		opts.Format = report.FormatDump
	}

	if *kinds != "" {
		parsed, err := report.ParseKinds(*kinds)
		if err != nil {
			fmt.Fprintf(stderr, "Error: %v\n", err)
			return exitUsageOrIO
		}
		opts.Kinds = parsed
	}

	filename := fs.Arg(0)
	source, err := os.ReadFile(filename)
	if err != nil {
		fmt.Fprintf(stderr, "Error reading file: %v\n", err)
		return exitUsageOrIO
	}

	summary, err := report.New(stdout, opts).Run(string(source))
	if err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return exitUsageOrIO
	}

	if len(summary.Errors) > 0 {
		return exitLexErrors
	}
	return exitOK
}
