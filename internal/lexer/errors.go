package lexer

import "strconv"

// LexError is a recoverable lexical error: the lexer logged it, skipped
// past the problem and kept going.
type LexError struct {
	Message  string
	Position Position
}

// Error formats the error as "row:col: message".
func (e LexError) Error() string {
	return e.Position.String() + ": " + e.Message
}

// ErrorList collects lexical errors in the order they were detected.
// Entries are never removed.
//
// Detection order follows the scan, so it usually matches position order,
// but nothing guarantees it: an error about a literal is reported at the
// literal's opening character after later characters were read.
type ErrorList struct {
	errors []LexError
}

// Add appends an error at pos.
func (el *ErrorList) Add(pos Position, message string) {
	el.errors = append(el.errors, LexError{Message: message, Position: pos})
}

// Len returns the number of errors collected so far.
func (el *ErrorList) Len() int {
	return len(el.errors)
}

// Errors returns the collected errors. The slice is a copy; appending to or
// editing it does not affect the list.
func (el *ErrorList) Errors() []LexError {
	if len(el.errors) == 0 {
		return nil
	}
	out := make([]LexError, len(el.errors))
	copy(out, el.errors)
	return out
}

// Err returns the list as an error, or nil when it is empty. The first
// error's text is used, with a count of the rest.
func (el *ErrorList) Err() error {
	if len(el.errors) == 0 {
		return nil
	}
	return listError(el.Errors())
}

type listError []LexError

func (le listError) Error() string {
	switch len(le) {
	case 1:
		return le[0].Error()
	case 2:
		return le[0].Error() + " (and 1 more error)"
	default:
		return le[0].Error() + " (and " + strconv.Itoa(len(le)-1) + " more errors)"
	}
}

// Unwrap exposes the individual errors to errors.Is and errors.As.
func (le listError) Unwrap() []error {
	errs := make([]error, len(le))
	for i, e := range le {
		errs[i] = e
	}
	return errs
}
