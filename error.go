package parse // import "github.com/dewolfson/ecmaparse"

import "fmt"

// Error is a source-position-bearing error, shared by every parser in
// this module's domain. It carries a single message and the position at
// which the failure was detected; it does not carry a list of
// diagnostics, matching the "single first-failure message" error model
// the ECMAScript parser requires.
type Error struct {
	Message string
	Line    int
	Column  int
	Context string
}

// NewError builds an Error by locating offset within src.
func NewError(src []byte, offset int, format string, args ...interface{}) *Error {
	line, col, context := Position(src, offset)
	return &Error{
		Message: fmt.Sprintf(format, args...),
		Line:    line,
		Column:  col,
		Context: context,
	}
}

// Position returns the line, column, and source-line context of the error.
func (e *Error) Position() (int, int, string) {
	return e.Line, e.Column, e.Context
}

// Error implements the error interface.
func (e *Error) Error() string {
	return fmt.Sprintf("%s on line %d and column %d\n%s", e.Message, e.Line, e.Column, e.Context)
}
