package parse // import "github.com/dewolfson/ecmaparse"

import "fmt"

// Position returns the 1-based line and column number for offset within
// src, along with the full text of the line offset falls on (used as
// error context). It treats \n, \r, and \r\n as newlines;   and
//   are recognized by the ECMAScript lexer itself (see js/lex.go)
// and never reach here as embedded line breaks within a single line's
// context text.
func Position(src []byte, offset int) (line, col int, context string) {
	line = 1
	lineStart := 0
	for i := 0; i < offset && i < len(src); i++ {
		if src[i] == '\n' {
			line++
			lineStart = i + 1
		} else if src[i] == '\r' {
			line++
			if i+1 < len(src) && src[i+1] == '\n' {
				i++
			}
			lineStart = i + 1
		}
	}
	col = offset - lineStart + 1

	lineEnd := lineStart
	for lineEnd < len(src) && src[lineEnd] != '\n' && src[lineEnd] != '\r' {
		lineEnd++
	}
	context = string(src[lineStart:lineEnd])
	return
}

// PositionString formats a line/column pair the way callers expect to
// display it in a diagnostic.
func PositionString(line, col int) string {
	return fmt.Sprintf("%d:%d", line, col)
}
