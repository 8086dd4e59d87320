package parse

import (
	"testing"

	"github.com/tdewolff/test"
)

func TestError(t *testing.T) {
	err := NewError([]byte("line one\nline two"), 14, "unexpected %s", "token")

	line, col, context := err.Position()
	test.T(t, line, 2, "line")
	test.T(t, col, 6, "column")
	test.T(t, context, "line two", "context")
	test.T(t, err.Error(), "unexpected token on line 2 and column 6\nline two", "error")
}

func TestPosition(t *testing.T) {
	src := []byte("a\nbb\r\nccc")
	var tests = []struct {
		offset  int
		line    int
		col     int
		context string
	}{
		{0, 1, 1, "a"},
		{2, 2, 1, "bb"},
		{6, 3, 1, "ccc"},
	}
	for _, tt := range tests {
		line, col, context := Position(src, tt.offset)
		test.T(t, line, tt.line, "line")
		test.T(t, col, tt.col, "column")
		test.T(t, context, tt.context, "context")
	}
}

func TestPositionString(t *testing.T) {
	test.String(t, PositionString(3, 7), "3:7")
}
