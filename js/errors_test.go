package js

import (
	"testing"

	"github.com/tdewolff/test"
)

func TestErrorKindString(t *testing.T) {
	test.String(t, SyntaxError.String(), "SyntaxError")
	test.String(t, SemanticError.String(), "SemanticError")
	test.String(t, StackOverflowError.String(), "StackOverflowError")
}

func TestNewParseErrorFormatsMessage(t *testing.T) {
	src := []byte("var a = ;")
	err := NewParseError(SyntaxError, src, Position{Start: 8, Line: 1}, "unexpected %s", "token")
	test.That(t, err.Kind == SyntaxError, "expected Kind SyntaxError")
	test.String(t, err.Message, "unexpected token")
}

func TestWrapAndUnwrapParseError(t *testing.T) {
	src := []byte("var a = ;")
	base := NewParseError(SyntaxError, src, Position{Start: 8, Line: 1}, "unexpected token")
	wrapped := WrapParseError(base, "main")

	pe, ok := AsParseError(wrapped)
	test.That(t, ok, "expected WrapParseError's result to unwrap back to the original *ParseError")
	test.That(t, pe == base, "expected the unwrapped error to be the same *ParseError instance")
}

func TestWrapParseErrorNilIsNil(t *testing.T) {
	test.That(t, WrapParseError(nil, "main") == nil, "wrapping a nil error must return nil")
}

func TestAsParseErrorOnUnrelatedErrorFails(t *testing.T) {
	_, ok := AsParseError(errNotAParseError{})
	test.That(t, !ok, "an unrelated error type must not unwrap to a *ParseError")
}

type errNotAParseError struct{}

func (errNotAParseError) Error() string { return "nope" }
