package js

import (
	"testing"

	"github.com/tdewolff/test"
)

func TestFullBuilderBuildsRealNodes(t *testing.T) {
	b := NewFullBuilder()
	test.That(t, b.CreatesAST(), "FullBuilder must report CreatesAST true")
	test.That(t, b.CanUseFunctionCache(), "FullBuilder must use the function cache")

	e := b.NumberLiteral(3, "3", Position{})
	n, ok := e.(*NumberLiteral)
	test.That(t, ok, "expected a *NumberLiteral")
	test.T(t, n.Value, float64(3))
	test.String(t, n.String(), "3")
}

func TestSyntaxOnlyBuilderReturnsSharedPlaceholders(t *testing.T) {
	b := NewSyntaxOnlyBuilder()
	test.That(t, !b.CreatesAST(), "SyntaxOnlyBuilder must report CreatesAST false")
	test.That(t, !b.CanUseFunctionCache(), "SyntaxOnlyBuilder must not use the function cache")

	e1 := b.NumberLiteral(1, "1", Position{})
	e2 := b.StringLiteral("a", `"a"`, Position{})
	test.That(t, e1 == e2, "every SyntaxOnlyBuilder expression must collapse to the same placeholder")

	s1 := b.EmptyStmt(Position{})
	s2 := b.BlockStmt(nil, Position{})
	test.That(t, s1 == s2, "every SyntaxOnlyBuilder statement must collapse to the same placeholder")
}

func TestSyntaxOnlyBuilderStmtListIsAlwaysNil(t *testing.T) {
	b := NewSyntaxOnlyBuilder()
	list := b.NewStmtList()
	list = b.AppendStmt(list, b.EmptyStmt(Position{}))
	test.That(t, list == nil, "SyntaxOnlyBuilder must never allocate a statement list")
}

func TestBuilderProgram(t *testing.T) {
	full := NewFullBuilder()
	body := full.NewStmtList()
	body = full.AppendStmt(body, full.EmptyStmt(Position{}))
	prog := full.Program(body, true)
	test.That(t, prog.Module, "expected Module to be true")
	test.T(t, len(prog.Body), 1)
}
