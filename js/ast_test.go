package js

import (
	"testing"

	"github.com/tdewolff/test"
)

func TestExprStringers(t *testing.T) {
	var tests = []struct {
		node     Expr
		expected string
	}{
		{&NumberLiteral{Value: 5, Raw: "5"}, "5"},
		{&StringLiteral{Raw: `"hi"`}, `"hi"`},
		{&BooleanLiteral{Value: true}, "true"},
		{&BooleanLiteral{Value: false}, "false"},
		{&NullLiteral{}, "null"},
		{&ThisExpr{}, "this"},
		{&SuperExpr{}, "super"},
		{&NewTargetExpr{}, "new.target"},
		{&RegExpLiteral{Pattern: "a.b", Flags: "gi"}, "/a.b/gi"},
		{&Identifier{Text: "foo"}, "foo"},
	}
	for _, tt := range tests {
		test.String(t, tt.node.String(), tt.expected)
	}
}

func TestBinaryExprString(t *testing.T) {
	e := &BinaryExpr{
		Op:    AddToken,
		Left:  &NumberLiteral{Raw: "1"},
		Right: &NumberLiteral{Raw: "2"},
	}
	test.String(t, e.String(), "(1 + 2)")
}

func TestConditionalExprString(t *testing.T) {
	e := &ConditionalExpr{
		Test: &Identifier{Text: "a"},
		Cons: &NumberLiteral{Raw: "1"},
		Alt:  &NumberLiteral{Raw: "2"},
	}
	test.String(t, e.String(), "(a ? 1 : 2)")
}

func TestStmtStringers(t *testing.T) {
	var tests = []struct {
		node     Stmt
		expected string
	}{
		{&EmptyStmt{}, ";"},
		{&BreakStmt{}, "break;"},
		{&ContinueStmt{}, "continue;"},
		{&ReturnStmt{}, "return;"},
		{&DebuggerStmt{}, "debugger;"},
		{&ExprStmt{Expr: &Identifier{Text: "a"}}, "a;"},
	}
	for _, tt := range tests {
		test.String(t, tt.node.String(), tt.expected)
	}
}

func TestIfStmtStringWithAndWithoutElse(t *testing.T) {
	cond := &Identifier{Text: "a"}
	cons := &ExprStmt{Expr: &Identifier{Text: "b"}}
	noElse := &IfStmt{Cond: cond, Cons: cons}
	test.String(t, noElse.String(), "if (a) b;")

	alt := &ExprStmt{Expr: &Identifier{Text: "c"}}
	withElse := &IfStmt{Cond: cond, Cons: cons, Alt: alt}
	test.String(t, withElse.String(), "if (a) b; else c;")
}

func TestFunctionInfoName(t *testing.T) {
	var nilInfo *FunctionInfo
	test.String(t, nilInfo.name(), "")

	anon := &FunctionInfo{}
	test.String(t, anon.name(), "")

	named := &FunctionInfo{NameText: "f"}
	test.String(t, named.name(), "f")
}

func TestProgramStringJoinsBody(t *testing.T) {
	prog := &Program{Body: []Stmt{&EmptyStmt{}, &DebuggerStmt{}}}
	test.String(t, prog.String(), "; debugger;")
}

func TestVarDeclStmtIsUsableAsForInit(t *testing.T) {
	var decl Stmt = &VarDeclStmt{Kind: VarToken}
	_, ok := decl.(Expr)
	test.That(t, ok, "VarDeclStmt must also satisfy Expr for ForStmt.Init")
}
