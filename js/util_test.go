package js

import (
	"testing"

	"github.com/tdewolff/test"
)

func TestIsLHSExpr(t *testing.T) {
	test.That(t, isLHSExpr(&Identifier{}), "an identifier is a valid LHS")
	test.That(t, isLHSExpr(&MemberExpr{}), "a member expression is a valid LHS")
	test.That(t, isLHSExpr(&CallExpr{}), "a call expression is a valid LHS")
	test.That(t, !isLHSExpr(&BinaryExpr{}), "a binary expression is not a valid LHS")
	test.That(t, !isLHSExpr(&ConditionalExpr{}), "a conditional expression is not a valid LHS")
	test.That(t, !isLHSExpr(&SequenceExpr{}), "a sequence expression is not a valid LHS")
	test.That(t, !isLHSExpr(&AwaitExpr{}), "an await expression is not a valid LHS")
	test.That(t, !isLHSExpr(&AssignmentExpr{}), "an assignment expression is not a valid LHS")
}

func TestIsSimpleAssignmentTarget(t *testing.T) {
	test.That(t, isSimpleAssignmentTarget(&Identifier{}), "an identifier is a simple target")
	test.That(t, isSimpleAssignmentTarget(&MemberExpr{}), "a member expression is a simple target")
	test.That(t, !isSimpleAssignmentTarget(&CallExpr{}), "a call expression is not a simple target")
	test.That(t, !isSimpleAssignmentTarget(&NumberLiteral{}), "a literal is not a simple target")
}

func TestAsIdentifierName(t *testing.T) {
	test.That(t, AsIdentifierName([]byte("foo")), "foo must be a valid identifier name")
	test.That(t, AsIdentifierName([]byte("$_foo123")), "$_foo123 must be a valid identifier name")
	test.That(t, !AsIdentifierName([]byte("123abc")), "123abc must not be a valid identifier name")
	test.That(t, !AsIdentifierName([]byte("")), "an empty spelling must not be a valid identifier name")
	test.That(t, !AsIdentifierName([]byte("a-b")), "a-b must not be a valid identifier name")
}

func TestAsDecimalLiteral(t *testing.T) {
	test.That(t, AsDecimalLiteral([]byte("0")), "0 must be a valid decimal literal")
	test.That(t, AsDecimalLiteral([]byte("123")), "123 must be a valid decimal literal")
	test.That(t, AsDecimalLiteral([]byte("1.5")), "1.5 must be a valid decimal literal")
	test.That(t, !AsDecimalLiteral([]byte("01")), "01 has an ambiguous leading zero")
	test.That(t, !AsDecimalLiteral([]byte("1.5.5")), "1.5.5 must not be a valid decimal literal")
	test.That(t, !AsDecimalLiteral([]byte("")), "an empty spelling must not be a valid decimal literal")
}
