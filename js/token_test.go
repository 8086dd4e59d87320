package js

import (
	"testing"

	"github.com/tdewolff/test"
)

func TestTokenTypeClassification(t *testing.T) {
	test.That(t, IsPunctuator(OpenBraceToken), "{ must be a punctuator")
	test.That(t, !IsPunctuator(AddToken), "+ must not be a punctuator")
	test.That(t, IsOperator(AddToken), "+ must be an operator")
	test.That(t, !IsOperator(OpenBraceToken), "{ must not be an operator")
	test.That(t, IsIdentifier(IdentifierToken), "IdentifierToken must classify as identifier")
}

func TestTokenTypeString(t *testing.T) {
	test.String(t, OpenBraceToken.String(), "{")
	test.String(t, ArrowToken.String(), "=>")
	test.String(t, VarToken.String(), "var")
	test.String(t, NullishEqToken.String(), "??=")
}

func TestTokenTypeFlags(t *testing.T) {
	test.That(t, VarToken.Flags()&FlagKeyword != 0, "var must carry FlagKeyword")
	test.That(t, YieldToken.Flags()&FlagReservedIfStrict != 0, "yield must carry FlagReservedIfStrict")
	test.That(t, BreakToken.Flags()&FlagReserved != 0, "break must be unconditionally reserved")
	test.That(t, AddToken.Flags()&FlagBinaryOpPrecedence != 0, "+ must carry FlagBinaryOpPrecedence")
	test.That(t, EqToken.Flags()&FlagAssignOp != 0, "= must carry FlagAssignOp")
	test.That(t, ErrorToken.Flags()&FlagErrorToken != 0, "ErrorToken must carry FlagErrorToken")
}

func TestTokenLiteral(t *testing.T) {
	tok := Token{Type: IdentifierToken, Raw: []byte("foo")}
	test.String(t, tok.Literal(), "foo")
}

func TestNameZeroValueIsSentinel(t *testing.T) {
	var n Name
	test.T(t, n, Name(0))
}
