package js

import (
	"testing"

	"github.com/tdewolff/test"
)

func assertTokens(t *testing.T, src string, want ...TokenType) {
	t.Helper()
	in := NewInterner()
	l := NewLexer([]byte(src), in)
	got := []TokenType{}
	for {
		tok := l.Next()
		if tok.Type == EOFToken || tok.Type == ErrorToken {
			break
		}
		if tok.Type == WhitespaceToken || tok.Type == LineTerminatorToken {
			continue
		}
		got = append(got, tok.Type)
	}
	test.T(t, len(got), len(want), "token count for "+src)
	for i := range want {
		if i < len(got) {
			test.T(t, got[i], want[i], "token type at index for "+src)
		}
	}
}

func TestLexPunctuators(t *testing.T) {
	assertTokens(t, "{ } ( ) [ ]",
		OpenBraceToken, CloseBraceToken, OpenParenToken, CloseParenToken, OpenBracketToken, CloseBracketToken)
	assertTokens(t, ". ; , ? ?. : =>",
		DotToken, SemicolonToken, CommaToken, QuestionToken, OptChainToken, ColonToken, ArrowToken)
	assertTokens(t, "... ",
		EllipsisToken)
}

func TestLexOperators(t *testing.T) {
	assertTokens(t, "=== !== ?? &&= ||=",
		EqEqEqToken, NotEqEqToken, NullishToken, AndEqToken, OrEqToken)
	assertTokens(t, "** **=", ExpToken, ExpEqToken)
}

func TestLexNumericLiterals(t *testing.T) {
	var tests = []string{
		"5", "5.2", ".04", "5e99", "0x1F", "0b101", "0o17", "1_000_000", "10n",
	}
	for _, src := range tests {
		t.Run(src, func(t *testing.T) {
			in := NewInterner()
			l := NewLexer([]byte(src), in)
			tok := l.Next()
			test.T(t, tok.Type, NumericToken, "token type for "+src)
			test.String(t, tok.Literal(), src)
		})
	}
}

func TestLexStrings(t *testing.T) {
	in := NewInterner()
	l := NewLexer([]byte(`'it\'s'`), in)
	tok := l.Next()
	test.T(t, tok.Type, StringToken)
	test.String(t, string(tok.Payload.Cooked), "it's")
}

func TestLexTemplateLiteral(t *testing.T) {
	in := NewInterner()
	l := NewLexer([]byte("`a${b}c`"), in)
	tok := l.Next()
	test.T(t, tok.Type, TemplateToken)
}

func TestLexIdentifiersAndKeywords(t *testing.T) {
	assertTokens(t, "foo bar123 $baz _qux",
		IdentifierToken, IdentifierToken, IdentifierToken, IdentifierToken)
	assertTokens(t, "var let const function class",
		VarToken, LetToken, ConstToken, FunctionToken, ClassToken)
}

func TestLexContextualKeywordsCarryIdent(t *testing.T) {
	in := NewInterner()
	l := NewLexer([]byte("of"), in)
	tok := l.Next()
	test.T(t, tok.Type, OfToken)
	test.That(t, tok.Payload.Ident != 0, "expected Payload.Ident set for a contextual keyword")
}

func TestLexOptionalChainingNotConfusedWithNumericLiteral(t *testing.T) {
	assertTokens(t, "a?.b", IdentifierToken, OptChainToken, IdentifierToken)
	assertTokens(t, "a ? .5 : 1", IdentifierToken, QuestionToken, NumericToken, ColonToken, NumericToken)
}

func TestLexRegExp(t *testing.T) {
	in := NewInterner()
	l := NewLexer([]byte("/abc/gi"), in)
	test.T(t, l.Next().Type, DivToken) // ScanRegExp rescans from the '/' that Next returned
	tok, ok := l.ScanRegExp()
	test.That(t, ok, "expected ScanRegExp to succeed")
	test.T(t, tok.Type, RegExpToken)
}

func TestLexComments(t *testing.T) {
	assertTokens(t, "a // line comment\nb", IdentifierToken, SingleLineCommentToken, IdentifierToken)
	assertTokens(t, "a /* block */ b", IdentifierToken, SingleLineCommentToken, IdentifierToken)
}

func TestLexLineTerminatorFlag(t *testing.T) {
	in := NewInterner()
	l := NewLexer([]byte("a\nb"), in)
	_ = l.Next() // a
	test.That(t, !l.PrevTerminator(), "no terminator seen yet")
	tok := l.Next() // line terminator
	test.T(t, tok.Type, LineTerminatorToken)
	test.That(t, l.PrevTerminator(), "expected PrevTerminator right after consuming the newline")
}
