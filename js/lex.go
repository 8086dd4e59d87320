package js

import (
	"fmt"
	"strconv"
	"unicode"
	"unicode/utf8"

	ecmaparse "github.com/dewolfson/ecmaparse"
)

var identifierStart = []*unicode.RangeTable{unicode.Lu, unicode.Ll, unicode.Lt, unicode.Lm, unicode.Lo, unicode.Nl, unicode.Other_ID_Start}
var identifierContinue = []*unicode.RangeTable{unicode.Lu, unicode.Ll, unicode.Lt, unicode.Lm, unicode.Lo, unicode.Nl, unicode.Mn, unicode.Mc, unicode.Nd, unicode.Pc, unicode.Other_ID_Continue}

// Lexer is the tokenizer the parser drives one token at a time
// (spec.md §2 component 1). It carries no grammar knowledge beyond
// regex/template/ASI-adjacent bookkeeping (paren/brace nesting level,
// the line-terminator-before-this-token flag, and the template-nesting
// stack); everything else is the parser's job.
//
// Grounded on the teacher's js/lex.go Lexer, rewired from
// buffer.Lexer (an io.Reader-backed shiftable buffer) onto
// parse.Buffer (an in-memory []byte buffer), since SPEC_FULL.md's
// Parse entry point always receives a complete source text rather
// than a stream.
type Lexer struct {
	r   *ecmaparse.Buffer
	in  *Interner
	err error

	prevLineTerminator bool
	level              int
	templateLevels     []int

	line      int
	lineStart int

	reparsing bool
}

// NewLexer returns a Lexer over source, interning identifiers into in.
func NewLexer(source []byte, in *Interner) *Lexer {
	return &Lexer{
		r:                  ecmaparse.NewBuffer(source),
		in:                 in,
		prevLineTerminator: true,
		line:               1,
	}
}

// SetCode resets the lexer to scan a new source buffer against the
// same interner, reusing the Lexer value (spec.md §6 lexer contract
// "setCode").
func (l *Lexer) SetCode(source []byte, in *Interner) {
	l.r = ecmaparse.NewBuffer(source)
	l.in = in
	l.err = nil
	l.prevLineTerminator = true
	l.level = 0
	l.templateLevels = l.templateLevels[:0]
	l.line = 1
	l.lineStart = 0
	l.reparsing = false
}

// SetOffset repositions the lexer at offset, whose line began at
// lineStart (spec.md §6 lexer contract "setOffset"), and marks the
// lexer as reparsing (see IsReparsingFunction). The parser's cache
// replay moves the read cursor directly and does not call this.
func (l *Lexer) SetOffset(offset, lineStart int) {
	l.r.MoveTo(offset)
	l.lineStart = lineStart
	l.reparsing = true
}

// SetLineNumber overrides the line counter (spec.md §6 lexer contract
// "setLineNumber"), paired with SetOffset when resuming mid-source.
func (l *Lexer) SetLineNumber(line int) { l.line = line }

// CurrentOffset returns the byte offset of the lexer's read cursor
// (spec.md §6 lexer contract "currentOffset").
func (l *Lexer) CurrentOffset() int { return l.r.Offset() }

// PrevTerminator reports whether a line terminator (or a comment
// containing one) appeared between the previous token and the one just
// returned by Next, which is what automatic-semicolon-insertion and the
// restricted-token productions (postfix ++/--, arrow, yield, continue,
// break, return, throw) consult (spec.md §4.1).
func (l *Lexer) PrevTerminator() bool { return l.prevLineTerminator }

// IsReparsingFunction reports whether this lexer was repositioned via
// SetOffset into the middle of an already-once-scanned source.
func (l *Lexer) IsReparsingFunction() bool { return l.reparsing }

// Err returns the error encountered during lexing, if any.
func (l *Lexer) Err() error { return l.err }

func (l *Lexer) pos(start int) Position {
	return Position{Start: start, End: l.r.Pos(), LineStart: l.lineStart, Line: l.line}
}

func (l *Lexer) token(tt TokenType, start int) Token {
	raw := l.r.Bytes()[start:l.r.Pos()]
	return Token{Type: tt, Pos: l.pos(start), Raw: raw}
}

// ScanRegExp reparses the token just returned as DivToken or DivEqToken
// as a regular-expression literal instead (spec.md §6 lexer contract
// "scanRegExp"). The parser calls this only in expression positions
// where a leading `/` cannot be division, mirroring the teacher's
// Lexer.RegExp.
func (l *Lexer) ScanRegExp() (Token, bool) {
	if 0 < l.r.Pos() && l.r.Peek(-1) == '/' {
		l.r.Move(-1)
	} else if 1 < l.r.Pos() && l.r.Peek(-1) == '=' && l.r.Peek(-2) == '/' {
		l.r.Move(-2)
	} else {
		return Token{}, false
	}
	start := l.r.Pos()
	if !l.consumeRegExpToken() {
		return Token{}, false
	}
	raw := l.r.Bytes()[start:l.r.Pos()]
	pattern, flags := splitRegExp(raw)
	t := Token{Type: RegExpToken, Pos: l.pos(start), Raw: raw}
	t.Payload.Raw = []byte(pattern)
	t.Payload.Cooked = []byte(flags)
	return t, true
}

func splitRegExp(raw []byte) (pattern, flags string) {
	// raw is `/pattern/flags`; scan from the end to find the closing
	// slash, since the pattern body may itself contain escaped slashes
	// but never an unescaped one outside a character class (already
	// enforced by consumeRegExpToken).
	for i := len(raw) - 1; i > 0; i-- {
		if raw[i] == '/' {
			return string(raw[1:i]), string(raw[i+1:])
		}
	}
	return string(raw), ""
}

// Next returns the next token, mutating internal line/terminator
// tracking state (spec.md §6 lexer contract "next").
func (l *Lexer) Next() Token {
	prevLineTerminator := l.prevLineTerminator
	l.prevLineTerminator = false
	start := l.r.Pos()

	c := l.r.Peek(0)
	switch c {
	case '(':
		l.level++
		l.r.Move(1)
		return l.token(OpenParenToken, start)
	case ')':
		l.level--
		l.r.Move(1)
		return l.token(CloseParenToken, start)
	case '{':
		l.level++
		l.r.Move(1)
		return l.token(OpenBraceToken, start)
	case '}':
		l.level--
		if len(l.templateLevels) != 0 && l.level == l.templateLevels[len(l.templateLevels)-1] {
			tail := l.consumeTemplateToken()
			return l.templateToken(start, tail)
		}
		l.r.Move(1)
		return l.token(CloseBraceToken, start)
	case ']':
		l.r.Move(1)
		return l.token(CloseBracketToken, start)
	case '[':
		l.r.Move(1)
		return l.token(OpenBracketToken, start)
	case ';':
		l.r.Move(1)
		return l.token(SemicolonToken, start)
	case ',':
		l.r.Move(1)
		return l.token(CommaToken, start)
	case ':':
		l.r.Move(1)
		return l.token(ColonToken, start)
	case '~':
		l.r.Move(1)
		return l.token(BitNotToken, start)
	case '#':
		l.r.Move(1)
		if tt := l.consumeIdentifierToken(start + 1); tt != ErrorToken {
			t := l.token(PrivateIdentifierToken, start)
			t.Payload.Ident = l.internLexeme(start + 1)
			return t
		}
		return l.errorToken(start, c)
	case '<', '-':
		if l.consumeHTMLLikeCommentToken(prevLineTerminator) {
			return l.token(SingleLineCommentToken, start)
		} else if tt := l.consumeOperatorToken(c); tt != ErrorToken {
			return l.token(tt, start)
		}
	case '>', '=', '!', '+', '*', '%', '&', '|', '^', '?':
		if tt := l.consumeOperatorToken(c); tt != ErrorToken {
			return l.token(tt, start)
		}
	case '/':
		if tt := l.consumeCommentToken(); tt != ErrorToken {
			return l.token(tt, start)
		} else if tt := l.consumeOperatorToken(c); tt != ErrorToken {
			return l.token(tt, start)
		}
	case '0', '1', '2', '3', '4', '5', '6', '7', '8', '9':
		if l.consumeNumericToken() {
			t := l.token(NumericToken, start)
			t.Payload.Num = parseNumericLiteral(t.Raw)
			return t
		}
	case '.':
		if l.consumeNumericToken() {
			t := l.token(NumericToken, start)
			t.Payload.Num = parseNumericLiteral(t.Raw)
			return t
		}
		l.r.Move(1)
		if l.r.Peek(0) == '.' && l.r.Peek(1) == '.' {
			l.r.Move(2)
			return l.token(EllipsisToken, start)
		}
		return l.token(DotToken, start)
	case '\'', '"':
		if l.consumeStringToken() {
			t := l.token(StringToken, start)
			t.Payload.Cooked = []byte(cookString(t.Raw[1 : len(t.Raw)-1]))
			return t
		}
	case ' ', '\t', '\v', '\f':
		l.r.Move(1)
		for l.consumeWhitespaceByte() || l.consumeWhitespaceRune() {
		}
		l.prevLineTerminator = prevLineTerminator
		return l.token(WhitespaceToken, start)
	case '\n', '\r':
		l.consumeLineTerminatorRun()
		return l.token(LineTerminatorToken, start)
	case '`':
		l.templateLevels = append(l.templateLevels, l.level)
		tail := l.consumeTemplateToken()
		return l.templateToken(start, tail)
	default:
		if tt := l.consumeIdentifierToken(start); tt != ErrorToken {
			t := l.token(tt, start)
			if tt == IdentifierToken || contextualKeywords[tt] {
				t.Payload.Ident = l.internLexeme(start)
			}
			return t
		} else if c >= 0xC0 {
			if l.consumeWhitespaceByte() || l.consumeWhitespaceRune() {
				for l.consumeWhitespaceByte() || l.consumeWhitespaceRune() {
				}
				l.prevLineTerminator = prevLineTerminator
				return l.token(WhitespaceToken, start)
			} else if l.atLineTerminator() {
				l.consumeLineTerminatorRun()
				return l.token(LineTerminatorToken, start)
			}
		} else if c == 0 && l.r.Pos() >= l.r.Len() {
			return Token{Type: EOFToken, Pos: l.pos(start)}
		}
	}
	return l.errorToken(start, c)
}

func (l *Lexer) consumeLineTerminatorRun() {
	for l.consumeLineTerminator() {
		l.line++
		l.lineStart = l.r.Pos()
	}
	l.prevLineTerminator = true
}

func (l *Lexer) errorToken(start int, c byte) Token {
	r, n := utf8.DecodeRune(l.r.Bytes()[l.r.Pos():])
	l.r.Move(max1(n))
	if n <= 1 {
		l.err = fmt.Errorf("unexpected character '%c' found", c)
	} else {
		l.err = fmt.Errorf("unexpected character 0x%x found", r)
	}
	return l.token(ErrorToken, start)
}

func max1(n int) int {
	if n < 1 {
		return 1
	}
	return n
}

func (l *Lexer) internLexeme(start int) Name {
	return l.in.InternBytes(l.r.Bytes()[start:l.r.Pos()])
}

// templateToken builds a Token for one template-literal chunk: either a
// full `` `...` `` / tail-closing ``...` `` span, or a head/middle span
// ending at a `${` substitution boundary. tail distinguishes the two so
// the parser knows whether more substitutions follow.
func (l *Lexer) templateToken(start int, tail bool) Token {
	t := l.token(TemplateToken, start)
	body := t.Raw
	if len(body) > 0 && (body[0] == '`' || body[0] == '}') {
		body = body[1:]
	}
	if tail {
		body = body[:len(body)-1] // drop trailing `
	} else {
		body = body[:len(body)-2] // drop trailing ${
	}
	t.Payload.Cooked = []byte(cookString(body))
	return t
}

////////////////////////////////////////////////////////////////

func (l *Lexer) consumeWhitespaceByte() bool {
	c := l.r.Peek(0)
	if c == ' ' || c == '\t' || c == '\v' || c == '\f' {
		l.r.Move(1)
		return true
	}
	return false
}

func (l *Lexer) peekRune(off int) (rune, int) {
	return utf8.DecodeRune(l.r.Bytes()[l.r.Pos()+off:])
}

func (l *Lexer) consumeWhitespaceRune() bool {
	c := l.r.Peek(0)
	if c >= 0xC0 {
		if r, n := l.peekRune(0); r == '\u00A0' || r == '\uFEFF' || unicode.Is(unicode.Zs, r) {
			l.r.Move(n)
			return true
		}
	}
	return false
}

func (l *Lexer) atLineTerminator() bool {
	if r, _ := l.peekRune(0); r == '\u2028' || r == '\u2029' {
		return true
	}
	return false
}

func (l *Lexer) consumeLineTerminator() bool {
	c := l.r.Peek(0)
	if c == '\n' {
		l.r.Move(1)
		return true
	} else if c == '\r' {
		if l.r.Peek(1) == '\n' {
			l.r.Move(2)
		} else {
			l.r.Move(1)
		}
		return true
	} else if c >= 0xC0 {
		if r, n := l.peekRune(0); r == '\u2028' || r == '\u2029' {
			l.r.Move(n)
			return true
		}
	}
	return false
}

func (l *Lexer) consumeDigit() bool {
	if c := l.r.Peek(0); c >= '0' && c <= '9' {
		l.r.Move(1)
		return true
	}
	return false
}

func (l *Lexer) consumeDigitOrSeparator() bool {
	if c := l.r.Peek(0); c >= '0' && c <= '9' || c == '_' {
		l.r.Move(1)
		return true
	}
	return false
}

func (l *Lexer) consumeHexDigit() bool {
	if c := l.r.Peek(0); (c >= '0' && c <= '9') || (c >= 'a' && c <= 'f') || (c >= 'A' && c <= 'F') || c == '_' {
		l.r.Move(1)
		return true
	}
	return false
}

func (l *Lexer) consumeBinaryDigit() bool {
	if c := l.r.Peek(0); c == '0' || c == '1' || c == '_' {
		l.r.Move(1)
		return true
	}
	return false
}

func (l *Lexer) consumeOctalDigit() bool {
	if c := l.r.Peek(0); c >= '0' && c <= '7' || c == '_' {
		l.r.Move(1)
		return true
	}
	return false
}

func (l *Lexer) consumeUnicodeEscape() bool {
	if l.r.Peek(0) != '\\' || l.r.Peek(1) != 'u' {
		return false
	}
	mark := l.r.Pos()
	l.r.Move(2)
	if c := l.r.Peek(0); c == '{' {
		l.r.Move(1)
		if l.consumeHexDigit() {
			for l.consumeHexDigit() {
			}
			if c := l.r.Peek(0); c == '}' {
				l.r.Move(1)
				return true
			}
		}
		l.r.MoveTo(mark)
		return false
	} else if !l.consumeHexDigit() || !l.consumeHexDigit() || !l.consumeHexDigit() || !l.consumeHexDigit() {
		l.r.MoveTo(mark)
		return false
	}
	return true
}

func (l *Lexer) consumeSingleLineComment() {
	for {
		c := l.r.Peek(0)
		if c == '\r' || c == '\n' || (c == 0 && l.r.Pos() >= l.r.Len()) {
			break
		} else if c >= 0xC0 {
			if r, _ := l.peekRune(0); r == ' ' || r == ' ' {
				break
			}
		}
		l.r.Move(1)
	}
}

func (l *Lexer) consumeHTMLLikeCommentToken(prevLineTerminator bool) bool {
	c := l.r.Peek(0)
	if c == '<' && l.r.Peek(1) == '!' && l.r.Peek(2) == '-' && l.r.Peek(3) == '-' {
		l.r.Move(4)
		l.consumeSingleLineComment()
		return true
	} else if prevLineTerminator && c == '-' && l.r.Peek(1) == '-' && l.r.Peek(2) == '>' {
		l.r.Move(3)
		l.consumeSingleLineComment()
		return true
	}
	return false
}

func (l *Lexer) consumeCommentToken() TokenType {
	c := l.r.Peek(1)
	if c == '/' {
		l.r.Move(2)
		l.consumeSingleLineComment()
		return SingleLineCommentToken
	} else if c == '*' {
		tt := SingleLineCommentToken
		l.r.Move(2)
		for {
			c := l.r.Peek(0)
			if c == '*' && l.r.Peek(1) == '/' {
				l.r.Move(2)
				break
			} else if c == 0 && l.r.Pos() >= l.r.Len() {
				break
			} else if l.consumeLineTerminator() {
				tt = MultiLineCommentToken
				l.line++
				l.lineStart = l.r.Pos()
				l.prevLineTerminator = true
			} else {
				l.r.Move(1)
			}
		}
		return tt
	}
	return ErrorToken
}

var opTokens = map[byte]TokenType{
	'=': EqToken, '!': NotToken, '<': LtToken, '>': GtToken,
	'+': AddToken, '-': SubToken, '*': MulToken, '/': DivToken, '%': ModToken,
	'&': BitAndToken, '|': BitOrToken, '^': BitXorToken, '?': QuestionToken,
}

var opEqTokens = map[byte]TokenType{
	'=': EqEqToken, '!': NotEqToken, '<': LtEqToken, '>': GtEqToken,
	'+': AddEqToken, '-': SubEqToken, '*': MulEqToken, '/': DivEqToken, '%': ModEqToken,
	'&': BitAndEqToken, '|': BitOrEqToken, '^': BitXorEqToken,
}

var opOpTokens = map[byte]TokenType{
	'+': IncrToken, '-': DecrToken, '*': ExpToken, '&': AndToken, '|': OrToken, '?': NullishToken,
}

func (l *Lexer) consumeOperatorToken(c byte) TokenType {
	l.r.Move(1)
	if c == '?' && l.r.Peek(0) == '.' {
		// `?.` unless followed by a digit, which would make it the
		// optional-chaining punctuator colliding with `?.5` (a
		// conditional whose consequent is a decimal literal).
		if d := l.r.Peek(1); d < '0' || d > '9' {
			l.r.Move(1)
			return OptChainToken
		}
		return QuestionToken
	}
	if l.r.Peek(0) == '=' {
		l.r.Move(1)
		if l.r.Peek(0) == '=' && (c == '!' || c == '=') {
			l.r.Move(1)
			if c == '!' {
				return NotEqEqToken
			}
			return EqEqEqToken
		}
		return opEqTokens[c]
	} else if l.r.Peek(0) == c && (c == '+' || c == '-' || c == '*' || c == '&' || c == '|' || c == '?') {
		l.r.Move(1)
		if c == '*' && l.r.Peek(0) == '=' {
			l.r.Move(1)
			return ExpEqToken
		}
		if (c == '&' || c == '|' || c == '?') && l.r.Peek(0) == '=' {
			l.r.Move(1)
			switch c {
			case '&':
				return AndEqToken
			case '|':
				return OrEqToken
			default:
				return NullishEqToken
			}
		}
		return opOpTokens[c]
	} else if c == '=' && l.r.Peek(0) == '>' {
		l.r.Move(1)
		return ArrowToken
	} else if c == '<' && l.r.Peek(0) == '<' {
		l.r.Move(1)
		if l.r.Peek(0) == '=' {
			l.r.Move(1)
			return LtLtEqToken
		}
		return LtLtToken
	} else if c == '>' && l.r.Peek(0) == '>' {
		l.r.Move(1)
		if l.r.Peek(0) == '>' {
			l.r.Move(1)
			if l.r.Peek(0) == '=' {
				l.r.Move(1)
				return GtGtGtEqToken
			}
			return GtGtGtToken
		} else if l.r.Peek(0) == '=' {
			l.r.Move(1)
			return GtGtEqToken
		}
		return GtGtToken
	}
	return opTokens[c]
}

func (l *Lexer) consumeIdentifierToken(start int) TokenType {
	c := l.r.Peek(0)
	if identifierTable[c] && (c < '0' || c > '9') {
		if c >= 0xC0 {
			if r, n := l.peekRune(0); unicode.IsOneOf(identifierStart, r) {
				l.r.Move(n)
			} else {
				return ErrorToken
			}
		} else {
			l.r.Move(1)
		}
	} else if !l.consumeUnicodeEscape() {
		return ErrorToken
	}
	for {
		c := l.r.Peek(0)
		if identifierTable[c] {
			if c >= 0xC0 {
				if r, n := l.peekRune(0); r == '\u200C' || r == '\u200D' || unicode.IsOneOf(identifierContinue, r) {
					l.r.Move(n)
				} else {
					break
				}
			} else {
				l.r.Move(1)
			}
		} else if !l.consumeUnicodeEscape() {
			break
		}
	}
	if keyword, ok := Keywords[string(l.r.Bytes()[start:l.r.Pos()])]; ok {
		return keyword
	}
	return IdentifierToken
}

func (l *Lexer) consumeNumericToken() bool {
	mark := l.r.Pos()
	c := l.r.Peek(0)
	if c == '0' {
		l.r.Move(1)
		if p := l.r.Peek(0); p == 'x' || p == 'X' {
			l.r.Move(1)
			if l.consumeHexDigit() {
				for l.consumeHexDigit() {
				}
			} else {
				l.r.Move(-1)
			}
			l.consumeBigIntSuffix()
			return true
		} else if p := l.r.Peek(0); p == 'b' || p == 'B' {
			l.r.Move(1)
			if l.consumeBinaryDigit() {
				for l.consumeBinaryDigit() {
				}
			} else {
				l.r.Move(-1)
			}
			l.consumeBigIntSuffix()
			return true
		} else if p := l.r.Peek(0); p == 'o' || p == 'O' {
			l.r.Move(1)
			if l.consumeOctalDigit() {
				for l.consumeOctalDigit() {
				}
			} else {
				l.r.Move(-1)
			}
			l.consumeBigIntSuffix()
			return true
		} else if p := l.r.Peek(0); p >= '0' && p <= '7' {
			// legacy octal literal (e.g. `0755`); valid only outside
			// strict mode, enforced by the parser, not the lexer.
			for l.consumeOctalDigit() {
			}
			return true
		}
	} else if c != '.' {
		for l.consumeDigitOrSeparator() {
		}
	}
	if l.r.Peek(0) == '.' {
		l.r.Move(1)
		if l.consumeDigit() {
			for l.consumeDigitOrSeparator() {
			}
		} else if c != '.' {
			l.r.Move(-1)
			return true
		} else {
			l.r.MoveTo(mark)
			return false
		}
	}
	expMark := l.r.Pos()
	c = l.r.Peek(0)
	if c == 'e' || c == 'E' {
		l.r.Move(1)
		c = l.r.Peek(0)
		if c == '+' || c == '-' {
			l.r.Move(1)
		}
		if !l.consumeDigit() {
			l.r.MoveTo(expMark)
			return true
		}
		for l.consumeDigitOrSeparator() {
		}
	}
	l.consumeBigIntSuffix()
	return true
}

func (l *Lexer) consumeBigIntSuffix() {
	if l.r.Peek(0) == 'n' {
		l.r.Move(1)
	}
}

func (l *Lexer) consumeStringToken() bool {
	mark := l.r.Pos()
	delim := l.r.Peek(0)
	l.r.Move(1)
	for {
		c := l.r.Peek(0)
		if c == delim {
			l.r.Move(1)
			break
		} else if c == '\\' {
			l.r.Move(1)
			if !l.consumeLineTerminator() {
				if c := l.r.Peek(0); c != 0 {
					l.r.Move(1)
				}
			}
			continue
		} else if l.consumeLineTerminator() || (c == 0 && l.r.Pos() >= l.r.Len()) {
			l.r.MoveTo(mark)
			return false
		}
		l.r.Move(1)
	}
	return true
}

func (l *Lexer) consumeRegExpToken() bool {
	mark := l.r.Pos()
	l.r.Move(1)
	inClass := false
	for {
		c := l.r.Peek(0)
		if !inClass && c == '/' {
			l.r.Move(1)
			break
		} else if c == '[' {
			inClass = true
			l.r.Move(1)
			continue
		} else if c == ']' {
			inClass = false
			l.r.Move(1)
			continue
		} else if c == '\\' {
			l.r.Move(1)
			if l.consumeLineTerminator() || (l.r.Peek(0) == 0 && l.r.Pos() >= l.r.Len()) {
				l.r.MoveTo(mark)
				return false
			}
		} else if l.consumeLineTerminator() || (c == 0 && l.r.Pos() >= l.r.Len()) {
			l.r.MoveTo(mark)
			return false
		}
		l.r.Move(1)
	}
	for {
		c := l.r.Peek(0)
		if identifierTable[c] {
			if c >= 0xC0 {
				if r, n := l.peekRune(0); r == '\u200C' || r == '\u200D' || unicode.IsOneOf(identifierContinue, r) {
					l.r.Move(n)
				} else {
					break
				}
			} else {
				l.r.Move(1)
			}
		} else {
			break
		}
	}
	return true
}

// consumeTemplateToken scans from a backtick or a `}` reopening a
// template continuation through to either the closing backtick (tail =
// true) or the next `${` substitution boundary (tail = false).
func (l *Lexer) consumeTemplateToken() (tail bool) {
	l.r.Move(1)
	for {
		c := l.r.Peek(0)
		if c == '`' {
			l.templateLevels = l.templateLevels[:len(l.templateLevels)-1]
			l.r.Move(1)
			return true
		} else if c == '$' && l.r.Peek(1) == '{' {
			l.level++
			l.r.Move(2)
			return false
		} else if c == '\\' {
			l.r.Move(1)
			if c := l.r.Peek(0); c != 0 {
				l.r.Move(1)
			}
			continue
		} else if l.consumeLineTerminator() {
			l.line++
			l.lineStart = l.r.Pos()
			continue
		} else if c == 0 && l.r.Pos() >= l.r.Len() {
			return true
		}
		l.r.Move(1)
	}
}

var identifierTable = [256]bool{
	false, false, false, false, false, false, false, false,
	false, false, false, false, false, false, false, false,
	false, false, false, false, false, false, false, false,
	false, false, false, false, false, false, false, false,

	false, false, false, false, true, false, false, false, // $
	false, false, false, false, false, false, false, false,
	true, true, true, true, true, true, true, true, // 0-7
	true, true, false, false, false, false, false, false, // 8, 9

	false, true, true, true, true, true, true, true, // A-G
	true, true, true, true, true, true, true, true, // H-O
	true, true, true, true, true, true, true, true, // P-W
	true, true, true, false, false, false, false, true, // X, Y, Z, _

	false, true, true, true, true, true, true, true, // a-g
	true, true, true, true, true, true, true, true, // h-o
	true, true, true, true, true, true, true, true, // p-w
	true, true, true, false, false, false, false, false, // x, y, z

	false, false, false, false, false, false, false, false,
	false, false, false, false, false, false, false, false,
	false, false, false, false, false, false, false, false,
	false, false, false, false, false, false, false, false,

	false, false, false, false, false, false, false, false,
	false, false, false, false, false, false, false, false,
	false, false, false, false, false, false, false, false,
	false, false, false, false, false, false, false, false,

	true, true, true, true, true, true, true, true,
	true, true, true, true, true, true, true, true,
	true, true, true, true, true, true, true, true,
	true, true, true, true, true, true, true, true,

	true, true, true, true, true, true, true, true,
	true, true, true, true, true, true, true, true,
	true, true, true, true, true, true, true, true,
	true, true, true, true, true, true, true, true,
}

// parseNumericLiteral converts a scanned numeric token's raw spelling
// to its float64 value (spec.md §4.6 "NumberLiteral"), stripping
// numeric separators and delegating radix/exponent parsing to strconv.
func parseNumericLiteral(raw []byte) float64 {
	s := string(raw)
	if len(s) > 0 && s[len(s)-1] == 'n' {
		s = s[:len(s)-1] // BigInt suffix: value still reported as float64 here
	}
	clean := make([]byte, 0, len(s))
	for i := 0; i < len(s); i++ {
		if s[i] != '_' {
			clean = append(clean, s[i])
		}
	}
	s = string(clean)
	if len(s) > 1 && s[0] == '0' && (s[1] == 'x' || s[1] == 'X') {
		if v, err := strconv.ParseUint(s[2:], 16, 64); err == nil {
			return float64(v)
		}
	} else if len(s) > 1 && s[0] == '0' && (s[1] == 'b' || s[1] == 'B') {
		if v, err := strconv.ParseUint(s[2:], 2, 64); err == nil {
			return float64(v)
		}
	} else if len(s) > 1 && s[0] == '0' && (s[1] == 'o' || s[1] == 'O') {
		if v, err := strconv.ParseUint(s[2:], 8, 64); err == nil {
			return float64(v)
		}
	} else if len(s) > 1 && s[0] == '0' && isAllOctalDigits(s[1:]) {
		if v, err := strconv.ParseUint(s[1:], 8, 64); err == nil {
			return float64(v)
		}
	}
	v, _ := strconv.ParseFloat(s, 64)
	return v
}

func isAllOctalDigits(s string) bool {
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '7' {
			return false
		}
	}
	return len(s) > 0
}

// cookString decodes the escape sequences of a string- or
// template-literal body into its cooked runtime value (spec.md §4.6
// "StringLiteral"/"TemplateLiteral" cooked value). Not grounded on any
// teacher file (the teacher's Full builder never computes a cooked
// value, only keeping the raw token text — see DESIGN.md); written
// directly against the ECMA-262 escape-sequence grammar.
func cookString(raw []byte) string {
	out := make([]byte, 0, len(raw))
	for i := 0; i < len(raw); i++ {
		c := raw[i]
		if c != '\\' || i+1 >= len(raw) {
			out = append(out, c)
			continue
		}
		i++
		if r, n := utf8.DecodeRune(raw[i:]); r == ' ' || r == ' ' {
			// line continuation: escaped newline contributes nothing
			i += n - 1
			continue
		}
		switch e := raw[i]; e {
		case 'n':
			out = append(out, '\n')
		case 't':
			out = append(out, '\t')
		case 'r':
			out = append(out, '\r')
		case 'b':
			out = append(out, '\b')
		case 'f':
			out = append(out, '\f')
		case 'v':
			out = append(out, '\v')
		case '0':
			out = append(out, 0)
		case '\n':
			// line continuation: escaped newline contributes nothing
		case '\r':
			if i+1 < len(raw) && raw[i+1] == '\n' {
				i++
			}
		case 'x':
			if i+2 < len(raw) {
				if v, err := strconv.ParseUint(string(raw[i+1:i+3]), 16, 32); err == nil {
					out = append(out, string(rune(v))...)
					i += 2
					break
				}
			}
			out = append(out, e)
		case 'u':
			if i+1 < len(raw) && raw[i+1] == '{' {
				end := i + 2
				for end < len(raw) && raw[end] != '}' {
					end++
				}
				if v, err := strconv.ParseUint(string(raw[i+2:end]), 16, 32); err == nil {
					out = append(out, string(rune(v))...)
					i = end
					break
				}
			} else if i+4 < len(raw) {
				if v, err := strconv.ParseUint(string(raw[i+1:i+5]), 16, 32); err == nil {
					out = append(out, string(rune(v))...)
					i += 4
					break
				}
			}
			out = append(out, e)
		default:
			out = append(out, e)
		}
	}
	return string(out)
}
