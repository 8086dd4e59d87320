package js

import "strconv"

// TokenType determines the kind of a lexical token, e.g. a number, an
// identifier, or a punctuator. The high nibble groups related kinds the
// way the teacher's lexer does (Punctuator/Operator/Identifier ranges),
// which both keeps String() simple and lets IsPunctuator/IsOperator/
// IsIdentifier test a kind with one mask instead of a switch.
type TokenType uint32

// TokenType values for literal and trivia tokens.
const (
	ErrorToken TokenType = iota
	WhitespaceToken
	LineTerminatorToken
	SingleLineCommentToken
	MultiLineCommentToken // comment spanning a line terminator
	NumericToken
	StringToken
	TemplateToken
	RegExpToken
	EOFToken
)

const (
	PunctuatorToken TokenType = 0x1000 + iota
	OpenBraceToken            // {
	CloseBraceToken           // }
	OpenParenToken            // (
	CloseParenToken           // )
	OpenBracketToken          // [
	CloseBracketToken         // ]
	DotToken                  // .
	SemicolonToken            // ;
	CommaToken                // ,
	QuestionToken             // ?
	OptChainToken             // ?.
	ColonToken                // :
	ArrowToken                // =>
	EllipsisToken             // ...
)

const (
	OperatorToken TokenType = 0x2000 + iota
	EqToken                 // =
	EqEqToken               // ==
	EqEqEqToken             // ===
	NotToken                // !
	NotEqToken              // !=
	NotEqEqToken            // !==
	LtToken                 // <
	LtEqToken               // <=
	LtLtToken               // <<
	LtLtEqToken             // <<=
	GtToken                 // >
	GtEqToken               // >=
	GtGtToken               // >>
	GtGtEqToken             // >>=
	GtGtGtToken             // >>>
	GtGtGtEqToken           // >>>=
	AddToken                // +
	AddEqToken              // +=
	IncrToken               // ++
	SubToken                // -
	SubEqToken              // -=
	DecrToken               // --
	MulToken                // *
	MulEqToken              // *=
	ExpToken                // **
	ExpEqToken              // **=
	DivToken                // /
	DivEqToken              // /=
	ModToken                // %
	ModEqToken              // %=
	BitAndToken             // &
	BitOrToken              // |
	BitXorToken             // ^
	BitNotToken             // ~
	BitAndEqToken           // &=
	BitOrEqToken            // |=
	BitXorEqToken           // ^=
	AndToken                // &&
	AndEqToken              // &&=
	OrToken                 // ||
	OrEqToken               // ||=
	NullishToken            // ??
	NullishEqToken          // ??=
)

const (
	IdentifierToken TokenType = 0x4000 + iota
	PrivateIdentifierToken   // #name

	// Keywords: always reserved.
	BreakToken
	CaseToken
	CatchToken
	ClassToken
	ConstToken
	ContinueToken
	DebuggerToken
	DefaultToken
	DeleteToken
	DoToken
	ElseToken
	ExportToken
	ExtendsToken
	FalseToken
	FinallyToken
	ForToken
	FunctionToken
	IfToken
	ImportToken
	InToken
	InstanceofToken
	NewToken
	NullToken
	ReturnToken
	SuperToken
	SwitchToken
	ThisToken
	ThrowToken
	TrueToken
	TryToken
	TypeofToken
	VarToken
	VoidToken
	WhileToken
	WithToken

	// Reserved only in strict mode.
	ImplementsToken
	InterfaceToken
	PackageToken
	PrivateToken
	ProtectedToken
	PublicToken
	YieldToken

	// Contextual keywords: plain identifiers except in specific positions.
	AsToken
	AsyncToken
	AwaitToken
	EnumToken // reserved in all modes, kept adjacent to the other contextuals for table symmetry
	FromToken
	GetToken
	LetToken
	OfToken
	SetToken
	StaticToken
	TargetToken
)

// IsPunctuator reports whether tt is one of the fixed punctuator kinds.
func IsPunctuator(tt TokenType) bool { return tt&0xF000 == 0x1000 }

// IsOperator reports whether tt is a unary/binary/assignment operator kind.
func IsOperator(tt TokenType) bool { return tt&0xF000 == 0x2000 }

// IsIdentifier reports whether tt is an identifier or any keyword kind
// (keywords lex as a distinct TokenType but behave as identifiers in the
// grammar positions the spec names, e.g. property names and labels).
func IsIdentifier(tt TokenType) bool { return tt&0xF000 == 0x4000 }

//go:generate stringer -type=TokenType -linecomment

var tokenNames = map[TokenType]string{
	ErrorToken: "Error", WhitespaceToken: "Whitespace", LineTerminatorToken: "LineTerminator",
	SingleLineCommentToken: "SingleLineComment", MultiLineCommentToken: "MultiLineComment",
	NumericToken: "Numeric", StringToken: "String", TemplateToken: "Template", RegExpToken: "RegExp",
	EOFToken: "EOF",
	OpenBraceToken: "{", CloseBraceToken: "}", OpenParenToken: "(", CloseParenToken: ")",
	OpenBracketToken: "[", CloseBracketToken: "]", DotToken: ".", SemicolonToken: ";", CommaToken: ",",
	QuestionToken: "?", OptChainToken: "?.", ColonToken: ":", ArrowToken: "=>", EllipsisToken: "...",
	EqToken: "=", EqEqToken: "==", EqEqEqToken: "===", NotToken: "!", NotEqToken: "!=", NotEqEqToken: "!==",
	LtToken: "<", LtEqToken: "<=", LtLtToken: "<<", LtLtEqToken: "<<=", GtToken: ">", GtEqToken: ">=",
	GtGtToken: ">>", GtGtEqToken: ">>=", GtGtGtToken: ">>>", GtGtGtEqToken: ">>>=",
	AddToken: "+", AddEqToken: "+=", IncrToken: "++", SubToken: "-", SubEqToken: "-=", DecrToken: "--",
	MulToken: "*", MulEqToken: "*=", ExpToken: "**", ExpEqToken: "**=", DivToken: "/", DivEqToken: "/=",
	ModToken: "%", ModEqToken: "%=", BitAndToken: "&", BitOrToken: "|", BitXorToken: "^", BitNotToken: "~",
	BitAndEqToken: "&=", BitOrEqToken: "|=", BitXorEqToken: "^=", AndToken: "&&", AndEqToken: "&&=",
	OrToken: "||", OrEqToken: "||=", NullishToken: "??", NullishEqToken: "??=",
	IdentifierToken: "Identifier", PrivateIdentifierToken: "PrivateIdentifier",
	BreakToken: "break", CaseToken: "case", CatchToken: "catch", ClassToken: "class", ConstToken: "const",
	ContinueToken: "continue", DebuggerToken: "debugger", DefaultToken: "default", DeleteToken: "delete",
	DoToken: "do", ElseToken: "else", ExportToken: "export", ExtendsToken: "extends", FalseToken: "false",
	FinallyToken: "finally", ForToken: "for", FunctionToken: "function", IfToken: "if", ImportToken: "import",
	InToken: "in", InstanceofToken: "instanceof", NewToken: "new", NullToken: "null", ReturnToken: "return",
	SuperToken: "super", SwitchToken: "switch", ThisToken: "this", ThrowToken: "throw", TrueToken: "true",
	TryToken: "try", TypeofToken: "typeof", VarToken: "var", VoidToken: "void", WhileToken: "while",
	WithToken: "with", ImplementsToken: "implements", InterfaceToken: "interface", PackageToken: "package",
	PrivateToken: "private", ProtectedToken: "protected", PublicToken: "public", YieldToken: "yield",
	AsToken: "as", AsyncToken: "async", AwaitToken: "await", EnumToken: "enum", FromToken: "from",
	GetToken: "get", LetToken: "let", OfToken: "of", SetToken: "set", StaticToken: "static", TargetToken: "target",
}

// String returns the textual representation of tt, used both for
// punctuator/operator spelling and in error messages ("expected ';'").
func (tt TokenType) String() string {
	if s, ok := tokenNames[tt]; ok {
		return s
	}
	return "Invalid(" + strconv.Itoa(int(tt)) + ")"
}

// Flag is a bitset describing properties of a TokenType that the parser
// consults without a type switch, per spec.md §2 component 1 ("Kinds
// carry flag bits: Keyword, ReservedIfStrict, Reserved, UnaryOp,
// BinaryOpPrecedence, ErrorToken").
type Flag uint16

const (
	FlagKeyword Flag = 1 << iota
	FlagReservedIfStrict
	FlagReserved
	FlagUnaryOp
	FlagBinaryOpPrecedence
	FlagErrorToken
	FlagAssignOp
)

// Flags returns the flag bits associated with tt.
func (tt TokenType) Flags() Flag {
	var f Flag
	if tt == ErrorToken {
		f |= FlagErrorToken
	}
	if _, ok := reservedWords[tt]; ok {
		f |= FlagReserved | FlagKeyword
	}
	if _, ok := strictReservedWords[tt]; ok {
		f |= FlagReservedIfStrict | FlagKeyword
	}
	if _, ok := unaryOps[tt]; ok {
		f |= FlagUnaryOp
	}
	if _, ok := binaryPrecedence[tt]; ok {
		f |= FlagBinaryOpPrecedence
	}
	if _, ok := assignOps[tt]; ok {
		f |= FlagAssignOp
	}
	return f
}

// Position is the source-range and line information the spec requires
// every Token to carry: start/end byte offset, the byte offset at which
// the current line began, and the 1-based line number.
type Position struct {
	Start     int
	End       int
	LineStart int
	Line      int
}

// Name is an interned identifier handle; see interner.go. The zero Name
// is never produced by Intern and is used as a "no identifier" sentinel.
type Name uint32

// Payload is the token-kind-dependent data a Token carries: an interned
// identifier, a numeric value, or template/string cooked+raw text. Only
// one field is meaningful for a given TokenType; callers switch on the
// Token's Type before reading a Payload field.
type Payload struct {
	Ident    Name
	Num      float64
	Raw      []byte
	Cooked   []byte
	HasEscape bool
}

// Token is the tagged record the parser reads from the Lexer: kind,
// source location, and payload. The lexer overwrites a single Token
// value on every advance; the parser is responsible for copying out
// anything it needs to keep (spec.md §3 Invariant: "the token in hand
// always equals the result of the most recent lexer advance").
type Token struct {
	Type TokenType
	Pos  Position
	Payload
	Raw []byte
}

// Literal returns the raw source text of the token.
func (t Token) Literal() string { return string(t.Raw) }
