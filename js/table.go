package js

// OpPrec is an operator precedence level, used by parseBinaryExpr's
// recursive precedence-climbing parser (spec.md §4.4). Kept
// from the teacher's table.go, extended with OpNullish for `??`.
type OpPrec int

// https://developer.mozilla.org/en-US/docs/Web/JavaScript/Reference/Operators/Operator_Precedence
const (
	OpEnd OpPrec = iota
	OpComma
	OpYield
	OpAssign
	OpCond
	OpNullish
	OpOr
	OpAnd
	OpBitOr
	OpBitXor
	OpBitAnd
	OpEquals
	OpCompare
	OpShift
	OpAdd
	OpMul
	OpExp
	OpPrefix
	OpPostfix
	OpNew
	OpCall
	OpGroup
)

// Keywords maps reserved/contextual keyword spellings to their TokenType.
// Kept directly from the teacher's table.go and extended with the ES6
// contextual keywords the spec names (let, of, as, from, static, target,
// async, await, get, set).
var Keywords = map[string]TokenType{
	"break": BreakToken, "case": CaseToken, "catch": CatchToken, "class": ClassToken,
	"const": ConstToken, "continue": ContinueToken, "debugger": DebuggerToken,
	"default": DefaultToken, "delete": DeleteToken, "do": DoToken, "else": ElseToken,
	"export": ExportToken, "extends": ExtendsToken, "false": FalseToken, "finally": FinallyToken,
	"for": ForToken, "function": FunctionToken, "if": IfToken, "import": ImportToken,
	"in": InToken, "instanceof": InstanceofToken, "new": NewToken, "null": NullToken,
	"return": ReturnToken, "super": SuperToken, "switch": SwitchToken, "this": ThisToken,
	"throw": ThrowToken, "true": TrueToken, "try": TryToken, "typeof": TypeofToken,
	"var": VarToken, "void": VoidToken, "while": WhileToken, "with": WithToken,

	"implements": ImplementsToken, "interface": InterfaceToken, "package": PackageToken,
	"private": PrivateToken, "protected": ProtectedToken, "public": PublicToken, "yield": YieldToken,

	"as": AsToken, "async": AsyncToken, "await": AwaitToken, "enum": EnumToken,
	"from": FromToken, "get": GetToken, "let": LetToken, "of": OfToken,
	"set": SetToken, "static": StaticToken, "target": TargetToken,
}

// reservedWords are reserved in every mode.
var reservedWords = map[TokenType]bool{
	BreakToken: true, CaseToken: true, CatchToken: true, ClassToken: true, ConstToken: true,
	ContinueToken: true, DebuggerToken: true, DefaultToken: true, DeleteToken: true, DoToken: true,
	ElseToken: true, EnumToken: true, ExportToken: true, ExtendsToken: true, FalseToken: true,
	FinallyToken: true, ForToken: true, FunctionToken: true, IfToken: true, ImportToken: true,
	InToken: true, InstanceofToken: true, NewToken: true, NullToken: true, ReturnToken: true,
	SuperToken: true, SwitchToken: true, ThisToken: true, ThrowToken: true, TrueToken: true,
	TryToken: true, TypeofToken: true, VarToken: true, VoidToken: true, WhileToken: true, WithToken: true,
}

// strictReservedWords are identifiers in non-strict code but reserved
// (cannot be bound) once a scope is strict.
var strictReservedWords = map[TokenType]bool{
	ImplementsToken: true, InterfaceToken: true, PackageToken: true, PrivateToken: true,
	ProtectedToken: true, PublicToken: true, YieldToken: true, LetToken: true, StaticToken: true,
}

// contextualKeywords are identifier-shaped tokens whose keyword meaning
// depends entirely on syntactic position; the parser must be willing to
// treat them as plain IdentifierToken spellings everywhere else.
var contextualKeywords = map[TokenType]bool{
	AsToken: true, AsyncToken: true, AwaitToken: true, FromToken: true, GetToken: true,
	LetToken: true, OfToken: true, SetToken: true, StaticToken: true, TargetToken: true, YieldToken: true,
}

// unaryOps are the prefix unary operators usable in UnaryExpression.
var unaryOps = map[TokenType]bool{
	AddToken: true, SubToken: true, BitNotToken: true, NotToken: true,
	TypeofToken: true, VoidToken: true, DeleteToken: true, IncrToken: true, DecrToken: true,
}

// binaryPrecedence gives the precedence of every binary operator token.
// InToken is included here but its applicability is gated by the
// parser's allowsIn flag (spec.md §4.4).
var binaryPrecedence = map[TokenType]OpPrec{
	OrToken: OpOr, AndToken: OpAnd, NullishToken: OpNullish,
	BitOrToken: OpBitOr, BitXorToken: OpBitXor, BitAndToken: OpBitAnd,
	EqEqToken: OpEquals, NotEqToken: OpEquals, EqEqEqToken: OpEquals, NotEqEqToken: OpEquals,
	LtToken: OpCompare, GtToken: OpCompare, LtEqToken: OpCompare, GtEqToken: OpCompare,
	InstanceofToken: OpCompare, InToken: OpCompare,
	LtLtToken: OpShift, GtGtToken: OpShift, GtGtGtToken: OpShift,
	AddToken: OpAdd, SubToken: OpAdd,
	MulToken: OpMul, DivToken: OpMul, ModToken: OpMul,
	ExpToken: OpExp,
}

// assignOps are the assignment-expression operators (`=` and the
// compound forms), used to recognize AssignmentExpression's tail.
var assignOps = map[TokenType]bool{
	EqToken: true, AddEqToken: true, SubEqToken: true, MulEqToken: true, DivEqToken: true,
	ModEqToken: true, ExpEqToken: true, LtLtEqToken: true, GtGtEqToken: true, GtGtGtEqToken: true,
	BitAndEqToken: true, BitOrEqToken: true, BitXorEqToken: true, AndEqToken: true, OrEqToken: true,
	NullishEqToken: true,
}

// rightAssociative holds operators whose binary-expression folding is
// right- rather than left-associative. Only `**` is right-associative
// among the non-assignment binary operators (spec.md §4.4).
var rightAssociative = map[TokenType]bool{
	ExpToken: true,
}
