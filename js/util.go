package js

// isLHSExpr reports whether e is syntactically valid on the left side
// of an assignment or as an update-expression operand without further
// parenthesization (spec.md §4.4 "AssignmentExpression", §4.3
// "UpdateExpression"). Grounded on the teacher's js/util.go isLHSExpr,
// extended with the node kinds SPEC_FULL.md's fuller grammar adds.
func isLHSExpr(e Expr) bool {
	switch e.(type) {
	case *SequenceExpr, *ConditionalExpr, *YieldExpr, *AwaitExpr, *ArrowFunctionExpr,
		*BinaryExpr, *UnaryExpr, *AssignmentExpr:
		return false
	}
	return true
}

// isSimpleAssignmentTarget narrows isLHSExpr further to the targets
// ToExpressions is allowed to build directly rather than via the
// Binding-producing ToPattern path (spec.md §4.5): an Identifier or a
// (possibly chained) MemberExpr, optionally parenthesized in source but
// never itself a call or literal.
func isSimpleAssignmentTarget(e Expr) bool {
	switch e.(type) {
	case *Identifier, *MemberExpr:
		return true
	}
	return false
}

// identifierStartTable mirrors identifierTable (lex.go) but excludes
// the ASCII digit range, since no identifier may begin with a decimal
// digit even though digits are valid identifier-continue characters.
// The teacher's js/util.go references an identifierStartTable that the
// retrieval pack never defines (no //go:generate output was captured);
// built here directly from identifierTable by the same construction
// rule ECMA-262's IdentifierStart production uses (see DESIGN.md).
var identifierStartTable = func() [256]bool {
	t := identifierTable
	for c := byte('0'); c <= '9'; c++ {
		t[c] = false
	}
	return t
}()

// AsIdentifierName reports whether b is a valid IdentifierName (spec.md
// §4.6 "Identifier" token validation used outside the lexer, e.g. when
// validating a property key spelled as a keyword).
func AsIdentifierName(b []byte) bool {
	if len(b) == 0 || !identifierStartTable[b[0]] {
		return false
	}
	for i := 1; i < len(b); i++ {
		if !identifierTable[b[i]] {
			return false
		}
	}
	return true
}

// AsDecimalLiteral reports whether b is the exact spelling of a decimal
// literal with no leading zero ambiguity, used to validate a computed
// property key collapsed back to a literal (spec.md §4.6).
func AsDecimalLiteral(b []byte) bool {
	if len(b) == 0 || (b[0] < '0' || '9' < b[0]) && (b[0] != '.' || len(b) == 1) {
		return false
	} else if b[0] == '0' {
		return len(b) == 1
	}
	i := 1
	for i < len(b) && '0' <= b[i] && b[i] <= '9' {
		i++
	}
	if i < len(b) && b[i] == '.' && b[0] != '.' {
		i++
		for i < len(b) && '0' <= b[i] && b[i] <= '9' {
			i++
		}
	}
	return i == len(b)
}
