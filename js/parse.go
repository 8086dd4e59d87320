package js

// checkpoint is a SavePoint (spec.md §2 component 1 "SavePoint", §4.1):
// enough lexer and parser state to resume scanning from exactly where
// it was taken, used by every speculative production (arrow-parameter
// probing, label-vs-expression disambiguation, and the one-token
// lookaheads after `let`, `async`, `get`/`set`/`static`).
type checkpoint struct {
	lexerPos     int
	lexerLine    int
	lexerLS      int
	lexerLevel   int
	lexerTmpl    []int
	tok          Token
	prevTerm     bool
	scopeLen     int
	features     Features
	funcDeclsLen int
	varDeclsLen  int
}

// Parser is the recursive-descent ECMAScript parser (spec.md §2
// component 6). It holds exactly one lookahead token, a scope stack,
// and the ambient flags that gate context-sensitive productions
// (allowIn, function/loop/switch nesting, generator/async context).
//
// Grounded on the teacher's js/parse.go Parser (lexer + current
// token + prevLineTerminator + asyncLevel/inFor flags), generalized
// with the scope stack, builder indirection, and speculative-parse
// support SPEC_FULL.md's fuller grammar requires.
type Parser struct {
	l   *Lexer
	in  *Interner
	wk  *WellKnown
	b   Builder
	src []byte

	tok      Token
	prevEnd  int
	prevTerm bool

	scopes ScopeStack

	allowIn        bool
	inFunction     bool
	inLoop         int
	inSwitch       int
	inGenerator    bool
	inAsync        bool
	inClassField   bool
	inDerivedCtor  bool
	strict         bool

	labels []Name

	cache sourceCache
	opts  Options

	err error

	funcDecls []*FunctionInfo
	varDecls  []Name
	features  Features
}

func newParser(source []byte, in *Interner, wk *WellKnown, cache sourceCache, opts Options) *Parser {
	l := NewLexer(source, in)
	p := &Parser{
		l:      l,
		in:     in,
		wk:     wk,
		b:      opts.Builder,
		src:    source,
		cache:  cache,
		opts:   opts,
		strict: opts.StrictMode,
	}
	return p
}

////////////////////////////////////////////////////////////////
// token stream plumbing

func (p *Parser) advance() {
	if p.err != nil {
		// once an error is recorded, every production winds down at EOF
		// instead of re-reading the token that failed.
		p.tok = Token{Type: EOFToken, Pos: p.tok.Pos}
		return
	}
	p.prevEnd = p.tok.Pos.End
	p.prevTerm = false
	for {
		t := p.l.Next()
		if t.Type == WhitespaceToken || t.Type == SingleLineCommentToken {
			continue
		}
		if t.Type == LineTerminatorToken || t.Type == MultiLineCommentToken {
			p.prevTerm = true
			continue
		}
		p.tok = t
		break
	}
}

// at reports whether the current token has type tt.
func (p *Parser) at(tt TokenType) bool { return p.tok.Type == tt }

// atContextual reports whether the current token is an identifier-shaped
// token (plain identifier or a contextual keyword) spelled exactly name.
func (p *Parser) atContextual(name Name) bool {
	return (p.tok.Type == IdentifierToken || contextualKeywords[p.tok.Type]) && p.tok.Payload.Ident == name
}

func (p *Parser) eat(tt TokenType) bool {
	if p.at(tt) {
		p.advance()
		return true
	}
	return false
}

func (p *Parser) expect(tt TokenType) bool {
	if p.eat(tt) {
		return true
	}
	p.fail("expected %s, found %s", tt, p.tok.Type)
	return false
}

// fail records the parser's first error (spec.md §3 Invariant: "the
// first error encountered wins; the parser never overwrites an
// existing error"), mirroring the teacher's Parser.fail.
func (p *Parser) fail(format string, args ...interface{}) {
	if p.err != nil {
		return
	}
	pos := p.tok.Pos
	p.err = NewParseError(SyntaxError, p.src, pos, format, args...)
}

func (p *Parser) failAt(pos Position, format string, args ...interface{}) {
	if p.err != nil {
		return
	}
	p.err = NewParseError(SyntaxError, p.src, pos, format, args...)
}

func (p *Parser) failSemantic(pos Position, format string, args ...interface{}) {
	if p.err != nil {
		return
	}
	p.err = NewParseError(SemanticError, p.src, pos, format, args...)
}

func (p *Parser) ok() bool { return p.err == nil }

////////////////////////////////////////////////////////////////
// checkpoints

func (p *Parser) save() checkpoint {
	return checkpoint{
		lexerPos:     p.l.r.Pos(),
		lexerLine:    p.l.line,
		lexerLS:      p.l.lineStart,
		lexerLevel:   p.l.level,
		lexerTmpl:    append([]int(nil), p.l.templateLevels...),
		tok:          p.tok,
		prevTerm:     p.prevTerm,
		scopeLen:     p.scopes.Len(),
		features:     p.features,
		funcDeclsLen: len(p.funcDecls),
		varDeclsLen:  len(p.varDecls),
	}
}

// restore rewinds the parser to a checkpoint, undoing every bit of state
// a speculative production may have written while probing a shape that
// turned out not to match (spec.md §4.1/§9: a rewound speculative parse
// must not be observable afterwards). This includes p.features, since
// e.g. a discarded destructuring-pattern probe must not leave
// DestructuringFeature set on the final Result.
func (p *Parser) restore(c checkpoint) {
	p.l.r.MoveTo(c.lexerPos)
	p.l.line = c.lexerLine
	p.l.lineStart = c.lexerLS
	p.l.level = c.lexerLevel
	p.l.templateLevels = append(p.l.templateLevels[:0], c.lexerTmpl...)
	p.tok = c.tok
	p.prevTerm = c.prevTerm
	p.err = nil
	p.features = c.features
	p.funcDecls = p.funcDecls[:c.funcDeclsLen]
	p.varDecls = p.varDecls[:c.varDeclsLen]
	for p.scopes.Len() > c.scopeLen {
		p.scopes.Pop()
	}
}

////////////////////////////////////////////////////////////////
// automatic semicolon insertion

// consumeSemicolon implements automatic semicolon insertion (spec.md
// §4.1): a semicolon is present, implied before `}` or EOF, or implied
// when a line terminator separates the statement from the next token.
func (p *Parser) consumeSemicolon() {
	if p.eat(SemicolonToken) {
		return
	}
	if p.at(CloseBraceToken) || p.at(EOFToken) || p.prevTerm {
		return
	}
	p.fail("expected ';'")
}

////////////////////////////////////////////////////////////////
// entry point

func (p *Parser) parseEntry() (Result, error) {
	p.scopes.Push(p.entryScopeKind())
	top := p.scopes.Top()
	top.Strict = p.strict
	top.IsGenerator = p.opts.Mode == GeneratorBodyMode || p.opts.Mode == GeneratorWrapperFunctionMode
	top.IsAsync = p.inAsync
	top.ConstructorKind = p.opts.DefaultConstructorKind
	p.inGenerator = top.IsGenerator

	p.advance()

	module := p.opts.Mode == ModuleAnalyzeMode || p.opts.Mode == ModuleEvaluateMode
	body := p.parseStatementList(true, module)

	if p.err == nil && !p.at(EOFToken) {
		p.fail("unexpected token %s", p.tok.Type)
	}
	if module && p.err == nil {
		for name := range top.ExportedBindings {
			if !top.IsDeclared(name) {
				p.failSemantic(p.tok.Pos, "exported binding '%s' is not declared", p.in.String(name))
				break
			}
		}
	}

	p.scopes.Pop()

	if p.err != nil {
		return Result{}, p.err
	}

	prog := p.b.Program(body, module)
	return Result{
		Program:              prog,
		FunctionDeclarations: p.funcDecls,
		VarDeclarations:      p.varDecls,
		Features:             p.features,
		NumConstants:         len(p.funcDecls),
	}, nil
}

func (p *Parser) entryScopeKind() ScopeKind {
	if p.opts.Mode == ModuleAnalyzeMode || p.opts.Mode == ModuleEvaluateMode {
		return ModuleScope
	}
	return FunctionScope
}

////////////////////////////////////////////////////////////////
// directive prologue / strict-mode retroaction (spec.md §9)

// parseStatementList parses a StatementList, consuming any directive
// prologue first. Before any statement is parsed, scanDirectivePrologue
// peeks at the directive prologue's string-literal tokens (directives are
// always the unbroken run of bare string-literal ExpressionStatements at
// the front of a body); a "use strict" among them sets strict mode for
// the whole body, so no rewind or second pass is ever needed. There is
// no separate SyntaxOnly dry pass.
func (p *Parser) parseStatementList(topLevel, isModule bool) []Stmt {
	directives := p.scanDirectivePrologue()
	wasStrict := p.strict
	for _, d := range directives {
		if d == "use strict" {
			p.strict = true
			p.scopes.Top().Strict = true
			p.features |= StrictModeFeature
		}
	}
	if isModule {
		p.strict = true
		p.scopes.Top().Strict = true
	}
	_ = wasStrict

	list := p.b.NewStmtList()
	for p.ok() && !p.at(EOFToken) && !p.at(CloseBraceToken) {
		if isModule && p.at(ImportToken) {
			list = p.b.AppendStmt(list, p.parseImportDecl())
			continue
		}
		if isModule && p.at(ExportToken) {
			list = p.b.AppendStmt(list, p.parseExportDecl())
			continue
		}
		s := p.parseStatement(true)
		list = p.b.AppendStmt(list, s)
		if !p.ok() {
			break
		}
	}
	return list
}

// scanDirectivePrologue peeks at the leading run of plain string-literal
// expression statements (each `"..."` or `'...'` followed by `;`, a line
// terminator, `}`, or EOF) without disturbing the parser's main token
// stream, by running over a cloned lexer positioned at the same offset.
func (p *Parser) scanDirectivePrologue() []string {
	var out []string
	clone := *p.l
	// the clone shares p.l's Buffer, so put its read position back after
	// the peek.
	defer p.l.r.MoveTo(p.l.r.Pos())
	tok := p.tok
	prevTerm := p.prevTerm
	for tok.Type == StringToken {
		raw := tok.Raw
		isPlain := len(raw) >= 2 && (raw[0] == '"' || raw[0] == '\'')
		next := nextSkippingTrivia(&clone)
		semiOK := next.tok.Type == SemicolonToken || next.tok.Type == CloseBraceToken ||
			next.tok.Type == EOFToken || next.prevTerm
		if !isPlain || !semiOK {
			break
		}
		out = append(out, string(tok.Payload.Cooked))
		tok = next.tok
		prevTerm = next.prevTerm
		if tok.Type == SemicolonToken {
			next2 := nextSkippingTrivia(&clone)
			tok = next2.tok
			prevTerm = next2.prevTerm
		}
	}
	_ = prevTerm
	return out
}

type lookahead struct {
	tok      Token
	prevTerm bool
}

func nextSkippingTrivia(l *Lexer) lookahead {
	term := false
	for {
		t := l.Next()
		if t.Type == WhitespaceToken || t.Type == SingleLineCommentToken {
			continue
		}
		if t.Type == LineTerminatorToken || t.Type == MultiLineCommentToken {
			term = true
			continue
		}
		return lookahead{tok: t, prevTerm: term}
	}
}

////////////////////////////////////////////////////////////////
// statements

func (p *Parser) parseStatement(topLevel bool) Stmt {
	pos := p.tok.Pos
	switch p.tok.Type {
	case OpenBraceToken:
		return p.parseBlock()
	case VarToken:
		s := p.parseVarStatement(VarToken)
		return s
	case LetToken:
		if p.startsLexicalDeclaration() {
			return p.parseVarStatement(LetToken)
		}
	case ConstToken:
		return p.parseVarStatement(ConstToken)
	case IfToken:
		return p.parseIf()
	case ForToken:
		return p.parseFor()
	case WhileToken:
		return p.parseWhile()
	case DoToken:
		return p.parseDoWhile()
	case FunctionToken:
		return p.parseFunctionDeclaration(false)
	case AsyncToken:
		if p.startsAsyncFunctionDeclaration() {
			p.advance()
			return p.parseFunctionDeclaration(true)
		}
	case ClassToken:
		return p.parseClassDeclaration()
	case ReturnToken:
		return p.parseReturn()
	case ThrowToken:
		return p.parseThrow()
	case TryToken:
		return p.parseTry()
	case SwitchToken:
		return p.parseSwitch()
	case WithToken:
		return p.parseWith()
	case BreakToken:
		return p.parseBreakOrContinue(true)
	case ContinueToken:
		return p.parseBreakOrContinue(false)
	case DebuggerToken:
		p.advance()
		p.consumeSemicolon()
		return p.b.DebuggerStmt(pos)
	case SemicolonToken:
		p.advance()
		return p.b.EmptyStmt(pos)
	}
	if p.tok.Type == IdentifierToken || contextualKeywords[p.tok.Type] {
		if lbl, ok := p.tryParseLabelledStatement(); ok {
			return lbl
		}
	}
	return p.parseExpressionStatement()
}

func (p *Parser) startsLexicalDeclaration() bool {
	c := p.save()
	p.advance()
	ok := p.at(IdentifierToken) || p.at(OpenBraceToken) || p.at(OpenBracketToken) ||
		contextualKeywords[p.tok.Type]
	p.restore(c)
	return ok
}

func (p *Parser) startsAsyncFunctionDeclaration() bool {
	c := p.save()
	p.advance()
	ok := p.at(FunctionToken) && !p.prevTerm
	p.restore(c)
	return ok
}

func (p *Parser) tryParseLabelledStatement() (Stmt, bool) {
	c := p.save()
	name := p.tok.Payload.Ident
	text := p.tok.Literal()
	pos := p.tok.Pos
	p.advance()
	if !p.eat(ColonToken) {
		p.restore(c)
		return nil, false
	}
	if _, exists := p.scopes.Top().HasLabel(name); exists {
		p.failSemantic(pos, "label '%s' has already been declared", text)
	}
	isLoop := p.at(ForToken) || p.at(WhileToken) || p.at(DoToken)
	p.scopes.Top().PushLabel(name, isLoop)
	body := p.parseStatement(false)
	p.scopes.Top().PopLabel()
	return p.b.LabelledStmt(name, text, body, pos), true
}

func (p *Parser) parseBlock() Stmt {
	pos := p.tok.Pos
	p.advance()
	p.scopes.Push(BlockScope)
	list := p.b.NewStmtList()
	for p.ok() && !p.at(CloseBraceToken) && !p.at(EOFToken) {
		list = p.b.AppendStmt(list, p.parseStatement(false))
	}
	p.expect(CloseBraceToken)
	p.scopes.Pop()
	return p.b.BlockStmt(list, pos)
}

func (p *Parser) parseExpressionStatement() Stmt {
	pos := p.tok.Pos
	if p.at(OpenBraceToken) || p.at(FunctionToken) || p.at(ClassToken) {
		p.fail("unexpected token %s at start of expression statement", p.tok.Type)
	}
	expr := p.parseExpression(true)
	p.consumeSemicolon()
	return p.b.ExprStmt(expr, pos)
}

func (p *Parser) parseIf() Stmt {
	pos := p.tok.Pos
	p.advance()
	p.expect(OpenParenToken)
	cond := p.parseExpression(true)
	p.expect(CloseParenToken)
	cons := p.parseStatement(false)
	var alt Stmt
	if p.eat(ElseToken) {
		alt = p.parseStatement(false)
	}
	return p.b.IfStmt(cond, cons, alt, pos)
}

func (p *Parser) parseWhile() Stmt {
	pos := p.tok.Pos
	p.advance()
	p.expect(OpenParenToken)
	cond := p.parseExpression(true)
	p.expect(CloseParenToken)
	p.inLoop++
	body := p.parseStatement(false)
	p.inLoop--
	return p.b.WhileStmt(cond, body, pos)
}

func (p *Parser) parseDoWhile() Stmt {
	pos := p.tok.Pos
	p.advance()
	p.inLoop++
	body := p.parseStatement(false)
	p.inLoop--
	p.expect(WhileToken)
	p.expect(OpenParenToken)
	cond := p.parseExpression(true)
	p.expect(CloseParenToken)
	p.eat(SemicolonToken)
	return p.b.DoWhileStmt(body, cond, pos)
}

// parseFor handles the three for-statement shapes, disambiguated by
// speculatively parsing the init clause then checking for `in`/`of`
// (spec.md §4.9 "ForStatement"/"ForInStatement"/"ForOfStatement").
func (p *Parser) parseFor() Stmt {
	pos := p.tok.Pos
	p.advance()
	await := false
	if p.at(AwaitToken) {
		await = true
		p.advance()
	}
	p.expect(OpenParenToken)

	p.scopes.Push(BlockScope)

	var init interface{}
	if p.at(SemicolonToken) {
		// no init
	} else if p.at(VarToken) || p.at(ConstToken) || (p.at(LetToken) && p.startsLexicalDeclaration()) {
		kind := p.tok.Type
		pos2 := p.tok.Pos
		p.advance()
		target := p.parseBindingTarget()
		if p.at(InToken) || p.atContextual(p.wk.Of) {
			p.declareBindingTarget(target, kind)
			isOf := p.atContextual(p.wk.Of)
			p.advance()
			var right Expr
			if isOf {
				right = p.parseAssignExpr(true)
			} else {
				right = p.parseExpression(true)
			}
			p.expect(CloseParenToken)
			p.inLoop++
			body := p.parseStatement(false)
			p.inLoop--
			p.scopes.Pop()
			decl := p.b.VarDeclStmt(kind, []Declarator{{Target: target}}, pos2)
			if isOf {
				return p.b.ForOfStmt(await, decl, right, body, pos)
			}
			return p.b.ForInStmt(decl, right, body, pos)
		}
		var initExpr Expr
		if p.eat(EqToken) {
			initExpr = p.parseAssignExpr(false)
		}
		p.declareBindingTarget(target, kind)
		decls := []Declarator{{Target: target, Init: initExpr}}
		for p.eat(CommaToken) {
			t2 := p.parseBindingTarget()
			var i2 Expr
			if p.eat(EqToken) {
				i2 = p.parseAssignExpr(false)
			}
			p.declareBindingTarget(t2, kind)
			decls = append(decls, Declarator{Target: t2, Init: i2})
		}
		init = p.b.VarDeclStmt(kind, decls, pos2)
	} else {
		e := p.parseExpression(false)
		if p.at(InToken) || p.atContextual(p.wk.Of) {
			isOf := p.atContextual(p.wk.Of)
			p.advance()
			var right Expr
			if isOf {
				right = p.parseAssignExpr(true)
			} else {
				right = p.parseExpression(true)
			}
			p.expect(CloseParenToken)
			p.inLoop++
			body := p.parseStatement(false)
			p.inLoop--
			p.scopes.Pop()
			if isOf {
				return p.b.ForOfStmt(await, e, right, body, pos)
			}
			return p.b.ForInStmt(e, right, body, pos)
		}
		init = e
	}

	p.expect(SemicolonToken)
	var cond Expr
	if !p.at(SemicolonToken) {
		cond = p.parseExpression(true)
	}
	p.expect(SemicolonToken)
	var post Expr
	if !p.at(CloseParenToken) {
		post = p.parseExpression(true)
	}
	p.expect(CloseParenToken)
	p.inLoop++
	body := p.parseStatement(false)
	p.inLoop--
	p.scopes.Pop()
	return p.b.ForStmt(init, cond, post, body, pos)
}

func (p *Parser) parseVarStatement(kind TokenType) Stmt {
	pos := p.tok.Pos
	p.advance()
	decls := p.parseVarDeclaratorList(kind)
	p.consumeSemicolon()
	return p.b.VarDeclStmt(kind, decls, pos)
}

func (p *Parser) parseVarDeclaratorList(kind TokenType) []Declarator {
	var decls []Declarator
	for {
		target := p.parseBindingTarget()
		var init Expr
		if p.eat(EqToken) {
			init = p.parseAssignExpr(true)
		} else if kind == ConstToken {
			p.failAt(p.tok.Pos, "missing initializer in const declaration")
		}
		p.declareBindingTarget(target, kind)
		decls = append(decls, Declarator{Target: target, Init: init})
		if !p.eat(CommaToken) {
			break
		}
	}
	return decls
}

func (p *Parser) declareBindingTarget(target Binding, kind TokenType) {
	scope := p.scopes.Top()
	forEachBoundName(target, func(name Name) {
		reserved := p.isStrictRestrictedName(name)
		var res DeclareResult
		switch kind {
		case VarToken:
			fn := scope.nearestFunction()
			for s := scope; s != fn; s = s.parent {
				if s.Kind != CatchScope && s.declaredLexical[name] {
					res |= DeclareInvalidDuplicate
				}
			}
			res |= fn.DeclareVar(name, reserved)
			p.varDecls = append(p.varDecls, name)
		case ConstToken:
			res = scope.DeclareLexical(name, true, reserved)
		default:
			res = scope.DeclareLexical(name, false, reserved)
		}
		p.reportDeclareResult(res, p.tok.Pos, name)
	})
}

func forEachBoundName(b Binding, f func(Name)) {
	switch t := b.(type) {
	case *BindingIdentifier:
		f(t.Name)
	case *ArrayPattern:
		for _, el := range t.Elements {
			if el.Target != nil {
				forEachBoundName(el.Target, f)
			}
		}
		if t.Rest != nil {
			forEachBoundName(t.Rest, f)
		}
	case *ObjectPattern:
		for _, pr := range t.Properties {
			forEachBoundName(pr.Value, f)
		}
		if t.Rest != nil {
			forEachBoundName(t.Rest, f)
		}
	}
}

func (p *Parser) parseReturn() Stmt {
	pos := p.tok.Pos
	if !p.inFunction {
		p.failAt(pos, "'return' outside of function")
	}
	p.advance()
	var val Expr
	if !p.at(SemicolonToken) && !p.at(CloseBraceToken) && !p.at(EOFToken) && !p.prevTerm {
		val = p.parseExpression(true)
	}
	p.consumeSemicolon()
	return p.b.ReturnStmt(val, pos)
}

func (p *Parser) parseThrow() Stmt {
	pos := p.tok.Pos
	p.advance()
	if p.prevTerm {
		p.failAt(pos, "illegal newline after 'throw'")
	}
	val := p.parseExpression(true)
	p.consumeSemicolon()
	return p.b.ThrowStmt(val, pos)
}

func (p *Parser) parseTry() Stmt {
	pos := p.tok.Pos
	p.advance()
	block := p.parseBlock()
	var catchParam Binding
	var catchBody Stmt
	hasCatch := false
	if p.eat(CatchToken) {
		hasCatch = true
		p.scopes.Push(CatchScope)
		if p.eat(OpenParenToken) {
			catchParam = p.parseBindingTarget()
			forEachBoundName(catchParam, func(n Name) {
				res := p.scopes.Top().DeclareLexical(n, false, p.isStrictRestrictedName(n))
				p.reportDeclareResult(res, pos, n)
			})
			p.expect(CloseParenToken)
		}
		catchBody = p.parseBlock()
		p.scopes.Pop()
	}
	var finallyBody Stmt
	hasFinally := false
	if p.eat(FinallyToken) {
		hasFinally = true
		finallyBody = p.parseBlock()
	}
	if !hasCatch && !hasFinally {
		p.fail("missing catch or finally after try")
	}
	return p.b.TryStmt(block, catchParam, hasCatch, catchBody, finallyBody, hasFinally, pos)
}

func (p *Parser) parseSwitch() Stmt {
	pos := p.tok.Pos
	p.advance()
	p.expect(OpenParenToken)
	disc := p.parseExpression(true)
	p.expect(CloseParenToken)
	p.expect(OpenBraceToken)
	p.scopes.Push(SwitchScope)
	p.inSwitch++
	var clauses []CaseClause
	seenDefault := false
	for p.ok() && !p.at(CloseBraceToken) && !p.at(EOFToken) {
		var test Expr
		if p.eat(CaseToken) {
			test = p.parseExpression(true)
		} else if p.eat(DefaultToken) {
			if seenDefault {
				p.fail("more than one default clause in switch statement")
			}
			seenDefault = true
		} else {
			p.fail("expected 'case' or 'default'")
			break
		}
		p.expect(ColonToken)
		var body []Stmt
		for p.ok() && !p.at(CaseToken) && !p.at(DefaultToken) && !p.at(CloseBraceToken) && !p.at(EOFToken) {
			body = append(body, p.parseStatement(false))
		}
		clauses = append(clauses, CaseClause{Test: test, Body: body})
	}
	p.expect(CloseBraceToken)
	p.inSwitch--
	p.scopes.Pop()
	return p.b.SwitchStmt(disc, clauses, pos)
}

func (p *Parser) parseWith() Stmt {
	pos := p.tok.Pos
	if p.strict {
		p.failAt(pos, "'with' statements are not allowed in strict mode")
	}
	p.advance()
	p.expect(OpenParenToken)
	obj := p.parseExpression(true)
	p.expect(CloseParenToken)
	p.scopes.Push(WithScope)
	body := p.parseStatement(false)
	p.scopes.Pop()
	return p.b.WithStmt(obj, body, pos)
}

func (p *Parser) parseBreakOrContinue(isBreak bool) Stmt {
	pos := p.tok.Pos
	p.advance()
	var label Name
	if (p.at(IdentifierToken) || contextualKeywords[p.tok.Type]) && !p.prevTerm {
		label = p.tok.Payload.Ident
		var lbl Label
		ok := false
		for s := p.scopes.Top(); s != nil && !ok; s = s.parent {
			lbl, ok = s.HasLabel(label)
			if s.Kind == FunctionScope || s.Kind == ModuleScope {
				break
			}
		}
		if !ok {
			p.failSemantic(pos, "undefined label")
		} else if isBreak == false && !lbl.IsLoop {
			p.failSemantic(pos, "continue label not a loop")
		}
		p.advance()
	} else if isBreak && p.inLoop == 0 && p.inSwitch == 0 {
		p.failAt(pos, "'break' outside of a loop or switch")
	} else if !isBreak && p.inLoop == 0 {
		p.failAt(pos, "'continue' outside of a loop")
	}
	p.consumeSemicolon()
	if isBreak {
		return p.b.BreakStmt(label, pos)
	}
	return p.b.ContinueStmt(label, pos)
}

////////////////////////////////////////////////////////////////
// expressions: precedence climbing (spec.md §4.4)

// parseExpression parses an Expression, which may be a comma-separated
// SequenceExpr. allowIn controls whether the `in` operator is
// recognized at binary precedence (false inside a for-statement head).
func (p *Parser) parseExpression(allowIn bool) Expr {
	first := p.parseAssignExpr(allowIn)
	if !p.at(CommaToken) {
		return first
	}
	exprs := []Expr{first}
	startPos := p.tok.Pos
	for p.eat(CommaToken) {
		exprs = append(exprs, p.parseAssignExpr(allowIn))
	}
	return p.b.SequenceExpr(exprs, startPos)
}

// parseAssignExpr parses an AssignmentExpression: a ConditionalExpression
// (itself built from the binary precedence-climb) that may be followed
// by an assignment operator and another AssignmentExpression, or that
// may turn out to have been an arrow-function parameter list, a yield
// expression, or (async) arrow head.
func (p *Parser) parseAssignExpr(allowIn bool) Expr {
	if p.inGenerator && p.at(YieldToken) {
		return p.parseYieldExpr()
	}
	if arrow, ok := p.tryParseArrowFunction(); ok {
		return arrow
	}
	left := p.parseConditionalExpr(allowIn)
	if assignOps[p.tok.Type] {
		op := p.tok.Type
		pos := p.tok.Pos
		if !isLHSExpr(left) {
			p.failAt(pos, "invalid assignment target")
		}
		if op == EqToken {
			if !isSimpleAssignmentTarget(left) {
				left = p.exprToPattern(left)
			}
		} else if p.strict && isIdentifierNamed(left, p.wk.Eval, p.wk.Arguments) {
			p.failSemantic(pos, "cannot assign to 'eval' or 'arguments' in strict mode")
		}
		p.advance()
		right := p.parseAssignExpr(allowIn)
		return p.b.AssignmentExpr(op, left, right, pos)
	}
	return left
}

func isIdentifierNamed(e Expr, names ...Name) bool {
	id, ok := e.(*Identifier)
	if !ok {
		return false
	}
	for _, n := range names {
		if id.Name == n {
			return true
		}
	}
	return false
}

func (p *Parser) parseYieldExpr() Expr {
	pos := p.tok.Pos
	p.advance()
	delegate := p.eat(MulToken)
	var arg Expr
	if !p.prevTerm && !p.at(SemicolonToken) && !p.at(CloseParenToken) && !p.at(CloseBracketToken) &&
		!p.at(CloseBraceToken) && !p.at(CommaToken) && !p.at(ColonToken) && !p.at(EOFToken) {
		arg = p.parseAssignExpr(true)
	}
	p.features |= GeneratorFeature
	return p.b.YieldExpr(arg, delegate, pos)
}

func (p *Parser) parseConditionalExpr(allowIn bool) Expr {
	test := p.parseBinaryExpr(allowIn, OpNullish)
	if !p.at(QuestionToken) {
		return test
	}
	pos := p.tok.Pos
	p.advance()
	cons := p.parseAssignExpr(true)
	p.expect(ColonToken)
	alt := p.parseAssignExpr(allowIn)
	return p.b.ConditionalExpr(test, cons, alt, pos)
}

// parseBinaryExpr climbs operator precedence starting at minPrec,
// folding left-to-right except for the single right-associative
// operator `**` (spec.md §4.4's two-stack algorithm, expressed here as
// the equivalent recursive formulation since Go recursion depth is
// plentiful for source-sized expressions).
func (p *Parser) parseBinaryExpr(allowIn bool, minPrec OpPrec) Expr {
	left := p.parseUnaryExpr()
	for {
		tt := p.tok.Type
		if tt == InToken && !allowIn {
			break
		}
		prec, ok := binaryPrecedence[tt]
		if !ok || prec < minPrec {
			break
		}
		pos := p.tok.Pos
		p.advance()
		nextMin := prec + 1
		if rightAssociative[tt] {
			nextMin = prec
		}
		right := p.parseBinaryExpr(allowIn, nextMin)
		if tt == NullishToken {
			p.features |= NullishCoalescingFeature
		}
		if tt == ExpToken {
			p.features |= ExponentiationFeature
		}
		left = p.b.BinaryExpr(tt, left, right, pos)
	}
	return left
}

func (p *Parser) parseUnaryExpr() Expr {
	if unaryOps[p.tok.Type] {
		op := p.tok.Type
		pos := p.tok.Pos
		p.advance()
		operand := p.parseUnaryExpr()
		if op == DeleteToken && p.strict {
			if id, ok := operand.(*Identifier); ok {
				_ = id
				p.failSemantic(pos, "'delete' of an unqualified identifier is not allowed in strict mode")
			}
		}
		return p.b.UnaryExpr(op, operand, true, pos)
	}
	if p.at(AwaitToken) && p.inAsync {
		pos := p.tok.Pos
		p.advance()
		arg := p.parseUnaryExpr()
		p.features |= AsyncFeature
		return p.b.AwaitExpr(arg, pos)
	}
	return p.parsePostfixExpr()
}

func (p *Parser) parsePostfixExpr() Expr {
	expr := p.parseLeftHandSideExpr()
	if (p.at(IncrToken) || p.at(DecrToken)) && !p.prevTerm {
		op := p.tok.Type
		pos := p.tok.Pos
		if !isLHSExpr(expr) {
			p.failAt(pos, "invalid update expression operand")
		}
		p.advance()
		return p.b.UnaryExpr(op, expr, false, pos)
	}
	return expr
}

// parseLeftHandSideExpr parses NewExpression/CallExpression/
// MemberExpression including optional chaining and tagged templates
// (spec.md §4.4 "LeftHandSideExpression").
func (p *Parser) parseLeftHandSideExpr() Expr {
	var expr Expr
	if p.at(NewToken) {
		expr = p.parseNewExpr()
	} else {
		expr = p.parsePrimaryExpr()
	}
	return p.parseCallTail(expr, true)
}

func (p *Parser) parseNewExpr() Expr {
	pos := p.tok.Pos
	p.advance()
	if p.at(DotToken) {
		p.advance()
		if !p.atContextual(p.wk.Target) {
			p.fail("expected 'target' after 'new.'")
		}
		p.advance()
		if !p.inFunction {
			p.failSemantic(pos, "'new.target' is only valid inside a function")
		}
		return p.parseCallTail(p.b.NewTargetExpr(pos), true)
	}
	var callee Expr
	if p.at(NewToken) {
		callee = p.parseNewExpr()
	} else {
		callee = p.parsePrimaryExpr()
	}
	callee = p.parseCallTail(callee, false)
	var args []Expr
	if p.at(OpenParenToken) {
		args = p.parseArguments()
	}
	return p.parseCallTail(p.b.NewExpr(callee, args, pos), true)
}

func (p *Parser) nearestNonArrowFunction() *Scope {
	return p.scopes.Top().nearestFunction()
}

// parseCallTail consumes the chain of member accesses, calls, optional
// chaining links, and tagged templates following expr. allowCall is
// false while still inside a bare NewExpression's callee, where a `(`
// must bind to `new` rather than be consumed here.
func (p *Parser) parseCallTail(expr Expr, allowCall bool) Expr {
	for {
		pos := p.tok.Pos
		switch {
		case p.at(DotToken):
			p.advance()
			if !p.at(IdentifierToken) && !contextualKeywords[p.tok.Type] && !reservedWords[p.tok.Type] && !strictReservedWords[p.tok.Type] {
				p.fail("expected property name after '.'")
				return expr
			}
			prop := p.b.Identifier(p.tok.Payload.Ident, p.tok.Literal(), p.tok.Pos)
			p.advance()
			expr = p.b.MemberExpr(expr, prop, false, false, pos)
		case p.at(OptChainToken):
			p.advance()
			p.features |= OptionalChainingFeature
			if p.at(OpenParenToken) && allowCall {
				args := p.parseArguments()
				expr = p.b.CallExpr(expr, args, true, pos)
			} else if p.at(OpenBracketToken) {
				p.advance()
				prop := p.parseExpression(true)
				p.expect(CloseBracketToken)
				expr = p.b.MemberExpr(expr, prop, true, true, pos)
			} else {
				prop := p.b.Identifier(p.tok.Payload.Ident, p.tok.Literal(), p.tok.Pos)
				p.advance()
				expr = p.b.MemberExpr(expr, prop, false, true, pos)
			}
		case p.at(OpenBracketToken):
			p.advance()
			prop := p.parseExpression(true)
			p.expect(CloseBracketToken)
			expr = p.b.MemberExpr(expr, prop, true, false, pos)
		case p.at(OpenParenToken) && allowCall:
			args := p.parseArguments()
			expr = p.b.CallExpr(expr, args, false, pos)
		case p.at(TemplateToken) && p.tok.Literal()[0] == '`':
			quasi := p.parseTemplateLiteral()
			expr = p.b.TaggedTemplateExpr(expr, quasi, pos)
		default:
			return expr
		}
	}
}

func (p *Parser) parseArguments() []Expr {
	p.expect(OpenParenToken)
	var args []Expr
	for !p.at(CloseParenToken) && !p.at(EOFToken) {
		if p.at(EllipsisToken) {
			pos := p.tok.Pos
			p.advance()
			p.features |= SpreadFeature
			args = append(args, p.b.SpreadExpr(p.parseAssignExpr(true), pos))
		} else {
			args = append(args, p.parseAssignExpr(true))
		}
		if !p.eat(CommaToken) {
			break
		}
	}
	p.expect(CloseParenToken)
	return args
}

////////////////////////////////////////////////////////////////
// primary expressions

func (p *Parser) parsePrimaryExpr() Expr {
	pos := p.tok.Pos
	switch p.tok.Type {
	case ThisToken:
		p.advance()
		return p.b.ThisExpr(pos)
	case SuperToken:
		p.advance()
		if p.opts.SuperBinding != SuperAllowed && p.nearestSuperAllowingScope() == nil {
			p.failSemantic(pos, "'super' keyword is only valid inside a class")
		}
		return p.b.SuperExpr(pos)
	case NullToken:
		p.advance()
		return p.b.NullLiteral(pos)
	case TrueToken:
		p.advance()
		return p.b.BooleanLiteral(true, pos)
	case FalseToken:
		p.advance()
		return p.b.BooleanLiteral(false, pos)
	case NumericToken:
		raw := p.tok.Literal()
		num := p.tok.Payload.Num
		if p.strict && len(raw) > 1 && raw[0] == '0' && raw[1] >= '0' && raw[1] <= '9' {
			p.failAt(pos, "octal literals are not allowed in strict mode")
		}
		p.advance()
		return p.b.NumberLiteral(num, raw, pos)
	case StringToken:
		raw := p.tok.Literal()
		cooked := string(p.tok.Payload.Cooked)
		p.advance()
		return p.b.StringLiteral(cooked, raw, pos)
	case TemplateToken:
		return p.parseTemplateLiteral()
	case DivToken, DivEqToken:
		if t, ok := p.l.ScanRegExp(); ok {
			p.tok = t
			pattern := string(p.tok.Payload.Raw)
			flags := string(p.tok.Payload.Cooked)
			p.advance()
			return p.b.RegExpLiteral(pattern, flags, pos)
		}
		p.fail("invalid regular expression")
		return theSyntaxExpr
	case OpenParenToken:
		return p.parseParenthesizedExpr()
	case OpenBracketToken:
		return p.parseArrayLiteral()
	case OpenBraceToken:
		return p.parseObjectLiteral()
	case FunctionToken:
		return p.parseFunctionExpr(false)
	case AsyncToken:
		if p.startsAsyncFunctionDeclaration() {
			p.advance()
			return p.parseFunctionExpr(true)
		}
		ident := p.b.Identifier(p.tok.Payload.Ident, p.tok.Literal(), pos)
		p.advance()
		return ident
	case ClassToken:
		return p.parseClassExpr()
	case IdentifierToken:
		return p.parseIdentifierReference()
	case PrivateIdentifierToken:
		id := p.b.Identifier(p.tok.Payload.Ident, p.tok.Literal(), pos)
		p.advance()
		return id
	}
	if contextualKeywords[p.tok.Type] {
		return p.parseIdentifierReference()
	}
	if strictReservedWords[p.tok.Type] && !p.strict {
		return p.parseIdentifierReference()
	}
	p.fail("unexpected token %s", p.tok.Type)
	return theSyntaxExpr
}

func (p *Parser) nearestSuperAllowingScope() *Scope {
	for s := p.scopes.Top(); s != nil; s = s.parent {
		if s.Kind == FunctionScope && s.NeedsSuperBinding {
			return s
		}
	}
	return nil
}

func (p *Parser) parseIdentifierReference() Expr {
	pos := p.tok.Pos
	name := p.tok.Payload.Ident
	text := p.tok.Literal()
	if p.strict && (strictReservedWords[p.tok.Type]) {
		p.failSemantic(pos, "'%s' is reserved in strict mode", text)
	}
	p.scopes.Top().Use(name)
	p.advance()
	return p.b.Identifier(name, text, pos)
}

func (p *Parser) parseTemplateLiteral() Expr {
	pos := p.tok.Pos
	var quasis []TemplateElement
	var exprs []Expr
	for {
		cooked := string(p.tok.Payload.Cooked)
		raw := p.tok.Literal()
		isTail := len(raw) > 0 && raw[len(raw)-1] == '`'
		quasis = append(quasis, TemplateElement{Cooked: cooked, Raw: raw, Tail: isTail})
		p.advance()
		if isTail {
			break
		}
		exprs = append(exprs, p.parseExpression(true))
		// the lexer, upon seeing the '}' that closes a substitution while a
		// template level is open, scans on through the next template chunk
		// and returns "}...${" or "}...`" as one TemplateToken, which the
		// next loop iteration consumes.
		if !p.at(TemplateToken) || p.tok.Literal()[0] != '}' {
			p.fail("expected '}' in template literal")
			break
		}
	}
	p.features |= TemplateLiteralFeature
	return p.b.TemplateLiteral(quasis, exprs, pos)
}

// parseParenthesizedExpr parses `( Expression )`, which is also the
// entry point tryParseArrowFunction speculatively attempts first to
// reinterpret as an arrow-function parameter list (spec.md §4.1, the
// canonical speculative-parse example).
func (p *Parser) parseParenthesizedExpr() Expr {
	p.advance()
	if p.at(CloseParenToken) {
		p.fail("unexpected token ')'")
		p.advance()
		return theSyntaxExpr
	}
	expr := p.parseExpression(true)
	p.expect(CloseParenToken)
	return expr
}

func (p *Parser) parseArrayLiteral() Expr {
	pos := p.tok.Pos
	p.advance()
	var elements []Expr
	for !p.at(CloseBracketToken) && !p.at(EOFToken) {
		if p.at(CommaToken) {
			elements = append(elements, nil)
			p.advance()
			continue
		}
		if p.at(EllipsisToken) {
			sp := p.tok.Pos
			p.advance()
			p.features |= SpreadFeature
			elements = append(elements, p.b.SpreadExpr(p.parseAssignExpr(true), sp))
		} else {
			elements = append(elements, p.parseAssignExpr(true))
		}
		if !p.at(CloseBracketToken) {
			p.expect(CommaToken)
		}
	}
	p.expect(CloseBracketToken)
	return p.b.ArrayLiteral(elements, pos)
}

func (p *Parser) parseObjectLiteral() Expr {
	pos := p.tok.Pos
	p.advance()
	var props []Property
	seenProto := false
	for !p.at(CloseBraceToken) && !p.at(EOFToken) {
		prop := p.parsePropertyDefinition()
		if p.isLiteralProtoKey(prop) {
			if seenProto {
				p.failSemantic(prop.Pos, "duplicate '__proto__' in object literal")
			}
			seenProto = true
		}
		props = append(props, prop)
		if !p.at(CloseBraceToken) {
			p.expect(CommaToken)
		}
	}
	p.expect(CloseBraceToken)
	return p.b.ObjectLiteral(props, pos)
}

// isLiteralProtoKey reports whether prop is a non-shorthand,
// non-computed, non-method `__proto__: value` entry — the only form
// ECMAScript treats as prototype-setting sugar rather than an ordinary
// property, and so the only form two of which in the same object
// literal is a semantic error (spec.md §8 Boundary Behaviors, "Duplicate
// __proto__ literal keys (shorthand and computed variants excluded)").
func (p *Parser) isLiteralProtoKey(prop Property) bool {
	if prop.Kind != PropertyInit || prop.Computed || prop.Shorthand {
		return false
	}
	switch key := prop.Key.(type) {
	case *Identifier:
		return key.Name == p.wk.UnderscoreProto
	case *StringLiteral:
		return key.Cooked == "__proto__"
	}
	return false
}

func (p *Parser) parsePropertyDefinition() Property {
	pos := p.tok.Pos
	if p.at(EllipsisToken) {
		p.advance()
		p.features |= SpreadFeature
		return Property{Kind: PropertySpread, Value: p.parseAssignExpr(true), Pos: pos}
	}
	isGetter := p.atContextual(p.wk.Get) && p.peeksPropertyKeyAfterAccessorKeyword()
	isSetter := p.atContextual(p.wk.Set) && p.peeksPropertyKeyAfterAccessorKeyword()
	isAsync := p.at(AsyncToken) && p.peeksPropertyKeyAfterAccessorKeyword()
	if isGetter || isSetter {
		p.advance()
		key, computed := p.parsePropertyKey()
		info := p.parseFunctionRest(false, false, false)
		kind := MethodGetter
		if isSetter {
			kind = MethodSetter
		}
		return Property{Kind: propertyKindForMethod(kind), Key: key, Computed: computed, Value: p.b.FunctionExpr(info, pos), Pos: pos}
	}
	if isAsync {
		p.advance()
		generator := p.eat(MulToken)
		key, computed := p.parsePropertyKey()
		info := p.parseFunctionRest(true, generator, true)
		return Property{Kind: PropertyMethod, Key: key, Computed: computed, Value: p.b.FunctionExpr(info, pos), Pos: pos}
	}
	if p.at(MulToken) {
		p.advance()
		key, computed := p.parsePropertyKey()
		info := p.parseFunctionRest(false, true, true)
		return Property{Kind: PropertyMethod, Key: key, Computed: computed, Value: p.b.FunctionExpr(info, pos), Pos: pos}
	}
	key, computed := p.parsePropertyKey()
	if p.at(OpenParenToken) {
		info := p.parseFunctionRest(false, false, true)
		return Property{Kind: PropertyMethod, Key: key, Computed: computed, Value: p.b.FunctionExpr(info, pos), Pos: pos}
	}
	if p.eat(ColonToken) {
		return Property{Kind: PropertyInit, Key: key, Computed: computed, Value: p.parseAssignExpr(true), Pos: pos}
	}
	if id, ok := key.(*Identifier); ok {
		var val Expr = id
		if p.eat(EqToken) {
			// CoverInitializedName: only legal when this object literal is
			// later reinterpreted as a destructuring pattern (spec.md
			// §4.5); it is recorded as an assignment default. No later
			// check rejects it when the literal is used as a plain
			// expression: exprToPattern validates nothing.
			def := p.parseAssignExpr(true)
			val = p.b.AssignmentExpr(EqToken, id, def, pos)
		}
		return Property{Kind: PropertyInit, Key: key, Shorthand: true, Value: val, Pos: pos}
	}
	p.fail("expected ':' in object literal property")
	return Property{Kind: PropertyInit, Key: key, Pos: pos}
}

func propertyKindForMethod(k MethodKind) PropertyKind {
	if k == MethodGetter {
		return PropertyGetter
	}
	return PropertySetter
}

// peeksPropertyKeyAfterAccessorKeyword reports whether the token after
// the current get/set/async contextual keyword still looks like a
// property key start, distinguishing `get() {}` (a method literally
// named "get") from `get foo() {}` (a getter named "foo").
func (p *Parser) peeksPropertyKeyAfterAccessorKeyword() bool {
	c := p.save()
	p.advance()
	ok := !p.at(OpenParenToken) && !p.at(ColonToken) && !p.at(CommaToken) && !p.at(CloseBraceToken) && !p.at(EqToken)
	p.restore(c)
	return ok
}

func (p *Parser) parsePropertyKey() (key Expr, computed bool) {
	pos := p.tok.Pos
	switch p.tok.Type {
	case OpenBracketToken:
		p.advance()
		key = p.parseAssignExpr(true)
		p.expect(CloseBracketToken)
		return key, true
	case StringToken:
		cooked := string(p.tok.Payload.Cooked)
		raw := p.tok.Literal()
		p.advance()
		return p.b.StringLiteral(cooked, raw, pos), false
	case NumericToken:
		num := p.tok.Payload.Num
		raw := p.tok.Literal()
		p.advance()
		return p.b.NumberLiteral(num, raw, pos), false
	}
	name := p.tok.Payload.Ident
	text := p.tok.Literal()
	p.advance()
	return p.b.Identifier(name, text, pos), false
}

////////////////////////////////////////////////////////////////
// arrow functions (spec.md §4.1 speculative-parse example)

// tryParseArrowFunction speculatively reinterprets either a bare
// identifier or a parenthesized list as ArrowParameters when followed
// by `=>` with no line terminator in between. On any mismatch it rewinds
// to the checkpoint taken before the attempt and returns ok == false so
// the caller falls through to ordinary expression parsing.
func (p *Parser) tryParseArrowFunction() (Expr, bool) {
	isAsync := false
	start := p.save()
	pos := p.tok.Pos
	if p.at(AsyncToken) {
		c := p.save()
		p.advance()
		if p.prevTerm || (!p.at(OpenParenToken) && p.tok.Type != IdentifierToken) {
			p.restore(c)
		} else {
			isAsync = true
		}
	}
	if p.tok.Type == IdentifierToken || (contextualKeywords[p.tok.Type] && !reservedWords[p.tok.Type]) {
		c := p.save()
		name := p.tok.Payload.Ident
		text := p.tok.Literal()
		p.advance()
		if p.at(ArrowToken) && !p.prevTerm {
			p.advance()
			return p.finishArrowFunction([]PatternElement{{Target: &BindingIdentifier{Name: name, Text: text, Pos: c.tok.Pos}}}, nil, isAsync, pos), true
		}
		p.restore(c)
		if isAsync {
			p.restore(start)
			return nil, false
		}
		return nil, false
	}
	if !p.at(OpenParenToken) {
		if isAsync {
			p.restore(start)
		}
		return nil, false
	}
	c := p.save()
	params, rest, ok := p.tryParseArrowParameterList()
	if !ok || !p.at(ArrowToken) || p.prevTerm {
		p.restore(c)
		if isAsync {
			p.restore(start)
		}
		return nil, false
	}
	p.advance()
	return p.finishArrowFunction(params, rest, isAsync, pos), true
}

// tryParseArrowParameterList speculatively parses `( ... )` as a formal
// parameter list rather than a parenthesized expression, rewinding and
// reporting ok == false on any shape that isn't valid as parameters
// (spec.md §4.1). The shape check itself runs under a throwaway scope
// and a syntax-only tree builder (spec.md §4.6: "the probe parses
// parameters under a throwaway scope with a syntax-only tree builder,
// then restores"), so a probe that turns out not to be parameters never
// allocates real nodes, never registers a nested function in
// p.funcDecls/the source cache, and never leaves p.features (e.g.
// DestructuringFeature from `({a})`, or a feature set while parsing a
// default value) set after the rewind. Only once the probe confirms the
// shape is valid does the real builder parse it again to produce the
// nodes finishArrowFunction actually needs.
func (p *Parser) tryParseArrowParameterList() (params []PatternElement, rest Binding, ok bool) {
	entry := p.save()

	origB := p.b
	p.b = NewSyntaxOnlyBuilder()
	p.scopes.PushThrowaway(BlockScope)
	_, _, probeOK := p.parseArrowParameterListShape()
	p.scopes.Pop()
	p.b = origB
	p.restore(entry)
	if !probeOK {
		return nil, nil, false
	}

	params, rest, ok = p.parseArrowParameterListShape()
	if !ok {
		p.restore(entry)
		return nil, nil, false
	}
	return params, rest, true
}

// parseArrowParameterListShape parses `( ... )` as a formal parameter
// list against whatever builder/scope is currently live, reporting
// ok == false (without restoring anything itself) on the first shape
// that doesn't fit. The caller decides what to do with a failed probe.
func (p *Parser) parseArrowParameterListShape() (params []PatternElement, rest Binding, ok bool) {
	savedErr := p.err
	p.advance() // consume '('
	for !p.at(CloseParenToken) {
		if p.at(EllipsisToken) {
			p.advance()
			rest = p.parseBindingTargetSpeculative()
			if rest == nil || p.err != savedErr {
				return nil, nil, false
			}
			break
		}
		target := p.parseBindingTargetSpeculative()
		if target == nil || p.err != savedErr {
			return nil, nil, false
		}
		var def Expr
		if p.eat(EqToken) {
			def = p.parseAssignExpr(true)
		}
		params = append(params, PatternElement{Target: target, Default: def})
		if p.err != savedErr {
			return nil, nil, false
		}
		if !p.eat(CommaToken) {
			break
		}
	}
	if !p.eat(CloseParenToken) || p.err != savedErr {
		return nil, nil, false
	}
	return params, rest, true
}

// parseBindingTargetSpeculative calls parseBindingTarget but never lets
// a failure propagate past it as the parser's sticky first-error: the
// caller treats any new error as "this was not a parameter list after
// all" and rewinds. This mirrors the teacher corpus's general
// checkpoint/error-clear idiom (scope.go's throwaway-scope plumbing)
// applied to the one production (arrow parameters) that needs
// a failable sub-parse.
func (p *Parser) parseBindingTargetSpeculative() Binding {
	before := p.err
	t := p.parseBindingTarget()
	if p.err != before {
		return nil
	}
	return t
}

func (p *Parser) finishArrowFunction(params []PatternElement, rest Binding, isAsync bool, pos Position) Expr {
	p.scopes.Push(FunctionScope)
	scope := p.scopes.Top()
	scope.IsAsync = isAsync
	for _, pr := range params {
		forEachBoundName(pr.Target, func(n Name) {
			res := scope.DeclareParameter(n, p.isStrictRestrictedName(n))
			p.reportDeclareResult(res, pos, n)
		})
	}
	if rest != nil {
		forEachBoundName(rest, func(n Name) {
			res := scope.DeclareParameter(n, p.isStrictRestrictedName(n))
			p.reportDeclareResult(res, pos, n)
		})
	}

	prevFn, prevGen, prevAsync := p.inFunction, p.inGenerator, p.inAsync
	p.inFunction, p.inGenerator, p.inAsync = true, false, isAsync

	var body []Stmt
	exprBody := false
	if p.at(OpenBraceToken) {
		if block, ok := p.parseBlock().(*BlockStmt); ok {
			body = block.Body
		}
	} else {
		exprBody = true
		e := p.parseAssignExpr(true)
		body = []Stmt{p.b.ReturnStmt(e, pos)}
	}

	p.inFunction, p.inGenerator, p.inAsync = prevFn, prevGen, prevAsync

	captured := scope.Captured()
	p.scopes.Pop()

	p.features |= ArrowFunctionFeature
	info := &FunctionInfo{
		Params:      params,
		RestParam:   rest,
		ParamCount:  len(params),
		Body:        body,
		StartOffset: pos.Start,
		IsArrow:     true,
		IsAsync:     isAsync,
		Captured:    captured,
		Strict:      scope.Strict,
	}
	return p.b.ArrowFunctionExpr(info, exprBody, pos)
}

////////////////////////////////////////////////////////////////
// binding targets / destructuring (spec.md §4.5)

func (p *Parser) parseBindingTarget() Binding {
	switch p.tok.Type {
	case OpenBracketToken:
		return p.parseArrayBindingPattern()
	case OpenBraceToken:
		return p.parseObjectBindingPattern()
	}
	if p.tok.Type != IdentifierToken && !contextualKeywords[p.tok.Type] {
		if strictReservedWords[p.tok.Type] && !p.strict {
			// fall through: non-strict code may bind a strict-reserved spelling
		} else {
			p.fail("expected a binding identifier or pattern")
			return theSyntaxBinding
		}
	}
	name := p.tok.Payload.Ident
	text := p.tok.Literal()
	pos := p.tok.Pos
	if p.strict && (name == p.wk.Eval || name == p.wk.Arguments) {
		p.failSemantic(pos, "cannot bind 'eval' or 'arguments' in strict mode")
	}
	p.advance()
	return p.b.BindingIdentifier(name, text, pos)
}

func (p *Parser) parseArrayBindingPattern() Binding {
	pos := p.tok.Pos
	p.advance()
	var elements []PatternElement
	var rest Binding
	for !p.at(CloseBracketToken) && !p.at(EOFToken) {
		if p.at(CommaToken) {
			elements = append(elements, PatternElement{})
			p.advance()
			continue
		}
		if p.at(EllipsisToken) {
			p.advance()
			rest = p.parseBindingTarget()
			break
		}
		target := p.parseBindingTarget()
		var def Expr
		if p.eat(EqToken) {
			def = p.parseAssignExpr(true)
		}
		elements = append(elements, PatternElement{Target: target, Default: def})
		if !p.at(CloseBracketToken) {
			if !p.eat(CommaToken) {
				break
			}
		}
	}
	p.expect(CloseBracketToken)
	p.features |= DestructuringFeature
	return p.b.ArrayPattern(elements, rest, pos)
}

func (p *Parser) parseObjectBindingPattern() Binding {
	pos := p.tok.Pos
	p.advance()
	var props []PatternProperty
	var rest Binding
	for !p.at(CloseBraceToken) && !p.at(EOFToken) {
		if p.at(EllipsisToken) {
			p.advance()
			rest = p.parseBindingTarget()
			break
		}
		key, computed := p.parsePropertyKey()
		if p.eat(ColonToken) {
			target := p.parseBindingTarget()
			var def Expr
			if p.eat(EqToken) {
				def = p.parseAssignExpr(true)
			}
			props = append(props, PatternProperty{Key: key, Computed: computed, Value: target, Default: def})
		} else {
			id, ok := key.(*Identifier)
			if !ok {
				p.fail("expected ':' in binding pattern")
				break
			}
			target := Binding(&BindingIdentifier{Name: id.Name, Text: id.Text, Pos: id.Pos})
			var def Expr
			if p.eat(EqToken) {
				def = p.parseAssignExpr(true)
			}
			props = append(props, PatternProperty{Key: key, Shorthand: true, Value: target, Default: def})
		}
		if !p.at(CloseBraceToken) {
			if !p.eat(CommaToken) {
				break
			}
		}
	}
	p.expect(CloseBraceToken)
	p.features |= DestructuringFeature
	return p.b.ObjectPattern(props, rest, pos)
}

// exprToPattern reinterprets an already-parsed expression (an array or
// object literal built while parsing what turned out to be the left
// side of a destructuring assignment) as an Binding-equivalent Expr
// assignment target (spec.md §4.5 "ToExpressions"/assignment-pattern
// path: destructuring assignment, unlike destructuring declaration,
// targets arbitrary member-expression chains, not just bindings, so it
// stays in Expr form rather than converting to Binding). It returns e
// unchanged: the elements and properties of an array or object literal
// are not checked for being valid assignment targets.
func (p *Parser) exprToPattern(e Expr) Expr {
	switch t := e.(type) {
	case *ArrayLiteral, *ObjectLiteral:
		_ = t
		return e // isLHSExpr accepts array and object literals as a whole; their contents are not inspected
	}
	return e
}

////////////////////////////////////////////////////////////////
// functions (spec.md §4.2, §4.7)

func (p *Parser) parseFunctionDeclaration(isAsync bool) Stmt {
	pos := p.tok.Pos
	p.advance()
	generator := p.eat(MulToken)
	namePos := p.tok.Pos
	name, nameText := p.parseBindingIdentifierNameChecked("function")
	res := p.scopes.Top().DeclareVar(name, p.isStrictRestrictedName(name))
	p.reportDeclareResult(res, namePos, name)
	info := p.parseFunctionRest(isAsync, generator, true)
	info.Name = name
	info.NameText = nameText
	info.StartOffset = pos.Start
	p.funcDecls = append(p.funcDecls, info)
	return p.b.FunctionDecl(info, pos)
}

func (p *Parser) parseFunctionExpr(isAsync bool) Expr {
	pos := p.tok.Pos
	p.advance()
	generator := p.eat(MulToken)
	var name Name
	var nameText string
	if p.tok.Type == IdentifierToken {
		name, nameText = p.parseBindingIdentifierNameChecked("function")
	}
	info := p.parseFunctionRest(isAsync, generator, true)
	info.Name = name
	info.NameText = nameText
	info.StartOffset = pos.Start
	return p.b.FunctionExpr(info, pos)
}

func (p *Parser) parseBindingIdentifierName() (Name, string) {
	name := p.tok.Payload.Ident
	text := p.tok.Literal()
	p.advance()
	return name, text
}

// parseBindingIdentifierNameChecked is parseBindingIdentifierName plus
// the strict-mode eval/arguments restriction spec.md §4.2 places on
// every named binding, not just parameter and variable targets
// (parseBindingTarget checks the same pair). kind names
// what's being bound, for the diagnostic ("function", "class", "import
// binding") — spec.md §8 Concrete Scenario 1 requires exactly "cannot
// name a function 'eval' in strict mode" for the function case.
func (p *Parser) parseBindingIdentifierNameChecked(kind string) (Name, string) {
	pos := p.tok.Pos
	name, text := p.parseBindingIdentifierName()
	p.checkStrictBindingName(name, text, pos, kind)
	return name, text
}

// checkStrictBindingName reports a semantic error if name is 'eval',
// 'arguments', or a strict-reserved-word spelling (table.go's
// strictReservedWords, e.g. 'yield', 'let', 'static') while the parser
// is in strict mode; kind names what's being bound for the diagnostic.
func (p *Parser) checkStrictBindingName(name Name, text string, pos Position, kind string) {
	if p.strict && p.isStrictRestrictedName(name) {
		p.failSemantic(pos, "cannot name a %s '%s' in strict mode", kind, text)
	}
}

// strictReservedWordSpellings mirrors table.go's strictReservedWords,
// keyed by spelling instead of TokenType: identifiers bound outside a
// parseBindingTarget call (function/class/import-binding names) never
// see the original reserved-word TokenType, only the interned Name, so
// the check has to go by text.
var strictReservedWordSpellings = map[string]bool{
	"implements": true, "interface": true, "package": true, "private": true,
	"protected": true, "public": true, "yield": true, "let": true, "static": true,
}

// reportDeclareResult turns a DeclareResult from DeclareVar/
// DeclareLexical/DeclareParameter into a semantic error, picking the
// message bit that actually fired (spec.md §4.2: "the caller decides
// which bits are fatal" — here every set bit is fatal, so the only
// decision left is which message to show).
func (p *Parser) reportDeclareResult(res DeclareResult, pos Position, name Name) {
	if res&DeclareInvalidStrictMode != 0 {
		p.failSemantic(pos, "'%s' is a reserved identifier in strict mode", p.in.String(name))
		return
	}
	if res&DeclareInvalidDuplicate != 0 {
		p.failSemantic(pos, "identifier '%s' has already been declared", p.in.String(name))
	}
}

// isStrictRestrictedName reports whether name cannot be bound while
// p.strict is true: either of the two names ECMAScript singles out
// (eval, arguments) or a strict-reserved-word spelling (spec.md §4.2,
// "InvalidStrictMode (the name is a reserved identifier in strict
// mode)").
func (p *Parser) isStrictRestrictedName(name Name) bool {
	if name == p.wk.Eval || name == p.wk.Arguments {
		return true
	}
	return strictReservedWordSpellings[p.in.String(name)]
}

// parseFunctionRest parses `( params ) { body }` shared by function
// declarations, expressions, and methods (spec.md §4.7
// "FunctionInfo"), using the source cache to skip re-scanning the body
// when the builder in use allows it (spec.md §4.8).
func (p *Parser) parseFunctionRest(isAsync, isGenerator, isMethod bool) *FunctionInfo {
	startOffset := p.tok.Pos.Start
	p.scopes.Push(FunctionScope)
	scope := p.scopes.Top()
	scope.IsAsync = isAsync
	scope.IsGenerator = isGenerator

	params, rest := p.parseFormalParameters()
	simple := rest == nil && !p.strict
	for _, pr := range params {
		if _, ok := pr.Target.(*BindingIdentifier); !ok || pr.Default != nil {
			simple = false
		}
	}
	for _, pr := range params {
		forEachBoundName(pr.Target, func(n Name) {
			res := scope.DeclareParameter(n, p.isStrictRestrictedName(n))
			if simple {
				res &^= DeclareInvalidDuplicate
			}
			p.reportDeclareResult(res, p.tok.Pos, n)
		})
	}
	if rest != nil {
		forEachBoundName(rest, func(n Name) {
			res := scope.DeclareParameter(n, p.isStrictRestrictedName(n))
			p.reportDeclareResult(res, p.tok.Pos, n)
		})
	}

	if p.b.CanUseFunctionCache() {
		if entry, ok := p.cache.Get(startOffset); ok {
			p.l.r.MoveTo(entry.EndOffset)
			p.l.SetLineNumber(entry.EndLine)
			p.l.lineStart = entry.EndLineStart
			p.advance()
			p.scopes.Pop()
			return &FunctionInfo{
				Params: params, RestParam: rest, ParamCount: len(params),
				StartOffset: startOffset, EndOffset: entry.EndOffset,
				IsGenerator: isGenerator, IsAsync: isAsync, IsMethod: isMethod,
				Captured: entry.Captured, Strict: entry.Strict, FromCache: true,
			}
		}
	}

	prevFn, prevGen, prevAsync := p.inFunction, p.inGenerator, p.inAsync
	p.inFunction, p.inGenerator, p.inAsync = true, isGenerator, isAsync

	p.expect(OpenBraceToken)
	body := p.parseStatementList(true, false)
	p.expect(CloseBraceToken)
	endOffset := p.prevEnd

	p.inFunction, p.inGenerator, p.inAsync = prevFn, prevGen, prevAsync

	if isGenerator {
		p.features |= GeneratorFeature
	}
	if isAsync {
		p.features |= AsyncFeature
	}

	captured := scope.Captured()
	strict := scope.Strict
	p.scopes.Pop()

	if p.b.CanUseFunctionCache() && endOffset-startOffset >= blockBodyCacheThreshold {
		p.cache.Put(startOffset, &CacheEntry{
			EndOffset: endOffset, EndLine: p.l.line, EndLineStart: p.l.lineStart,
			EndToken: CloseBraceToken, ParamCount: len(params), Strict: strict, Captured: captured,
		})
	}

	return &FunctionInfo{
		Params: params, RestParam: rest, ParamCount: len(params), Body: body,
		StartOffset: startOffset, EndOffset: endOffset,
		IsGenerator: isGenerator, IsAsync: isAsync, IsMethod: isMethod,
		Captured: captured, Strict: strict,
	}
}

func (p *Parser) parseFormalParameters() (params []PatternElement, rest Binding) {
	p.expect(OpenParenToken)
	for !p.at(CloseParenToken) && !p.at(EOFToken) {
		if p.at(EllipsisToken) {
			p.advance()
			rest = p.parseBindingTarget()
			break
		}
		target := p.parseBindingTarget()
		var def Expr
		if p.eat(EqToken) {
			def = p.parseAssignExpr(true)
		}
		params = append(params, PatternElement{Target: target, Default: def})
		if !p.eat(CommaToken) {
			break
		}
	}
	p.expect(CloseParenToken)
	return params, rest
}

////////////////////////////////////////////////////////////////
// classes (spec.md §4.9 "class")

func (p *Parser) parseClassDeclaration() Stmt {
	pos := p.tok.Pos
	info := p.parseClassTail()
	res := p.scopes.Top().DeclareLexical(info.Name, false, p.isStrictRestrictedName(info.Name))
	p.reportDeclareResult(res, pos, info.Name)
	return p.b.ClassDecl(info, pos)
}

func (p *Parser) parseClassExpr() Expr {
	pos := p.tok.Pos
	info := p.parseClassTail()
	return p.b.ClassExpr(info, pos)
}

func (p *Parser) parseClassTail() *ClassInfo {
	p.advance() // 'class'
	wasStrict := p.strict
	p.strict = true

	var name Name
	var nameText string
	if p.tok.Type == IdentifierToken {
		name, nameText = p.parseBindingIdentifierNameChecked("class")
	}

	var parent Expr
	if p.eat(ExtendsToken) {
		parent = p.parseLeftHandSideExpr()
	}

	p.expect(OpenBraceToken)
	info := &ClassInfo{Name: name, NameText: nameText, Parent: parent}
	if parent != nil {
		info.ConstructorKind = DerivedConstructor
	} else {
		info.ConstructorKind = BaseConstructor
	}

	for !p.at(CloseBraceToken) && !p.at(EOFToken) {
		if p.eat(SemicolonToken) {
			continue
		}
		m := p.parseClassMember(parent != nil)
		if m.Kind == MethodConstructor {
			mc := m
			info.Constructor = &mc
		} else if m.Static {
			info.StaticMethods = append(info.StaticMethods, m)
		} else {
			info.InstanceMethods = append(info.InstanceMethods, m)
		}
	}
	p.expect(CloseBraceToken)
	p.strict = wasStrict
	p.features |= ClassFeature
	return info
}

func (p *Parser) parseClassMember(isDerived bool) ClassMethod {
	static := false
	if p.atContextual(p.wk.Static) && p.peeksPropertyKeyAfterAccessorKeyword() {
		static = true
		p.advance()
	}
	isGetter := p.atContextual(p.wk.Get) && p.peeksPropertyKeyAfterAccessorKeyword()
	isSetter := p.atContextual(p.wk.Set) && p.peeksPropertyKeyAfterAccessorKeyword()
	isAsync := p.at(AsyncToken) && p.peeksPropertyKeyAfterAccessorKeyword()
	if isGetter || isSetter {
		p.advance()
		key, computed := p.parsePropertyKey()
		p.scopes.Push(FunctionScope)
		p.scopes.Top().NeedsSuperBinding = true
		info := p.parseFunctionRest(false, false, true)
		p.scopes.Pop()
		kind := MethodGetter
		if isSetter {
			kind = MethodSetter
		}
		return ClassMethod{Key: key, Computed: computed, Static: static, Kind: kind, Info: info}
	}
	generator := false
	if isAsync {
		p.advance()
		generator = p.eat(MulToken)
	} else {
		generator = p.eat(MulToken)
	}
	key, computed := p.parsePropertyKey()
	isCtor := !static && !computed && isIdentifierKey(key, p.wk.Constructor)
	p.scopes.Push(FunctionScope)
	p.scopes.Top().NeedsSuperBinding = true
	if isCtor && isDerived {
		p.scopes.Top().HasDirectSuper = true
	}
	info := p.parseFunctionRest(isAsync, generator, true)
	p.scopes.Pop()
	if isCtor {
		return ClassMethod{Key: key, Computed: computed, Static: static, Kind: MethodConstructor, Info: info}
	}
	kind := MethodOrdinary
	if generator {
		kind = MethodGenerator
	}
	return ClassMethod{Key: key, Computed: computed, Static: static, Kind: kind, Info: info}
}

func isIdentifierKey(e Expr, name Name) bool {
	if id, ok := e.(*Identifier); ok {
		return id.Name == name
	}
	if s, ok := e.(*StringLiteral); ok {
		return s.Cooked == "constructor"
	}
	return false
}

////////////////////////////////////////////////////////////////
// modules (spec.md §4.9 "ImportDeclaration"/"ExportDeclaration")

func (p *Parser) parseImportDecl() Stmt {
	pos := p.tok.Pos
	p.advance()
	var specs []ImportSpecifier
	if p.tok.Type == IdentifierToken {
		name, text := p.parseBindingIdentifierNameChecked("import binding")
		res := p.scopes.Top().DeclareLexical(name, true, p.isStrictRestrictedName(name))
		p.reportDeclareResult(res, pos, name)
		specs = append(specs, ImportSpecifier{Local: name, Default: true})
		_ = text
		if p.eat(CommaToken) {
			specs = append(specs, p.parseImportClauseTail()...)
		}
	} else {
		specs = p.parseImportClauseTail()
	}
	if !p.atContextual(p.wk.From) {
		p.fail("expected 'from' in import declaration")
	}
	p.advance()
	source := p.parseModuleSpecifier()
	p.consumeSemicolon()
	p.features |= ModuleFeature
	return p.b.ImportDecl(specs, source, pos)
}

func (p *Parser) parseImportClauseTail() []ImportSpecifier {
	if p.at(MulToken) {
		p.advance()
		if !p.atContextual(p.wk.As) {
			p.fail("expected 'as' after 'import *'")
		}
		p.advance()
		pos := p.tok.Pos
		name, _ := p.parseBindingIdentifierNameChecked("import binding")
		res := p.scopes.Top().DeclareLexical(name, true, p.isStrictRestrictedName(name))
		p.reportDeclareResult(res, pos, name)
		return []ImportSpecifier{{Local: name, Namespace: true}}
	}
	p.expect(OpenBraceToken)
	var specs []ImportSpecifier
	for !p.at(CloseBraceToken) && !p.at(EOFToken) {
		importedPos := p.tok.Pos
		imported, importedText := p.parseBindingIdentifierName()
		local, localText, localPos := imported, importedText, importedPos
		if p.atContextual(p.wk.As) {
			p.advance()
			localPos = p.tok.Pos
			local, localText = p.parseBindingIdentifierName()
		}
		p.checkStrictBindingName(local, localText, localPos, "import binding")
		res := p.scopes.Top().DeclareLexical(local, true, p.isStrictRestrictedName(local))
		p.reportDeclareResult(res, localPos, local)
		specs = append(specs, ImportSpecifier{Imported: imported, Local: local})
		if !p.eat(CommaToken) {
			break
		}
	}
	p.expect(CloseBraceToken)
	return specs
}

func (p *Parser) parseModuleSpecifier() string {
	if p.tok.Type != StringToken {
		p.fail("expected a module specifier string")
		return ""
	}
	s := string(p.tok.Payload.Cooked)
	p.advance()
	return s
}

func (p *Parser) parseExportDecl() Stmt {
	pos := p.tok.Pos
	p.advance()
	if p.eat(MulToken) {
		var exported Name
		if p.atContextual(p.wk.As) {
			p.advance()
			exported, _ = p.parseBindingIdentifierName()
		}
		_ = exported
		if !p.atContextual(p.wk.From) {
			p.fail("expected 'from' in export-all declaration")
		}
		p.advance()
		source := p.parseModuleSpecifier()
		p.consumeSemicolon()
		p.features |= ModuleFeature
		return p.b.ExportDecl(ExportDecl{All: true, Source: source}, pos)
	}
	if p.eat(DefaultToken) {
		p.features |= ModuleFeature
		if p.at(FunctionToken) {
			c := p.save()
			p.advance()
			p.eat(MulToken)
			anonymous := p.at(OpenParenToken)
			p.restore(c)
			if anonymous {
				expr := p.parseFunctionExpr(false)
				return p.b.ExportDecl(ExportDecl{Default: true, DefaultExpr: expr}, pos)
			}
			decl := p.parseFunctionDeclaration(false)
			return p.b.ExportDecl(ExportDecl{Default: true, Decl: decl}, pos)
		}
		if p.at(ClassToken) {
			decl := p.parseClassDeclaration()
			return p.b.ExportDecl(ExportDecl{Default: true, Decl: decl}, pos)
		}
		expr := p.parseAssignExpr(true)
		p.consumeSemicolon()
		return p.b.ExportDecl(ExportDecl{Default: true, DefaultExpr: expr}, pos)
	}
	if p.at(OpenBraceToken) {
		p.advance()
		var specs []ExportSpecifier
		for !p.at(CloseBraceToken) && !p.at(EOFToken) {
			local, _ := p.parseBindingIdentifierName()
			exported := local
			if p.atContextual(p.wk.As) {
				p.advance()
				exported, _ = p.parseBindingIdentifierName()
			}
			specs = append(specs, ExportSpecifier{Local: local, Exported: exported})
			if !p.eat(CommaToken) {
				break
			}
		}
		p.expect(CloseBraceToken)
		var source string
		if p.atContextual(p.wk.From) {
			p.advance()
			source = p.parseModuleSpecifier()
		} else {
			for _, s := range specs {
				p.scopes.Top().ExportedBindings[s.Local] = true
			}
		}
		p.consumeSemicolon()
		p.features |= ModuleFeature
		return p.b.ExportDecl(ExportDecl{Specifiers: specs, Source: source}, pos)
	}
	p.features |= ModuleFeature
	decl := p.parseStatement(true)
	if vd, ok := decl.(*VarDeclStmt); ok {
		for _, d := range vd.Decls {
			forEachBoundName(d.Target, func(n Name) { p.scopes.Top().ExportedBindings[n] = true })
		}
	}
	return p.b.ExportDecl(ExportDecl{Decl: decl}, pos)
}
