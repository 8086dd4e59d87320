package js

// Visitor is implemented by callers that want to traverse a Full-built
// AST. Enter is called on every node in depth-first pre-order; if it
// returns nil, Walk skips that node's children (spec.md §6 External
// Interfaces, "a Visitor over the Full AST").
//
// Grounded on the teacher's js/walk.go IVisitor/Walk, generalized from
// the teacher's single INode union type to this package's three node
// interfaces (Expr, Stmt, Binding), since SPEC_FULL.md's AST splits
// those into separate families rather than one generic node type.
type Visitor interface {
	Enter(n interface{}) Visitor
}

// Walk traverses n (a *Program, Stmt, Expr, or Binding) in depth-first
// order, calling v.Enter on every node reached. Nodes built by
// SyntaxOnlyBuilder carry none of the fields Walk inspects, so Walk is
// only meaningful over a tree built by FullBuilder.
func Walk(v Visitor, n interface{}) {
	if n == nil || isNilNode(n) {
		return
	}
	if v = v.Enter(n); v == nil {
		return
	}

	switch n := n.(type) {
	case *Program:
		for _, s := range n.Body {
			Walk(v, s)
		}

	// Statements
	case *BlockStmt:
		for _, s := range n.Body {
			Walk(v, s)
		}
	case *EmptyStmt, *DebuggerStmt, *BreakStmt, *ContinueStmt:
		// leaves
	case *ExprStmt:
		Walk(v, n.Expr)
	case *IfStmt:
		Walk(v, n.Cond)
		Walk(v, n.Cons)
		Walk(v, n.Alt)
	case *WhileStmt:
		Walk(v, n.Cond)
		Walk(v, n.Body)
	case *DoWhileStmt:
		Walk(v, n.Body)
		Walk(v, n.Cond)
	case *ForStmt:
		walkForInit(v, n.Init)
		Walk(v, n.Cond)
		Walk(v, n.Post)
		Walk(v, n.Body)
	case *ForInStmt:
		walkForInit(v, n.Left)
		Walk(v, n.Right)
		Walk(v, n.Body)
	case *ForOfStmt:
		walkForInit(v, n.Left)
		Walk(v, n.Right)
		Walk(v, n.Body)
	case *ReturnStmt:
		Walk(v, n.Value)
	case *ThrowStmt:
		Walk(v, n.Value)
	case *TryStmt:
		Walk(v, n.Block)
		if n.Catch != nil {
			Walk(v, n.Catch.Param)
			Walk(v, n.Catch.Body)
		}
		Walk(v, n.Finally)
	case *SwitchStmt:
		Walk(v, n.Disc)
		for _, c := range n.Clauses {
			Walk(v, c.Test)
			for _, s := range c.Body {
				Walk(v, s)
			}
		}
	case *WithStmt:
		Walk(v, n.Object)
		Walk(v, n.Body)
	case *LabelledStmt:
		Walk(v, n.Body)
	case *VarDeclStmt:
		for _, d := range n.Decls {
			Walk(v, d.Target)
			Walk(v, d.Init)
		}
	case *FunctionDecl:
		walkFunctionInfo(v, n.Info)
	case *ClassDecl:
		walkClassInfo(v, n.Info)
	case *ImportDecl:
		// specifiers carry only Names, nothing further to walk
	case *ExportDecl:
		Walk(v, n.Decl)
		Walk(v, n.DefaultExpr)

	// Expressions
	case *Identifier, *NumberLiteral, *StringLiteral, *BooleanLiteral,
		*NullLiteral, *RegExpLiteral, *ThisExpr, *SuperExpr, *NewTargetExpr:
		// leaves
	case *TemplateLiteral:
		for _, e := range n.Exprs {
			Walk(v, e)
		}
	case *BinaryExpr:
		Walk(v, n.Left)
		Walk(v, n.Right)
	case *UnaryExpr:
		Walk(v, n.Operand)
	case *ConditionalExpr:
		Walk(v, n.Test)
		Walk(v, n.Cons)
		Walk(v, n.Alt)
	case *AssignmentExpr:
		Walk(v, n.Target)
		Walk(v, n.Value)
	case *SequenceExpr:
		for _, e := range n.Exprs {
			Walk(v, e)
		}
	case *CallExpr:
		Walk(v, n.Callee)
		for _, a := range n.Args {
			Walk(v, a)
		}
	case *NewExpr:
		Walk(v, n.Callee)
		for _, a := range n.Args {
			Walk(v, a)
		}
	case *MemberExpr:
		Walk(v, n.Object)
		Walk(v, n.Property)
	case *TaggedTemplateExpr:
		Walk(v, n.Tag)
		Walk(v, n.Quasi)
	case *SpreadExpr:
		Walk(v, n.Arg)
	case *YieldExpr:
		Walk(v, n.Arg)
	case *AwaitExpr:
		Walk(v, n.Arg)
	case *ArrayLiteral:
		for _, e := range n.Elements {
			Walk(v, e)
		}
	case *ObjectLiteral:
		for _, p := range n.Properties {
			Walk(v, p.Key)
			Walk(v, p.Value)
		}
	case *FunctionExpr:
		walkFunctionInfo(v, n.Info)
	case *ArrowFunctionExpr:
		walkFunctionInfo(v, n.Info)
	case *ClassExpr:
		walkClassInfo(v, n.Info)

	// Patterns
	case *BindingIdentifier:
		// leaf
	case *ArrayPattern:
		for _, el := range n.Elements {
			Walk(v, el.Target)
			Walk(v, el.Default)
		}
		Walk(v, n.Rest)
	case *ObjectPattern:
		for _, p := range n.Properties {
			Walk(v, p.Key)
			Walk(v, p.Value)
			Walk(v, p.Default)
		}
		Walk(v, n.Rest)
	}
}

func walkForInit(v Visitor, init interface{}) {
	switch t := init.(type) {
	case Expr:
		Walk(v, t)
	case Stmt:
		Walk(v, t)
	}
}

func walkFunctionInfo(v Visitor, info *FunctionInfo) {
	if info == nil {
		return
	}
	for _, p := range info.Params {
		Walk(v, p.Target)
		Walk(v, p.Default)
	}
	Walk(v, info.RestParam)
	for _, s := range info.Body {
		Walk(v, s)
	}
}

func walkClassInfo(v Visitor, info *ClassInfo) {
	if info == nil {
		return
	}
	Walk(v, info.Parent)
	if info.Constructor != nil {
		walkFunctionInfo(v, info.Constructor.Info)
	}
	for _, m := range info.InstanceMethods {
		Walk(v, m.Key)
		walkFunctionInfo(v, m.Info)
	}
	for _, m := range info.StaticMethods {
		Walk(v, m.Key)
		walkFunctionInfo(v, m.Info)
	}
}

// isNilNode reports whether n holds a typed nil pointer (e.g. a *IfStmt
// field left unset), which a plain `n == nil` check on the interface{}
// parameter would miss.
func isNilNode(n interface{}) bool {
	switch t := n.(type) {
	case *BlockStmt:
		return t == nil
	case Expr:
		return isNilExpr(t)
	case Stmt:
		return isNilStmt(t)
	case Binding:
		return isNilBinding(t)
	}
	return false
}

func isNilExpr(e Expr) bool {
	switch t := e.(type) {
	case *Identifier:
		return t == nil
	case *NumberLiteral:
		return t == nil
	case *StringLiteral:
		return t == nil
	case *BooleanLiteral:
		return t == nil
	case *NullLiteral:
		return t == nil
	case *RegExpLiteral:
		return t == nil
	case *ThisExpr:
		return t == nil
	case *SuperExpr:
		return t == nil
	case *NewTargetExpr:
		return t == nil
	}
	return e == nil
}

func isNilStmt(s Stmt) bool { return s == nil }

func isNilBinding(b Binding) bool {
	switch t := b.(type) {
	case *BindingIdentifier:
		return t == nil
	case *ArrayPattern:
		return t == nil
	case *ObjectPattern:
		return t == nil
	}
	return b == nil
}
