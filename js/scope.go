package js

// ScopeKind identifies the kind of lexical environment a Scope represents.
type ScopeKind uint8

const (
	FunctionScope ScopeKind = iota
	BlockScope              // lexical block: if/for/while/bare block body
	CatchScope
	ModuleScope
	WithScope
	SwitchScope
)

// ConstructorKind distinguishes a class constructor with an implicit
// base-object allocation from one that must call super() before `this`
// is usable.
type ConstructorKind uint8

const (
	NotConstructor ConstructorKind = iota
	BaseConstructor
	DerivedConstructor
)

// DeclareResult is the bitmask a declaration attempt returns; the caller
// decides which bits are fatal for the declaration kind in play
// (spec.md §4.2).
type DeclareResult uint8

const (
	DeclareValid DeclareResult = 0
	DeclareInvalidStrictMode DeclareResult = 1 << iota
	DeclareInvalidDuplicate
)

func (r DeclareResult) ok() bool { return r == DeclareValid }

// Label records one labelled-statement entry visible in a scope.
type Label struct {
	Name   Name
	IsLoop bool
}

// Scope is one lexical environment on the parser's scope stack
// (spec.md §3, "Scope"). Fields are populated as productions are parsed
// and consumed on popScope to propagate free-variable information to
// the parent, per spec.md §4.2.
type Scope struct {
	Kind ScopeKind

	Strict bool

	declaredVar     map[Name]bool
	declaredLexical map[Name]bool
	declaredConst   map[Name]bool
	usedNames       map[Name]bool
	closedOver      map[Name]bool // closed-variable candidates merged up from children
	labels          []Label

	NeedsFullActivation bool
	IsGenerator         bool
	IsAsync             bool
	HasDirectSuper      bool
	NeedsSuperBinding   bool
	ConstructorKind     ConstructorKind

	// ExportedBindings is populated only for ModuleScope: name -> true
	// once `export` has named it, used to validate at end-of-parse that
	// every export resolves to a declared binding (spec.md §4.9).
	ExportedBindings map[Name]bool

	// throwaway marks a scope pushed during a speculative parse whose
	// declarations must never be absorbed by the parent even though the
	// scope itself is popped normally (spec.md §4.1).
	throwaway bool

	parent *Scope
}

func newScope(kind ScopeKind, parent *Scope) *Scope {
	s := &Scope{
		Kind:            kind,
		declaredVar:     make(map[Name]bool),
		declaredLexical: make(map[Name]bool),
		declaredConst:   make(map[Name]bool),
		usedNames:       make(map[Name]bool),
		closedOver:      make(map[Name]bool),
		parent:          parent,
	}
	if parent != nil {
		s.Strict = parent.Strict
	}
	if kind == ModuleScope {
		s.ExportedBindings = make(map[Name]bool)
	}
	return s
}

// ScopeStack is the stack of scopes encountered during a parse
// (spec.md §2 component 3). The zero value is ready to use; it starts
// and must end empty (spec.md §5, "the scope stack is always empty at
// parser construction and at successful termination").
type ScopeStack struct {
	top *Scope
	len int
}

// Len returns the current stack depth.
func (ss *ScopeStack) Len() int { return ss.len }

// Top returns the innermost scope, or nil if the stack is empty.
func (ss *ScopeStack) Top() *Scope { return ss.top }

// Push creates and pushes a new scope of the given kind, inheriting the
// strict flag from the enclosing scope (spec.md §3 Invariant: "strict
// mode is monotone within a scope once set").
func (ss *ScopeStack) Push(kind ScopeKind) *Scope {
	s := newScope(kind, ss.top)
	ss.top = s
	ss.len++
	return s
}

// PushThrowaway pushes a scope marked so that Pop never merges its
// used-names into the parent (spec.md §4.1: speculative declarations
// must not leak past a rewound SavePoint).
func (ss *ScopeStack) PushThrowaway(kind ScopeKind) *Scope {
	s := ss.Push(kind)
	s.throwaway = true
	return s
}

// Pop removes the innermost scope, merging its unresolved uses into the
// parent as closed-variable candidates and, for function scopes,
// computing its Captured set. Every Push must be paired with exactly
// one Pop on every exit path (spec.md §3 Invariant).
func (ss *ScopeStack) Pop() *Scope {
	s := ss.top
	if s == nil {
		panic("js: Pop on empty scope stack")
	}
	ss.top = s.parent
	ss.len--

	if s.throwaway || s.parent == nil {
		return s
	}
	for name := range s.usedNames {
		if !s.declaredVar[name] && !s.declaredLexical[name] {
			s.parent.closedOver[name] = true
		}
	}
	for name := range s.closedOver {
		if !s.declaredVar[name] && !s.declaredLexical[name] {
			s.parent.closedOver[name] = true
		}
	}
	return s
}

// Captured returns the set of names used inside s or one of its
// descendants that resolve to a binding declared in an enclosing scope
// (spec.md §4.2: "function scopes additionally compute the set of
// captured names by subtracting their declared names from the union of
// their and descendants' uses").
func (s *Scope) Captured() []Name {
	var out []Name
	for name := range s.closedOver {
		if !s.declaredVar[name] && !s.declaredLexical[name] {
			out = append(out, name)
		}
	}
	return out
}

// Use records that name was referenced inside s.
func (s *Scope) Use(name Name) {
	s.usedNames[name] = true
}

// DeclareVar declares a `var` binding. A var binding is fatal to
// redeclare only when it would shadow a lexical binding in the same
// scope or an enclosing scope up to the nearest function boundary
// (spec.md §3 Invariant). This method checks only s itself; the
// enclosing block scopes (catch scopes excepted) are checked by the
// caller, Parser.declareBindingTarget in parse.go. reservedInStrict
// marks that name's spelling is only bindable outside strict mode
// (spec.md §4.2); the caller determines this (see
// Parser.isStrictRestrictedName in parse.go), since only it knows the
// spelling a Name was interned from.
func (s *Scope) DeclareVar(name Name, reservedInStrict bool) DeclareResult {
	var r DeclareResult
	if s.declaredLexical[name] {
		r |= DeclareInvalidDuplicate
	}
	if s.Strict && reservedInStrict {
		r |= DeclareInvalidStrictMode
	}
	s.declaredVar[name] = true
	return r
}

// DeclareLexical declares a `let`/`const`/`class`/import binding. A
// duplicate lexical declaration in the same scope is always fatal
// (spec.md §3 Invariant).
func (s *Scope) DeclareLexical(name Name, isConst, reservedInStrict bool) DeclareResult {
	var r DeclareResult
	if s.declaredLexical[name] || s.declaredVar[name] {
		r |= DeclareInvalidDuplicate
	}
	if s.Strict && reservedInStrict {
		r |= DeclareInvalidStrictMode
	}
	s.declaredLexical[name] = true
	if isConst {
		s.declaredConst[name] = true
	}
	return r
}

// DeclareParameter declares a formal parameter name. Duplicate
// parameters are only fatal for the caller-determined reasons named in
// spec.md §4.2 (default values, destructuring, or a rest parameter);
// this method only performs the bookkeeping, leaving that policy
// decision to the parser.
func (s *Scope) DeclareParameter(name Name, reservedInStrict bool) DeclareResult {
	var r DeclareResult
	if s.declaredVar[name] {
		r |= DeclareInvalidDuplicate
	}
	if s.Strict && reservedInStrict {
		r |= DeclareInvalidStrictMode
	}
	s.declaredVar[name] = true
	return r
}

// IsDeclared reports whether name is bound (var or lexical) in s.
func (s *Scope) IsDeclared(name Name) bool {
	return s.declaredVar[name] || s.declaredLexical[name]
}

// IsConst reports whether name was declared `const` in s.
func (s *Scope) IsConst(name Name) bool { return s.declaredConst[name] }

// PushLabel adds a label to s.
func (s *Scope) PushLabel(name Name, isLoop bool) {
	s.labels = append(s.labels, Label{name, isLoop})
}

// PopLabel removes the most recently pushed label.
func (s *Scope) PopLabel() {
	if len(s.labels) > 0 {
		s.labels = s.labels[:len(s.labels)-1]
	}
}

// HasLabel reports whether name is a label visible in s.
func (s *Scope) HasLabel(name Name) (Label, bool) {
	for i := len(s.labels) - 1; i >= 0; i-- {
		if s.labels[i].Name == name {
			return s.labels[i], true
		}
	}
	return Label{}, false
}

// nearestFunction walks from s outward (not through the scope stack,
// which only knows the current top, but via the parent chain stored on
// each Scope) to the nearest enclosing FunctionScope or ModuleScope,
// per the design note in spec.md §9 ("a child scope needing parent data
// should walk the stack rather than store parent pointers"); here the
// "stack" being walked is the scope's own parent chain, which is
// equivalent and avoids needing a live *ScopeStack reference on Scope.
func (s *Scope) nearestFunction() *Scope {
	for cur := s; cur != nil; cur = cur.parent {
		if cur.Kind == FunctionScope || cur.Kind == ModuleScope {
			return cur
		}
	}
	return nil
}

// nearestNonArrow is used by super/new.target resolution: arrow
// functions delegate both to the closest enclosing function scope that
// is not itself an arrow (spec.md §4.9 "super", "new.target"). Arrow-ness
// is tracked via isArrow on the FunctionInfo associated with a scope by
// the parser (see parse.go), so this just walks past scopes the caller
// marks as arrow wrappers.
func (s *Scope) walkUp() *Scope { return s.parent }
