package js

import (
	"testing"

	"github.com/tdewolff/test"
)

func TestScopeStackPushPop(t *testing.T) {
	var ss ScopeStack
	test.T(t, ss.Len(), 0)
	s1 := ss.Push(FunctionScope)
	test.T(t, ss.Len(), 1)
	test.That(t, ss.Top() == s1, "Top must return the just-pushed scope")
	ss.Push(BlockScope)
	test.T(t, ss.Len(), 2)
	ss.Pop()
	test.T(t, ss.Len(), 1)
	test.That(t, ss.Top() == s1, "Top must return s1 again after popping the block")
	ss.Pop()
	test.T(t, ss.Len(), 0)
}

func TestScopeStrictInheritsFromParent(t *testing.T) {
	var ss ScopeStack
	top := ss.Push(FunctionScope)
	top.Strict = true
	child := ss.Push(BlockScope)
	test.That(t, child.Strict, "a child scope must inherit Strict from its parent at push time")
}

func TestDeclareVarAndLexicalConflict(t *testing.T) {
	in := NewInterner()
	name := in.Intern("x")

	var ss ScopeStack
	s := ss.Push(FunctionScope)
	test.That(t, s.DeclareVar(name, false).ok(), "first var declaration must succeed")
	test.That(t, s.DeclareVar(name, false).ok(), "redeclaring the same var must be allowed")

	s2 := newScope(BlockScope, nil)
	test.That(t, s2.DeclareLexical(name, false, false).ok(), "first let declaration must succeed")
	r := s2.DeclareLexical(name, false, false)
	test.That(t, !r.ok(), "redeclaring a let in the same scope must fail")
	test.That(t, r&DeclareInvalidDuplicate != 0, "expected DeclareInvalidDuplicate")
}

func TestDeclareReservedInStrictMode(t *testing.T) {
	in := NewInterner()
	name := in.Intern("yield")

	nonStrict := newScope(FunctionScope, nil)
	test.That(t, nonStrict.DeclareVar(name, true).ok(), "a strict-reserved spelling must be bindable outside strict mode")

	strict := newScope(FunctionScope, nil)
	strict.Strict = true
	r := strict.DeclareVar(name, true)
	test.That(t, !r.ok(), "a strict-reserved spelling must not be bindable in a strict scope")
	test.That(t, r&DeclareInvalidStrictMode != 0, "expected DeclareInvalidStrictMode")
}

func TestDeclareLexicalConst(t *testing.T) {
	in := NewInterner()
	name := in.Intern("x")
	s := newScope(BlockScope, nil)
	test.That(t, s.DeclareLexical(name, true, false).ok(), "first const declaration must succeed")
	test.That(t, s.IsConst(name), "expected IsConst to be true")
	test.That(t, s.IsDeclared(name), "expected IsDeclared to be true")
}

func TestScopeCapturedPropagatesThroughPop(t *testing.T) {
	in := NewInterner()
	outerName := in.Intern("outer")

	var ss ScopeStack
	outer := ss.Push(FunctionScope)
	outer.DeclareVar(outerName, false)

	ss.Push(FunctionScope) // inner
	ss.Top().Use(outerName)
	ss.Pop() // pops inner, merges into outer's closedOver

	test.That(t, outer.closedOver[outerName], "expected outer.closedOver to contain the free name from the inner scope")
}

func TestScopeThrowawayNeverLeaksUses(t *testing.T) {
	in := NewInterner()
	name := in.Intern("x")

	var ss ScopeStack
	outer := ss.Push(FunctionScope)
	ss.PushThrowaway(BlockScope)
	ss.Top().Use(name)
	ss.Pop()

	test.That(t, !outer.closedOver[name], "a throwaway scope's uses must never merge into the parent")
}

func TestScopeLabels(t *testing.T) {
	in := NewInterner()
	loopLabel := in.Intern("LOOP")
	s := newScope(FunctionScope, nil)

	_, ok := s.HasLabel(loopLabel)
	test.That(t, !ok, "no label pushed yet")

	s.PushLabel(loopLabel, true)
	lbl, ok := s.HasLabel(loopLabel)
	test.That(t, ok, "expected the label to be visible")
	test.That(t, lbl.IsLoop, "expected IsLoop to be true")

	s.PopLabel()
	_, ok = s.HasLabel(loopLabel)
	test.That(t, !ok, "label must no longer be visible after PopLabel")
}

func TestNearestFunctionWalksPastBlocks(t *testing.T) {
	fn := newScope(FunctionScope, nil)
	block := newScope(BlockScope, fn)
	inner := newScope(BlockScope, block)

	test.That(t, inner.nearestFunction() == fn, "expected nearestFunction to skip intervening block scopes")
}
