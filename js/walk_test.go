package js

import (
	"testing"

	"github.com/tdewolff/test"
)

type countingVisitor struct {
	count int
}

func (v *countingVisitor) Enter(n interface{}) Visitor {
	v.count++
	return v
}

func TestWalkVisitsEveryNode(t *testing.T) {
	vm := NewVM(nil)
	result, err := Parse(vm, []byte("if (a) { b(c, d); } else { e; }"), Options{})
	test.Error(t, err)

	v := &countingVisitor{}
	Walk(v, result.Program)
	test.That(t, v.count > 5, "expected Walk to visit more than the top-level statement alone")
}

type stoppingVisitor struct {
	calls int
}

func (v *stoppingVisitor) Enter(n interface{}) Visitor {
	if _, ok := n.(*CallExpr); ok {
		v.calls++
		return nil // skip descending into the call's arguments
	}
	return v
}

func TestWalkEnterNilSkipsChildren(t *testing.T) {
	vm := NewVM(nil)
	result, err := Parse(vm, []byte("f(g());"), Options{})
	test.Error(t, err)

	v := &stoppingVisitor{}
	Walk(v, result.Program)
	test.T(t, v.calls, 1, "expected to visit the outer call expression but not the inner g() argument")
}

func TestWalkOverNilProgramIsANoop(t *testing.T) {
	v := &countingVisitor{}
	Walk(v, nil)
	test.T(t, v.count, 0)
}
