package js

import (
	"testing"

	"github.com/tdewolff/test"
)

func TestInternerAssignsStableNames(t *testing.T) {
	in := NewInterner()
	a1 := in.Intern("foo")
	b := in.Intern("bar")
	a2 := in.Intern("foo")

	test.T(t, a1, a2, "same spelling must yield the same Name")
	test.That(t, a1 != b, "different spellings must yield different Names")
	test.String(t, in.String(a1), "foo")
	test.String(t, in.String(b), "bar")
}

func TestInternerZeroNameIsSentinel(t *testing.T) {
	in := NewInterner()
	test.String(t, in.String(Name(0)), "")
	test.That(t, in.Intern("foo") != Name(0), "a real identifier must never get Name(0)")
}

func TestInternBytesMatchesIntern(t *testing.T) {
	in := NewInterner()
	a := in.Intern("hello")
	b := in.InternBytes([]byte("hello"))
	test.T(t, a, b)
}

func TestWellKnownNamesAreDistinct(t *testing.T) {
	in := NewInterner()
	wk := NewWellKnown(in)
	test.That(t, wk.Get != wk.Set, "get and set must intern to different Names")
	test.T(t, wk.Eval, in.Intern("eval"))
	test.T(t, wk.UseStrict, in.Intern("use strict"))
}

func TestArenaOwnsItsOwnInterner(t *testing.T) {
	a := NewArena()
	test.That(t, a.Interner() != nil, "expected a non-nil Interner")
	n := a.Interner().Intern("x")
	test.String(t, a.Interner().String(n), "x")
}
