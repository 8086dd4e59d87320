package js

import (
	"testing"

	"github.com/tdewolff/test"
)

func TestNewVMSharesInternerAcrossParses(t *testing.T) {
	vm := NewVM(nil)
	test.That(t, vm.Interner != nil, "expected a non-nil Interner")
	test.That(t, vm.WellKnown != nil, "expected a non-nil WellKnown table")
	test.That(t, vm.Cache != nil, "expected a non-nil shared cache")

	_, err := Parse(vm, []byte("var a = 1;"), Options{})
	test.Error(t, err)

	a1 := vm.Interner.Intern("myVariable")
	_, err = Parse(vm, []byte("var myVariable = 2;"), Options{})
	test.Error(t, err)
	a2 := vm.Interner.Intern("myVariable")
	test.T(t, a1, a2, "the same spelling interned before and after a parse must yield the same Name")
}

func TestParseWithNilVMUsesItsOwnInterner(t *testing.T) {
	result, err := Parse(nil, []byte("var a = 1;"), Options{})
	test.Error(t, err)
	test.That(t, result.Program != nil, "expected a Program")
}

func TestParseReturnsFeatures(t *testing.T) {
	vm := NewVM(nil)
	result, err := Parse(vm, []byte(`"use strict"; class C {}`), Options{})
	test.Error(t, err)
	test.That(t, result.Features&StrictModeFeature != 0, "expected StrictModeFeature")
	test.That(t, result.Features&ClassFeature != 0, "expected ClassFeature")
}

func TestParseFailureReturnsWrappedError(t *testing.T) {
	vm := NewVM(nil)
	_, err := Parse(vm, []byte("var = ;"), Options{})
	test.That(t, err != nil, "expected a parse error")
	_, ok := AsParseError(err)
	test.That(t, ok, "expected the error to unwrap to a *ParseError")
}

func TestOptionsDefaultBuilderIsFull(t *testing.T) {
	vm := NewVM(nil)
	result, err := Parse(vm, []byte("1;"), Options{})
	test.Error(t, err)
	stmt, ok := result.Program.Body[0].(*ExprStmt)
	test.That(t, ok, "expected a *ExprStmt")
	_, ok = stmt.Expr.(*NumberLiteral)
	test.That(t, ok, "expected a real *NumberLiteral from the default FullBuilder")
}
