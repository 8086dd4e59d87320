package js

import (
	"testing"

	"github.com/tdewolff/test"
)

func mustParse(t *testing.T, src string, opts Options) Result {
	t.Helper()
	vm := NewVM(nil)
	result, err := Parse(vm, []byte(src), opts)
	test.Error(t, err)
	return result
}

func mustFail(t *testing.T, src string, opts Options) error {
	t.Helper()
	vm := NewVM(nil)
	_, err := Parse(vm, []byte(src), opts)
	test.That(t, err != nil, "expected a parse error for "+src)
	return err
}

func TestParseStatements(t *testing.T) {
	var tests = []struct {
		src      string
		expected string
	}{
		{"var a = 1;", "var ...;"},
		{"let a = 1;", "let ...;"},
		{"const a = 1;", "const ...;"},
		{";", ";"},
		{"if (a) b; else c;", "if (a) b; else c;"},
		{"while (a) b;", "while (a) b;"},
		{"do b; while (a);", "do b; while (a)"},
	}
	for _, tt := range tests {
		t.Run(tt.src, func(t *testing.T) {
			result := mustParse(t, tt.src, Options{})
			test.That(t, len(result.Program.Body) == 1, "expected one top-level statement")
			test.String(t, result.Program.Body[0].String(), tt.expected)
		})
	}
}

func TestParseVarDeclarators(t *testing.T) {
	result := mustParse(t, "var a = 1, b = 2;", Options{})
	decl, ok := result.Program.Body[0].(*VarDeclStmt)
	test.That(t, ok, "expected *VarDeclStmt")
	test.That(t, decl.Kind == VarToken, "expected VarToken kind")
	test.T(t, len(decl.Decls), 2)
}

func TestParseDestructuring(t *testing.T) {
	var tests = []string{
		"let [a, b] = [1, 2];",
		"let [a, ...rest] = [1, 2, 3];",
		"let {a, b} = {a: 1, b: 2};",
		"let {a: b = 2} = {};",
		"let [a = 1, [b, c]] = x;",
	}
	for _, src := range tests {
		t.Run(src, func(t *testing.T) {
			result := mustParse(t, src, Options{})
			test.That(t, result.Features&DestructuringFeature != 0, "expected DestructuringFeature for "+src)
		})
	}
}

func TestParseForLoops(t *testing.T) {
	_ = mustParse(t, "for (var i = 0; i < 10; i++) {}", Options{})
	_ = mustParse(t, "for (var k in obj) {}", Options{})
	_ = mustParse(t, "for (var v of arr) {}", Options{})
	_ = mustParse(t, "for (const v of arr) {}", Options{})

	result := mustParse(t, "for (var k in obj) {}", Options{})
	_, ok := result.Program.Body[0].(*ForInStmt)
	test.That(t, ok, "expected *ForInStmt")

	result = mustParse(t, "for (var v of arr) {}", Options{})
	_, ok = result.Program.Body[0].(*ForOfStmt)
	test.That(t, ok, "expected *ForOfStmt")
}

func TestParseForAwaitOf(t *testing.T) {
	result := mustParse(t, "async function f() { for await (const x of y) {} }", Options{})
	test.That(t, result.Features&AsyncFeature != 0, "expected AsyncFeature")
}

func TestParseArrowFunctions(t *testing.T) {
	var tests = []string{
		"var f = x => x + 1;",
		"var f = (x, y) => x + y;",
		"var f = () => {};",
		"var f = async x => x;",
		"var f = (x = 1, ...rest) => rest;",
	}
	for _, src := range tests {
		t.Run(src, func(t *testing.T) {
			result := mustParse(t, src, Options{})
			test.That(t, result.Features&ArrowFunctionFeature != 0, "expected ArrowFunctionFeature for "+src)
		})
	}
}

func TestParseLabelledVsArrowAmbiguity(t *testing.T) {
	// "a" alone followed by a colon is a labelled statement, not the
	// start of an (invalid) arrow parameter list.
	result := mustParse(t, "a: b;", Options{})
	_, ok := result.Program.Body[0].(*LabelledStmt)
	test.That(t, ok, "expected *LabelledStmt")
}

func TestParseGenerators(t *testing.T) {
	result := mustParse(t, "function* gen() { yield 1; yield* other(); }", Options{})
	test.That(t, result.Features&GeneratorFeature != 0, "expected GeneratorFeature")
}

func TestParseClasses(t *testing.T) {
	result := mustParse(t, "class Base {}", Options{})
	test.That(t, result.Features&ClassFeature != 0, "expected ClassFeature")

	result = mustParse(t, `
		class Derived extends Base {
			constructor() {
				super();
			}
			method() {}
			static staticMethod() {}
			get prop() { return 1; }
			set prop(v) {}
		}
	`, Options{})
	decl, ok := result.Program.Body[0].(*ClassDecl)
	test.That(t, ok, "expected *ClassDecl")
	test.That(t, decl.Info.Constructor != nil, "expected a constructor")
	test.That(t, decl.Info.ConstructorKind == DerivedConstructor, "expected DerivedConstructor for a class with extends")
}

func TestParseClassWithoutSuperCallIsStillValidSyntax(t *testing.T) {
	// Omitting the super() call is a semantic (runtime TDZ) concern, not
	// a grammar error, so this must still parse.
	_ = mustParse(t, "class Derived extends Base { constructor() {} }", Options{})
}

func TestParseDirectivePrologueRetroactiveStrict(t *testing.T) {
	result := mustParse(t, `
		"use strict";
		var x = 1;
	`, Options{})
	test.That(t, result.Features&StrictModeFeature != 0, "expected StrictModeFeature once the directive prologue retroactively set strict mode")

	// eval is only forbidden as a binding name once the directive prologue
	// has retroactively made the whole program strict; this only fails
	// because that retroaction actually took effect before the second
	// statement was parsed.
	mustFail(t, `
		"use strict";
		var eval = 1;
	`, Options{})
}

func TestDirectivePrologueRejectsOctalInStrictMode(t *testing.T) {
	mustFail(t, `"use strict"; var x = 010;`, Options{})
}

func TestStrictModeForbidsNamingAFunctionEval(t *testing.T) {
	err := mustFail(t, `"use strict"; function eval(){}`, Options{})
	test.That(t, err.Error() != "", "expected a non-empty error message")
}

func TestFunctionDeclarationCannotShadowLexicalOfSameName(t *testing.T) {
	mustFail(t, `let f; function f(){}`, Options{})
	mustParse(t, `function f(){} function f(){}`, Options{})
}

func TestStrictModeForbidsReservedWordBinding(t *testing.T) {
	mustFail(t, `"use strict"; var yield = 1;`, Options{})
	mustFail(t, `"use strict"; function static(){}`, Options{})
	mustParse(t, `var yield = 1;`, Options{})
}

func TestObjectLiteralForbidsDuplicateProto(t *testing.T) {
	mustFail(t, `var o = {__proto__: null, __proto__: null};`, Options{})
	mustFail(t, `var o = {"__proto__": null, __proto__: null};`, Options{})
	mustParse(t, `var o = {__proto__: null, ["__proto__"]: null};`, Options{})
	mustParse(t, `var o = {__proto__, __proto__};`, Options{})
}

func TestParseWithStatementForbiddenInStrictMode(t *testing.T) {
	mustFail(t, `"use strict"; with (a) {}`, Options{})
	_ = mustParse(t, "with (a) {}", Options{})
}

func TestParseModules(t *testing.T) {
	result := mustParse(t, `
		import def, { a, b as c } from "mod";
		export { def };
		export default function() {};
	`, Options{Mode: ModuleAnalyzeMode})
	test.That(t, result.Features&ModuleFeature != 0, "expected ModuleFeature")
}

func TestParseOptionalChainingAndNullish(t *testing.T) {
	result := mustParse(t, "var x = a?.b?.c ?? d;", Options{})
	test.That(t, result.Features&OptionalChainingFeature != 0, "expected OptionalChainingFeature")
	test.That(t, result.Features&NullishCoalescingFeature != 0, "expected NullishCoalescingFeature")
}

func TestParseExponentiation(t *testing.T) {
	result := mustParse(t, "var x = 2 ** 3 ** 2;", Options{})
	test.That(t, result.Features&ExponentiationFeature != 0, "expected ExponentiationFeature")
}

func TestParseTemplateLiteral(t *testing.T) {
	result := mustParse(t, "var x = `a${b}c`;", Options{})
	test.That(t, result.Features&TemplateLiteralFeature != 0, "expected TemplateLiteralFeature")
}

func TestParseSpread(t *testing.T) {
	result := mustParse(t, "var x = [...a, ...b]; f(...args);", Options{})
	test.That(t, result.Features&SpreadFeature != 0, "expected SpreadFeature")
}

func TestParseSyntaxOnlyBuilderMatchesFullBuilder(t *testing.T) {
	src := "function f(a, b) { return a + b; }"

	full := mustParse(t, src, Options{})
	test.That(t, full.Program != nil, "expected a Program from the full builder")

	syn := mustParse(t, src, Options{Builder: NewSyntaxOnlyBuilder()})
	test.That(t, syn.Program != nil, "expected a Program from the syntax-only builder")
}

func TestParseFunctionCacheReplay(t *testing.T) {
	src := `
		function big() {
			var a = 1, b = 2, c = 3, d = 4, e = 5, f = 6, g = 7, h = 8;
			return a + b + c + d + e + f + g + h;
		}
		big();
		big();
	`
	vm := NewVM(nil)
	first, err := Parse(vm, []byte(src), Options{})
	test.Error(t, err)
	test.That(t, !first.FunctionDeclarations[0].FromCache, "the first parse must not find a cache entry")

	second, err := Parse(vm, []byte(src), Options{})
	test.Error(t, err)
	test.That(t, second.FunctionDeclarations[0].FromCache, "the second parse must be served from the cache")
}

func TestParseErrorsReportPosition(t *testing.T) {
	err := mustFail(t, "var = 1;", Options{})
	pe, ok := AsParseError(err)
	test.That(t, ok, "expected a *ParseError")
	test.That(t, pe.Pos.Line >= 1, "expected a positive line number")
}
