package js

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/tdewolff/test"
)

// cachedFunctionShape is the subset of FunctionInfo the cache-consistency
// property (spec.md §8) actually promises stays identical across a
// from-source parse and a replayed-from-cache parse of the same
// source: everything describing the function's own shape, not how its
// body was obtained (Body/FromCache/EndLine/EndOffset differ by
// construction between the two and are deliberately excluded).
type cachedFunctionShape struct {
	NameText    string
	ParamCount  int
	IsArrow     bool
	IsGenerator bool
	IsAsync     bool
	IsMethod    bool
	Strict      bool
	Captured    []Name
}

func shapeOf(info *FunctionInfo) cachedFunctionShape {
	return cachedFunctionShape{
		NameText:    info.NameText,
		ParamCount:  info.ParamCount,
		IsArrow:     info.IsArrow,
		IsGenerator: info.IsGenerator,
		IsAsync:     info.IsAsync,
		IsMethod:    info.IsMethod,
		Strict:      info.Strict,
		Captured:    info.Captured,
	}
}

// TestCacheReplayFunctionShapeIsIdentical parses one source twice against
// a shared VM cache and diffs, with go-cmp, the cache-relevant fields of
// the function recovered each time (spec.md §8 Testable Property "Cache
// consistency"). Grounded on google-starlark-go's
// starlark/value_test.go use of cmp.Diff for deep structural
// comparison in a table-free single-value assertion.
func TestCacheReplayFunctionShapeIsIdentical(t *testing.T) {
	src := `
		function big(x, y) {
			var a = 1, b = 2, c = 3, d = 4, e = 5, f = 6, g = 7, h = 8;
			return x + y + a + b + c + d + e + f + g + h;
		}
	`
	vm := NewVM(nil)

	first, err := Parse(vm, []byte(src), Options{})
	test.Error(t, err)
	test.T(t, len(first.FunctionDeclarations), 1)
	firstInfo := first.FunctionDeclarations[0]
	test.That(t, !firstInfo.FromCache, "the first parse of a function must not be served from the cache")
	test.That(t, firstInfo.Body != nil, "the first parse must produce a real function body")

	second, err := Parse(vm, []byte(src), Options{})
	test.Error(t, err)
	test.T(t, len(second.FunctionDeclarations), 1)
	secondInfo := second.FunctionDeclarations[0]
	test.That(t, secondInfo.FromCache, "re-parsing the same source against the same cache must hit the cache")
	test.That(t, secondInfo.Body == nil, "a cache-replayed function must be a body-less skeleton")

	if diff := cmp.Diff(shapeOf(firstInfo), shapeOf(secondInfo)); diff != "" {
		t.Errorf("cache replay changed the function's shape (-first +second):\n%s", diff)
	}
}
