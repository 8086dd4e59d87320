package parse

import (
	"testing"

	"github.com/tdewolff/test"
)

func TestCopy(t *testing.T) {
	foo := []byte("abc")
	bar := Copy(foo)
	foo[0] = 'b'
	test.String(t, string(foo), "bbc")
	test.String(t, string(bar), "abc")
}

func TestEqual(t *testing.T) {
	test.That(t, Equal([]byte("abc"), []byte("abc")))
	test.That(t, !Equal([]byte("abc"), []byte("abd")))
	test.That(t, !Equal([]byte("ab"), []byte("abc")))
}

func TestNumber(t *testing.T) {
	var tests = []struct {
		s string
		n int
	}{
		{"5", 1},
		{"5.2", 3},
		{"+5", 2},
		{"-5.2e-10", 8},
		{".04", 3},
		{"5e99", 4},
		{"5.", 1},
		{"", 0},
		{"e5", 0},
		{"+", 0},
	}
	for _, tt := range tests {
		t.Run(tt.s, func(t *testing.T) {
			test.T(t, Number([]byte(tt.s)), tt.n)
		})
	}
}
