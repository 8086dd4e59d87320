package parse // import "github.com/dewolfson/ecmaparse"

// Copy returns a copy of src.
func Copy(src []byte) (dst []byte) {
	dst = make([]byte, len(src))
	copy(dst, src)
	return
}

// Equal returns true when s and match are equal byte slices.
func Equal(s, match []byte) bool {
	if len(s) != len(match) {
		return false
	}
	for i, c := range match {
		if s[i] != c {
			return false
		}
	}
	return true
}
