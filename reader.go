package parse // import "github.com/dewolfson/ecmaparse"

// Buffer is a cursor over an in-memory byte slice, supporting
// arbitrary-offset lookahead and absolute rewinds. Unlike the teacher's
// io.Reader-backed ShiftBuffer (which accumulates a growing selection
// and periodically shifts it off to reclaim buffer space), the whole
// source is available up front here: an ECMAScript source text is
// handed to the parser as a single []byte, not streamed, so there is
// nothing to refill and no reason to track a selection separately from
// the read cursor.
type Buffer struct {
	data []byte
	pos  int
}

// NewBuffer returns a Buffer positioned at the start of data.
func NewBuffer(data []byte) *Buffer {
	return &Buffer{data: data}
}

// Peek returns the byte i positions ahead of the cursor, or 0 past the
// end of input (i may be negative to look behind the cursor).
func (b *Buffer) Peek(i int) byte {
	j := b.pos + i
	if j < 0 || j >= len(b.data) {
		return 0
	}
	return b.data[j]
}

// Move advances the cursor by n bytes (n may be negative, e.g. to back
// out of a failed speculative scan by a known amount).
func (b *Buffer) Move(n int) { b.pos += n }

// MoveTo sets the cursor to an absolute offset, used both to rewind a
// failed token scan back to its start and to restore a parser
// SavePoint.
func (b *Buffer) MoveTo(pos int) { b.pos = pos }

// Pos returns the cursor's current absolute offset.
func (b *Buffer) Pos() int { return b.pos }

// Offset is an alias for Pos kept for call sites that read more
// naturally as "how far into the stream am I" than "where is the
// selection".
func (b *Buffer) Offset() int { return b.pos }

// Len returns the total length of the underlying source.
func (b *Buffer) Len() int { return len(b.data) }

// Bytes returns the entire underlying source; callers slice it
// themselves against offsets captured from Pos.
func (b *Buffer) Bytes() []byte { return b.data }
