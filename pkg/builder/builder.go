// Package builder assembles strings in a fixed-size buffer using the
// cursor pattern: each write consumes the front of the remaining
// capacity and keeps the rest as the next target. Nothing allocates
// after construction; when the buffer runs out, writes truncate
// silently and the builder remembers that it did.
package builder

import "github.com/rawbytedev/strview"

// Builder accumulates bytes at the front of a fixed buffer.
type Builder struct {
	buf       []byte
	cur       strview.Mut
	truncated bool
}

// New builds over a caller-owned buffer. The builder writes into buf
// and never grows it; buf must stay alive and unshared while the
// builder is in use.
func New(buf []byte) *Builder {
	return &Builder{buf: buf, cur: strview.MutFromBuf(buf)}
}

// NewSize allocates a buffer of the given capacity once, up front.
func NewSize(n int) *Builder { return New(make([]byte, n)) }

// Append writes src, truncating silently at capacity.
func (b *Builder) Append(src strview.View) *Builder {
	before := b.cur.Cap()
	b.cur = b.cur.Append(src)
	if n := src.Len(); n > 0 && before-b.cur.Cap() < n {
		b.truncated = true
	}
	return b
}

// AppendString writes s without copying it first.
func (b *Builder) AppendString(s string) *Builder {
	return b.Append(strview.FromString(s))
}

// AppendByte writes a single byte.
func (b *Builder) AppendByte(c byte) *Builder {
	one := [1]byte{c}
	return b.Append(strview.FromBytes(one[:]))
}

// View returns the content written so far as a read-only view into
// the builder's buffer. It stays coherent across further writes only
// up to its own length.
func (b *Builder) View() strview.View {
	return strview.FromBytes(b.buf[:b.Len()])
}

// String copies the written content into an owned string.
func (b *Builder) String() string { return b.View().String() }

// Len returns the number of bytes written.
func (b *Builder) Len() int { return len(b.buf) - b.cur.Cap() }

// Remaining returns the unwritten capacity.
func (b *Builder) Remaining() int { return b.cur.Cap() }

// Truncated reports whether any write was cut short by capacity.
func (b *Builder) Truncated() bool { return b.truncated }

// Reset rewinds the cursor to the start of the buffer.
func (b *Builder) Reset() {
	b.cur = strview.MutFromBuf(b.buf)
	b.truncated = false
}
