// Package strview provides zero-allocation string views over
// caller-owned byte buffers: reference, compare, search, slice, trim,
// split and fill byte ranges without allocating or copying except on
// explicit request.
//
// A View never owns, frees or tracks the memory it points into. The
// caller must keep the backing buffer alive for as long as any view
// derived from it; the library has no way to detect a dangling view.
// All operations are single-byte (ASCII-agnostic) and pure: each takes
// views in and returns a new view over the same backing storage.
package strview

import (
	"github.com/rawbytedev/strview/internal/common"
)

type kind uint8

const (
	kindView kind = iota // ordinary view, possibly empty
	kindNotFound
	kindInvalid
)

// View is a read-only, non-owning byte range. The zero value is a
// valid empty view. Views carry an explicit tag distinguishing
// ordinary data from the NotFound and Invalid outcomes, so callers
// never have to inspect pointer bits.
type View struct {
	b []byte
	k kind
}

// Mut is a writable buffer segment. Its capacity expresses remaining
// space, not existing content, and shrinks only through Copy and
// Append.
type Mut struct {
	b []byte
}

// Pred tests a single byte. Used by the find, trim and split families.
// Capture any needed state in the closure.
type Pred func(byte) bool

// End, passed as the end index of Slice, clamps to the view's length
// so callers can say "rest of the string" without knowing it.
const End = int(^uint(0) >> 1)

var (
	// Empty is a valid zero-length view.
	Empty = View{}

	// NotFound reports that a search or split located nothing. It is
	// valid and zero-length, so Eq cannot tell it from Empty; use
	// IsNotFound to distinguish the two.
	NotFound = View{k: kindNotFound}

	// Invalid marks an unusable view. Operations receiving one return
	// it without attempting partial work.
	Invalid = View{k: kindInvalid}
)

// FromString returns a view aliasing s without copying. The view is
// read-only, which is what keeps the aliasing sound; it must not
// outlive s.
func FromString(s string) View {
	if len(s) == 0 {
		return Empty
	}
	return View{b: common.S2B(s)}
}

// FromBytes returns a view over b. A nil or empty slice yields Empty.
func FromBytes(b []byte) View {
	if len(b) == 0 {
		return Empty
	}
	return View{b: b}
}

// FromCStr views b up to but not including the first NUL byte,
// mirroring C string construction. Without a terminator the whole
// buffer is viewed; a nil source yields Empty.
func FromCStr(b []byte) View {
	for i, c := range b {
		if c == 0 {
			return FromBytes(b[:i])
		}
	}
	return FromBytes(b)
}

// MutFromBuf wraps b as writable capacity. Construction never fails;
// a nil buffer produces a Mut that Copy and Append reject at the point
// of writing.
func MutFromBuf(b []byte) Mut { return Mut{b: b} }

// Buf exposes the segment's underlying buffer.
func (m Mut) Buf() []byte { return m.b }

// Cap returns the remaining writable capacity.
func (m Mut) Cap() int { return len(m.b) }

// IsValid reports whether v is usable. Only the Invalid sentinel and
// views derived from it fail this; Empty and NotFound are valid.
func (v View) IsValid() bool { return v.k != kindInvalid }

// IsEmpty reports a valid zero-length view. Invalid is not empty.
func (v View) IsEmpty() bool { return v.k != kindInvalid && len(v.b) == 0 }

// IsNotFound distinguishes a failed search or split from an empty
// match. Eq deliberately treats NotFound and Empty as equal, so this
// is the test callers use instead of identity tricks.
func (v View) IsNotFound() bool { return v.k == kindNotFound }

// IsInvalid reports the Invalid sentinel.
func (v View) IsInvalid() bool { return v.k == kindInvalid }

// Len returns the number of viewed bytes, or -1 for Invalid.
func (v View) Len() int {
	if v.k == kindInvalid {
		return -1
	}
	return len(v.b)
}

// Bytes exposes the underlying range without copying. Nil for empty
// or invalid views.
func (v View) Bytes() []byte {
	if v.k == kindInvalid || len(v.b) == 0 {
		return nil
	}
	return v.b
}

// String copies the viewed bytes into an owned string. This is the
// explicit-copy escape hatch; see UnsafeString for the aliasing
// variant.
func (v View) String() string {
	if v.k == kindInvalid || len(v.b) == 0 {
		return ""
	}
	return string(v.b)
}
