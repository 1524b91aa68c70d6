package strview

// Copy and Append are the only operations that write through a Mut.
// Both cap the bytes written at the destination's capacity; truncation
// is silent and detected by the caller comparing lengths.

// Copy writes min(src.Len, m.Cap) bytes to the front of m and returns
// a read-only view of exactly the bytes written. Invalid when m has a
// nil buffer or src is invalid.
func (m Mut) Copy(src View) View {
	if m.b == nil || src.k == kindInvalid {
		return Invalid
	}
	n := copy(m.b, src.b)
	if n == 0 {
		return Empty
	}
	return View{b: m.b[:n]}
}

// Append writes like Copy but returns the remaining, unwritten
// capacity, so repeated calls thread a cursor through a fixed buffer.
// A nil destination buffer or an invalid or empty src returns the
// segment unchanged with nothing written.
func (m Mut) Append(src View) Mut {
	if m.b == nil || src.k == kindInvalid || len(src.b) == 0 {
		return m
	}
	n := copy(m.b, src.b)
	return Mut{b: m.b[n:]}
}
