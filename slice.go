package strview

// Slice returns the half-open sub-range [start, end) with Python-style
// indices. Negative indices count from the end of the view and
// out-of-range values clamp to [0, Len] instead of erroring. Pass End
// as the end index to mean "through the end of the view". After
// clamping, start >= end yields Empty; Invalid propagates.
func (v View) Slice(start, end int) View {
	if v.k == kindInvalid {
		return Invalid
	}
	n := len(v.b)
	if n == 0 {
		return Empty
	}
	lo := clampIndex(start, n)
	hi := clampIndex(end, n)
	if lo >= hi {
		return Empty
	}
	return View{b: v.b[lo:hi]}
}

// clampIndex resolves a signed index against length n: negative values
// are offset from the end, then the result is clamped to [0, n].
func clampIndex(i, n int) int {
	if i < 0 {
		i += n
		if i < 0 {
			i = 0
		}
	}
	if i > n {
		i = n
	}
	return i
}
