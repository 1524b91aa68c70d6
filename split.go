package strview

// Splits partition a view at a boundary byte and return both halves:
// before is the segment strictly ahead of the boundary, after runs
// from the boundary (inclusive) to the end. When no boundary exists,
// both results are NotFound, so callers can tell "no delimiter
// present" apart from an empty leading segment. Invalid inputs
// propagate to both results.

// SplitAtByte partitions v at the first occurrence of delim.
func (v View) SplitAtByte(delim byte) (before, after View) {
	if v.k == kindInvalid {
		return Invalid, Invalid
	}
	for i, c := range v.b {
		if c == delim {
			return splitAt(v.b, i)
		}
	}
	return NotFound, NotFound
}

// SplitFunc partitions v at the first byte satisfying pred. Unlike the
// trim family, a nil pred here is an argument error: both results are
// Invalid.
func (v View) SplitFunc(pred Pred) (before, after View) {
	if v.k == kindInvalid || pred == nil {
		return Invalid, Invalid
	}
	for i, c := range v.b {
		if pred(c) {
			return splitAt(v.b, i)
		}
	}
	return NotFound, NotFound
}

// SplitNotFunc partitions v at the first byte that fails pred. Same
// nil-pred policy as SplitFunc.
func (v View) SplitNotFunc(pred Pred) (before, after View) {
	if v.k == kindInvalid || pred == nil {
		return Invalid, Invalid
	}
	for i, c := range v.b {
		if !pred(c) {
			return splitAt(v.b, i)
		}
	}
	return NotFound, NotFound
}

func splitAt(b []byte, i int) (View, View) {
	before := Empty
	if i > 0 {
		before = View{b: b[:i]}
	}
	return before, View{b: b[i:]}
}
