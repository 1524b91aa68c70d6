package strview

import "bytes"

// Search operations return a suffix view: from the first matching
// position through the end of the input. That keeps results chainable
// into further search and slice calls without a separate index type.

// FindByte returns the suffix starting at the first occurrence of c.
// Empty when c is absent or v is empty; Invalid propagates.
func (v View) FindByte(c byte) View {
	if v.k == kindInvalid {
		return Invalid
	}
	if i := bytes.IndexByte(v.b, c); i >= 0 {
		return View{b: v.b[i:]}
	}
	return Empty
}

// RFindByte returns the suffix starting at the last occurrence of c.
func (v View) RFindByte(c byte) View {
	if v.k == kindInvalid {
		return Invalid
	}
	if i := bytes.LastIndexByte(v.b, c); i >= 0 {
		return View{b: v.b[i:]}
	}
	return Empty
}

// FindFunc returns the suffix starting at the first byte satisfying
// pred. A nil pred never matches, so the result is Empty.
func (v View) FindFunc(pred Pred) View {
	if v.k == kindInvalid {
		return Invalid
	}
	if pred == nil {
		return Empty
	}
	for i, c := range v.b {
		if pred(c) {
			return View{b: v.b[i:]}
		}
	}
	return Empty
}

// RFindFunc returns the suffix starting at the last byte satisfying
// pred.
func (v View) RFindFunc(pred Pred) View {
	if v.k == kindInvalid {
		return Invalid
	}
	if pred == nil {
		return Empty
	}
	for i := len(v.b) - 1; i >= 0; i-- {
		if pred(v.b[i]) {
			return View{b: v.b[i:]}
		}
	}
	return Empty
}

// FindFirstNotFunc returns the suffix starting at the first byte that
// fails pred. A nil pred never matches, so the very first byte fails
// it and the whole input comes back. Empty when every byte matches or
// v is empty.
func (v View) FindFirstNotFunc(pred Pred) View {
	if v.k == kindInvalid {
		return Invalid
	}
	if len(v.b) == 0 {
		return Empty
	}
	if pred == nil {
		return v
	}
	for i, c := range v.b {
		if !pred(c) {
			return View{b: v.b[i:]}
		}
	}
	return Empty
}

// Find returns the suffix starting at the first occurrence of needle.
// An empty needle matches at the start, returning v itself. Empty when
// needle is absent or longer than v; Invalid when either side is
// invalid.
func (v View) Find(needle View) View {
	if v.k == kindInvalid || needle.k == kindInvalid {
		return Invalid
	}
	if len(needle.b) == 0 {
		return v
	}
	if len(needle.b) > len(v.b) {
		return Empty
	}
	if i := bytes.Index(v.b, needle.b); i >= 0 {
		return View{b: v.b[i:]}
	}
	return Empty
}
