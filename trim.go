package strview

// TrimLeft drops the leading run of bytes matching pred. A nil pred
// trims nothing and returns v unchanged; contrast the split-by-
// predicate family, where a nil pred is an argument error.
func (v View) TrimLeft(pred Pred) View {
	if v.k == kindInvalid {
		return Invalid
	}
	if len(v.b) == 0 || pred == nil {
		return v
	}
	i := 0
	for i < len(v.b) && pred(v.b[i]) {
		i++
	}
	if i == len(v.b) {
		return Empty
	}
	return View{b: v.b[i:]}
}

// TrimRight drops the trailing run of bytes matching pred. Same nil
// policy as TrimLeft.
func (v View) TrimRight(pred Pred) View {
	if v.k == kindInvalid {
		return Invalid
	}
	if len(v.b) == 0 || pred == nil {
		return v
	}
	j := len(v.b)
	for j > 0 && pred(v.b[j-1]) {
		j--
	}
	if j == 0 {
		return Empty
	}
	return View{b: v.b[:j]}
}

// Trim drops matching runs from both ends. An entirely-matching input
// collapses to Empty.
func (v View) Trim(pred Pred) View {
	return v.TrimLeft(pred).TrimRight(pred)
}
