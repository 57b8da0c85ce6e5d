// Package carousel holds the circular focus engine behind the sliding scale
// view: which item is focused, how far every other item sits from it around
// the ring, and what each of them should look like.
//
// Nothing here draws or animates. Render adapters read a Frame, paint it, and
// forward user input back through OnItemActivated and
// OnAutoplayToggleRequested.
package carousel

// Offset returns the signed shortest distance around a ring of itemCount
// slots from the focused slot to index. The result lies in
// [-itemCount/2, itemCount/2]; only the focused index maps to 0.
func Offset(itemCount, focused, index int) int {
	raw := index - focused
	// compare against the real half so even rings keep one side of the tie
	if 2*raw > itemCount {
		raw -= itemCount
	}
	if 2*raw < -itemCount {
		raw += itemCount
	}
	return raw
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
