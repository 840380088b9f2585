package budoux

// contextWindow is the six-slot sliding window of (code point, byte offset)
// pairs the scoring function examines. Slot 3 is the current character;
// slots 0..2 are the three preceding characters and slots 4..5 are the two
// succeeding characters. A zero code point in any slot means "no character
// here": either the stream hasn't produced enough input yet, or it has
// been fully drained.
type contextWindow struct {
	cp  [6]uint32
	off [6]int
}

// push shifts every slot left by one and appends a new (code point, offset)
// pair at slot 5. offset is the byte offset of the first byte of cp.
func (w *contextWindow) push(cp uint32, offset int) {
	w.cp[0], w.cp[1], w.cp[2], w.cp[3], w.cp[4] = w.cp[1], w.cp[2], w.cp[3], w.cp[4], w.cp[5]
	w.off[0], w.off[1], w.off[2], w.off[3], w.off[4] = w.off[1], w.off[2], w.off[3], w.off[4], w.off[5]
	w.cp[5] = cp
	w.off[5] = offset
}

// current reports whether slot 3 holds a real character and, if so, its
// byte offset (the position of a boundary falling immediately before it).
func (w *contextWindow) current() (offset int, ok bool) {
	return w.off[3], w.cp[3] != 0
}
