package baseenc

// bitReader pulls fixed-width bit groups from a byte slice, most
// significant bit first. A group may span two adjacent bytes.
type bitReader struct {
	src []byte
	pos int // bit offset from the start of src
}

// remaining returns the number of unread bits.
func (r *bitReader) remaining() int {
	return len(r.src)*8 - r.pos
}

// read pulls the next min(width, remaining) bits into the low bits of
// the returned value, preserving their order, and reports how many
// were available. width must be in [1, 8].
func (r *bitReader) read(width int) (byte, int) {
	got := width
	if rem := r.remaining(); rem <= 0 {
		return 0, 0
	} else if got > rem {
		got = rem
	}

	i := r.pos >> 3
	off := r.pos & 7
	r.pos += got

	avail := 8 - off
	cur := r.src[i] & (0xFF >> off)
	if got <= avail {
		return cur >> (avail - got), got
	}

	// group spans into the next byte
	need := got - avail
	return cur<<need | r.src[i+1]>>(8-need), got
}

// bitWriter packs variable-width bit groups back into bytes, most
// significant bit first. Trailing bits that never complete a byte are
// discarded.
type bitWriter struct {
	out []byte
	acc uint16
	n   int // bits buffered in acc, always < 8 between writes
}

// write appends the low width bits of v. width must be in [0, 8].
func (w *bitWriter) write(v byte, width int) {
	w.acc = w.acc<<width | uint16(v)&(uint16(1)<<width-1)
	w.n += width
	for w.n >= 8 {
		w.n -= 8
		w.out = append(w.out, byte(w.acc>>w.n))
	}
}

// bytes returns the completed bytes written so far.
func (w *bitWriter) bytes() []byte {
	return w.out
}
