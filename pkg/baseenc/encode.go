package baseenc

// Encode returns the encoded form of src, or nil when src is empty.
//
// Each output character represents the next BitsPerChar source bits,
// mapped through the alphabet by numeric value. Without final-group
// padding the output length is exactly ceil(len(src)*8/BitsPerChar).
func (c *Codec) Encode(src []byte) []byte {
	if len(src) == 0 {
		return nil
	}

	dst := make([]byte, 0, c.EncodedLength(len(src)))
	r := bitReader{src: src}

	for {
		v, got := r.read(c.bits)
		if got == 0 {
			break
		}
		if got < c.bits && c.rightPad {
			// zero fill the missing low bits of the final group
			v <<= uint(c.bits - got)
		}
		dst = append(dst, c.alphabet[v])
	}

	if c.padGroup {
		for len(dst)%c.groupChars != 0 {
			dst = append(dst, c.padChar)
		}
	}

	return dst
}

// EncodeString returns the encoded form of src, or "" when src is
// empty.
func (c *Codec) EncodeString(src string) string {
	return string(c.Encode([]byte(src)))
}
