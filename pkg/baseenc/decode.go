package baseenc

import (
	"errors"
	"fmt"
)

// ErrInvalidChar is returned by strict decodes when the input contains
// a character that maps to no alphabet symbol. The whole decode call
// fails; no partial output is returned.
var ErrInvalidChar = errors.New("baseenc: invalid character")

// DecodeOpts control character matching during Decode. The zero value
// is case sensitive and lenient.
type DecodeOpts struct {
	// FoldCase lets a letter match the opposite-case form of an
	// alphabet symbol when its exact form is not one.
	FoldCase bool
	// Strict fails the whole decode with ErrInvalidChar on the first
	// unmapped character. When false unmapped characters are skipped.
	Strict bool
}

// Decode returns the bytes encoded by src. Empty input decodes to nil.
//
// Trailing pad characters are stripped first; a pad character anywhere
// else is treated like any other unmapped character. The remaining
// characters are mapped left to right under opts and their bit groups
// reassembled into bytes.
func (c *Codec) Decode(src []byte, opts DecodeOpts) ([]byte, error) {
	n := len(src)
	for n > 0 && src[n-1] == c.padChar {
		n--
	}
	src = src[:n]
	if n == 0 {
		return nil, nil
	}

	// Map characters to alphabet indexes before any bit work so the
	// final meaningful character is known even when lenient decoding
	// drops some of the input.
	vals := make([]byte, 0, n)
	for _, ch := range src {
		idx := c.exact[ch]
		if idx == invalidIndex && opts.FoldCase {
			idx = c.folded[ch]
		}
		if idx == invalidIndex {
			if opts.Strict {
				return nil, fmt.Errorf("%w: %q", ErrInvalidChar, ch)
			}
			continue
		}
		vals = append(vals, byte(idx))
	}
	if len(vals) == 0 {
		return nil, nil
	}

	w := bitWriter{out: make([]byte, 0, len(vals)*c.bits/8)}
	last := len(vals) - 1
	for _, v := range vals[:last] {
		w.write(v, c.bits)
	}

	// The final character may carry fewer than BitsPerChar meaningful
	// bits. They sit in the high positions when the encoder zero
	// filled to the right, in the low positions otherwise.
	v := vals[last]
	width := c.bits
	if excess := (len(vals) * c.bits) % 8; excess != 0 {
		width = c.bits - excess
		if c.rightPad && width > 0 {
			v >>= uint(excess)
		}
	}
	if width > 0 {
		w.write(v, width)
	}

	return w.bytes(), nil
}

// DecodeString returns the bytes encoded by src. Empty input decodes
// to nil.
func (c *Codec) DecodeString(src string, opts DecodeOpts) ([]byte, error) {
	return c.Decode([]byte(src), opts)
}
