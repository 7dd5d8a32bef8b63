package baseenc

const (
	// defaultAlphabet is substituted when the requested alphabet is
	// unusable. 64 symbols, so the implied bit width is 6.
	defaultAlphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz0123456789-_"

	defaultPadChar = '='

	minBitsPerChar = 1
	maxBitsPerChar = 8

	caseDelta = 'a' - 'A'

	invalidIndex = int16(-1)
)

// Config describes a requested codec layout. Values that cannot be
// honored are corrected rather than rejected; see New.
type Config struct {
	// BitsPerChar is the number of source bits consumed per encoded
	// character. Effective range 1-8.
	BitsPerChar int
	// Alphabet is the ordered symbol set. It must contain at least
	// 1<<BitsPerChar distinct bytes; only the first 1<<BitsPerChar
	// are used.
	Alphabet string
	// RightPadFinalBits left-shifts a short final bit group so the
	// missing low-order bits are zero filled before the alphabet
	// lookup. When false the partial bits are used as-is.
	RightPadFinalBits bool
	// PadFinalGroup appends PadChar until the encoded length is a
	// multiple of the full group size (the smallest character count
	// representing a whole number of bytes).
	PadFinalGroup bool
	// PadChar is the padding symbol. Only its first byte is used.
	// It must not appear in Alphabet. Defaults to '='.
	PadChar string
}

// Codec encodes byte sequences into character sequences and back under
// a fixed configuration. It is immutable and safe for concurrent use.
type Codec struct {
	bits     int
	alphabet string
	rightPad bool
	padGroup bool
	padChar  byte
	adjusted bool

	groupChars int // encoded characters per full group
	groupBytes int // source bytes per full group

	exact  [256]int16 // char -> alphabet index
	folded [256]int16 // exact plus opposite-case aliases
}

// New resolves cfg into a Codec. It never fails: unusable values are
// corrected and the correction is reported through Adjusted.
func New(cfg Config) *Codec {
	bits := cfg.BitsPerChar
	alphabet := cfg.Alphabet
	adjusted := false

	if !usableAlphabet(alphabet) {
		alphabet = defaultAlphabet
		bits = 6
		adjusted = true
	} else {
		if bits < minBitsPerChar {
			bits = minBitsPerChar
			adjusted = true
		} else if bits > maxBitsPerChar {
			bits = maxBitsPerChar
			adjusted = true
		}

		if len(alphabet) < 1<<bits {
			// largest width the alphabet can still satisfy
			b := minBitsPerChar
			for b < maxBitsPerChar && len(alphabet) >= 1<<(b+1) {
				b++
			}
			bits = b
			adjusted = true
		}
	}

	padChar := byte(defaultPadChar)
	if cfg.PadChar != "" {
		padChar = cfg.PadChar[0]
	}

	c := &Codec{
		bits:     bits,
		alphabet: alphabet,
		rightPad: cfg.RightPadFinalBits,
		padGroup: cfg.PadFinalGroup,
		padChar:  padChar,
		adjusted: adjusted,
	}

	l := lcm(bits, 8)
	c.groupChars = l / bits
	c.groupBytes = l / 8

	c.buildTables()

	return c
}

// buildTables precomputes the character lookup tables. The folded table
// aliases the opposite-case form of each letter onto the same index,
// unless that form is itself an alphabet symbol.
func (c *Codec) buildTables() {
	for i := range c.exact {
		c.exact[i] = invalidIndex
		c.folded[i] = invalidIndex
	}

	radix := 1 << c.bits
	for i := 0; i < radix; i++ {
		ch := c.alphabet[i]
		c.exact[ch] = int16(i)
		c.folded[ch] = int16(i)
	}

	for i := 0; i < radix; i++ {
		if alt, ok := foldByte(c.alphabet[i]); ok && c.folded[alt] == invalidIndex {
			c.folded[alt] = int16(i)
		}
	}
}

// Adjusted reports whether New corrected the requested configuration.
// A corrected codec produces a different encoding scheme than the one
// asked for.
func (c *Codec) Adjusted() bool {
	return c.adjusted
}

// Config returns the effective configuration.
func (c *Codec) Config() Config {
	return Config{
		BitsPerChar:       c.bits,
		Alphabet:          c.alphabet,
		RightPadFinalBits: c.rightPad,
		PadFinalGroup:     c.padGroup,
		PadChar:           string(c.padChar),
	}
}

// Radix returns the number of distinct symbols per character.
func (c *Codec) Radix() int {
	return 1 << c.bits
}

// EncodedLength returns the number of characters Encode emits for n
// source bytes, including any final-group padding.
func (c *Codec) EncodedLength(n int) int {
	if n <= 0 {
		return 0
	}

	chars := (n*8 + c.bits - 1) / c.bits
	if c.padGroup {
		if rem := chars % c.groupChars; rem != 0 {
			chars += c.groupChars - rem
		}
	}

	return chars
}

// usableAlphabet reports whether s holds at least 2 distinct bytes with
// no duplicates.
func usableAlphabet(s string) bool {
	if len(s) < 2 || len(s) > 256 {
		return false
	}

	var seen [256]bool
	for i := 0; i < len(s); i++ {
		if seen[s[i]] {
			return false
		}
		seen[s[i]] = true
	}

	return true
}

func foldByte(b byte) (byte, bool) {
	switch {
	case b >= 'a' && b <= 'z':
		return b - caseDelta, true
	case b >= 'A' && b <= 'Z':
		return b + caseDelta, true
	}
	return 0, false
}

func gcd(a, b int) int {
	for b != 0 {
		a, b = b, a%b
	}
	return a
}

func lcm(a, b int) int {
	return a / gcd(a, b) * b
}
