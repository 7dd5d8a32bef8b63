// Package baseenc implements a generic binary-to-text codec that packs
// bytes into characters drawn from an arbitrary alphabet at a fixed
// number of bits per character.
//
// Base16, base32, and base64-style encodings are all expressible as
// configurations of the same codec: a bit width between 1 and 8, an
// ordered alphabet of at least 2^bits symbols, and a padding policy for
// the final, possibly incomplete, character group.
//
// # Configuration
//
// A Codec is built once from a Config and then reused for any number of
// encode and decode calls:
//
//	codec := baseenc.New(baseenc.Config{
//	    BitsPerChar:       5,
//	    Alphabet:          "ABCDEFGHIJKLMNOPQRSTUVWXYZ234567",
//	    RightPadFinalBits: true,
//	    PadFinalGroup:     true,
//	    PadChar:           "=",
//	})
//
//	text := codec.EncodeString("f") // "MY======"
//
// New never fails. Configurations that cannot be honored are corrected:
// an unusable alphabet is replaced with a built-in 64-symbol default,
// out-of-range bit widths are clamped to [1, 8], and a bit width too
// wide for the alphabet is reduced to the largest width the alphabet
// supports. Corrections change the effective encoding scheme, so they
// are reported through Codec.Adjusted; callers that care about drift
// between the requested and effective layout should check it.
//
// # Decoding
//
// Decode runs left to right over the input after stripping trailing pad
// characters. DecodeOpts select the matching policy: FoldCase lets a
// letter match the opposite-case form of an alphabet symbol, and Strict
// fails the whole call with ErrInvalidChar on the first character that
// maps to no symbol. The zero DecodeOpts value is case sensitive and
// lenient (unmapped characters are skipped).
//
//	raw, err := codec.DecodeString("my======", baseenc.DecodeOpts{FoldCase: true})
//
// For any Codec c and byte slice b, c.Decode(c.Encode(b)) returns b
// bit for bit.
//
// # Thread Safety
//
// A Codec is immutable after construction. The character tables,
// including opposite-case aliases, are precomputed by New, so a single
// Codec may be shared freely across goroutines.
package baseenc
