package totp

import (
	"crypto/rand"
	"fmt"

	"github.com/jhahn/go-2fa/pkg/baseenc"
)

// secretLen is the raw secret size in bytes. 10 bytes encode to
// exactly 16 base32 characters with no padding.
const secretLen = 10

// base32Codec is the conventional base32 profile used for shared
// secrets: the profile authenticator apps expect.
var base32Codec = baseenc.New(baseenc.Config{
	BitsPerChar:       5,
	Alphabet:          "ABCDEFGHIJKLMNOPQRSTUVWXYZ234567",
	RightPadFinalBits: true,
	PadFinalGroup:     true,
	PadChar:           "=",
})

// GenerateSecret generates a cryptographically random shared secret,
// returned as a 16-character base32 string suitable for Config.Secret.
func GenerateSecret() (string, error) {
	buf := make([]byte, secretLen)
	if _, err := rand.Read(buf); err != nil {
		return "", fmt.Errorf("totp: failed to generate random secret: %w", err)
	}

	return string(base32Codec.Encode(buf)), nil
}

// decodeSecret recovers the raw key bytes from a base32 secret.
// Letter case is folded so hand-typed secrets survive.
func decodeSecret(secret string) ([]byte, error) {
	key, err := base32Codec.DecodeString(secret, baseenc.DecodeOpts{
		FoldCase: true,
		Strict:   true,
	})
	if err != nil {
		return nil, fmt.Errorf("%w: secret must be valid base32: %v", ErrInvalidConfig, err)
	}
	if len(key) == 0 {
		return nil, fmt.Errorf("%w: secret must not be empty", ErrInvalidConfig)
	}

	return key, nil
}
