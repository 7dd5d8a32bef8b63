package totp

import (
	"context"
	"crypto/hmac"
	"crypto/sha1"
	"crypto/subtle"
	"encoding/binary"
	"errors"
	"fmt"
	"net/url"
	"strings"
	"time"
)

// Common errors returned by the TOTP authenticator.
var (
	// ErrInvalidCode indicates the provided passcode is invalid.
	ErrInvalidCode = errors.New("totp: invalid code")
	// ErrInvalidConfig indicates the configuration is invalid.
	ErrInvalidConfig = errors.New("totp: invalid configuration")
	// ErrNilAuthenticator indicates a nil authenticator was used.
	ErrNilAuthenticator = errors.New("totp: authenticator is nil")
)

// Config holds TOTP authenticator configuration.
type Config struct {
	// Secret is the base32-encoded shared secret key (required).
	Secret string
	// Issuer is the name of the issuing organization (required).
	// It must not contain a colon, which separates the issuer from
	// the account name in provisioning labels.
	Issuer string
	// AccountName is the account identifier (required). It must not
	// contain a colon.
	AccountName string
	// Digits specifies the passcode length (6, 7, or 8).
	// Default: 6
	Digits uint
	// Period specifies the time step in seconds.
	// Default: 30
	Period uint
	// Skew specifies the number of time steps checked before and
	// after the current one during verification.
	// Default: 1
	Skew uint
}

// validate checks that the configuration is valid.
func (c Config) validate() error {
	if strings.TrimSpace(c.Secret) == "" {
		return fmt.Errorf("%w: secret must not be empty", ErrInvalidConfig)
	}

	if _, err := decodeSecret(c.Secret); err != nil {
		return err
	}

	if err := validateLabelPart("account name", c.AccountName); err != nil {
		return err
	}
	if err := validateLabelPart("issuer", c.Issuer); err != nil {
		return err
	}

	if c.Digits != 0 && (c.Digits < 6 || c.Digits > 8) {
		return fmt.Errorf("%w: digits must be 6, 7, or 8", ErrInvalidConfig)
	}

	return nil
}

// validateLabelPart rejects values that cannot appear in an otpauth
// label: empty strings and strings containing the label separator.
func validateLabelPart(field, value string) error {
	if value == "" {
		return fmt.Errorf("%w: %s must not be empty", ErrInvalidConfig, field)
	}
	if strings.ContainsRune(value, ':') {
		return fmt.Errorf("%w: %s must not contain ':'", ErrInvalidConfig, field)
	}
	return nil
}

// Authenticator derives and verifies TOTP passcodes for one enrolled
// secret. It is safe for concurrent use.
type Authenticator struct {
	cfg Config
	key []byte
}

// NewAuthenticator creates a new TOTP authenticator.
// The configuration is validated and an error is returned if invalid.
func NewAuthenticator(cfg Config) (*Authenticator, error) {
	if err := cfg.validate(); err != nil {
		return nil, err
	}

	// Apply defaults
	if cfg.Digits == 0 {
		cfg.Digits = 6
	}
	if cfg.Period == 0 {
		cfg.Period = 30
	}
	if cfg.Skew == 0 {
		cfg.Skew = 1
	}

	key, err := decodeSecret(cfg.Secret)
	if err != nil {
		return nil, err
	}

	return &Authenticator{
		cfg: cfg,
		key: key,
	}, nil
}

// GenerateCode returns the passcode for the time step containing at.
func (a *Authenticator) GenerateCode(at time.Time) (string, error) {
	if a == nil {
		return "", ErrNilAuthenticator
	}

	return a.codeAt(a.counter(at)), nil
}

// Verify validates a passcode against the current time with skew
// tolerance.
func (a *Authenticator) Verify(ctx context.Context, code string) error {
	return a.VerifyAt(ctx, code, time.Now().UTC())
}

// VerifyAt validates a passcode against the time step containing at,
// plus Skew steps on either side.
//
// Codes of the wrong length or containing non-digits are rejected
// before any derivation work.
func (a *Authenticator) VerifyAt(ctx context.Context, code string, at time.Time) error {
	if a == nil {
		return ErrNilAuthenticator
	}

	if ctx == nil {
		ctx = context.Background()
	}

	if err := ctx.Err(); err != nil {
		return err
	}

	code = strings.TrimSpace(code)
	if len(code) != int(a.cfg.Digits) {
		return fmt.Errorf("%w: code must be %d digits", ErrInvalidCode, a.cfg.Digits)
	}
	for i := 0; i < len(code); i++ {
		if code[i] < '0' || code[i] > '9' {
			return fmt.Errorf("%w: code must contain only digits", ErrInvalidCode)
		}
	}

	counter := a.counter(at)
	skew := int64(a.cfg.Skew)
	for delta := -skew; delta <= skew; delta++ {
		want := a.codeAt(counter + delta)
		if subtle.ConstantTimeCompare([]byte(code), []byte(want)) == 1 {
			return nil
		}
	}

	return ErrInvalidCode
}

// ProvisioningURI returns the otpauth:// URI for this authenticator,
// suitable for QR-code display and scanning by authenticator apps.
func (a *Authenticator) ProvisioningURI() string {
	if a == nil {
		return ""
	}

	v := url.Values{}
	v.Set("secret", a.cfg.Secret)
	v.Set("issuer", a.cfg.Issuer)
	v.Set("digits", fmt.Sprintf("%d", a.cfg.Digits))
	v.Set("period", fmt.Sprintf("%d", a.cfg.Period))

	label := url.PathEscape(fmt.Sprintf("%s:%s", a.cfg.Issuer, a.cfg.AccountName))
	return fmt.Sprintf("otpauth://totp/%s?%s", label, v.Encode())
}

// counter returns the time-step counter containing at.
func (a *Authenticator) counter(at time.Time) int64 {
	return at.Unix() / int64(a.cfg.Period)
}

// codeAt derives the passcode for one counter value: HMAC-SHA1 over
// the 8-byte big-endian counter, RFC 4226 dynamic truncation, reduced
// modulo 10^digits and zero padded.
func (a *Authenticator) codeAt(counter int64) string {
	var msg [8]byte
	binary.BigEndian.PutUint64(msg[:], uint64(counter))

	mac := hmac.New(sha1.New, a.key)
	mac.Write(msg[:])
	digest := mac.Sum(nil)

	offset := digest[len(digest)-1] & 0x0F
	value := binary.BigEndian.Uint32(digest[offset:offset+4]) & 0x7FFFFFFF

	mod := uint32(1)
	for i := uint(0); i < a.cfg.Digits; i++ {
		mod *= 10
	}

	return fmt.Sprintf("%0*d", int(a.cfg.Digits), value%mod)
}
