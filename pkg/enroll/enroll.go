package enroll

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"

	"github.com/jhahn/go-2fa/pkg/totp"
)

// Verifier validates a passcode for one enrolled account.
// The implementation should return nil on success or an error on failure.
type Verifier interface {
	Verify(ctx context.Context, code string) error
}

// VerifierFunc adapts a function to the Verifier interface.
type VerifierFunc func(ctx context.Context, code string) error

// Verify executes the underlying function.
func (f VerifierFunc) Verify(ctx context.Context, code string) error {
	return f(ctx, code)
}

var (
	// ErrNoIssuer indicates the service was configured without an issuer.
	ErrNoIssuer = errors.New("enroll: issuer is required")
	// ErrUnknownAccount indicates no enrollment exists for the account.
	ErrUnknownAccount = errors.New("enroll: account not enrolled")
	// ErrAlreadyEnrolled indicates the account already has an enrollment.
	ErrAlreadyEnrolled = errors.New("enroll: account already enrolled")
	// ErrNilVerifier indicates a nil verifier was registered.
	ErrNilVerifier = errors.New("enroll: verifier must not be nil")
)

// Config contains the issuer identity and passcode parameters applied
// to every enrollment the service creates.
type Config struct {
	// Issuer is the organization name stamped into provisioning URIs
	// (required).
	Issuer string
	// Digits, Period and Skew carry the same semantics and defaults
	// as totp.Config.
	Digits uint
	Period uint
	Skew   uint
}

// Enrollment is the caller-visible result of enrolling an account:
// everything needed to hand the secret to the user.
type Enrollment struct {
	AccountName     string
	Secret          string
	ProvisioningURI string
}

// Service creates and verifies TOTP enrollments for named accounts.
// It is safe for concurrent use.
type Service struct {
	cfg Config

	mu       sync.RWMutex
	accounts map[string]Verifier
}

// NewService builds a Service from the supplied configuration.
func NewService(cfg Config) (*Service, error) {
	if strings.TrimSpace(cfg.Issuer) == "" {
		return nil, ErrNoIssuer
	}

	return &Service{
		cfg:      cfg,
		accounts: make(map[string]Verifier),
	}, nil
}

// Enroll generates a fresh secret for the account, stores a verifier
// for it, and returns the material the user needs to finish setup.
func (s *Service) Enroll(ctx context.Context, account string) (Enrollment, error) {
	if ctx == nil {
		ctx = context.Background()
	}
	if err := ctx.Err(); err != nil {
		return Enrollment{}, err
	}

	secret, err := totp.GenerateSecret()
	if err != nil {
		return Enrollment{}, err
	}

	auth, err := totp.NewAuthenticator(totp.Config{
		Secret:      secret,
		Issuer:      s.cfg.Issuer,
		AccountName: account,
		Digits:      s.cfg.Digits,
		Period:      s.cfg.Period,
		Skew:        s.cfg.Skew,
	})
	if err != nil {
		return Enrollment{}, fmt.Errorf("enroll: %q: %w", account, err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.accounts[account]; ok {
		return Enrollment{}, fmt.Errorf("%w: %q", ErrAlreadyEnrolled, account)
	}
	s.accounts[account] = auth

	return Enrollment{
		AccountName:     account,
		Secret:          secret,
		ProvisioningURI: auth.ProvisioningURI(),
	}, nil
}

// Register stores an externally provisioned verifier for the account.
func (s *Service) Register(account string, v Verifier) error {
	if v == nil {
		return ErrNilVerifier
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.accounts[account]; ok {
		return fmt.Errorf("%w: %q", ErrAlreadyEnrolled, account)
	}
	s.accounts[account] = v

	return nil
}

// Verify validates a passcode against the account's enrollment.
func (s *Service) Verify(ctx context.Context, account, code string) error {
	s.mu.RLock()
	v := s.accounts[account]
	s.mu.RUnlock()

	if v == nil {
		return fmt.Errorf("%w: %q", ErrUnknownAccount, account)
	}

	return v.Verify(ctx, code)
}

// Remove discards the account's enrollment. Removing an account that
// was never enrolled is not an error.
func (s *Service) Remove(account string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	delete(s.accounts, account)
}

// Enrolled reports whether the account has an enrollment.
func (s *Service) Enrolled(account string) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()

	_, ok := s.accounts[account]
	return ok
}
