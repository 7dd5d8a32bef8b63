// Package totp provides TOTP (RFC 6238) passcode generation and
// verification on top of the baseenc codec.
//
// Shared secrets are base32 text produced by the codec's conventional
// base32 profile (5 bits per character, alphabet A-Z2-7, right-padded
// final bits, '=' group padding). Passcodes are derived by HMAC-SHA1
// over the 30-second time-step counter with RFC 4226 dynamic
// truncation.
//
// # Example
//
//	secret, err := totp.GenerateSecret()
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	auth, err := totp.NewAuthenticator(totp.Config{
//	    Secret:      secret,
//	    Issuer:      "MyApp",
//	    AccountName: "user@example.com",
//	})
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	// Display for enrollment in an authenticator app.
//	uri := auth.ProvisioningURI()
//	png, err := auth.QRCode(256, 256)
//
//	// Validate a code typed by the user.
//	err = auth.Verify(ctx, "123456")
//	if err != nil {
//	    log.Printf("verification failed: %v", err)
//	}
//
// # Clock Skew
//
// Verify accepts codes from the current time step plus Skew steps in
// either direction (default one step, so a code stays valid for 30
// seconds on each side of its own window).
//
// # Thread Safety
//
// The Authenticator type is safe for concurrent use. Multiple
// goroutines can call its methods simultaneously.
package totp
