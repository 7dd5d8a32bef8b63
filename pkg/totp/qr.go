package totp

import (
	"bytes"
	"fmt"
	"image/png"

	"github.com/boombuler/barcode"
	"github.com/boombuler/barcode/qr"
)

// QRCode renders the provisioning URI as a PNG image with the given
// dimensions, ready to display during enrollment.
func (a *Authenticator) QRCode(width, height int) ([]byte, error) {
	if a == nil {
		return nil, ErrNilAuthenticator
	}

	code, err := qr.Encode(a.ProvisioningURI(), qr.M, qr.Auto)
	if err != nil {
		return nil, fmt.Errorf("totp: failed to build QR code: %w", err)
	}

	code, err = barcode.Scale(code, width, height)
	if err != nil {
		return nil, fmt.Errorf("totp: failed to scale QR code to %dx%d: %w", width, height, err)
	}

	var buf bytes.Buffer
	if err := png.Encode(&buf, code); err != nil {
		return nil, fmt.Errorf("totp: failed to render QR code: %w", err)
	}

	return buf.Bytes(), nil
}
