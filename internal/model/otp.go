package model

import (
	"encoding/base32"
	"encoding/json"
	"fmt"
	"net/url"
	"strings"

	"github.com/pquerna/otp"
)

// OTPToken wraps a parsed one-time-password key. Tokens are built either
// from a full otpauth:// URL or from a raw base32 seed string.
type OTPToken struct {
	key *otp.Key
}

// NewOTPTokenFromString builds a token from either an otpauth:// URL or a
// raw base32 seed (whitespace, dashes and padding are tolerated). An
// unparseable input returns an error so callers can fall back to treating
// the value as plain text.
func NewOTPTokenFromString(s string) (*OTPToken, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil, fmt.Errorf("empty otp seed")
	}

	if strings.Contains(s, "://") {
		key, err := otp.NewKeyFromURL(s)
		if err != nil {
			return nil, fmt.Errorf("parsing otpauth url: %w", err)
		}
		return &OTPToken{key: key}, nil
	}

	secret := normalizeSecret(s)
	if secret == "" {
		return nil, fmt.Errorf("empty otp seed")
	}
	if _, err := base32.StdEncoding.WithPadding(base32.NoPadding).DecodeString(secret); err != nil {
		return nil, fmt.Errorf("invalid base32 seed: %w", err)
	}

	v := url.Values{}
	v.Set("secret", secret)
	v.Set("period", "30")
	v.Set("digits", "6")
	u := url.URL{Scheme: "otpauth", Host: "totp", Path: "/", RawQuery: v.Encode()}

	key, err := otp.NewKeyFromURL(u.String())
	if err != nil {
		return nil, fmt.Errorf("building otp key: %w", err)
	}
	return &OTPToken{key: key}, nil
}

func normalizeSecret(s string) string {
	var b strings.Builder
	for _, r := range s {
		switch {
		case r == ' ' || r == '-' || r == '=':
		default:
			b.WriteRune(r)
		}
	}
	return strings.ToUpper(b.String())
}

// Secret returns the base32 seed.
func (t *OTPToken) Secret() string { return t.key.Secret() }

// URL returns the canonical otpauth:// URL for the token.
func (t *OTPToken) URL() string { return t.key.URL() }

// Settings returns the token parameters in "period;digits" form, the
// layout legacy supplementary fields use.
func (t *OTPToken) Settings() string {
	period := t.key.Period()
	if period == 0 {
		period = 30
	}
	digits := int(t.key.Digits())
	if digits == 0 {
		digits = 6
	}
	return fmt.Sprintf("%d;%d", period, digits)
}

// MarshalJSON serializes the token as its otpauth URL.
func (t *OTPToken) MarshalJSON() ([]byte, error) {
	return json.Marshal(t.URL())
}

// UnmarshalJSON restores a token from its otpauth URL.
func (t *OTPToken) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	key, err := otp.NewKeyFromURL(s)
	if err != nil {
		return err
	}
	t.key = key
	return nil
}
