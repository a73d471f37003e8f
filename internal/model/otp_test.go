package model

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewOTPTokenFromString_RawSeed(t *testing.T) {
	token, err := NewOTPTokenFromString("jbsw y3dp ehpk-3pxp")
	require.NoError(t, err)

	assert.Equal(t, "JBSWY3DPEHPK3PXP", token.Secret())
	assert.Contains(t, token.URL(), "otpauth://totp")
	assert.Equal(t, "30;6", token.Settings())
}

func TestNewOTPTokenFromString_OTPAuthURL(t *testing.T) {
	token, err := NewOTPTokenFromString("otpauth://totp/Example:alice@example.com?secret=JBSWY3DPEHPK3PXP&issuer=Example&period=60&digits=8")
	require.NoError(t, err)

	assert.Equal(t, "JBSWY3DPEHPK3PXP", token.Secret())
	assert.Equal(t, "60;8", token.Settings())
}

func TestNewOTPTokenFromString_Invalid(t *testing.T) {
	tests := []struct {
		name string
		in   string
	}{
		{"empty", ""},
		{"whitespace only", "   "},
		{"not base32", "this is just a note about 2fa!"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewOTPTokenFromString(tt.in)
			require.Error(t, err)
		})
	}
}

func TestOTPToken_JSONRoundTrip(t *testing.T) {
	token, err := NewOTPTokenFromString("JBSWY3DPEHPK3PXP")
	require.NoError(t, err)

	data, err := json.Marshal(token)
	require.NoError(t, err)

	var got OTPToken
	require.NoError(t, json.Unmarshal(data, &got))
	assert.Equal(t, token.URL(), got.URL())
	assert.Equal(t, token.Secret(), got.Secret())
}
