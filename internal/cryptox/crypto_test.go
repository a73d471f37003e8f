package cryptox

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDeriveMasterKey_Deterministic(t *testing.T) {
	password := []byte("secret-password")
	salt := []byte("fixed-salt")

	key1 := DeriveMasterKey(password, salt)
	key2 := DeriveMasterKey(password, salt)

	assert.Equal(t, key1, key2)
	assert.Len(t, key1, 32)
}

func TestDeriveMasterKey_DifferentInputs(t *testing.T) {
	password := []byte("secret-password")

	key1 := DeriveMasterKey(password, []byte("salt-1"))
	key2 := DeriveMasterKey(password, []byte("salt-2"))

	assert.NotEqual(t, key1, key2)
}

func TestMakeVerifier_Deterministic(t *testing.T) {
	key := []byte("some-master-key")

	v1 := MakeVerifier(key)
	v2 := MakeVerifier(key)

	assert.Equal(t, v1, v2)
	assert.NotEqual(t, v1, MakeVerifier([]byte("other-key")))
}

func TestEncryptDecryptEntry_RoundTrip(t *testing.T) {
	type payload struct {
		Name  string `json:"name"`
		Value int    `json:"value"`
	}

	key := DeriveMasterKey([]byte("pw"), []byte("salt"))
	src := payload{Name: "a", Value: 42}

	ciphertext, nonce, err := EncryptEntry(src, key)
	require.NoError(t, err)
	require.NotEmpty(t, ciphertext)
	require.Len(t, nonce, 12)

	var got payload
	require.NoError(t, DecryptEntry(ciphertext, nonce, key, &got))
	assert.Equal(t, src, got)
}

func TestDecryptEntry_WrongKeyFails(t *testing.T) {
	key := DeriveMasterKey([]byte("pw"), []byte("salt"))

	ciphertext, nonce, err := EncryptEntry(map[string]string{"a": "b"}, key)
	require.NoError(t, err)

	var out map[string]string
	err = DecryptEntry(ciphertext, nonce, DeriveMasterKey([]byte("pw2"), []byte("salt")), &out)
	require.Error(t, err)
}

func TestEncryptBytes_NoncesDiffer(t *testing.T) {
	key := DeriveMasterKey([]byte("pw"), []byte("salt"))

	_, n1, err := EncryptBytes([]byte("data"), key)
	require.NoError(t, err)
	_, n2, err := EncryptBytes([]byte("data"), key)
	require.NoError(t, err)

	assert.NotEqual(t, n1, n2)
}
