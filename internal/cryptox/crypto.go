// Package cryptox provides the vault's key derivation and AEAD helpers:
// argon2id master-key derivation and AES-GCM encryption for node payloads
// and attachment blobs.
package cryptox

import (
	"crypto/aes"
	"crypto/cipher"
	"crypto/sha256"
	"encoding/json"

	"github.com/dmitrijs2005/puxvault/internal/common"
	"golang.org/x/crypto/argon2"
)

// MakeVerifier returns a hash of the master key stored alongside the vault
// so a wrong password can be rejected before decrypting anything.
func MakeVerifier(masterKey []byte) []byte {
	hash := sha256.Sum256(masterKey)
	return hash[:]
}

// DeriveMasterKey stretches a password and salt into a 32-byte AES key
// using argon2id.
func DeriveMasterKey(password []byte, salt []byte) []byte {
	return argon2.IDKey(password, salt, 1, 64*1024, 4, 32)
}

// EncryptEntry serializes v to JSON and encrypts it with AES-GCM under
// key. A fresh random nonce is generated per call and returned alongside
// the ciphertext.
func EncryptEntry(v any, key []byte) (ciphertext, nonce []byte, err error) {
	plaintext, err := json.Marshal(v)
	if err != nil {
		return nil, nil, err
	}

	return EncryptBytes(plaintext, key)
}

// DecryptEntry decrypts ciphertext with AES-GCM and unmarshals the
// resulting JSON into v. The key and nonce must match the ones used by
// EncryptEntry.
func DecryptEntry(ciphertext, nonce, key []byte, v any) error {
	plaintext, err := DecryptBytes(ciphertext, nonce, key)
	if err != nil {
		return err
	}

	return json.Unmarshal(plaintext, v)
}

// EncryptBytes encrypts raw bytes with AES-GCM under key, returning the
// ciphertext and the random nonce used.
func EncryptBytes(plaintext, key []byte) (ciphertext, nonce []byte, err error) {
	block, err := aes.NewCipher(key)
	if err != nil {
		return nil, nil, err
	}
	aesgcm, err := cipher.NewGCM(block)
	if err != nil {
		return nil, nil, err
	}

	nonce = common.GenerateRandByteArray(aesgcm.NonceSize())
	ciphertext = aesgcm.Seal(nil, nonce, plaintext, nil)

	return ciphertext, nonce, nil
}

// DecryptBytes reverses EncryptBytes.
func DecryptBytes(ciphertext, nonce, key []byte) ([]byte, error) {
	block, err := aes.NewCipher(key)
	if err != nil {
		return nil, err
	}
	aesgcm, err := cipher.NewGCM(block)
	if err != nil {
		return nil, err
	}

	return aesgcm.Open(nil, nonce, ciphertext, nil)
}
