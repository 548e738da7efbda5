package crypto

import (
	"crypto/rand"
	"errors"

	"golang.org/x/crypto/nacl/secretbox"
)

// ErrSecretboxOpen is returned when a symmetric seal fails authentication.
var ErrSecretboxOpen = errors.New("secretbox authentication failed")

// SealWithKey encrypts plaintext under a 32-byte symmetric key with a
// fresh random nonce.
func SealWithKey(key [32]byte, plaintext []byte) (nonce [NonceBytes]byte, ciphertext []byte, err error) {
	if _, err = rand.Read(nonce[:]); err != nil {
		return nonce, nil, err
	}
	ciphertext = secretbox.Seal(nil, plaintext, &nonce, &key)
	return nonce, ciphertext, nil
}

// OpenWithKey authenticates and decrypts a symmetric seal.
func OpenWithKey(key [32]byte, nonce [NonceBytes]byte, ciphertext []byte) ([]byte, error) {
	plaintext, ok := secretbox.Open(nil, ciphertext, &nonce, &key)
	if !ok {
		return nil, ErrSecretboxOpen
	}
	return plaintext, nil
}
