package crypto

import (
	"crypto/rand"
	"errors"

	"golang.org/x/crypto/nacl/box"

	"moysekret/internal/domain"
)

// NonceBytes is the NaCl box nonce length.
const NonceBytes = 24

// ErrBoxOpen is returned when a sealed box fails authentication.
var ErrBoxOpen = errors.New("box authentication failed")

// GenerateBoxKeypair returns a fresh Curve25519 key pair for NaCl box.
func GenerateBoxKeypair() (priv domain.BoxPrivate, pub domain.BoxPublic, err error) {
	pb, pv, err := box.GenerateKey(rand.Reader)
	if err != nil {
		return priv, pub, err
	}
	priv = domain.BoxPrivate(*pv)
	pub = domain.BoxPublic(*pb)
	return priv, pub, nil
}

// SealBox encrypts plaintext with a fresh random nonce. The peer and own
// keys may belong to the same keyring; sealing to yourself is the normal
// mode for profile-local file encryption.
func SealBox(plaintext []byte, peer domain.BoxPublic, own domain.BoxPrivate) (nonce [NonceBytes]byte, ciphertext []byte, err error) {
	if _, err = rand.Read(nonce[:]); err != nil {
		return nonce, nil, err
	}
	peerKey := [32]byte(peer)
	ownKey := [32]byte(own)
	ciphertext = box.Seal(nil, plaintext, &nonce, &peerKey, &ownKey)
	return nonce, ciphertext, nil
}

// OpenBox authenticates and decrypts a sealed box.
func OpenBox(nonce [NonceBytes]byte, ciphertext []byte, peer domain.BoxPublic, own domain.BoxPrivate) ([]byte, error) {
	peerKey := [32]byte(peer)
	ownKey := [32]byte(own)
	plaintext, ok := box.Open(nil, ciphertext, &nonce, &peerKey, &ownKey)
	if !ok {
		return nil, ErrBoxOpen
	}
	return plaintext, nil
}
