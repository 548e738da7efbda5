package crypto

import (
	"crypto/sha256"
	"encoding/hex"
)

// Fingerprint returns a SHA-256 hex digest of a public key.
func Fingerprint(pub []byte) string {
	sum := sha256.Sum256(pub)
	return hex.EncodeToString(sum[:])
}
