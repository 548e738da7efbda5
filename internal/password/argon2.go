package password

import (
	"crypto/rand"
	"crypto/subtle"
	"encoding/base64"
	"errors"
	"fmt"
	"strings"

	"golang.org/x/crypto/argon2"

	"moysekret/internal/util/memzero"
)

var (
	// ErrMismatch is returned when the password does not match the hash.
	ErrMismatch = errors.New("password does not match hash")
	// ErrInvalidHash is returned for strings that are not valid PHC Argon2id hashes.
	ErrInvalidHash = errors.New("invalid argon2id hash encoding")
	// ErrIncompatibleVersion is returned when the hash uses an unsupported Argon2 version.
	ErrIncompatibleVersion = errors.New("incompatible argon2 version")
)

// Params are the Argon2id cost parameters recorded in each hash.
type Params struct {
	MemoryKiB uint32
	Time      uint32
	Threads   uint8
	SaltBytes uint32
	KeyBytes  uint32
}

// DefaultParams follows the RFC 9106 low-memory recommendation.
func DefaultParams() Params {
	return Params{
		MemoryKiB: 64 * 1024,
		Time:      1,
		Threads:   4,
		SaltBytes: 16,
		KeyBytes:  32,
	}
}

// Hash derives an Argon2id hash of password with DefaultParams and
// returns it as a PHC string.
func Hash(password string) (string, error) {
	return HashWithParams(password, DefaultParams())
}

// HashWithParams derives an Argon2id hash of password with explicit parameters.
func HashWithParams(password string, p Params) (string, error) {
	salt := make([]byte, p.SaltBytes)
	if _, err := rand.Read(salt); err != nil {
		return "", err
	}
	key := argon2.IDKey([]byte(password), salt, p.Time, p.MemoryKiB, p.Threads, p.KeyBytes)
	defer memzero.Zero(key)

	b64 := base64.RawStdEncoding
	return fmt.Sprintf(
		"$argon2id$v=%d$m=%d,t=%d,p=%d$%s$%s",
		argon2.Version, p.MemoryKiB, p.Time, p.Threads,
		b64.EncodeToString(salt), b64.EncodeToString(key),
	), nil
}

// Verify re-derives the hash with the parameters stored in encoded and
// compares in constant time. Returns ErrMismatch when the password is wrong.
func Verify(password, encoded string) error {
	p, salt, want, err := decode(encoded)
	if err != nil {
		return err
	}
	got := argon2.IDKey([]byte(password), salt, p.Time, p.MemoryKiB, p.Threads, uint32(len(want)))
	defer memzero.Zero(got)

	if subtle.ConstantTimeCompare(got, want) != 1 {
		return ErrMismatch
	}
	return nil
}

func decode(encoded string) (p Params, salt, key []byte, err error) {
	parts := strings.Split(encoded, "$")
	if len(parts) != 6 || parts[0] != "" || parts[1] != "argon2id" {
		return p, nil, nil, ErrInvalidHash
	}

	var version int
	if _, err := fmt.Sscanf(parts[2], "v=%d", &version); err != nil {
		return p, nil, nil, ErrInvalidHash
	}
	if version != argon2.Version {
		return p, nil, nil, ErrIncompatibleVersion
	}

	if _, err := fmt.Sscanf(parts[3], "m=%d,t=%d,p=%d", &p.MemoryKiB, &p.Time, &p.Threads); err != nil {
		return p, nil, nil, ErrInvalidHash
	}

	b64 := base64.RawStdEncoding
	if salt, err = b64.DecodeString(parts[4]); err != nil {
		return p, nil, nil, ErrInvalidHash
	}
	if key, err = b64.DecodeString(parts[5]); err != nil {
		return p, nil, nil, ErrInvalidHash
	}
	p.SaltBytes = uint32(len(salt))
	p.KeyBytes = uint32(len(key))
	return p, salt, key, nil
}
