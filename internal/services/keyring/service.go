package keyring

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"unicode"

	"moysekret/internal/crypto"
	"moysekret/internal/domain"
)

const (
	// minPassphraseLength defines the minimum number of characters required for a passphrase.
	minPassphraseLength = 12
)

var (
	// ErrWeakPassphrase is returned when the passphrase fails the strength policy.
	ErrWeakPassphrase = fmt.Errorf(
		"passphrase is too weak (must be at least %d characters and include upper, lower, "+
			"number, and symbol)",
		minPassphraseLength,
	)

	// ErrProfileExists is returned when init would overwrite an existing profile.
	ErrProfileExists = errors.New("profile already exists")

	// ErrProfileNotFound is returned when no profile descriptor exists for the name.
	ErrProfileNotFound = errors.New("profile not found")
)

// Service manages profile and key creation and access using backing stores.
//
// Each profile carries:
//   - Curve25519 key pair for NaCl box file encryption.
//   - Ed25519 key pair for detached file signatures.
type Service struct {
	profiles domain.ProfileStore
	keys     domain.KeyStore
}

// New returns a keyring service backed by the given stores.
func New(profiles domain.ProfileStore, keys domain.KeyStore) *Service {
	return &Service{profiles: profiles, keys: keys}
}

// InitProfile creates the profile descriptor, the storage directory and a
// fresh keyring sealed with the passphrase. An existing profile is only
// replaced when override is set.
func (s *Service) InitProfile(
	name domain.ProfileName,
	storageDir string,
	passphrase string,
	override bool,
) (domain.Profile, domain.Fingerprint, error) {
	if !isSecurePassphrase(passphrase) {
		return domain.Profile{}, "", ErrWeakPassphrase
	}

	if !override {
		if _, exists, err := s.profiles.LoadProfile(name); err != nil {
			return domain.Profile{}, "", err
		} else if exists {
			return domain.Profile{}, "", ErrProfileExists
		}
	}

	if err := os.MkdirAll(storageDir, 0o700); err != nil {
		return domain.Profile{}, "", fmt.Errorf("create storage directory: %w", err)
	}
	absDir, err := filepath.Abs(storageDir)
	if err != nil {
		return domain.Profile{}, "", fmt.Errorf("expand storage directory: %w", err)
	}

	profile := domain.Profile{Name: name, Storage: absDir}
	if err := s.profiles.SaveProfile(profile); err != nil {
		return domain.Profile{}, "", fmt.Errorf("save profile: %w", err)
	}

	boxPriv, boxPub, err := crypto.GenerateBoxKeypair()
	if err != nil {
		return domain.Profile{}, "", err
	}
	signPriv, signPub, err := crypto.GenerateSignKeypair()
	if err != nil {
		return domain.Profile{}, "", err
	}

	keyring := domain.Keyring{
		BoxPub:   boxPub,
		BoxPriv:  boxPriv,
		SignPub:  signPub,
		SignPriv: signPriv,
	}
	if err := s.keys.SaveKeyring(profile, passphrase, keyring); err != nil {
		return domain.Profile{}, "", fmt.Errorf("save keyring: %w", err)
	}

	return profile, domain.Fingerprint(crypto.Fingerprint(boxPub.Slice())), nil
}

// LoadKeyring loads the profile descriptor and unseals its keyring.
func (s *Service) LoadKeyring(
	name domain.ProfileName,
	passphrase string,
) (domain.Profile, domain.Keyring, error) {
	profile, exists, err := s.profiles.LoadProfile(name)
	if err != nil {
		return domain.Profile{}, domain.Keyring{}, err
	}
	if !exists {
		return domain.Profile{}, domain.Keyring{}, ErrProfileNotFound
	}
	keyring, err := s.keys.LoadKeyring(profile, passphrase)
	if err != nil {
		return domain.Profile{}, domain.Keyring{}, err
	}
	return profile, keyring, nil
}

// LoadPublicKeys returns the profile's public keys. Only public key
// material is touched, so no passphrase is needed.
func (s *Service) LoadPublicKeys(
	name domain.ProfileName,
) (domain.BoxPublic, domain.SignPublic, error) {
	profile, exists, err := s.profiles.LoadProfile(name)
	if err != nil {
		return domain.BoxPublic{}, domain.SignPublic{}, err
	}
	if !exists {
		return domain.BoxPublic{}, domain.SignPublic{}, ErrProfileNotFound
	}
	return s.keys.LoadPublicKeys(profile)
}

// FingerprintProfile returns the fingerprint of the profile's box public key.
func (s *Service) FingerprintProfile(name domain.ProfileName) (domain.Fingerprint, error) {
	boxPub, _, err := s.LoadPublicKeys(name)
	if err != nil {
		return "", err
	}
	return domain.Fingerprint(crypto.Fingerprint(boxPub.Slice())), nil
}

// isSecurePassphrase enforces a basic strength policy.
func isSecurePassphrase(passphrase string) bool {
	var hasUpper, hasLower, hasDigit, hasSymbol bool
	if len(passphrase) < minPassphraseLength {
		return false
	}
	for _, r := range passphrase {
		switch {
		case unicode.IsUpper(r):
			hasUpper = true
		case unicode.IsLower(r):
			hasLower = true
		case unicode.IsDigit(r):
			hasDigit = true
		case unicode.IsPunct(r), unicode.IsSymbol(r):
			hasSymbol = true
		}
	}
	return hasUpper && hasLower && hasDigit && hasSymbol
}

// Compile-time assertion that Service implements domain.KeyringService.
var _ domain.KeyringService = (*Service)(nil)
