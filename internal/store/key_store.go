package store

import (
	"encoding/json"
	"fmt"
	"path/filepath"
	"sync"

	"moysekret/internal/crypto"
	"moysekret/internal/domain"
)

// Key file suffixes under a profile's storage directory.
const (
	boxPubExt   = ".pk"     // base64 Curve25519 public key
	signPubExt  = ".spk"    // base64 Ed25519 public key
	privatesExt = ".sk.enc" // passphrase-sealed private keys
)

// privateKeys is the plaintext layout inside the passphrase envelope.
type privateKeys struct {
	BoxPriv  domain.BoxPrivate  `json:"box_priv"`
	SignPriv domain.SignPrivate `json:"sign_priv"`
}

// KeyFileStore persists keyrings under each profile's storage directory.
type KeyFileStore struct {
	mu sync.Mutex
}

// NewKeyFileStore returns a KeyFileStore.
func NewKeyFileStore() *KeyFileStore { return &KeyFileStore{} }

// SaveKeyring writes the public keys base64 in the clear and the private
// keys inside a passphrase envelope.
func (s *KeyFileStore) SaveKeyring(
	profile domain.Profile,
	passphrase string,
	keyring domain.Keyring,
) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := writeFile(
		keyPath(profile, boxPubExt),
		[]byte(crypto.B64(keyring.BoxPub.Slice())),
		0o600,
	); err != nil {
		return fmt.Errorf("write box public key: %w", err)
	}
	if err := writeFile(
		keyPath(profile, signPubExt),
		[]byte(crypto.B64(keyring.SignPub.Slice())),
		0o600,
	); err != nil {
		return fmt.Errorf("write sign public key: %w", err)
	}

	raw, err := json.Marshal(privateKeys{
		BoxPriv:  keyring.BoxPriv,
		SignPriv: keyring.SignPriv,
	})
	if err != nil {
		return err
	}
	N, r, p := scryptParamsDefault()
	sealed, err := encrypt(passphrase, raw, N, r, p)
	if err != nil {
		return err
	}
	if err := writeFile(keyPath(profile, privatesExt), sealed, 0o600); err != nil {
		return fmt.Errorf("write private keys: %w", err)
	}
	return nil
}

// LoadKeyring reads public keys and unseals the private keys.
func (s *KeyFileStore) LoadKeyring(
	profile domain.Profile,
	passphrase string,
) (domain.Keyring, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	boxPub, signPub, err := s.loadPublicKeys(profile)
	if err != nil {
		return domain.Keyring{}, err
	}

	sealed, err := readFile(keyPath(profile, privatesExt))
	if err != nil {
		return domain.Keyring{}, err
	}
	if sealed == nil {
		return domain.Keyring{}, fmt.Errorf("private key file for %q not found", profile.Name)
	}
	raw, err := decrypt(passphrase, sealed)
	if err != nil {
		return domain.Keyring{}, err
	}
	var priv privateKeys
	if err := json.Unmarshal(raw, &priv); err != nil {
		return domain.Keyring{}, err
	}

	return domain.Keyring{
		BoxPub:   boxPub,
		BoxPriv:  priv.BoxPriv,
		SignPub:  signPub,
		SignPriv: priv.SignPriv,
	}, nil
}

// LoadPublicKeys reads only the unencrypted public halves.
func (s *KeyFileStore) LoadPublicKeys(
	profile domain.Profile,
) (domain.BoxPublic, domain.SignPublic, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.loadPublicKeys(profile)
}

// KeyringExists reports whether all key files for the profile are present.
func (s *KeyFileStore) KeyringExists(profile domain.Profile) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	return fileExists(keyPath(profile, boxPubExt)) &&
		fileExists(keyPath(profile, signPubExt)) &&
		fileExists(keyPath(profile, privatesExt))
}

func (s *KeyFileStore) loadPublicKeys(
	profile domain.Profile,
) (domain.BoxPublic, domain.SignPublic, error) {
	var boxPub domain.BoxPublic
	var signPub domain.SignPublic

	b, err := readKeyB64(keyPath(profile, boxPubExt), len(boxPub))
	if err != nil {
		return boxPub, signPub, fmt.Errorf("read box public key: %w", err)
	}
	copy(boxPub[:], b)

	b, err = readKeyB64(keyPath(profile, signPubExt), len(signPub))
	if err != nil {
		return boxPub, signPub, fmt.Errorf("read sign public key: %w", err)
	}
	copy(signPub[:], b)

	return boxPub, signPub, nil
}

func readKeyB64(path string, want int) ([]byte, error) {
	raw, err := readFile(path)
	if err != nil {
		return nil, err
	}
	if raw == nil {
		return nil, fmt.Errorf("key file %s not found", filepath.Base(path))
	}
	b, err := crypto.B64Decode(string(raw))
	if err != nil {
		return nil, fmt.Errorf("decode key file %s: %w", filepath.Base(path), err)
	}
	if len(b) != want {
		return nil, fmt.Errorf("key file %s: want %d bytes, got %d", filepath.Base(path), want, len(b))
	}
	return b, nil
}

func keyPath(profile domain.Profile, ext string) string {
	return filepath.Join(profile.Storage, string(profile.Name)+ext)
}

// Compile-time assertion that KeyFileStore implements domain.KeyStore.
var _ domain.KeyStore = (*KeyFileStore)(nil)
