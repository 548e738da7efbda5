package seal

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/google/uuid"

	"moysekret/internal/crypto"
	"moysekret/internal/domain"
)

// EncryptedExt is the suffix marking files sealed by this program.
const EncryptedExt = ".cz"

var (
	// ErrAlreadyEncrypted is returned when the source already carries the .cz suffix.
	ErrAlreadyEncrypted = errors.New("source file was already encrypted by this program (.cz)")
	// ErrNotEncrypted is returned when the source lacks the .cz suffix.
	ErrNotEncrypted = errors.New("source file was not made by this program (.cz)")
	// ErrSourceMissing is returned when the source file does not exist.
	ErrSourceMissing = errors.New("source file does not exist")
	// ErrTargetExists is returned when the target exists and override is not set.
	ErrTargetExists = errors.New("target file already exists")
	// ErrDecryptFailed is returned when the envelope fails authentication.
	ErrDecryptFailed = errors.New("cannot decrypt file")
)

// Service seals files with the profile's own box key pair.
//
// High-level flow:
//   - Encrypt: load the keyring, seal the plaintext with a fresh nonce and
//     write the envelope to <storage>/<basename>.cz.
//   - Decrypt: read the envelope, open it with the same key pair and write
//     the plaintext to <dest>/<stem>.
type Service struct {
	keyring   domain.KeyringService
	envelopes domain.EnvelopeStore
}

// New constructs a seal service with the given keyring service and store.
func New(keyring domain.KeyringService, envelopes domain.EnvelopeStore) *Service {
	return &Service{keyring: keyring, envelopes: envelopes}
}

// EncryptFile seals filePath into the profile's storage directory and
// returns the path of the encrypted file. The original file is kept.
func (s *Service) EncryptFile(
	name domain.ProfileName,
	passphrase string,
	filePath string,
	override bool,
) (string, error) {
	if strings.HasSuffix(filePath, EncryptedExt) {
		return "", ErrAlreadyEncrypted
	}
	if !s.envelopes.FileExists(filePath) {
		return "", ErrSourceMissing
	}

	profile, keyring, err := s.keyring.LoadKeyring(name, passphrase)
	if err != nil {
		return "", fmt.Errorf("read user profile: %w", err)
	}

	target := encryptedPath(profile, filePath)
	if !override && s.envelopes.FileExists(target) {
		return "", ErrTargetExists
	}

	plaintext, err := s.envelopes.ReadPlainFile(filePath)
	if err != nil {
		return "", fmt.Errorf("read file to encrypt: %w", err)
	}

	nonce, ciphertext, err := crypto.SealBox(plaintext, keyring.BoxPub, keyring.BoxPriv)
	if err != nil {
		return "", err
	}

	env := domain.Envelope{
		Version: domain.EnvelopeFormatVersion,
		ID:      domain.EnvelopeID(uuid.NewString()),
		Nonce:   nonce[:],
		Data:    ciphertext,
	}
	if err := s.envelopes.WriteEnvelope(target, env); err != nil {
		return "", fmt.Errorf("save encrypted file: %w", err)
	}
	return target, nil
}

// DecryptFile opens the envelope at filePath and writes the plaintext into
// destDir, returning the path of the decrypted file. The encrypted file is
// kept.
func (s *Service) DecryptFile(
	name domain.ProfileName,
	passphrase string,
	filePath string,
	destDir string,
	override bool,
) (string, error) {
	if !strings.HasSuffix(filePath, EncryptedExt) {
		return "", ErrNotEncrypted
	}
	if !s.envelopes.FileExists(filePath) {
		return "", ErrSourceMissing
	}

	target := decryptedPath(filePath, destDir)
	if !override && s.envelopes.FileExists(target) {
		return "", ErrTargetExists
	}

	_, keyring, err := s.keyring.LoadKeyring(name, passphrase)
	if err != nil {
		return "", fmt.Errorf("read user profile: %w", err)
	}

	env, err := s.envelopes.ReadEnvelope(filePath)
	if err != nil {
		return "", err
	}
	if len(env.Nonce) != crypto.NonceBytes {
		return "", ErrDecryptFailed
	}
	var nonce [crypto.NonceBytes]byte
	copy(nonce[:], env.Nonce)

	plaintext, err := crypto.OpenBox(nonce, env.Data, keyring.BoxPub, keyring.BoxPriv)
	if err != nil {
		return "", ErrDecryptFailed
	}

	if err := s.envelopes.WritePlainFile(target, plaintext); err != nil {
		return "", fmt.Errorf("save decrypted file: %w", err)
	}
	return target, nil
}

// encryptedPath is <storage>/<basename>.cz.
func encryptedPath(profile domain.Profile, filePath string) string {
	return filepath.Join(profile.Storage, filepath.Base(filePath)+EncryptedExt)
}

// decryptedPath is <dest>/<basename without .cz>.
func decryptedPath(filePath, destDir string) string {
	base := strings.TrimSuffix(filepath.Base(filePath), EncryptedExt)
	return filepath.Join(destDir, base)
}

// Compile-time assertion that Service implements domain.SealService.
var _ domain.SealService = (*Service)(nil)
