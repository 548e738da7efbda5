package signature

import (
	"errors"
	"fmt"
	"strings"

	"moysekret/internal/crypto"
	"moysekret/internal/domain"
)

// SignatureExt is the suffix for detached signature files.
const SignatureExt = ".sig"

var (
	// ErrSourceMissing is returned when the file to sign or verify does not exist.
	ErrSourceMissing = errors.New("source file does not exist")
	// ErrTargetExists is returned when the signature file exists and override is not set.
	ErrTargetExists = errors.New("signature file already exists")
	// ErrBadSignature is returned when verification fails.
	ErrBadSignature = errors.New("signature does not match file")
)

// Service signs files with the profile's Ed25519 key and verifies
// detached signatures against the public key.
type Service struct {
	keyring domain.KeyringService
	files   domain.EnvelopeStore
}

// New constructs a signature service.
func New(keyring domain.KeyringService, files domain.EnvelopeStore) *Service {
	return &Service{keyring: keyring, files: files}
}

// SignFile writes a detached base64 signature of filePath to
// filePath.sig and returns the signature path.
func (s *Service) SignFile(
	name domain.ProfileName,
	passphrase string,
	filePath string,
	override bool,
) (string, error) {
	if !s.files.FileExists(filePath) {
		return "", ErrSourceMissing
	}
	target := filePath + SignatureExt
	if !override && s.files.FileExists(target) {
		return "", ErrTargetExists
	}

	_, keyring, err := s.keyring.LoadKeyring(name, passphrase)
	if err != nil {
		return "", fmt.Errorf("read user profile: %w", err)
	}

	data, err := s.files.ReadPlainFile(filePath)
	if err != nil {
		return "", fmt.Errorf("read file to sign: %w", err)
	}

	sig := crypto.Sign(keyring.SignPriv, data)
	if err := s.files.WritePlainFile(target, []byte(crypto.B64(sig)+"\n")); err != nil {
		return "", fmt.Errorf("save signature file: %w", err)
	}
	return target, nil
}

// VerifyFile checks the detached signature at sigPath (filePath.sig when
// empty) against the profile's signing public key.
func (s *Service) VerifyFile(name domain.ProfileName, filePath, sigPath string) error {
	if sigPath == "" {
		sigPath = filePath + SignatureExt
	}
	if !s.files.FileExists(filePath) || !s.files.FileExists(sigPath) {
		return ErrSourceMissing
	}

	_, signPub, err := s.keyring.LoadPublicKeys(name)
	if err != nil {
		return err
	}

	data, err := s.files.ReadPlainFile(filePath)
	if err != nil {
		return fmt.Errorf("read file to verify: %w", err)
	}
	raw, err := s.files.ReadPlainFile(sigPath)
	if err != nil {
		return fmt.Errorf("read signature file: %w", err)
	}
	sig, err := crypto.B64Decode(strings.TrimSpace(string(raw)))
	if err != nil {
		return fmt.Errorf("decode signature file: %w", err)
	}

	if !crypto.Verify(signPub, data, sig) {
		return ErrBadSignature
	}
	return nil
}

// Compile-time assertion that Service implements domain.SignatureService.
var _ domain.SignatureService = (*Service)(nil)
