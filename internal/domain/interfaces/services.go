package interfaces

import domaintypes "moysekret/internal/domain/types"

// KeyringService creates, loads and inspects profile key material.
type KeyringService interface {
	InitProfile(
		name domaintypes.ProfileName,
		storageDir string,
		passphrase string,
		override bool,
	) (domaintypes.Profile, domaintypes.Fingerprint, error)
	LoadKeyring(
		name domaintypes.ProfileName,
		passphrase string,
	) (domaintypes.Profile, domaintypes.Keyring, error)
	LoadPublicKeys(
		name domaintypes.ProfileName,
	) (domaintypes.BoxPublic, domaintypes.SignPublic, error)
	FingerprintProfile(name domaintypes.ProfileName) (domaintypes.Fingerprint, error)
}

// SealService encrypts files into a profile's storage directory and
// decrypts them back out.
type SealService interface {
	EncryptFile(
		name domaintypes.ProfileName,
		passphrase string,
		filePath string,
		override bool,
	) (string, error)
	DecryptFile(
		name domaintypes.ProfileName,
		passphrase string,
		filePath string,
		destDir string,
		override bool,
	) (string, error)
}

// SignatureService produces and checks detached Ed25519 file signatures.
type SignatureService interface {
	SignFile(
		name domaintypes.ProfileName,
		passphrase string,
		filePath string,
		override bool,
	) (string, error)
	VerifyFile(name domaintypes.ProfileName, filePath, sigPath string) error
}

// PasswordService hashes and verifies passwords for storage.
type PasswordService interface {
	HashPassword(password string) (string, error)
	VerifyPassword(password, encoded string) error
}
