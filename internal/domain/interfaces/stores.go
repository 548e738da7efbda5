package interfaces

import domaintypes "moysekret/internal/domain/types"

// ProfileStore persists profile descriptors in the user's home directory.
type ProfileStore interface {
	SaveProfile(profile domaintypes.Profile) error
	LoadProfile(name domaintypes.ProfileName) (domaintypes.Profile, bool, error)
}

// KeyStore persists a profile's keyring under its storage directory.
// Public keys are stored base64 in the clear; private keys are sealed
// with a passphrase-derived key.
type KeyStore interface {
	SaveKeyring(
		profile domaintypes.Profile,
		passphrase string,
		keyring domaintypes.Keyring,
	) error
	LoadKeyring(
		profile domaintypes.Profile,
		passphrase string,
	) (domaintypes.Keyring, error)
	LoadPublicKeys(
		profile domaintypes.Profile,
	) (domaintypes.BoxPublic, domaintypes.SignPublic, error)
	KeyringExists(profile domaintypes.Profile) bool
}

// EnvelopeStore reads and writes sealed envelopes and plain files on disk.
type EnvelopeStore interface {
	WriteEnvelope(path string, envelope domaintypes.Envelope) error
	ReadEnvelope(path string) (domaintypes.Envelope, error)
	ReadPlainFile(path string) ([]byte, error)
	WritePlainFile(path string, data []byte) error
	FileExists(path string) bool
}
