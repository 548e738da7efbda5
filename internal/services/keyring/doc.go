// Package keyring manages creation, encryption and loading of profile keys.
//
// It enforces passphrase policy, generates the box and signing key pairs,
// and persists them via the domain.ProfileStore and domain.KeyStore.
package keyring
