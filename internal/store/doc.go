// Package store provides file-based persistence for moy-sekret's core data.
//
// It contains concrete implementations of the domain storage interfaces.
// All methods are concurrency-safe via internal locking and writes go
// through a temp-file-then-rename path.
//
// The package includes stores for:
//   - Profile descriptors, TOML in the home directory (ProfileFileStore)
//   - Keyrings, base64 publics plus passphrase-sealed privates (KeyFileStore)
//   - Sealed envelopes and plain files (EnvelopeFileStore)
package store
