// Package crypto exposes the NaCl primitives used by moy-sekret.
//
// Contents
//
//   - Curve25519 box key generation, sealing and opening (GenerateBoxKeypair,
//     SealBox, OpenBox)
//   - Symmetric sealing with XSalsa20-Poly1305 (SealWithKey, OpenWithKey)
//   - Ed25519 key generation, signing and verification (GenerateSignKeypair,
//     Sign, Verify)
//   - Public-key fingerprints for display (Fingerprint)
//   - Base64 helpers for key and signature files (B64, B64Decode)
//
// # Notes
//
// All functions return fixed-size array types defined in internal/domain to
// avoid accidental reallocations. Callers should treat returned secrets as
// sensitive and rely on memzero.Zero when practical to reduce lifetime in
// memory.
package crypto
