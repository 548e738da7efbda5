// Package signature produces and checks detached Ed25519 file signatures.
//
// Signatures are written base64 next to the signed file with a .sig
// suffix. Verification only needs the profile's public key, so it never
// asks for the passphrase.
package signature
