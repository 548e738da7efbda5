// Package seal encrypts files into a profile's storage directory and
// decrypts them back out.
//
// Encrypted files carry the .cz suffix and hold a versioned JSON envelope
// with the NaCl box nonce and ciphertext. Existing targets are never
// replaced unless the caller explicitly overrides.
package seal
