package types

// BoxPublic is a Curve25519 public key used with NaCl box.
type BoxPublic [32]byte

// Slice returns the key as a []byte.
func (p BoxPublic) Slice() []byte { return p[:] }

// BoxPrivate is a Curve25519 private key used with NaCl box.
type BoxPrivate [32]byte

// Slice returns the key as a []byte.
func (k BoxPrivate) Slice() []byte { return k[:] }

// SignPublic is an Ed25519 signing public key.
type SignPublic [32]byte

// Slice returns the key as a []byte.
func (p SignPublic) Slice() []byte { return p[:] }

// SignPrivate is an Ed25519 signing private key.
type SignPrivate [64]byte

// Slice returns the key as a []byte.
func (k SignPrivate) Slice() []byte { return k[:] }

// Keyring holds a profile's long-term key material: a Curve25519 pair for
// NaCl box encryption and an Ed25519 pair for detached signatures.
type Keyring struct {
	BoxPub   BoxPublic   `json:"box_pub"`
	BoxPriv  BoxPrivate  `json:"box_priv"`
	SignPub  SignPublic  `json:"sign_pub"`
	SignPriv SignPrivate `json:"sign_priv"`
}
