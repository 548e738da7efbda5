package types

// Envelope is the on-disk format of an encrypted file (the .cz blob).
// Nonce is the 24-byte NaCl box nonce; Data is ciphertext plus the
// Poly1305 tag.
type Envelope struct {
	Version int        `json:"v"`
	ID      EnvelopeID `json:"id"`
	Nonce   []byte     `json:"nonce"`
	Data    []byte     `json:"data"`
}

// EnvelopeFormatVersion is the current supported Envelope version.
const EnvelopeFormatVersion = 1
