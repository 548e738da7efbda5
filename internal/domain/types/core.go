package types

// ProfileName identifies a local profile.
type ProfileName string

// String returns the string form of the profile name.
func (n ProfileName) String() string { return string(n) }

// Fingerprint is a short identifier for public keys presented to users.
type Fingerprint string

// String returns the string form of the fingerprint.
func (f Fingerprint) String() string { return string(f) }

// EnvelopeID uniquely identifies a sealed envelope.
type EnvelopeID string

// String returns the string form of the envelope identifier.
func (id EnvelopeID) String() string { return string(id) }
