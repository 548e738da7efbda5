package domain

import (
	interfaces "moysekret/internal/domain/interfaces"
	types "moysekret/internal/domain/types"
)

// Type aliases expose domain types from the types subpackage for compact imports.
type (
	ProfileName = types.ProfileName
	Fingerprint = types.Fingerprint
	EnvelopeID  = types.EnvelopeID
	Profile     = types.Profile
	Envelope    = types.Envelope
	Keyring     = types.Keyring
	BoxPublic   = types.BoxPublic
	BoxPrivate  = types.BoxPrivate
	SignPublic  = types.SignPublic
	SignPrivate = types.SignPrivate
)

// EnvelopeFormatVersion mirrors types.EnvelopeFormatVersion.
const EnvelopeFormatVersion = types.EnvelopeFormatVersion

// Interface aliases expose domain interfaces from the interfaces subpackage.
type (
	ProfileStore     = interfaces.ProfileStore
	KeyStore         = interfaces.KeyStore
	EnvelopeStore    = interfaces.EnvelopeStore
	KeyringService   = interfaces.KeyringService
	SealService      = interfaces.SealService
	SignatureService = interfaces.SignatureService
	PasswordService  = interfaces.PasswordService
)
