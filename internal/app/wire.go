package app

import (
	"moysekret/internal/domain"
	keyringsvc "moysekret/internal/services/keyring"
	passwordsvc "moysekret/internal/services/password"
	sealsvc "moysekret/internal/services/seal"
	signaturesvc "moysekret/internal/services/signature"
	"moysekret/internal/store"
)

// Wire bundles all stores and services for the CLI.
type Wire struct {
	Keyring    domain.KeyringService
	Seal       domain.SealService
	Signatures domain.SignatureService
	Passwords  domain.PasswordService
}

// NewWire constructs the dependency graph from cfg.
func NewWire(cfg Config) (*Wire, error) {
	// File-based stores
	profileStore := store.NewProfileFileStore(cfg.Home)
	keyStore := store.NewKeyFileStore()
	envelopeStore := store.NewEnvelopeFileStore()

	// High-level services
	keyringSvc := keyringsvc.New(profileStore, keyStore)
	sealSvc := sealsvc.New(keyringSvc, envelopeStore)
	signatureSvc := signaturesvc.New(keyringSvc, envelopeStore)
	passwordSvc := passwordsvc.New()

	return &Wire{
		Keyring:    keyringSvc,
		Seal:       sealSvc,
		Signatures: signatureSvc,
		Passwords:  passwordSvc,
	}, nil
}
