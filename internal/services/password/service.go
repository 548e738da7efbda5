package password

import (
	"moysekret/internal/domain"
	pwhash "moysekret/internal/password"
)

// Service hashes and verifies passwords with Argon2id PHC strings.
type Service struct{}

// New returns a password service.
func New() *Service { return &Service{} }

// HashPassword derives an Argon2id hash with the default parameters.
func (s *Service) HashPassword(pw string) (string, error) {
	return pwhash.Hash(pw)
}

// VerifyPassword checks pw against an encoded PHC string.
func (s *Service) VerifyPassword(pw, encoded string) error {
	return pwhash.Verify(pw, encoded)
}

// Compile-time assertion that Service implements domain.PasswordService.
var _ domain.PasswordService = (*Service)(nil)
