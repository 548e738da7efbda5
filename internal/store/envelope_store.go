package store

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"moysekret/internal/domain"
)

// EnvelopeFileStore reads and writes sealed envelopes and plain files.
type EnvelopeFileStore struct {
	mu sync.Mutex
}

// NewEnvelopeFileStore returns an EnvelopeFileStore.
func NewEnvelopeFileStore() *EnvelopeFileStore { return &EnvelopeFileStore{} }

// WriteEnvelope serialises the envelope as JSON at path.
func (s *EnvelopeFileStore) WriteEnvelope(path string, envelope domain.Envelope) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	b, err := json.Marshal(envelope)
	if err != nil {
		return err
	}
	return writeFile(path, b, 0o600)
}

// ReadEnvelope parses the envelope at path and rejects unknown versions.
func (s *EnvelopeFileStore) ReadEnvelope(path string) (domain.Envelope, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	b, err := readFile(path)
	if err != nil {
		return domain.Envelope{}, err
	}
	if b == nil {
		return domain.Envelope{}, fmt.Errorf("envelope %s not found", filepath.Base(path))
	}
	var env domain.Envelope
	if err := json.Unmarshal(b, &env); err != nil {
		return domain.Envelope{}, fmt.Errorf("parse envelope %s: %w", filepath.Base(path), err)
	}
	if env.Version > domain.EnvelopeFormatVersion {
		return domain.Envelope{}, fmt.Errorf("unsupported envelope version %d", env.Version)
	}
	return env, nil
}

// ReadPlainFile reads an arbitrary file; missing files are an error here.
func (s *EnvelopeFileStore) ReadPlainFile(path string) ([]byte, error) {
	return os.ReadFile(path)
}

// WritePlainFile writes data at path, creating parent directories as needed.
func (s *EnvelopeFileStore) WritePlainFile(path string, data []byte) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := os.MkdirAll(filepath.Dir(path), 0o700); err != nil {
		return err
	}
	return writeFile(path, data, 0o600)
}

// FileExists reports whether path exists and is a regular file.
func (s *EnvelopeFileStore) FileExists(path string) bool {
	return fileExists(path)
}

// Compile-time assertion that EnvelopeFileStore implements domain.EnvelopeStore.
var _ domain.EnvelopeStore = (*EnvelopeFileStore)(nil)
