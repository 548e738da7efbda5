package store

import (
	"fmt"
	"path/filepath"
	"sync"

	"github.com/BurntSushi/toml"

	"moysekret/internal/domain"
)

// ProfileFileStore persists profile descriptors as TOML files named
// .moy-sekret.<name>.toml under the configured home directory.
type ProfileFileStore struct {
	home string
	mu   sync.Mutex
}

// NewProfileFileStore returns a ProfileFileStore rooted at home.
func NewProfileFileStore(home string) *ProfileFileStore {
	return &ProfileFileStore{home: home}
}

// SaveProfile writes the profile descriptor.
func (s *ProfileFileStore) SaveProfile(profile domain.Profile) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	b, err := toml.Marshal(profile)
	if err != nil {
		return err
	}
	return writeFile(s.profilePath(profile.Name), b, 0o600)
}

// LoadProfile reads a profile descriptor and reports whether it exists.
func (s *ProfileFileStore) LoadProfile(name domain.ProfileName) (domain.Profile, bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	b, err := readFile(s.profilePath(name))
	if err != nil {
		return domain.Profile{}, false, err
	}
	if b == nil {
		return domain.Profile{}, false, nil
	}
	var p domain.Profile
	if err := toml.Unmarshal(b, &p); err != nil {
		return domain.Profile{}, false, fmt.Errorf("parse profile %q: %w", name, err)
	}
	return p, true, nil
}

func (s *ProfileFileStore) profilePath(name domain.ProfileName) string {
	return filepath.Join(s.home, fmt.Sprintf(".moy-sekret.%s.toml", name))
}

// Compile-time assertion that ProfileFileStore implements domain.ProfileStore.
var _ domain.ProfileStore = (*ProfileFileStore)(nil)
