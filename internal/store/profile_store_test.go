package store_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"moysekret/internal/domain"
	"moysekret/internal/store"
)

func TestProfile_SaveLoad(t *testing.T) {
	home := t.TempDir()
	var profiles domain.ProfileStore = store.NewProfileFileStore(home)

	p := domain.Profile{Name: "tester", Storage: "/tmp/keep"}
	require.NoError(t, profiles.SaveProfile(p))

	// File lives at .moy-sekret.<name>.toml under home.
	_, err := os.Stat(filepath.Join(home, ".moy-sekret.tester.toml"))
	require.NoError(t, err)

	got, ok, err := profiles.LoadProfile("tester")
	require.NoError(t, err)
	require.True(t, ok)
	require.Equal(t, p, got)
}

func TestProfile_Missing(t *testing.T) {
	var profiles domain.ProfileStore = store.NewProfileFileStore(t.TempDir())

	_, ok, err := profiles.LoadProfile("nobody")
	require.NoError(t, err)
	require.False(t, ok)
}

func TestProfile_CorruptTOML(t *testing.T) {
	home := t.TempDir()
	path := filepath.Join(home, ".moy-sekret.broken.toml")
	require.NoError(t, os.WriteFile(path, []byte("name = [unclosed"), 0o600))

	var profiles domain.ProfileStore = store.NewProfileFileStore(home)
	_, _, err := profiles.LoadProfile("broken")
	require.Error(t, err)
}
