package store_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"moysekret/internal/domain"
	"moysekret/internal/store"
)

func testKeyring() domain.Keyring {
	return domain.Keyring{
		BoxPub:   domain.BoxPublic{1},
		BoxPriv:  domain.BoxPrivate{2},
		SignPub:  domain.SignPublic{3},
		SignPriv: domain.SignPrivate{4},
	}
}

func TestKeyring_SaveLoad(t *testing.T) {
	profile := domain.Profile{Name: "tester", Storage: t.TempDir()}
	var keys domain.KeyStore = store.NewKeyFileStore()

	require.NoError(t, keys.SaveKeyring(profile, "pass", testKeyring()))
	require.True(t, keys.KeyringExists(profile))

	got, err := keys.LoadKeyring(profile, "pass")
	require.NoError(t, err)
	require.Equal(t, testKeyring(), got)
}

func TestKeyring_WrongPassphrase(t *testing.T) {
	profile := domain.Profile{Name: "tester", Storage: t.TempDir()}
	var keys domain.KeyStore = store.NewKeyFileStore()

	require.NoError(t, keys.SaveKeyring(profile, "correct", testKeyring()))

	_, err := keys.LoadKeyring(profile, "wrong")
	require.ErrorIs(t, err, store.ErrWrongPassphrase)
}

func TestKeyring_PublicKeysReadableWithoutPassphrase(t *testing.T) {
	profile := domain.Profile{Name: "tester", Storage: t.TempDir()}
	var keys domain.KeyStore = store.NewKeyFileStore()

	require.NoError(t, keys.SaveKeyring(profile, "pass", testKeyring()))

	boxPub, signPub, err := keys.LoadPublicKeys(profile)
	require.NoError(t, err)
	require.Equal(t, domain.BoxPublic{1}, boxPub)
	require.Equal(t, domain.SignPublic{3}, signPub)
}

func TestKeyring_PrivateKeysNotPlaintext(t *testing.T) {
	profile := domain.Profile{Name: "tester", Storage: t.TempDir()}
	var keys domain.KeyStore = store.NewKeyFileStore()

	kr := testKeyring()
	require.NoError(t, keys.SaveKeyring(profile, "pass", kr))

	raw, err := os.ReadFile(filepath.Join(profile.Storage, "tester.sk.enc"))
	require.NoError(t, err)
	require.NotContains(t, string(raw), "box_priv")
}

func TestKeyring_MissingFiles(t *testing.T) {
	profile := domain.Profile{Name: "ghost", Storage: t.TempDir()}
	var keys domain.KeyStore = store.NewKeyFileStore()

	require.False(t, keys.KeyringExists(profile))
	_, err := keys.LoadKeyring(profile, "pass")
	require.Error(t, err)
}
