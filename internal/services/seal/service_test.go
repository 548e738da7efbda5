package seal_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"moysekret/internal/services/keyring"
	"moysekret/internal/services/seal"
	"moysekret/internal/store"
)

const goodPassphrase = "Sup3r-Secret-Phrase!"

type fixture struct {
	svc     *seal.Service
	storage string
	workDir string
}

func newFixture(t *testing.T) fixture {
	t.Helper()
	home := t.TempDir()
	storage := filepath.Join(home, "vault")

	keyringSvc := keyring.New(store.NewProfileFileStore(home), store.NewKeyFileStore())
	_, _, err := keyringSvc.InitProfile("tester", storage, goodPassphrase, false)
	require.NoError(t, err)

	return fixture{
		svc:     seal.New(keyringSvc, store.NewEnvelopeFileStore()),
		storage: storage,
		workDir: t.TempDir(),
	}
}

func (f fixture) writeSource(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(f.workDir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestEncryptDecrypt_RoundTrip(t *testing.T) {
	f := newFixture(t)
	src := f.writeSource(t, "notes.txt", "my deepest secrets")

	target, err := f.svc.EncryptFile("tester", goodPassphrase, src, false)
	require.NoError(t, err)
	require.Equal(t, filepath.Join(f.storage, "notes.txt.cz"), target)

	// The original is kept and the ciphertext is not the plaintext.
	_, err = os.Stat(src)
	require.NoError(t, err)
	ct, err := os.ReadFile(target)
	require.NoError(t, err)
	require.NotContains(t, string(ct), "my deepest secrets")

	dest := t.TempDir()
	plainPath, err := f.svc.DecryptFile("tester", goodPassphrase, target, dest, false)
	require.NoError(t, err)
	require.Equal(t, filepath.Join(dest, "notes.txt"), plainPath)

	got, err := os.ReadFile(plainPath)
	require.NoError(t, err)
	require.Equal(t, "my deepest secrets", string(got))
}

func TestEncrypt_RejectsAlreadyEncrypted(t *testing.T) {
	f := newFixture(t)
	src := f.writeSource(t, "notes.txt.cz", "whatever")

	_, err := f.svc.EncryptFile("tester", goodPassphrase, src, false)
	require.ErrorIs(t, err, seal.ErrAlreadyEncrypted)
}

func TestEncrypt_RejectsMissingSource(t *testing.T) {
	f := newFixture(t)

	_, err := f.svc.EncryptFile("tester", goodPassphrase, filepath.Join(f.workDir, "absent.txt"), false)
	require.ErrorIs(t, err, seal.ErrSourceMissing)
}

func TestEncrypt_RejectsExistingTargetUnlessOverride(t *testing.T) {
	f := newFixture(t)
	src := f.writeSource(t, "notes.txt", "v1")

	_, err := f.svc.EncryptFile("tester", goodPassphrase, src, false)
	require.NoError(t, err)

	_, err = f.svc.EncryptFile("tester", goodPassphrase, src, false)
	require.ErrorIs(t, err, seal.ErrTargetExists)

	_, err = f.svc.EncryptFile("tester", goodPassphrase, src, true)
	require.NoError(t, err)
}

func TestDecrypt_RejectsNonCzSource(t *testing.T) {
	f := newFixture(t)
	src := f.writeSource(t, "plain.txt", "plain")

	_, err := f.svc.DecryptFile("tester", goodPassphrase, src, f.workDir, false)
	require.ErrorIs(t, err, seal.ErrNotEncrypted)
}

func TestDecrypt_RejectsExistingTargetUnlessOverride(t *testing.T) {
	f := newFixture(t)
	src := f.writeSource(t, "notes.txt", "v1")

	target, err := f.svc.EncryptFile("tester", goodPassphrase, src, false)
	require.NoError(t, err)

	// Decrypting into the directory already holding notes.txt collides.
	_, err = f.svc.DecryptFile("tester", goodPassphrase, target, f.workDir, false)
	require.ErrorIs(t, err, seal.ErrTargetExists)

	plainPath, err := f.svc.DecryptFile("tester", goodPassphrase, target, f.workDir, true)
	require.NoError(t, err)
	require.Equal(t, src, plainPath)
}

func TestDecrypt_TamperedEnvelope(t *testing.T) {
	f := newFixture(t)
	src := f.writeSource(t, "notes.txt", "secret")

	target, err := f.svc.EncryptFile("tester", goodPassphrase, src, false)
	require.NoError(t, err)

	// Flip a ciphertext byte inside the JSON envelope.
	raw, err := os.ReadFile(target)
	require.NoError(t, err)
	raw[len(raw)/2] ^= 0x01
	require.NoError(t, os.WriteFile(target, raw, 0o600))

	_, err = f.svc.DecryptFile("tester", goodPassphrase, target, t.TempDir(), false)
	require.Error(t, err)
}

func TestDecrypt_CreatesDestDir(t *testing.T) {
	f := newFixture(t)
	src := f.writeSource(t, "notes.txt", "secret")

	target, err := f.svc.EncryptFile("tester", goodPassphrase, src, false)
	require.NoError(t, err)

	dest := filepath.Join(t.TempDir(), "nested", "dir")
	plainPath, err := f.svc.DecryptFile("tester", goodPassphrase, target, dest, false)
	require.NoError(t, err)

	got, err := os.ReadFile(plainPath)
	require.NoError(t, err)
	require.Equal(t, "secret", string(got))
}

func TestDecrypt_WrongPassphrase(t *testing.T) {
	f := newFixture(t)
	src := f.writeSource(t, "notes.txt", "secret")

	target, err := f.svc.EncryptFile("tester", goodPassphrase, src, false)
	require.NoError(t, err)

	_, err = f.svc.DecryptFile("tester", "Wr0ng-Passphrase!!", target, t.TempDir(), false)
	require.ErrorIs(t, err, store.ErrWrongPassphrase)
}
