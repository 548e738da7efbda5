package signature_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"moysekret/internal/services/keyring"
	"moysekret/internal/services/signature"
	"moysekret/internal/store"
)

const goodPassphrase = "Sup3r-Secret-Phrase!"

func newService(t *testing.T) (*signature.Service, string) {
	t.Helper()
	home := t.TempDir()

	keyringSvc := keyring.New(store.NewProfileFileStore(home), store.NewKeyFileStore())
	_, _, err := keyringSvc.InitProfile("tester", filepath.Join(home, "vault"), goodPassphrase, false)
	require.NoError(t, err)

	return signature.New(keyringSvc, store.NewEnvelopeFileStore()), t.TempDir()
}

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestSignVerify_RoundTrip(t *testing.T) {
	svc, dir := newService(t)
	src := writeFile(t, dir, "doc.txt", "contract text")

	sigPath, err := svc.SignFile("tester", goodPassphrase, src, false)
	require.NoError(t, err)
	require.Equal(t, src+".sig", sigPath)

	// Default signature path resolution.
	require.NoError(t, svc.VerifyFile("tester", src, ""))
	// Explicit signature path.
	require.NoError(t, svc.VerifyFile("tester", src, sigPath))
}

func TestVerify_ModifiedFile(t *testing.T) {
	svc, dir := newService(t)
	src := writeFile(t, dir, "doc.txt", "contract text")

	_, err := svc.SignFile("tester", goodPassphrase, src, false)
	require.NoError(t, err)

	require.NoError(t, os.WriteFile(src, []byte("contract text, amended"), 0o600))
	require.ErrorIs(t, svc.VerifyFile("tester", src, ""), signature.ErrBadSignature)
}

func TestSign_RejectsExistingSignatureUnlessOverride(t *testing.T) {
	svc, dir := newService(t)
	src := writeFile(t, dir, "doc.txt", "contract text")

	_, err := svc.SignFile("tester", goodPassphrase, src, false)
	require.NoError(t, err)

	_, err = svc.SignFile("tester", goodPassphrase, src, false)
	require.ErrorIs(t, err, signature.ErrTargetExists)

	_, err = svc.SignFile("tester", goodPassphrase, src, true)
	require.NoError(t, err)
}

func TestSign_MissingSource(t *testing.T) {
	svc, dir := newService(t)

	_, err := svc.SignFile("tester", goodPassphrase, filepath.Join(dir, "absent"), false)
	require.ErrorIs(t, err, signature.ErrSourceMissing)
}

func TestVerify_MissingSignature(t *testing.T) {
	svc, dir := newService(t)
	src := writeFile(t, dir, "doc.txt", "contract text")

	require.ErrorIs(t, svc.VerifyFile("tester", src, ""), signature.ErrSourceMissing)
}
