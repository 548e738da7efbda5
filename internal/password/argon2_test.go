package password_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"moysekret/internal/password"
)

// testParams keeps the KDF cheap in tests.
var testParams = password.Params{
	MemoryKiB: 8 * 1024,
	Time:      1,
	Threads:   1,
	SaltBytes: 16,
	KeyBytes:  32,
}

func TestHashVerify_RoundTrip(t *testing.T) {
	encoded, err := password.HashWithParams("correct horse battery staple", testParams)
	require.NoError(t, err)
	require.True(t, strings.HasPrefix(encoded, "$argon2id$v=19$"))

	require.NoError(t, password.Verify("correct horse battery staple", encoded))
}

func TestVerify_WrongPassword(t *testing.T) {
	encoded, err := password.HashWithParams("right", testParams)
	require.NoError(t, err)

	err = password.Verify("wrong", encoded)
	require.ErrorIs(t, err, password.ErrMismatch)
}

func TestHash_UniqueSalts(t *testing.T) {
	a, err := password.HashWithParams("same", testParams)
	require.NoError(t, err)
	b, err := password.HashWithParams("same", testParams)
	require.NoError(t, err)
	require.NotEqual(t, a, b)
}

func TestVerify_HonoursEncodedParams(t *testing.T) {
	p := testParams
	p.Time = 2
	encoded, err := password.HashWithParams("pw", p)
	require.NoError(t, err)
	require.Contains(t, encoded, "t=2")

	// Verify must re-derive with t=2 even though the default is t=1.
	require.NoError(t, password.Verify("pw", encoded))
}

func TestVerify_InvalidEncodings(t *testing.T) {
	cases := []string{
		"",
		"garbage",
		"$argon2i$v=19$m=8192,t=1,p=1$c2FsdA$aGFzaA",
		"$argon2id$v=18$m=8192,t=1,p=1$c2FsdA$aGFzaA",
		"$argon2id$v=19$m=8192,t=1,p=1$!!$aGFzaA",
	}
	for _, c := range cases {
		err := password.Verify("pw", c)
		require.Error(t, err, "input %q", c)
		require.NotErrorIs(t, err, password.ErrMismatch, "input %q", c)
	}
}
