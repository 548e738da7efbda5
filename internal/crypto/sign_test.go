package crypto_test

import (
	"testing"

	"moysekret/internal/crypto"
)

func TestSignVerify(t *testing.T) {
	priv, pub, err := crypto.GenerateSignKeypair()
	if err != nil {
		t.Fatalf("GenerateSignKeypair: %v", err)
	}

	msg := []byte("signed content")
	sig := crypto.Sign(priv, msg)

	if !crypto.Verify(pub, msg, sig) {
		t.Fatal("signature should verify")
	}
	if crypto.Verify(pub, append(msg, 'x'), sig) {
		t.Fatal("modified message should not verify")
	}
	sig[0] ^= 0xff
	if crypto.Verify(pub, msg, sig) {
		t.Fatal("modified signature should not verify")
	}
}

func TestFingerprint_Stable(t *testing.T) {
	_, pub, err := crypto.GenerateBoxKeypair()
	if err != nil {
		t.Fatalf("GenerateBoxKeypair: %v", err)
	}
	a := crypto.Fingerprint(pub.Slice())
	b := crypto.Fingerprint(pub.Slice())
	if a != b {
		t.Fatalf("fingerprint not deterministic: %q vs %q", a, b)
	}
	if len(a) != 64 {
		t.Fatalf("want 64 hex chars, got %d", len(a))
	}
}
