package ed25519x

import (
	"bytes"
	"crypto/ed25519"
	"crypto/sha512"
	"testing"

	"filippo.io/edwards25519"
	"pgregory.net/rapid"
)

func drawScalar(t *rapid.T, label string) *[ScalarSize]byte {
	return (*[ScalarSize]byte)(rapid.SliceOfN(rapid.Byte(), ScalarSize, ScalarSize).Draw(t, label))
}

type fataler interface {
	Helper()
	Fatalf(format string, args ...any)
}

func decodePoint(t fataler, b [PublicKeySize]byte) *edwards25519.Point {
	t.Helper()
	p, err := new(edwards25519.Point).SetBytes(b[:])
	if err != nil {
		t.Fatalf("SetBytes: %v", err)
	}
	return p
}

// A clamped SHA-512 seed hash is the scalar crypto/ed25519 uses, so both must agree.
func TestPublicKeyMatchesStdlib(t *testing.T) {
	seed := make([]byte, ed25519.SeedSize)
	for i := range seed {
		seed[i] = byte(i)
	}
	priv := ed25519.NewKeyFromSeed(seed)

	h := sha512.Sum512(seed)
	var scalar [ScalarSize]byte
	copy(scalar[:], h[:32])
	scalar[0] &= 248
	scalar[31] &= 127
	scalar[31] |= 64

	pub := PublicKey(&scalar)
	if !bytes.Equal(pub[:], priv.Public().(ed25519.PublicKey)) {
		t.Fatalf("public key mismatch with crypto/ed25519")
	}

	msg := []byte("hello")
	var cc [ScalarSize]byte
	sig := SignExtended(msg, &cc, &scalar, &pub)
	if !ed25519.Verify(priv.Public().(ed25519.PublicKey), msg, sig[:]) {
		t.Fatalf("crypto/ed25519 rejected signature")
	}
}

func TestSignVerify(t *testing.T) {
	var scalar, cc [ScalarSize]byte
	for i := range scalar {
		scalar[i] = 0x01
		cc[i] = 0x02
	}
	pub := PublicKey(&scalar)

	msg := []byte("hello")
	sig := SignExtended(msg, &cc, &scalar, &pub)
	if !Verify(&pub, msg, &sig) {
		t.Fatalf("signature verification failed")
	}
	if Verify(&pub, []byte("hellp"), &sig) {
		t.Fatalf("expected verification to fail for tampered message")
	}

	again := SignExtended(msg, &cc, &scalar, &pub)
	if again != sig {
		t.Fatalf("signing is not deterministic")
	}

	var otherCC [ScalarSize]byte
	otherCC[0] = 0xaa
	other := SignExtended(msg, &otherCC, &scalar, &pub)
	if other == sig {
		t.Fatalf("chain code did not affect the signature nonce")
	}
	if !Verify(&pub, msg, &other) {
		t.Fatalf("signature with another chain code failed to verify")
	}

	var zero [SignatureSize]byte
	if sig == zero {
		t.Fatalf("unexpected zeroed signature")
	}
}

func TestScalarAddHomomorphic(t *testing.T) {
	rapid.Check(t, func(rt *rapid.T) {
		a := drawScalar(rt, "a")
		b := drawScalar(rt, "b")

		var sum [ScalarSize]byte
		ScalarAdd(&sum, a, b)

		got := decodePoint(rt, PublicKey(&sum))
		want := new(edwards25519.Point).Add(decodePoint(rt, PublicKey(a)), decodePoint(rt, PublicKey(b)))
		if got.Equal(want) != 1 {
			rt.Fatalf("PublicKey(a+b) != PublicKey(a)+PublicKey(b)")
		}

		var rev [ScalarSize]byte
		ScalarAdd(&rev, b, a)
		if rev != sum {
			rt.Fatalf("scalar addition is not commutative")
		}
	})
}

func TestScalarAddIdentityAndAlias(t *testing.T) {
	var a, zero [ScalarSize]byte
	for i := range a {
		a[i] = byte(i)
	}
	a[31] = 0x01 // below the group order

	var out [ScalarSize]byte
	ScalarAdd(&out, &a, &zero)
	if out != a {
		t.Fatalf("a + 0 != a")
	}

	b := a
	ScalarAdd(&b, &b, &b)
	var want [ScalarSize]byte
	ScalarAdd(&want, &a, &a)
	if b != want {
		t.Fatalf("aliased addition mismatch")
	}
}

func BenchmarkSignExtended(b *testing.B) {
	var scalar, cc [ScalarSize]byte
	scalar[0] = 1
	pub := PublicKey(&scalar)
	msg := make([]byte, 64)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = SignExtended(msg, &cc, &scalar, &pub)
	}
}
