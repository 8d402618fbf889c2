package ed25519x

import (
	"crypto/ed25519"
	"crypto/sha512"

	"filippo.io/edwards25519"

	"github.com/TheusHen/encwallet/encwallet/secret"
)

const (
	ScalarSize    = 32
	PublicKeySize = ed25519.PublicKeySize
	SignatureSize = ed25519.SignatureSize
)

// setScalar sets s to b mod l, with b read little-endian.
func setScalar(s *edwards25519.Scalar, b *[ScalarSize]byte) {
	var wide [64]byte
	defer secret.Wipe(wide[:])
	copy(wide[:], b[:])
	setWide(s, &wide)
}

func setWide(s *edwards25519.Scalar, wide *[64]byte) {
	if _, err := s.SetUniformBytes(wide[:]); err != nil {
		// Only fails on a length other than 64.
		panic("ed25519x: " + err.Error())
	}
}

func wipeScalar(s *edwards25519.Scalar) {
	*s = edwards25519.Scalar{}
}

// PublicKey returns scalar·B.
func PublicKey(scalar *[ScalarSize]byte) [PublicKeySize]byte {
	var a edwards25519.Scalar
	defer wipeScalar(&a)
	setScalar(&a, scalar)

	var pub [PublicKeySize]byte
	copy(pub[:], new(edwards25519.Point).ScalarBaseMult(&a).Bytes())
	return pub
}

// SignExtended signs message with scalar. The chain code is mixed into the deterministic nonce:
// r = SHA-512(scalar || chainCode || message) mod l. publicKey must be PublicKey(scalar).
func SignExtended(message []byte, chainCode, scalar *[ScalarSize]byte, publicKey *[PublicKeySize]byte) [SignatureSize]byte {
	var a, r, s, k edwards25519.Scalar
	var digest [sha512.Size]byte
	defer func() {
		wipeScalar(&a)
		wipeScalar(&r)
		wipeScalar(&s)
		secret.Wipe(digest[:])
	}()
	setScalar(&a, scalar)

	h := sha512.New()
	h.Write(scalar[:])
	h.Write(chainCode[:])
	h.Write(message)
	h.Sum(digest[:0])
	setWide(&r, &digest)

	var sig [SignatureSize]byte
	copy(sig[:32], new(edwards25519.Point).ScalarBaseMult(&r).Bytes())

	h.Reset()
	h.Write(sig[:32])
	h.Write(publicKey[:])
	h.Write(message)
	h.Sum(digest[:0])
	setWide(&k, &digest)

	s.MultiplyAdd(&k, &a, &r)
	copy(sig[32:], s.Bytes())
	return sig
}

// ScalarAdd sets dst to a + b mod l in canonical encoding. dst may alias a or b.
func ScalarAdd(dst, a, b *[ScalarSize]byte) {
	var x, y edwards25519.Scalar
	defer func() {
		wipeScalar(&x)
		wipeScalar(&y)
	}()
	setScalar(&x, a)
	setScalar(&y, b)
	x.Add(&x, &y)

	enc := x.Bytes()
	copy(dst[:], enc)
	secret.Wipe(enc)
}

// Verify reports whether sig is a valid Ed25519 signature of message by publicKey.
func Verify(publicKey *[PublicKeySize]byte, message []byte, sig *[SignatureSize]byte) bool {
	return ed25519.Verify(publicKey[:], message, sig[:])
}
