package xkey

import (
	"crypto/sha512"

	"github.com/TheusHen/encwallet/encwallet/crypto"
	"github.com/TheusHen/encwallet/encwallet/ed25519x"
	"github.com/TheusHen/encwallet/encwallet/secret"
)

// scratch holds every intermediate secret of one operation. Each exported operation allocates
// its own and wipes it with defer, so calls never share secret state.
type scratch struct {
	stretched crypto.Stretched
	scalar    PlaintextScalar
	child     PlaintextScalar
	mac       [sha512.Size]byte
}

func (s *scratch) wipe() {
	s.stretched.Wipe()
	s.scalar.Wipe()
	s.child.Wipe()
	secret.Wipe(s.mac[:])
}

func (s *scratch) zeroed() bool {
	return secret.IsZero(s.stretched[:]) &&
		secret.IsZero(s.scalar[:]) &&
		secret.IsZero(s.child[:]) &&
		secret.IsZero(s.mac[:])
}

// combine runs the stream cipher keyed by pw from src into dst, or copies in passthrough mode.
func (s *scratch) combine(pw Password, dst, src *[ScalarSize]byte) {
	pw.mustBeSet()
	if pw.Unencrypted() {
		*dst = *src
		return
	}
	defer s.stretched.Wipe()
	s.stretched.StretchPassword(pw.bytes)
	crypto.Combine(dst[:], src[:], s.stretched.Key(), s.stretched.Nonce())
}

func (s *scratch) open(ext *ExtendedKey, pw Password, dst *PlaintextScalar) {
	s.combine(pw, dst.raw(), (*[ScalarSize]byte)(&ext.Encrypted))
}

func (s *scratch) seal(scalar *PlaintextScalar, cc *ChainCode, pw Password) ExtendedKey {
	pw.mustBeSet()
	ext := ExtendedKey{
		Public:    ed25519x.PublicKey(scalar.raw()),
		ChainCode: *cc,
	}
	s.combine(pw, (*[ScalarSize]byte)(&ext.Encrypted), scalar.raw())
	return ext
}

func openWith(s *scratch, ext *ExtendedKey, pw Password, dst *PlaintextScalar) {
	defer s.wipe()
	s.open(ext, pw, dst)
}

func sealWith(s *scratch, scalar *PlaintextScalar, cc *ChainCode, pw Password) ExtendedKey {
	defer s.wipe()
	return s.seal(scalar, cc, pw)
}

// Open decrypts the scalar of ext into dst. The caller owns dst and must wipe it.
// Prefer WithScalar, which wipes on return.
func Open(ext *ExtendedKey, pw Password, dst *PlaintextScalar) {
	openWith(new(scratch), ext, pw, dst)
}

// Seal builds a record from a plaintext scalar and chain code. The public key is computed from
// the scalar. scalar is left untouched; it remains the caller's to wipe.
func Seal(scalar *PlaintextScalar, cc *ChainCode, pw Password) ExtendedKey {
	return sealWith(new(scratch), scalar, cc, pw)
}

// WithScalar decrypts the scalar of ext and passes it to fn. The scalar is wiped when fn
// returns or panics; fn must not retain it.
func WithScalar(ext *ExtendedKey, pw Password, fn func(*PlaintextScalar) error) error {
	s := new(scratch)
	defer s.wipe()
	s.open(ext, pw, &s.scalar)
	return fn(&s.scalar)
}

// RecomputePublicKey decrypts ext and returns the public key of the decrypted scalar,
// ignoring the stored one. It does not compare the two.
func RecomputePublicKey(ext *ExtendedKey, pw Password) PublicKey {
	s := new(scratch)
	defer s.wipe()
	s.open(ext, pw, &s.scalar)
	return ed25519x.PublicKey(s.scalar.raw())
}

// ChangePassword re-seals the scalar of ext under newPw. Supplying the wrong oldPw silently
// produces a record for a different scalar.
func ChangePassword(ext *ExtendedKey, oldPw, newPw Password) ExtendedKey {
	s := new(scratch)
	defer s.wipe()
	newPw.mustBeSet()
	s.open(ext, oldPw, &s.scalar)
	return s.seal(&s.scalar, &ext.ChainCode, newPw)
}
