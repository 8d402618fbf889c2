package xkey

import (
	"github.com/TheusHen/encwallet/encwallet/ed25519x"
	"github.com/TheusHen/encwallet/encwallet/secret"
)

const (
	ScalarSize    = ed25519x.ScalarSize
	PublicKeySize = ed25519x.PublicKeySize
	ChainCodeSize = 32
	SignatureSize = ed25519x.SignatureSize

	// ExtendedKeySize is the length of the record: encrypted scalar, public key, chain code.
	ExtendedKeySize = ScalarSize + PublicKeySize + ChainCodeSize
)

// EncryptedScalar is a scalar as stored at rest.
type EncryptedScalar [ScalarSize]byte

// PlaintextScalar is a decrypted private scalar. Holders must call Wipe when done.
type PlaintextScalar [ScalarSize]byte

// Wipe zeroes the scalar.
func (s *PlaintextScalar) Wipe() {
	secret.Wipe(s[:])
}

func (s *PlaintextScalar) raw() *[ScalarSize]byte {
	return (*[ScalarSize]byte)(s)
}

// PublicKey is an Ed25519 public key.
type PublicKey [PublicKeySize]byte

// Verify reports whether sig is a valid signature of message under k.
func (k *PublicKey) Verify(message []byte, sig *Signature) bool {
	return ed25519x.Verify((*[PublicKeySize]byte)(k), message, (*[SignatureSize]byte)(sig))
}

// ChainCode is the non-secret value propagated through the derivation tree.
type ChainCode [ChainCodeSize]byte

// Signature is an Ed25519 signature.
type Signature [SignatureSize]byte

// ExtendedKey is the persisted record. It is an immutable value; derivation reads a parent and
// returns a new record.
type ExtendedKey struct {
	Encrypted EncryptedScalar
	Public    PublicKey
	ChainCode ChainCode
}

// Bytes returns the 96-byte wire layout:
//
//	offset  0..32  encrypted scalar
//	offset 32..64  public key
//	offset 64..96  chain code
func (k *ExtendedKey) Bytes() [ExtendedKeySize]byte {
	var out [ExtendedKeySize]byte
	copy(out[:ScalarSize], k.Encrypted[:])
	copy(out[ScalarSize:ScalarSize+PublicKeySize], k.Public[:])
	copy(out[ScalarSize+PublicKeySize:], k.ChainCode[:])
	return out
}

// ExtendedKeyFromBytes splits a 96-byte record into its fields.
func ExtendedKeyFromBytes(b *[ExtendedKeySize]byte) ExtendedKey {
	var k ExtendedKey
	copy(k.Encrypted[:], b[:ScalarSize])
	copy(k.Public[:], b[ScalarSize:ScalarSize+PublicKeySize])
	copy(k.ChainCode[:], b[ScalarSize+PublicKeySize:])
	return k
}
