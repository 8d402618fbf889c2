package xkey

import (
	"github.com/TheusHen/encwallet/encwallet/ed25519x"
)

func signWith(s *scratch, ext *ExtendedKey, pw Password, message []byte) Signature {
	defer s.wipe()
	s.open(ext, pw, &s.scalar)

	// The stored public key is not trusted for signing.
	pub := ed25519x.PublicKey(s.scalar.raw())
	return ed25519x.SignExtended(message, (*[ChainCodeSize]byte)(&ext.ChainCode), s.scalar.raw(), &pub)
}

// Sign decrypts the scalar of ext and signs message with it, mixing the chain code into the
// nonce. The signature verifies against the public key of the decrypted scalar, which equals
// ext.Public only when pw is correct.
func Sign(ext *ExtendedKey, pw Password, message []byte) Signature {
	return signWith(new(scratch), ext, pw, message)
}
