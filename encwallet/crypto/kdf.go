package crypto

import (
	"crypto/sha512"

	"golang.org/x/crypto/pbkdf2"

	"github.com/TheusHen/encwallet/encwallet/secret"
)

const (
	// Iterations is the PBKDF2 iteration count used by Stretch.
	Iterations = 15000

	// KeySize and NonceSize split the StretchedSize bytes produced for the stream cipher.
	KeySize       = 32
	NonceSize     = 8
	StretchedSize = KeySize + NonceSize
)

// salt is 22 bytes: the text plus a NUL terminator, which existing records were stretched with.
var salt = []byte("encrypted wallet salt\x00")

// Stretch fills dst with PBKDF2-HMAC-SHA512 output for password.
// The output length is len(dst). An empty password provides no protection;
// callers decide what an empty password means.
func Stretch(dst, password []byte) {
	out := pbkdf2.Key(password, salt, Iterations, len(dst), sha512.New)
	copy(dst, out)
	secret.Wipe(out)
}

// Stretched is the key and nonce material for one encryption or decryption.
// It must not be cached or reused across independent calls.
type Stretched [StretchedSize]byte

// StretchPassword derives fresh key and nonce material from password into s.
func (s *Stretched) StretchPassword(password []byte) {
	Stretch(s[:], password)
}

// Key returns the first KeySize bytes.
func (s *Stretched) Key() *[KeySize]byte {
	return (*[KeySize]byte)(s[:KeySize])
}

// Nonce returns the last NonceSize bytes.
func (s *Stretched) Nonce() *[NonceSize]byte {
	return (*[NonceSize]byte)(s[KeySize:])
}

// Wipe zeroes the material.
func (s *Stretched) Wipe() {
	secret.Wipe(s[:])
}
