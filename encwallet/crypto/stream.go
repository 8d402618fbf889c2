package crypto

import (
	"golang.org/x/crypto/chacha20"
)

// Rounds is the ChaCha round count. golang.org/x/crypto/chacha20 implements exactly this variant.
const Rounds = 20

// Combine XORs src with the ChaCha20 keystream for key and nonce into dst.
// Applying Combine twice with the same key and nonce returns the original input,
// so it serves for both encryption and decryption. dst must be at least len(src)
// bytes and must either equal src or not overlap it.
//
// The 8-byte nonce with a 64-bit block counter is laid out as the 12-byte RFC 8439
// nonce 0x00000000 || nonce. The two layouts produce the same keystream for the first
// 2^32 blocks.
func Combine(dst, src []byte, key *[KeySize]byte, nonce *[NonceSize]byte) {
	var iv [chacha20.NonceSize]byte
	copy(iv[chacha20.NonceSize-NonceSize:], nonce[:])

	c, err := chacha20.NewUnauthenticatedCipher(key[:], iv[:])
	if err != nil {
		// Sizes are fixed by the argument types.
		panic("crypto: " + err.Error())
	}
	c.XORKeyStream(dst[:len(src)], src)
	*c = chacha20.Cipher{}
}
