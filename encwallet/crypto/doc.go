// Package crypto provides the symmetric layer that protects scalars at rest.
//
// Design constraints:
//   - Key stretching via PBKDF2-HMAC-SHA512 with a fixed salt and 15000 iterations
//   - Encryption via the ChaCha20 stream (20 rounds, 32-byte key, 8-byte nonce)
//   - No authentication tag: a wrong password or tampered ciphertext decrypts to wrong bytes
//   - Deterministic: the same password always yields the same key and nonce
package crypto
