// Package xkey implements password-protected Ed25519 extended keys.
//
// An ExtendedKey is a fixed 96-byte record: the encrypted scalar, the public key of the
// plaintext scalar, and the chain code. The scalar is only ever decrypted into a scoped buffer
// that is wiped before the operation returns.
//
// Two derivation branches produce a child ExtendedKey from a parent and a 32-bit index:
//   - Normal: child = parent + HMAC(chainCode, "NORM" || publicKey || index), so the child
//     public key is computable from public data once the tweak is known
//   - Hardened: child = HMAC(chainCode, "HARD" || parentScalar || index), unrelated to the
//     parent by any public relation
//
// There is no integrity check. A wrong password yields a well-formed but wrong scalar,
// and therefore wrong children and signatures, never an error.
package xkey
