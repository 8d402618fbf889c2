// Package ed25519x implements the Ed25519 operations the wallet needs on raw scalars.
//
// Unlike crypto/ed25519, keys here are 32-byte scalars used directly (reduced modulo the group
// order l) rather than seeds that are hashed and clamped. This keeps scalar addition homomorphic:
// PublicKey(a + b) == PublicKey(a) + b·B, which soft derivation relies on.
//
// Signatures produced by SignExtended verify under standard Ed25519 verification.
package ed25519x
