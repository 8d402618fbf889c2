// Package encwallet provides password-protected, hierarchically derivable Ed25519 key material.
//
// A private scalar is never stored in the clear: it is encrypted under a key stretched from a
// user password, and child keys are derived from a parent extended key (encrypted scalar, public
// key and chain code) without persisting a decrypted scalar. See the xkey package for the
// extended key record, signing and derivation.
package encwallet
