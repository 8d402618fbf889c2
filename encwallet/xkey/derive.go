package xkey

import (
	"crypto/hmac"
	"crypto/sha512"
	"encoding/binary"
	"fmt"

	"github.com/TheusHen/encwallet/encwallet/ed25519x"
)

// Branch selects the derivation scheme.
type Branch uint8

const (
	// Normal derivation tweaks the parent scalar by an HMAC of public data.
	Normal Branch = iota
	// Hardened derivation seeds the child from an HMAC of the parent scalar.
	Hardened
)

// Domain separation tags; they keep the two branches unrelated for the same parent and index.
var (
	tagNormal   = []byte("NORM")
	tagHardened = []byte("HARD")
)

func (b Branch) String() string {
	switch b {
	case Normal:
		return "normal"
	case Hardened:
		return "hardened"
	default:
		return fmt.Sprintf("Branch(%d)", uint8(b))
	}
}

func (b Branch) valid() bool {
	return b == Normal || b == Hardened
}

func deriveWith(s *scratch, parent *ExtendedKey, pw Password, branch Branch, index uint32) ExtendedKey {
	if !branch.valid() {
		panic("xkey: unknown derivation " + branch.String())
	}
	pw.mustBeSet()
	defer s.wipe()

	var idx [4]byte
	binary.BigEndian.PutUint32(idx[:], index)

	mac := hmac.New(sha512.New, parent.ChainCode[:])
	switch branch {
	case Normal:
		mac.Write(tagNormal)
		mac.Write(parent.Public[:])
		mac.Write(idx[:])
		mac.Sum(s.mac[:0])

		s.open(parent, pw, &s.scalar)
		ed25519x.ScalarAdd(s.child.raw(), s.scalar.raw(), (*[ScalarSize]byte)(s.mac[:ScalarSize]))
	case Hardened:
		s.open(parent, pw, &s.scalar)

		mac.Write(tagHardened)
		mac.Write(s.scalar[:])
		mac.Write(idx[:])
		mac.Sum(s.mac[:0])

		copy(s.child[:], s.mac[:ScalarSize])
	}
	mac.Reset()

	var cc ChainCode
	copy(cc[:], s.mac[ScalarSize:])
	return s.seal(&s.child, &cc, pw)
}

// Derive returns the child of parent at index on the given branch. parent is not modified.
// It panics if branch is neither Normal nor Hardened.
func Derive(parent *ExtendedKey, pw Password, branch Branch, index uint32) ExtendedKey {
	return deriveWith(new(scratch), parent, pw, branch, index)
}

// DeriveNormal is Derive on the Normal branch.
func DeriveNormal(parent *ExtendedKey, pw Password, index uint32) ExtendedKey {
	return Derive(parent, pw, Normal, index)
}

// DeriveHardened is Derive on the Hardened branch.
func DeriveHardened(parent *ExtendedKey, pw Password, index uint32) ExtendedKey {
	return Derive(parent, pw, Hardened, index)
}
