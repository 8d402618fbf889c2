package xkey

import (
	"bytes"
	"testing"

	"pgregory.net/rapid"
)

// Fixed inputs shared by the scenario tests.
var (
	testScalar = PlaintextScalar(bytes.Repeat([]byte{0x01}, ScalarSize))
	testChain  = ChainCode(bytes.Repeat([]byte{0x02}, ChainCodeSize))
)

func mustPassword(t testing.TB, s string) Password {
	t.Helper()
	pw, err := NewPassword([]byte(s))
	if err != nil {
		t.Fatalf("NewPassword(%q): %v", s, err)
	}
	return pw
}

func drawPassword(t *rapid.T) Password {
	b := rapid.SliceOfN(rapid.Byte(), 1, 24).Draw(t, "password")
	pw, err := NewPassword(b)
	if err != nil {
		t.Fatalf("NewPassword: %v", err)
	}
	return pw
}

func drawScalar(t *rapid.T, label string) PlaintextScalar {
	return PlaintextScalar(rapid.SliceOfN(rapid.Byte(), ScalarSize, ScalarSize).Draw(t, label))
}

func drawChainCode(t *rapid.T) ChainCode {
	return ChainCode(rapid.SliceOfN(rapid.Byte(), ChainCodeSize, ChainCodeSize).Draw(t, "chainCode"))
}

func testRoot(t testing.TB) (ExtendedKey, Password) {
	t.Helper()
	pw := mustPassword(t, "test")
	s, cc := testScalar, testChain
	return Seal(&s, &cc, pw), pw
}

func expectPanic(t *testing.T, name string, fn func()) {
	t.Helper()
	defer func() {
		if recover() == nil {
			t.Fatalf("%s: expected panic", name)
		}
	}()
	fn()
}
