package xkey

import "testing"

// Each operation runs against a caller-visible scratch record that must be all zero afterwards.
func TestScratchWipedAfterOperations(t *testing.T) {
	parent, pw := testRoot(t)

	tests := []struct {
		name string
		run  func(s *scratch)
	}{
		{"open", func(s *scratch) {
			var dst PlaintextScalar
			defer dst.Wipe()
			openWith(s, &parent, pw, &dst)
		}},
		{"seal", func(s *scratch) {
			sc, cc := testScalar, testChain
			_ = sealWith(s, &sc, &cc, pw)
		}},
		{"sign", func(s *scratch) {
			_ = signWith(s, &parent, pw, []byte("hello"))
		}},
		{"deriveNormal", func(s *scratch) {
			_ = deriveWith(s, &parent, pw, Normal, 1)
		}},
		{"deriveHardened", func(s *scratch) {
			_ = deriveWith(s, &parent, pw, Hardened, 1)
		}},
		{"deriveUnencrypted", func(s *scratch) {
			_ = deriveWith(s, &parent, NoPassword(), Hardened, 1)
		}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := new(scratch)
			tt.run(s)
			if !s.zeroed() {
				t.Fatalf("scratch not wiped: %+v", *s)
			}
		})
	}
}

func TestScratchWipedOnPanic(t *testing.T) {
	parent, _ := testRoot(t)
	s := new(scratch)
	s.scalar[0] = 1 // simulate material left by a partially completed step

	func() {
		defer func() { _ = recover() }()
		var zero Password
		_ = signWith(s, &parent, zero, nil)
	}()
	if !s.zeroed() {
		t.Fatalf("scratch not wiped after panic")
	}
}
