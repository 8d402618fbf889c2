package xkey

import "errors"

var ErrEmptyPassword = errors.New("xkey: empty password; use NoPassword for unencrypted records")

type passwordMode uint8

const (
	modeUnset passwordMode = iota
	modeStretched
	modeUnencrypted
)

// Password selects how a scalar is protected at rest.
//
// The zero value is not usable: operations given it panic. Build one with NewPassword, or with
// NoPassword to store scalars unencrypted.
type Password struct {
	mode  passwordMode
	bytes []byte
}

// NewPassword returns a Password whose bytes are stretched into a cipher key.
// The slice is referenced, not copied; the caller keeps ownership of it.
func NewPassword(b []byte) (Password, error) {
	if len(b) == 0 {
		return Password{}, ErrEmptyPassword
	}
	return Password{mode: modeStretched, bytes: b}, nil
}

// NoPassword returns the passthrough mode: the "encrypted" scalar is the plaintext scalar.
func NoPassword() Password {
	return Password{mode: modeUnencrypted}
}

// Unencrypted reports whether p is the passthrough mode.
func (p Password) Unencrypted() bool {
	return p.mode == modeUnencrypted
}

func (p Password) mustBeSet() {
	if p.mode == modeUnset {
		panic("xkey: zero Password; use NewPassword or NoPassword")
	}
}
