package xkey

import (
	"encoding/hex"
	"errors"
)

var (
	ErrBadKeyLen = errors.New("xkey: bad extended key length")
	ErrBadKeyStr = errors.New("xkey: bad extended key string")
)

// MarshalBinary returns the 96-byte layout.
func (k ExtendedKey) MarshalBinary() ([]byte, error) {
	b := k.Bytes()
	return b[:], nil
}

// UnmarshalBinary reads the 96-byte layout. The public key is taken as stored.
func (k *ExtendedKey) UnmarshalBinary(data []byte) error {
	if len(data) != ExtendedKeySize {
		return ErrBadKeyLen
	}
	*k = ExtendedKeyFromBytes((*[ExtendedKeySize]byte)(data))
	return nil
}

func (k ExtendedKey) MarshalText() ([]byte, error) {
	b := k.Bytes()
	hexBytes := make([]byte, hex.EncodedLen(len(b)))
	hex.Encode(hexBytes, b[:])
	return hexBytes, nil
}

func (k *ExtendedKey) UnmarshalText(inp []byte) error {
	if len(inp) != 2*ExtendedKeySize {
		return ErrBadKeyStr
	}
	var b [ExtendedKeySize]byte
	if _, err := hex.Decode(b[:], inp); err != nil {
		return ErrBadKeyStr
	}
	*k = ExtendedKeyFromBytes(&b)
	return nil
}

// ParseExtendedKeyHex parses the hex form produced by MarshalText.
func ParseExtendedKeyHex(s string) (ExtendedKey, error) {
	var k ExtendedKey
	if err := k.UnmarshalText([]byte(s)); err != nil {
		return ExtendedKey{}, err
	}
	return k, nil
}
