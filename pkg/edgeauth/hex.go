package edgeauth

import (
	"encoding/hex"
	"fmt"
)

// DecodeHexKey decodes a hex-encoded key into the raw HMAC key bytes.
//
// Characters are consumed two at a time, each pair forming one byte, so
// the result is len(s)/2 bytes long. Malformed input is rejected with
// ErrInvalidHexKey instead of being folded into the key.
func DecodeHexKey(s string) ([]byte, error) {
	if len(s)%2 != 0 {
		return nil, ErrInvalidHexKey.WithDetails(fmt.Sprintf("odd length %d", len(s)))
	}

	out := make([]byte, len(s)/2)
	for i := 0; i < len(s); i += 2 {
		hi, ok := fromHexChar(s[i])
		if !ok {
			return nil, ErrInvalidHexKey.WithCause(hex.InvalidByteError(s[i])).
				WithDetails(fmt.Sprintf("offset %d", i))
		}
		lo, ok := fromHexChar(s[i+1])
		if !ok {
			return nil, ErrInvalidHexKey.WithCause(hex.InvalidByteError(s[i+1])).
				WithDetails(fmt.Sprintf("offset %d", i+1))
		}
		out[i/2] = hi<<4 | lo
	}
	return out, nil
}

func fromHexChar(c byte) (byte, bool) {
	switch {
	case '0' <= c && c <= '9':
		return c - '0', true
	case 'a' <= c && c <= 'f':
		return c - 'a' + 10, true
	case 'A' <= c && c <= 'F':
		return c - 'A' + 10, true
	}
	return 0, false
}
