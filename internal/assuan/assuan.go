// Package assuan implements the percent-escaped payload encoding used by the
// line-oriented Assuan protocol that secure-entry helpers (pinentry) speak.
// See https://www.gnupg.org/documentation/manuals/assuan/ for the protocol.
package assuan

import (
	"encoding/hex"
	"errors"
	"fmt"
	"strings"
	"unicode/utf8"
)

// ErrMalformedEscape is returned when a percent escape is truncated or does
// not consist of two hex digits.
var ErrMalformedEscape = errors.New("malformed percent escape")

// ErrInvalidText is returned when the decoded byte sequence is not valid
// UTF-8 text.
var ErrInvalidText = errors.New("decoded payload is not valid text")

// Decode decodes a percent-escaped Assuan data payload into a string.
//
// Literal bytes are copied as-is; a '%' introduces a two-hex-digit escape for
// one byte. Decoding is all-or-nothing: any malformed escape or a decoded
// sequence that is not valid UTF-8 fails the whole decode and no partial
// result is returned. An empty payload decodes to the empty string.
func Decode(payload string) (string, error) {
	decoded := make([]byte, 0, len(payload))
	for i := 0; i < len(payload); {
		if payload[i] != '%' {
			decoded = append(decoded, payload[i])
			i++
			continue
		}
		if i+3 > len(payload) {
			return "", fmt.Errorf("%w: truncated at offset %d", ErrMalformedEscape, i)
		}
		b, err := hex.DecodeString(payload[i+1 : i+3])
		if err != nil {
			return "", fmt.Errorf("%w: %q at offset %d", ErrMalformedEscape, payload[i:i+3], i)
		}
		decoded = append(decoded, b[0])
		i += 3
	}
	if !utf8.Valid(decoded) {
		return "", ErrInvalidText
	}
	return string(decoded), nil
}

// Escape percent-escapes a string for use in an Assuan request line. Only the
// characters that would break the line-oriented framing ('%', CR, LF) are
// escaped, so Decode(Escape(s)) == s for any string s.
func Escape(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	for i := 0; i < len(s); i++ {
		switch c := s[i]; c {
		case '%', '\r', '\n':
			fmt.Fprintf(&b, "%%%02X", c)
		default:
			b.WriteByte(c)
		}
	}
	return b.String()
}
