package format

import (
	"bytes"
	"fmt"
	"unicode/utf16"

	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/encoding/unicode"
)

var utf16BE = unicode.UTF16(unicode.BigEndian, unicode.IgnoreBOM)

// DecodeUTF16String decodes a UTF-16BE string, dropping trailing NUL
// terminators. An odd trailing byte is an error.
func DecodeUTF16String(b []byte) (string, error) {
	if len(b)%2 != 0 {
		return "", fmt.Errorf("utf-16 string of %d bytes: %w", len(b), ErrSizeMismatch)
	}
	for len(b) >= 2 && b[len(b)-2] == 0 && b[len(b)-1] == 0 {
		b = b[:len(b)-2]
	}
	if len(b) == 0 {
		return "", nil
	}
	if isASCIIUTF16(b) {
		out := make([]byte, len(b)/2)
		for i := range out {
			out[i] = b[2*i+1]
		}
		return string(out), nil
	}
	out, err := utf16BE.NewDecoder().Bytes(b)
	if err != nil {
		return "", fmt.Errorf("decode utf-16: %w", err)
	}
	return string(out), nil
}

// isASCIIUTF16 reports whether every code unit has a zero high byte and a
// 7-bit low byte.
func isASCIIUTF16(b []byte) bool {
	for i := 0; i+1 < len(b); i += 2 {
		if b[i] != 0 || b[i+1] >= 0x80 {
			return false
		}
	}
	return true
}

// EncodeUTF16String encodes s as UTF-16BE without a terminator.
func EncodeUTF16String(s string) []byte {
	units := utf16.Encode([]rune(s))
	out := make([]byte, 2*len(units))
	for i, u := range units {
		out[2*i] = byte(u >> 8)
		out[2*i+1] = byte(u)
	}
	return out
}

// DecodeISO8859String decodes an ISO/IEC 8859-1 string, dropping trailing NULs.
func DecodeISO8859String(b []byte) (string, error) {
	b = bytes.TrimRight(b, "\x00")
	out, err := charmap.ISO8859_1.NewDecoder().Bytes(b)
	if err != nil {
		return "", fmt.Errorf("decode iso-8859-1: %w", err)
	}
	return string(out), nil
}

// DecodeASCIIString decodes a 7-bit string, dropping trailing NULs. Bytes
// outside ASCII are decoded as ISO/IEC 8859-1 rather than rejected.
func DecodeASCIIString(b []byte) (string, error) {
	b = bytes.TrimRight(b, "\x00")
	for _, c := range b {
		if c >= 0x80 {
			return DecodeISO8859String(b)
		}
	}
	return string(b), nil
}
