package types

import (
	"encoding/hex"
	"fmt"
	"strings"
)

// ULSize is the size in bytes of a SMPTE Universal Label.
const ULSize = 16

// UL is a 16-byte SMPTE Universal Label naming a set type, an element, or a
// coded value. ULs are comparable and can be used as map keys and switch
// cases.
type UL [ULSize]byte

// ULMask selects the significant bytes of a UL for EqualMasked. A zero mask
// byte ignores the corresponding UL byte.
type ULMask [ULSize]byte

// ParseUL parses a UL written as 32 hex digits, optionally separated by dots
// or dashes, with an optional "urn:smpte:ul:" prefix.
func ParseUL(s string) (UL, error) {
	var ul UL
	clean := strings.TrimPrefix(strings.ToLower(strings.TrimSpace(s)), "urn:smpte:ul:")
	clean = strings.NewReplacer(".", "", "-", "").Replace(clean)
	if len(clean) != ULSize*2 {
		return ul, fmt.Errorf("parse UL %q: want %d hex digits, got %d", s, ULSize*2, len(clean))
	}
	if _, err := hex.Decode(ul[:], []byte(clean)); err != nil {
		return ul, fmt.Errorf("parse UL %q: %w", s, err)
	}
	return ul, nil
}

// MustParseUL is ParseUL for package-level tables; it panics on malformed input.
func MustParseUL(s string) UL {
	ul, err := ParseUL(s)
	if err != nil {
		panic(err)
	}
	return ul
}

// ULFromBytes copies the first 16 bytes of b into a UL.
func ULFromBytes(b []byte) (UL, bool) {
	var ul UL
	if len(b) < ULSize {
		return ul, false
	}
	copy(ul[:], b)
	return ul, true
}

// String renders the UL in the dotted register notation (06.0e.2b.34...).
func (u UL) String() string {
	var b strings.Builder
	b.Grow(ULSize*3 - 1)
	for i, c := range u {
		if i > 0 {
			b.WriteByte('.')
		}
		b.WriteString(hex.EncodeToString([]byte{c}))
	}
	return b.String()
}

// URN renders the UL as urn:smpte:ul:xxxxxxxx.xxxxxxxx.xxxxxxxx.xxxxxxxx.
func (u UL) URN() string {
	h := hex.EncodeToString(u[:])
	return "urn:smpte:ul:" + h[0:8] + "." + h[8:16] + "." + h[16:24] + "." + h[24:32]
}

// IsZero reports whether every byte of the UL is zero.
func (u UL) IsZero() bool { return u == UL{} }

// EqualMasked compares u and other on the bytes selected by mask.
func (u UL) EqualMasked(other UL, mask ULMask) bool {
	for i := range u {
		if mask[i] != 0 && u[i] != other[i] {
			return false
		}
	}
	return true
}

// Versionless returns a copy with the registry version byte (byte 7) zeroed,
// which is how element labels are compared across register revisions.
func (u UL) Versionless() UL {
	u[7] = 0
	return u
}

// MarshalText implements encoding.TextMarshaler.
func (u UL) MarshalText() ([]byte, error) { return []byte(u.URN()), nil }
