package types

import (
	"encoding/hex"
	"strings"

	"github.com/google/uuid"
)

const (
	// UIDSize is the size of an instance UID.
	UIDSize = 16
	// UMIDSize is the size of a basic SMPTE UMID used as a package UID.
	UMIDSize = 32
)

// UID identifies one structural metadata set instance within a file.
type UID [UIDSize]byte

// UIDFromBytes copies the first 16 bytes of b into a UID.
func UIDFromBytes(b []byte) (UID, bool) {
	var id UID
	if len(b) < UIDSize {
		return id, false
	}
	copy(id[:], b)
	return id, true
}

// IsZero reports whether the UID is all zero bytes (an absent reference).
func (id UID) IsZero() bool { return id == UID{} }

// UUID returns the UID as a RFC 4122 UUID value.
func (id UID) UUID() uuid.UUID { return uuid.UUID(id) }

// String renders the UID as urn:uuid:... text.
func (id UID) String() string { return "urn:uuid:" + id.UUID().String() }

// MarshalText implements encoding.TextMarshaler.
func (id UID) MarshalText() ([]byte, error) { return []byte(id.String()), nil }

// UMID is the 32-byte package identifier (SMPTE ST 330 basic UMID).
type UMID [UMIDSize]byte

// UMIDFromBytes copies the first 32 bytes of b into a UMID.
func UMIDFromBytes(b []byte) (UMID, bool) {
	var id UMID
	if len(b) < UMIDSize {
		return id, false
	}
	copy(id[:], b)
	return id, true
}

// IsZero reports whether the UMID is all zero bytes.
func (id UMID) IsZero() bool { return id == UMID{} }

// MaterialNumber returns the last 16 bytes of the UMID as a UUID. IMF
// packages use this value to match track files across a package.
func (id UMID) MaterialNumber() uuid.UUID {
	var u uuid.UUID
	copy(u[:], id[16:])
	return u
}

// String renders the UMID as urn:smpte:umid:xxxxxxxx.xxxxxxxx... in groups of
// four bytes.
func (id UMID) String() string {
	h := hex.EncodeToString(id[:])
	var b strings.Builder
	b.WriteString("urn:smpte:umid:")
	for i := 0; i < len(h); i += 8 {
		if i > 0 {
			b.WriteByte('.')
		}
		b.WriteString(h[i : i+8])
	}
	return b.String()
}

// MarshalText implements encoding.TextMarshaler.
func (id UMID) MarshalText() ([]byte, error) { return []byte(id.String()), nil }
