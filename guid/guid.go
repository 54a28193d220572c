// Package guid decodes the 128-bit GUIDs used throughout the FSSHTTPB and
// OneStore wire formats.
//
// This is intentionally the thinnest package in the module: GUIDs are a
// shared primitive, not part of the packaging/property-bag core, so all it
// does is flip Microsoft's mixed-endian field layout into the big-endian
// byte order that github.com/google/uuid expects and hands back a
// fully-featured UUID value.
package guid

import (
	"fmt"

	"github.com/google/uuid"
)

// Size is the on-wire byte length of a GUID.
const Size = 16

// GUID is a 128-bit identifier in Microsoft's canonical field layout:
// Data1 (u32 LE), Data2 (u16 LE), Data3 (u16 LE), Data4 (8 bytes, as-is).
type GUID struct {
	id uuid.UUID
}

// Nil is the all-zero GUID.
var Nil = GUID{}

// Parse reads a GUID from the first Size bytes of b.
func Parse(b []byte) (GUID, error) {
	if len(b) < Size {
		return GUID{}, fmt.Errorf("guid: need %d bytes, got %d", Size, len(b))
	}

	// Reorder Data1-3 from little-endian wire order into the big-endian
	// order uuid.UUID stores internally; Data4 is already in wire order.
	var raw [Size]byte
	raw[0], raw[1], raw[2], raw[3] = b[3], b[2], b[1], b[0]
	raw[4], raw[5] = b[5], b[4]
	raw[6], raw[7] = b[7], b[6]
	copy(raw[8:], b[8:16])

	id, err := uuid.FromBytes(raw[:])
	if err != nil {
		return GUID{}, err
	}
	return GUID{id: id}, nil
}

// Bytes returns the GUID in its original on-wire mixed-endian byte order.
func (g GUID) Bytes() []byte {
	raw := g.id[:]
	out := make([]byte, Size)
	out[0], out[1], out[2], out[3] = raw[3], raw[2], raw[1], raw[0]
	out[4], out[5] = raw[5], raw[4]
	out[6], out[7] = raw[7], raw[6]
	copy(out[8:], raw[8:16])
	return out
}

// String renders the GUID in the canonical dashed hex form.
func (g GUID) String() string {
	return g.id.String()
}

// IsNil reports whether this is the all-zero GUID.
func (g GUID) IsNil() bool {
	return g.id == uuid.Nil
}

// Equal reports whether two GUIDs identify the same value.
func (g GUID) Equal(other GUID) bool {
	return g.id == other.id
}

// MustParseString parses a canonical dashed-hex GUID string such as
// "7B5C52E4-D88C-4DA7-AEB1-5378D02996D3". It panics on malformed input, so
// it suits fixed GUID literals such as the file-type GUIDs used in tests.
func MustParseString(s string) GUID {
	id := uuid.MustParse(s)
	return GUID{id: id}
}

// MarshalJSON renders the GUID as its canonical string form.
func (g GUID) MarshalJSON() ([]byte, error) {
	return []byte(`"` + g.String() + `"`), nil
}
