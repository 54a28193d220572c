package fsshttpb

import "github.com/onenote-go/onenote/reader"

// CompactID is the on-wire abbreviation of an ExGUID: a packed 64-bit word
// holding a value and an index into a surrounding GUID table.
type CompactID struct {
	Value     uint32
	GUIDIndex uint32
}

// ParseCompactID reads a single 64-bit little-endian word and splits it
// into its value (low 32 bits) and GUID-table index (high 32 bits).
func ParseCompactID(r *reader.Reader) (CompactID, error) {
	w, err := r.GetU64()
	if err != nil {
		return CompactID{}, err
	}
	return CompactID{
		Value:     uint32(w),
		GUIDIndex: uint32(w >> 32),
	}, nil
}

// Pack returns the wire-format 64-bit word for this CompactID. Exposed
// only for constructing test fixtures; production code never serializes.
func (c CompactID) Pack() uint64 {
	return uint64(c.Value) | uint64(c.GUIDIndex)<<32
}
