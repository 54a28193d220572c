package fsshttpb

import (
	"github.com/onenote-go/onenote/errs"
	"github.com/onenote-go/onenote/guid"
	"github.com/onenote-go/onenote/reader"
)

// ExGUID is the primary object identity in FSSHTTPB: a GUID paired with a
// 32-bit value that disambiguates multiple objects sharing that GUID.
type ExGUID struct {
	GUID  guid.GUID
	Value uint32
}

// IsNull reports whether this is the distinguished null ExGUID.
func (e ExGUID) IsNull() bool {
	return e.GUID.IsNil() && e.Value == 0
}

// exGUIDForm tags which of the five compact encodings a wire ExGUID uses.
type exGUIDForm uint8

const (
	formNull exGUIDForm = iota
	formCompact5
	formCompact10
	formCompact17
	formFull
)

// ParseExGUID decodes a compact ExGUID. guidTable is the surrounding
// GUID-index table that the compact forms reference by index; the full
// form ignores it and carries its own GUID inline.
func ParseExGUID(r *reader.Reader, guidTable []guid.GUID) (ExGUID, error) {
	tag, err := r.GetU8()
	if err != nil {
		return ExGUID{}, err
	}

	switch exGUIDForm(tag) {
	case formNull:
		return ExGUID{}, nil

	case formCompact5:
		b, err := r.GetU8()
		if err != nil {
			return ExGUID{}, err
		}
		value := uint32(b >> 3)
		idx := uint32(b & 0x07)
		g, err := lookupGUID(guidTable, idx)
		if err != nil {
			return ExGUID{}, err
		}
		return ExGUID{GUID: g, Value: value}, nil

	case formCompact10:
		w, err := r.GetU16()
		if err != nil {
			return ExGUID{}, err
		}
		value := uint32(w & 0x03FF)
		idx := uint32(w >> 10)
		g, err := lookupGUID(guidTable, idx)
		if err != nil {
			return ExGUID{}, err
		}
		return ExGUID{GUID: g, Value: value}, nil

	case formCompact17:
		b, err := r.Read(3)
		if err != nil {
			return ExGUID{}, err
		}
		packed := uint32(b[0]) | uint32(b[1])<<8 | uint32(b[2])<<16
		value := packed & 0x1FFFF
		idx := packed >> 17
		g, err := lookupGUID(guidTable, idx)
		if err != nil {
			return ExGUID{}, err
		}
		return ExGUID{GUID: g, Value: value}, nil

	case formFull:
		b, err := r.Read(guid.Size)
		if err != nil {
			return ExGUID{}, err
		}
		g, err := guid.Parse(b)
		if err != nil {
			return ExGUID{}, errs.Wrap(errs.MalformedFssHttpB, "invalid full ExGUID", err)
		}
		value, err := r.GetU32()
		if err != nil {
			return ExGUID{}, err
		}
		return ExGUID{GUID: g, Value: value}, nil

	default:
		return ExGUID{}, errs.Newf(errs.MalformedFssHttpB, "unknown ExGUID form tag %d", tag)
	}
}

func lookupGUID(table []guid.GUID, idx uint32) (guid.GUID, error) {
	if int(idx) >= len(table) {
		return guid.GUID{}, errs.Newf(errs.MalformedFssHttpB,
			"ExGUID references GUID table index %d, table has %d entries", idx, len(table))
	}
	return table[idx], nil
}
