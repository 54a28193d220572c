package fsshttpb

import (
	"github.com/onenote-go/onenote/errs"
	"github.com/onenote-go/onenote/reader"
)

// Header is the universal self-describing FSSHTTPB frame that surrounds
// every nested record: a type code, a declared body length, and two flags
// distinguishing compound bodies from leaf ones and end markers from
// start/leaf ones (§4.2).
type Header struct {
	Type       ObjectType
	Length     uint32
	IsCompound bool
	IsEnd      bool
}

// ParseHeader decodes either the 16-bit or the 32-bit StreamObjectHeader
// form, chosen by the low two bits of the leading value:
//
//	End-16:      bit0=1 bit1=1, bits2-15 = type
//	Compound-16: bit0=1 bit1=0, bits2-7 = type, bits8-14 = length, bit15 = is-compound
//	Body-32:     bit0=0 bit1=0, bits2-15 = type, bits16-30 = length, bit31 = is-compound
func ParseHeader(r *reader.Reader) (Header, error) {
	bit0, err := r.ReadBits(1)
	if err != nil {
		return Header{}, err
	}
	bit1, err := r.ReadBits(1)
	if err != nil {
		return Header{}, err
	}

	switch {
	case bit0 == 1 && bit1 == 1:
		typ, err := r.ReadBits(14)
		if err != nil {
			return Header{}, err
		}
		return Header{Type: ObjectType(typ), IsEnd: true}, nil

	case bit0 == 1 && bit1 == 0:
		typ, err := r.ReadBits(6)
		if err != nil {
			return Header{}, err
		}
		length, err := r.ReadBits(7)
		if err != nil {
			return Header{}, err
		}
		compound, err := r.ReadBits(1)
		if err != nil {
			return Header{}, err
		}
		return Header{Type: ObjectType(typ), Length: length, IsCompound: compound == 1}, nil

	default: // bit0 == 0
		typ, err := r.ReadBits(14)
		if err != nil {
			return Header{}, err
		}
		length, err := r.ReadBits(15)
		if err != nil {
			return Header{}, err
		}
		compound, err := r.ReadBits(1)
		if err != nil {
			return Header{}, err
		}
		return Header{Type: ObjectType(typ), Length: length, IsCompound: compound == 1}, nil
	}
}

// TryParse16 parses a compound-16 header and verifies its type matches
// expected, returning the declared body length.
func TryParse16(r *reader.Reader, expected ObjectType) (uint32, error) {
	h, err := ParseHeader(r)
	if err != nil {
		return 0, err
	}
	if h.IsEnd {
		return 0, errs.Newf(errs.MalformedFssHttpB, "expected compound-16 header, got end marker").
			WithObjectType(uint32(expected))
	}
	if h.Type != expected {
		return 0, errs.Newf(errs.MalformedFssHttpB, "unexpected stream-object type 0x%X, want 0x%X",
			h.Type, expected).WithObjectType(uint32(h.Type))
	}
	return h.Length, nil
}

// TryParse32 parses a body-32 header and verifies its type matches
// expected, returning the declared body length.
func TryParse32(r *reader.Reader, expected ObjectType) (uint32, error) {
	h, err := ParseHeader(r)
	if err != nil {
		return 0, err
	}
	if h.IsEnd {
		return 0, errs.Newf(errs.MalformedFssHttpB, "expected body-32 header, got end marker").
			WithObjectType(uint32(expected))
	}
	if h.Type != expected {
		return 0, errs.Newf(errs.MalformedFssHttpB, "unexpected stream-object type 0x%X, want 0x%X",
			h.Type, expected).WithObjectType(uint32(h.Type))
	}
	return h.Length, nil
}

// TryParseEnd16 parses an end-16 marker and verifies it closes the
// compound object of the given type, per invariant I2.
func TryParseEnd16(r *reader.Reader, expected ObjectType) error {
	h, err := ParseHeader(r)
	if err != nil {
		return err
	}
	if !h.IsEnd {
		return errs.Newf(errs.MalformedFssHttpB, "expected end marker for type 0x%X", expected).
			WithObjectType(uint32(expected))
	}
	if h.Type != expected {
		return errs.Newf(errs.MalformedFssHttpB, "mismatched end marker: got 0x%X, want 0x%X",
			h.Type, expected).WithObjectType(uint32(h.Type))
	}
	return nil
}
