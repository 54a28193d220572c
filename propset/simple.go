package propset

import (
	"golang.org/x/text/encoding/unicode"

	"github.com/onenote-go/onenote/errs"
	"github.com/onenote-go/onenote/guid"
	"github.com/onenote-go/onenote/onestore"
)

// boolShapeTrue and boolShapeFalse are onestore's two Bool property-ID
// high bytes (shapeBoolTrue/shapeBoolFalse): a single logical boolean
// property is carried on the wire as one of two distinct property IDs
// that differ only in this byte, selected by the value being written.
const (
	boolShapeTrue  = 0x02
	boolShapeFalse = 0x01
)

// getBool reads a Bool property, defaulting to false when absent. id
// must be declared using the "true" shape byte (see PropertyIsTitleText
// and similar); getBool also checks the matching "false" variant.
func getBool(o *onestore.Object, id PropertyID) (bool, error) {
	trueID := uint32(id)&0x00FFFFFF | boolShapeTrue<<24
	if v, ok := o.Props.Properties.Get(trueID); ok {
		if v.Kind != onestore.KindBool {
			return false, errs.Newf(errs.MalformedOneNoteFile, "property 0x%08X is not a bool", trueID).WithProperty(trueID)
		}
		return v.Bool, nil
	}

	falseID := uint32(id)&0x00FFFFFF | boolShapeFalse<<24
	if v, ok := o.Props.Properties.Get(falseID); ok {
		if v.Kind != onestore.KindBool {
			return false, errs.Newf(errs.MalformedOneNoteFile, "property 0x%08X is not a bool", falseID).WithProperty(falseID)
		}
		return v.Bool, nil
	}

	return false, nil
}

// getU32 reads a U32 property. ok is false when the property is absent.
func getU32(o *onestore.Object, id PropertyID) (uint32, bool, error) {
	v, ok := o.Props.Properties.Get(uint32(id))
	if !ok {
		return 0, false, nil
	}
	if v.Kind != onestore.KindU32 {
		return 0, false, errs.Newf(errs.MalformedOneNoteFile, "property 0x%08X is not a u32", id).WithProperty(uint32(id))
	}
	return v.U32, true, nil
}

// getU8 reads a U8 property.
func getU8(o *onestore.Object, id PropertyID) (uint8, bool, error) {
	v, ok := o.Props.Properties.Get(uint32(id))
	if !ok {
		return 0, false, nil
	}
	if v.Kind != onestore.KindU8 {
		return 0, false, errs.Newf(errs.MalformedOneNoteFile, "property 0x%08X is not a u8", id).WithProperty(uint32(id))
	}
	return v.U8, true, nil
}

// getU16 reads a U16 property.
func getU16(o *onestore.Object, id PropertyID) (uint16, bool, error) {
	v, ok := o.Props.Properties.Get(uint32(id))
	if !ok {
		return 0, false, nil
	}
	if v.Kind != onestore.KindU16 {
		return 0, false, errs.Newf(errs.MalformedOneNoteFile, "property 0x%08X is not a u16", id).WithProperty(uint32(id))
	}
	return v.U16, true, nil
}

// getF32 reads an F32 property.
func getF32(o *onestore.Object, id PropertyID) (float32, bool, error) {
	v, ok := o.Props.Properties.Get(uint32(id))
	if !ok {
		return 0, false, nil
	}
	if v.Kind != onestore.KindF32 {
		return 0, false, errs.Newf(errs.MalformedOneNoteFile, "property 0x%08X is not a f32", id).WithProperty(uint32(id))
	}
	return v.F32, true, nil
}

// getU64 reads a U64 property.
func getU64(o *onestore.Object, id PropertyID) (uint64, bool, error) {
	v, ok := o.Props.Properties.Get(uint32(id))
	if !ok {
		return 0, false, nil
	}
	if v.Kind != onestore.KindU64 {
		return 0, false, errs.Newf(errs.MalformedOneNoteFile, "property 0x%08X is not a u64", id).WithProperty(uint32(id))
	}
	return v.U64, true, nil
}

// getString reads a length-prefixed byte property and decodes it as
// UTF-16LE.
func getString(o *onestore.Object, id PropertyID) (string, bool, error) {
	v, ok := o.Props.Properties.Get(uint32(id))
	if !ok {
		return "", false, nil
	}
	if v.Kind != onestore.KindBytes {
		return "", false, errs.Newf(errs.MalformedOneNoteFile, "property 0x%08X is not a string", id).WithProperty(uint32(id))
	}
	s, err := decodeUTF16String(v.Bytes)
	if err != nil {
		return "", false, errs.Wrap(errs.MalformedOneNoteFile, "invalid UTF-16 string", err).WithProperty(uint32(id))
	}
	return s, true, nil
}

// getGUID reads a length-prefixed 16-byte property as a GUID.
func getGUID(o *onestore.Object, id PropertyID) (guid.GUID, bool, error) {
	v, ok := o.Props.Properties.Get(uint32(id))
	if !ok {
		return guid.GUID{}, false, nil
	}
	if v.Kind != onestore.KindBytes || len(v.Bytes) < guid.Size {
		return guid.GUID{}, false, errs.Newf(errs.MalformedOneNoteFile, "property 0x%08X is not a GUID", id).WithProperty(uint32(id))
	}
	g, err := guid.Parse(v.Bytes)
	if err != nil {
		return guid.GUID{}, false, errs.Wrap(errs.MalformedOneNoteFile, "invalid GUID property", err).WithProperty(uint32(id))
	}
	return g, true, nil
}

func decodeUTF16String(b []byte) (string, error) {
	n := len(b)
	for i := 0; i+1 < len(b); i += 2 {
		if b[i] == 0 && b[i+1] == 0 {
			n = i
			break
		}
	}
	if n == 0 {
		return "", nil
	}
	decoder := unicode.UTF16(unicode.LittleEndian, unicode.IgnoreBOM).NewDecoder()
	s, err := decoder.Bytes(b[:n])
	if err != nil {
		return "", err
	}
	return string(s), nil
}
