package propset

import (
	"math"
	"testing"

	"golang.org/x/text/encoding/unicode"

	"github.com/onenote-go/onenote/fsshttpb"
	"github.com/onenote-go/onenote/guid"
	"github.com/onenote-go/onenote/onestore"
	"github.com/onenote-go/onenote/reader"
)

// testProperty is one (id, pre-encoded body) pair used to assemble a
// synthetic property-set for the interpreter tests in this package. The
// body must already match the shape onestore.decodeValue expects for the
// property's high byte.
type testProperty struct {
	ID   uint32
	Body []byte
}

func leU16(v uint16) []byte { return []byte{byte(v), byte(v >> 8)} }
func leU32(v uint32) []byte { return []byte{byte(v), byte(v >> 8), byte(v >> 16), byte(v >> 24)} }
func leU64(v uint64) []byte {
	out := make([]byte, 8)
	for i := 0; i < 8; i++ {
		out[i] = byte(v >> (8 * i))
	}
	return out
}

func u8Body(v uint8) []byte   { return []byte{v} }
func u16Body(v uint16) []byte { return leU16(v) }
func u32Body(v uint32) []byte { return leU32(v) }
func u64Body(v uint64) []byte { return leU64(v) }
func f32Body(v float32) []byte {
	return leU32(math.Float32bits(v))
}

func countBody(n uint32) []byte { return leU32(n) }

func bytesBody(b []byte) []byte {
	return append(leU32(uint32(len(b))), b...)
}

func stringBody(s string) []byte {
	encoder := unicode.UTF16(unicode.LittleEndian, unicode.IgnoreBOM).NewEncoder()
	enc, err := encoder.String(s)
	if err != nil {
		panic(err)
	}
	return bytesBody(append([]byte(enc), 0, 0))
}

func guidBody(g guid.GUID) []byte {
	return bytesBody(g.Bytes())
}

// nestedPropertySetBody encodes props as a standalone property-set blob,
// for use as the body of a shapePropertySet (0x10) property.
func nestedPropertySetBody(props []testProperty) []byte {
	return propertySetBlob(props)
}

func propertySetBlob(props []testProperty) []byte {
	var out []byte
	out = append(out, leU16(uint16(len(props)))...)
	for _, p := range props {
		out = append(out, leU32(p.ID)...)
	}
	for _, p := range props {
		out = append(out, p.Body...)
	}
	return out
}

func leCompactIDArray(ids []fsshttpb.CompactID) []byte {
	out := leU16(uint16(len(ids)))
	for _, id := range ids {
		out = append(out, leU64(id.Pack())...)
	}
	return out
}

func encodeBody32(typ fsshttpb.ObjectType, length uint32, compound bool) []byte {
	v := uint32(typ&0x3FFF) << 2
	v |= (length & 0x7FFF) << 16
	if compound {
		v |= 1 << 31
	}
	return leU32(v)
}

func encodeCompound16(typ fsshttpb.ObjectType, length uint32, compound bool) []byte {
	v := uint16(0x1)
	v |= uint16(typ&0x3F) << 2
	v |= uint16(length&0x7F) << 8
	if compound {
		v |= 1 << 15
	}
	return leU16(v)
}

func encodeEnd16(typ fsshttpb.ObjectType) []byte {
	v := uint16(0x3) | uint16(typ)<<2
	return leU16(v)
}

func encodeExGUIDCompact5(value, idx uint8) []byte {
	return []byte{0x01, (value << 3) | (idx & 0x07)}
}

func wrapElement(id []byte, typ fsshttpb.ElementType, body []byte) []byte {
	inner := append(append([]byte{}, id...), byte(typ), byte(typ>>8), byte(typ>>16), byte(typ>>24))
	inner = append(inner, body...)
	var wire []byte
	wire = append(wire, encodeBody32(fsshttpb.ObjectTypeDataElement, uint32(len(inner)), false)...)
	wire = append(wire, inner...)
	return wire
}

// buildTestObject assembles a full synthetic fsshttpb wire package
// carrying one Object with the given jcID, properties and positional
// reference arrays, parses it and returns the resulting Object.
func buildTestObject(t *testing.T, jcID uint32, props []testProperty, objIDs, spaceIDs, ctxIDs []fsshttpb.CompactID, guidTable []guid.GUID) *onestore.Object {
	t.Helper()

	storageIndexID := encodeExGUIDCompact5(1, 0)
	cellManifestID := encodeExGUIDCompact5(2, 0)
	revisionManifestID := encodeExGUIDCompact5(3, 0)
	objectGroupID := encodeExGUIDCompact5(4, 0)
	objID := encodeExGUIDCompact5(5, 0)

	var siBody []byte
	siBody = append(siBody, leU32(1)...)
	siBody = append(siBody, []byte{0x00}...) // null cell-id first
	siBody = append(siBody, []byte{0x00}...) // null cell-id second
	siBody = append(siBody, cellManifestID...)
	siBody = append(siBody, leU32(0)...)

	var cmBody []byte
	cmBody = append(cmBody, revisionManifestID...)

	var rmBody []byte
	rmBody = append(rmBody, revisionManifestID...)
	rmBody = append(rmBody, []byte{0x00}...)
	rmBody = append(rmBody, byte(fsshttpb.RevisionRoleDefault))
	rmBody = append(rmBody, leU32(1)...)
	rmBody = append(rmBody, objectGroupID...)

	propSetBlob := propertySetBlob(props)
	var objBody []byte
	objBody = append(objBody, leU32(jcID)...)
	objBody = append(objBody, propSetBlob...)

	var entry []byte
	entry = append(entry, leCompactIDArray(objIDs)...)
	entry = append(entry, leCompactIDArray(spaceIDs)...)
	entry = append(entry, leCompactIDArray(ctxIDs)...)
	entry = append(entry, leU32(uint32(len(objBody)))...)
	entry = append(entry, objBody...)

	var ogBody []byte
	ogBody = append(ogBody, encodeCompound16(fsshttpb.ObjectTypeObjectGroupDeclarations, 0, true)...)
	ogBody = append(ogBody, encodeCompound16(fsshttpb.ObjectTypeObjectGroupDeclaration, 0, false)...)
	ogBody = append(ogBody, objID...)
	ogBody = append(ogBody, 0x00, 0x01)
	ogBody = append(ogBody, encodeEnd16(fsshttpb.ObjectTypeObjectGroupDeclarations)...)
	ogBody = append(ogBody, encodeCompound16(fsshttpb.ObjectTypeObjectGroupData, 0, true)...)
	ogBody = append(ogBody, encodeBody32(fsshttpb.ObjectTypeObjectGroupDataEntry, uint32(len(entry)), false)...)
	ogBody = append(ogBody, entry...)
	ogBody = append(ogBody, encodeEnd16(fsshttpb.ObjectTypeObjectGroupData)...)

	var wire []byte
	wire = append(wire, 0x00)
	wire = append(wire, encodeCompound16(fsshttpb.ObjectTypeDataElementPackage, 0, true)...)
	wire = append(wire, wrapElement(storageIndexID, fsshttpb.ElementTypeStorageIndex, siBody)...)
	wire = append(wire, wrapElement(cellManifestID, fsshttpb.ElementTypeCellManifest, cmBody)...)
	wire = append(wire, wrapElement(revisionManifestID, fsshttpb.ElementTypeRevisionManifest, rmBody)...)
	wire = append(wire, wrapElement(objectGroupID, fsshttpb.ElementTypeObjectGroup, ogBody)...)
	wire = append(wire, encodeEnd16(fsshttpb.ObjectTypeDataElementPackage)...)

	pkg, err := fsshttpb.ParseDataElementPackage(reader.New(wire), guidTable, false)
	if err != nil {
		t.Fatalf("ParseDataElementPackage() failed: %v", err)
	}

	storageIndexExGUID, err := fsshttpb.ParseExGUID(reader.New(storageIndexID), guidTable)
	if err != nil {
		t.Fatalf("ParseExGUID() failed: %v", err)
	}
	objExGUID, err := fsshttpb.ParseExGUID(reader.New(objID), guidTable)
	if err != nil {
		t.Fatalf("ParseExGUID() failed: %v", err)
	}

	space, err := onestore.BuildObjectSpace(pkg, storageIndexExGUID, fsshttpb.CellID{}, guidTable)
	if err != nil {
		t.Fatalf("BuildObjectSpace() failed: %v", err)
	}

	obj, ok := space.GetObject(objExGUID)
	if !ok {
		t.Fatalf("object %v not found in built space", objExGUID)
	}
	return obj
}
