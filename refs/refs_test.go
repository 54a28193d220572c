package refs_test

import (
	"testing"

	"github.com/onenote-go/onenote/fsshttpb"
	"github.com/onenote-go/onenote/guid"
	"github.com/onenote-go/onenote/onestore"
	"github.com/onenote-go/onenote/reader"
	"github.com/onenote-go/onenote/refs"
)

func encodeBody32(typ fsshttpb.ObjectType, length uint32, compound bool) []byte {
	v := uint32(typ&0x3FFF) << 2
	v |= (length & 0x7FFF) << 16
	if compound {
		v |= 1 << 31
	}
	return []byte{byte(v), byte(v >> 8), byte(v >> 16), byte(v >> 24)}
}

func encodeCompound16(typ fsshttpb.ObjectType, length uint32, compound bool) []byte {
	v := uint16(0x1)
	v |= uint16(typ&0x3F) << 2
	v |= uint16(length&0x7F) << 8
	if compound {
		v |= 1 << 15
	}
	return []byte{byte(v), byte(v >> 8)}
}

func encodeEnd16(typ fsshttpb.ObjectType) []byte {
	v := uint16(0x3) | uint16(typ)<<2
	return []byte{byte(v), byte(v >> 8)}
}

func encodeExGUIDNull() []byte { return []byte{0x00} }

func encodeExGUIDCompact5(value, idx uint8) []byte {
	return []byte{0x01, (value << 3) | (idx & 0x07)}
}

func le32(v uint32) []byte { return []byte{byte(v), byte(v >> 8), byte(v >> 16), byte(v >> 24)} }
func le64(v uint64) []byte {
	out := make([]byte, 8)
	for i := 0; i < 8; i++ {
		out[i] = byte(v >> (8 * i))
	}
	return out
}

func wrapElement(id []byte, typ fsshttpb.ElementType, body []byte) []byte {
	inner := append(append([]byte{}, id...), byte(typ), byte(typ>>8), byte(typ>>16), byte(typ>>24))
	inner = append(inner, body...)
	var wire []byte
	wire = append(wire, encodeBody32(fsshttpb.ObjectTypeDataElement, uint32(len(inner)), false)...)
	wire = append(wire, inner...)
	return wire
}

const (
	propIDObjectIDsArray = 0x0A001111
	propIDSingleObjectID = 0x09002222
)

func buildObjectGroupBody(objID []byte, jcID uint32, ids []fsshttpb.CompactID) []byte {
	var wire []byte
	wire = append(wire, encodeCompound16(fsshttpb.ObjectTypeObjectGroupDeclarations, 0, true)...)
	wire = append(wire, encodeCompound16(fsshttpb.ObjectTypeObjectGroupDeclaration, 0, false)...)
	wire = append(wire, objID...)
	wire = append(wire, 0x00, 0x01)
	wire = append(wire, encodeEnd16(fsshttpb.ObjectTypeObjectGroupDeclarations)...)

	var propBlob []byte
	propBlob = append(propBlob, le32(jcID)...)
	propBlob = append(propBlob, byte(2), 0) // property count = 2
	propBlob = append(propBlob, le32(propIDObjectIDsArray)...)
	propBlob = append(propBlob, le32(propIDSingleObjectID)...)
	propBlob = append(propBlob, le32(2)...) // ObjectIDs count = 2
	// shapeObjectID has no body.

	var entry []byte
	entry = append(entry, byte(len(ids)), 0)
	for _, id := range ids {
		entry = append(entry, le64(id.Pack())...)
	}
	entry = append(entry, 0, 0) // object space ids count = 0
	entry = append(entry, 0, 0) // context ids count = 0
	entry = append(entry, le32(uint32(len(propBlob)))...)
	entry = append(entry, propBlob...)

	wire = append(wire, encodeCompound16(fsshttpb.ObjectTypeObjectGroupData, 0, true)...)
	wire = append(wire, encodeBody32(fsshttpb.ObjectTypeObjectGroupDataEntry, uint32(len(entry)), false)...)
	wire = append(wire, entry...)
	wire = append(wire, encodeEnd16(fsshttpb.ObjectTypeObjectGroupData)...)

	return wire
}

func buildTestSpace(t *testing.T) (*onestore.ObjectSpace, fsshttpb.ExGUID, []guid.GUID) {
	t.Helper()

	g1 := guid.MustParseString("7B5C52E4-D88C-4DA7-AEB1-5378D02996D3")
	g2 := guid.MustParseString("43FF2FA1-EFD9-4C76-9EE2-10EA5722765F")
	table := []guid.GUID{g1, g2}

	storageIndexID := encodeExGUIDCompact5(1, 0)
	cellManifestID := encodeExGUIDCompact5(2, 0)
	revisionManifestID := encodeExGUIDCompact5(3, 0)
	objectGroupID := encodeExGUIDCompact5(4, 0)
	objID := encodeExGUIDCompact5(5, 0)
	targetA := fsshttpb.CompactID{Value: 10, GUIDIndex: 0}
	targetB := fsshttpb.CompactID{Value: 20, GUIDIndex: 0}
	targetC := fsshttpb.CompactID{Value: 30, GUIDIndex: 1}

	var siBody []byte
	siBody = append(siBody, 1, 0, 0, 0)
	siBody = append(siBody, encodeExGUIDNull()...)
	siBody = append(siBody, encodeExGUIDNull()...)
	siBody = append(siBody, cellManifestID...)
	siBody = append(siBody, 0, 0, 0, 0)

	var cmBody []byte
	cmBody = append(cmBody, revisionManifestID...)

	var rmBody []byte
	rmBody = append(rmBody, revisionManifestID...)
	rmBody = append(rmBody, encodeExGUIDNull()...)
	rmBody = append(rmBody, byte(fsshttpb.RevisionRoleDefault))
	rmBody = append(rmBody, 1, 0, 0, 0)
	rmBody = append(rmBody, objectGroupID...)

	ogBody := buildObjectGroupBody(objID, 0x1, []fsshttpb.CompactID{targetA, targetB, targetC})

	var wire []byte
	wire = append(wire, 0x00)
	wire = append(wire, encodeCompound16(fsshttpb.ObjectTypeDataElementPackage, 0, true)...)
	wire = append(wire, wrapElement(storageIndexID, fsshttpb.ElementTypeStorageIndex, siBody)...)
	wire = append(wire, wrapElement(cellManifestID, fsshttpb.ElementTypeCellManifest, cmBody)...)
	wire = append(wire, wrapElement(revisionManifestID, fsshttpb.ElementTypeRevisionManifest, rmBody)...)
	wire = append(wire, wrapElement(objectGroupID, fsshttpb.ElementTypeObjectGroup, ogBody)...)
	wire = append(wire, encodeEnd16(fsshttpb.ObjectTypeDataElementPackage)...)

	pkg, err := fsshttpb.ParseDataElementPackage(reader.New(wire), table, false)
	if err != nil {
		t.Fatalf("ParseDataElementPackage() failed: %v", err)
	}

	storageIndexExGUID, err := fsshttpb.ParseExGUID(reader.New(storageIndexID), table)
	if err != nil {
		t.Fatalf("ParseExGUID() failed: %v", err)
	}
	objExGUID, err := fsshttpb.ParseExGUID(reader.New(objID), table)
	if err != nil {
		t.Fatalf("ParseExGUID() failed: %v", err)
	}

	space, err := onestore.BuildObjectSpace(pkg, storageIndexExGUID, fsshttpb.CellID{}, table)
	if err != nil {
		t.Fatalf("BuildObjectSpace() failed: %v", err)
	}
	return space, objExGUID, table
}

func TestObjectReferenceParseVecSkipsPrecedingReferences(t *testing.T) {
	space, objExGUID, table := buildTestSpace(t)
	obj, ok := space.GetObject(objExGUID)
	if !ok {
		t.Fatal("test object not found")
	}

	ids, ok, err := refs.ObjectReference{}.ParseVec(propIDObjectIDsArray, obj)
	if err != nil {
		t.Fatalf("ParseVec() failed: %v", err)
	}
	if !ok || len(ids) != 2 {
		t.Fatalf("got %v, %v", ids, ok)
	}
	if ids[0].Value != 10 || ids[1].Value != 20 {
		t.Fatalf("got %+v", ids)
	}
	if !ids[0].GUID.Equal(table[0]) {
		t.Fatalf("got GUID %v, want %v", ids[0].GUID, table[0])
	}
}

func TestObjectReferenceParseSingleAfterArray(t *testing.T) {
	space, objExGUID, table := buildTestSpace(t)
	obj, ok := space.GetObject(objExGUID)
	if !ok {
		t.Fatal("test object not found")
	}

	id, ok, err := refs.ObjectReference{}.Parse(propIDSingleObjectID, obj)
	if err != nil {
		t.Fatalf("Parse() failed: %v", err)
	}
	if !ok || id.Value != 30 {
		t.Fatalf("got %+v, %v", id, ok)
	}
	if !id.GUID.Equal(table[1]) {
		t.Fatalf("got GUID %v, want %v", id.GUID, table[1])
	}
}

func TestObjectReferenceMissingPropertyReturnsFalse(t *testing.T) {
	space, objExGUID, _ := buildTestSpace(t)
	obj, _ := space.GetObject(objExGUID)

	_, ok, err := refs.ObjectReference{}.Parse(0x09009999, obj)
	if err != nil {
		t.Fatalf("Parse() failed: %v", err)
	}
	if ok {
		t.Fatal("expected missing property to resolve to not-present")
	}
}
