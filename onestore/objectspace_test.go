package onestore

import (
	"testing"

	"github.com/onenote-go/onenote/fsshttpb"
	"github.com/onenote-go/onenote/guid"
	"github.com/onenote-go/onenote/reader"
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

func encodeExGUIDNull() []byte {
	return []byte{0x00}
}

// encodeExGUIDCompact5 encodes a non-null ExGUID referring to guidTable
// index idx with disambiguator value.
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

// buildObjectGroupBody encodes a single-object ObjectGroup whose object
// carries an empty property set.
func buildObjectGroupBody(objID []byte, jcID uint32) []byte {
	var wire []byte
	wire = append(wire, encodeCompound16(fsshttpb.ObjectTypeObjectGroupDeclarations, 0, true)...)
	wire = append(wire, encodeCompound16(fsshttpb.ObjectTypeObjectGroupDeclaration, 0, false)...)
	wire = append(wire, objID...)
	wire = append(wire, 0x00) // flags: not file data
	wire = append(wire, 0x01) // partition id
	wire = append(wire, encodeEnd16(fsshttpb.ObjectTypeObjectGroupDeclarations)...)

	var propBlob []byte
	propBlob = append(propBlob, byte(jcID), byte(jcID>>8), byte(jcID>>16), byte(jcID>>24))
	propBlob = append(propBlob, 0, 0) // property count = 0

	var entry []byte
	entry = append(entry, 0, 0) // object ids count = 0
	entry = append(entry, 0, 0) // object space ids count = 0
	entry = append(entry, 0, 0) // context ids count = 0
	plen := uint32(len(propBlob))
	entry = append(entry, byte(plen), byte(plen>>8), byte(plen>>16), byte(plen>>24))
	entry = append(entry, propBlob...)

	wire = append(wire, encodeCompound16(fsshttpb.ObjectTypeObjectGroupData, 0, true)...)
	wire = append(wire, encodeBody32(fsshttpb.ObjectTypeObjectGroupDataEntry, uint32(len(entry)), false)...)
	wire = append(wire, entry...)
	wire = append(wire, encodeEnd16(fsshttpb.ObjectTypeObjectGroupData)...)

	return wire
}

func TestBuildObjectSpaceSingleObject(t *testing.T) {
	storageIndexID := encodeExGUIDCompact5(1, 0)
	cellManifestID := encodeExGUIDCompact5(2, 0)
	revisionManifestID := encodeExGUIDCompact5(3, 0)
	objectGroupID := encodeExGUIDCompact5(4, 0)
	objID := encodeExGUIDCompact5(5, 0)

	g := guid.MustParseString("7B5C52E4-D88C-4DA7-AEB1-5378D02996D3")
	table := []guid.GUID{g}

	// StorageIndex: one cell mapping using the null CellID, pointing at
	// the cell manifest; no revision mappings.
	var siBody []byte
	siBody = append(siBody, 1, 0, 0, 0) // cell mapping count
	siBody = append(siBody, encodeExGUIDNull()...)
	siBody = append(siBody, encodeExGUIDNull()...)
	siBody = append(siBody, cellManifestID...)
	siBody = append(siBody, 0, 0, 0, 0) // revision mapping count

	var cmBody []byte
	cmBody = append(cmBody, revisionManifestID...)

	var rmBody []byte
	rmBody = append(rmBody, revisionManifestID...) // revision id (reused, fine for this test)
	rmBody = append(rmBody, encodeExGUIDNull()...)  // base revision id
	rmBody = append(rmBody, byte(fsshttpb.RevisionRoleDefault))
	rmBody = append(rmBody, 1, 0, 0, 0) // object group count
	rmBody = append(rmBody, objectGroupID...)

	ogBody := buildObjectGroupBody(objID, 0xAABBCCDD)

	var wire []byte
	wire = append(wire, 0x00) // reserved
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

	space, err := BuildObjectSpace(pkg, storageIndexExGUID, fsshttpb.CellID{}, table)
	if err != nil {
		t.Fatalf("BuildObjectSpace() failed: %v", err)
	}

	obj, ok := space.GetObject(objExGUID)
	if !ok {
		t.Fatalf("object %v not found in space %+v", objExGUID, space.Objects)
	}
	if obj.JcID != JcID(0xAABBCCDD) {
		t.Fatalf("got JcID 0x%X, want 0xAABBCCDD", obj.JcID)
	}
	if obj.Space() != space {
		t.Fatal("Object.Space() did not return the owning ObjectSpace")
	}
}
