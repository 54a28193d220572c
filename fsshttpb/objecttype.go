package fsshttpb

// ObjectType is the type-code carried by every StreamObjectHeader. The set
// is closed, per MS-FSSHTTPB §2.2.1.1; this module only needs the subset
// that legacy OneStore packaging actually emits.
type ObjectType uint32

// Stream-object type codes used by the packaging/data-element layer.
const (
	ObjectTypeDataElementPackage ObjectType = 0x01
	ObjectTypeDataElement        ObjectType = 0x02

	ObjectTypeObjectGroupDeclarations ObjectType = 0x10
	ObjectTypeObjectGroupDeclaration  ObjectType = 0x11
	ObjectTypeObjectGroupData         ObjectType = 0x12
	ObjectTypeObjectGroupDataEntry    ObjectType = 0x13

	ObjectTypeOneNotePackaging ObjectType = 0x20
)

// ElementType discriminates the body of a DataElement (§4.4). It is a
// separate enumeration from ObjectType: every DataElement shares the same
// StreamObject type code, and this field inside its body selects the
// concrete payload.
type ElementType uint32

const (
	ElementTypeObjectGroup      ElementType = 0x01
	ElementTypeStorageIndex     ElementType = 0x02
	ElementTypeStorageManifest  ElementType = 0x03
	ElementTypeCellManifest     ElementType = 0x04
	ElementTypeRevisionManifest ElementType = 0x05
	ElementTypeObjectDataBLOB   ElementType = 0x06
)
