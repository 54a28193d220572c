package fsshttpb

import (
	"github.com/onenote-go/onenote/errs"
	"github.com/onenote-go/onenote/guid"
	"github.com/onenote-go/onenote/reader"
)

// DataElement is one entry of a DataElementPackage: an identity, a type
// tag, and the decoded body named by that tag (§4.4).
type DataElement struct {
	ID   ExGUID
	Type ElementType

	ObjectGroup      *ObjectGroup
	StorageIndex     *StorageIndex
	StorageManifest  *StorageManifest
	CellManifest     *CellManifest
	RevisionManifest *RevisionManifest

	// Raw carries the undecoded body for any element type this package
	// does not model; it is nil whenever one of the typed fields above is
	// populated.
	Raw []byte
}

// ParseDataElement decodes one DataElement: a body-32 header naming its
// type and length, an ExGUID identity, then a type-specific body (§4.4).
// An unrecognised ElementType is kept verbatim in Raw so callers can
// still walk the package structurally, unless strict is true, in which
// case it is reported as a malformed package instead of skipped.
func ParseDataElement(r *reader.Reader, guidTable []guid.GUID, strict bool) (*DataElement, error) {
	length, err := TryParse32(r, ObjectTypeDataElement)
	if err != nil {
		return nil, err
	}
	bodyStart := r.Position()

	id, err := ParseExGUID(r, guidTable)
	if err != nil {
		return nil, err
	}

	typ, err := r.GetU32()
	if err != nil {
		return nil, err
	}

	de := &DataElement{ID: id, Type: ElementType(typ)}

	switch de.Type {
	case ElementTypeObjectGroup:
		de.ObjectGroup, err = ParseObjectGroup(r, guidTable)
	case ElementTypeStorageIndex:
		de.StorageIndex, err = ParseStorageIndex(r, guidTable)
	case ElementTypeStorageManifest:
		de.StorageManifest, err = ParseStorageManifest(r, guidTable)
	case ElementTypeCellManifest:
		de.CellManifest, err = ParseCellManifest(r, guidTable)
	case ElementTypeRevisionManifest:
		de.RevisionManifest, err = ParseRevisionManifest(r, guidTable)
	default:
		if strict {
			return nil, errs.Newf(errs.MalformedFssHttpB, "unrecognized data element type 0x%08X", typ).WithOffset(bodyStart)
		}
		consumed := r.Position() - bodyStart
		remaining := int64(length) - consumed
		if remaining < 0 {
			return nil, errs.Newf(errs.MalformedFssHttpB, "data element body shorter than declared length").WithOffset(bodyStart)
		}
		de.Raw, err = r.Read(int(remaining))
	}
	if err != nil {
		return nil, err
	}

	return de, nil
}

// DataElementPackage is the full set of data elements carried by a
// Packaging envelope: storage indexes, manifests and object groups all
// arrive as a flat, self-describing sequence (§4.4).
type DataElementPackage struct {
	Elements []*DataElement
}

// ParseDataElementPackage decodes a DataElementPackage: a reserved u8
// (must be 0), a compound-16 header, a sequence of DataElements
// terminated by a matching End-16 marker. strict is forwarded to every
// ParseDataElement call (see its doc comment).
func ParseDataElementPackage(r *reader.Reader, guidTable []guid.GUID, strict bool) (*DataElementPackage, error) {
	reserved, err := r.GetU8()
	if err != nil {
		return nil, err
	}
	if reserved != 0 {
		return nil, errs.Newf(errs.MalformedFssHttpB, "data element package reserved byte = 0x%02X, want 0", reserved)
	}

	if _, err := TryParse16(r, ObjectTypeDataElementPackage); err != nil {
		return nil, err
	}

	pkg := &DataElementPackage{}
	for {
		h, err := peekHeader(r)
		if err != nil {
			return nil, err
		}
		if h.IsEnd {
			if err := TryParseEnd16(r, ObjectTypeDataElementPackage); err != nil {
				return nil, err
			}
			break
		}
		de, err := ParseDataElement(r, guidTable, strict)
		if err != nil {
			return nil, err
		}
		pkg.Elements = append(pkg.Elements, de)
	}

	return pkg, nil
}

// StorageIndexByID returns the StorageIndex data element with the given
// ExGUID, if present.
func (p *DataElementPackage) StorageIndexByID(id ExGUID) (*StorageIndex, bool) {
	for _, e := range p.Elements {
		if e.Type == ElementTypeStorageIndex && e.ID == id {
			return e.StorageIndex, true
		}
	}
	return nil, false
}

// CellManifestByID returns the CellManifest data element with the given
// ExGUID, if present.
func (p *DataElementPackage) CellManifestByID(id ExGUID) (*CellManifest, bool) {
	for _, e := range p.Elements {
		if e.Type == ElementTypeCellManifest && e.ID == id {
			return e.CellManifest, true
		}
	}
	return nil, false
}

// RevisionManifestByID returns the RevisionManifest data element with the
// given ExGUID, if present.
func (p *DataElementPackage) RevisionManifestByID(id ExGUID) (*RevisionManifest, bool) {
	for _, e := range p.Elements {
		if e.Type == ElementTypeRevisionManifest && e.ID == id {
			return e.RevisionManifest, true
		}
	}
	return nil, false
}

// ObjectGroupByID returns the ObjectGroup data element with the given
// ExGUID, if present.
func (p *DataElementPackage) ObjectGroupByID(id ExGUID) (*ObjectGroup, bool) {
	for _, e := range p.Elements {
		if e.Type == ElementTypeObjectGroup && e.ID == id {
			return e.ObjectGroup, true
		}
	}
	return nil, false
}
