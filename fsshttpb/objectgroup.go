package fsshttpb

import (
	"github.com/onenote-go/onenote/guid"
	"github.com/onenote-go/onenote/reader"
)

// ObjectGroupDeclaration names one object carried by an ObjectGroup and
// tags whether its paired data entry carries raw file-data in addition to
// a property-set (§4.5).
type ObjectGroupDeclaration struct {
	ObjectExtendedGUID ExGUID
	IsFileData         bool
	PartitionID        uint8
}

// ObjectGroupDataEntry is one object's raw payload inside an ObjectGroup:
// the three parallel CompactID arrays consumed positionally by its
// property-set (§4.8), the property-set blob itself, and an optional
// file-data blob.
type ObjectGroupDataEntry struct {
	ObjectIDs      []CompactID
	ObjectSpaceIDs []CompactID
	ContextIDs     []CompactID
	PropertySet    []byte
	FileData       []byte
}

// ObjectGroup is a declaration list paired with a parallel data list
// (§4.5). Declarations and data entries correspond by index.
type ObjectGroup struct {
	Declarations []ObjectGroupDeclaration
	Data         []ObjectGroupDataEntry
}

// ParseObjectGroup decodes an ObjectGroup data-element body. guidTable is
// the GUID-index table compact ExGUIDs and CompactIDs are resolved
// against.
func ParseObjectGroup(r *reader.Reader, guidTable []guid.GUID) (*ObjectGroup, error) {
	if _, err := TryParse16(r, ObjectTypeObjectGroupDeclarations); err != nil {
		return nil, err
	}

	var decls []ObjectGroupDeclaration
	for {
		h, err := peekHeader(r)
		if err != nil {
			return nil, err
		}
		if h.IsEnd {
			if err := TryParseEnd16(r, ObjectTypeObjectGroupDeclarations); err != nil {
				return nil, err
			}
			break
		}
		if _, err := TryParse16(r, ObjectTypeObjectGroupDeclaration); err != nil {
			return nil, err
		}
		exGUID, err := ParseExGUID(r, guidTable)
		if err != nil {
			return nil, err
		}
		flags, err := r.GetU8()
		if err != nil {
			return nil, err
		}
		partition, err := r.GetU8()
		if err != nil {
			return nil, err
		}
		decls = append(decls, ObjectGroupDeclaration{
			ObjectExtendedGUID: exGUID,
			IsFileData:         flags&0x01 != 0,
			PartitionID:        partition,
		})
	}

	if _, err := TryParse16(r, ObjectTypeObjectGroupData); err != nil {
		return nil, err
	}

	data := make([]ObjectGroupDataEntry, 0, len(decls))
	for i := 0; i < len(decls); i++ {
		entry, err := parseObjectGroupDataEntry(r, decls[i].IsFileData)
		if err != nil {
			return nil, err
		}
		data = append(data, entry)
	}

	if err := TryParseEnd16(r, ObjectTypeObjectGroupData); err != nil {
		return nil, err
	}

	return &ObjectGroup{Declarations: decls, Data: data}, nil
}

func parseObjectGroupDataEntry(r *reader.Reader, hasFileData bool) (ObjectGroupDataEntry, error) {
	if _, err := TryParse32(r, ObjectTypeObjectGroupDataEntry); err != nil {
		return ObjectGroupDataEntry{}, err
	}

	objectIDs, err := readCompactIDArray(r)
	if err != nil {
		return ObjectGroupDataEntry{}, err
	}
	objectSpaceIDs, err := readCompactIDArray(r)
	if err != nil {
		return ObjectGroupDataEntry{}, err
	}
	contextIDs, err := readCompactIDArray(r)
	if err != nil {
		return ObjectGroupDataEntry{}, err
	}

	propLen, err := r.GetU32()
	if err != nil {
		return ObjectGroupDataEntry{}, err
	}
	propBytes, err := r.Read(int(propLen))
	if err != nil {
		return ObjectGroupDataEntry{}, err
	}
	propSet := make([]byte, len(propBytes))
	copy(propSet, propBytes)

	var fileData []byte
	if hasFileData {
		fdLen, err := r.GetU32()
		if err != nil {
			return ObjectGroupDataEntry{}, err
		}
		fd, err := r.Read(int(fdLen))
		if err != nil {
			return ObjectGroupDataEntry{}, err
		}
		fileData = make([]byte, len(fd))
		copy(fileData, fd)
	}

	return ObjectGroupDataEntry{
		ObjectIDs:      objectIDs,
		ObjectSpaceIDs: objectSpaceIDs,
		ContextIDs:     contextIDs,
		PropertySet:    propSet,
		FileData:       fileData,
	}, nil
}

func readCompactIDArray(r *reader.Reader) ([]CompactID, error) {
	n, err := r.GetU16()
	if err != nil {
		return nil, err
	}
	out := make([]CompactID, n)
	for i := range out {
		id, err := ParseCompactID(r)
		if err != nil {
			return nil, err
		}
		out[i] = id
	}
	return out, nil
}

// peekHeader looks one StreamObjectHeader ahead without losing it: since
// headers are bit-packed rather than byte-aligned in a way a plain Peek
// can decode, it parses from a throwaway cursor over the same remaining
// bytes.
func peekHeader(r *reader.Reader) (Header, error) {
	remaining, err := r.Peek(r.Remaining())
	if err != nil {
		return Header{}, err
	}
	return ParseHeader(reader.New(remaining))
}
