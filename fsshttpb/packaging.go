package fsshttpb

import (
	"github.com/onenote-go/onenote/errs"
	"github.com/onenote-go/onenote/guid"
	"github.com/onenote-go/onenote/reader"
)

// Packaging is the outermost envelope of a legacy OneStore file: four
// identifying GUIDs, a root storage index, a cell schema, and the
// DataElementPackage carrying the actual document graph (§4.10).
type Packaging struct {
	FileType           guid.GUID
	File               guid.GUID
	LegacyFileVersion  guid.GUID
	FileFormat         guid.GUID
	StorageIndex       ExGUID
	CellSchema         guid.GUID
	DataElementPackage *DataElementPackage
}

// ParsePackaging decodes a Packaging envelope: four GUIDs, a zero u32
// padding field, a body-32 OneNotePackaging header, a storage-index
// ExGUID, a cell-schema GUID, a nested DataElementPackage and a matching
// End-16 marker (§4.10, invariant I1).
//
// The packaging-level ExGUID is always in its full form: no GUID-index
// table exists yet at this point in the stream, so a compact form would
// have nothing to resolve against. strict is forwarded to the nested
// DataElementPackage's unknown-element-type policy.
func ParsePackaging(r *reader.Reader, strict bool) (*Packaging, error) {
	fileType, err := parsePackagingGUID(r)
	if err != nil {
		return nil, err
	}
	file, err := parsePackagingGUID(r)
	if err != nil {
		return nil, err
	}
	legacyFileVersion, err := parsePackagingGUID(r)
	if err != nil {
		return nil, err
	}
	fileFormat, err := parsePackagingGUID(r)
	if err != nil {
		return nil, err
	}

	if !file.Equal(legacyFileVersion) {
		return nil, errs.New(errs.MalformedOneStore, "not a legacy OneStore file: file and legacy_file_version GUIDs differ")
	}

	padding, err := r.GetU32()
	if err != nil {
		return nil, err
	}
	if padding != 0 {
		return nil, errs.Newf(errs.MalformedFssHttpB, "invalid packaging padding 0x%08X, want 0", padding)
	}

	if _, err := TryParse32(r, ObjectTypeOneNotePackaging); err != nil {
		return nil, err
	}

	storageIndex, err := ParseExGUID(r, nil)
	if err != nil {
		return nil, err
	}

	cellSchema, err := parsePackagingGUID(r)
	if err != nil {
		return nil, err
	}

	dataElementPackage, err := ParseDataElementPackage(r, nil, strict)
	if err != nil {
		return nil, err
	}

	if err := TryParseEnd16(r, ObjectTypeOneNotePackaging); err != nil {
		return nil, err
	}

	return &Packaging{
		FileType:           fileType,
		File:               file,
		LegacyFileVersion:  legacyFileVersion,
		FileFormat:         fileFormat,
		StorageIndex:       storageIndex,
		CellSchema:         cellSchema,
		DataElementPackage: dataElementPackage,
	}, nil
}

func parsePackagingGUID(r *reader.Reader) (guid.GUID, error) {
	b, err := r.Read(guid.Size)
	if err != nil {
		return guid.GUID{}, err
	}
	return guid.Parse(b)
}
