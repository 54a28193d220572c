package fsshttpb

import (
	"github.com/onenote-go/onenote/guid"
	"github.com/onenote-go/onenote/reader"
)

// CellID identifies a cell within a storage index: a pair of ExGUIDs (the
// first names the cell's schema, the second disambiguates cells sharing
// that schema).
type CellID struct {
	First  ExGUID
	Second ExGUID
}

func parseCellID(r *reader.Reader, guidTable []guid.GUID) (CellID, error) {
	first, err := ParseExGUID(r, guidTable)
	if err != nil {
		return CellID{}, err
	}
	second, err := ParseExGUID(r, guidTable)
	if err != nil {
		return CellID{}, err
	}
	return CellID{First: first, Second: second}, nil
}

// StorageIndexCellMapping maps a CellID to the ExGUID of the CellManifest
// data element carrying its current content.
type StorageIndexCellMapping struct {
	CellID         CellID
	CellManifestID ExGUID
}

// StorageIndexRevisionMapping maps a revision ExGUID to the ExGUID of the
// RevisionManifest data element describing it.
type StorageIndexRevisionMapping struct {
	RevisionID         ExGUID
	RevisionManifestID ExGUID
}

// StorageIndex is the root lookup table a Packaging's storage_index
// ExGUID names: it is how a cell (an ObjectSpace, in OneStore terms) is
// found from the packaging envelope.
type StorageIndex struct {
	CellMappings     []StorageIndexCellMapping
	RevisionMappings []StorageIndexRevisionMapping
}

// ParseStorageIndex decodes a StorageIndex data-element body.
func ParseStorageIndex(r *reader.Reader, guidTable []guid.GUID) (*StorageIndex, error) {
	count, err := r.GetU32()
	if err != nil {
		return nil, err
	}
	idx := &StorageIndex{}
	for i := uint32(0); i < count; i++ {
		cellID, err := parseCellID(r, guidTable)
		if err != nil {
			return nil, err
		}
		cellManifestID, err := ParseExGUID(r, guidTable)
		if err != nil {
			return nil, err
		}
		idx.CellMappings = append(idx.CellMappings, StorageIndexCellMapping{
			CellID: cellID, CellManifestID: cellManifestID,
		})
	}

	revCount, err := r.GetU32()
	if err != nil {
		return nil, err
	}
	for i := uint32(0); i < revCount; i++ {
		revID, err := ParseExGUID(r, guidTable)
		if err != nil {
			return nil, err
		}
		manifestID, err := ParseExGUID(r, guidTable)
		if err != nil {
			return nil, err
		}
		idx.RevisionMappings = append(idx.RevisionMappings, StorageIndexRevisionMapping{
			RevisionID: revID, RevisionManifestID: manifestID,
		})
	}
	return idx, nil
}

// StorageManifestRoot names one root object reachable from a
// StorageManifest, keyed by a well-known root ExGUID (e.g. the root node
// of a OneNote section).
type StorageManifestRoot struct {
	RootExGUID   ExGUID
	ObjectExGUID ExGUID
}

// StorageManifest carries the overall schema GUID for a cell plus its
// named roots.
type StorageManifest struct {
	ID    guid.GUID
	Roots []StorageManifestRoot
}

// ParseStorageManifest decodes a StorageManifest data-element body.
func ParseStorageManifest(r *reader.Reader, guidTable []guid.GUID) (*StorageManifest, error) {
	b, err := r.Read(guid.Size)
	if err != nil {
		return nil, err
	}
	id, err := guid.Parse(b)
	if err != nil {
		return nil, err
	}

	count, err := r.GetU32()
	if err != nil {
		return nil, err
	}
	m := &StorageManifest{ID: id}
	for i := uint32(0); i < count; i++ {
		root, err := ParseExGUID(r, guidTable)
		if err != nil {
			return nil, err
		}
		obj, err := ParseExGUID(r, guidTable)
		if err != nil {
			return nil, err
		}
		m.Roots = append(m.Roots, StorageManifestRoot{RootExGUID: root, ObjectExGUID: obj})
	}
	return m, nil
}

// CellManifest names the current RevisionManifest for a cell.
type CellManifest struct {
	CurrentRevisionID ExGUID
}

// ParseCellManifest decodes a CellManifest data-element body.
func ParseCellManifest(r *reader.Reader, guidTable []guid.GUID) (*CellManifest, error) {
	rev, err := ParseExGUID(r, guidTable)
	if err != nil {
		return nil, err
	}
	return &CellManifest{CurrentRevisionID: rev}, nil
}

// RevisionRole distinguishes the default content revision of a cell from
// a legacy/compatibility one kept alongside it.
type RevisionRole uint8

const (
	RevisionRoleDefault RevisionRole = 1
	RevisionRoleLegacy  RevisionRole = 2
)

// RevisionManifest names the ObjectGroups that together make up one
// revision of a cell's content, plus the revision it is based on (for
// incremental revisions; legacy single-revision files set BaseRevisionID
// to the null ExGUID).
type RevisionManifest struct {
	RevisionID     ExGUID
	BaseRevisionID ExGUID
	Role           RevisionRole
	ObjectGroupIDs []ExGUID
}

// ParseRevisionManifest decodes a RevisionManifest data-element body.
func ParseRevisionManifest(r *reader.Reader, guidTable []guid.GUID) (*RevisionManifest, error) {
	revID, err := ParseExGUID(r, guidTable)
	if err != nil {
		return nil, err
	}
	baseID, err := ParseExGUID(r, guidTable)
	if err != nil {
		return nil, err
	}
	role, err := r.GetU8()
	if err != nil {
		return nil, err
	}
	count, err := r.GetU32()
	if err != nil {
		return nil, err
	}
	groups := make([]ExGUID, count)
	for i := range groups {
		g, err := ParseExGUID(r, guidTable)
		if err != nil {
			return nil, err
		}
		groups[i] = g
	}
	return &RevisionManifest{
		RevisionID:     revID,
		BaseRevisionID: baseID,
		Role:           RevisionRole(role),
		ObjectGroupIDs: groups,
	}, nil
}
