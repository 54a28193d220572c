// Package onestore's objectspace.go assembles the manifests and object
// groups carried by a fsshttpb.DataElementPackage into an ObjectSpace:
// a flat ExGUID -> Object map plus the GUID-index table every CompactID
// in that space is resolved against.
package onestore

import (
	"github.com/onenote-go/onenote/errs"
	"github.com/onenote-go/onenote/fsshttpb"
	"github.com/onenote-go/onenote/guid"
	"github.com/onenote-go/onenote/reader"
)

// ObjectSpace is one cell's fully-resolved object graph: every Object
// reachable from its current revision, keyed by extended GUID, plus the
// named roots a StorageManifest declares for it.
type ObjectSpace struct {
	Objects map[fsshttpb.ExGUID]*Object
	Roots   map[fsshttpb.ExGUID]fsshttpb.ExGUID

	mapping *Mapping
}

// GetObject resolves an ExGUID to its Object within this space (I4: every
// referenced ExGUID must resolve to exactly one Object, or be absent).
func (s *ObjectSpace) GetObject(id fsshttpb.ExGUID) (*Object, bool) {
	o, ok := s.Objects[id]
	return o, ok
}

// Root returns the object named by the given root ExGUID, if declared.
func (s *ObjectSpace) Root(rootName fsshttpb.ExGUID) (*Object, bool) {
	target, ok := s.Roots[rootName]
	if !ok {
		return nil, false
	}
	return s.GetObject(target)
}

// BuildObjectSpace walks a cell from its StorageIndex entry down to its
// current revision's object groups and assembles the resulting Objects
// into one ObjectSpace (§4.6):
//
//	StorageIndex -(cell)-> CellManifest -(current revision)-> RevisionManifest -(object groups)-> Object*
//
// guidTable is the GUID-index table every CompactID/compact-ExGUID in
// this cell's data is resolved against; OneStore does not carry one
// shared table across the whole document, so callers construct it from
// whatever GUIDs the surrounding DataElements name (see
// Package.RootObjectSpace).
func BuildObjectSpace(pkg *fsshttpb.DataElementPackage, storageIndexID fsshttpb.ExGUID, cellID fsshttpb.CellID, guidTable []guid.GUID) (*ObjectSpace, error) {
	storageIndex, ok := pkg.StorageIndexByID(storageIndexID)
	if !ok {
		return nil, errs.Newf(errs.MalformedOneStore, "storage index %v not found in data element package", storageIndexID)
	}

	var cellManifestID fsshttpb.ExGUID
	found := false
	for _, m := range storageIndex.CellMappings {
		if m.CellID == cellID {
			cellManifestID = m.CellManifestID
			found = true
			break
		}
	}
	if !found {
		return nil, errs.New(errs.MalformedOneStore, "storage index has no mapping for the requested cell")
	}

	cellManifest, ok := pkg.CellManifestByID(cellManifestID)
	if !ok {
		return nil, errs.Newf(errs.MalformedOneStore, "cell manifest %v not found in data element package", cellManifestID)
	}

	revisionManifest, ok := pkg.RevisionManifestByID(cellManifest.CurrentRevisionID)
	if !ok {
		return nil, errs.Newf(errs.MalformedOneStore, "revision manifest %v not found in data element package", cellManifest.CurrentRevisionID)
	}

	space := &ObjectSpace{
		Objects: make(map[fsshttpb.ExGUID]*Object),
		Roots:   make(map[fsshttpb.ExGUID]fsshttpb.ExGUID),
		mapping: &Mapping{guidTable: guidTable},
	}

	for _, groupID := range revisionManifest.ObjectGroupIDs {
		group, ok := pkg.ObjectGroupByID(groupID)
		if !ok {
			return nil, errs.Newf(errs.MalformedOneStore, "object group %v not found in data element package", groupID)
		}
		if err := space.ingestObjectGroup(group); err != nil {
			return nil, err
		}
	}

	if manifestElem, ok := findStorageManifest(pkg); ok {
		for _, root := range manifestElem.Roots {
			space.Roots[root.RootExGUID] = root.ObjectExGUID
		}
	}

	return space, nil
}

func findStorageManifest(pkg *fsshttpb.DataElementPackage) (*fsshttpb.StorageManifest, bool) {
	for _, e := range pkg.Elements {
		if e.Type == fsshttpb.ElementTypeStorageManifest {
			return e.StorageManifest, true
		}
	}
	return nil, false
}

func (s *ObjectSpace) ingestObjectGroup(group *fsshttpb.ObjectGroup) error {
	if len(group.Declarations) != len(group.Data) {
		return errs.New(errs.MalformedFssHttpB, "object group declaration/data count mismatch")
	}

	for i, decl := range group.Declarations {
		entry := group.Data[i]

		jcID, props, err := decodeObjectBody(entry.PropertySet)
		if err != nil {
			return err
		}

		obj := &Object{
			JcID:      JcID(jcID),
			ContextID: decl.ObjectExtendedGUID,
			Props: ObjectPropSet{
				ObjectIDs:      entry.ObjectIDs,
				ObjectSpaceIDs: entry.ObjectSpaceIDs,
				ContextIDs:     entry.ContextIDs,
				Properties:     props,
			},
			FileData: entry.FileData,
			space:    s,
		}
		s.Objects[decl.ObjectExtendedGUID] = obj
	}
	return nil
}

// decodeObjectBody decodes an ObjectGroupDataEntry's property-set blob.
// By this module's wire convention (mirroring the KindPropertySets shape
// in property.go) the blob is prefixed with a 4-byte JcID naming the
// object's schema, followed by the standard property-set encoding.
func decodeObjectBody(blob []byte) (uint32, *PropertySet, error) {
	r := reader.New(blob)
	jcID, err := r.GetU32()
	if err != nil {
		return 0, nil, err
	}
	props, err := DecodePropertySet(r)
	if err != nil {
		return 0, nil, err
	}
	return jcID, props, nil
}
