package onestore

import (
	"github.com/onenote-go/onenote/fsshttpb"
	"github.com/onenote-go/onenote/guid"
)

// JcID classifies an Object's schema; it must equal the PropertySetId its
// interpreter expects (invariant I5).
type JcID uint32

// ObjectPropSet is the payload carried by every Object: the parallel
// reference-id arrays consumed positionally by its properties, and the
// properties themselves.
type ObjectPropSet struct {
	ObjectIDs      []fsshttpb.CompactID
	ObjectSpaceIDs []fsshttpb.CompactID
	ContextIDs     []fsshttpb.CompactID
	Properties     *PropertySet
}

// Object is a fully-resolved node of the OneStore graph: a typed property
// bag plus the identity needed to look up its cross-references.
type Object struct {
	JcID      JcID
	ContextID fsshttpb.ExGUID
	Props     ObjectPropSet
	FileData  []byte

	// space is the enclosing ObjectSpace, used to resolve CompactIDs in
	// Props.ObjectIDs/ObjectSpaceIDs/ContextIDs into ExGUIDs. No Object
	// outlives its space (§5).
	space *ObjectSpace
}

// Space returns the ObjectSpace this Object belongs to.
func (o *Object) Space() *ObjectSpace {
	return o.space
}

// Mapping resolves CompactIDs against this object's space.
func (o *Object) Mapping() *Mapping {
	return o.space.mapping
}

// NewSyntheticObject recomposes one nested property-set (e.g. one element
// of a KindPropertySets value, §4.12) into a standalone Object that can be
// interpreted like any other: it borrows parent's CompactID arrays, each
// sliced from the given offset, so the positional reference-resolution
// algorithm of §4.8 keeps working unchanged against the nested set's own
// properties (grounded on note_tag_container.rs's per-entry recomposition).
func NewSyntheticObject(parent *Object, jcID JcID, props *PropertySet, objOffset, spaceOffset, ctxOffset int) *Object {
	return &Object{
		JcID:      jcID,
		ContextID: parent.ContextID,
		Props: ObjectPropSet{
			ObjectIDs:      sliceFrom(parent.Props.ObjectIDs, objOffset),
			ObjectSpaceIDs: sliceFrom(parent.Props.ObjectSpaceIDs, spaceOffset),
			ContextIDs:     sliceFrom(parent.Props.ContextIDs, ctxOffset),
			Properties:     props,
		},
		space: parent.space,
	}
}

func sliceFrom(ids []fsshttpb.CompactID, offset int) []fsshttpb.CompactID {
	if offset > len(ids) {
		offset = len(ids)
	}
	return ids[offset:]
}

// Mapping is the GUID-index table shared by every Object in an
// ObjectSpace; it is reference-counted by value across Objects in spirit
// (all Objects in a space point at the same slice) even though Go's GC
// makes that bookkeeping implicit.
type Mapping struct {
	guidTable []guid.GUID
}

// GetObject resolves a CompactID into an ExGUID by picking the GUID named
// by the CompactID's GUIDIndex from the enclosing table (§4.6); the
// CompactID's position in its array plays no part in the lookup.
func (m *Mapping) GetObject(id fsshttpb.CompactID) (fsshttpb.ExGUID, bool) {
	if int(id.GUIDIndex) >= len(m.guidTable) {
		return fsshttpb.ExGUID{}, false
	}
	return fsshttpb.ExGUID{GUID: m.guidTable[id.GUIDIndex], Value: id.Value}, true
}
