// Package refs resolves an OneStore object's positional references: a
// property's reference targets are not stored with it, they live in the
// parallel CompactID arrays on its containing Object, at an offset
// computed by summing the references carried by the properties preceding
// it.
package refs

import (
	"github.com/onenote-go/onenote/errs"
	"github.com/onenote-go/onenote/fsshttpb"
	"github.com/onenote-go/onenote/onestore"
)

// family bundles the (single, plural, CompactID array accessor) triple
// that distinguishes object, object-space and context references; the
// resolution algorithm is otherwise identical across the three.
type family struct {
	single, plural onestore.ValueKind
	ids            func(*onestore.Object) []fsshttpb.CompactID
}

var (
	objectFamily = family{
		single: onestore.KindObjectID, plural: onestore.KindObjectIDs,
		ids: func(o *onestore.Object) []fsshttpb.CompactID { return o.Props.ObjectIDs },
	}
	objectSpaceFamily = family{
		single: onestore.KindObjectSpaceID, plural: onestore.KindObjectSpaceIDs,
		ids: func(o *onestore.Object) []fsshttpb.CompactID { return o.Props.ObjectSpaceIDs },
	}
	contextFamily = family{
		single: onestore.KindContextID, plural: onestore.KindContextIDs,
		ids: func(o *onestore.Object) []fsshttpb.CompactID { return o.Props.ContextIDs },
	}
)

// offset computes the position of propertyID's references within its
// family's CompactID array: the sum of CountRefs over every property
// preceding it in the object's property set (§4.8 step 1-2).
func offset(f family, id uint32, obj *onestore.Object) (int, error) {
	predecessors := obj.Props.Properties.PropertiesBefore(id)
	total := 0
	for _, p := range predecessors {
		total += p.Value.CountRefs(f.single, f.plural)
	}
	return total, nil
}

func resolveOne(f family, propertyID uint32, obj *onestore.Object) (fsshttpb.ExGUID, bool, error) {
	val, ok := obj.Props.Properties.Get(propertyID)
	if !ok {
		return fsshttpb.ExGUID{}, false, nil
	}
	if val.Kind != f.single {
		return fsshttpb.ExGUID{}, false, errs.Newf(errs.MalformedOneNoteFile,
			"property 0x%08X is not a single reference value", propertyID).WithProperty(propertyID)
	}

	idx, err := offset(f, propertyID, obj)
	if err != nil {
		return fsshttpb.ExGUID{}, false, err
	}

	ids := f.ids(obj)
	if idx >= len(ids) {
		return fsshttpb.ExGUID{}, false, errs.Newf(errs.MalformedOneNoteFile,
			"reference index %d out of range for property 0x%08X (%d ids)", idx, propertyID, len(ids)).WithProperty(propertyID)
	}

	exGUID, ok := obj.Mapping().GetObject(ids[idx])
	if !ok {
		return fsshttpb.ExGUID{}, false, errs.Newf(errs.MalformedOneNoteFile,
			"reference index %d for property 0x%08X has no GUID table entry", idx, propertyID).WithProperty(propertyID)
	}
	return exGUID, true, nil
}

func resolveVec(f family, propertyID uint32, obj *onestore.Object) ([]fsshttpb.ExGUID, bool, error) {
	val, ok := obj.Props.Properties.Get(propertyID)
	if !ok {
		return nil, false, nil
	}
	if val.Kind != f.plural {
		return nil, false, errs.Newf(errs.MalformedOneNoteFile,
			"property 0x%08X is not a reference array value", propertyID).WithProperty(propertyID)
	}

	start, err := offset(f, propertyID, obj)
	if err != nil {
		return nil, false, err
	}

	ids := f.ids(obj)
	end := start + int(val.Count)
	if end > len(ids) {
		return nil, false, errs.Newf(errs.MalformedOneNoteFile,
			"reference array for property 0x%08X exceeds id table (%d..%d of %d)", propertyID, start, end, len(ids)).WithProperty(propertyID)
	}

	out := make([]fsshttpb.ExGUID, 0, val.Count)
	for _, id := range ids[start:end] {
		exGUID, ok := obj.Mapping().GetObject(id)
		if !ok {
			return nil, false, errs.Newf(errs.MalformedOneNoteFile,
				"reference in array for property 0x%08X has no GUID table entry", propertyID).WithProperty(propertyID)
		}
		out = append(out, exGUID)
	}
	return out, true, nil
}

// ObjectReference resolves PropertyValue shapes ObjectID / ObjectIDs.
type ObjectReference struct{}

// Parse resolves a single object reference property, if present.
func (ObjectReference) Parse(propertyID uint32, obj *onestore.Object) (fsshttpb.ExGUID, bool, error) {
	return resolveOne(objectFamily, propertyID, obj)
}

// ParseVec resolves an object reference array property, if present.
func (ObjectReference) ParseVec(propertyID uint32, obj *onestore.Object) ([]fsshttpb.ExGUID, bool, error) {
	return resolveVec(objectFamily, propertyID, obj)
}

// ObjectSpaceReference resolves PropertyValue shapes ObjectSpaceID /
// ObjectSpaceIDs (cross-ObjectSpace links, e.g. a TOC entry naming a
// section's root object space).
type ObjectSpaceReference struct{}

// Parse resolves a single object-space reference property, if present.
func (ObjectSpaceReference) Parse(propertyID uint32, obj *onestore.Object) (fsshttpb.ExGUID, bool, error) {
	return resolveOne(objectSpaceFamily, propertyID, obj)
}

// ParseVec resolves an object-space reference array property, if present.
func (ObjectSpaceReference) ParseVec(propertyID uint32, obj *onestore.Object) ([]fsshttpb.ExGUID, bool, error) {
	return resolveVec(objectSpaceFamily, propertyID, obj)
}

// ContextReference resolves PropertyValue shapes ContextID / ContextIDs.
type ContextReference struct{}

// Parse resolves a single context reference property, if present.
func (ContextReference) Parse(propertyID uint32, obj *onestore.Object) (fsshttpb.ExGUID, bool, error) {
	return resolveOne(contextFamily, propertyID, obj)
}

// ParseVec resolves a context reference array property, if present.
func (ContextReference) ParseVec(propertyID uint32, obj *onestore.Object) ([]fsshttpb.ExGUID, bool, error) {
	return resolveVec(contextFamily, propertyID, obj)
}
