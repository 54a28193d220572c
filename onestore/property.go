// Package onestore implements the typed property-bag layer built on top of
// the FSSHTTPB packaging: property-set decoding, the Object/ObjectSpace
// model, and the ExGUID resolution that binds them together.
package onestore

import (
	"github.com/onenote-go/onenote/errs"
	"github.com/onenote-go/onenote/reader"
)

// ValueKind discriminates the shape of a property's on-wire value, decoded
// from the high byte of its 32-bit property-ID (§4.7).
type ValueKind int

const (
	KindNoData ValueKind = iota
	KindBool
	KindU8
	KindU16
	KindU32
	KindU64
	KindF32
	KindBytes
	KindObjectID
	KindObjectIDs
	KindObjectSpaceID
	KindObjectSpaceIDs
	KindContextID
	KindContextIDs
	KindPropertySet
	KindPropertySets
)

// shape is the property-ID high byte, see §4.7. Some documented codes
// collide with undocumented ones once only the low 16 bits are considered
// (e.g. NoteTags = 0x40003489 vs NoteTagStates = 0x04003489): callers must
// always key lookups by the full 32-bit property ID, never the low 16
// bits alone.
const (
	shapeNoData            = 0x00
	shapeBoolFalse         = 0x01
	shapeBoolTrue          = 0x02
	shapeU8                = 0x03
	shapeU16               = 0x04
	shapeU32               = 0x05
	shapeU64               = 0x06
	shapeF32               = 0x07 // documented rare
	shapeLengthPrefixed    = 0x08
	shapeObjectID          = 0x09
	shapeObjectIDs         = 0x0A
	shapeObjectSpaceID     = 0x0B
	shapeObjectSpaceIDs    = 0x0C
	shapeContextID         = 0x0D
	shapeContextIDs        = 0x0E
	shapePropertySet       = 0x10
	shapePropertySets      = 0x11
)

// Value is a single property's decoded payload. Exactly one of the typed
// fields is meaningful, selected by Kind; this avoids interface{}
// dispatch everywhere a value is touched.
type Value struct {
	Kind ValueKind

	Bool  bool
	U8    uint8
	U16   uint16
	U32   uint32
	U64   uint64
	F32   float32
	Bytes []byte

	// Count is the declared reference-array length for the ObjectIDs,
	// ObjectSpaceIDs and ContextIDs shapes.
	Count uint32

	// Nested holds the single sub-property-set for KindPropertySet.
	Nested *PropertySet

	// NestedJcID and NestedSets hold the payload for KindPropertySets:
	// a schema id shared by every element, plus the elements themselves.
	NestedJcID uint32
	NestedSets []*PropertySet
}

// CountRefs implements the recursive count_references algorithm of §4.8
// for one reference family at a time: single selects the scalar shape
// (e.g. KindObjectID), plural selects its array counterpart (e.g.
// KindObjectIDs). It recurses into nested property-sets and nested
// property-set arrays, so references buried inside a NoteTags-style
// PropertySets value are counted too.
func (v Value) CountRefs(single, plural ValueKind) int {
	switch v.Kind {
	case single:
		return 1
	case plural:
		return int(v.Count)
	case KindPropertySet:
		return v.Nested.CountRefs(single, plural)
	case KindPropertySets:
		total := 0
		for _, s := range v.NestedSets {
			total += s.CountRefs(single, plural)
		}
		return total
	default:
		return 0
	}
}

// Property is a single (id, value) pair. Order within a PropertySet is
// significant: it defines the positional correspondence to the sibling
// CompactID arrays (§4.8).
type Property struct {
	ID    uint32
	Value Value
}

// PropertySet is the ordered payload of an Object.
type PropertySet struct {
	Properties []Property
}

// Get returns the value for id, last write wins on duplicates (duplicates
// are not expected on the wire).
func (p *PropertySet) Get(id uint32) (Value, bool) {
	var v Value
	found := false
	for _, prop := range p.Properties {
		if prop.ID == id {
			v = prop.Value
			found = true
		}
	}
	return v, found
}

// CountRefs sums CountRefs over every property in the set, for the
// reference family identified by (single, plural) — e.g.
// (KindObjectID, KindObjectIDs) for object-id references, per §4.8 step 2.
func (p *PropertySet) CountRefs(single, plural ValueKind) int {
	total := 0
	for _, prop := range p.Properties {
		total += prop.Value.CountRefs(single, plural)
	}
	return total
}

// PropertiesBefore returns the predecessors of the property with the
// given id: every property appearing earlier, in order, in this set
// (§4.8 step 1). If id appears more than once, the first occurrence is
// used as the boundary.
func (p *PropertySet) PropertiesBefore(id uint32) []Property {
	for i, prop := range p.Properties {
		if prop.ID == id {
			return p.Properties[:i]
		}
	}
	return p.Properties
}

// DecodePropertySet parses a property-set blob: a u16 property count,
// that many u32 property-IDs, then the concatenated property bodies in ID
// order (§4.7). An empty set (count=0) consumes exactly 2 bytes and
// produces no properties.
func DecodePropertySet(r *reader.Reader) (*PropertySet, error) {
	count, err := r.GetU16()
	if err != nil {
		return nil, err
	}

	ids := make([]uint32, count)
	for i := range ids {
		id, err := r.GetU32()
		if err != nil {
			return nil, err
		}
		ids[i] = id
	}

	set := &PropertySet{Properties: make([]Property, 0, count)}
	for _, id := range ids {
		v, err := decodeValue(r, id)
		if err != nil {
			if se, ok := err.(*errs.Error); ok {
				return nil, se.WithProperty(id)
			}
			return nil, err
		}
		set.Properties = append(set.Properties, Property{ID: id, Value: v})
	}
	return set, nil
}

func decodeValue(r *reader.Reader, id uint32) (Value, error) {
	shape := byte(id >> 24)

	switch shape {
	case shapeNoData:
		return Value{Kind: KindNoData}, nil

	case shapeBoolFalse:
		return Value{Kind: KindBool, Bool: false}, nil

	case shapeBoolTrue:
		return Value{Kind: KindBool, Bool: true}, nil

	case shapeU8:
		v, err := r.GetU8()
		return Value{Kind: KindU8, U8: v}, err

	case shapeU16:
		v, err := r.GetU16()
		return Value{Kind: KindU16, U16: v}, err

	case shapeU32:
		v, err := r.GetU32()
		return Value{Kind: KindU32, U32: v}, err

	case shapeU64:
		v, err := r.GetU64()
		return Value{Kind: KindU64, U64: v}, err

	case shapeF32:
		v, err := r.GetF32()
		return Value{Kind: KindF32, F32: v}, err

	case shapeLengthPrefixed:
		n, err := r.GetU32()
		if err != nil {
			return Value{}, err
		}
		b, err := r.Read(int(n))
		if err != nil {
			return Value{}, err
		}
		cp := make([]byte, len(b))
		copy(cp, b)
		return Value{Kind: KindBytes, Bytes: cp}, nil

	case shapeObjectID:
		return Value{Kind: KindObjectID}, nil

	case shapeObjectIDs:
		n, err := r.GetU32()
		return Value{Kind: KindObjectIDs, Count: n}, err

	case shapeObjectSpaceID:
		return Value{Kind: KindObjectSpaceID}, nil

	case shapeObjectSpaceIDs:
		n, err := r.GetU32()
		return Value{Kind: KindObjectSpaceIDs, Count: n}, err

	case shapeContextID:
		return Value{Kind: KindContextID}, nil

	case shapeContextIDs:
		n, err := r.GetU32()
		return Value{Kind: KindContextIDs, Count: n}, err

	case shapePropertySet:
		nested, err := DecodePropertySet(r)
		if err != nil {
			return Value{}, err
		}
		return Value{Kind: KindPropertySet, Nested: nested}, nil

	case shapePropertySets:
		jcID, err := r.GetU32()
		if err != nil {
			return Value{}, err
		}
		n, err := r.GetU32()
		if err != nil {
			return Value{}, err
		}
		sets := make([]*PropertySet, n)
		for i := range sets {
			s, err := DecodePropertySet(r)
			if err != nil {
				return Value{}, err
			}
			sets[i] = s
		}
		return Value{Kind: KindPropertySets, NestedJcID: jcID, NestedSets: sets}, nil

	default:
		return Value{}, errs.Newf(errs.MalformedOneStore, "unknown property shape 0x%02X", shape)
	}
}
