package propset

import (
	"time"

	"github.com/onenote-go/onenote/errs"
	"github.com/onenote-go/onenote/fsshttpb"
	"github.com/onenote-go/onenote/onestore"
	"github.com/onenote-go/onenote/refs"
)

// NoteTagDefinition names one kind of note tag (e.g. "To Do", "Important")
// available in a section: its label, the glyph/shape it renders with, and
// its highlight/text colours.
type NoteTagDefinition struct {
	Label             string
	HasLabel          bool
	Shape             uint16
	HasShape          bool
	HighlightColor    uint32
	HasHighlightColor bool
	TextColor         uint32
	HasTextColor      bool
}

// ParseNoteTagDefinition interprets obj as a NoteTagDefinitionNode.
func ParseNoteTagDefinition(obj *onestore.Object) (*NoteTagDefinition, error) {
	if err := checkJcID(obj, JcIDNoteTagDefinitionNode); err != nil {
		return nil, err
	}

	label, hasLabel, err := getString(obj, PropertyNoteTagLabel)
	if err != nil {
		return nil, err
	}
	shape, hasShape, err := getU16(obj, PropertyNoteTagShape)
	if err != nil {
		return nil, err
	}
	highlight, hasHighlight, err := getU32(obj, PropertyNoteTagHighlightColor)
	if err != nil {
		return nil, err
	}
	textColor, hasTextColor, err := getU32(obj, PropertyNoteTagTextColor)
	if err != nil {
		return nil, err
	}

	return &NoteTagDefinition{
		Label:             label,
		HasLabel:          hasLabel,
		Shape:             shape,
		HasShape:          hasShape,
		HighlightColor:    highlight,
		HasHighlightColor: hasHighlight,
		TextColor:         textColor,
		HasTextColor:      hasTextColor,
	}, nil
}

// NoteTagState is one tagged paragraph's occurrence of a NoteTagDefinition:
// which definition it instantiates, whether it has been completed, and the
// timestamps bracketing that lifecycle.
type NoteTagState struct {
	Definition     fsshttpb.ExGUID
	HasDefinition  bool
	Status         uint32
	HasStatus      bool
	CreatedAt      time.Time
	HasCreatedAt   bool
	CompletedAt    time.Time
	HasCompletedAt bool
}

func parseNoteTagState(obj *onestore.Object) (*NoteTagState, error) {
	definition, hasDefinition, err := (refs.ObjectReference{}).Parse(uint32(PropertyNoteTagDefinitionOid), obj)
	if err != nil {
		return nil, err
	}
	status, hasStatus, err := getU32(obj, PropertyNoteTagPropertyStatus)
	if err != nil {
		return nil, err
	}
	createdAt, hasCreatedAt, err := parseTimestamp(obj, PropertyNoteTagCreated)
	if err != nil {
		return nil, err
	}
	completedAt, hasCompletedAt, err := parseTimestamp(obj, PropertyNoteTagCompleted)
	if err != nil {
		return nil, err
	}

	return &NoteTagState{
		Definition:     definition,
		HasDefinition:  hasDefinition,
		Status:         status,
		HasStatus:      hasStatus,
		CreatedAt:      createdAt,
		HasCreatedAt:   hasCreatedAt,
		CompletedAt:    completedAt,
		HasCompletedAt: hasCompletedAt,
	}, nil
}

// NoteTagContainer is a page's table of active note-tag occurrences.
type NoteTagContainer struct {
	States []*NoteTagState
}

// ParseNoteTagContainer interprets obj as a NoteTagContainer, recomposing
// each element of its NoteTagsArray property into a standalone Object and
// interpreting it as a NoteTagState.
func ParseNoteTagContainer(obj *onestore.Object) (*NoteTagContainer, error) {
	if err := checkJcID(obj, JcIDNoteTagContainer); err != nil {
		return nil, err
	}

	states, err := parseNoteTagStates(obj)
	if err != nil {
		return nil, err
	}
	return &NoteTagContainer{States: states}, nil
}

// parseNoteTagStates recomposes the elements of obj's NoteTagsArray property
// (if present) into standalone Objects and interprets each as a NoteTagState.
// It is shared by any object carrying that property, not only
// NoteTagContainer itself.
func parseNoteTagStates(obj *onestore.Object) ([]*NoteTagState, error) {
	v, ok := obj.Props.Properties.Get(uint32(PropertyNoteTagsArray))
	if !ok {
		return nil, nil
	}
	if v.Kind != onestore.KindPropertySets {
		return nil, errs.Newf(errs.MalformedOneNoteFile, "property 0x%08X is not a PropertySets value", PropertyNoteTagsArray).WithProperty(uint32(PropertyNoteTagsArray))
	}

	before := obj.Props.Properties.PropertiesBefore(uint32(PropertyNoteTagsArray))
	objOffset := countRefsOf(before, onestore.KindObjectID, onestore.KindObjectIDs)
	spaceOffset := countRefsOf(before, onestore.KindObjectSpaceID, onestore.KindObjectSpaceIDs)
	ctxOffset := countRefsOf(before, onestore.KindContextID, onestore.KindContextIDs)

	states := make([]*NoteTagState, 0, len(v.NestedSets))
	for _, nested := range v.NestedSets {
		synthetic := onestore.NewSyntheticObject(obj, JcIDNoteTagStateEntry, nested, objOffset, spaceOffset, ctxOffset)

		state, err := parseNoteTagState(synthetic)
		if err != nil {
			return nil, err
		}
		states = append(states, state)

		objOffset += nested.CountRefs(onestore.KindObjectID, onestore.KindObjectIDs)
		spaceOffset += nested.CountRefs(onestore.KindObjectSpaceID, onestore.KindObjectSpaceIDs)
		ctxOffset += nested.CountRefs(onestore.KindContextID, onestore.KindContextIDs)
	}
	return states, nil
}

func countRefsOf(props []onestore.Property, single, plural onestore.ValueKind) int {
	total := 0
	for _, p := range props {
		total += p.Value.CountRefs(single, plural)
	}
	return total
}
