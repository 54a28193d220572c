package propset

import (
	"github.com/onenote-go/onenote/fsshttpb"
	"github.com/onenote-go/onenote/onestore"
	"github.com/onenote-go/onenote/refs"
)

// Outline is a positionable container of OutlineElements on a page
// (§4.12).
type Outline struct {
	Children          []fsshttpb.ExGUID
	OffsetFromParentH float32
	OffsetFromParentV float32
	HasOffsetH        bool
	HasOffsetV        bool
	LayoutMaxWidth    float32
	HasLayoutMaxWidth bool
}

// ParseOutline interprets obj as an OutlineNode.
func ParseOutline(obj *onestore.Object) (*Outline, error) {
	if err := checkJcID(obj, JcIDOutlineNode); err != nil {
		return nil, err
	}

	children, _, err := (refs.ObjectReference{}).ParseVec(uint32(PropertyElementChildNodes), obj)
	if err != nil {
		return nil, err
	}

	offsetH, hasH, err := getF32(obj, PropertyOffsetFromParentHoriz)
	if err != nil {
		return nil, err
	}
	offsetV, hasV, err := getF32(obj, PropertyOffsetFromParentVert)
	if err != nil {
		return nil, err
	}
	maxWidth, hasMaxWidth, err := getF32(obj, PropertyLayoutMaxWidth)
	if err != nil {
		return nil, err
	}

	return &Outline{
		Children:          children,
		OffsetFromParentH: offsetH,
		OffsetFromParentV: offsetV,
		HasOffsetH:        hasH,
		HasOffsetV:        hasV,
		LayoutMaxWidth:    maxWidth,
		HasLayoutMaxWidth: hasMaxWidth,
	}, nil
}

// OutlineElement is one paragraph-bearing node of an Outline: its own
// children (nested sub-elements) plus a child indent level.
type OutlineElement struct {
	Children   []fsshttpb.ExGUID
	ChildLevel uint32
}

// ParseOutlineElement interprets obj as an OutlineElementNode.
func ParseOutlineElement(obj *onestore.Object) (*OutlineElement, error) {
	if err := checkJcID(obj, JcIDOutlineElementNode); err != nil {
		return nil, err
	}

	children, _, err := (refs.ObjectReference{}).ParseVec(uint32(PropertyContentChildNodes), obj)
	if err != nil {
		return nil, err
	}

	level, _, err := getU32(obj, PropertyOutlineElementChildLevel)
	if err != nil {
		return nil, err
	}

	return &OutlineElement{Children: children, ChildLevel: level}, nil
}
