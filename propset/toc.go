package propset

import (
	"strings"

	"github.com/onenote-go/onenote/fsshttpb"
	"github.com/onenote-go/onenote/onestore"
	"github.com/onenote-go/onenote/refs"
)

// TocEntry is one section/section-group reachable from the notebook's
// table of contents (TocContainer; §4.12, grounded on toc_container.rs).
type TocEntry struct {
	Children   []fsshttpb.ExGUID
	Filename   string
	OrderingID uint32
	HasOrder   bool
}

// ParseTocContainer interprets obj as a TocContainer.
func ParseTocContainer(obj *onestore.Object) (*TocEntry, error) {
	if err := checkJcID(obj, JcIDTocContainer); err != nil {
		return nil, err
	}

	children, _, err := (refs.ObjectReference{}).ParseVec(uint32(PropertyTocChildren), obj)
	if err != nil {
		return nil, err
	}

	filename, _, err := getString(obj, PropertyFolderChildFilename)
	if err != nil {
		return nil, err
	}
	filename = normalizeTocFilename(filename)

	orderingID, hasOrder, err := getU32(obj, PropertyNotebookElementOrderingId)
	if err != nil {
		return nil, err
	}

	return &TocEntry{
		Children:   children,
		Filename:   filename,
		OrderingID: orderingID,
		HasOrder:   hasOrder,
	}, nil
}

// normalizeTocFilename applies the literal character substitutions
// MS-ONE defines for escaped path separators in a TOC filename.
func normalizeTocFilename(s string) string {
	s = strings.ReplaceAll(s, "^M", "+")
	s = strings.ReplaceAll(s, "^J", ",")
	return s
}

// TocSection is a leaf entry of the table of contents naming one
// section's root object space.
type TocSection struct {
	RootObjectSpace fsshttpb.ExGUID
	HasRoot         bool
}

// ParseTocSection interprets obj as a TocSection.
func ParseTocSection(obj *onestore.Object) (*TocSection, error) {
	if err := checkJcID(obj, JcIDTocSection); err != nil {
		return nil, err
	}
	root, ok, err := (refs.ObjectSpaceReference{}).Parse(uint32(PropertyTocSectionRoot), obj)
	if err != nil {
		return nil, err
	}
	return &TocSection{RootObjectSpace: root, HasRoot: ok}, nil
}
