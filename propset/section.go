package propset

import (
	"time"

	"github.com/onenote-go/onenote/fsshttpb"
	"github.com/onenote-go/onenote/guid"
	"github.com/onenote-go/onenote/onestore"
	"github.com/onenote-go/onenote/refs"
)

// Section is the root object of a .one file: an entity GUID, its page
// series in display order, and its creation time (§4.12, grounded on
// section_node.rs).
type Section struct {
	ContextID  fsshttpb.ExGUID
	EntityGUID guid.GUID
	PageSeries []fsshttpb.ExGUID
	CreatedAt  time.Time
}

// ParseSection interprets obj as a SectionNode.
func ParseSection(obj *onestore.Object) (*Section, error) {
	if err := checkJcID(obj, JcIDSectionNode); err != nil {
		return nil, err
	}

	entityGUID, ok, err := getGUID(obj, PropertyNotebookManagementEntityGuid)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, missing("NotebookManagementEntityGuid")
	}

	pageSeries, _, err := (refs.ObjectReference{}).ParseVec(uint32(PropertyElementChildNodes), obj)
	if err != nil {
		return nil, err
	}

	createdAt, ok, err := parseTimestamp(obj, PropertyTopologyCreationTimeStamp)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, missing("TopologyCreationTimeStamp")
	}

	return &Section{
		ContextID:  obj.ContextID,
		EntityGUID: entityGUID,
		PageSeries: pageSeries,
		CreatedAt:  createdAt,
	}, nil
}
