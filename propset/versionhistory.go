package propset

import (
	"github.com/onenote-go/onenote/fsshttpb"
	"github.com/onenote-go/onenote/onestore"
	"github.com/onenote-go/onenote/refs"
)

// VersionHistory lists the object spaces holding prior revisions kept
// alongside a section for its version-history feature.
type VersionHistory struct {
	GraphSpaces []fsshttpb.ExGUID
}

// ParseVersionHistory interprets obj as a VersionHistoryContent object.
func ParseVersionHistory(obj *onestore.Object) (*VersionHistory, error) {
	if err := checkJcID(obj, JcIDVersionHistoryContent); err != nil {
		return nil, err
	}

	spaces, _, err := (refs.ContextReference{}).ParseVec(uint32(PropertyVersionHistoryGraphSpaceContextNodes), obj)
	if err != nil {
		return nil, err
	}

	return &VersionHistory{GraphSpaces: spaces}, nil
}
