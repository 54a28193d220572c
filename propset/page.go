package propset

import (
	"time"

	"github.com/onenote-go/onenote/fsshttpb"
	"github.com/onenote-go/onenote/onestore"
	"github.com/onenote-go/onenote/refs"
)

// Page is one page of a section: its title/outline content objects in
// display order, its indent level in the page series, and its layout
// geometry (§4.12).
type Page struct {
	Children        []fsshttpb.ExGUID
	Level           uint32
	Width           float32
	HasWidth        bool
	Height          float32
	HasHeight       bool
	IsTitleText     bool
	IsTitleDate     bool
	IsTitleTime     bool
	CachedTitle     string
	HasCachedTitle  bool
	LastModifiedAt  time.Time
	HasLastModified bool
}

// ParsePage interprets obj as a PageNode.
func ParsePage(obj *onestore.Object) (*Page, error) {
	if err := checkJcID(obj, JcIDPageNode); err != nil {
		return nil, err
	}

	children, _, err := (refs.ObjectReference{}).ParseVec(uint32(PropertyContentChildNodes), obj)
	if err != nil {
		return nil, err
	}

	level, _, err := getU32(obj, PropertyPageLevel)
	if err != nil {
		return nil, err
	}

	width, hasWidth, err := getF32(obj, PropertyPageWidth)
	if err != nil {
		return nil, err
	}
	height, hasHeight, err := getF32(obj, PropertyPageHeight)
	if err != nil {
		return nil, err
	}

	isTitleText, err := getBool(obj, PropertyIsTitleText)
	if err != nil {
		return nil, err
	}
	isTitleDate, err := getBool(obj, PropertyIsTitleDate)
	if err != nil {
		return nil, err
	}
	isTitleTime, err := getBool(obj, PropertyIsTitleTime)
	if err != nil {
		return nil, err
	}

	cachedTitle, hasCachedTitle, err := getString(obj, PropertyCachedTitleString)
	if err != nil {
		return nil, err
	}

	lastModified, hasLastModified, err := parseTimestamp(obj, PropertyLastModifiedTimeStamp)
	if err != nil {
		return nil, err
	}

	return &Page{
		Children:        children,
		Level:           level,
		Width:           width,
		HasWidth:        hasWidth,
		Height:          height,
		HasHeight:       hasHeight,
		IsTitleText:     isTitleText,
		IsTitleDate:     isTitleDate,
		IsTitleTime:     isTitleTime,
		CachedTitle:     cachedTitle,
		HasCachedTitle:  hasCachedTitle,
		LastModifiedAt:  lastModified,
		HasLastModified: hasLastModified,
	}, nil
}

// PageManifest names the root page object of one entry in a section's
// page series.
type PageManifest struct {
	Page    fsshttpb.ExGUID
	HasPage bool
}

// ParsePageManifest interprets obj as a PageManifestNode.
func ParsePageManifest(obj *onestore.Object) (*PageManifest, error) {
	if err := checkJcID(obj, JcIDPageManifestNode); err != nil {
		return nil, err
	}
	page, ok, err := (refs.ObjectReference{}).Parse(uint32(PropertyPageManifestPage), obj)
	if err != nil {
		return nil, err
	}
	return &PageManifest{Page: page, HasPage: ok}, nil
}
