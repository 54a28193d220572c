package propset

import (
	"github.com/onenote-go/onenote/fsshttpb"
	"github.com/onenote-go/onenote/onestore"
	"github.com/onenote-go/onenote/refs"
)

// Image is an ImageNode: a reference to the PictureContainer holding the
// actual file bytes, plus display geometry. Alt text and titles are not
// read.
type Image struct {
	Container    fsshttpb.ExGUID
	HasContainer bool
	Width        float32
	HasWidth     bool
	Height       float32
	HasHeight    bool
}

// ParseImage interprets obj as an ImageNode.
func ParseImage(obj *onestore.Object) (*Image, error) {
	if err := checkJcID(obj, JcIDImageNode); err != nil {
		return nil, err
	}

	container, hasContainer, err := (refs.ObjectReference{}).Parse(uint32(PropertyPictureContainer), obj)
	if err != nil {
		return nil, err
	}
	width, hasWidth, err := getF32(obj, PropertyPictureWidth)
	if err != nil {
		return nil, err
	}
	height, hasHeight, err := getF32(obj, PropertyPictureHeight)
	if err != nil {
		return nil, err
	}

	return &Image{
		Container:    container,
		HasContainer: hasContainer,
		Width:        width,
		HasWidth:     hasWidth,
		Height:       height,
		HasHeight:    hasHeight,
	}, nil
}

// PictureContainer14 holds the raw bytes of an embedded image, plus the
// file extension needed to reconstruct a usable filename.
type PictureContainer14 struct {
	FileData      []byte
	FileExtension string
	HasExtension  bool
}

// ParsePictureContainer interprets obj as a PictureContainer14.
func ParsePictureContainer(obj *onestore.Object) (*PictureContainer14, error) {
	if err := checkJcID(obj, JcIDPictureContainer14); err != nil {
		return nil, err
	}

	ext, hasExt, err := getString(obj, PropertyPictureFileExtension)
	if err != nil {
		return nil, err
	}

	return &PictureContainer14{
		FileData:      obj.FileData,
		FileExtension: ext,
		HasExtension:  hasExt,
	}, nil
}
