package propset

import (
	"github.com/onenote-go/onenote/fsshttpb"
	"github.com/onenote-go/onenote/onestore"
	"github.com/onenote-go/onenote/refs"
)

// FileType classifies an EmbeddedFileNode's payload when it is a
// recording. The property that is supposed to carry the recording's
// duration was never identified in the available MS-ONE material — the
// original Rust implementation carries the same gap as an open FIXME —
// so EmbeddedFile leaves it unset rather than guessing an encoding.
type FileType int

const (
	FileTypeUnknown FileType = iota
	FileTypeAudio
	FileTypeVideo
)

// EmbeddedFile is a file attachment embedded in a page.
type EmbeddedFile struct {
	FileData      []byte
	FileName      string
	HasFileName   bool
	SourcePath    string
	HasSourcePath bool
	Type          FileType

	LastModified    uint32
	HasLastModified bool

	Container fsshttpb.ExGUID
	HasContainer bool

	PictureContainer    fsshttpb.ExGUID
	HasPictureContainer bool
	PictureWidth        float32
	HasPictureWidth     bool
	PictureHeight       float32
	HasPictureHeight    bool

	LayoutMaxWidth          float32
	HasLayoutMaxWidth       bool
	LayoutMaxHeight         float32
	HasLayoutMaxHeight      bool
	IsLayoutSizeSetByUser   bool
	LayoutAlignmentInParent uint8
	HasLayoutAlignmentInParent bool
	LayoutAlignmentSelf     uint8
	HasLayoutAlignmentSelf  bool

	Text             string
	HasText          bool
	TextLanguageCode uint16
	HasTextLanguageCode bool

	OffsetFromParentHoriz    float32
	HasOffsetFromParentHoriz bool
	OffsetFromParentVert     float32
	HasOffsetFromParentVert  bool

	NoteTags []*NoteTagState
}

// ParseEmbeddedFile interprets obj as an EmbeddedFileNode.
func ParseEmbeddedFile(obj *onestore.Object) (*EmbeddedFile, error) {
	if err := checkJcID(obj, JcIDEmbeddedFileNode); err != nil {
		return nil, err
	}

	fileName, hasFileName, err := getString(obj, PropertyEmbeddedFileName)
	if err != nil {
		return nil, err
	}
	sourcePath, hasSourcePath, err := getString(obj, PropertySourceFilepath)
	if err != nil {
		return nil, err
	}

	recordMedia, hasRecordMedia, err := getU32(obj, PropertyIRecordMedia)
	if err != nil {
		return nil, err
	}
	fileType := FileTypeUnknown
	if hasRecordMedia {
		switch recordMedia {
		case 1:
			fileType = FileTypeAudio
		case 2:
			fileType = FileTypeVideo
		}
	}

	lastModified, hasLastModified, err := getU32(obj, PropertyLastModifiedTime)
	if err != nil {
		return nil, err
	}
	container, hasContainer, err := (refs.ObjectReference{}).Parse(uint32(PropertyEmbeddedFileContainer), obj)
	if err != nil {
		return nil, err
	}
	pictureContainer, hasPictureContainer, err := (refs.ObjectReference{}).Parse(uint32(PropertyPictureContainer), obj)
	if err != nil {
		return nil, err
	}
	pictureWidth, hasPictureWidth, err := getF32(obj, PropertyPictureWidth)
	if err != nil {
		return nil, err
	}
	pictureHeight, hasPictureHeight, err := getF32(obj, PropertyPictureHeight)
	if err != nil {
		return nil, err
	}
	layoutMaxWidth, hasLayoutMaxWidth, err := getF32(obj, PropertyLayoutMaxWidth)
	if err != nil {
		return nil, err
	}
	layoutMaxHeight, hasLayoutMaxHeight, err := getF32(obj, PropertyLayoutMaxHeight)
	if err != nil {
		return nil, err
	}
	isLayoutSizeSetByUser, err := getBool(obj, PropertyIsLayoutSizeSetByUser)
	if err != nil {
		return nil, err
	}
	layoutAlignmentInParent, hasLayoutAlignmentInParent, err := getU8(obj, PropertyLayoutAlignmentInParent)
	if err != nil {
		return nil, err
	}
	layoutAlignmentSelf, hasLayoutAlignmentSelf, err := getU8(obj, PropertyLayoutAlignmentSelf)
	if err != nil {
		return nil, err
	}
	text, hasText, err := getString(obj, PropertyRichEditTextUnicode)
	if err != nil {
		return nil, err
	}
	textLanguageCode, hasTextLanguageCode, err := getU16(obj, PropertyRichEditTextLangID)
	if err != nil {
		return nil, err
	}
	offsetHoriz, hasOffsetHoriz, err := getF32(obj, PropertyOffsetFromParentHoriz)
	if err != nil {
		return nil, err
	}
	offsetVert, hasOffsetVert, err := getF32(obj, PropertyOffsetFromParentVert)
	if err != nil {
		return nil, err
	}
	noteTags, err := parseNoteTagStates(obj)
	if err != nil {
		return nil, err
	}

	return &EmbeddedFile{
		FileData:      obj.FileData,
		FileName:      fileName,
		HasFileName:   hasFileName,
		SourcePath:    sourcePath,
		HasSourcePath: hasSourcePath,
		Type:          fileType,

		LastModified:    lastModified,
		HasLastModified: hasLastModified,

		Container:    container,
		HasContainer: hasContainer,

		PictureContainer:    pictureContainer,
		HasPictureContainer: hasPictureContainer,
		PictureWidth:        pictureWidth,
		HasPictureWidth:     hasPictureWidth,
		PictureHeight:       pictureHeight,
		HasPictureHeight:    hasPictureHeight,

		LayoutMaxWidth:             layoutMaxWidth,
		HasLayoutMaxWidth:          hasLayoutMaxWidth,
		LayoutMaxHeight:            layoutMaxHeight,
		HasLayoutMaxHeight:         hasLayoutMaxHeight,
		IsLayoutSizeSetByUser:      isLayoutSizeSetByUser,
		LayoutAlignmentInParent:    layoutAlignmentInParent,
		HasLayoutAlignmentInParent: hasLayoutAlignmentInParent,
		LayoutAlignmentSelf:        layoutAlignmentSelf,
		HasLayoutAlignmentSelf:     hasLayoutAlignmentSelf,

		Text:                text,
		HasText:             hasText,
		TextLanguageCode:    textLanguageCode,
		HasTextLanguageCode: hasTextLanguageCode,

		OffsetFromParentHoriz:    offsetHoriz,
		HasOffsetFromParentHoriz: hasOffsetHoriz,
		OffsetFromParentVert:     offsetVert,
		HasOffsetFromParentVert:  hasOffsetVert,

		NoteTags: noteTags,
	}, nil
}
