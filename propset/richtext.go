package propset

import (
	"github.com/onenote-go/onenote/errs"
	"github.com/onenote-go/onenote/fsshttpb"
	"github.com/onenote-go/onenote/onestore"
	"github.com/onenote-go/onenote/reader"
	"github.com/onenote-go/onenote/refs"
)

// RichText is one RichTextOENode's raw text and the per-run formatting
// that applies over it: TextRunIndex splits Text into runs by codepoint
// offset, and TextRunFormatting names one ParagraphStyleObject per run.
type RichText struct {
	Text              string
	TextRunIndices    []uint32
	TextRunStyles     []fsshttpb.ExGUID
	ParagraphStyle    fsshttpb.ExGUID
	HasParagraphStyle bool
}

// ParseRichText interprets obj as a RichTextOENode.
func ParseRichText(obj *onestore.Object) (*RichText, error) {
	if err := checkJcID(obj, JcIDRichTextOENode); err != nil {
		return nil, err
	}

	text, _, err := getString(obj, PropertyRichEditTextUnicode)
	if err != nil {
		return nil, err
	}

	indices, err := getTextRunIndices(obj)
	if err != nil {
		return nil, err
	}

	styles, _, err := (refs.ObjectReference{}).ParseVec(uint32(PropertyTextRunFormatting), obj)
	if err != nil {
		return nil, err
	}

	paragraphStyle, hasParagraphStyle, err := (refs.ObjectReference{}).Parse(uint32(PropertyParagraphStyleId), obj)
	if err != nil {
		return nil, err
	}

	return &RichText{
		Text:              text,
		TextRunIndices:    indices,
		TextRunStyles:     styles,
		ParagraphStyle:    paragraphStyle,
		HasParagraphStyle: hasParagraphStyle,
	}, nil
}

// getTextRunIndices decodes PropertyTextRunIndex's raw byte payload as a
// packed little-endian u32 array: each entry is a codepoint offset into
// Text at which the next formatting run begins.
func getTextRunIndices(o *onestore.Object) ([]uint32, error) {
	v, ok := o.Props.Properties.Get(uint32(PropertyTextRunIndex))
	if !ok {
		return nil, nil
	}
	if v.Kind != onestore.KindBytes {
		return nil, errs.Newf(errs.MalformedOneNoteFile, "property 0x%08X is not bytes", PropertyTextRunIndex).WithProperty(uint32(PropertyTextRunIndex))
	}
	if len(v.Bytes)%4 != 0 {
		return nil, errs.Newf(errs.MalformedOneNoteFile, "TextRunIndex length %d is not a multiple of 4", len(v.Bytes)).WithProperty(uint32(PropertyTextRunIndex))
	}

	r := reader.New(v.Bytes)
	out := make([]uint32, 0, len(v.Bytes)/4)
	for r.Remaining() > 0 {
		n, err := r.GetU32()
		if err != nil {
			return nil, err
		}
		out = append(out, n)
	}
	return out, nil
}

// ParagraphStyling is the formatting payload of a ParagraphStyleObject:
// font, alignment and spacing overrides applied to one run or paragraph.
type ParagraphStyling struct {
	Alignment        uint8
	HasAlignment     bool
	SpaceBefore      float32
	HasSpaceBefore   bool
	SpaceAfter       float32
	HasSpaceAfter    bool
	LineSpacingExact float32
	HasLineSpacing   bool

	Charset        uint8
	HasCharset     bool
	Bold           bool
	Italic         bool
	Underline      bool
	Strikethrough  bool
	Superscript    bool
	Subscript      bool
	MathFormatting bool
	Hyperlink      bool

	Font         string
	HasFont      bool
	FontSize     uint16
	HasFontSize  bool
	FontColor    uint32
	HasFontColor bool
	Highlight    uint32
	HasHighlight bool

	NextStyleID    fsshttpb.ExGUID
	HasNextStyleID bool

	LanguageCode    uint16
	HasLanguageCode bool
}

// ParseParagraphStyling interprets obj as a ParagraphStyleObject.
func ParseParagraphStyling(obj *onestore.Object) (*ParagraphStyling, error) {
	if err := checkJcID(obj, JcIDParagraphStyleObject); err != nil {
		return nil, err
	}

	alignment, hasAlignment, err := getU8(obj, PropertyParagraphAlignment)
	if err != nil {
		return nil, err
	}
	before, hasBefore, err := getF32(obj, PropertyParagraphSpaceBefore)
	if err != nil {
		return nil, err
	}
	after, hasAfter, err := getF32(obj, PropertyParagraphSpaceAfter)
	if err != nil {
		return nil, err
	}
	lineSpacing, hasLineSpacing, err := getF32(obj, PropertyParagraphLineSpacingExact)
	if err != nil {
		return nil, err
	}
	charset, hasCharset, err := getU8(obj, PropertyCharset)
	if err != nil {
		return nil, err
	}
	bold, err := getBool(obj, PropertyBold)
	if err != nil {
		return nil, err
	}
	italic, err := getBool(obj, PropertyItalic)
	if err != nil {
		return nil, err
	}
	underline, err := getBool(obj, PropertyUnderline)
	if err != nil {
		return nil, err
	}
	strikethrough, err := getBool(obj, PropertyStrikethrough)
	if err != nil {
		return nil, err
	}
	superscript, err := getBool(obj, PropertySuperscript)
	if err != nil {
		return nil, err
	}
	subscript, err := getBool(obj, PropertySubscript)
	if err != nil {
		return nil, err
	}
	mathFormatting, err := getBool(obj, PropertyMathFormatting)
	if err != nil {
		return nil, err
	}
	hyperlink, err := getBool(obj, PropertyHyperlink)
	if err != nil {
		return nil, err
	}
	font, hasFont, err := getString(obj, PropertyFont)
	if err != nil {
		return nil, err
	}
	fontSize, hasFontSize, err := getU16(obj, PropertyFontSize)
	if err != nil {
		return nil, err
	}
	fontColor, hasFontColor, err := getU32(obj, PropertyFontColor)
	if err != nil {
		return nil, err
	}
	highlight, hasHighlight, err := getU32(obj, PropertyHighlight)
	if err != nil {
		return nil, err
	}
	nextStyleID, hasNextStyleID, err := (refs.ObjectReference{}).Parse(uint32(PropertyNextStyleId), obj)
	if err != nil {
		return nil, err
	}
	languageCode, hasLanguageCode, err := getU16(obj, PropertyParagraphLanguageCode)
	if err != nil {
		return nil, err
	}

	return &ParagraphStyling{
		Alignment:        alignment,
		HasAlignment:     hasAlignment,
		SpaceBefore:      before,
		HasSpaceBefore:   hasBefore,
		SpaceAfter:       after,
		HasSpaceAfter:    hasAfter,
		LineSpacingExact: lineSpacing,
		HasLineSpacing:   hasLineSpacing,

		Charset:        charset,
		HasCharset:     hasCharset,
		Bold:           bold,
		Italic:         italic,
		Underline:      underline,
		Strikethrough:  strikethrough,
		Superscript:    superscript,
		Subscript:      subscript,
		MathFormatting: mathFormatting,
		Hyperlink:      hyperlink,

		Font:         font,
		HasFont:      hasFont,
		FontSize:     fontSize,
		HasFontSize:  hasFontSize,
		FontColor:    fontColor,
		HasFontColor: hasFontColor,
		Highlight:    highlight,
		HasHighlight: hasHighlight,

		NextStyleID:    nextStyleID,
		HasNextStyleID: hasNextStyleID,

		LanguageCode:    languageCode,
		HasLanguageCode: hasLanguageCode,
	}, nil
}
