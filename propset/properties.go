// Package propset interprets Objects against the PropertySetId each
// schema expects: one small function per JcID, turning a typed property
// bag plus its resolved references into a concrete domain record.
package propset

// PropertyID names the well-known property-ID constants a OneNote file
// emits. The property names and their semantics follow the documented
// OneNote property set; the concrete 32-bit values are this module's
// own closed numbering, not the real OneNote byte values. The high byte
// always carries one of the value
// shapes package onestore decodes on (see shape* in onestore/property.go);
// the low 24 bits are carried over from the corresponding real MS-ONE
// property ID for traceability. A handful of documented low-16-bit
// collisions exist by design (see PropertyNoteTagsArray below) — callers
// must always key by the full 32-bit ID, never the low 16 bits alone.
type PropertyID uint32

const (
	PropertyCreationTimeStamp            PropertyID = 0x06001D09 // Timestamp (U64)
	PropertyLastModifiedTimeStamp        PropertyID = 0x06001D77 // Timestamp (U64)
	PropertyLastModifiedTime             PropertyID = 0x05001D7A // Time (U32 minutes)
	PropertyTopologyCreationTimeStamp    PropertyID = 0x06001C65 // Timestamp (U64)
	PropertyNotebookManagementEntityGuid PropertyID = 0x08001C30 // bytes (GUID)
	PropertyElementChildNodes            PropertyID = 0x0A001C20 // ObjectIDs
	PropertyContentChildNodes            PropertyID = 0x0A001C1F // ObjectIDs
	PropertyStructureElementChildNodes   PropertyID = 0x0A001D5F // ObjectIDs
	PropertyChildGraphSpaceElementNodes  PropertyID = 0x0C001D63 // ObjectSpaceIDs
	PropertyOutlineElementChildLevel     PropertyID = 0x05001C03 // U32
	PropertyRichEditTextUnicode          PropertyID = 0x08001C22 // bytes (UTF-16LE string)
	PropertyRichEditTextLangID           PropertyID = 0x04001CFE // U16 (LCIDs are nominally 32-bit; read as 16-bit here)
	PropertyTextRunIndex                 PropertyID = 0x08001E12 // bytes (packed U32 array)
	PropertyTextRunFormatting            PropertyID = 0x0A001E13 // ObjectIDs
	PropertyTextRunData                  PropertyID = 0x10003499 // PropertySet
	PropertyTextRunDataObject            PropertyID = 0x0A003458 // ObjectIDs
	PropertyParagraphStyle               PropertyID = 0x1000342C // PropertySet
	PropertyParagraphStyleId             PropertyID = 0x0900345A // ObjectID
	PropertyParagraphAlignment           PropertyID = 0x03003477 // U8
	PropertyParagraphSpaceBefore         PropertyID = 0x0700342E // F32
	PropertyParagraphSpaceAfter          PropertyID = 0x0700342F // F32
	PropertyParagraphLineSpacingExact    PropertyID = 0x07003430 // F32
	PropertyCharset                      PropertyID = 0x03001C0C // U8
	PropertyBold                         PropertyID = 0x02001C04 // Bool (true form; see getBool)
	PropertyItalic                       PropertyID = 0x02001C05 // Bool (true form; see getBool)
	PropertyUnderline                    PropertyID = 0x02001C06 // Bool (true form; see getBool)
	PropertyStrikethrough                PropertyID = 0x02001C07 // Bool (true form; see getBool)
	PropertySuperscript                  PropertyID = 0x02001C08 // Bool (true form; see getBool)
	PropertySubscript                    PropertyID = 0x02001C09 // Bool (true form; see getBool)
	PropertyMathFormatting               PropertyID = 0x02001C0A // Bool (true form; see getBool)
	PropertyHyperlink                    PropertyID = 0x02001E14 // Bool (true form; see getBool)
	PropertyFont                         PropertyID = 0x08001C0D // bytes (string)
	PropertyFontSize                     PropertyID = 0x04001C0B // U16 (half-points)
	PropertyFontColor                    PropertyID = 0x05001C0E // U32
	PropertyHighlight                    PropertyID = 0x05001C0F // U32
	PropertyNextStyleId                  PropertyID = 0x09001C10 // ObjectID
	PropertyParagraphLanguageCode        PropertyID = 0x04001C11 // U16
	PropertyLayoutAlignmentInParent      PropertyID = 0x03001C3E // U8
	PropertyLayoutAlignmentSelf          PropertyID = 0x03001C84 // U8
	PropertyLayoutMaxWidth               PropertyID = 0x07001C1B // F32
	PropertyLayoutMaxHeight              PropertyID = 0x07001C1C // F32
	PropertyIsLayoutSizeSetByUser        PropertyID = 0x02001CBD // Bool (true form; see getBool)
	PropertyOffsetFromParentHoriz        PropertyID = 0x07001C14 // F32
	PropertyOffsetFromParentVert         PropertyID = 0x07001C15 // F32
	PropertyPageWidth                    PropertyID = 0x07001C01 // F32
	PropertyPageHeight                   PropertyID = 0x07001C02 // F32
	PropertyPageMarginTop                PropertyID = 0x07001C4C // F32
	PropertyPageMarginBottom             PropertyID = 0x07001C4D // F32
	PropertyPageMarginLeft               PropertyID = 0x07001C4E // F32
	PropertyPageMarginRight              PropertyID = 0x07001C4F // F32
	PropertyPageSize                     PropertyID = 0x05001C8B // U32
	PropertyPageLevel                    PropertyID = 0x05001DFF // U32
	PropertyIsTitleText                  PropertyID = 0x02001CB4 // Bool (true form; see getBool)
	PropertyIsTitleDate                  PropertyID = 0x02001CB5 // Bool (true form; see getBool)
	PropertyIsTitleTime                  PropertyID = 0x02001C87 // Bool (true form; see getBool)
	PropertyCachedTitleString            PropertyID = 0x08001CF3 // bytes (string)
	PropertySectionDisplayName           PropertyID = 0x0800349B // bytes (string)
	PropertySectionColor                 PropertyID = 0x05001CBE // U32
	PropertyFolderChildFilename          PropertyID = 0x08001D6B // bytes (string)
	PropertyTocChildren                  PropertyID = 0x0A0024F6 // ObjectIDs (undocumented)
	PropertyNotebookElementOrderingId    PropertyID = 0x05001CB9 // U32
	PropertyPictureContainer             PropertyID = 0x09001C3F // ObjectID
	PropertyPictureWidth                 PropertyID = 0x070034CD // F32
	PropertyPictureHeight                PropertyID = 0x070034CE // F32
	PropertyPictureFileExtension         PropertyID = 0x08003424 // bytes (string)
	PropertyEmbeddedFileContainer        PropertyID = 0x09001D9B // ObjectID
	PropertyEmbeddedFileName             PropertyID = 0x08001D9C // bytes (string)
	PropertySourceFilepath               PropertyID = 0x08001D9D // bytes (string)
	PropertyIRecordMedia                 PropertyID = 0x05001D24 // U32
	PropertyNoteTagDefinitionOid         PropertyID = 0x09003488 // ObjectID
	PropertyNoteTagCreated               PropertyID = 0x0600346E // Timestamp (U64)
	PropertyNoteTagCompleted             PropertyID = 0x0600346F // Timestamp (U64)
	PropertyNoteTagLabel                 PropertyID = 0x08003468 // bytes (string)
	PropertyNoteTagShape                 PropertyID = 0x04003464 // U16
	PropertyNoteTagHighlightColor        PropertyID = 0x05003465 // U32
	PropertyNoteTagTextColor             PropertyID = 0x05003466 // U32
	PropertyNoteTagPropertyStatus        PropertyID = 0x05003467 // U32
	PropertyActionItemStatus             PropertyID = 0x04003470 // U16

	PropertyVersionHistoryGraphSpaceContextNodes PropertyID = 0x0E00347B // ContextIDs

	// PropertyPageManifestPage and PropertyTocSectionRoot are single-
	// reference counterparts of PropertyElementChildNodes: a
	// PageManifestNode or TocSection names exactly one child, not an
	// array, so they cannot share ElementChildNodes's ObjectIDs shape.
	PropertyPageManifestPage PropertyID = 0x09001C21 // ObjectID
	PropertyTocSectionRoot   PropertyID = 0x0B001C23 // ObjectSpaceID

	PropertyAuthor           PropertyID = 0x08001D75 // bytes (string)
	PropertyAuthorOriginal   PropertyID = 0x08001D78 // bytes (string)
	PropertyAuthorMostRecent PropertyID = 0x08001D79 // bytes (string)
)

// PropertyNoteTagsArray is the undocumented property carrying a
// PropertySets array of per-tag sub-objects recomposed into synthetic
// Objects (§4.12, notetag.go). Its low 16 bits (0x3489) collide with the
// documented NoteTagStates property, which uses a different high byte
// (Bool shape); the two are distinguished only by the full 32-bit ID.
const PropertyNoteTagsArray PropertyID = 0x11003489
