package propset

import "github.com/onenote-go/onenote/onestore"

// JcID values name the PropertySetId an Object must carry for a given
// interpreter to apply (invariant I5). The exact numeric assignments are
// this module's own closed enumeration — MS-ONESTORE's official jcid
// table was not available to ground them against, so each interpreter
// below checks against the symbolic constant rather than a hard literal,
// keeping the dispatch internally consistent even though the wire values
// are not guaranteed to match a real OneStore file byte-for-byte.
const (
	JcIDPageManifestNode      onestore.JcID = 0x0001
	JcIDPageNode              onestore.JcID = 0x0002
	JcIDSectionNode           onestore.JcID = 0x0003
	JcIDTocSection            onestore.JcID = 0x0004
	JcIDTocContainer          onestore.JcID = 0x0005
	JcIDOutlineNode           onestore.JcID = 0x0006
	JcIDOutlineElementNode    onestore.JcID = 0x0007
	JcIDRichTextOENode        onestore.JcID = 0x0008
	JcIDParagraphStyleObject  onestore.JcID = 0x0009
	JcIDEmbeddedFileNode      onestore.JcID = 0x000A
	JcIDNoteTagContainer      onestore.JcID = 0x000B
	JcIDNoteTagDefinitionNode onestore.JcID = 0x000C
	JcIDImageNode             onestore.JcID = 0x000D
	JcIDPictureContainer14    onestore.JcID = 0x000E
	JcIDVersionHistoryContent onestore.JcID = 0x000F

	// JcIDNoteTagStateEntry is the schema of one recomposed element of a
	// NoteTagContainer's NoteTagsArray property. No separate jcid is
	// documented for the per-occurrence state entries nested inside a
	// NoteTagsArray, so this value is assigned rather than carried over
	// from a known constant.
	JcIDNoteTagStateEntry onestore.JcID = 0x0010
)

// checkJcID returns a structural error if obj's JcID does not match
// expected, per invariant I5.
func checkJcID(obj *onestore.Object, expected onestore.JcID) error {
	if obj.JcID != expected {
		return jcidMismatch(obj.JcID, expected)
	}
	return nil
}
