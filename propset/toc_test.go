package propset

import (
	"testing"

	"github.com/onenote-go/onenote/fsshttpb"
	"github.com/onenote-go/onenote/guid"
)

func TestNormalizeTocFilename(t *testing.T) {
	got := normalizeTocFilename("C and C^M^M and D^J^Jnotes")
	want := "C and C++ and D,,notes"
	if got != want {
		t.Fatalf("normalizeTocFilename() = %q, want %q", got, want)
	}
}

func TestParseTocContainer(t *testing.T) {
	g := guid.MustParseString("7B5C52E4-D88C-4DA7-AEB1-5378D02996D3")
	table := []guid.GUID{g}

	props := []testProperty{
		{ID: uint32(PropertyTocChildren), Body: countBody(1)},
		{ID: uint32(PropertyFolderChildFilename), Body: stringBody("Notebook^M2024")},
		{ID: uint32(PropertyNotebookElementOrderingId), Body: u32Body(7)},
	}
	objIDs := []fsshttpb.CompactID{{Value: 1, GUIDIndex: 0}}

	obj := buildTestObject(t, uint32(JcIDTocContainer), props, objIDs, nil, nil, table)

	toc, err := ParseTocContainer(obj)
	if err != nil {
		t.Fatalf("ParseTocContainer() failed: %v", err)
	}
	if toc.Filename != "Notebook+2024" {
		t.Fatalf("got filename %q, want %q", toc.Filename, "Notebook+2024")
	}
	if !toc.HasOrder || toc.OrderingID != 7 {
		t.Fatalf("got ordering (%v, %d), want (true, 7)", toc.HasOrder, toc.OrderingID)
	}
	if len(toc.Children) != 1 {
		t.Fatalf("got %d children, want 1", len(toc.Children))
	}
}

func TestParseTocSectionMissingRoot(t *testing.T) {
	obj := buildTestObject(t, uint32(JcIDTocSection), nil, nil, nil, nil, nil)
	section, err := ParseTocSection(obj)
	if err != nil {
		t.Fatalf("ParseTocSection() failed: %v", err)
	}
	if section.HasRoot {
		t.Fatal("got HasRoot=true with no TocSectionRoot property")
	}
}
