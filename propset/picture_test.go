package propset

import (
	"testing"

	"github.com/onenote-go/onenote/fsshttpb"
	"github.com/onenote-go/onenote/guid"
)

func TestParseImage(t *testing.T) {
	g := guid.MustParseString("7B5C52E4-D88C-4DA7-AEB1-5378D02996D3")
	table := []guid.GUID{g}

	props := []testProperty{
		{ID: uint32(PropertyPictureContainer), Body: nil},
		{ID: uint32(PropertyPictureWidth), Body: f32Body(800)},
		{ID: uint32(PropertyPictureHeight), Body: f32Body(600)},
	}
	objIDs := []fsshttpb.CompactID{{Value: 1, GUIDIndex: 0}}

	obj := buildTestObject(t, uint32(JcIDImageNode), props, objIDs, nil, nil, table)

	img, err := ParseImage(obj)
	if err != nil {
		t.Fatalf("ParseImage() failed: %v", err)
	}
	if !img.HasContainer {
		t.Fatal("got HasContainer=false, want true")
	}
	if img.Width != 800 || img.Height != 600 {
		t.Fatalf("got size %vx%v, want 800x600", img.Width, img.Height)
	}
}

func TestParsePictureContainer(t *testing.T) {
	props := []testProperty{
		{ID: uint32(PropertyPictureFileExtension), Body: stringBody(".png")},
	}
	obj := buildTestObject(t, uint32(JcIDPictureContainer14), props, nil, nil, nil, nil)
	obj.FileData = []byte{0x89, 'P', 'N', 'G'}

	pic, err := ParsePictureContainer(obj)
	if err != nil {
		t.Fatalf("ParsePictureContainer() failed: %v", err)
	}
	if pic.FileExtension != ".png" {
		t.Fatalf("got extension %q, want %q", pic.FileExtension, ".png")
	}
	if len(pic.FileData) != 4 {
		t.Fatalf("got %d bytes of file data, want 4", len(pic.FileData))
	}
}
