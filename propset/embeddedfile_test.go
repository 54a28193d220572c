package propset

import "testing"

func TestParseEmbeddedFileAudio(t *testing.T) {
	props := []testProperty{
		{ID: uint32(PropertyEmbeddedFileName), Body: stringBody("voice-memo.m4a")},
		{ID: uint32(PropertySourceFilepath), Body: stringBody(`C:\notes\voice-memo.m4a`)},
		{ID: uint32(PropertyIRecordMedia), Body: u32Body(1)},
	}
	obj := buildTestObject(t, uint32(JcIDEmbeddedFileNode), props, nil, nil, nil, nil)
	obj.FileData = []byte{0xDE, 0xAD, 0xBE, 0xEF}

	ef, err := ParseEmbeddedFile(obj)
	if err != nil {
		t.Fatalf("ParseEmbeddedFile() failed: %v", err)
	}
	if ef.Type != FileTypeAudio {
		t.Fatalf("got file type %v, want FileTypeAudio", ef.Type)
	}
	if ef.FileName != "voice-memo.m4a" {
		t.Fatalf("got file name %q, want %q", ef.FileName, "voice-memo.m4a")
	}
	if len(ef.FileData) != 4 {
		t.Fatalf("got %d bytes of file data, want 4", len(ef.FileData))
	}
}

func TestParseEmbeddedFileUnknownType(t *testing.T) {
	obj := buildTestObject(t, uint32(JcIDEmbeddedFileNode), nil, nil, nil, nil, nil)

	ef, err := ParseEmbeddedFile(obj)
	if err != nil {
		t.Fatalf("ParseEmbeddedFile() failed: %v", err)
	}
	if ef.Type != FileTypeUnknown {
		t.Fatalf("got file type %v, want FileTypeUnknown", ef.Type)
	}
	if ef.HasFileName {
		t.Fatal("got HasFileName=true with no property present")
	}
}
