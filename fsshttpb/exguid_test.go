package fsshttpb

import (
	"testing"

	"github.com/onenote-go/onenote/guid"
	"github.com/onenote-go/onenote/reader"
)

func encodeNull() []byte {
	return []byte{byte(formNull)}
}

func encodeCompact5(value, idx uint32) []byte {
	return []byte{byte(formCompact5), byte(value<<3 | idx&0x07)}
}

func encodeCompact10(value, idx uint32) []byte {
	w := (value & 0x03FF) | (idx << 10)
	return []byte{byte(formCompact10), byte(w), byte(w >> 8)}
}

func encodeCompact17(value, idx uint32) []byte {
	packed := (value & 0x1FFFF) | (idx << 17)
	return []byte{byte(formCompact17), byte(packed), byte(packed >> 8), byte(packed >> 16)}
}

func encodeFull(g guid.GUID, value uint32) []byte {
	out := []byte{byte(formFull)}
	out = append(out, g.Bytes()...)
	out = append(out, byte(value), byte(value>>8), byte(value>>16), byte(value>>24))
	return out
}

func TestParseExGUIDNull(t *testing.T) {
	r := reader.New(encodeNull())
	e, err := ParseExGUID(r, nil)
	if err != nil {
		t.Fatalf("ParseExGUID() failed: %v", err)
	}
	if !e.IsNull() {
		t.Fatalf("expected null ExGUID, got %+v", e)
	}
}

func TestParseExGUIDCompactForms(t *testing.T) {
	table := []guid.GUID{
		guid.MustParseString("7B5C52E4-D88C-4DA7-AEB1-5378D02996D3"),
		guid.MustParseString("43FF2FA1-EFD9-4C76-9EE2-10EA5722765F"),
	}

	tests := []struct {
		name  string
		wire  []byte
		value uint32
		idx   uint32
	}{
		{"compact5", encodeCompact5(17, 1), 17, 1},
		{"compact10", encodeCompact10(900, 0), 900, 0},
		{"compact17", encodeCompact17(100000, 1), 100000, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := reader.New(tt.wire)
			e, err := ParseExGUID(r, table)
			if err != nil {
				t.Fatalf("ParseExGUID() failed: %v", err)
			}
			if e.Value != tt.value {
				t.Fatalf("Value = %d, want %d", e.Value, tt.value)
			}
			if !e.GUID.Equal(table[tt.idx]) {
				t.Fatalf("GUID = %v, want %v", e.GUID, table[tt.idx])
			}
		})
	}
}

func TestParseExGUIDFullForm(t *testing.T) {
	g := guid.MustParseString("7B5C52E4-D88C-4DA7-AEB1-5378D02996D3")
	r := reader.New(encodeFull(g, 0xDEADBEEF))
	e, err := ParseExGUID(r, nil)
	if err != nil {
		t.Fatalf("ParseExGUID() failed: %v", err)
	}
	if e.Value != 0xDEADBEEF || !e.GUID.Equal(g) {
		t.Fatalf("got %+v", e)
	}
}

func TestParseExGUIDUnknownGUIDIndexFails(t *testing.T) {
	r := reader.New(encodeCompact5(1, 5))
	if _, err := ParseExGUID(r, nil); err == nil {
		t.Fatal("expected error for out-of-range GUID index")
	}
}
