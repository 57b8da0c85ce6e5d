package deck

import (
	"errors"
	"image/color"
	"strings"
	"testing"
)

func TestDefault(t *testing.T) {
	d := Default()
	if len(d.Items) != 5 || d.Focus != 2 {
		t.Fatalf("default deck: %d items, focus %d", len(d.Items), d.Focus)
	}
	if got := d.Items[0].Accent; got != (color.RGBA{R: 0xff, G: 0x6b, B: 0x6b, A: 0xff}) {
		t.Errorf("first accent = %v", got)
	}
	if ids := d.IDs(); strings.Join(ids, ",") != "0,1,2,3,4" {
		t.Errorf("IDs = %v", ids)
	}
	if d.Items[4].Label != "5" {
		t.Errorf("last label = %q", d.Items[4].Label)
	}
}

func TestLoad(t *testing.T) {
	d, err := Load("testdata/planets.yaml")
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if d.Title != "Planets" || d.Focus != 0 || len(d.Items) != 4 {
		t.Fatalf("got %+v", d)
	}
	if d.Items[3].Label != "4" {
		t.Errorf("missing label not defaulted: %q", d.Items[3].Label)
	}
	if d.Items[2].Accent != (color.RGBA{R: 0x2e, G: 0x86, B: 0xde, A: 0xff}) {
		t.Errorf("earth accent = %v", d.Items[2].Accent)
	}
}

func TestLoadMissingFile(t *testing.T) {
	if _, err := Load("testdata/nope.yaml"); err == nil {
		t.Error("no error for missing file")
	}
}

func TestParseFocusDefaultsToMiddle(t *testing.T) {
	src := `
items:
  - {id: a, accent: "#fff"}
  - {id: b, accent: "#000"}
  - {id: c, accent: "#123456"}
`
	d, err := Parse(strings.NewReader(src))
	if err != nil {
		t.Fatal(err)
	}
	if d.Focus != 1 {
		t.Errorf("focus = %d, want 1", d.Focus)
	}
}

func TestParseInvalid(t *testing.T) {
	tests := []struct {
		name string
		src  string
	}{
		{"empty", ""},
		{"too few", "items:\n  - {id: a, accent: '#fff'}\n  - {id: b, accent: '#fff'}\n"},
		{"duplicate", "items:\n  - {id: a, accent: '#fff'}\n  - {id: a, accent: '#fff'}\n  - {id: b, accent: '#fff'}\n"},
		{"blank id", "items:\n  - {id: ' ', accent: '#fff'}\n  - {id: a, accent: '#fff'}\n  - {id: b, accent: '#fff'}\n"},
		{"bad colour", "items:\n  - {id: a, accent: 'red'}\n  - {id: b, accent: '#fff'}\n  - {id: c, accent: '#fff'}\n"},
		{"focus out of range", "focus: 3\nitems:\n  - {id: a, accent: '#fff'}\n  - {id: b, accent: '#fff'}\n  - {id: c, accent: '#fff'}\n"},
		{"unknown field", "colour: blue\nitems:\n  - {id: a, accent: '#fff'}\n  - {id: b, accent: '#fff'}\n  - {id: c, accent: '#fff'}\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := Parse(strings.NewReader(tt.src)); !errors.Is(err, ErrInvalidDeck) {
				t.Errorf("err = %v, want ErrInvalidDeck", err)
			}
		})
	}
}

func TestParseHex(t *testing.T) {
	c, err := ParseHex("#4ecdc4")
	if err != nil || c != (color.RGBA{R: 0x4e, G: 0xcd, B: 0xc4, A: 0xff}) {
		t.Errorf("ParseHex = %v, %v", c, err)
	}
	c, err = ParseHex("#abc")
	if err != nil || c != (color.RGBA{R: 0xaa, G: 0xbb, B: 0xcc, A: 0xff}) {
		t.Errorf("short ParseHex = %v, %v", c, err)
	}
	if _, err := ParseHex("#zzzzzz"); err == nil {
		t.Error("accepted non-hex")
	}
}
