package preview

import (
	"bytes"
	"image"
	"image/color"
	"testing"
)

func TestRender_ASCII(t *testing.T) {
	img := image.NewNRGBA(image.Rect(0, 0, 4, 2))
	img.SetNRGBA(1, 0, color.NRGBA{R: 255, G: 255, B: 255, A: 255})
	img.SetNRGBA(2, 0, color.NRGBA{R: 10, G: 10, B: 10, A: 255})
	img.SetNRGBA(0, 1, color.NRGBA{R: 100, G: 100, B: 100, A: 255})
	img.SetNRGBA(3, 1, color.NRGBA{R: 50, G: 50, B: 50, A: 1})

	var buf bytes.Buffer
	if err := Render(&buf, img, ModeASCII); err != nil {
		t.Fatalf("Render: %v", err)
	}

	want := "  ##..  \n==    --\n"
	if buf.String() != want {
		t.Errorf("Render() =\n%q\nwant\n%q", buf.String(), want)
	}
}

func TestRender_BlocksKeepsTransparentBlank(t *testing.T) {
	img := image.NewNRGBA(image.Rect(0, 0, 2, 1))
	img.SetNRGBA(1, 0, color.NRGBA{R: 255, A: 255})

	var buf bytes.Buffer
	if err := Render(&buf, img, ModeBlocks); err != nil {
		t.Fatalf("Render: %v", err)
	}
	out := buf.String()
	if len(out) < 3 || out[:2] != "  " {
		t.Errorf("transparent pixel should render as blanks, got %q", out)
	}
	if out[len(out)-1] != '\n' {
		t.Errorf("row should end with newline, got %q", out)
	}
}

func TestParseMode(t *testing.T) {
	tests := []struct {
		in      string
		want    Mode
		wantErr bool
	}{
		{"", ModeAuto, false},
		{"auto", ModeAuto, false},
		{"BLOCKS", ModeBlocks, false},
		{"ascii", ModeASCII, false},
		{"sixel", "", true},
	}
	for _, tt := range tests {
		got, err := ParseMode(tt.in)
		if (err != nil) != tt.wantErr {
			t.Errorf("ParseMode(%q) error = %v, wantErr %v", tt.in, err, tt.wantErr)
			continue
		}
		if got != tt.want {
			t.Errorf("ParseMode(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestQuantize_LimitsPalette(t *testing.T) {
	img := image.NewNRGBA(image.Rect(0, 0, 16, 16))
	for y := 0; y < 16; y++ {
		for x := 0; x < 16; x++ {
			img.SetNRGBA(x, y, color.NRGBA{R: uint8(x * 16), G: uint8(y * 16), B: 128, A: 255})
		}
	}

	p := Quantize(img, 8)

	if p.Bounds() != img.Bounds() {
		t.Errorf("bounds = %v, want %v", p.Bounds(), img.Bounds())
	}
	if len(p.Palette) == 0 || len(p.Palette) > 8 {
		t.Errorf("palette has %d colours, want 1..8", len(p.Palette))
	}
}
