package sprites

import (
	"image"
	"testing"
)

func TestResize_ZeroIsNoop(t *testing.T) {
	img := filled(3, 3, red)
	if got := Resize(img, 0, 0); got != img {
		t.Error("Resize(0, 0) should return the input unchanged")
	}
}

func TestResize_NearestNeighbourKeepsColours(t *testing.T) {
	img := filled(2, 2, transparent)
	img.SetNRGBA(0, 0, red)
	img.SetNRGBA(1, 1, green)

	out := Resize(img, 8, 8)

	if out.Bounds() != image.Rect(0, 0, 8, 8) {
		t.Fatalf("bounds = %v, want 8x8", out.Bounds())
	}
	for y := 0; y < 8; y++ {
		for x := 0; x < 8; x++ {
			c := out.NRGBAAt(x, y)
			if c != red && c != green && c != transparent {
				t.Fatalf("pixel (%d,%d) = %v is a blended colour", x, y, c)
			}
		}
	}
}

func TestResize_KeepsAspectRatio(t *testing.T) {
	img := filled(4, 2, red)

	out := Resize(img, 8, 0)

	if out.Bounds().Dx() != 8 || out.Bounds().Dy() != 4 {
		t.Errorf("size = %dx%d, want 8x4", out.Bounds().Dx(), out.Bounds().Dy())
	}
}
