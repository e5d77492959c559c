package sprites

import (
	"image"
	"image/color"
	"testing"
)

func TestDistance(t *testing.T) {
	tests := []struct {
		name string
		a, b RGB
		want int
	}{
		{"grey to black", RGB{10, 10, 10}, Black, 30},
		{"same colour", RGB{1, 2, 3}, RGB{1, 2, 3}, 0},
		{"symmetric", Black, RGB{10, 10, 10}, 30},
		{"mixed signs", RGB{200, 10, 50}, RGB{100, 20, 50}, 110},
		{"extremes", RGB{255, 255, 255}, Black, MaxTolerance},
		// Euclidean would give 17 here.
		{"not euclidean", RGB{10, 10, 10}, RGB{0, 0, 0}, 30},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Distance(tt.a, tt.b); got != tt.want {
				t.Errorf("Distance(%v, %v) = %d, want %d", tt.a, tt.b, got, tt.want)
			}
		})
	}
}

func TestParseReference(t *testing.T) {
	tests := []struct {
		input string
		want  Reference
	}{
		{"", Fixed(Black)},
		{"black", Fixed(Black)},
		{"BLACK", Fixed(Black)},
		{"white", Fixed(RGB{255, 255, 255})},
		{"sample-top-left", Sampled()},
		{"  Sample-Top-Left ", Sampled()},
		{"#ff8000", Fixed(RGB{255, 128, 0})},
		{"00ff00", Fixed(RGB{0, 255, 0})},
		{"#0f0", Fixed(RGB{0, 255, 0})},
	}

	for _, tt := range tests {
		got, err := ParseReference(tt.input)
		if err != nil {
			t.Errorf("ParseReference(%q) unexpected error: %v", tt.input, err)
			continue
		}
		if got != tt.want {
			t.Errorf("ParseReference(%q) = %+v, want %+v", tt.input, got, tt.want)
		}
	}
}

func TestParseReference_Invalid(t *testing.T) {
	for _, s := range []string{"purple-ish", "#12345", "#gggggg", "#1234567", "#00000zz", "##000000", "#"} {
		if _, err := ParseReference(s); err == nil {
			t.Errorf("ParseReference(%q) should fail", s)
		}
	}
}

func TestReference_String(t *testing.T) {
	if got := Sampled().String(); got != SampleTopLeft {
		t.Errorf("Sampled().String() = %q, want %q", got, SampleTopLeft)
	}
	if got := Fixed(RGB{0xab, 0x01, 0xff}).String(); got != "#ab01ff" {
		t.Errorf("Fixed().String() = %q, want #ab01ff", got)
	}
}

func TestReference_Resolve(t *testing.T) {
	img := image.NewNRGBA(image.Rect(0, 0, 2, 2))
	img.SetNRGBA(0, 0, color.NRGBA{R: 12, G: 34, B: 56, A: 255})
	img.SetNRGBA(1, 1, color.NRGBA{R: 200, A: 255})

	if got := Sampled().Resolve(img); got != (RGB{12, 34, 56}) {
		t.Errorf("sampled Resolve = %v, want #0c2238", got)
	}
	if got := Fixed(Black).Resolve(img); got != Black {
		t.Errorf("fixed Resolve = %v, want black", got)
	}
}

func TestReference_ResolveOffsetBounds(t *testing.T) {
	img := image.NewRGBA(image.Rect(5, 7, 8, 9))
	img.Set(5, 7, color.RGBA{R: 9, G: 8, B: 7, A: 255})

	if got := Sampled().Resolve(img); got != (RGB{9, 8, 7}) {
		t.Errorf("Resolve = %v, want top-left of bounds", got)
	}
}

func TestReference_ResolveEmpty(t *testing.T) {
	img := image.NewNRGBA(image.Rect(0, 0, 0, 0))
	if got := Sampled().Resolve(img); got != Black {
		t.Errorf("Resolve on empty image = %v, want black", got)
	}
}
