package sprites

import (
	"fmt"
	"image"
	"image/color"
	"regexp"
	"strings"

	"github.com/lucasb-eyer/go-colorful"
)

// SampleTopLeft is the reference spelling that selects the source image's
// top-left pixel as the background colour.
const SampleTopLeft = "sample-top-left"

// MaxTolerance is the largest possible distance between two colours.
const MaxTolerance = 3 * 255

// colorful.Hex tolerates short and trailing fields, so the shape is checked
// first.
var hexColor = regexp.MustCompile(`^#([0-9a-f]{3}|[0-9a-f]{6})$`)

// RGB is an 8-bit colour with alpha left out.
type RGB struct {
	R, G, B uint8
}

// Black is the default background colour.
var Black = RGB{}

func (c RGB) String() string {
	return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
}

// Distance returns the sum of absolute per-channel differences.
func Distance(a, b RGB) int {
	return absDiff(a.R, b.R) + absDiff(a.G, b.G) + absDiff(a.B, b.B)
}

func absDiff(a, b uint8) int {
	if a > b {
		return int(a - b)
	}
	return int(b - a)
}

// Reference selects the background colour for stripping: either a fixed
// colour or whatever sits in the top-left corner of the image.
type Reference struct {
	Sample bool
	Color  RGB
}

// Fixed returns a Reference that always resolves to c.
func Fixed(c RGB) Reference {
	return Reference{Color: c}
}

// Sampled returns a Reference that resolves to the image's top-left pixel.
func Sampled() Reference {
	return Reference{Sample: true}
}

// ParseReference accepts "sample-top-left", "black", "white" or a hex colour
// with or without the leading '#'.
func ParseReference(s string) (Reference, error) {
	v := strings.ToLower(strings.TrimSpace(s))
	switch v {
	case "", "black":
		return Fixed(Black), nil
	case "white":
		return Fixed(RGB{255, 255, 255}), nil
	case SampleTopLeft:
		return Sampled(), nil
	}

	if !strings.HasPrefix(v, "#") {
		v = "#" + v
	}
	if !hexColor.MatchString(v) {
		return Reference{}, fmt.Errorf("invalid reference color %q: want #rgb or #rrggbb", s)
	}
	c, err := colorful.Hex(v)
	if err != nil {
		return Reference{}, fmt.Errorf("invalid reference color %q: %w", s, err)
	}
	r, g, b := c.RGB255()
	return Fixed(RGB{r, g, b}), nil
}

func (r Reference) String() string {
	if r.Sample {
		return SampleTopLeft
	}
	return r.Color.String()
}

// Resolve returns the colour this reference stands for in img. An empty
// image falls back to the fixed colour.
func (r Reference) Resolve(img image.Image) RGB {
	if !r.Sample {
		return r.Color
	}
	b := img.Bounds()
	if b.Empty() {
		return r.Color
	}
	return rgbAt(img, b.Min.X, b.Min.Y)
}

func rgbAt(img image.Image, x, y int) RGB {
	if m, ok := img.(*image.NRGBA); ok {
		i := m.PixOffset(x, y)
		return RGB{m.Pix[i], m.Pix[i+1], m.Pix[i+2]}
	}
	c := color.NRGBAModel.Convert(img.At(x, y)).(color.NRGBA)
	return RGB{c.R, c.G, c.B}
}
