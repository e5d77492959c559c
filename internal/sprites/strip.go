package sprites

import (
	"image"
	"image/draw"
)

// ToNRGBA copies img into a fresh NRGBA buffer whose bounds start at (0,0).
// The source is never modified.
func ToNRGBA(img image.Image) *image.NRGBA {
	b := img.Bounds()
	out := image.NewNRGBA(image.Rect(0, 0, b.Dx(), b.Dy()))
	if src, ok := img.(*image.NRGBA); ok {
		for y := 0; y < b.Dy(); y++ {
			si := src.PixOffset(b.Min.X, b.Min.Y+y)
			copy(out.Pix[y*out.Stride:y*out.Stride+b.Dx()*4], src.Pix[si:si+b.Dx()*4])
		}
		return out
	}
	draw.Draw(out, out.Bounds(), img, b.Min, draw.Src)
	return out
}

// Strip returns a copy of img in which every pixel within tolerance of ref
// is replaced by fully transparent black. Every other pixel is copied as is;
// nothing is blended. Alpha does not take part in the distance.
func Strip(img image.Image, ref RGB, tolerance int) *image.NRGBA {
	out := ToNRGBA(img)
	w, h := out.Rect.Dx(), out.Rect.Dy()
	for y := 0; y < h; y++ {
		row := out.Pix[y*out.Stride : y*out.Stride+w*4]
		for i := 0; i < len(row); i += 4 {
			if Distance(RGB{row[i], row[i+1], row[i+2]}, ref) <= tolerance {
				row[i], row[i+1], row[i+2], row[i+3] = 0, 0, 0, 0
			}
		}
	}
	return out
}

// StripWith resolves ref against img, strips, and reports the colour that was
// actually removed.
func StripWith(img image.Image, ref Reference, tolerance int) (*image.NRGBA, RGB) {
	c := ref.Resolve(img)
	return Strip(img, c, tolerance), c
}
