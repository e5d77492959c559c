package sprites

import (
	"image"

	"github.com/nfnt/resize"
)

// Resize scales img with nearest-neighbour sampling so no new colours are
// introduced. A zero dimension keeps the aspect ratio; both zero returns img
// unchanged.
func Resize(img *image.NRGBA, width, height int) *image.NRGBA {
	if width < 0 {
		width = 0
	}
	if height < 0 {
		height = 0
	}
	if width == 0 && height == 0 {
		return img
	}
	if img.Bounds().Empty() {
		return img
	}
	return ToNRGBA(resize.Resize(uint(width), uint(height), img, resize.NearestNeighbor))
}
