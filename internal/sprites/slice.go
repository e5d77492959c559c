package sprites

import (
	"image"

	"github.com/disintegration/imaging"
)

// Band is a half-open run [Start, End) of rows or columns that contain
// visible pixels.
type Band struct {
	Start, End int
}

// Len returns the number of rows or columns in the band.
func (b Band) Len() int {
	return b.End - b.Start
}

// Sprite is one region cut out of a sheet.
type Sprite struct {
	Index  int
	Bounds image.Rectangle
	Image  *image.NRGBA
}

// HasContent reports whether the pixel at (x, y) is not fully transparent.
func HasContent(img *image.NRGBA, x, y int) bool {
	return img.Pix[img.PixOffset(x, y)+3] != 0
}

// scanBands runs the open/close state machine over [from, to). A band opens
// on the first active index and closes on the first inactive one after it.
func scanBands(from, to int, active func(i int) bool) []Band {
	var bands []Band
	in := false
	start := from
	for i := from; i < to; i++ {
		a := active(i)
		switch {
		case a && !in:
			in = true
			start = i
		case !a && in:
			in = false
			bands = append(bands, Band{Start: start, End: i})
		}
	}
	if in {
		bands = append(bands, Band{Start: start, End: to})
	}
	return bands
}

// RowBands returns the maximal runs of rows holding any visible pixel, top
// to bottom.
func RowBands(img *image.NRGBA) []Band {
	b := img.Bounds()
	return scanBands(b.Min.Y, b.Max.Y, func(y int) bool {
		for x := b.Min.X; x < b.Max.X; x++ {
			if HasContent(img, x, y) {
				return true
			}
		}
		return false
	})
}

// ColumnBands returns the maximal runs of columns that hold a visible pixel
// somewhere inside the given row band, left to right.
func ColumnBands(img *image.NRGBA, rows Band) []Band {
	b := img.Bounds()
	return scanBands(b.Min.X, b.Max.X, func(x int) bool {
		for y := rows.Start; y < rows.End; y++ {
			if HasContent(img, x, y) {
				return true
			}
		}
		return false
	})
}

// Boxes returns one rectangle per (row band, column band) pair, ordered top
// to bottom and then left to right.
func Boxes(img *image.NRGBA) []image.Rectangle {
	var boxes []image.Rectangle
	for _, rows := range RowBands(img) {
		for _, cols := range ColumnBands(img, rows) {
			boxes = append(boxes, image.Rect(cols.Start, rows.Start, cols.End, rows.End))
		}
	}
	return boxes
}

// Slice crops every box found by Boxes out of img. A fully transparent
// image yields no sprites.
func Slice(img *image.NRGBA) []Sprite {
	boxes := Boxes(img)
	out := make([]Sprite, 0, len(boxes))
	for i, r := range boxes {
		out = append(out, Sprite{
			Index:  i,
			Bounds: r,
			Image:  imaging.Crop(img, r),
		})
	}
	return out
}
