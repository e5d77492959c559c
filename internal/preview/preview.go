// Package preview draws images in the terminal.
//
// Graphics-capable terminals (kitty, iTerm2/WezTerm, sixel) get the real
// image through rasterm. Everything else gets two characters per pixel,
// either coloured blocks or plain ASCII shades. Fully transparent pixels are
// always drawn as blanks so stripped backgrounds are easy to spot.
package preview

import (
	"fmt"
	"image"
	"io"
	"strings"

	"github.com/BourgeoisBear/rasterm"
	"github.com/JPM1118/sheetcut/internal/sprites"
	"github.com/andybons/gogif"
	"github.com/gookit/color"
)

// Mode selects how an image is drawn.
type Mode string

const (
	// ModeAuto uses terminal graphics when available and blocks otherwise.
	ModeAuto Mode = "auto"
	// ModeBlocks draws 24-bit coloured blocks.
	ModeBlocks Mode = "blocks"
	// ModeASCII draws shade characters without colour.
	ModeASCII Mode = "ascii"
)

// ParseMode validates a mode name.
func ParseMode(s string) (Mode, error) {
	switch m := Mode(strings.ToLower(s)); m {
	case ModeAuto, ModeBlocks, ModeASCII:
		return m, nil
	case "":
		return ModeAuto, nil
	default:
		return "", fmt.Errorf("unknown preview mode %q (want auto, blocks or ascii)", s)
	}
}

// Render writes img to w using mode.
func Render(w io.Writer, img image.Image, mode Mode) error {
	switch mode {
	case ModeASCII:
		return renderCells(w, img, asciiCell)
	case ModeBlocks:
		return renderCells(w, img, blockCell)
	default:
		if ok, err := renderGraphics(w, img); ok || err != nil {
			return err
		}
		return renderCells(w, img, blockCell)
	}
}

// renderGraphics uses a terminal graphics protocol if one is available. It
// returns false when the terminal supports none of them.
func renderGraphics(w io.Writer, img image.Image) (bool, error) {
	if rasterm.IsTermKitty() {
		if err := (rasterm.Settings{}).KittyWriteImage(w, img); err != nil {
			return true, fmt.Errorf("kitty preview: %w", err)
		}
		fmt.Fprintln(w)
		return true, nil
	}
	if rasterm.IsTermItermWez() {
		if err := (rasterm.Settings{}).ItermWriteImage(w, img); err != nil {
			return true, fmt.Errorf("iterm preview: %w", err)
		}
		fmt.Fprintln(w)
		return true, nil
	}
	if capable, err := rasterm.IsSixelCapable(); capable && err == nil {
		if err := (rasterm.Settings{}).SixelWriteImage(w, Quantize(img, 64)); err != nil {
			return true, fmt.Errorf("sixel preview: %w", err)
		}
		fmt.Fprintln(w)
		return true, nil
	}
	return false, nil
}

// Quantize reduces img to a palette of at most n colours for sixel output.
func Quantize(img image.Image, n int) *image.Paletted {
	p := image.NewPaletted(img.Bounds(), nil)
	q := gogif.MedianCutQuantizer{NumColor: n}
	q.Quantize(p, img.Bounds(), img, img.Bounds().Min)
	return p
}

type cellFunc func(r, g, b, a uint8) string

func renderCells(w io.Writer, img image.Image, cell cellFunc) error {
	m := sprites.ToNRGBA(img)
	var sb strings.Builder
	for y := 0; y < m.Rect.Dy(); y++ {
		for x := 0; x < m.Rect.Dx(); x++ {
			c := m.NRGBAAt(x, y)
			sb.WriteString(cell(c.R, c.G, c.B, c.A))
		}
		sb.WriteString("\n")
	}
	_, err := io.WriteString(w, sb.String())
	return err
}

func blockCell(r, g, b, a uint8) string {
	if a == 0 {
		return "  "
	}
	return color.RGB(r, g, b, true).Sprint("  ")
}

func asciiCell(r, g, b, a uint8) string {
	if a == 0 {
		return "  "
	}
	switch v := (int(r) + int(g) + int(b)) / 3; {
	case v < 32:
		return ".."
	case v < 64:
		return "--"
	case v < 128:
		return "=="
	default:
		return "##"
	}
}
