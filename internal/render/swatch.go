package render

import (
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"image/png"
	"os"
	"path/filepath"

	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"

	"github.com/jmylchreest/huegen/internal/colourset"
)

const (
	cellWidth  = 120
	cellHeight = 72
	labelInset = 6
)

// SwatchSheet renders the coloursets as a PNG grid, one row per colourset
// and one column per role, each cell labelled with its hex value.
func SwatchSheet(sets []*colourset.Colourset) (image.Image, error) {
	if len(sets) == 0 {
		return nil, fmt.Errorf("no coloursets to render")
	}

	img := image.NewRGBA(image.Rect(0, 0, cellWidth*len(colourset.Roles), cellHeight*len(sets)))

	for row, cs := range sets {
		for col, role := range colourset.Roles {
			c, err := cs.Colour(role)
			if err != nil {
				return nil, err
			}
			r, g, b := c.RGB255()
			cell := image.Rect(col*cellWidth, row*cellHeight, (col+1)*cellWidth, (row+1)*cellHeight)
			draw.Draw(img, cell, image.NewUniform(color.RGBA{R: r, G: g, B: b, A: 255}), image.Point{}, draw.Src)
			drawLabel(img, cell, c.Hex(), labelColour(c))
		}
	}

	return img, nil
}

// WriteSwatchSheet renders the grid and writes it as a PNG file.
func WriteSwatchSheet(sets []*colourset.Colourset, path string) error {
	img, err := SwatchSheet(sets)
	if err != nil {
		return err
	}

	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("failed to create output dir: %w", err)
		}
	}
	out, err := os.Create(path) // #nosec G304 - output path supplied by the user
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", path, err)
	}
	defer out.Close()

	if err := png.Encode(out, img); err != nil {
		return fmt.Errorf("failed to encode PNG: %w", err)
	}
	return out.Close()
}

// drawLabel writes text into the bottom-left corner of cell.
func drawLabel(img draw.Image, cell image.Rectangle, text string, col color.Color) {
	d := font.Drawer{
		Dst:  img,
		Src:  image.NewUniform(col),
		Face: basicfont.Face7x13,
		Dot: fixed.Point26_6{
			X: fixed.I(cell.Min.X + labelInset),
			Y: fixed.I(cell.Max.Y - labelInset),
		},
	}
	d.DrawString(text)
}

// labelColour picks black or white text for legibility on the swatch.
func labelColour(c colourset.HSV) color.Color {
	if c.V > 0.6 && c.S < 0.7 {
		return color.Black
	}
	return color.White
}
