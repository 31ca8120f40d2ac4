// Package colourset generates small, internally-harmonious palettes of five
// related colours from a hue and a lightness class, and provides a heuristic
// to decide whether two such palettes look bad together.
package colourset

import (
	"fmt"
	"strings"

	"github.com/lucasb-eyer/go-colorful"
)

// HSV is a colour in HSV space. H is in degrees [0, 360], S and V in [0, 1].
type HSV struct {
	H float64 `json:"h"`
	S float64 `json:"s"`
	V float64 `json:"v"`
}

// RGB255 converts the colour to 8-bit RGB components.
func (c HSV) RGB255() (r, g, b uint8) {
	return colorful.Hsv(c.H, c.S, c.V).RGB255()
}

// Hex returns the colour as a lowercase hex string (e.g. "#99990f").
func (c HSV) Hex() string {
	return colorful.Hsv(c.H, c.S, c.V).Hex()
}

// HexUpper returns the colour as an uppercase hex string (e.g. "#99990F").
func (c HSV) HexUpper() string {
	return strings.ToUpper(c.Hex())
}

// RGBSlash returns the colour in X-style slash notation ("rgb:RR/GG/BB").
func (c HSV) RGBSlash() string {
	r, g, b := c.RGB255()
	return fmt.Sprintf("rgb:%02X/%02X/%02X", r, g, b)
}
