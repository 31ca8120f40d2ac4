// Package render draws generated coloursets, either as styled terminal
// output or as a PNG swatch sheet.
package render

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/jmylchreest/huegen/internal/colourset"
)

const (
	// swatchWidth is the width of one terminal swatch block in cells.
	swatchWidth = 8

	// minWidth is the narrowest terminal the preview bothers adapting to.
	minWidth = 40
)

var (
	styleHeader = lipgloss.NewStyle().Bold(true)
	styleMuted  = lipgloss.NewStyle().Faint(true)
)

// Preview renders the coloursets as rows of coloured swatches with their
// hex and rgb:RR/GG/BB forms. width is the terminal width in cells; values
// below minWidth drop the slash form to keep rows narrow.
func Preview(sets []*colourset.Colourset, width int) string {
	var b strings.Builder

	wide := width >= minWidth
	for i, cs := range sets {
		label := fmt.Sprintf("%d: %s", i, cs)
		if i == 0 {
			label += " (base)"
		}
		b.WriteString(styleHeader.Render(label))
		b.WriteString("\n")

		for _, role := range colourset.Roles {
			c, err := cs.Colour(role)
			if err != nil {
				// Roles is the closed role set; an error here is a bug.
				panic(err)
			}
			block := lipgloss.NewStyle().
				Background(lipgloss.Color(c.Hex())).
				Render(strings.Repeat(" ", swatchWidth))
			b.WriteString("  ")
			b.WriteString(block)
			b.WriteString(" ")
			b.WriteString(c.Hex())
			if wide {
				b.WriteString(" ")
				b.WriteString(c.RGBSlash())
			}
			b.WriteString(" ")
			b.WriteString(styleMuted.Render(string(role)))
			b.WriteString("\n")
		}
		if i < len(sets)-1 {
			b.WriteString("\n")
		}
	}

	return b.String()
}
