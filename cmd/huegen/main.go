// Huegen - a harmonious colourset generator
//
// Huegen turns one hue number into a set of five-colour palettes that are
// guaranteed not to clash with each other, and substitutes them into theme
// templates.
package main

import (
	"github.com/jmylchreest/huegen/internal/cli"
)

func main() {
	cli.Execute()
}
