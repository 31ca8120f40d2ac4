package cli

import (
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/jmylchreest/huegen/internal/render"
)

// previewCmd represents the preview command
var previewCmd = &cobra.Command{
	Use:   "preview",
	Short: "Show generated coloursets in the terminal",
	Long: `Generate coloursets and render them as coloured swatches in the terminal,
one block per role, with hex and rgb:RR/GG/BB values alongside.

Accepts the same generation flags as "huegen generate".`,
	RunE: runPreview,
}

func init() {
	addGenerateFlags(previewCmd)
}

func runPreview(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	sets, err := makeSets(logger(), cfg)
	if err != nil {
		return err
	}

	cmd.Print(render.Preview(sets, terminalWidth()))
	return nil
}

// terminalWidth reports the width of stdout, or a generous default when
// stdout is not a terminal (pipes, CI).
func terminalWidth() int {
	if !term.IsTerminal(int(os.Stdout.Fd())) {
		return 100
	}
	width, _, err := term.GetSize(int(os.Stdout.Fd()))
	if err != nil {
		return 100
	}
	return width
}
