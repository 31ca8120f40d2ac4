package cli

import (
	"github.com/spf13/cobra"

	"github.com/jmylchreest/huegen/internal/render"
)

var swatchOutput string

// swatchCmd represents the swatch command
var swatchCmd = &cobra.Command{
	Use:   "swatch",
	Short: "Render generated coloursets as a PNG swatch sheet",
	Long: `Generate coloursets and render them as a PNG grid, one row per colourset
and one column per role, each cell labelled with its hex value.

Accepts the same generation flags as "huegen generate".`,
	RunE: runSwatch,
}

func init() {
	addGenerateFlags(swatchCmd)
	swatchCmd.Flags().StringVarP(&swatchOutput, "output", "o", "coloursets.png", "output PNG file")
}

func runSwatch(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	log := logger()
	sets, err := makeSets(log, cfg)
	if err != nil {
		return err
	}

	if err := render.WriteSwatchSheet(sets, swatchOutput); err != nil {
		return err
	}
	log.Debug("wrote swatch sheet", "path", swatchOutput, "coloursets", len(sets))
	cmd.Printf("Wrote %s (%d coloursets)\n", swatchOutput, len(sets))
	return nil
}
