package cli

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"

	"github.com/hashicorp/go-hclog"
	"github.com/spf13/cobra"

	"github.com/jmylchreest/huegen/internal/colourset"
	"github.com/jmylchreest/huegen/internal/config"
)

var (
	// Generate command flags, shared by preview and swatch.
	genHue         int
	genShade       int
	genCount       int
	genGrey        bool
	genPins        []string
	genMaxAttempts int
	generateJSON   bool
)

// generateCmd represents the generate command
var generateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Generate a set of mutually compatible coloursets",
	Long: `Generate a base colourset from a hue and a lightness class (shade), plus
alternatives that neither duplicate nor clash with it or each other.

Hue is a position on a 360 degree colour wheel; 360 means grey. Shade runs
from 1 (darkest) to 4 (lightest); 0 picks one at random.

Examples:
  # Four coloursets around blue
  huegen generate --hue 240 --count 4

  # Reproducible output
  huegen generate --hue 120 --shade 2 --seed 7

  # Pin the second alternative to pale rose
  huegen generate --hue 240 --count 3 --pin 2=350/4

  # Machine-readable output
  huegen generate --hue 60 --json`,
	RunE: runGenerate,
}

func init() {
	addGenerateFlags(generateCmd)
	generateCmd.Flags().BoolVar(&generateJSON, "json", false, "emit JSON instead of a table")
}

// addGenerateFlags registers the flags shared by every command that
// generates coloursets.
func addGenerateFlags(cmd *cobra.Command) {
	cmd.Flags().IntVar(&genHue, "hue", -1, "base hue in degrees 0-360 (360 = grey, -1 = from config)")
	cmd.Flags().IntVar(&genShade, "shade", -1, "base shade 1-4 (0 = random, -1 = from config)")
	cmd.Flags().IntVar(&genCount, "count", 0, "number of coloursets including the base (0 = from config)")
	cmd.Flags().BoolVar(&genGrey, "grey", false, "shorthand for --hue 360")
	cmd.Flags().StringSliceVar(&genPins, "pin", nil, "pin slot i to a hue and optional shade, as i=hue[/shade]")
	cmd.Flags().IntVar(&genMaxAttempts, "max-attempts", 0, "abort a slot after this many rejected candidates (0 = search forever)")
}

func runGenerate(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	sets, err := makeSets(logger(), cfg)
	if err != nil {
		return err
	}

	if generateJSON {
		data, err := json.MarshalIndent(sets, "", "  ")
		if err != nil {
			return fmt.Errorf("failed to encode coloursets: %w", err)
		}
		cmd.Println(string(data))
		return nil
	}

	table := NewTable([]string{"SET", "IDENTITY", "ROLE", "HEX", "RGB"})
	for i, cs := range sets {
		for _, role := range colourset.Roles {
			hex, err := cs.Hex(role)
			if err != nil {
				return err
			}
			slash, err := cs.RGBSlash(role)
			if err != nil {
				return err
			}
			table.AddRow([]string{strconv.Itoa(i), cs.String(), string(role), hex, slash})
		}
	}
	cmd.Print(table.Render())
	return nil
}

// makeSets resolves flags against the config and generates the base
// colourset plus its alternatives. Slot 0 is the base; pins address slots
// 1..count-1.
func makeSets(log hclog.Logger, cfg *config.Config) ([]*colourset.Colourset, error) {
	hue := genHue
	if genGrey {
		hue = colourset.HueGrey
	}
	if hue < 0 {
		hue = cfg.Generate.Hue
	}
	if hue > 360 {
		return nil, fmt.Errorf("hue %d outside [0, 360]", hue)
	}

	shade := genShade
	if shade < 0 {
		shade = cfg.Generate.Shade
	}

	count := genCount
	if count < 1 {
		count = cfg.Generate.Count
	}

	pinnedHues, pinnedShades, err := parsePins(genPins, count)
	if err != nil {
		return nil, err
	}

	factory := colourset.NewFactory(newRNG(cfg))
	base := factory.New(hue, shade)
	log.Debug("generated base colourset", "base", base.String())

	gen := colourset.NewGenerator(factory, log)
	gen.MaxAttempts = genMaxAttempts

	alts, err := gen.Set(base, count-1, pinnedHues, pinnedShades)
	if err != nil {
		return nil, err
	}
	return append([]*colourset.Colourset{base}, alts...), nil
}

// parsePins parses --pin specs of the form "i=hue" or "i=hue/shade" into
// the per-slot pin slices the set generator takes. Slot numbering matches
// the output: 1 is the first alternative.
func parsePins(pins []string, count int) (hues, shades []int, err error) {
	if len(pins) == 0 {
		return nil, nil, nil
	}

	hues = make([]int, count-1)
	shades = make([]int, count-1)
	for i := range hues {
		hues[i] = colourset.HueUnset
		shades[i] = colourset.ShadeRandom
	}

	for _, pin := range pins {
		slotStr, spec, ok := strings.Cut(pin, "=")
		if !ok {
			return nil, nil, fmt.Errorf("invalid pin %q: want i=hue[/shade]", pin)
		}
		slot, err := strconv.Atoi(slotStr)
		if err != nil || slot < 1 || slot >= count {
			return nil, nil, fmt.Errorf("invalid pin slot %q: want 1..%d", slotStr, count-1)
		}

		hueStr, shadeStr, hasShade := strings.Cut(spec, "/")
		hue, err := strconv.Atoi(hueStr)
		if err != nil || hue < 0 || hue > 360 {
			return nil, nil, fmt.Errorf("invalid pin hue %q: want 0..360", hueStr)
		}
		hues[slot-1] = hue

		if hasShade {
			shade, err := strconv.Atoi(shadeStr)
			if err != nil || shade < 1 || shade > 4 {
				return nil, nil, fmt.Errorf("invalid pin shade %q: want 1..4", shadeStr)
			}
			shades[slot-1] = shade
		}
	}
	return hues, shades, nil
}
