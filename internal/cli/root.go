// Package cli provides the command-line interface for huegen.
package cli

import (
	"math/rand"
	"os"
	"time"

	"github.com/hashicorp/go-hclog"
	"github.com/spf13/cobra"

	"github.com/jmylchreest/huegen/internal/config"
	"github.com/jmylchreest/huegen/internal/version"
)

var (
	// Global flags
	flagVerbose bool
	flagConfig  string
	flagSeed    int64

	// rootCmd represents the base command when called without any subcommands
	rootCmd = &cobra.Command{
		Use:   "huegen",
		Short: "A harmonious colourset generator",
		Long: `Huegen generates small, internally-harmonious palettes ("coloursets") of
five related colours from a single hue and a lightness class, and builds
sets of coloursets that are guaranteed not to clash with each other.

Feed it one hue number and it produces theme colours for window
decorations, CSS, or anything else a template can express.`,
		Version:      version.Short(),
		SilenceUsage: true,
	}
)

// Execute adds all child commands to the root command and sets flags
// appropriately. This is called by main.main().
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&flagVerbose, "verbose", "v", false, "enable verbose output")
	rootCmd.PersistentFlags().StringVarP(&flagConfig, "config", "c", config.DefaultFilename, "config file")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "random seed (0 = seed from the clock)")

	rootCmd.SetVersionTemplate(version.String() + "\n")

	rootCmd.AddCommand(versionCmd)
	rootCmd.AddCommand(generateCmd)
	rootCmd.AddCommand(previewCmd)
	rootCmd.AddCommand(swatchCmd)
	rootCmd.AddCommand(applyCmd)
}

// logger builds the process logger. Debug level under --verbose, warnings
// and errors otherwise.
func logger() hclog.Logger {
	level := hclog.Warn
	if flagVerbose {
		level = hclog.Debug
	}
	return hclog.New(&hclog.LoggerOptions{
		Name:   "huegen",
		Output: os.Stderr,
		Level:  level,
	})
}

// newRNG builds the shared random source. Seed precedence: --seed flag,
// then the config file, then the clock.
func newRNG(cfg *config.Config) *rand.Rand {
	seed := flagSeed
	if seed == 0 {
		seed = cfg.Generate.Seed
	}
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return rand.New(rand.NewSource(seed)) // #nosec G404 - colour picking, not cryptography
}

// loadConfig reads the config file named by --config.
func loadConfig() (*config.Config, error) {
	return config.Load(flagConfig)
}

// versionCmd represents the version command
var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Long:  `Print detailed version information including build date, commit hash, and Go version.`,
	Run: func(cmd *cobra.Command, args []string) {
		cmd.Println(version.String())
	},
}
