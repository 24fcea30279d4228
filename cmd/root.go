package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	cfgpkg "github.com/winestat/winestat/internal/config"
)

var (
	// Global flags
	cfgFile string
	debug   bool

	// Loaded configuration
	cfg *cfgpkg.Global
)

var rootCmd = &cobra.Command{
	Use:   "winestat",
	Short: "Exploratory analysis of the red-wine quality dataset",
	Long: `winestat loads the UCI red-wine quality file (semicolon-separated),
prints summary statistics, Pearson correlations and quality-class
aggregates with short interpretations, and can export the charts
(heatmap, scatters, histogram, boxplots) as PNG files.`,
}

// Execute is the entry point called by main.main()
func Execute() {
	cobra.OnInitialize(loadConfig)
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "✗ Error:", err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is ~/.winestat/config.yaml)")
	rootCmd.PersistentFlags().BoolVar(&debug, "debug", false, "enable debug output")
}

func loadConfig() {
	c, err := cfgpkg.Load(cfgFile)
	if err != nil {
		// Non-fatal: flags and defaults still allow most commands to run
		fmt.Fprintf(os.Stderr, "⚠ Warning: failed to load config: %v\n", err)
		return
	}
	cfg = c
}

// parseDelimiter maps a flag/config value to a field separator rune.
func parseDelimiter(s string) (rune, error) {
	switch s {
	case "", ";":
		return ';', nil
	case ",":
		return ',', nil
	case "\t", "tab":
		return '\t', nil
	default:
		return 0, fmt.Errorf("unsupported delimiter: %q", s)
	}
}
