package cmd

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	cfgpkg "github.com/winestat/winestat/internal/config"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "View or set winestat configuration",
}

var configShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show effective configuration",
	RunE: func(cmd *cobra.Command, args []string) error {
		if cfg == nil {
			fmt.Println("No config loaded")
			return nil
		}
		fmt.Printf("csv_path: %s\n", cfg.CSVPath)
		fmt.Printf("delimiter: %s\n", cfg.Delimiter)
		fmt.Printf("save_figs: %v\n", cfg.SaveFigs)
		fmt.Printf("fig_dir: %s\n", cfg.FigDir)
		fmt.Printf("top_correlations: %d\n", cfg.TopCorrelations)
		return nil
	},
}

var configSetCmd = &cobra.Command{
	Use:   "set <key> <value>",
	Short: "Set a configuration value and save it",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		if cfg == nil {
			cfg = &cfgpkg.Global{}
		}
		key, val := args[0], args[1]
		switch key {
		case "csv_path":
			cfg.CSVPath = val
		case "delimiter":
			if _, err := parseDelimiter(val); err != nil {
				return err
			}
			cfg.Delimiter = val
		case "save_figs":
			b, err := strconv.ParseBool(val)
			if err != nil {
				return fmt.Errorf("save_figs: %w", err)
			}
			cfg.SaveFigs = b
		case "fig_dir":
			cfg.FigDir = val
		case "top_correlations":
			n, err := strconv.Atoi(val)
			if err != nil {
				return fmt.Errorf("top_correlations: %w", err)
			}
			cfg.TopCorrelations = n
		default:
			return fmt.Errorf("unknown config key: %s", key)
		}
		if err := cfgpkg.Save(cfg, cfgFile); err != nil {
			return err
		}
		fmt.Printf("✓ Set %s = %s\n", key, val)
		return nil
	},
}

func init() {
	configCmd.AddCommand(configShowCmd)
	configCmd.AddCommand(configSetCmd)
	rootCmd.AddCommand(configCmd)
}
