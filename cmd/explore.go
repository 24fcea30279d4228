package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/winestat/winestat/internal/chart"
	"github.com/winestat/winestat/internal/eda"
)

var (
	expSaveFigs  bool
	expFigDir    string
	expDelimiter string
	expTopK      int
)

var exploreCmd = &cobra.Command{
	Use:   "explore [file]",
	Short: "Run the full analysis and print the report",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		opt := eda.Options{}
		if len(args) == 1 {
			opt.CSVPath = args[0]
		} else if cfg != nil {
			opt.CSVPath = cfg.CSVPath
		}
		if opt.CSVPath == "" {
			return fmt.Errorf("no input file: pass a path or set csv_path in config")
		}

		delim := expDelimiter
		if delim == "" && cfg != nil {
			delim = cfg.Delimiter
		}
		d, err := parseDelimiter(delim)
		if err != nil {
			return err
		}
		opt.Delimiter = d

		opt.TopK = expTopK
		if opt.TopK == 0 && cfg != nil {
			opt.TopK = cfg.TopCorrelations
		}

		save := expSaveFigs
		if !cmd.Flags().Changed("save-figs") && cfg != nil {
			save = cfg.SaveFigs
		}
		figDir := expFigDir
		if figDir == "" {
			figDir = "figures"
			if cfg != nil && cfg.FigDir != "" {
				figDir = cfg.FigDir
			}
		}

		var renderer chart.Renderer = chart.Discard{}
		if save {
			r, err := chart.NewPNGRenderer(figDir)
			if err != nil {
				return err
			}
			renderer = r
		}
		if debug {
			fmt.Fprintf(os.Stderr, "explore: file=%s delimiter=%q save_figs=%v fig_dir=%s\n",
				opt.CSVPath, string(opt.Delimiter), save, figDir)
		}
		return eda.Run(opt, cmd.OutOrStdout(), renderer)
	},
}

func init() {
	exploreCmd.Flags().BoolVar(&expSaveFigs, "save-figs", false, "export charts as PNG files")
	exploreCmd.Flags().StringVar(&expFigDir, "fig-dir", "", "directory for exported charts (default \"figures\")")
	exploreCmd.Flags().StringVar(&expDelimiter, "delimiter", "", "field separator: ';' (default), ',' or 'tab'")
	exploreCmd.Flags().IntVar(&expTopK, "top", 0, "correlations against quality to list (default 8)")
	rootCmd.AddCommand(exploreCmd)
}
