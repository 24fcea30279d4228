package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/winestat/winestat/internal/dataset"
	"github.com/winestat/winestat/internal/quality"
)

var (
	clsDelimiter string
	clsColumns   []string
)

var classesCmd = &cobra.Command{
	Use:   "classes [file]",
	Short: "Print the quality-class distribution and per-class value counts",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		path := ""
		if len(args) == 1 {
			path = args[0]
		} else if cfg != nil {
			path = cfg.CSVPath
		}
		if path == "" {
			return fmt.Errorf("no input file: pass a path or set csv_path in config")
		}
		delim := clsDelimiter
		if delim == "" && cfg != nil {
			delim = cfg.Delimiter
		}
		d, err := parseDelimiter(delim)
		if err != nil {
			return err
		}

		ds, err := dataset.Load(path, d)
		if err != nil {
			return err
		}
		out := cmd.OutOrStdout()
		dist := quality.Distribution(ds)
		fmt.Fprintf(out, "Rows: %d\n", ds.Len())
		for _, c := range quality.Ordered {
			fmt.Fprintf(out, "%-12s %d\n", c, dist[c])
		}
		fmt.Fprintf(out, "%-12s %d\n", quality.Unclassified, dist[quality.Unclassified])

		for _, col := range clsColumns {
			buckets, err := quality.GroupValues(ds, col, quality.Ordered...)
			if err != nil {
				return err
			}
			fmt.Fprintf(out, "\n%s values per class:\n", col)
			for _, c := range quality.Ordered {
				fmt.Fprintf(out, "%-12s %d\n", c, len(buckets[c]))
			}
		}
		return nil
	},
}

func init() {
	classesCmd.Flags().StringVar(&clsDelimiter, "delimiter", "", "field separator: ';' (default), ',' or 'tab'")
	classesCmd.Flags().StringSliceVar(&clsColumns, "columns", []string{"alcohol", "pH"}, "columns to bucket per class")
	rootCmd.AddCommand(classesCmd)
}
