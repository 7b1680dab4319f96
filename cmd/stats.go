package cmd

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/filter-today/filterctl/internal/ui"
)

var (
	statsYear  int
	statsMonth int
	statsChart bool
)

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show the month's emotion distribution",
	Example: `  filterctl stats
  filterctl stats --year 2024 --month 2
  filterctl stats --chart`,
	RunE: func(cmd *cobra.Command, args []string) error {
		year, month := resolveMonthFlags(statsYear, statsMonth)
		if err := statsRun(cmd.OutOrStdout(), year, month, statsChart); err != nil {
			fmt.Fprintln(os.Stderr, "Error:", err)
			os.Exit(1)
		}
		return nil
	},
}

func init() {
	statsCmd.Flags().IntVar(&statsYear, "year", 0, "calendar year (default: current)")
	statsCmd.Flags().IntVar(&statsMonth, "month", 0, "calendar month 1-12 (default: current)")
	statsCmd.Flags().BoolVar(&statsChart, "chart", false, "render proportional bars instead of a table")
	rootCmd.AddCommand(statsCmd)
}

func statsRun(w io.Writer, year, month int, chart bool) error {
	stats, err := client.Stats(context.Background(), year, month)
	if err != nil {
		return err
	}

	if jsonOutput {
		return ui.FormatJSON(w, stats)
	}
	if chart {
		fmt.Fprintln(w, ui.RenderStatsChart(stats, theme))
		return nil
	}
	ui.FormatStatsTable(w, stats)
	return nil
}
