package cmd

import (
	"time"

	"github.com/spf13/cobra"
)

var (
	tonemapYear  int
	tonemapMonth int
)

var tonemapCmd = &cobra.Command{
	Use:   "tonemap",
	Short: "Print the month's tone-map calendar",
	Long: `Print the tone-map calendar for a month: one cell per day, painted in
the record's color. Defaults to the current month.`,
	Example: `  filterctl tonemap
  filterctl tonemap --year 2024 --month 2
  filterctl tonemap --json`,
	RunE: func(cmd *cobra.Command, args []string) error {
		year, month := resolveMonthFlags(tonemapYear, tonemapMonth)
		return tonemapRun(cmd.OutOrStdout(), year, month)
	},
}

func init() {
	tonemapCmd.Flags().IntVar(&tonemapYear, "year", 0, "calendar year (default: current)")
	tonemapCmd.Flags().IntVar(&tonemapMonth, "month", 0, "calendar month 1-12 (default: current)")
	rootCmd.AddCommand(tonemapCmd)
}

func resolveMonthFlags(year, month int) (int, int) {
	now := time.Now()
	if year == 0 {
		year = now.Year()
	}
	if month == 0 {
		month = int(now.Month())
	}
	return year, month
}
