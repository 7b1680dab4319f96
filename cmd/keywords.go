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
	keywordsYear  int
	keywordsMonth int
	keywordsCloud bool
)

var keywordsCmd = &cobra.Command{
	Use:   "keywords",
	Short: "Show the month's weighted keywords",
	Long:  "Shows the keywords the analysis extracted from a month of records, with their weights.",
	Example: `  filterctl keywords
  filterctl keywords --year 2024 --month 2 --cloud`,
	RunE: func(cmd *cobra.Command, args []string) error {
		year, month := resolveMonthFlags(keywordsYear, keywordsMonth)
		if err := keywordsRun(cmd.OutOrStdout(), year, month, keywordsCloud); err != nil {
			fmt.Fprintln(os.Stderr, "Error:", err)
			os.Exit(1)
		}
		return nil
	},
}

func init() {
	keywordsCmd.Flags().IntVar(&keywordsYear, "year", 0, "calendar year (default: current)")
	keywordsCmd.Flags().IntVar(&keywordsMonth, "month", 0, "calendar month 1-12 (default: current)")
	keywordsCmd.Flags().BoolVar(&keywordsCloud, "cloud", false, "render a keyword cloud instead of a table")
	rootCmd.AddCommand(keywordsCmd)
}

func keywordsRun(w io.Writer, year, month int, cloud bool) error {
	keywords, err := client.Keywords(context.Background(), year, month)
	if err != nil {
		return err
	}

	if jsonOutput {
		return ui.FormatJSON(w, keywords)
	}
	if cloud {
		fmt.Fprintln(w, ui.RenderKeywordCloud(keywords, 72, theme))
		return nil
	}
	ui.FormatKeywordsTable(w, keywords)
	return nil
}
