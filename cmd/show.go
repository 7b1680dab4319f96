package cmd

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/filter-today/filterctl/internal/api"
	"github.com/filter-today/filterctl/internal/record"
	"github.com/filter-today/filterctl/internal/ui"
)

var showContentOnly bool

var showCmd = &cobra.Command{
	Use:   "show [date]",
	Short: "Show the record for a date",
	Long:  "Display the record for a date (YYYY-MM-DD), rendered as markdown. Defaults to today.",
	Example: `  filterctl show
  filterctl show 2024-02-10
  filterctl show 2024-02-10 --json`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		dateKey := record.DateKey(time.Now())
		if len(args) == 1 {
			dateKey = args[0]
		}
		if _, err := record.ParseDateKey(dateKey); err != nil {
			fmt.Fprintln(os.Stderr, "Error:", err)
			os.Exit(1)
		}

		if err := showRun(cmd.OutOrStdout(), dateKey, showContentOnly); err != nil {
			if errors.Is(err, api.ErrNoRecord) {
				fmt.Fprintf(os.Stderr, "No record for %s.\n", dateKey)
				os.Exit(1)
			}
			fmt.Fprintln(os.Stderr, "Error:", err)
			os.Exit(2)
		}
		return nil
	},
}

func init() {
	showCmd.Flags().BoolVar(&showContentOnly, "content-only", false, "print just the record content")
	rootCmd.AddCommand(showCmd)
}

func showRun(w io.Writer, dateKey string, contentOnly bool) error {
	rec, err := client.Record(context.Background(), dateKey)
	if err != nil {
		return err
	}

	if contentOnly {
		fmt.Fprintln(w, rec.Content)
		return nil
	}
	if jsonOutput {
		return ui.FormatJSON(w, rec)
	}
	ui.FormatRecordFull(w, rec, theme.MarkdownStyle)
	return nil
}
