package cmd

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/filter-today/filterctl/internal/record"
	"github.com/filter-today/filterctl/internal/session"
	"github.com/filter-today/filterctl/internal/ui"
)

var forceDelete bool

var deleteCmd = &cobra.Command{
	Use:   "delete <date>",
	Short: "Delete a day's record",
	Long:  "Permanently delete the record for a date. Requires confirmation unless --force is used.",
	Example: `  filterctl delete 2024-02-10
  filterctl delete 2024-02-10 --force`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		dateKey := args[0]
		if _, err := record.ParseDateKey(dateKey); err != nil {
			fmt.Fprintln(os.Stderr, "Error:", err)
			os.Exit(1)
		}

		sess := newSession()
		ctx := context.Background()
		if err := sess.Select(ctx, dateKey); err != nil {
			fmt.Fprintln(os.Stderr, "Error:", err)
			os.Exit(2)
		}
		if !sess.EditMode() {
			fmt.Fprintf(os.Stderr, "Error: no record for %s\n", dateKey)
			os.Exit(1)
		}

		if !forceDelete {
			fmt.Fprintf(cmd.OutOrStdout(), "Record: %s (%s)\n", dateKey, record.EmotionLabel(sess.EmotionType))
			preview := record.Record{Content: sess.Content}.Preview(60)
			fmt.Fprintf(cmd.OutOrStdout(), "Preview: %s\n\n", preview)
		}

		var outcome session.Outcome
		var err error
		if forceDelete {
			outcome, err = sess.Remove(ctx)
		} else {
			outcome, err = sess.Delete(ctx)
		}
		if err != nil {
			fmt.Fprintln(os.Stderr, "Error:", err)
			os.Exit(2)
		}
		if outcome != session.OutcomeDeleted {
			fmt.Fprintln(cmd.OutOrStdout(), "Cancelled.")
			return nil
		}

		if jsonOutput {
			return ui.FormatJSON(cmd.OutOrStdout(), ui.DeleteResult{RecordDate: dateKey, Deleted: true})
		}
		ui.FormatRecordDeleted(cmd.OutOrStdout(), dateKey)
		return nil
	},
}

func init() {
	deleteCmd.Flags().BoolVar(&forceDelete, "force", false, "skip confirmation prompt")
	rootCmd.AddCommand(deleteCmd)
}
