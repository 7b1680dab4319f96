package cmd

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/filter-today/filterctl/internal/editor"
	"github.com/filter-today/filterctl/internal/record"
	"github.com/filter-today/filterctl/internal/session"
	"github.com/filter-today/filterctl/internal/ui"
)

var (
	writeDate   string
	writeColor  string
	writeAssist bool
)

var writeCmd = &cobra.Command{
	Use:   "write [content...]",
	Short: "Write or update a day's record",
	Long: `Write the diary record for a date. A day holds at most one record;
writing to a day that already has one updates it.

If content is provided as arguments, it is used directly.
If "-" is provided, content is read from stdin.
If no content is provided, your editor is opened on a draft.`,
	Example: `  filterctl write "Today was great"
  filterctl write --date 2024-02-10 --color "#4682B4" "Rainy."
  echo "piped content" | filterctl write -
  filterctl write --assist`,
	RunE: func(cmd *cobra.Command, args []string) error {
		dateKey := writeDate
		if dateKey == "" {
			dateKey = record.DateKey(time.Now())
		}
		if _, err := record.ParseDateKey(dateKey); err != nil {
			fmt.Fprintln(os.Stderr, "Error:", err)
			os.Exit(1)
		}

		sess := newSession()
		if writeAssist {
			sess.SetMode(session.ModeAssisted)
		}

		ctx := context.Background()
		if err := sess.Select(ctx, dateKey); err != nil {
			fmt.Fprintln(os.Stderr, "Error:", err)
			os.Exit(2)
		}

		switch {
		case len(args) == 1 && args[0] == "-":
			data, err := io.ReadAll(os.Stdin)
			if err != nil {
				fmt.Fprintln(os.Stderr, "Error reading stdin:", err)
				os.Exit(2)
			}
			sess.Content = string(data)

		case len(args) > 0:
			sess.Content = strings.Join(args, " ")

		default:
			if err := editDraft(ctx, sess); err != nil {
				fmt.Fprintln(os.Stderr, "Error:", err)
				os.Exit(3)
			}
		}

		if writeColor != "" {
			sess.HexCode = writeColor
		}

		outcome, err := sess.Save(ctx)
		if err != nil {
			fmt.Fprintln(os.Stderr, "Error:", err)
			os.Exit(1)
		}
		if outcome == session.OutcomeDeclined {
			fmt.Fprintln(cmd.OutOrStdout(), "Cancelled.")
			return nil
		}

		writeReport(cmd.OutOrStdout(), sess, outcome)
		return nil
	},
}

func init() {
	writeCmd.Flags().StringVar(&writeDate, "date", "", "record date YYYY-MM-DD (default: today)")
	writeCmd.Flags().StringVar(&writeColor, "color", "", "tone color #RRGGBB")
	writeCmd.Flags().BoolVar(&writeAssist, "assist", false, "let the analyzer pick the tone color")
	rootCmd.AddCommand(writeCmd)
}

// editDraft opens the editor on a front-matter draft of the selected record
// and folds the result back into the session. Changing record_date in the
// draft retargets the session to that day.
func editDraft(ctx context.Context, sess *session.Session) error {
	doc := editor.ComposeDraft(sess.SelectedDate(), sess.HexCode, sess.Content)
	edited, changed, err := editor.Edit(editor.ResolveEditor(appConfig.Editor), doc)
	if err != nil {
		return err
	}
	if !changed {
		return fmt.Errorf("empty content")
	}

	draft, err := editor.ParseDraft(edited)
	if err != nil {
		return err
	}
	if draft.RecordDate != sess.SelectedDate() {
		if err := sess.Select(ctx, draft.RecordDate); err != nil {
			return err
		}
	}
	sess.Content = draft.Content
	sess.HexCode = draft.HexCode
	return nil
}

func writeReport(w io.Writer, sess *session.Session, outcome session.Outcome) {
	updated := outcome == session.OutcomeUpdated
	if jsonOutput {
		ui.FormatJSON(w, ui.SaveResult{
			RecordDate:  sess.SelectedDate(),
			DiaryID:     sess.RecordID(),
			HexCode:     sess.HexCode,
			EmotionType: sess.EmotionType,
			Updated:     updated,
		})
		return
	}
	ui.FormatRecordSaved(w, record.Record{
		RecordDate:  sess.SelectedDate(),
		EmotionType: sess.EmotionType,
	}, updated)
}
