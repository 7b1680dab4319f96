package cmd

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/filter-today/filterctl/internal/ui"
)

var whoamiCmd = &cobra.Command{
	Use:   "whoami",
	Short: "Show the logged-in nickname",
	Long:  "Prints your nickname, or \"Guest\" when no session is active.",
	RunE: func(cmd *cobra.Command, args []string) error {
		name, err := client.Nickname(context.Background())
		if err != nil {
			fmt.Fprintln(os.Stderr, "Error:", err)
			os.Exit(1)
		}
		if jsonOutput {
			return ui.FormatJSON(cmd.OutOrStdout(), map[string]string{"nickname": name})
		}
		fmt.Fprintln(cmd.OutOrStdout(), name)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(whoamiCmd)
}
