package cmd

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var recoverCmd = &cobra.Command{
	Use:     "recover-password <email>",
	Short:   "Request a password recovery mail",
	Example: `  filterctl recover-password me@example.com`,
	Args:    cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := client.RecoverPassword(context.Background(), args[0]); err != nil {
			fmt.Fprintln(os.Stderr, "Error:", err)
			os.Exit(1)
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Recovery mail sent to %s.\n", args[0])
		return nil
	},
}

func init() {
	rootCmd.AddCommand(recoverCmd)
}
