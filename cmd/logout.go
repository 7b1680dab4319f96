package cmd

import (
	"context"
	"fmt"
	"log"

	"github.com/spf13/cobra"
)

var logoutCmd = &cobra.Command{
	Use:   "logout",
	Short: "Log out and clear the local session",
	RunE: func(cmd *cobra.Command, args []string) error {
		// Local state is cleared even when the server call fails.
		err := client.Logout(context.Background())
		if toneCache != nil {
			if perr := toneCache.Purge(); perr != nil {
				log.Printf("purging tonemap cache: %v", perr)
			}
		}
		if err != nil {
			log.Printf("logout request: %v", err)
		}
		fmt.Fprintln(cmd.OutOrStdout(), "Logged out.")
		return nil
	},
}

func init() {
	rootCmd.AddCommand(logoutCmd)
}
