package cmd

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var signupPassword string

var signupCmd = &cobra.Command{
	Use:   "signup <email> <nickname>",
	Short: "Create a Filter.today account",
	Example: `  filterctl signup me@example.com sunny
  filterctl signup me@example.com sunny --password secret`,
	Args: cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		email, nickname := args[0], args[1]

		password := signupPassword
		if password == "" {
			var err error
			password, err = promptPassword("Password: ")
			if err != nil {
				return err
			}
			again, err := promptPassword("Repeat password: ")
			if err != nil {
				return err
			}
			if password != again {
				return fmt.Errorf("passwords do not match")
			}
		}

		if err := client.Signup(context.Background(), email, password, nickname); err != nil {
			fmt.Fprintln(os.Stderr, "Error:", err)
			os.Exit(1)
		}

		fmt.Fprintf(cmd.OutOrStdout(), "Account created for %s. Log in with: filterctl login %s\n", nickname, email)
		return nil
	},
}

func init() {
	signupCmd.Flags().StringVar(&signupPassword, "password", "", "password (prompted when omitted)")
	rootCmd.AddCommand(signupCmd)
}
