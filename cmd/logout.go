// Copyright (c) 2025 Authflag
// Licensed under the MIT License. See LICENSE file in the project root for details.

package cmd

import (
	"github.com/pterm/pterm"
	"github.com/spf13/cobra"
)

// logoutCmd removes the stored token and clears the login flag.
var logoutCmd = &cobra.Command{
	Use:   "logout",
	Short: "Remove the stored login token",
	Long: `The logout command removes the token from the configured storage and clears
the login flag. Other processes watching the same storage notice the change.
Running it when no token is stored is not an error.`,
	Args: cobra.NoArgs,

	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := newApp()
		if err != nil {
			return err
		}
		if err := a.flag.ClearAuth(); err != nil {
			return err
		}
		pterm.Success.WithWriter(cmd.OutOrStdout()).Println("Logged out")
		return nil
	},
}

func init() {
	rootCmd.AddCommand(logoutCmd)
}
