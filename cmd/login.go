// Copyright (c) 2025 Authflag
// Licensed under the MIT License. See LICENSE file in the project root for details.

package cmd

import (
	"errors"

	"github.com/pterm/pterm"
	"github.com/spf13/cobra"

	"authflag/cli/internal/terminal"
)

// loginCmd stores a token and marks this machine as logged in.
var loginCmd = &cobra.Command{
	Use:   "login [token]",
	Short: "Store a login token",
	Long: `The login command stores the given token under the configured storage key
and marks the login flag as set. The token is taken from the first argument or,
when no argument is given, read from standard input (without echo on a terminal).

The token is opaque to authflag: it is neither validated nor sent anywhere.`,
	Args: cobra.MaximumNArgs(1),

	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := newApp()
		if err != nil {
			return err
		}

		var token string
		if len(args) == 1 {
			token = args[0]
		} else {
			token, err = terminal.ReadSecret(cmd.InOrStdin(), cmd.ErrOrStderr(), "Token: ")
			if err != nil {
				return err
			}
		}
		if token == "" {
			return errors.New("token must not be empty; use 'authflag logout' to clear it")
		}

		if !a.storageAvailable() {
			pterm.Warning.WithWriter(cmd.OutOrStdout()).Println("No storage available; the token was not saved")
			return nil
		}

		if err := a.flag.SetAuth(token); err != nil {
			return err
		}
		pterm.Success.WithWriter(cmd.OutOrStdout()).Println("Logged in")
		return nil
	},
}

func init() {
	rootCmd.AddCommand(loginCmd)
}
