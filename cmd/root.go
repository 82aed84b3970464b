// Copyright (c) 2025 Authflag
// Licensed under the MIT License. See LICENSE file in the project root for details.

// Package cmd provides the command-line interface for authflag.
// It implements subcommands to store, clear, inspect and watch the client-side
// login flag using the Cobra CLI framework. The root command is also the
// composition root: it loads configuration, builds the logger, selects the
// storage backend and constructs the flag every subcommand works with.
package cmd

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"authflag/cli/internal/logging"
)

var (
	showVersion bool
	configPath  string
	backendName string
	verbose     bool
)

// errSilent makes Execute exit with status 1 without printing anything.
var errSilent = errors.New("silent failure")

// rootCmd represents the base command when called without any subcommands.
var rootCmd = &cobra.Command{
	Use:   "authflag",
	Short: "Keep track of whether this machine holds a login token",
	Long: `authflag stores an opaque login token in local storage and reports whether
a user appears to be logged in. It performs no validation: a stored non-empty
token means logged in.

Other processes using the same storage are picked up by 'authflag watch'.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		if showVersion {
			fmt.Fprintln(cmd.OutOrStdout(), versionString())
			return nil
		}
		return cmd.Help()
	},
}

// Execute runs the CLI application.
// It executes the root command and handles any errors that occur during execution.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		if !errors.Is(err, errSilent) {
			logging.PresentError(os.Stderr, "authflag", err)
		}
		os.Exit(1)
	}
}

func init() {
	rootCmd.Flags().BoolVar(&showVersion, "version", false, "Show version information")
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "Path to config.yaml (default: XDG config dir)")
	rootCmd.PersistentFlags().StringVar(&backendName, "backend", "", "Storage backend: auto, file, keyring, memory or none")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable debug logging")
}
