// Copyright (c) 2025 Authflag
// Licensed under the MIT License. See LICENSE file in the project root for details.

package cmd

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"
	"time"

	"atomicgo.dev/cursor"
	"github.com/pterm/pterm"
	"github.com/spf13/cobra"

	"authflag/cli/internal/terminal"
)

// watchCmd follows the login flag as it changes.
var watchCmd = &cobra.Command{
	Use:   "watch",
	Short: "Follow the login state as other processes change it",
	Long: `The watch command prints the current login state and then every change to it,
including logins and logouts performed by other processes that share the same
storage. It runs until interrupted.

On a terminal the state is shown on a single live line; otherwise one line is
printed per change. Backends without a change feed (keyring, none) only show
the initial state.`,
	Args: cobra.NoArgs,

	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := newApp()
		if err != nil {
			return err
		}

		ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
		defer stop()

		out := cmd.OutOrStdout()
		render, done := stateRenderer(out)
		defer done()

		unsubscribe := a.flag.Subscribe(func(loggedIn bool) {
			render(loggedIn, time.Now())
		})
		defer unsubscribe()

		err = a.flag.Watch(ctx)
		if errors.Is(err, context.Canceled) {
			return nil
		}
		return err
	},
}

func init() {
	rootCmd.AddCommand(watchCmd)
}

// stateRenderer returns a function that displays state changes and a cleanup
// function. Terminals get a live area that is updated in place.
func stateRenderer(out io.Writer) (render func(bool, time.Time), done func()) {
	plain := func(loggedIn bool, at time.Time) {
		fmt.Fprintln(out, stampedStateLine(loggedIn, at))
	}
	if !terminal.IsTerminal(out) {
		return plain, func() {}
	}

	cursor.Hide()
	area, err := pterm.DefaultArea.Start()
	if err != nil {
		cursor.Show()
		return plain, func() {}
	}
	render = func(loggedIn bool, at time.Time) {
		area.Update(stampedStateLine(loggedIn, at))
	}
	done = func() {
		_ = area.Stop()
		cursor.Show()
	}
	return render, done
}
