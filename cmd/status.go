package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"authflag/cli/internal/logging"
)

var (
	statusShowToken bool
	statusExitCode  bool
)

// statusCmd reports whether a token is currently stored.
var statusCmd = &cobra.Command{
	Use:     "status",
	Aliases: []string{"whoami"},
	Short:   "Show whether a login token is stored",
	Long: `The status command reads the configured storage once and reports whether a
login token is present. With --show-token the stored token is printed in masked
form. With --exit-code the command exits with status 1 when logged out, which
is convenient in shell scripts.`,
	Args: cobra.NoArgs,

	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := newApp()
		if err != nil {
			return err
		}
		out := cmd.OutOrStdout()

		loggedIn := a.flag.IsLoggedIn()
		fmt.Fprintln(out, stateLine(loggedIn))

		if !a.storageAvailable() {
			fmt.Fprintln(out, "   No storage available in this environment.")
		}

		if loggedIn && statusShowToken {
			token, ok, err := a.flag.Token()
			if err != nil {
				return err
			}
			if ok {
				fmt.Fprintf(out, "   Token: %s\n", logging.MaskToken(token))
			}
		}

		if !loggedIn {
			fmt.Fprintln(out, "   Run 'authflag login' to store a token.")
			if statusExitCode {
				return errSilent
			}
		}
		return nil
	},
}

func init() {
	statusCmd.Flags().BoolVar(&statusShowToken, "show-token", false, "Print the stored token (masked)")
	statusCmd.Flags().BoolVar(&statusExitCode, "exit-code", false, "Exit with status 1 when logged out")
	rootCmd.AddCommand(statusCmd)
}
