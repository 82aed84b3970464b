package cmd

import (
	"fmt"
	"time"

	"github.com/pterm/pterm"
)

// stateLine renders the login flag as a single human-readable line.
func stateLine(loggedIn bool) string {
	if loggedIn {
		return pterm.NewStyle(pterm.FgGreen).Sprint("🔓 Logged in")
	}
	return pterm.NewStyle(pterm.FgYellow).Sprint("🔒 Not logged in")
}

// stampedStateLine is stateLine prefixed with the time of the change.
func stampedStateLine(loggedIn bool, at time.Time) string {
	return fmt.Sprintf("%s %s", pterm.NewStyle(pterm.FgGray).Sprint(at.Format("15:04:05")), stateLine(loggedIn))
}
