// Package main is the entry point for the authflag CLI application.
// It stores, clears and reports a client-side login token.
package main

import (
	"authflag/cli/cmd"
)

func main() {
	cmd.Execute()
}
