// Copyright (c) 2025 Authflag
// Licensed under the MIT License. See LICENSE file in the project root for details.

package cmd

import "fmt"

// Build information, overridden at release time:
//
//	go build -ldflags "-X authflag/cli/cmd.Version=1.2.0 -X authflag/cli/cmd.Commit=$(git rev-parse --short HEAD)"
var (
	Version = "0.0.0-dev"
	Commit  = "none"
)

// versionString is what --version prints.
func versionString() string {
	return fmt.Sprintf("authflag %s (commit %s)", Version, Commit)
}
