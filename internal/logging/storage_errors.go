// Copyright (c) 2025 Authflag
// Licensed under the MIT License. See LICENSE file in the project root for details.

package logging

import (
	"strings"

	"github.com/pterm/pterm"

	apperrors "authflag/cli/internal/errors"
)

// FormatStorageError formats a storage or configuration error in a user-friendly way.
// The raw error text is masked before it is shown.
func FormatStorageError(err error) string {
	if err == nil {
		return ""
	}

	var builder strings.Builder

	switch apperrors.KindOf(err) {
	case apperrors.StorageRead:
		builder.WriteString(pterm.NewStyle(pterm.FgRed, pterm.Bold).Sprint("Cannot read token storage"))
		builder.WriteString("\n\n")
		builder.WriteString("The stored login state could not be read.\n")
		builder.WriteString("This usually happens when:\n")
		builder.WriteString("  • The storage file is not readable by the current user\n")
		builder.WriteString("  • The storage file was edited by hand and is no longer valid JSON\n")
		builder.WriteString("  • The OS keychain is locked\n")
	case apperrors.StorageWrite:
		builder.WriteString(pterm.NewStyle(pterm.FgRed, pterm.Bold).Sprint("Cannot update token storage"))
		builder.WriteString("\n\n")
		builder.WriteString("The login state was left unchanged.\n")
		builder.WriteString("Possible reasons:\n")
		builder.WriteString("  • The disk is full or the state directory is read-only\n")
		builder.WriteString("  • The OS keychain refused the write\n")
	case apperrors.StorageUnavailable:
		builder.WriteString(pterm.NewStyle(pterm.FgRed, pterm.Bold).Sprint("Token storage unavailable"))
		builder.WriteString("\n\n")
		builder.WriteString("The selected storage backend cannot be used on this system.\n")
		builder.WriteString("Try another backend with --backend file.\n")
	case apperrors.InvalidConfig:
		builder.WriteString(pterm.NewStyle(pterm.FgRed, pterm.Bold).Sprint("Invalid configuration"))
		builder.WriteString("\n\n")
		builder.WriteString("Check config.yaml and AUTHFLAG_* environment variables.\n")
	case apperrors.WatchFailed:
		builder.WriteString(pterm.NewStyle(pterm.FgRed, pterm.Bold).Sprint("Cannot watch token storage"))
		builder.WriteString("\n\n")
		builder.WriteString("Changes made by other processes will not be picked up.\n")
	default:
		builder.WriteString(pterm.NewStyle(pterm.FgRed, pterm.Bold).Sprint("Unexpected error"))
		builder.WriteString("\n")
	}

	builder.WriteString("\n")
	builder.WriteString(pterm.NewStyle(pterm.FgGray).Sprint("Technical details: " + Mask(err.Error())))

	return builder.String()
}
