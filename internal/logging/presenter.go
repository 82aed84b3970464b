// Copyright (c) 2025 Authflag
// Licensed under the MIT License. See LICENSE file in the project root for details.

package logging

import (
	"fmt"
	"io"
	"strings"

	apperrors "authflag/cli/internal/errors"
)

// FormatError formats an error as a single masked line prefixed with context.
// Multi-line messages (such as JSON decode errors quoting the storage file)
// are joined so that nothing after the first newline escapes masking.
func FormatError(context string, err error) string {
	if err == nil {
		return ""
	}
	msg := strings.Join(strings.Fields(err.Error()), " ")
	return fmt.Sprintf("%s: %s", context, Mask(msg))
}

// PresentError writes err to w. Typed storage and configuration errors get
// the detailed block from FormatStorageError, anything else a single line.
func PresentError(w io.Writer, context string, err error) {
	if err == nil {
		return
	}
	if apperrors.KindOf(err) != "" {
		fmt.Fprintln(w, FormatStorageError(err))
		return
	}
	fmt.Fprintln(w, FormatError(context, err))
}
