// Copyright (c) 2025 Authflag
// Licensed under the MIT License. See LICENSE file in the project root for details.

// Package logging provides structured logging and secure presentation of errors.
// It includes functions for masking sensitive information in log messages and
// formatting errors for user-friendly display while protecting the stored token.
//
// The package helps ensure that tokens, bearer credentials and API keys
// are not accidentally exposed in logs or error messages shown to users.
package logging

import (
	"regexp"
	"strings"
)

var (
	rePassword = regexp.MustCompile(`(?i)(password=)([^\s;]+)`)
	reToken    = regexp.MustCompile(`(?i)(token=|token:\s*|bearer\s+)([A-Za-z0-9._~+/=-]+)`)
	reJSONTok  = regexp.MustCompile(`(?i)("token"\s*:\s*")([^"]*)(")`)
	reAPIKey   = regexp.MustCompile(`(?i)(apikey=|api_key=)([^\s;]+)`)
)

// Mask replaces sensitive values in the input string with "*".
func Mask(s string) string {
	out := s
	out = rePassword.ReplaceAllString(out, "$1***")
	out = reJSONTok.ReplaceAllString(out, "$1***$3")
	out = reToken.ReplaceAllString(out, "$1***")
	out = reAPIKey.ReplaceAllString(out, "$1***")
	// Basic env-like pairs key=VALUE; mask common secret keys
	for _, k := range []string{"AUTHFLAG_TOKEN", "ACCESS_TOKEN"} {
		out = strings.ReplaceAll(out, k+"=", k+"=***")
	}
	return out
}

// MaskToken shortens a raw token for display, keeping only the first and last
// few characters. Short tokens are hidden completely.
func MaskToken(token string) string {
	const keep = 4
	r := []rune(token)
	if len(r) <= keep*3 {
		return strings.Repeat("*", len(r))
	}
	return string(r[:keep]) + strings.Repeat("*", len(r)-keep*2) + string(r[len(r)-keep:])
}
