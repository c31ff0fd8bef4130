// Copyright 2020 Nokia
// Licensed under the BSD 3-Clause License.
// SPDX-License-Identifier: BSD-3-Clause

package utils

import (
	"fmt"
	"regexp"
	"strings"
	"unicode"
)

// StripNonPrintChars removes non-printable characters from the string.
func StripNonPrintChars(s string) string {
	return strings.Map(func(r rune) rune {
		if !unicode.IsPrint(r) {
			return -1
		}
		return r
	}, s)
}

// ShortID trims a run identifier to its first 8 characters, the first group of a UUID.
func ShortID(id string) string {
	if len(id) > 8 {
		return id[:8]
	}

	return id
}

// NamedCaptures returns the named groups of the first match of r in search.
func NamedCaptures(r *regexp.Regexp, search string) (map[string]string, error) {
	matches := r.FindStringSubmatch(search)
	if len(matches) == 0 {
		return nil, fmt.Errorf("%q does not match regexp %q", search, r)
	}

	groups := make(map[string]string)
	for i, name := range r.SubexpNames() {
		if i != 0 && name != "" {
			groups[name] = matches[i]
		}
	}

	return groups, nil
}
