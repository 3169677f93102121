/*
 * Copyright 2026 Humaid Alqasimi
 * SPDX-License-Identifier: Apache-2.0
 */
package i18n

import (
	"strings"

	"golang.org/x/text/language"
)

// supported is indexed by the matcher's result index.
var supported = []string{Hindi, English}

var matcher = language.NewMatcher([]language.Tag{
	language.Hindi,
	language.English,
})

// Match resolves a supported locale from preference strings, earlier strings
// taking priority. Each preference may be a bare locale ("en") or an
// Accept-Language header value. fallback is returned when nothing matches.
func Match(fallback string, preferences ...string) string {
	var desired []language.Tag

	for _, p := range preferences {
		if p = strings.TrimSpace(p); p == "" {
			continue
		}

		tags, _, err := language.ParseAcceptLanguage(p)
		if err != nil {
			continue
		}

		desired = append(desired, tags...)
	}

	if len(desired) == 0 {
		return fallback
	}

	_, idx, confidence := matcher.Match(desired...)
	if confidence == language.No || idx < 0 || idx >= len(supported) {
		return fallback
	}

	return supported[idx]
}

// Normalize validates an explicit locale selection.
func Normalize(locale string) (string, bool) {
	switch strings.ToLower(strings.TrimSpace(locale)) {
	case Hindi, "hindi", "हिंदी":
		return Hindi, true
	case English, "english":
		return English, true
	}

	return "", false
}

// DisplayName returns the native name of locale for language pickers.
func DisplayName(locale string) string {
	if locale == English {
		return "English"
	}

	return "हिंदी"
}
