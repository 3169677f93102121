/*
 * Copyright 2026 Humaid Alqasimi
 * SPDX-License-Identifier: Apache-2.0
 */
package content

import (
	"embed"
	"fmt"
)

// Pages contains the embedded org-mode pages, one file per locale.
//
//go:embed *.org
var Pages embed.FS

// Page returns the org source of name for locale, e.g. Page("about", "hi").
func Page(name, locale string) (string, error) {
	data, err := Pages.ReadFile(fmt.Sprintf("%s.%s.org", name, locale))
	if err != nil {
		return "", err
	}

	return string(data), nil
}
