/*
 * Copyright 2026 Humaid Alqasimi
 * SPDX-License-Identifier: Apache-2.0
 */
package i18n

import (
	"fmt"
	"sort"
)

// Supported locales.
const (
	Hindi   = "hi"
	English = "en"
)

// DefaultLocale is used when no preference can be resolved.
const DefaultLocale = Hindi

// Catalog is a keyed lookup of localized strings: locale -> key -> string.
type Catalog struct {
	defaultLocale string
	entries       map[string]map[string]string
}

// New builds a catalog from the given entries. The default locale is used as
// the fallback when a key is missing for the requested locale.
func New(defaultLocale string, entries map[string]map[string]string) *Catalog {
	return &Catalog{
		defaultLocale: defaultLocale,
		entries:       entries,
	}
}

var builtin = New(DefaultLocale, map[string]map[string]string{
	Hindi:   hindiMessages,
	English: englishMessages,
})

// Default returns the built-in Hindi/English catalog.
func Default() *Catalog {
	return builtin
}

// T returns the string for key in locale, falling back to the default locale
// and finally to the key itself.
func (c *Catalog) T(locale, key string) string {
	if msgs, ok := c.entries[locale]; ok {
		if msg, ok := msgs[key]; ok {
			return msg
		}
	}

	if msg, ok := c.entries[c.defaultLocale][key]; ok {
		return msg
	}

	return key
}

// Tf formats the string for key with args.
func (c *Catalog) Tf(locale, key string, args ...interface{}) string {
	return fmt.Sprintf(c.T(locale, key), args...)
}

// Steps returns the ordered next-step recommendations for locale.
func (c *Catalog) Steps(locale string) []string {
	steps := make([]string, 0, len(nextStepKeys))
	for _, key := range nextStepKeys {
		steps = append(steps, c.T(locale, key))
	}

	return steps
}

// Has reports whether locale is present in the catalog.
func (c *Catalog) Has(locale string) bool {
	_, ok := c.entries[locale]
	return ok
}

// Locales returns the catalog locales with the default first.
func (c *Catalog) Locales() []string {
	locales := make([]string, 0, len(c.entries))
	for locale := range c.entries {
		if locale != c.defaultLocale {
			locales = append(locales, locale)
		}
	}

	sort.Strings(locales)

	return append([]string{c.defaultLocale}, locales...)
}

// Dict returns a read-only view of every key for locale, with missing keys
// filled from the default locale. Templates index into it directly.
func (c *Catalog) Dict(locale string) map[string]string {
	base := c.entries[c.defaultLocale]
	out := make(map[string]string, len(base))

	for key, msg := range base {
		out[key] = msg
	}

	for key, msg := range c.entries[locale] {
		out[key] = msg
	}

	return out
}
