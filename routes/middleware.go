/*
 * Copyright 2026 Humaid Alqasimi
 * SPDX-License-Identifier: Apache-2.0
 */
package routes

import (
	"net/http"

	"github.com/flamego/csrf"
	"github.com/flamego/flamego"
	"github.com/flamego/session"
	"github.com/flamego/template"

	"github.com/humaidq/confidenceai/i18n"
)

// LanguageOption is an entry of the language selector.
type LanguageOption struct {
	Code     string
	Name     string
	Selected bool
}

// CSRFInjector automatically injects CSRF token into template data for all routes
func CSRFInjector() flamego.Handler {
	return func(x csrf.CSRF, data template.Data) {
		data["csrf_token"] = x.Token()
	}
}

// NoCacheHeaders disables caching for page responses.
func NoCacheHeaders() flamego.Handler {
	return func(c flamego.Context) {
		header := c.ResponseWriter().Header()

		if c.Request().Method == http.MethodGet || c.Request().Method == http.MethodHead {
			header.Set("Cache-Control", "no-store, max-age=0")
			header.Set("Pragma", "no-cache")
			header.Set("Expires", "0")
		}

		c.Next()
	}
}

// ViewStateInjector maps the request's *ViewState for handlers and fills the
// template data every page layout needs.
func ViewStateInjector(defaultLocale string) flamego.Handler {
	return func(c flamego.Context, s session.Session, catalog *i18n.Catalog, data template.Data) {
		state := loadViewState(c.Request().Request, s, catalog, defaultLocale)
		c.Map(state)

		data["Locale"] = state.Locale
		data["T"] = catalog.Dict(state.Locale)
		data["Languages"] = languageOptions(catalog, state.Locale)
		data["UseCase"] = string(state.UseCase)
		data["ReturnPath"] = returnPath(c.Request().Request, state)
		data["PageTitle"] = catalog.T(state.Locale, "title")

		if flash, ok := popFlash(s); ok {
			data["Flash"] = flash
		}
	}
}

func languageOptions(catalog *i18n.Catalog, current string) []LanguageOption {
	locales := catalog.Locales()
	options := make([]LanguageOption, 0, len(locales))

	for _, code := range locales {
		options = append(options, LanguageOption{
			Code:     code,
			Name:     i18n.DisplayName(code),
			Selected: code == current,
		})
	}

	return options
}
