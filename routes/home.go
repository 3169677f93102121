/*
 * Copyright 2026 Humaid Alqasimi
 * SPDX-License-Identifier: Apache-2.0
 */
package routes

import (
	"net/http"

	"github.com/flamego/flamego"
	"github.com/flamego/session"
	"github.com/flamego/template"

	"github.com/humaidq/confidenceai/i18n"
)

// UseCaseCard is a selectable card on the home page.
type UseCaseCard struct {
	ID          string
	Title       string
	Description string
	Selected    bool
}

// Home renders the landing page with the use case cards.
func Home(t template.Template, data template.Data, state *ViewState, catalog *i18n.Catalog) {
	cards := make([]UseCaseCard, 0, len(UseCases))
	for _, u := range UseCases {
		cards = append(cards, UseCaseCard{
			ID:          string(u),
			Title:       catalog.T(state.Locale, string(u)),
			Description: catalog.T(state.Locale, string(u)+"_desc"),
			Selected:    u == state.UseCase,
		})
	}

	data["Cards"] = cards
	data["IsHome"] = true
	t.HTML(http.StatusOK, "home")
}

// SelectUseCase stores the chosen use case and redirects to its page.
func SelectUseCase(c flamego.Context, s session.Session, data template.Data, state *ViewState, catalog *i18n.Catalog) {
	if err := c.Request().ParseForm(); err != nil {
		logger.Warn("failed to parse use case form", "error", err)
		c.Redirect("/", http.StatusSeeOther)
		return
	}

	u, ok := ParseUseCase(c.Request().Form.Get("use_case"))
	if !ok {
		logger.Warn("unknown use case", "value", c.Request().Form.Get("use_case"))
		SetErrorFlash(s, catalog.T(state.Locale, "error.use_case"))
		c.Redirect("/", http.StatusSeeOther)
		return
	}

	rememberUseCase(s, state, data, u)
	c.Redirect(u.Path(), http.StatusSeeOther)
}

// SetLanguage switches the session locale and redirects back.
func SetLanguage(c flamego.Context, s session.Session, state *ViewState, catalog *i18n.Catalog) {
	if err := c.Request().ParseForm(); err != nil {
		logger.Warn("failed to parse language form", "error", err)
		c.Redirect("/", http.StatusSeeOther)
		return
	}

	form := c.Request().Form
	next := sanitizeNextPath(form.Get("next"))

	locale, ok := i18n.Normalize(form.Get("lang"))
	if !ok {
		logger.Warn("unsupported language", "value", form.Get("lang"))
		SetErrorFlash(s, catalog.T(state.Locale, "error.language"))
		c.Redirect(next, http.StatusSeeOther)
		return
	}

	s.Set(sessionLocaleKey, locale)
	SetSuccessFlash(s, catalog.T(locale, "language.changed"))
	c.Redirect(next, http.StatusSeeOther)
}

// ComingSoon renders the placeholder page of a use case that has no flow yet.
func ComingSoon(u UseCase) flamego.Handler {
	return func(t template.Template, s session.Session, data template.Data, state *ViewState, catalog *i18n.Catalog) {
		rememberUseCase(s, state, data, u)

		data["Heading"] = catalog.T(state.Locale, string(u))
		data["Message"] = catalog.T(state.Locale, "coming_soon")
		t.HTML(http.StatusOK, "coming_soon")
	}
}
