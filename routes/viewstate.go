/*
 * Copyright 2026 Humaid Alqasimi
 * SPDX-License-Identifier: Apache-2.0
 */
package routes

import (
	"net/http"
	"net/url"
	"strings"

	"github.com/flamego/session"
	"github.com/flamego/template"

	"github.com/humaidq/confidenceai/i18n"
)

// UseCase is one of the areas offered on the home page.
type UseCase string

const (
	UseCaseHealth    UseCase = "health"
	UseCaseFinance   UseCase = "finance"
	UseCaseEducation UseCase = "education"
	UseCaseCustom    UseCase = "custom"
)

// UseCases lists the use cases in home page order.
var UseCases = []UseCase{UseCaseHealth, UseCaseFinance, UseCaseEducation, UseCaseCustom}

const (
	sessionLocaleKey  = "locale"
	sessionUseCaseKey = "use_case"
)

// ParseUseCase returns the use case named by value.
func ParseUseCase(value string) (UseCase, bool) {
	value = strings.ToLower(strings.TrimSpace(value))
	for _, u := range UseCases {
		if string(u) == value {
			return u, true
		}
	}

	return "", false
}

// Path is the page serving the use case.
func (u UseCase) Path() string {
	return "/" + string(u)
}

// ViewState is the per-request UI context: the display language and the
// selected use case. It is rebuilt from the session on every request and
// handed to handlers through injection.
type ViewState struct {
	Locale  string
	UseCase UseCase
}

func loadViewState(r *http.Request, s session.Session, catalog *i18n.Catalog, defaultLocale string) *ViewState {
	state := &ViewState{Locale: defaultLocale}

	if locale, ok := s.Get(sessionLocaleKey).(string); ok && catalog.Has(locale) {
		state.Locale = locale
	} else {
		state.Locale = i18n.Match(defaultLocale, r.Header.Get("Accept-Language"))
	}

	if raw, ok := s.Get(sessionUseCaseKey).(string); ok {
		if u, ok := ParseUseCase(raw); ok {
			state.UseCase = u
		}
	}

	return state
}

// rememberUseCase records u as the active use case for the session.
func rememberUseCase(s session.Session, state *ViewState, data template.Data, u UseCase) {
	state.UseCase = u
	data["UseCase"] = string(u)

	if current, _ := s.Get(sessionUseCaseKey).(string); current != string(u) {
		s.Set(sessionUseCaseKey, string(u))
	}
}

// returnPath is where a language switch should land after the redirect.
// Result pages are only reachable by POST, so they map back to their form.
func returnPath(r *http.Request, state *ViewState) string {
	if r.Method == http.MethodGet || r.Method == http.MethodHead {
		return r.URL.RequestURI()
	}

	segment, _, _ := strings.Cut(strings.TrimPrefix(r.URL.Path, "/"), "/")
	if u, ok := ParseUseCase(segment); ok {
		return u.Path()
	}

	if state.UseCase != "" {
		return state.UseCase.Path()
	}

	return "/"
}

// sanitizeNextPath keeps redirects on this site.
func sanitizeNextPath(raw string) string {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "/"
	}

	// Browsers treat a backslash like a slash, so "/\host" leaves the site.
	if strings.ContainsAny(raw, "\r\n\\") {
		return "/"
	}

	if strings.Contains(raw, "://") {
		parsed, err := url.Parse(raw)
		if err != nil {
			return "/"
		}

		path := parsed.EscapedPath()
		if path == "" {
			path = "/"
		}

		if strings.HasPrefix(path, "//") {
			return "/"
		}

		if parsed.RawQuery != "" {
			return path + "?" + parsed.RawQuery
		}

		return path
	}

	if !strings.HasPrefix(raw, "/") || strings.HasPrefix(raw, "//") {
		return "/"
	}

	return raw
}
