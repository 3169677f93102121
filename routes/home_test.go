// SPDX-FileCopyrightText: 2026 Humaid Alqasimi
// SPDX-License-Identifier: Apache-2.0

package routes

import (
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"

	"github.com/humaidq/confidenceai/i18n"
)

func TestHomeRendersUseCaseCards(t *testing.T) {
	t.Parallel()

	app := newTestApp()
	app.f.Get("/", Home)

	app.serve(httptest.NewRequest(http.MethodGet, "/", nil))

	if !app.tpl.called || app.tpl.name != "home" || app.tpl.status != http.StatusOK {
		t.Fatalf("unexpected template render: %#v", app.tpl)
	}

	cards, ok := app.data["Cards"].([]UseCaseCard)
	if !ok || len(cards) != len(UseCases) {
		t.Fatalf("expected %d cards, got %#v", len(UseCases), app.data["Cards"])
	}

	if cards[0].ID != string(UseCaseHealth) || cards[0].Title != i18n.Default().T(i18n.Hindi, "health") {
		t.Fatalf("unexpected first card: %#v", cards[0])
	}
}

func TestSelectUseCase(t *testing.T) {
	t.Parallel()

	app := newTestApp()
	app.f.Post("/use-case", SelectUseCase)

	rec := app.serve(postForm("/use-case", url.Values{"use_case": {"custom"}}))

	if rec.Code != http.StatusSeeOther {
		t.Fatalf("expected status %d, got %d", http.StatusSeeOther, rec.Code)
	}

	if got := rec.Header().Get("Location"); got != "/custom" {
		t.Fatalf("expected redirect to /custom, got %q", got)
	}

	if got, _ := app.session.Get(sessionUseCaseKey).(string); got != "custom" {
		t.Fatalf("expected use case in session, got %q", got)
	}
}

func TestSelectUseCaseRejectsUnknown(t *testing.T) {
	t.Parallel()

	app := newTestApp()
	app.f.Post("/use-case", SelectUseCase)

	rec := app.serve(postForm("/use-case", url.Values{"use_case": {"weather"}}))

	if got := rec.Header().Get("Location"); got != "/" {
		t.Fatalf("expected redirect home, got %q", got)
	}

	if app.session.Get(sessionUseCaseKey) != nil {
		t.Fatal("expected no use case stored")
	}

	flash, ok := app.session.Get(sessionFlashKey).(FlashMessage)
	if !ok || flash.Type != FlashError || flash.Message != i18n.Default().T(i18n.Hindi, "error.use_case") {
		t.Fatalf("expected use case error flash, got %#v", app.session.Get(sessionFlashKey))
	}
}

func TestRejectedUseCaseFlashShownOnNextPage(t *testing.T) {
	t.Parallel()

	app := newTestApp()
	app.f.Post("/use-case", SelectUseCase)
	app.f.Get("/", Home)

	app.serve(postForm("/use-case", url.Values{"use_case": {"weather"}}))

	if _, ok := app.data["Flash"]; ok {
		t.Fatal("expected no flash on the redirecting request")
	}

	app.serve(httptest.NewRequest(http.MethodGet, "/", nil))

	flash, ok := app.data["Flash"].(FlashMessage)
	if !ok || flash.Type != FlashError || flash.Message != i18n.Default().T(i18n.Hindi, "error.use_case") {
		t.Fatalf("expected error flash on home page, got %#v", app.data["Flash"])
	}

	if app.session.Get(sessionFlashKey) != nil {
		t.Fatal("expected flash to be cleared after display")
	}
}

func TestSetLanguage(t *testing.T) {
	t.Parallel()

	app := newTestApp()
	app.f.Post("/language", SetLanguage)

	form := url.Values{"lang": {"english"}, "next": {"https://evil.example/health"}}
	rec := app.serve(postForm("/language", form))

	if rec.Code != http.StatusSeeOther {
		t.Fatalf("expected status %d, got %d", http.StatusSeeOther, rec.Code)
	}

	if got := rec.Header().Get("Location"); got != "/health" {
		t.Fatalf("expected sanitized redirect, got %q", got)
	}

	if got, _ := app.session.Get(sessionLocaleKey).(string); got != i18n.English {
		t.Fatalf("expected english in session, got %q", got)
	}
}

func TestSetLanguageIgnoresUnsupported(t *testing.T) {
	t.Parallel()

	app := newTestApp()
	app.f.Post("/language", SetLanguage)
	app.f.Get("/about", func() {})

	rec := app.serve(postForm("/language", url.Values{"lang": {"fr"}, "next": {"/about"}}))

	if got := rec.Header().Get("Location"); got != "/about" {
		t.Fatalf("expected redirect back, got %q", got)
	}

	if app.session.Get(sessionLocaleKey) != nil {
		t.Fatal("expected locale to stay unset")
	}

	app.serve(httptest.NewRequest(http.MethodGet, "/about", nil))

	flash, ok := app.data["Flash"].(FlashMessage)
	if !ok || flash.Type != FlashError || flash.Message != i18n.Default().T(i18n.Hindi, "error.language") {
		t.Fatalf("expected language error flash, got %#v", app.data["Flash"])
	}
}

func TestSetLanguageFlashesInNewLocale(t *testing.T) {
	t.Parallel()

	app := newTestApp()
	app.f.Post("/language", SetLanguage)

	app.serve(postForm("/language", url.Values{"lang": {"en"}, "next": {"/"}}))

	flash, ok := app.session.Get(sessionFlashKey).(FlashMessage)
	if !ok || flash.Type != FlashSuccess || flash.Message != i18n.Default().T(i18n.English, "language.changed") {
		t.Fatalf("expected english success flash, got %#v", app.session.Get(sessionFlashKey))
	}
}

func TestComingSoon(t *testing.T) {
	t.Parallel()

	app := newTestApp()
	app.session.Set(sessionLocaleKey, i18n.English)
	app.f.Get("/finance", ComingSoon(UseCaseFinance))

	app.serve(httptest.NewRequest(http.MethodGet, "/finance", nil))

	if app.tpl.name != "coming_soon" {
		t.Fatalf("unexpected template %q", app.tpl.name)
	}

	if got, _ := app.data["Message"].(string); got != "This feature coming soon!" {
		t.Fatalf("unexpected message %q", got)
	}

	if got, _ := app.session.Get(sessionUseCaseKey).(string); got != string(UseCaseFinance) {
		t.Fatalf("expected finance use case in session, got %q", got)
	}
}
