// SPDX-FileCopyrightText: 2026 Humaid Alqasimi
// SPDX-License-Identifier: Apache-2.0

package routes

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/humaidq/confidenceai/i18n"
)

var errTestPageMissing = errors.New("page missing")

func TestAboutRendersLocalizedPage(t *testing.T) {
	t.Parallel()

	for _, locale := range []string{i18n.Hindi, i18n.English} {
		app := newTestApp()
		app.session.Set(sessionLocaleKey, locale)
		app.f.Get("/about", About)

		app.serve(httptest.NewRequest(http.MethodGet, "/about", nil))

		if app.tpl.name != "about" || app.tpl.status != http.StatusOK {
			t.Fatalf("%s: unexpected template render: %#v", locale, app.tpl)
		}

		page, ok := app.data["About"].(AboutPage)
		if !ok || page.Title == "" || page.Body == "" {
			t.Fatalf("%s: expected rendered about page, got %#v", locale, app.data["About"])
		}

		if strings.Contains(string(page.Body), "#+TITLE") {
			t.Fatalf("%s: expected title directive to be stripped", locale)
		}
	}
}

//nolint:paralleltest // Overrides the package-level page loader.
func TestAboutReportsMissingPage(t *testing.T) {
	original := loadPage
	t.Cleanup(func() {
		loadPage = original
	})

	loadPage = func(string, string) (string, error) {
		return "", errTestPageMissing
	}

	app := newTestApp()
	app.f.Get("/about", About)

	app.serve(httptest.NewRequest(http.MethodGet, "/about", nil))

	if app.tpl.status != http.StatusInternalServerError {
		t.Fatalf("expected status %d, got %d", http.StatusInternalServerError, app.tpl.status)
	}

	if app.data["Error"] == nil {
		t.Fatal("expected error message")
	}
}
