/*
 * Copyright 2026 Humaid Alqasimi
 * SPDX-License-Identifier: Apache-2.0
 */
package routes

import (
	"fmt"
	htmltemplate "html/template"
	"net/http"

	"github.com/flamego/template"

	"github.com/humaidq/confidenceai/content"
	"github.com/humaidq/confidenceai/i18n"
	"github.com/humaidq/confidenceai/utils"
)

const aboutPage = "about"

var loadPage = content.Page

// AboutPage is a rendered org-mode page.
type AboutPage struct {
	Title string
	Body  htmltemplate.HTML
}

func renderAboutPage(locale string) (AboutPage, error) {
	src, err := loadPage(aboutPage, locale)
	if err != nil {
		src, err = loadPage(aboutPage, i18n.DefaultLocale)
		if err != nil {
			return AboutPage{}, fmt.Errorf("failed to load about page: %w", err)
		}
	}

	body, err := utils.ParseOrgToHTML(utils.StripTitleDirective(src))
	if err != nil {
		return AboutPage{}, err
	}

	return AboutPage{
		Title: utils.ExtractTitle(src),
		Body:  htmltemplate.HTML(body),
	}, nil
}

// About renders the methodology page in the current language.
func About(t template.Template, data template.Data, state *ViewState, catalog *i18n.Catalog) {
	data["IsAbout"] = true

	page, err := renderAboutPage(state.Locale)
	if err != nil {
		logger.Error("failed to render about page", "locale", state.Locale, "error", err)
		data["Error"] = catalog.Tf(state.Locale, "error", err.Error())
		t.HTML(http.StatusInternalServerError, "about")
		return
	}

	data["About"] = page
	t.HTML(http.StatusOK, "about")
}
