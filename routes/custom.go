/*
 * Copyright 2026 Humaid Alqasimi
 * SPDX-License-Identifier: Apache-2.0
 */
package routes

import (
	"encoding/gob"
	"errors"
	"net/http"
	"net/url"
	"path/filepath"
	"strings"

	"github.com/flamego/flamego"
	"github.com/flamego/session"
	"github.com/flamego/template"

	"github.com/humaidq/confidenceai/analysis"
	"github.com/humaidq/confidenceai/i18n"
	"github.com/humaidq/confidenceai/metrics"
	"github.com/humaidq/confidenceai/tabular"
)

const (
	sessionPreviewKey = "custom_preview"

	fieldDataset = "dataset"
	fieldTarget  = "target"
	fieldProblem = "problem_type"
)

func init() {
	gob.Register(tabular.Preview{})
}

func sessionPreview(s session.Session) (tabular.Preview, bool) {
	preview, ok := s.Get(sessionPreviewKey).(tabular.Preview)
	return preview, ok
}

func problemTypeOptions(catalog *i18n.Catalog, locale string, selected analysis.ProblemType) []SelectOption {
	options := make([]SelectOption, 0, len(analysis.ProblemTypes))
	for _, p := range analysis.ProblemTypes {
		options = append(options, SelectOption{
			Value:    string(p),
			Label:    catalog.T(locale, p.MessageKey()),
			Selected: p == selected,
		})
	}

	return options
}

func targetOptions(preview tabular.Preview, selected string) []SelectOption {
	options := make([]SelectOption, 0, len(preview.Columns))
	for i, col := range preview.Columns {
		options = append(options, SelectOption{
			Value:    col,
			Label:    col,
			Selected: col == selected || (selected == "" && i == 0),
		})
	}

	return options
}

func renderCustom(t template.Template, data template.Data, catalog *i18n.Catalog, locale string, s session.Session, form url.Values, status int) {
	data["IsCustom"] = true

	if preview, ok := sessionPreview(s); ok {
		problem, err := analysis.ParseProblemType(form.Get(fieldProblem))
		if err != nil {
			problem = analysis.ProblemClassification
		}

		data["Preview"] = preview
		data["RowCount"] = catalog.Tf(locale, "custom.rows", preview.TotalRows)
		data["Targets"] = targetOptions(preview, form.Get(fieldTarget))
		data["ProblemTypes"] = problemTypeOptions(catalog, locale, problem)
		data["Confidence"] = numberField(catalog, locale, confidenceRule, form)
	}

	t.HTML(status, "custom")
}

// CustomForm renders the dataset upload page, with the last preview if any.
func CustomForm(t template.Template, s session.Session, data template.Data, state *ViewState, catalog *i18n.Catalog) {
	rememberUseCase(s, state, data, UseCaseCustom)
	renderCustom(t, data, catalog, state.Locale, s, url.Values{}, http.StatusOK)
}

// UploadCustomData loads a CSV or Excel file and keeps its preview in the
// session for the analyze step.
func UploadCustomData(
	c flamego.Context,
	t template.Template,
	s session.Session,
	data template.Data,
	state *ViewState,
	catalog *i18n.Catalog,
	registry *metrics.Registry,
) {
	rememberUseCase(s, state, data, UseCaseCustom)

	preview, err := loadUploadedPreview(c.Request().Request)
	if err != nil {
		outcome := metrics.UploadFailed
		if errors.Is(err, errMissingUpload) || errors.Is(err, tabular.ErrUnsupportedFormat) {
			outcome = metrics.UploadRejected
		}

		registry.Uploads.WithLabelValues(string(UseCaseCustom), outcome).Inc()
		logger.Warn("rejected dataset upload", "error", err)

		data["Error"] = localizeError(catalog, state.Locale, err)
		renderCustom(t, data, catalog, state.Locale, s, url.Values{}, http.StatusUnprocessableEntity)
		return
	}

	registry.Uploads.WithLabelValues(string(UseCaseCustom), metrics.UploadAccepted).Inc()
	logger.Info("dataset uploaded",
		"filename", preview.Filename,
		"columns", len(preview.Columns),
		"rows", preview.TotalRows,
	)

	s.Set(sessionPreviewKey, preview)
	renderCustom(t, data, catalog, state.Locale, s, url.Values{}, http.StatusOK)
}

func loadUploadedPreview(r *http.Request) (tabular.Preview, error) {
	if err := r.ParseMultipartForm(tabular.MaxUploadBytes); err != nil {
		if errors.Is(err, http.ErrNotMultipart) {
			return tabular.Preview{}, errMissingUpload
		}

		return tabular.Preview{}, err
	}

	file, header, err := r.FormFile(fieldDataset)
	if errors.Is(err, http.ErrMissingFile) {
		return tabular.Preview{}, errMissingUpload
	}
	if err != nil {
		return tabular.Preview{}, err
	}
	defer func() {
		_ = file.Close()
	}()

	name := filepath.Base(header.Filename)
	if !tabular.Supported(name) {
		return tabular.Preview{}, tabular.ErrUnsupportedFormat
	}

	table, err := tabular.Load(name, file)
	if err != nil {
		return tabular.Preview{}, err
	}

	return table.Preview(name, tabular.PreviewRows), nil
}

// AnalyzeCustomData runs the sample analysis for the previewed dataset.
func AnalyzeCustomData(
	c flamego.Context,
	t template.Template,
	s session.Session,
	data template.Data,
	state *ViewState,
	catalog *i18n.Catalog,
	registry *metrics.Registry,
) {
	rememberUseCase(s, state, data, UseCaseCustom)

	if err := c.Request().ParseForm(); err != nil {
		data["Error"] = catalog.T(state.Locale, "error.form")
		renderCustom(t, data, catalog, state.Locale, s, url.Values{}, http.StatusBadRequest)
		return
	}

	form := c.Request().Form

	result, err := analyzeCustomForm(form, s, catalog, state.Locale)
	if err != nil {
		logger.Warn("rejected custom analysis", "error", err)
		data["Error"] = localizeError(catalog, state.Locale, err)
		renderCustom(t, data, catalog, state.Locale, s, form, http.StatusUnprocessableEntity)
		return
	}

	registry.Analyses.WithLabelValues(string(UseCaseCustom), string(result.Problem)).Inc()
	analysisLogger.Info("custom analysis",
		"problem_type", result.Problem,
		"coverage", result.Coverage,
	)

	data["CustomResult"] = result
	renderCustom(t, data, catalog, state.Locale, s, form, http.StatusOK)
}

func analyzeCustomForm(form url.Values, s session.Session, catalog *i18n.Catalog, locale string) (analysis.CustomResult, error) {
	preview, ok := sessionPreview(s)
	if !ok {
		return analysis.CustomResult{}, errMissingPreview
	}

	target := strings.TrimSpace(form.Get(fieldTarget))
	if !preview.HasColumn(target) {
		return analysis.CustomResult{}, errUnknownTargetColumn
	}

	problem, err := analysis.ParseProblemType(form.Get(fieldProblem))
	if err != nil {
		return analysis.CustomResult{}, errInvalidProblemType
	}

	confidence, err := parseWholeNumber(form, confidenceRule)
	if err != nil {
		return analysis.CustomResult{}, err
	}

	return analysis.AnalyzeCustom(target, problem, confidence, catalog, locale)
}
