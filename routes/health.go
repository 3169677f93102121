/*
 * Copyright 2026 Humaid Alqasimi
 * SPDX-License-Identifier: Apache-2.0
 */
package routes

import (
	"errors"
	htmltemplate "html/template"
	"math"
	"net/http"
	"net/url"
	"path/filepath"
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/flamego/flamego"
	"github.com/flamego/session"
	"github.com/flamego/template"
	"github.com/google/uuid"

	"github.com/humaidq/confidenceai/analysis"
	"github.com/humaidq/confidenceai/i18n"
	"github.com/humaidq/confidenceai/metrics"
	"github.com/humaidq/confidenceai/tabular"
)

// Health form field names.
const (
	fieldAge         = "age"
	fieldBP          = "bp"
	fieldSugar       = "sugar"
	fieldCholesterol = "cholesterol"
	fieldBMI         = "bmi"
	fieldSymptoms    = "symptoms"
	fieldConfidence  = "confidence"
	fieldReportType  = "report_type"
	fieldAttachment  = "attachment"
	fieldReportID    = "report_id"
)

const maxSymptomsRunes = 500

var attachmentExtensions = map[string]bool{
	".pdf":  true,
	".png":  true,
	".jpg":  true,
	".jpeg": true,
	".csv":  true,
	".xlsx": true,
}

// NumberField is a numeric input of the health form.
type NumberField struct {
	Name  string
	Label string
	Value string
	Min   string
	Max   string
	Step  string
}

// SelectOption is an entry of a select element.
type SelectOption struct {
	Value    string
	Label    string
	Selected bool
}

// HiddenField carries a submitted value into the report download form.
type HiddenField struct {
	Name  string
	Value string
}

type numberRule struct {
	name     string
	labelKey string
	min      float64
	max      float64
	def      float64
	step     string
}

var healthNumberRules = []numberRule{
	{name: fieldAge, labelKey: "field.age", min: analysis.MinAge, max: analysis.MaxAge, def: analysis.DefaultAge, step: "1"},
	{name: fieldBP, labelKey: "field.bp", min: analysis.MinBloodPressure, max: analysis.MaxBloodPressure, def: analysis.DefaultBloodPressure, step: "1"},
	{name: fieldSugar, labelKey: "field.sugar", min: analysis.MinSugar, max: analysis.MaxSugar, def: analysis.DefaultSugar, step: "1"},
	{name: fieldCholesterol, labelKey: "field.cholesterol", min: analysis.MinCholesterol, max: analysis.MaxCholesterol, def: analysis.DefaultCholesterol, step: "1"},
	{name: fieldBMI, labelKey: "field.bmi", min: analysis.MinBMI, max: analysis.MaxBMI, def: analysis.DefaultBMI, step: "0.1"},
}

var confidenceRule = numberRule{
	name:     fieldConfidence,
	labelKey: "confidence_level",
	min:      analysis.MinConfidence,
	max:      analysis.MaxConfidence,
	def:      analysis.DefaultConfidence,
	step:     "1",
}

func formatRuleValue(rule numberRule, v float64) string {
	if rule.step == "1" {
		return strconv.Itoa(int(v))
	}

	return strconv.FormatFloat(v, 'f', 1, 64)
}

// healthFields builds the numeric inputs, keeping any submitted values.
func healthFields(catalog *i18n.Catalog, locale string, form url.Values) []NumberField {
	fields := make([]NumberField, 0, len(healthNumberRules))
	for _, rule := range healthNumberRules {
		fields = append(fields, numberField(catalog, locale, rule, form))
	}

	return fields
}

func numberField(catalog *i18n.Catalog, locale string, rule numberRule, form url.Values) NumberField {
	value := strings.TrimSpace(form.Get(rule.name))
	if value == "" {
		value = formatRuleValue(rule, rule.def)
	}

	return NumberField{
		Name:  rule.name,
		Label: catalog.T(locale, rule.labelKey),
		Value: value,
		Min:   formatRuleValue(rule, rule.min),
		Max:   formatRuleValue(rule, rule.max),
		Step:  rule.step,
	}
}

func reportTypeOptions(catalog *i18n.Catalog, locale string, selected analysis.ReportType) []SelectOption {
	options := make([]SelectOption, 0, len(analysis.ReportTypes))
	for _, rt := range analysis.ReportTypes {
		options = append(options, SelectOption{
			Value:    string(rt),
			Label:    catalog.T(locale, rt.MessageKey()),
			Selected: rt == selected,
		})
	}

	return options
}

// parseNumber reads a numeric field. Blank means the default; values are
// clamped to the field bounds.
func parseNumber(form url.Values, rule numberRule) (float64, error) {
	raw := strings.TrimSpace(form.Get(rule.name))
	if raw == "" {
		return rule.def, nil
	}

	v, err := strconv.ParseFloat(raw, 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, &fieldError{LabelKey: rule.labelKey, Err: errInvalidNumber}
	}

	return min(max(v, rule.min), rule.max), nil
}

func parseWholeNumber(form url.Values, rule numberRule) (int, error) {
	v, err := parseNumber(form, rule)
	if err != nil {
		return 0, err
	}

	return int(math.Round(v)), nil
}

// parseHealthInput reads the analysis input from a submitted health form.
func parseHealthInput(form url.Values) (analysis.Input, error) {
	in := analysis.DefaultInput()

	ints := []*int{&in.Age, &in.BloodPressure, &in.Sugar, &in.Cholesterol}
	for i, target := range ints {
		v, err := parseWholeNumber(form, healthNumberRules[i])
		if err != nil {
			return analysis.Input{}, err
		}

		*target = v
	}

	bmi, err := parseNumber(form, healthNumberRules[4])
	if err != nil {
		return analysis.Input{}, err
	}

	in.BMI = math.Round(bmi*10) / 10

	in.Confidence, err = parseWholeNumber(form, confidenceRule)
	if err != nil {
		return analysis.Input{}, err
	}

	in.ReportType, err = analysis.ParseReportType(form.Get(fieldReportType))
	if err != nil {
		return analysis.Input{}, &fieldError{LabelKey: "health.report_type", Err: errInvalidReportType}
	}

	in.Symptoms = truncateRunes(strings.TrimSpace(form.Get(fieldSymptoms)), maxSymptomsRunes)

	return in.Clamp(), nil
}

func truncateRunes(s string, n int) string {
	if utf8.RuneCountInString(s) <= n {
		return s
	}

	return string([]rune(s)[:n])
}

// parseHealthRequest parses the form, including the optional attachment,
// whose name is validated but never read.
func parseHealthRequest(r *http.Request) (analysis.Input, string, error) {
	if strings.HasPrefix(r.Header.Get("Content-Type"), "multipart/form-data") {
		if err := r.ParseMultipartForm(tabular.MaxUploadBytes); err != nil {
			return analysis.Input{}, "", err
		}
	} else if err := r.ParseForm(); err != nil {
		return analysis.Input{}, "", err
	}

	in, err := parseHealthInput(r.Form)
	if err != nil {
		return analysis.Input{}, "", err
	}

	attachment, err := healthAttachment(r)
	if err != nil {
		return analysis.Input{}, "", err
	}

	in.Attachment = attachment

	return in, attachment, nil
}

func healthAttachment(r *http.Request) (string, error) {
	if r.MultipartForm == nil {
		return "", nil
	}

	file, header, err := r.FormFile(fieldAttachment)
	if errors.Is(err, http.ErrMissingFile) {
		return "", nil
	}
	if err != nil {
		return "", err
	}
	defer func() {
		_ = file.Close()
	}()

	name := filepath.Base(header.Filename)
	if !attachmentExtensions[strings.ToLower(filepath.Ext(name))] {
		return "", &fieldError{LabelKey: "health.attachment", Err: errUnsupportedAttachment}
	}

	return name, nil
}

// reportFields carries the clamped inputs so the download can rebuild the
// same result.
func reportFields(r analysis.Result) []HiddenField {
	return []HiddenField{
		{Name: fieldReportID, Value: r.ID.String()},
		{Name: fieldAge, Value: strconv.Itoa(r.Input.Age)},
		{Name: fieldBP, Value: strconv.Itoa(r.Input.BloodPressure)},
		{Name: fieldSugar, Value: strconv.Itoa(r.Input.Sugar)},
		{Name: fieldCholesterol, Value: strconv.Itoa(r.Input.Cholesterol)},
		{Name: fieldBMI, Value: strconv.FormatFloat(r.Input.BMI, 'f', 1, 64)},
		{Name: fieldConfidence, Value: strconv.Itoa(r.Input.Confidence)},
		{Name: fieldReportType, Value: string(r.Input.ReportType)},
		{Name: fieldSymptoms, Value: r.Input.Symptoms},
	}
}

func renderHealthForm(t template.Template, data template.Data, catalog *i18n.Catalog, locale string, form url.Values, status int) {
	selected, err := analysis.ParseReportType(form.Get(fieldReportType))
	if err != nil {
		selected = analysis.ReportBloodTest
	}

	symptoms := form.Get(fieldSymptoms)
	if _, ok := form[fieldSymptoms]; !ok {
		symptoms = catalog.T(locale, "symptoms.default")
	}

	data["IsHealth"] = true
	data["Fields"] = healthFields(catalog, locale, form)
	data["Confidence"] = numberField(catalog, locale, confidenceRule, form)
	data["ReportTypes"] = reportTypeOptions(catalog, locale, selected)
	data["Symptoms"] = symptoms
	t.HTML(status, "health")
}

// HealthForm renders the health analysis form.
func HealthForm(t template.Template, s session.Session, data template.Data, state *ViewState, catalog *i18n.Catalog) {
	rememberUseCase(s, state, data, UseCaseHealth)
	renderHealthForm(t, data, catalog, state.Locale, url.Values{}, http.StatusOK)
}

// AnalyzeHealth scores the submitted vitals and renders the result panel.
func AnalyzeHealth(
	c flamego.Context,
	t template.Template,
	s session.Session,
	data template.Data,
	state *ViewState,
	catalog *i18n.Catalog,
	registry *metrics.Registry,
) {
	rememberUseCase(s, state, data, UseCaseHealth)

	in, attachment, err := parseHealthRequest(c.Request().Request)
	if attachment != "" {
		registry.Uploads.WithLabelValues(string(UseCaseHealth), metrics.UploadAccepted).Inc()
	}
	if err != nil {
		if errors.Is(err, errUnsupportedAttachment) {
			registry.Uploads.WithLabelValues(string(UseCaseHealth), metrics.UploadRejected).Inc()
		}

		logger.Warn("rejected health form", "error", err)
		data["Error"] = localizeError(catalog, state.Locale, err)
		renderHealthForm(t, data, catalog, state.Locale, c.Request().Form, http.StatusUnprocessableEntity)
		return
	}

	result := analysis.Analyze(in, catalog, state.Locale)
	registry.Analyses.WithLabelValues(string(UseCaseHealth), string(result.Tier)).Inc()
	analysisLogger.Info("health analysis",
		"report_id", result.ID,
		"tier", result.Tier,
		"risk", strconv.FormatFloat(result.Risk, 'f', 2, 64),
		"confidence", in.Confidence,
		"report_type", in.ReportType,
		"attachment", attachment != "",
	)

	chart, err := renderConfidenceChart(catalog, state.Locale, in.Confidence)
	if err != nil {
		logger.Error("failed to render confidence chart", "error", err)
	} else {
		data["Chart"] = htmltemplate.HTML(chart)
	}

	shareURL := whatsAppShareURL(shareSummary(catalog, result))
	data["ShareURL"] = shareURL

	if qr, err := generateQRCodeBase64(shareURL); err != nil {
		logger.Warn("failed to build share qr code", "error", err)
	} else {
		data["ShareQR"] = qr
	}

	data["Result"] = result
	data["ReportFields"] = reportFields(result)
	data["Attachment"] = attachment
	renderHealthForm(t, data, catalog, state.Locale, c.Request().Form, http.StatusOK)
}

// DownloadHealthReport rebuilds a result from the posted inputs and sends
// it as a text report.
func DownloadHealthReport(c flamego.Context, state *ViewState, catalog *i18n.Catalog, registry *metrics.Registry) {
	w := c.ResponseWriter()

	in, _, err := parseHealthRequest(c.Request().Request)
	if err != nil {
		logger.Warn("rejected report request", "error", err)
		http.Error(w, localizeError(catalog, state.Locale, err), http.StatusBadRequest)
		return
	}

	id, err := uuid.Parse(strings.TrimSpace(c.Request().Form.Get(fieldReportID)))
	if err != nil {
		logger.Warn("rejected report request", "error", errInvalidReportID)
		http.Error(w, catalog.T(state.Locale, "error.report"), http.StatusBadRequest)
		return
	}

	result := analysis.AnalyzeWithID(id, in, catalog, state.Locale)
	body := analysis.FormatReport(result, catalog)

	headers := w.Header()
	headers.Set("Content-Type", analysis.ReportContentType)
	headers.Set("Content-Disposition", "attachment; filename=\""+analysis.ReportFilename+"\"")
	headers.Set("Content-Length", strconv.Itoa(len(body)))
	w.WriteHeader(http.StatusOK)

	if _, err := w.Write(body); err != nil {
		logger.Error("failed to write report", "report_id", id, "error", err)
		return
	}

	registry.ReportDownloads.WithLabelValues(state.Locale).Inc()
}
