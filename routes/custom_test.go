// SPDX-FileCopyrightText: 2026 Humaid Alqasimi
// SPDX-License-Identifier: Apache-2.0

package routes

import (
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"

	"github.com/humaidq/confidenceai/analysis"
	"github.com/humaidq/confidenceai/i18n"
	"github.com/humaidq/confidenceai/metrics"
	"github.com/humaidq/confidenceai/tabular"
)

const sampleCSV = "age,income,label\n30,100,yes\n40,200,no\n50,300,yes\n60,400,no\n70,500,yes\n80,600,no\n"

func TestCustomFormWithoutPreview(t *testing.T) {
	t.Parallel()

	app := newTestApp()
	app.f.Get("/custom", CustomForm)

	app.serve(httptest.NewRequest(http.MethodGet, "/custom", nil))

	if app.tpl.name != "custom" || app.tpl.status != http.StatusOK {
		t.Fatalf("unexpected template render: %#v", app.tpl)
	}

	if app.data["Preview"] != nil {
		t.Fatal("expected no preview before upload")
	}
}

func TestUploadCustomDataStoresPreview(t *testing.T) {
	t.Parallel()

	app := newTestApp()
	app.session.Set(sessionLocaleKey, i18n.English)
	app.f.Post("/custom/upload", UploadCustomData)

	app.serve(postMultipart(t, "/custom/upload", nil, fieldDataset, "people.csv", []byte(sampleCSV)))

	if app.tpl.status != http.StatusOK {
		t.Fatalf("expected status %d, got %d (error %v)", http.StatusOK, app.tpl.status, app.data["Error"])
	}

	preview, ok := app.session.Get(sessionPreviewKey).(tabular.Preview)
	if !ok {
		t.Fatal("expected preview in session")
	}

	if preview.Filename != "people.csv" || preview.TotalRows != 6 || len(preview.Rows) != tabular.PreviewRows {
		t.Fatalf("unexpected preview: %#v", preview)
	}

	if got, _ := app.data["RowCount"].(string); got != "Total rows: 6" {
		t.Fatalf("unexpected row count %q", got)
	}

	targets, ok := app.data["Targets"].([]SelectOption)
	if !ok || len(targets) != 3 || !targets[0].Selected {
		t.Fatalf("unexpected targets: %#v", app.data["Targets"])
	}

	if got := testutil.ToFloat64(app.registry.Uploads.WithLabelValues("custom", metrics.UploadAccepted)); got != 1 {
		t.Fatalf("expected one accepted upload, got %v", got)
	}
}

func TestUploadCustomDataErrors(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		fileField string
		filename  string
		content   string
		wantError string
		outcome   string
	}{
		{name: "missing file", wantError: "Please choose a file", outcome: metrics.UploadRejected},
		{name: "legacy excel", fileField: fieldDataset, filename: "old.xls", content: "x", wantError: "This file type is not supported", outcome: metrics.UploadRejected},
		{name: "empty csv", fileField: fieldDataset, filename: "empty.csv", content: "", wantError: "Error: " + tabular.ErrEmptyTable.Error(), outcome: metrics.UploadFailed},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			app := newTestApp()
			app.session.Set(sessionLocaleKey, i18n.English)
			app.f.Post("/custom/upload", UploadCustomData)

			app.serve(postMultipart(t, "/custom/upload", map[string]string{"x": "y"}, tt.fileField, tt.filename, []byte(tt.content)))

			if app.tpl.status != http.StatusUnprocessableEntity {
				t.Fatalf("expected status %d, got %d", http.StatusUnprocessableEntity, app.tpl.status)
			}

			if got, _ := app.data["Error"].(string); got != tt.wantError {
				t.Fatalf("expected error %q, got %q", tt.wantError, got)
			}

			if app.session.Get(sessionPreviewKey) != nil {
				t.Fatal("expected no preview stored")
			}

			if got := testutil.ToFloat64(app.registry.Uploads.WithLabelValues("custom", tt.outcome)); got != 1 {
				t.Fatalf("expected one %s upload, got %v", tt.outcome, got)
			}
		})
	}
}

func storedPreview() tabular.Preview {
	return tabular.Preview{
		Filename:  "people.csv",
		Columns:   []string{"age", "label"},
		Rows:      [][]string{{"30", "yes"}},
		TotalRows: 1,
	}
}

func TestAnalyzeCustomData(t *testing.T) {
	t.Parallel()

	app := newTestApp()
	app.session.Set(sessionLocaleKey, i18n.English)
	app.session.Set(sessionPreviewKey, storedPreview())
	app.f.Post("/custom/analyze", AnalyzeCustomData)

	form := url.Values{
		fieldTarget:     {"label"},
		fieldProblem:    {"regression"},
		fieldConfidence: {"85"},
	}
	app.serve(postForm("/custom/analyze", form))

	if app.tpl.status != http.StatusOK {
		t.Fatalf("expected status %d, got %d (error %v)", http.StatusOK, app.tpl.status, app.data["Error"])
	}

	result, ok := app.data["CustomResult"].(analysis.CustomResult)
	if !ok {
		t.Fatalf("expected CustomResult, got %#v", app.data["CustomResult"])
	}

	if result.Target != "label" || result.Coverage != 85 || result.AverageSetSize != 2.3 || len(result.Sets) != 5 {
		t.Fatalf("unexpected result: %#v", result)
	}

	targets, _ := app.data["Targets"].([]SelectOption)
	if len(targets) != 2 || targets[0].Selected || !targets[1].Selected {
		t.Fatalf("expected submitted target to stay selected: %#v", targets)
	}

	if got := testutil.ToFloat64(app.registry.Analyses.WithLabelValues("custom", "regression")); got != 1 {
		t.Fatalf("expected one custom analysis, got %v", got)
	}
}

func TestAnalyzeCustomDataErrors(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name        string
		withPreview bool
		form        url.Values
		wantError   string
	}{
		{
			name:      "no preview",
			form:      url.Values{fieldTarget: {"label"}, fieldProblem: {"classification"}},
			wantError: "Upload a data file first",
		},
		{
			name:        "unknown target",
			withPreview: true,
			form:        url.Values{fieldTarget: {"salary"}, fieldProblem: {"classification"}},
			wantError:   "Invalid target column",
		},
		{
			name:        "unknown problem type",
			withPreview: true,
			form:        url.Values{fieldTarget: {"label"}, fieldProblem: {"clustering"}},
			wantError:   "Invalid problem type",
		},
		{
			name:        "bad confidence",
			withPreview: true,
			form:        url.Values{fieldTarget: {"label"}, fieldProblem: {"classification"}, fieldConfidence: {"high"}},
			wantError:   "Invalid number for Choose Confidence Level",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			app := newTestApp()
			app.session.Set(sessionLocaleKey, i18n.English)
			if tt.withPreview {
				app.session.Set(sessionPreviewKey, storedPreview())
			}
			app.f.Post("/custom/analyze", AnalyzeCustomData)

			app.serve(postForm("/custom/analyze", tt.form))

			if app.tpl.status != http.StatusUnprocessableEntity {
				t.Fatalf("expected status %d, got %d", http.StatusUnprocessableEntity, app.tpl.status)
			}

			if got, _ := app.data["Error"].(string); got != tt.wantError {
				t.Fatalf("expected error %q, got %q", tt.wantError, got)
			}

			if app.data["CustomResult"] != nil {
				t.Fatal("expected no result")
			}
		})
	}
}
