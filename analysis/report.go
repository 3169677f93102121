/*
 * Copyright 2026 Humaid Alqasimi
 * SPDX-License-Identifier: Apache-2.0
 */
package analysis

import (
	"bytes"
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/humaidq/confidenceai/i18n"
)

// ReportFilename is the download name of the plain-text report.
const ReportFilename = "medical_analysis_report.txt"

// ReportContentType is the content type the report is served with.
const ReportContentType = "text/plain; charset=utf-8"

// FormatReport renders r as a plain-text report. Values are written verbatim.
func FormatReport(r Result, catalog *i18n.Catalog) []byte {
	var b bytes.Buffer

	t := func(key string) string {
		return catalog.T(r.Locale, key)
	}

	title := t("report.title")
	b.WriteString(title + "\n")
	b.WriteString(strings.Repeat("=", utf8.RuneCountInString(title)) + "\n\n")

	fmt.Fprintf(&b, "%s: %s\n", t("report.reference"), r.ID)
	fmt.Fprintf(&b, "%s: %s\n", t("report.report_type"), r.ReportType)
	fmt.Fprintf(&b, "%s: %s\n", t("report.diagnosis"), r.Diagnosis)
	fmt.Fprintf(&b, "%s: %d%%\n", t("report.confidence"), r.Input.Confidence)
	fmt.Fprintf(&b, "%s: %s\n", t("report.prediction"), r.Prediction)
	fmt.Fprintf(&b, "%s: %s\n", t("report.interval"), r.IntervalText)

	if symptoms := strings.TrimSpace(r.Input.Symptoms); symptoms != "" {
		fmt.Fprintf(&b, "%s: %s\n", t("report.symptoms"), symptoms)
	}

	fmt.Fprintf(&b, "\n%s:\n", t("report.next_steps"))

	for _, step := range r.NextSteps {
		fmt.Fprintf(&b, "  - %s\n", step)
	}

	b.WriteString("\n\n" + t("report.footer") + "\n")

	return b.Bytes()
}
