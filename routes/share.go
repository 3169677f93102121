/*
 * Copyright 2026 Humaid Alqasimi
 * SPDX-License-Identifier: Apache-2.0
 */
package routes

import (
	"encoding/base64"
	"fmt"
	"net/url"
	"strings"

	"github.com/skip2/go-qrcode"

	"github.com/humaidq/confidenceai/analysis"
	"github.com/humaidq/confidenceai/i18n"
)

const whatsAppShareBase = "https://wa.me/"

// shareSummary is the short text placed in the WhatsApp message.
func shareSummary(catalog *i18n.Catalog, r analysis.Result) string {
	lines := []string{
		catalog.T(r.Locale, "report.title"),
		catalog.T(r.Locale, "report.diagnosis") + ": " + r.Diagnosis,
		catalog.T(r.Locale, "report.confidence") + ": " + fmt.Sprintf("%d%%", r.Input.Confidence),
		catalog.T(r.Locale, "report.prediction") + ": " + r.Prediction,
		catalog.T(r.Locale, "report.interval") + ": " + r.IntervalText,
	}

	return strings.Join(lines, "\n")
}

// whatsAppShareURL builds a click-to-chat link that pre-fills text.
func whatsAppShareURL(text string) string {
	return whatsAppShareBase + "?" + url.Values{"text": {text}}.Encode()
}

func generateQRCodeBase64(value string) (string, error) {
	png, err := qrcode.Encode(value, qrcode.Medium, 256)
	if err != nil {
		return "", fmt.Errorf("failed to generate qr code: %w", err)
	}

	return base64.StdEncoding.EncodeToString(png), nil
}
