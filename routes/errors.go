/*
 * Copyright 2026 Humaid Alqasimi
 * SPDX-License-Identifier: Apache-2.0
 */
package routes

import (
	"errors"

	"github.com/humaidq/confidenceai/i18n"
	"github.com/humaidq/confidenceai/tabular"
)

var (
	errInvalidNumber         = errors.New("invalid number")
	errInvalidReportType     = errors.New("invalid report type")
	errUnsupportedAttachment = errors.New("unsupported attachment type")
	errInvalidReportID       = errors.New("invalid report id")
	errMissingUpload         = errors.New("missing upload")
	errMissingPreview        = errors.New("no dataset preview in session")
	errUnknownTargetColumn   = errors.New("unknown target column")
	errInvalidProblemType    = errors.New("invalid problem type")
)

// fieldError ties a form parsing failure to the catalog key of the field
// label, so the message can name the field in the user's language.
type fieldError struct {
	LabelKey string
	Err      error
}

func (e *fieldError) Error() string {
	return e.LabelKey + ": " + e.Err.Error()
}

func (e *fieldError) Unwrap() error {
	return e.Err
}

// localizeError maps a handler error to a message in the user's language.
func localizeError(catalog *i18n.Catalog, locale string, err error) string {
	var fe *fieldError
	if errors.As(err, &fe) && errors.Is(err, errInvalidNumber) {
		return catalog.Tf(locale, "error.invalid_number", catalog.T(locale, fe.LabelKey))
	}

	switch {
	case errors.Is(err, errUnsupportedAttachment), errors.Is(err, tabular.ErrUnsupportedFormat):
		return catalog.T(locale, "error.upload_type")
	case errors.Is(err, errInvalidReportType):
		return catalog.T(locale, "error.form")
	case errors.Is(err, errInvalidReportID):
		return catalog.T(locale, "error.report")
	case errors.Is(err, errMissingUpload):
		return catalog.T(locale, "error.upload_missing")
	case errors.Is(err, errMissingPreview):
		return catalog.T(locale, "error.no_preview")
	case errors.Is(err, errUnknownTargetColumn):
		return catalog.T(locale, "error.target_column")
	case errors.Is(err, errInvalidProblemType):
		return catalog.T(locale, "error.problem_type")
	}

	return catalog.Tf(locale, "error", err.Error())
}
