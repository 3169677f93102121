/*
 * Copyright 2026 Humaid Alqasimi
 * SPDX-License-Identifier: Apache-2.0
 */
package tabular

import "errors"

var (
	// ErrUnsupportedFormat is returned for file extensions Load cannot read.
	ErrUnsupportedFormat = errors.New("unsupported file format")

	// ErrEmptyTable is returned when a file has no header row.
	ErrEmptyTable = errors.New("file contains no data")

	errNoSheets  = errors.New("workbook has no sheets")
	errRaggedRow = errors.New("row has more fields than the header")
	errTooLarge  = errors.New("file exceeds upload limit")
)
