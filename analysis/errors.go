/*
 * Copyright 2026 Humaid Alqasimi
 * SPDX-License-Identifier: Apache-2.0
 */
package analysis

import "errors"

var (
	errUnknownReportType  = errors.New("unknown report type")
	errUnknownProblemType = errors.New("unknown problem type")
	errTargetRequired     = errors.New("target column is required")
)
