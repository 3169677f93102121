/*
 * Copyright 2026 Humaid Alqasimi
 * SPDX-License-Identifier: Apache-2.0
 */
package analysis

import (
	"fmt"
	"strings"

	"github.com/humaidq/confidenceai/i18n"
)

// ProblemType is the modelling problem the user picks for a custom dataset.
type ProblemType string

const (
	ProblemClassification ProblemType = "classification"
	ProblemRegression     ProblemType = "regression"
	ProblemTimeSeries     ProblemType = "time_series"
)

// ProblemTypes lists the selectable problem types in display order.
var ProblemTypes = []ProblemType{
	ProblemClassification,
	ProblemRegression,
	ProblemTimeSeries,
}

// MessageKey returns the catalog key of the problem type label.
func (p ProblemType) MessageKey() string {
	return "problem." + string(p)
}

// ParseProblemType validates a submitted problem type.
func ParseProblemType(value string) (ProblemType, error) {
	value = strings.TrimSpace(value)
	for _, p := range ProblemTypes {
		if string(p) == value {
			return p, nil
		}
	}

	return "", fmt.Errorf("%w: %q", errUnknownProblemType, value)
}

// averageSetSize is the fixed sample average prediction-set size.
const averageSetSize = 2.3

var samplePredictionSets = [][]string{
	{"Class A", "Class B"},
	{"Class B"},
	{"Class A", "Class C", "Class D"},
	{"Class B", "Class D"},
	{"Class A"},
}

// PredictionSet is one sample row of the custom analysis output.
type PredictionSet struct {
	Instance string
	Labels   []string
}

// CustomResult is the sample output of a custom dataset analysis. It does not
// depend on the uploaded data beyond the chosen target column.
type CustomResult struct {
	Target         string
	Problem        ProblemType
	ProblemLabel   string
	Coverage       int
	AverageSetSize float64
	Sets           []PredictionSet
}

// AnalyzeCustom returns the sample coverage figures for a dataset.
func AnalyzeCustom(target string, problem ProblemType, confidence int, catalog *i18n.Catalog, locale string) (CustomResult, error) {
	target = strings.TrimSpace(target)
	if target == "" {
		return CustomResult{}, errTargetRequired
	}

	if _, err := ParseProblemType(string(problem)); err != nil {
		return CustomResult{}, err
	}

	sets := make([]PredictionSet, 0, len(samplePredictionSets))
	for i, labels := range samplePredictionSets {
		sets = append(sets, PredictionSet{
			Instance: catalog.Tf(locale, "custom.instance", i+1),
			Labels:   append([]string(nil), labels...),
		})
	}

	return CustomResult{
		Target:         target,
		Problem:        problem,
		ProblemLabel:   catalog.T(locale, problem.MessageKey()),
		Coverage:       clampInt(confidence, MinConfidence, MaxConfidence),
		AverageSetSize: averageSetSize,
		Sets:           sets,
	}, nil
}
