/*
 * Copyright 2026 Humaid Alqasimi
 * SPDX-License-Identifier: Apache-2.0
 */
package analysis

import (
	"github.com/google/uuid"

	"github.com/humaidq/confidenceai/i18n"
)

// Result is the outcome of one health analysis. It is built fresh for every
// submission and not modified afterwards.
type Result struct {
	ID           uuid.UUID
	Locale       string
	Input        Input
	Risk         float64
	Tier         Tier
	Diagnosis    string
	Prediction   string
	Interval     Interval
	IntervalText string
	ReportType   string
	NextSteps    []string
}

// Analyze scores a clamped copy of in and localizes the outcome.
func Analyze(in Input, catalog *i18n.Catalog, locale string) Result {
	return AnalyzeWithID(uuid.New(), in, catalog, locale)
}

// AnalyzeWithID is Analyze with a caller-supplied report reference, used when
// a previous result is rebuilt from its submitted inputs.
func AnalyzeWithID(id uuid.UUID, in Input, catalog *i18n.Catalog, locale string) Result {
	in = in.Clamp()

	risk := RiskScore(in)
	tier := Classify(risk)
	interval := EstimateInterval(risk, in.Confidence)

	return Result{
		ID:           id,
		Locale:       locale,
		Input:        in,
		Risk:         risk,
		Tier:         tier,
		Diagnosis:    catalog.T(locale, tier.LabelKey()),
		Prediction:   catalog.T(locale, tier.PredictionKey()),
		Interval:     interval,
		IntervalText: interval.String() + " " + catalog.T(locale, "health.out_of_ten"),
		ReportType:   catalog.T(locale, in.ReportType.MessageKey()),
		NextSteps:    catalog.Steps(locale),
	}
}
