/*
 * Copyright 2026 Humaid Alqasimi
 * SPDX-License-Identifier: Apache-2.0
 */
package analysis

import "fmt"

// Reference baseline each vital is compared against.
const (
	baselineAge           = 30
	baselineBloodPressure = 120
	baselineSugar         = 100
	baselineCholesterol   = 200
	baselineBMI           = 25.0

	riskScale = 10.0
)

// Tier thresholds on the risk score.
const (
	MediumRiskThreshold = 3.0
	HighRiskThreshold   = 6.0
)

// Interval bounds on the 0-10 risk scale.
const (
	intervalFloor   = 0.0
	intervalCeiling = 10.0
)

// RiskScore computes the weighted deviation of the vitals from baseline. Age
// below baseline lowers the score, so the result can be negative.
func RiskScore(in Input) float64 {
	sum := float64(in.Age-baselineAge)*0.5 +
		max(0, float64(in.BloodPressure-baselineBloodPressure))*0.3 +
		max(0, float64(in.Sugar-baselineSugar))*0.4 +
		max(0, float64(in.Cholesterol-baselineCholesterol))*0.2 +
		max(0, in.BMI-baselineBMI)*0.5

	return sum / riskScale
}

// Tier is the coarse classification of a risk score.
type Tier string

const (
	TierNormal Tier = "normal"
	TierMedium Tier = "medium"
	TierHigh   Tier = "high"
)

// Classify buckets risk into [.., 3) normal, [3, 6) medium, [6, ..) high.
func Classify(risk float64) Tier {
	switch {
	case risk < MediumRiskThreshold:
		return TierNormal
	case risk < HighRiskThreshold:
		return TierMedium
	default:
		return TierHigh
	}
}

// LabelKey is the catalog key of the diagnosis label.
func (t Tier) LabelKey() string {
	return "tier." + string(t) + ".label"
}

// PredictionKey is the catalog key of the prediction sentence.
func (t Tier) PredictionKey() string {
	return "tier." + string(t) + ".prediction"
}

// Interval is a cosmetic range around a risk score, clamped to [0, 10].
type Interval struct {
	Lower float64
	Upper float64
}

// HalfWidth returns the unclamped half-width used for confidence.
// It shrinks as confidence grows.
func HalfWidth(confidence int) float64 {
	return float64(100-confidence) / 20
}

// EstimateInterval places a symmetric interval of HalfWidth(confidence)
// around risk and clamps both bounds to the 0-10 scale, so a risk past
// either end collapses to that end instead of producing lower > upper.
func EstimateInterval(risk float64, confidence int) Interval {
	hw := HalfWidth(confidence)

	return Interval{
		Lower: clampFloat(risk-hw, intervalFloor, intervalCeiling),
		Upper: clampFloat(risk+hw, intervalFloor, intervalCeiling),
	}
}

func (i Interval) String() string {
	return fmt.Sprintf("%.1f-%.1f", i.Lower, i.Upper)
}
