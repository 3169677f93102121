/*
 * Copyright 2026 Humaid Alqasimi
 * SPDX-License-Identifier: Apache-2.0
 */
package analysis

import (
	"fmt"
	"strings"
)

// Bounds of the accepted health inputs.
const (
	MinAge           = 1
	MaxAge           = 100
	MinBloodPressure = 60
	MaxBloodPressure = 200
	MinSugar         = 50
	MaxSugar         = 500
	MinCholesterol   = 100
	MaxCholesterol   = 400
	MinBMI           = 10.0
	MaxBMI           = 50.0
	MinConfidence    = 80
	MaxConfidence    = 99
)

// Defaults shown on a fresh form.
const (
	DefaultAge           = 30
	DefaultBloodPressure = 120
	DefaultSugar         = 100
	DefaultCholesterol   = 200
	DefaultBMI           = 22.0
	DefaultConfidence    = 95
)

// ReportType is the kind of medical report the user says they are checking.
type ReportType string

const (
	ReportBloodTest ReportType = "blood_test"
	ReportECG       ReportType = "ecg"
	ReportXRay      ReportType = "xray"
	ReportMRI       ReportType = "mri"
	ReportGeneral   ReportType = "general"
)

// ReportTypes lists the selectable report types in display order.
var ReportTypes = []ReportType{
	ReportBloodTest,
	ReportECG,
	ReportXRay,
	ReportMRI,
	ReportGeneral,
}

// MessageKey returns the catalog key of the report type label.
func (r ReportType) MessageKey() string {
	return "report_type." + string(r)
}

// ParseReportType validates a submitted report type. Empty selects the first.
func ParseReportType(value string) (ReportType, error) {
	value = strings.TrimSpace(value)
	if value == "" {
		return ReportBloodTest, nil
	}

	for _, r := range ReportTypes {
		if string(r) == value {
			return r, nil
		}
	}

	return "", fmt.Errorf("%w: %q", errUnknownReportType, value)
}

// Input is one submission of the health form.
type Input struct {
	Age           int
	BloodPressure int
	Sugar         int
	Cholesterol   int
	BMI           float64
	Symptoms      string
	Confidence    int
	ReportType    ReportType
	Attachment    string
}

// DefaultInput returns the values a fresh form starts with.
func DefaultInput() Input {
	return Input{
		Age:           DefaultAge,
		BloodPressure: DefaultBloodPressure,
		Sugar:         DefaultSugar,
		Cholesterol:   DefaultCholesterol,
		BMI:           DefaultBMI,
		Confidence:    DefaultConfidence,
		ReportType:    ReportBloodTest,
	}
}

// Clamp returns a copy of the input with every numeric field forced into its
// accepted range.
func (in Input) Clamp() Input {
	in.Age = clampInt(in.Age, MinAge, MaxAge)
	in.BloodPressure = clampInt(in.BloodPressure, MinBloodPressure, MaxBloodPressure)
	in.Sugar = clampInt(in.Sugar, MinSugar, MaxSugar)
	in.Cholesterol = clampInt(in.Cholesterol, MinCholesterol, MaxCholesterol)
	in.BMI = clampFloat(in.BMI, MinBMI, MaxBMI)
	in.Confidence = clampInt(in.Confidence, MinConfidence, MaxConfidence)

	if in.ReportType == "" {
		in.ReportType = ReportBloodTest
	}

	return in
}

func clampInt(v, lo, hi int) int {
	return max(lo, min(v, hi))
}

func clampFloat(v, lo, hi float64) float64 {
	return max(lo, min(v, hi))
}
