/*
 * Copyright 2026 Humaid Alqasimi
 * SPDX-License-Identifier: Apache-2.0
 */
package routes

import (
	"bytes"
	"fmt"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/opts"

	"github.com/humaidq/confidenceai/i18n"
)

// Fixed accuracy and importance figures shown next to the chosen confidence.
const (
	chartAccuracy   = 92
	chartImportance = 88
)

var chartColors = []string{"#3b82f6", "#10b981", "#f59e0b"}

// renderConfidenceChart draws the reliability, accuracy and importance bars.
func renderConfidenceChart(catalog *i18n.Catalog, locale string, confidence int) (string, error) {
	labels := []string{
		catalog.T(locale, "chart.reliability"),
		catalog.T(locale, "chart.accuracy"),
		catalog.T(locale, "chart.importance"),
	}
	values := []int{confidence, chartAccuracy, chartImportance}

	items := make([]opts.BarData, 0, len(values))
	for i, v := range values {
		items = append(items, opts.BarData{
			Value:     v,
			ItemStyle: &opts.ItemStyle{Color: chartColors[i]},
		})
	}

	bar := charts.NewBar()
	bar.SetGlobalOptions(
		charts.WithInitializationOpts(opts.Initialization{
			Width:   "100%",
			Height:  "360px",
			ChartID: "confidence_chart",
		}),
		charts.WithTitleOpts(opts.Title{
			Title: catalog.T(locale, "chart.title"),
		}),
		charts.WithTooltipOpts(opts.Tooltip{
			Show: opts.Bool(true),
		}),
		charts.WithLegendOpts(opts.Legend{
			Show: opts.Bool(false),
		}),
		charts.WithYAxisOpts(opts.YAxis{
			Name: catalog.T(locale, "chart.yaxis"),
			Min:  0,
			Max:  100,
		}),
	)

	bar.SetXAxis(labels).
		AddSeries(catalog.T(locale, "confidence"), items).
		SetSeriesOptions(
			charts.WithLabelOpts(opts.Label{
				Show:     opts.Bool(true),
				Position: "top",
			}),
		)

	var buf bytes.Buffer
	if err := bar.Render(&buf); err != nil {
		return "", fmt.Errorf("failed to render chart: %w", err)
	}

	return buf.String(), nil
}
